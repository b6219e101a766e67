package news

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// defaultWidth is assumed when the client does not report its window width.
const defaultWidth = 1280

// RegisterRoutes mounts the news view endpoints on the given router.
func RegisterRoutes(r chi.Router, viewer *Viewer) {
	r.Route("/api/news", func(r chi.Router) {
		r.Get("/", handleView(viewer))
		r.Get("/categories", handleCategories(viewer))
	})
}

func handleView(viewer *Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		req := Request{
			Category: q.Get("category"),
			Width:    defaultWidth,
		}
		if req.Category == "" {
			http.Error(w, `{"error":"category is required"}`, http.StatusBadRequest)
			return
		}
		if v := q.Get("width"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				req.Width = n
			}
		}
		if v := q.Get("active"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				req.ActiveIndex = n
			}
		}

		state, err := viewer.View(r.Context(), req)
		if err != nil {
			status, msg := ErrorStatus(err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"error": msg})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(state)
	}
}

func handleCategories(viewer *Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := viewer.Categories(r.Context())
		if err != nil {
			status, msg := ErrorStatus(err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"error": msg})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string][]string{"categories": categories})
	}
}
