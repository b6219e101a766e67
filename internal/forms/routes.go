package forms

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the feedback endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store, forwarder *Forwarder) {
	r.Post("/api/feedback", handleSubmit(store, forwarder))
	r.Get("/api/feedback", handleList(store))
}

// submitResponse is the JSON result of a form submission. Status is one of
// "ok", "server_error" (the upstream responded with an error) or
// "unreachable" (the upstream could not be reached); the page shows a
// different notification for each.
type submitResponse struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
	Error  string `json:"error,omitempty"`
}

func handleSubmit(store *Store, forwarder *Forwarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(submitResponse{Status: "invalid", Error: "malformed form body"})
			return
		}

		sub := Submission{
			Name:    r.PostFormValue("name"),
			Phone:   r.PostFormValue("phone"),
			Email:   r.PostFormValue("email"),
			Message: r.PostFormValue("message"),
		}
		if err := sub.Validate(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(submitResponse{Status: "invalid", Error: err.Error()})
			return
		}

		id, err := store.Create(r.Context(), sub)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(submitResponse{Status: "error", Error: "could not record submission"})
			return
		}
		sub.ID = id

		if err := forwarder.Forward(r.Context(), sub); err != nil {
			var de *DeliveryError
			if errors.As(err, &de) && de.Unreachable {
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(submitResponse{Status: "unreachable", ID: id, Error: "could not reach server"})
				return
			}
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(submitResponse{Status: "server_error", ID: id, Error: "server responded with error"})
			return
		}

		json.NewEncoder(w).Encode(submitResponse{Status: "ok", ID: id})
	}
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		subs, err := store.List(r.Context(), limit)
		if err != nil {
			http.Error(w, `{"error":"listing submissions"}`, http.StatusInternalServerError)
			return
		}
		if subs == nil {
			subs = []Submission{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(subs)
	}
}
