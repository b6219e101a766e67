package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Store fetches the content document once and serves every category from the
// in-memory cache afterwards. The document is assumed static for the process
// lifetime; there is no invalidation. Reload exists only for the file
// watcher, which knows the document actually changed on disk.
type Store struct {
	source string
	client *http.Client

	mu    sync.Mutex
	cache Collection
}

// NewStore creates a Store reading from source, which is either an HTTP(S)
// URL or a local file path.
func NewStore(source string) *Store {
	return &Store{
		source: source,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Get returns the items of one category in canonical order. The first call
// fetches and caches the whole document; the fetch is serialized under the
// store lock so concurrent first calls cannot interleave partial state.
func (s *Store) Get(ctx context.Context, category string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache == nil {
		col, err := s.fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.cache = col
	}

	items, ok := s.cache[category]
	if !ok {
		return nil, &FormatError{Detail: fmt.Sprintf("unknown category %q", category)}
	}
	return items, nil
}

// Categories returns the sorted category keys, fetching the document first
// if needed.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache == nil {
		col, err := s.fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.cache = col
	}

	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Reload drops the cache so the next access re-fetches the document.
func (s *Store) Reload() {
	s.mu.Lock()
	s.cache = nil
	s.mu.Unlock()
}

// fetch retrieves and decodes the content document. Called with s.mu held.
func (s *Store) fetch(ctx context.Context) (Collection, error) {
	data, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	var col Collection
	if err := json.Unmarshal(data, &col); err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, &FormatError{Detail: "decoding content document", Err: err}
	}
	if len(col) == 0 {
		return nil, &FormatError{Detail: "content document has no categories"}
	}
	return col, nil
}

// read loads the raw document bytes from the configured source.
func (s *Store) read(ctx context.Context) ([]byte, error) {
	if !strings.HasPrefix(s.source, "http://") && !strings.HasPrefix(s.source, "https://") {
		data, err := os.ReadFile(s.source)
		if err != nil {
			return nil, &NetworkError{URL: s.source, Err: err}
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.source, nil)
	if err != nil {
		return nil, &NetworkError{URL: s.source, Err: err}
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: s.source, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{URL: s.source, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: s.source, Err: err}
	}
	return data, nil
}
