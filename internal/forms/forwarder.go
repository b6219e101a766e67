package forms

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Forwarder delivers submissions form-encoded to the configured endpoint.
// There is no automatic retry: a failed delivery is recorded and the visitor
// is asked to resubmit.
type Forwarder struct {
	endpoint string
	store    *Store
	client   *http.Client
}

// NewForwarder creates a Forwarder posting to endpoint. An empty endpoint
// disables forwarding (submissions are only stored).
func NewForwarder(endpoint string, store *Store) *Forwarder {
	return &Forwarder{
		endpoint: endpoint,
		store:    store,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether an endpoint is configured.
func (f *Forwarder) Enabled() bool { return f.endpoint != "" }

// Forward POSTs the submission to the endpoint. Any ok status counts as
// success; the response body is not parsed. On success the submission is
// marked forwarded; on failure the attempt is recorded and a *DeliveryError
// is returned.
func (f *Forwarder) Forward(ctx context.Context, s Submission) error {
	if !f.Enabled() {
		return nil
	}

	form := url.Values{}
	form.Set("name", s.Name)
	form.Set("phone", s.Phone)
	if s.Email != "" {
		form.Set("email", s.Email)
	}
	if s.Message != "" {
		form.Set("message", s.Message)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return &DeliveryError{Endpoint: f.endpoint, Unreachable: true, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		f.record(ctx, s.ID, 0, err)
		return &DeliveryError{Endpoint: f.endpoint, Unreachable: true, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.record(ctx, s.ID, resp.StatusCode, nil)
		return &DeliveryError{Endpoint: f.endpoint, StatusCode: resp.StatusCode}
	}

	f.record(ctx, s.ID, resp.StatusCode, nil)
	if err := f.store.MarkForwarded(ctx, s.ID); err != nil {
		log.Printf("forms: %v", err)
	}
	return nil
}

func (f *Forwarder) record(ctx context.Context, id string, status int, attemptErr error) {
	if err := f.store.RecordAttempt(ctx, id, f.endpoint, status, attemptErr); err != nil {
		log.Printf("forms: %v", err)
	}
}
