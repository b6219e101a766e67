// Package forms handles the feedback form: submissions are validated,
// recorded, and forwarded form-encoded to the externally configured
// endpoint. A failed forward keeps the stored submission so nothing the
// visitor typed is lost.
package forms

import (
	"fmt"
	"strings"
	"time"
)

// Submission is one feedback form submission.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message,omitempty"`
	Forwarded bool      `json:"forwarded"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the fields the form marks required.
func (s Submission) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(s.Phone) == "" {
		return fmt.Errorf("phone is required")
	}
	if digits := countDigits(s.Phone); digits < 10 {
		return fmt.Errorf("phone %q is incomplete", s.Phone)
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// DeliveryError reports a failed forward. Unreachable distinguishes "could
// not reach the server" from "the server responded with an error"; the two
// are surfaced differently to the visitor.
type DeliveryError struct {
	Endpoint    string
	StatusCode  int
	Unreachable bool
	Err         error
}

func (e *DeliveryError) Error() string {
	if e.Unreachable {
		return fmt.Sprintf("delivering to %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("delivering to %s: server responded %d", e.Endpoint, e.StatusCode)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
