// Package content fetches and caches the structured content document that
// drives the dynamic sections of the site.
package content

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the calendar format the content document uses.
const dateLayout = "02/01/2006"

// Date is a calendar date carried as DD/MM/YYYY in the content document.
type Date struct {
	time.Time
}

// UnmarshalJSON parses a DD/MM/YYYY string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return &FormatError{Detail: fmt.Sprintf("invalid date %q: want DD/MM/YYYY", s)}
	}
	d.Time = t
	return nil
}

// MarshalJSON renders the date back in the document format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// Item is one unit of content. Items are immutable once fetched; they are
// owned by the store's cache and must not be modified by callers.
type Item struct {
	Date        Date   `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Image is the base path of a responsive asset group, without the
	// size/format suffix.
	Image string `json:"image"`
	Link  string `json:"link"`
}

// Collection maps a category key to its ordered items. The order is the
// canonical reading order; everything downstream reorders from it, never
// from an already reordered copy.
type Collection map[string][]Item

// NetworkError reports a transport failure while fetching the content
// document or delivering a form submission.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FormatError reports a malformed content document or a request for a
// category the document does not contain.
type FormatError struct {
	Detail string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content format: %s: %v", e.Detail, e.Err)
	}
	return "content format: " + e.Detail
}

func (e *FormatError) Unwrap() error { return e.Err }
