// Package timeline defines the dated items the chart lays out.
package timeline

import (
	"strings"
	"time"
)

// Kind distinguishes zero-duration events from spans.
type Kind int

const (
	// KindInstant is a single dated event with no duration.
	KindInstant Kind = 1
	// KindInterval is a span from a begin time to an end time.
	KindInterval Kind = 2
)

// String returns a human-readable kind name for log and error messages.
func (k Kind) String() string {
	switch k {
	case KindInstant:
		return "instant"
	case KindInterval:
		return "interval"
	}
	return "unknown"
}

// Valid reports whether k is a known kind code.
func (k Kind) Valid() bool {
	return k == KindInstant || k == KindInterval
}

// TimeItem is one dated entry on the chart. Items with the same Series share
// a row-packing space; the ID is stable across redraws so rendered elements
// keep their identity.
type TimeItem struct {
	ID          string
	Series      string
	Kind        Kind
	Title       string
	Begin       time.Time
	End         *time.Time // nil means open-ended
	Description string
	URL         string
}

// HasNoEnd reports whether the item is ongoing. Open-ended items pack out to
// the domain's right edge and draw out to the current time.
func (it TimeItem) HasNoEnd() bool {
	return it.End == nil
}

// dateFormats are tried in order. Bare years parse as January 1st UTC.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02",
	"2006",
}

// ParseDate parses an RFC 3339 timestamp, a YYYY-MM-DD date, or a bare year.
// Empty or malformed input yields nil rather than an error; callers exclude
// items without a valid begin time from layout.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
