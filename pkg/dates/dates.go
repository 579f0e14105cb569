// Package dates parses record timestamps that arrive in several wire formats.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// layouts are tried in order; the first one that parses wins. The order is
// load-bearing: it decides which of several ambiguous strings is accepted,
// so new layouts go at the end.
var layouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"Mon Jan 02 15:04:05 -0700 2006",
}

// Parse attempts every known layout against s. It returns ok=false when no
// layout matches; an unparseable date is a per-record condition, never an
// error that stops a batch.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}

	return time.Time{}, false
}

// ParseDay parses a bare YYYY-MM-DD day. It is used for range flags on the
// command line, not for record timestamps.
func ParseDay(s string) (time.Time, error) {
	ts, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}

	return ts, nil
}
