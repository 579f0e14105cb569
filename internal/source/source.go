// Package source defines the boundary between the pipeline core and the
// per-provider collectors. Adapters own all blocking I/O; the core only ever
// sees a finite, in-memory sequence of raw records.
package source

import (
	"context"
	"encoding/json"
	"time"
)

// Query carries the search parameters handed to every adapter. Coordinate
// searches set Lat/Lon/RadiusKM; keyword searches set Keyword. Start and End
// bound the lookback window when set, and MaxResults caps the result count
// per source.
type Query struct {
	Lat        float64
	Lon        float64
	RadiusKM   float64
	Keyword    string
	Start      *time.Time
	End        *time.Time
	MaxResults int
}

// Adapter fetches raw per-source records for a query. Implementations
// return an empty slice, not an error, when nothing matches. Caller-imposed
// deadlines belong here, at the adapter boundary, never inside the core.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]json.RawMessage, error)
}

// Options carries the request settings passed into adapter constructors.
// They replace process-wide configuration: each adapter receives its own
// copy with documented defaults.
type Options struct {
	// Timeout bounds one Fetch call. Zero means no adapter-imposed deadline.
	Timeout time.Duration
	// UserAgent identifies the client to providers that require one. Unused
	// by replay adapters.
	UserAgent string
}
