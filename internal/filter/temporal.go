package filter

import (
	"time"

	"geosift/internal/models"
	"geosift/pkg/dates"
)

// ByDateRange keeps the records whose date parses and falls inside the
// [start, end] window. A nil bound is open on that side; with both bounds
// nil the filter is the identity function. Records with no date, or a date
// no known layout can parse, are dropped.
func ByDateRange(records []models.Record, start, end *time.Time) []models.Record {
	if start == nil && end == nil {
		return records
	}

	kept := make([]models.Record, 0, len(records))

	for _, rec := range records {
		ts, ok := dates.Parse(rec.Date)
		if !ok {
			continue
		}

		if start != nil && ts.Before(*start) {
			continue
		}

		if end != nil && ts.After(*end) {
			continue
		}

		kept = append(kept, rec)
	}

	return kept
}
