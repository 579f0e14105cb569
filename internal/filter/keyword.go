package filter

import (
	"strings"

	"geosift/internal/models"
)

// ByKeywords keeps the records whose title or content contains at least one
// of the keywords, case-insensitively. An empty keyword set keeps every
// record.
func ByKeywords(records []models.Record, keywords []string) []models.Record {
	if len(keywords) == 0 {
		return records
	}

	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		lowered = append(lowered, strings.ToLower(k))
	}

	kept := make([]models.Record, 0, len(records))

	for _, rec := range records {
		text := strings.ToLower(rec.Title + " " + rec.Content)

		for _, k := range lowered {
			if strings.Contains(text, k) {
				kept = append(kept, rec)

				break
			}
		}
	}

	return kept
}
