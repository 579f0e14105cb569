package export

import (
	"encoding/json"

	"geosift/internal/models"
)

// encodeJSON renders the pretty-printed structured form. The projection
// keeps raw payloads out of the file.
func encodeJSON(records []models.Record) ([]byte, error) {
	projected := make([]models.ExportRecord, 0, len(records))
	for _, rec := range records {
		projected = append(projected, rec.Export())
	}

	return json.MarshalIndent(projected, "", "  ")
}
