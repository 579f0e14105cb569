package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"geosift/internal/models"
)

// csvHeader lists the canonical field names, one column per field.
var csvHeader = []string{
	"source",
	"latitude",
	"longitude",
	"title",
	"content",
	"date",
	"url",
	"image_url",
	"distance",
}

// encodeCSV renders the flat record-per-row tabular form.
func encodeCSV(records []models.Record) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, rec := range records {
		ex := rec.Export()

		row := []string{
			ex.Source,
			formatCoord(ex.Latitude),
			formatCoord(ex.Longitude),
			ex.Title,
			ex.Content,
			ex.Date,
			ex.URL,
			ex.ImageURL,
			formatCoord(ex.DistanceKM),
		}

		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatCoord(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}
