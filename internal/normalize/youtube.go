package normalize

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"geosift/internal/models"
)

// YouTube normalizes video payloads with a flat location object.
type YouTube struct{}

// Source returns the tag this normalizer is registered under.
func (YouTube) Source() string { return models.SourceYouTube }

// Normalize extracts the canonical fields from a raw video record.
func (YouTube) Normalize(raw json.RawMessage) models.Record {
	rec := models.Record{Source: models.SourceYouTube, Raw: raw}

	lat, latOK := coord(gjson.GetBytes(raw, "location.latitude"))
	lon, lonOK := coord(gjson.GetBytes(raw, "location.longitude"))

	if latOK && lonOK {
		rec.SetCoordinates(lat, lon)
	}

	rec.Title = gjson.GetBytes(raw, "title").String()
	rec.Content = gjson.GetBytes(raw, "description").String()
	rec.Date = gjson.GetBytes(raw, "published_at").String()

	if id := gjson.GetBytes(raw, "id"); id.Exists() {
		rec.URL = "https://www.youtube.com/watch?v=" + id.String()
	}

	rec.ImageURL = gjson.GetBytes(raw, "thumbnail_url").String()

	return rec
}
