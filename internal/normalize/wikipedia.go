package normalize

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"geosift/internal/models"
)

// Wikipedia handles encyclopedia payloads. The adapter already returns
// canonical-shaped data, so this is a pass-through that stamps the source
// tag on the record and on the raw side channel.
type Wikipedia struct{}

// Source returns the tag this normalizer is registered under.
func (Wikipedia) Source() string { return models.SourceWikipedia }

// Normalize copies the pre-normalized fields and stamps the source tag.
func (Wikipedia) Normalize(raw json.RawMessage) models.Record {
	rec := models.Record{Source: models.SourceWikipedia, Raw: raw}

	lat, latOK := coord(gjson.GetBytes(raw, "latitude"))
	lon, lonOK := coord(gjson.GetBytes(raw, "longitude"))

	if latOK && lonOK {
		rec.SetCoordinates(lat, lon)
	}

	rec.Title = gjson.GetBytes(raw, "title").String()
	rec.Content = gjson.GetBytes(raw, "content").String()
	rec.Date = gjson.GetBytes(raw, "date").String()
	rec.URL = gjson.GetBytes(raw, "url").String()
	rec.ImageURL = gjson.GetBytes(raw, "image_url").String()

	if tagged, err := sjson.SetBytes(raw, "source", models.SourceWikipedia); err == nil {
		rec.Raw = tagged
	}

	return rec
}
