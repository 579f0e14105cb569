package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"geosift/internal/models"
)

// Flickr normalizes photo payloads. The provider encodes coordinates as
// numeric strings, so both encodings are accepted.
type Flickr struct{}

// Source returns the tag this normalizer is registered under.
func (Flickr) Source() string { return models.SourceFlickr }

// Normalize extracts the canonical fields from a raw photo record.
func (Flickr) Normalize(raw json.RawMessage) models.Record {
	rec := models.Record{Source: models.SourceFlickr, Raw: raw}

	lat, latOK := coord(gjson.GetBytes(raw, "latitude"))
	lon, lonOK := coord(gjson.GetBytes(raw, "longitude"))

	if latOK && lonOK {
		rec.SetCoordinates(lat, lon)
	}

	rec.Title = gjson.GetBytes(raw, "title").String()
	rec.Content = gjson.GetBytes(raw, "description").String()
	rec.Date = gjson.GetBytes(raw, "date_taken").String()

	id := gjson.GetBytes(raw, "id")
	owner := gjson.GetBytes(raw, "owner")

	if id.Exists() && owner.Exists() {
		rec.URL = fmt.Sprintf("https://www.flickr.com/photos/%s/%s", owner.String(), id.String())
	}

	rec.ImageURL = gjson.GetBytes(raw, "url_m").String()

	return rec
}
