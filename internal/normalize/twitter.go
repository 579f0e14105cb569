package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"geosift/internal/models"
)

// Twitter normalizes micro-blog payloads in the classic v1.1 tweet shape.
type Twitter struct{}

// Source returns the tag this normalizer is registered under.
func (Twitter) Source() string { return models.SourceTwitter }

// Normalize extracts the canonical fields from a raw tweet. A point geotag
// wins over a bounding-box place; when only the box is present the geotag is
// the arithmetic mean of all box vertices. That is not the true centroid of
// a non-convex ring — the approximation matches what the provider reports
// loosely and downstream consumers depend on it staying that way.
func (Twitter) Normalize(raw json.RawMessage) models.Record {
	rec := models.Record{Source: models.SourceTwitter, Raw: raw}

	if point := gjson.GetBytes(raw, "geo.coordinates"); point.IsArray() {
		pair := point.Array()
		if len(pair) >= 2 {
			// Point geotags are [lat, lon].
			rec.SetCoordinates(pair[0].Float(), pair[1].Float())
		}
	} else if ring := gjson.GetBytes(raw, "place.bounding_box.coordinates.0"); ring.IsArray() {
		var latSum, lonSum float64

		verts := ring.Array()
		for _, v := range verts {
			pair := v.Array()
			if len(pair) >= 2 {
				// Box vertices are [lon, lat].
				lonSum += pair[0].Float()
				latSum += pair[1].Float()
			}
		}

		if n := len(verts); n > 0 {
			rec.SetCoordinates(latSum/float64(n), lonSum/float64(n))
		}
	}

	rec.Title = "@" + gjson.GetBytes(raw, "user.screen_name").String()
	rec.Content = gjson.GetBytes(raw, "text").String()
	rec.Date = gjson.GetBytes(raw, "created_at").String()

	id := gjson.GetBytes(raw, "id_str")
	handle := gjson.GetBytes(raw, "user.screen_name")

	if id.Exists() && handle.Exists() {
		rec.URL = fmt.Sprintf("https://twitter.com/%s/status/%s", handle.String(), id.String())
	}

	rec.ImageURL = gjson.GetBytes(raw, "entities.media.0.media_url_https").String()

	return rec
}
