package export

import (
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"geosift/internal/models"
)

// encodeGeoJSON renders a FeatureCollection of point features for mapping
// consumers. Records without coordinates have no geometry to contribute and
// are omitted here; they remain present in the tabular forms.
func encodeGeoJSON(records []models.Record) ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	for _, rec := range records {
		if !rec.HasCoordinates() {
			continue
		}

		f := geojson.NewFeature(orb.Point{*rec.Longitude, *rec.Latitude})

		ex := rec.Export()
		f.Properties["source"] = ex.Source
		f.Properties["title"] = ex.Title
		f.Properties["content"] = ex.Content
		f.Properties["date"] = ex.Date
		f.Properties["url"] = ex.URL
		f.Properties["image_url"] = ex.ImageURL

		if ex.DistanceKM != nil {
			f.Properties["distance"] = *ex.DistanceKM
		}

		fc.Append(f)
	}

	return json.MarshalIndent(fc, "", "  ")
}
