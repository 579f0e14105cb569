// Package filter applies spatial, temporal and keyword predicates over
// canonical records. Each filter is a pure, order-preserving selection; the
// only derived data any of them adds is the distance attached on spatial
// acceptance, so the filters compose in any order.
package filter

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"geosift/internal/models"
)

// ByRadius keeps the records that lie within radiusKM great-circle
// kilometers of the center point, attaching the computed distance to every
// accepted record. Records without coordinates are dropped by this filter —
// and only by this filter.
func ByRadius(records []models.Record, centerLat, centerLon, radiusKM float64) []models.Record {
	center := orb.Point{centerLon, centerLat}

	kept := make([]models.Record, 0, len(records))

	for _, rec := range records {
		if !rec.HasCoordinates() {
			continue
		}

		point := orb.Point{*rec.Longitude, *rec.Latitude}

		km := geo.DistanceHaversine(center, point) / 1000.0
		if km <= radiusKM {
			d := km
			rec.DistanceKM = &d
			kept = append(kept, rec)
		}
	}

	return kept
}
