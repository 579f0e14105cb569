// Package models defines the canonical record schema shared by every stage
// of the aggregation pipeline.
package models

import (
	"encoding/json"
	"time"

	"geosift/pkg/dates"
)

// Known source tags. Every Record carries exactly one of these.
const (
	SourceTwitter   = "twitter"
	SourceYouTube   = "youtube"
	SourceFlickr    = "flickr"
	SourceWikipedia = "wikipedia"
)

// KnownSources lists the recognized source tags in a stable order.
var KnownSources = []string{
	SourceTwitter,
	SourceYouTube,
	SourceFlickr,
	SourceWikipedia,
}

// KnownSource reports whether s is one of the recognized source tags.
func KnownSource(s string) bool {
	for _, known := range KnownSources {
		if s == known {
			return true
		}
	}

	return false
}

// Record is the canonical representation of one item after normalization.
// Coordinates are optional but always paired: a record either has both or
// neither. DistanceKM is attached by the spatial filter on acceptance and
// is absent otherwise. Raw carries the original per-source payload; it is
// excluded from every external export by the typed projection below.
type Record struct {
	Source     string          `json:"source"`
	Latitude   *float64        `json:"latitude"`
	Longitude  *float64        `json:"longitude"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	Date       string          `json:"date"`
	URL        string          `json:"url"`
	ImageURL   string          `json:"image_url"`
	DistanceKM *float64        `json:"distance,omitempty"`
	Raw        json.RawMessage `json:"-"`
}

// HasCoordinates reports whether the record carries a geotag.
func (r *Record) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// SetCoordinates attaches a geotag to the record. Out-of-range values leave
// the record without coordinates; a half-filled pair is never produced.
func (r *Record) SetCoordinates(lat, lon float64) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return
	}

	r.Latitude = &lat
	r.Longitude = &lon
}

// ExportRecord is the size-bounded projection of a Record written to
// external files. The raw payload is excluded by construction.
type ExportRecord struct {
	Source     string   `json:"source"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Date       string   `json:"date"`
	URL        string   `json:"url"`
	ImageURL   string   `json:"image_url"`
	DistanceKM *float64 `json:"distance,omitempty"`
}

// Export returns the projection of the record used by every exporter.
// Dates that parse are rewritten as RFC 3339 so external files carry an
// unambiguous timestamp; anything else passes through untouched.
func (r Record) Export() ExportRecord {
	date := r.Date
	if ts, ok := dates.Parse(r.Date); ok {
		date = ts.Format(time.RFC3339)
	}

	return ExportRecord{
		Source:     r.Source,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		Title:      r.Title,
		Content:    r.Content,
		Date:       date,
		URL:        r.URL,
		ImageURL:   r.ImageURL,
		DistanceKM: r.DistanceKM,
	}
}
