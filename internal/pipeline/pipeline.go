// Package pipeline orchestrates collection, normalization, merging and
// filtering. Sources are queried one at a time; each source's raw records
// are fully normalized into an exclusive buffer before the next source runs,
// and buffers are concatenated only after every source completes.
package pipeline

import (
	"context"

	"geosift/internal/filter"
	"geosift/internal/logger"
	"geosift/internal/merge"
	"geosift/internal/models"
	"geosift/internal/normalize"
	"geosift/internal/source"
)

// Options selects the filters applied to the merged collection.
type Options struct {
	// SpatialFilter applies ByRadius using the query's center and radius.
	SpatialFilter bool
	// Keywords drives the keyword filter; empty means no keyword filtering.
	Keywords []string
	// DropUngeotagged discards records without coordinates at collection
	// time. Off by default: records without a geotag are retained unless a
	// spatial filter is applied.
	DropUngeotagged bool
}

// Pipeline runs the full query-to-collection flow over a set of adapters.
type Pipeline struct {
	adapters []source.Adapter
	log      *logger.Logger
}

// New returns a pipeline over the given adapters. Adapter order is
// preserved in the merged output.
func New(log *logger.Logger, adapters ...source.Adapter) *Pipeline {
	return &Pipeline{
		adapters: adapters,
		log:      log,
	}
}

// Run queries every adapter in turn, normalizes the raw records and applies
// the configured filters to the merged collection. A failing adapter
// contributes zero results and is logged; it never aborts the run.
func (p *Pipeline) Run(ctx context.Context, q source.Query, opts Options) []models.Record {
	names := make([]string, 0, len(p.adapters))
	for _, a := range p.adapters {
		names = append(names, a.Name())
	}

	collector := merge.NewCollector(names...)

	for _, a := range p.adapters {
		norm, err := normalize.For(a.Name())
		if err != nil {
			p.log.Warn("skipping source without a normalizer", "source", a.Name())

			continue
		}

		raws, err := a.Fetch(ctx, q)
		if err != nil {
			p.log.Warn("source fetch failed, treating as zero results", "source", a.Name(), "error", err)

			continue
		}

		records := make([]models.Record, 0, len(raws))

		for _, raw := range raws {
			rec := norm.Normalize(raw)

			if opts.DropUngeotagged && !rec.HasCoordinates() {
				continue
			}

			records = append(records, rec)
		}

		p.log.Info("source collected", "source", a.Name(), "raw", len(raws), "records", len(records))

		collector.Add(a.Name(), records)
	}

	merged := collector.Merged()
	p.log.Info("sources merged", "records", len(merged))

	if opts.SpatialFilter {
		merged = filter.ByRadius(merged, q.Lat, q.Lon, q.RadiusKM)
		p.log.Info("spatial filter applied", "radius_km", q.RadiusKM, "records", len(merged))
	}

	if q.Start != nil || q.End != nil {
		merged = filter.ByDateRange(merged, q.Start, q.End)
		p.log.Info("date filter applied", "records", len(merged))
	}

	if len(opts.Keywords) > 0 {
		merged = filter.ByKeywords(merged, opts.Keywords)
		p.log.Info("keyword filter applied", "records", len(merged))
	}

	return merged
}
