// Package main provides the geosift command-line tool: it queries the
// configured sources, normalizes and filters the results, and exports the
// final collection.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "gocloud.dev/blob/fileblob"

	"geosift/internal/config"
	"geosift/internal/export"
	"geosift/internal/formatter"
	"geosift/internal/logger"
	"geosift/internal/models"
	"geosift/internal/pipeline"
	"geosift/internal/source"
	"geosift/pkg/dates"
)

const previewRows = 20

func main() {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to YAML configuration file")
	mode := flag.String("mode", "coordinates", "Search mode: coordinates or keyword")
	lat := flag.Float64("lat", 0, "Center latitude (coordinates mode)")
	lon := flag.Float64("lon", 0, "Center longitude (coordinates mode)")
	radius := flag.Float64("radius", 0, "Search radius in kilometers (overrides config)")
	query := flag.String("query", "", "Keyword or phrase to search for (keyword mode)")
	days := flag.Int("days", 0, "Get data from the last X days (overrides config)")
	startDate := flag.String("start-date", "", "Start date (YYYY-MM-DD, overrides -days)")
	endDate := flag.String("end-date", "", "End date (YYYY-MM-DD, defaults to now)")
	sourcesFlag := flag.String("sources", "", "Comma-separated source tags (defaults to all enabled)")
	maxResults := flag.Int("max-results", 0, "Maximum results per source (overrides config)")
	outputFormat := flag.String("output", "", "Output format: json, csv, geojson or all (overrides config)")
	outputFile := flag.String("output-file", "", "Output file base name")
	preview := flag.Bool("preview", false, "Print a table preview of the results")
	dropUngeotagged := flag.Bool("drop-ungeotagged", false, "Discard records without coordinates at collection time")

	flag.Parse()

	// Load configuration
	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	log.Info("🚀 Starting geosift pipeline", "config", cfg.String())

	// Resolve search parameters against config defaults
	if *radius <= 0 {
		*radius = cfg.Search.RadiusKM
	}

	if *maxResults <= 0 {
		*maxResults = cfg.Search.MaxResults
	}

	if *days <= 0 {
		*days = cfg.Search.WindowDays
	}

	q, err := buildQuery(*mode, *lat, *lon, *radius, *query, *days, *startDate, *endDate, *maxResults)
	if err != nil {
		log.Error(fmt.Sprintf("❌ %v", err))
		os.Exit(1)
	}

	// Wire adapters for the selected sources
	adapters := buildAdapters(cfg, splitList(*sourcesFlag))
	if len(adapters) == 0 {
		log.Error("❌ No sources selected; check -sources and the enabled flags in the config")
		os.Exit(1)
	}

	opts := pipeline.Options{
		SpatialFilter:   *mode == "coordinates",
		DropUngeotagged: *dropUngeotagged,
	}

	if *mode == "keyword" && *query != "" {
		opts.Keywords = []string{*query}
	}

	ctx := context.Background()

	records := pipeline.New(log, adapters...).Run(ctx, q, opts)

	log.Info("✅ Collection complete", "records", len(records))

	if *preview {
		fmt.Println(formatter.Table(records, previewRows))
	}

	// Export
	format := cfg.Output.Format
	if *outputFormat != "" {
		format = *outputFormat
	}

	if err := exportAll(ctx, cfg.Output.Directory, baseName(*outputFile), format, records, log); err != nil {
		log.Error(fmt.Sprintf("❌ Export failed: %v", err))
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = "configs/geosift.yaml"
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("please provide a -config file or place configs/geosift.yaml in the working directory")
		}
	}

	return config.LoadConfig(path)
}

func buildQuery(mode string, lat, lon, radius float64, keyword string, days int, startDate, endDate string, maxResults int) (source.Query, error) {
	q := source.Query{MaxResults: maxResults}

	switch mode {
	case "coordinates":
		q.Lat = lat
		q.Lon = lon
		q.RadiusKM = radius
	case "keyword":
		if keyword == "" {
			return q, fmt.Errorf("keyword mode requires -query")
		}

		q.Keyword = keyword
	default:
		return q, fmt.Errorf("unknown mode %q: use coordinates or keyword", mode)
	}

	var start time.Time

	if startDate != "" {
		ts, err := dates.ParseDay(startDate)
		if err != nil {
			return q, err
		}

		start = ts
	} else if days > 0 {
		start = time.Now().AddDate(0, 0, -days)
	}

	if !start.IsZero() {
		q.Start = &start
	}

	end := time.Now()

	if endDate != "" {
		ts, err := dates.ParseDay(endDate)
		if err != nil {
			return q, err
		}

		end = ts
	}

	q.End = &end

	return q, nil
}

func buildAdapters(cfg *config.Config, selected []string) []source.Adapter {
	opts := source.Options{
		Timeout:   cfg.Request.GetTimeout(),
		UserAgent: cfg.Request.UserAgent,
	}

	var adapters []source.Adapter

	for _, src := range cfg.EnabledSources() {
		if len(selected) > 0 && !contains(selected, src.Name) {
			continue
		}

		adapters = append(adapters, source.NewFileAdapter(src.Name, src.Bucket, src.Key, opts))
	}

	return adapters
}

func exportAll(ctx context.Context, directory, base, format string, records []models.Record, log *logger.Logger) error {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	abs, err := filepath.Abs(directory)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory: %w", err)
	}

	bucketURL := "file://" + abs

	formats := []string{format}
	if format == "all" {
		formats = []string{export.FormatJSON, export.FormatCSV, export.FormatGeoJSON}
	}

	for _, f := range formats {
		key := base + "." + f

		if err := export.Write(ctx, bucketURL, key, f, records); err != nil {
			return err
		}

		log.Info("💾 Exported", "format", f, "path", filepath.Join(directory, key))
	}

	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var parts []string

	for _, p := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return parts
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}

func baseName(name string) string {
	if name == "" {
		return fmt.Sprintf("geosift_%s", time.Now().Format("20060102_150405"))
	}

	// Strip a trailing extension so format suffixes attach cleanly.
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}

	return name
}
