// Package export serializes the final record collection to flat files. It
// consumes the canonical schema only, through the typed projection that
// excludes the raw payload side channel.
package export

import (
	"context"
	"errors"
	"fmt"

	"gocloud.dev/blob"

	"geosift/internal/models"
)

// Format names accepted by the CLI and configuration.
const (
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatGeoJSON = "geojson"
)

// ErrUnsupportedFormat is returned for format names Encode does not know.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Encode serializes records in the named format.
func Encode(format string, records []models.Record) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(records)
	case FormatCSV:
		return encodeCSV(records)
	case FormatGeoJSON:
		return encodeGeoJSON(records)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Write encodes records and stores them under key in the bucket at
// bucketURL. A write failure is returned to the caller: the user asked for
// a specific artifact, so this is the one error class that propagates out
// of the pipeline.
func Write(ctx context.Context, bucketURL, key, format string, records []models.Record) error {
	data, err := Encode(format, records)
	if err != nil {
		return err
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return fmt.Errorf("failed to open bucket %s: %w", bucketURL, err)
	}
	defer bucket.Close()

	w, err := bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return fmt.Errorf("failed to open writer for %s: %w", key, err)
	}

	if _, err := w.Write(data); err != nil {
		w.Close()

		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish writing %s: %w", key, err)
	}

	return nil
}
