package source

import (
	"context"
	"encoding/json"
	"fmt"

	"gocloud.dev/blob"
)

// FileAdapter replays captured raw records from a JSON array stored in a
// gocloud blob bucket. It stands in for the network collectors, which live
// outside this module; anything that can produce a capture file can feed
// the pipeline through it.
type FileAdapter struct {
	name      string
	bucketURL string
	key       string
	opts      Options
}

// NewFileAdapter returns an adapter named after the source tag it replays.
// bucketURL is any gocloud blob URL (file://... for local directories) and
// key is the object holding the JSON array of raw records.
func NewFileAdapter(name, bucketURL, key string, opts Options) *FileAdapter {
	return &FileAdapter{
		name:      name,
		bucketURL: bucketURL,
		key:       key,
		opts:      opts,
	}
}

// Name returns the source tag this adapter replays.
func (a *FileAdapter) Name() string { return a.name }

// Fetch reads the capture and returns at most q.MaxResults raw records. An
// empty capture is an empty result, not an error.
func (a *FileAdapter) Fetch(ctx context.Context, q Query) ([]json.RawMessage, error) {
	if a.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.opts.Timeout)

		defer cancel()
	}

	bucket, err := blob.OpenBucket(ctx, a.bucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", a.bucketURL, err)
	}
	defer bucket.Close()

	body, err := bucket.ReadAll(ctx, a.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", a.key, err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to parse capture %s: %w", a.key, err)
	}

	if q.MaxResults > 0 && len(items) > q.MaxResults {
		items = items[:q.MaxResults]
	}

	return items, nil
}
