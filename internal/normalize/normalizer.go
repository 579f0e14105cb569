// Package normalize maps raw per-source payloads into canonical records.
//
// Each source has one Normalizer variant, registered under its source tag.
// Adding a source means adding one variant, not editing a shared function.
package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"geosift/internal/models"
)

// ErrUnknownSource is returned when no normalizer is registered for a tag.
var ErrUnknownSource = errors.New("unknown source")

// Normalizer converts one raw provider payload into a canonical record.
// Implementations are pure and total: a missing or malformed field degrades
// to the field's default, it never aborts the record or the batch.
type Normalizer interface {
	Source() string
	Normalize(raw json.RawMessage) models.Record
}

var registry = map[string]Normalizer{}

func register(n Normalizer) {
	registry[n.Source()] = n
}

func init() {
	register(Twitter{})
	register(YouTube{})
	register(Flickr{})
	register(Wikipedia{})
}

// For returns the normalizer registered for the given source tag.
func For(source string) (Normalizer, error) {
	n, ok := registry[source]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, source)
	}

	return n, nil
}

// Sources lists the registered source tags in sorted order.
func Sources() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}

	sort.Strings(tags)

	return tags
}

// coord extracts a coordinate that providers encode either as a JSON number
// or as a numeric string. Anything else counts as absent.
func coord(r gjson.Result) (float64, bool) {
	switch r.Type {
	case gjson.Number:
		return r.Num, true
	case gjson.String:
		v, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return 0, false
		}

		return v, true
	default:
		return 0, false
	}
}
