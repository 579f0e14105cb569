// Package merge combines per-source record lists into one collection while
// preserving provenance and order.
package merge

import (
	"sync"

	"geosift/internal/models"
)

// Sources concatenates per-source lists in argument order. Records are never
// re-sorted or deduplicated: two sources reporting the same real-world event
// stay as distinct entries, since cross-source identity resolution is out of
// scope.
func Sources(perSource ...[]models.Record) []models.Record {
	var total int
	for _, list := range perSource {
		total += len(list)
	}

	merged := make([]models.Record, 0, total)
	for _, list := range perSource {
		merged = append(merged, list...)
	}

	return merged
}

// Collector accumulates per-source lists so that concurrent producers still
// yield a deterministic, source-grouped collection. Each source owns an
// exclusive bucket; buckets are concatenated only after all producers are
// done. Pre-registering sources with NewCollector fixes the output order
// regardless of which producer finishes first.
type Collector struct {
	mu      sync.Mutex
	order   []string
	buckets map[string][]models.Record
}

// NewCollector returns a collector with the given source order
// pre-registered. Sources added later are appended in first-Add order.
func NewCollector(sources ...string) *Collector {
	c := &Collector{
		order:   make([]string, 0, len(sources)),
		buckets: make(map[string][]models.Record, len(sources)),
	}

	for _, s := range sources {
		c.order = append(c.order, s)
		c.buckets[s] = nil
	}

	return c
}

// Add appends records to the source's bucket. Safe for concurrent use.
func (c *Collector) Add(source string, records []models.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.buckets[source]; !ok {
		c.order = append(c.order, source)
	}

	c.buckets[source] = append(c.buckets[source], records...)
}

// Merged concatenates the buckets in registration order.
func (c *Collector) Merged() []models.Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	perSource := make([][]models.Record, 0, len(c.order))
	for _, s := range c.order {
		perSource = append(perSource, c.buckets[s])
	}

	return Sources(perSource...)
}
