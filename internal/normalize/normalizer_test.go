package normalize

import (
	"errors"
	"testing"

	"geosift/internal/models"
)

func TestFor_KnownSources(t *testing.T) {
	for _, tag := range models.KnownSources {
		n, err := For(tag)
		if err != nil {
			t.Errorf("For(%q) returned error: %v", tag, err)

			continue
		}

		if n.Source() != tag {
			t.Errorf("For(%q).Source() = %q", tag, n.Source())
		}
	}
}

func TestFor_UnknownSource(t *testing.T) {
	_, err := For("myspace")
	if !errors.Is(err, ErrUnknownSource) {
		t.Errorf("For(\"myspace\") error = %v, want ErrUnknownSource", err)
	}
}

func TestSources_Sorted(t *testing.T) {
	tags := Sources()

	if len(tags) != len(models.KnownSources) {
		t.Fatalf("Sources() returned %d tags, want %d", len(tags), len(models.KnownSources))
	}

	for i := 1; i < len(tags); i++ {
		if tags[i-1] >= tags[i] {
			t.Errorf("Sources() not sorted: %q before %q", tags[i-1], tags[i])
		}
	}
}
