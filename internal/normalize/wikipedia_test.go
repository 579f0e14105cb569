package normalize

import (
	"encoding/json"
	"testing"

	"github.com/tidwall/gjson"

	"geosift/internal/models"
)

func TestWikipedia_PassThrough(t *testing.T) {
	raw := json.RawMessage(`{
		"title": "Eiffel Tower",
		"content": "Wrought-iron lattice tower in Paris.",
		"latitude": 48.8584,
		"longitude": 2.2945,
		"date": "",
		"url": "https://en.wikipedia.org/wiki/Eiffel_Tower",
		"image_url": "https://upload.example/tower.jpg"
	}`)

	rec := Wikipedia{}.Normalize(raw)

	if rec.Source != models.SourceWikipedia {
		t.Errorf("Source = %q, want wikipedia", rec.Source)
	}

	if !rec.HasCoordinates() || *rec.Latitude != 48.8584 {
		t.Error("expected pass-through coordinates")
	}

	if rec.Title != "Eiffel Tower" {
		t.Errorf("Title = %q", rec.Title)
	}

	if rec.URL != "https://en.wikipedia.org/wiki/Eiffel_Tower" {
		t.Errorf("URL = %q", rec.URL)
	}
}

func TestWikipedia_StampsSourceIntoRaw(t *testing.T) {
	rec := Wikipedia{}.Normalize(json.RawMessage(`{"title": "Louvre"}`))

	if got := gjson.GetBytes(rec.Raw, "source").String(); got != models.SourceWikipedia {
		t.Errorf("raw source tag = %q, want wikipedia", got)
	}

	if got := gjson.GetBytes(rec.Raw, "title").String(); got != "Louvre" {
		t.Error("stamping the tag must not clobber the rest of the payload")
	}
}

func TestWikipedia_EmptyPayload(t *testing.T) {
	rec := Wikipedia{}.Normalize(json.RawMessage(`{}`))

	if rec.Latitude != nil || rec.Longitude != nil {
		t.Error("expected no coordinates for an empty payload")
	}

	if rec.Title != "" || rec.Content != "" || rec.URL != "" {
		t.Error("expected empty defaults for an empty payload")
	}
}
