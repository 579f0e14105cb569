package filter

import (
	"testing"
	"time"

	"geosift/internal/models"
)

func dated(date string) models.Record {
	return models.Record{Source: models.SourceTwitter, Date: date}
}

func TestByDateRange_BothBoundsNilIsIdentity(t *testing.T) {
	records := []models.Record{
		dated("2024-01-02 10:00:00"),
		dated("garbage"),
		dated(""),
	}

	kept := ByDateRange(records, nil, nil)

	if len(kept) != len(records) {
		t.Fatalf("identity violated: got %d records, want %d", len(kept), len(records))
	}
}

func TestByDateRange_StartBound(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	records := []models.Record{
		dated("2023-12-31 10:00:00"),
		dated("2024-01-02 10:00:00"),
	}

	kept := ByDateRange(records, &start, nil)

	if len(kept) != 1 {
		t.Fatalf("got %d records, want 1", len(kept))
	}

	if kept[0].Date != "2024-01-02 10:00:00" {
		t.Errorf("kept %q, want the record after the start bound", kept[0].Date)
	}
}

func TestByDateRange_EndBound(t *testing.T) {
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	records := []models.Record{
		dated("2023-12-31 10:00:00"),
		dated("2024-01-02 10:00:00"),
	}

	kept := ByDateRange(records, nil, &end)

	if len(kept) != 1 || kept[0].Date != "2023-12-31 10:00:00" {
		t.Errorf("expected only the record before the end bound")
	}
}

func TestByDateRange_BoundsAreInclusive(t *testing.T) {
	bound := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	records := []models.Record{dated("2024-01-02 10:00:00")}

	if kept := ByDateRange(records, &bound, nil); len(kept) != 1 {
		t.Error("record exactly at start must be kept")
	}

	if kept := ByDateRange(records, nil, &bound); len(kept) != 1 {
		t.Error("record exactly at end must be kept")
	}
}

func TestByDateRange_DropsUnparseableAndMissing(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	records := []models.Record{
		dated(""),
		dated("next tuesday"),
		dated("2024-06-01 12:00:00"),
	}

	kept := ByDateRange(records, &start, nil)

	if len(kept) != 1 {
		t.Errorf("got %d records, want only the parseable one", len(kept))
	}
}

func TestByDateRange_AcceptsEveryKnownLayout(t *testing.T) {
	start := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)

	records := []models.Record{
		dated("2024-01-02 10:00:00"),
		dated("2024-01-02T10:00:00+02:00"),
		dated("Sat May 04 15:00:33 +0000 2019"),
	}

	kept := ByDateRange(records, &start, nil)

	if len(kept) != 3 {
		t.Errorf("got %d records, want all 3 wire formats accepted", len(kept))
	}
}
