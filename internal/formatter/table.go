// Package formatter renders record samples as aligned text tables for
// terminal preview.
package formatter

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"geosift/internal/models"
)

// Display-only truncation widths. Truncation is a presentation concern;
// the records themselves are never shortened.
const (
	previewTitleWidth   = 24
	previewContentWidth = 48
)

// Table renders up to limit records as an aligned table. A limit of zero or
// less renders everything.
func Table(records []models.Record, limit int) string {
	header := []string{"SOURCE", "LAT", "LON", "DATE", "TITLE", "CONTENT"}

	rows := [][]string{header}

	for i, rec := range records {
		if limit > 0 && i >= limit {
			break
		}

		rows = append(rows, []string{
			rec.Source,
			coordCell(rec.Latitude),
			coordCell(rec.Longitude),
			rec.Date,
			runewidth.Truncate(rec.Title, previewTitleWidth, "..."),
			runewidth.Truncate(oneLine(rec.Content), previewContentWidth, "..."),
		})
	}

	return renderRows(rows)
}

func renderRows(rows [][]string) string {
	colCount := len(rows[0])

	// Calculate max widths using display width, so wide runes line up.
	colWidths := make([]int, colCount)

	for _, row := range rows {
		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	var sb strings.Builder

	for rIdx, row := range rows {
		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			sb.WriteString(" ")

			content := ""
			if j < len(row) {
				content = row[j]
			}

			sb.WriteString(content)

			padding := colWidths[j] - runewidth.StringWidth(content)
			if padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		sb.WriteString("\n")

		// Separator under the header row.
		if rIdx == 0 {
			sb.WriteString("|")

			for j := 0; j < colCount; j++ {
				sb.WriteString(" ")
				sb.WriteString(strings.Repeat("-", colWidths[j]))
				sb.WriteString(" |")
			}

			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func coordCell(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', 4, 64)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
