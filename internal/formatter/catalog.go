// Package formatter renders the static advice tables as aligned
// markdown for reference sheets.
package formatter

import (
	"strings"

	"gardenadvisor/internal/garden"

	"github.com/mattn/go-runewidth"
)

// Catalog renders the full advice and recommendation tables as a
// markdown reference sheet. Seasons and plants appear in canonical
// display order, so output is deterministic.
func Catalog(advice garden.AdviceTable, recommendations garden.RecommendationTable) string {
	var sections []string

	adviceRows := [][]string{{"Season", "Plant", "Tips"}}

	for _, season := range garden.CanonicalSeasons {
		for _, plant := range garden.CanonicalPlants {
			tips := advice[season][plant]
			adviceRows = append(adviceRows, []string{season, plant, strings.Join(tips, " ")})
		}
	}

	sections = append(sections, "# Garden advice catalog", "")
	sections = append(sections, buildTable(adviceRows)...)

	recRows := [][]string{{"Season", "Suggested plants"}}

	for _, season := range garden.CanonicalSeasons {
		recs := recommendations[season]
		recRows = append(recRows, []string{season, strings.Join(recs, ", ")})
	}

	sections = append(sections, "", "## Seasonal recommendations", "")
	sections = append(sections, buildTable(recRows)...)

	return strings.Join(sections, "\n") + "\n"
}

// buildTable renders rows as a markdown table with a separator after
// the header, padding cells to the column's display width.
func buildTable(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}

	colCount := len(rows[0])
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// Column widths use display width, not byte length, so cells with
	// wide runes still line up.
	colWidths := make([]int, colCount)

	for _, row := range rows {
		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Separator needs at least "---".
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var result []string

	for i, row := range rows {
		result = append(result, buildRow(row, colWidths, false))

		if i == 0 {
			result = append(result, buildRow(nil, colWidths, true))
		}
	}

	return result
}

func buildRow(cells []string, colWidths []int, separator bool) string {
	var sb strings.Builder

	sb.WriteString("|")

	for i, width := range colWidths {
		sb.WriteString(" ")

		if separator {
			sb.WriteString(strings.Repeat("-", width))
		} else {
			content := ""
			if i < len(cells) {
				content = cells[i]
			}

			sb.WriteString(content)

			padding := width - runewidth.StringWidth(content)
			if padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
