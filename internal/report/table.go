// Package report renders run summaries as aligned plain-text tables.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const minColumnWidth = 3

// Table renders header and rows as a pipe-delimited table with a separator
// line under the header. Columns are padded to their widest cell using
// terminal display width, so wide characters line up.
func Table(header []string, rows [][]string) []string {
	all := append([][]string{header}, rows...)

	colCount := 0
	for _, row := range all {
		colCount = max(colCount, len(row))
	}

	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i := range widths {
		widths[i] = minColumnWidth
	}

	for _, row := range all {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(all)+1)
	lines = append(lines, renderRow(header, widths))

	sep := make([]string, colCount)
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}

	lines = append(lines, renderRow(sep, widths))

	for _, row := range rows {
		lines = append(lines, renderRow(row, widths))
	}

	return lines
}

func renderRow(row []string, widths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, w := range widths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		if pad := w - runewidth.StringWidth(content); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
