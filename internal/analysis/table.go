package analysis

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MarkdownTable renders header and rows as a markdown table padded by display
// width, so wide (CJK) characters line up. Cells wider than maxCell are
// truncated; maxCell <= 0 disables truncation.
func MarkdownTable(header []string, rows [][]string, maxCell int) []string {
	colCount := len(header)
	table := make([][]string, 0, len(rows)+1)
	table = append(table, header)
	for _, row := range rows {
		cells := make([]string, colCount)
		for i := 0; i < colCount && i < len(row); i++ {
			cells[i] = strings.ReplaceAll(row[i], "|", "\\|")
			if maxCell > 0 {
				cells[i] = runewidth.Truncate(cells[i], maxCell, "…")
			}
		}
		table = append(table, cells)
	}

	// Minimum width of 3 keeps the "---" separator valid.
	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = 3
	}
	for _, row := range table {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(table)+1)
	for i, row := range table {
		lines = append(lines, renderRow(row, colWidths))
		if i == 0 {
			sep := make([]string, colCount)
			for j := range sep {
				sep[j] = strings.Repeat("-", colWidths[j])
			}
			lines = append(lines, renderRow(sep, colWidths))
		}
	}
	return lines
}

func renderRow(row []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for j, content := range row {
		sb.WriteString(" ")
		sb.WriteString(content)
		if pad := widths[j] - runewidth.StringWidth(content); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" |")
	}
	return sb.String()
}
