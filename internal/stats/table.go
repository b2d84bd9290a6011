// Package stats renders round results, history tables, and bucket charts.
package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatColumns lays out headers and rows as space-separated aligned
// columns. The listed column indexes are right-aligned; widths are measured
// by terminal display width.
func formatColumns(headers []string, rows [][]string, rightAlign ...int) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	rightSet := make(map[int]bool, len(rightAlign))
	for _, idx := range rightAlign {
		rightSet[idx] = true
	}

	widths := make([]int, colCount)
	measure := func(row []string) {
		for i := 0; i < colCount && i < len(row); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightSet))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightSet))
	}
	return lines
}

func formatRow(row []string, widths []int, rightSet map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, widths[i], rightSet[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	cellWidth := runewidth.StringWidth(value)
	if cellWidth >= width {
		return value
	}
	padding := strings.Repeat(" ", width-cellWidth)
	if rightAlign {
		return padding + value
	}
	return value + padding
}
