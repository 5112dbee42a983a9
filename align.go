package tdump

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatAligned renders a matrix as a bracketed grid with right-aligned,
// per-column padded cells. Rows may be ragged; missing cells render as blank
// padding of the column's width. An empty matrix renders as "[]".
func formatAligned(rows [][]any, precision int) string {
	cols := maxRowLen(rows)
	return renderGrid(rows, allIndices(len(rows)), allIndices(cols), precision)
}

// renderGrid is the shared grid renderer behind the aligned and summarized
// forms. rowIdx and colIdx list the kept row indices and column positions in
// display order; -1 marks an ellipsis row or column. Continuation lines are
// indented one space so rows align under the opening bracket.
func renderGrid(rows [][]any, rowIdx, colIdx []int, precision int) string {
	// Render kept cells and track per-position display widths.
	cells := make([][]string, 0, len(rowIdx))
	widths := make([]int, len(colIdx))
	for _, ri := range rowIdx {
		if ri < 0 {
			cells = append(cells, nil)
			continue
		}
		row := rows[ri]
		line := make([]string, len(colIdx))
		for j, ci := range colIdx {
			switch {
			case ci < 0:
				line[j] = litEllipsis
			case ci < len(row):
				line[j] = renderCell(row[ci], precision, true)
			}
			if w := runewidth.StringWidth(line[j]); w > widths[j] {
				widths[j] = w
			}
		}
		cells = append(cells, line)
	}

	pieces := make([]string, len(rowIdx))
	for i, ri := range rowIdx {
		if ri < 0 {
			pieces[i] = litEllipsis
			continue
		}
		padded := make([]string, len(colIdx))
		for j, cell := range cells[i] {
			padded[j] = padLeft(cell, widths[j])
		}
		pieces[i] = "[" + strings.Join(padded, ", ") + "]"
	}
	return "[" + strings.Join(pieces, ",\n ") + "]"
}

// padLeft right-aligns s within width display columns.
func padLeft(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

func maxRowLen(rows [][]any) int {
	n := 0
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
