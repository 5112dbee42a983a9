package tdump

import "strings"

// keepIndices selects which of n indices survive head/tail truncation. When
// n fits within head+tail every index is kept; otherwise the result is the
// head indices, a -1 ellipsis marker, then the tail indices.
func keepIndices(n, head, tail int) []int {
	if n <= head+tail {
		return allIndices(n)
	}
	idx := make([]int, 0, head+tail+1)
	for i := 0; i < head; i++ {
		idx = append(idx, i)
	}
	idx = append(idx, -1)
	for i := n - tail; i < n; i++ {
		idx = append(idx, i)
	}
	return idx
}

// formatSummarized renders a matrix like formatAligned but elides rows and
// columns beyond the head/tail limits, substituting "..." markers. Column
// widths are computed over the kept rows only.
func formatSummarized(rows [][]any, headRows, tailRows, headCols, tailCols, precision int) string {
	rowIdx := keepIndices(len(rows), headRows, tailRows)
	colIdx := keepIndices(maxRowLen(rows), headCols, tailCols)
	return renderGrid(rows, rowIdx, colIdx, precision)
}

// formatLabeled2D wraps a summarized matrix in the torch-style labeled form:
//
//	tensor([
//	  [1, 2],
//	  [3, 4]
//	])
//
// The body's rows move onto their own lines indented two spaces, and the
// closing bracket sits alone above the closing paren.
func formatLabeled2D(rows [][]any, headRows, tailRows, headCols, tailCols int, label string, precision int) string {
	body := formatSummarized(rows, headRows, tailRows, headCols, tailCols, precision)
	if body == "[]" {
		return label + "([])"
	}
	inner := body[1 : len(body)-1]

	var b strings.Builder
	b.WriteString(label)
	b.WriteString("([\n ")
	for i, line := range strings.Split(inner, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		// Rows after the first already carry the 1-space grid indent.
		b.WriteByte(' ')
		b.WriteString(line)
	}
	b.WriteString("\n])")
	return b.String()
}
