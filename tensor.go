package tdump

import "strings"

// formatLabeled3D renders a 3D tensor as labeled, blank-line-separated
// blocks. Block selection mirrors row selection: blocks beyond the head/tail
// limits collapse into a single "..." line between the kept blocks. Each
// block is independently summarized with the 2D limits, so blocks need not
// share row or column counts.
func formatLabeled3D(blocks [][][]any, headBlocks, tailBlocks, headRows, tailRows, headCols, tailCols int, label string, precision int) string {
	if len(blocks) == 0 {
		return label + "([])"
	}
	idx := keepIndices(len(blocks), headBlocks, tailBlocks)
	pieces := make([]string, len(idx))
	for i, bi := range idx {
		if bi < 0 {
			pieces[i] = litEllipsis
			continue
		}
		body := formatSummarized(blocks[bi], headRows, tailRows, headCols, tailCols, precision)
		// One extra leading space on every line of the block.
		pieces[i] = " " + strings.ReplaceAll(body, "\n", "\n ")
	}
	return label + "([\n " + strings.Join(pieces, ",\n\n ") + "\n])"
}
