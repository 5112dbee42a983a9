package tdump

import (
	"strconv"
	"strings"
)

// parseSpan parses a "lo:hi" half-open span selector against a dimension of
// size n. Either bound may be omitted ("2:", ":4", ":"). Out-of-range bounds
// are clipped. Malformed input reports ok=false and the caller applies no
// filter; a selector must never cause an error.
func parseSpan(s string, n int) (lo, hi int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}
	before, after, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}
	lo, hi = 0, n
	if before = strings.TrimSpace(before); before != "" {
		v, err := strconv.Atoi(before)
		if err != nil || v < 0 {
			return 0, 0, false
		}
		lo = v
	}
	if after = strings.TrimSpace(after); after != "" {
		v, err := strconv.Atoi(after)
		if err != nil || v < 0 {
			return 0, 0, false
		}
		hi = v
	}
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// applySpans subsets a matrix by the Rows and Cols selectors. Unset or
// malformed selectors leave that dimension intact.
func applySpans(rows [][]any, opts Options) [][]any {
	if lo, hi, ok := parseSpan(opts.Rows, len(rows)); ok {
		rows = rows[lo:hi]
	}
	if opts.Cols == "" {
		return rows
	}
	out := make([][]any, len(rows))
	filtered := false
	for i, row := range rows {
		if lo, hi, ok := parseSpan(opts.Cols, len(row)); ok {
			out[i] = row[lo:hi]
			filtered = true
		} else {
			out[i] = row
		}
	}
	if !filtered {
		return rows
	}
	return out
}
