package tdump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		f         float64
		precision int
		want      string
	}{
		"half up":            {f: 2.5, precision: 0, want: "3"},
		"half away negative": {f: -2.5, precision: 0, want: "-3"},
		"pi two places":      {f: 3.14159, precision: 2, want: "3.14"},
		"quarter rounds up":  {f: 2.25, precision: 1, want: "2.3"},
		"no negative zero":   {f: -0.4, precision: 0, want: "0"},
		"trailing zeros":     {f: 1.0, precision: 3, want: "1.000"},
		"negative sign kept": {f: -1.005, precision: 1, want: "-1.0"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatFloat(tt.f, tt.precision))
		})
	}
}

func TestQuoteCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `'a\'b'`, quoteCell("a'b"))
	assert.Equal(t, `'a\\b'`, quoteCell(`a\b`))
	assert.Equal(t, "''", quoteCell(""))
}

func TestKeepIndices(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n, head, tail int
		want          []int
	}{
		"fits exactly":   {n: 3, head: 2, tail: 1, want: []int{0, 1, 2}},
		"one over":       {n: 4, head: 2, tail: 1, want: []int{0, 1, -1, 3}},
		"truncated":      {n: 5, head: 2, tail: 1, want: []int{0, 1, -1, 4}},
		"zero head tail": {n: 2, head: 0, tail: 0, want: []int{-1}},
		"empty":          {n: 0, head: 2, tail: 2, want: []int{}},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, keepIndices(tt.n, tt.head, tt.tail))
		})
	}
}

func TestFormatAlignedEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[]", formatAligned(nil, 2))
	assert.Equal(t, "[]", formatAligned([][]any{}, 2))
}

func TestFormatAlignedSingleRow(t *testing.T) {
	t.Parallel()
	got := formatAligned([][]any{{1, 2}}, 0)
	assert.Equal(t, "[[1, 2]]", got)
}

func TestFormatAlignedRagged(t *testing.T) {
	t.Parallel()
	got := formatAligned([][]any{{1, 23}, {12, 3, 45}}, 0)
	assert.Equal(t, "[[ 1, 23,   ],\n [12,  3, 45]]", got)
}

func TestFormatAlignedWideRunes(t *testing.T) {
	t.Parallel()
	got := formatAligned([][]any{{"你", 1}, {"a", 22}}, 0)
	assert.Equal(t, "[['你',  1],\n [ 'a', 22]]", got)
}

func TestFormatSummarizedKeepsAllWhenSmall(t *testing.T) {
	t.Parallel()
	rows := [][]any{{1, 2}, {3, 4}}
	assert.Equal(t, formatAligned(rows, 0), formatSummarized(rows, 3, 3, 3, 3, 0))
}

func TestFormatSummarizedRowEllipsisBoundary(t *testing.T) {
	t.Parallel()
	// headRows+tailRows+1 rows: the ellipsis line appears exactly once,
	// between the head block and the first tail row.
	rows := [][]any{{1}, {2}, {3}, {4}}
	got := formatSummarized(rows, 2, 1, 3, 3, 0)
	assert.Equal(t, "[[1],\n [2],\n ...,\n [4]]", got)
}

func TestFormatSummarizedWidthsFromKeptRows(t *testing.T) {
	t.Parallel()
	// The elided middle row holds the widest cell; widths come from kept
	// rows only.
	rows := [][]any{{100, 2}, {31337, 4}, {5, 6}}
	got := formatSummarized(rows, 1, 1, 3, 3, 0)
	assert.Equal(t, "[[100, 2],\n ...,\n [  5, 6]]", got)
}

func TestFormatSummarizedColumnMarker(t *testing.T) {
	t.Parallel()
	rows := [][]any{{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}
	got := formatSummarized(rows, 3, 3, 2, 2, 0)
	assert.Equal(t, "[[1, 2, ..., 9, 10]]", got)
}

func TestFormatLabeled2D(t *testing.T) {
	t.Parallel()
	got := formatLabeled2D([][]any{{1, 2}, {3, 4}}, 3, 3, 3, 3, "tensor", 0)
	assert.Equal(t, "tensor([\n  [1, 2],\n  [3, 4]\n])", got)
}

func TestFormatLabeled2DEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "m([])", formatLabeled2D(nil, 3, 3, 3, 3, "m", 0))
}

func TestFormatLabeled3D(t *testing.T) {
	t.Parallel()
	blocks := [][][]any{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	}
	got := formatLabeled3D(blocks, 3, 3, 3, 3, 3, 3, "tensor", 0)
	want := "tensor([\n" +
		"  [[1, 2],\n" +
		"  [3, 4]],\n" +
		"\n" +
		"  [[5, 6],\n" +
		"  [7, 8]]\n" +
		"])"
	assert.Equal(t, want, got)
}

func TestFormatLabeled3DEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "t([])", formatLabeled3D(nil, 3, 3, 3, 3, 3, 3, "t", 0))
}

func TestParseSpan(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		s      string
		n      int
		lo, hi int
		ok     bool
	}{
		"full":         {s: "1:3", n: 5, lo: 1, hi: 3, ok: true},
		"open end":     {s: "2:", n: 5, lo: 2, hi: 5, ok: true},
		"open start":   {s: ":2", n: 5, lo: 0, hi: 2, ok: true},
		"both open":    {s: ":", n: 5, lo: 0, hi: 5, ok: true},
		"clipped":      {s: "1:99", n: 5, lo: 1, hi: 5, ok: true},
		"spaces":       {s: " 1 : 3 ", n: 5, lo: 1, hi: 3, ok: true},
		"empty":        {s: "", n: 5, ok: false},
		"no colon":     {s: "3", n: 5, ok: false},
		"not a number": {s: "a:b", n: 5, ok: false},
		"negative":     {s: "-1:2", n: 5, ok: false},
		"inverted":     {s: "3:1", n: 5, ok: false},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			lo, hi, ok := parseSpan(tt.s, tt.n)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.lo, lo)
				assert.Equal(t, tt.hi, hi)
			}
		})
	}
}

func TestRenderCellIntegersIgnorePrecision(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "5", renderCell(5, 2, false))
	assert.Equal(t, "-7", renderCell(int64(-7), 4, true))
}

func TestRenderCellNamedTypes(t *testing.T) {
	t.Parallel()
	type myInt int
	type myStr string
	assert.Equal(t, "9", renderCell(myInt(9), 0, false))
	assert.Equal(t, "'x'", renderCell(myStr("x"), 0, true))
	assert.Equal(t, "x", renderCell(myStr("x"), 0, false))
}

func TestRenderCellFallbacks(t *testing.T) {
	t.Parallel()
	assert.Equal(t, litArray, renderCell([]any{1}, 0, true))
	assert.Equal(t, litObject, renderCell(map[string]int{"a": 1}, 0, true))
	assert.Equal(t, litObject, renderCell(struct{ X int }{1}, 0, true))
	assert.Equal(t, litNone, renderCell((*int)(nil), 0, true))
	assert.Equal(t, litUnknown, renderCell(make(chan int), 0, true))
}
