package tdump

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// Bounds applied by [Options.Clamp]. The renderers assume already-clamped
// values.
const (
	MaxPrecision = 10
	MaxHeadTail  = 50
	MaxLabelLen  = 50

	// DefaultLabel prefixes labeled tensor output.
	DefaultLabel = "tensor"

	// maxArgs bounds how many top-level arguments one call renders.
	maxArgs = 32
)

// Options configures rendering. The zero value is usable but shows nothing
// past the ellipsis markers; start from [Default].
type Options struct {
	// Precision is the number of decimal places for float cells.
	Precision int `yaml:"precision"`

	// Head/Tail counts bound how many leading/trailing rows, columns, and
	// blocks are shown before the middle is elided.
	HeadRows   int `yaml:"headRows"`
	TailRows   int `yaml:"tailRows"`
	HeadCols   int `yaml:"headCols"`
	TailCols   int `yaml:"tailCols"`
	HeadBlocks int `yaml:"headBlocks"`
	TailBlocks int `yaml:"tailBlocks"`

	// Label prefixes labeled 2D/3D output. Empty means [DefaultLabel].
	Label string `yaml:"label"`

	// Separator joins the rendered parts of a multi-argument call.
	Separator string `yaml:"separator"`

	// Rows and Cols are optional "lo:hi" span selectors applied to 2D
	// matrices (and to every block of a 3D tensor) before summarization.
	// Malformed spans are ignored.
	Rows string `yaml:"rows"`
	Cols string `yaml:"cols"`
}

// Default returns the standard options: precision 2, three rows, columns,
// and blocks kept at each end, the "tensor" label, and newline separation.
func Default() Options {
	return Options{
		Precision:  2,
		HeadRows:   3,
		TailRows:   3,
		HeadCols:   3,
		TailCols:   3,
		HeadBlocks: 3,
		TailBlocks: 3,
		Label:      DefaultLabel,
		Separator:  "\n",
	}
}

// Clamp bounds every numeric field to its valid range, truncates the label
// to [MaxLabelLen] runes, and substitutes [DefaultLabel] for an empty label.
// Render clamps defensively, so callers only need Clamp when they want to
// inspect the effective values.
func (o Options) Clamp() Options {
	o.Precision = clampInt(o.Precision, 0, MaxPrecision)
	o.HeadRows = clampInt(o.HeadRows, 0, MaxHeadTail)
	o.TailRows = clampInt(o.TailRows, 0, MaxHeadTail)
	o.HeadCols = clampInt(o.HeadCols, 0, MaxHeadTail)
	o.TailCols = clampInt(o.TailCols, 0, MaxHeadTail)
	o.HeadBlocks = clampInt(o.HeadBlocks, 0, MaxHeadTail)
	o.TailBlocks = clampInt(o.TailBlocks, 0, MaxHeadTail)
	if o.Label == "" {
		o.Label = DefaultLabel
	} else if r := []rune(o.Label); len(r) > MaxLabelLen {
		o.Label = string(r[:MaxLabelLen])
	}
	return o
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LoadOptions decodes a YAML options document over [Default] and clamps the
// result. Omitted fields keep their defaults; an empty document yields the
// defaults unchanged.
func LoadOptions(r io.Reader) (Options, error) {
	opts := Default()
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return opts, nil
		}
		return Default(), err
	}
	return opts.Clamp(), nil
}
