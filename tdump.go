package tdump

import "strings"

// Render formats args according to opts and returns the combined text.
//
// Dispatch, first match wins:
//
//  1. Label followed by exactly one 3D tensor: torch-style labeled blocks.
//  2. Label followed by exactly one 2D matrix: the label on its own line
//     above a plain aligned grid.
//  3. Several 1D rows (optionally headed by a label): one aligned grid.
//  4. Otherwise every argument renders independently (3D and 2D arrays in
//     their labeled torch-style forms, scalars as bare cells, anything
//     irregular through the generic recursive renderer) and the parts are
//     joined by the configured separator.
//
// Render never fails; at most the first 32 arguments are processed. Options
// are clamped on entry, so pre-validated and raw options behave alike.
func Render(opts Options, args ...any) string {
	opts = opts.Clamp()
	if len(args) > maxArgs {
		args = args[:maxArgs]
	}

	if len(args) == 2 {
		if _, isArr := asSlice(args[0]); !isArr {
			label := renderCell(args[0], opts.Precision, false)
			switch Classify(args[1]) {
			case ThreeD:
				return renderLabeled3D(toTensor(args[1]), opts, label)
			case TwoD:
				return label + "\n" + formatAligned(applySpans(toMatrix(args[1]), opts), opts.Precision)
			}
		}
	}

	if s, ok := renderRowArgs(opts, args); ok {
		return s
	}

	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = renderOne(arg, opts)
	}
	return strings.Join(parts, opts.Separator)
}

// renderRowArgs handles dispatch case 3: more than one argument where, after
// optionally peeling a leading non-array label, at least two arguments remain
// and every one classifies 1D. The rows become a single aligned matrix.
func renderRowArgs(opts Options, args []any) (string, bool) {
	if len(args) < 2 {
		return "", false
	}
	label := ""
	labeled := false
	rest := args
	if _, isArr := asSlice(args[0]); !isArr {
		label = renderCell(args[0], opts.Precision, false)
		labeled = true
		rest = args[1:]
	}
	if len(rest) < 2 {
		return "", false
	}
	rows := make([][]any, len(rest))
	for i, arg := range rest {
		if Classify(arg) != OneD {
			return "", false
		}
		rows[i], _ = asSlice(arg)
	}
	body := formatAligned(applySpans(rows, opts), opts.Precision)
	if labeled {
		return label + "\n" + body, true
	}
	return body, true
}

// renderOne formats a single argument for dispatch case 4.
func renderOne(arg any, opts Options) string {
	switch Classify(arg) {
	case ThreeD:
		return renderLabeled3D(toTensor(arg), opts, opts.Label)
	case TwoD:
		return formatLabeled2D(applySpans(toMatrix(arg), opts),
			opts.HeadRows, opts.TailRows, opts.HeadCols, opts.TailCols,
			opts.Label, opts.Precision)
	case Scalar:
		return renderCell(arg, opts.Precision, false)
	default:
		return renderGeneric(arg, opts.Precision)
	}
}

func renderLabeled3D(blocks [][][]any, opts Options, label string) string {
	if opts.Rows != "" || opts.Cols != "" {
		for i, block := range blocks {
			blocks[i] = applySpans(block, opts)
		}
	}
	return formatLabeled3D(blocks,
		opts.HeadBlocks, opts.TailBlocks,
		opts.HeadRows, opts.TailRows, opts.HeadCols, opts.TailCols,
		label, opts.Precision)
}
