// Package tdump renders scalars and 1D/2D/3D arrays as aligned,
// human-readable text in the style of a tensor library's printer.
//
// The central entry points are [Render], [Write], and [Print], which accept
// an [Options] record and variadic values of any type. Values are classified
// by shape and routed to the matching renderer:
//
//   - scalars render via fixed-precision cell formatting
//   - 2D matrices render as labeled, bracketed, column-aligned grids
//   - 3D tensors render as blank-line-separated blocks of 2D grids
//   - everything else falls back to a generic recursive bracketed form
//
// Long dimensions are summarized: only the configured number of leading and
// trailing rows, columns, and blocks are shown, with a "..." marker standing
// in for the elided middle.
//
// # Shapes
//
// [Classify] reports how a value will be treated:
//
//	tdump.Classify([]any{1, 2})                 // OneD
//	tdump.Classify([]any{[]any{1}, []any{2}})   // TwoD
//
// Rows of a matrix may have different lengths; missing cells render as blank
// padding of the column's width. Typed slices such as [][]float64 classify
// the same way as []any trees.
//
// # Cells
//
// Each cell renders to a canonical string: integers verbatim, floats with a
// fixed number of decimals (round half away from zero), booleans as "True"
// and "False", nil as "None", and strings single-quoted with embedded quotes
// and backslashes escaped. Values with no scalar rendering map to the
// literals "Array", "Object", "Resource", or "Unknown".
//
// # Interface Design
//
// Two optional interfaces let host values participate:
//
//   - [ArrayConvertible] — container-like objects expose their elements and
//     are classified as sequences
//   - [Resource] — external handles render as "Resource" while open and
//     "Unknown" once closed
//
// # Labels
//
// A leading non-array argument acts as a label. Followed by one 3D tensor it
// becomes the tensor's printed label; followed by one 2D matrix it is emitted
// as a plain heading line above an aligned grid; followed by two or more 1D
// rows it heads a matrix assembled from those rows. These are distinct
// output forms and deliberately not unified.
//
// # Options
//
// [Default] returns the standard configuration (precision 2, head/tail 3,
// label "tensor"). [Options.Clamp] bounds every numeric field to its valid
// range; [LoadOptions] decodes a YAML options document over the defaults:
//
//	opts, err := tdump.LoadOptions(file)
//	fmt.Print(tdump.Render(opts, matrix))
//
// The Rows and Cols options accept "lo:hi" span selectors that subset a
// matrix before summarization. Malformed spans are ignored.
//
// # Output
//
// Rendering never fails: every input has a defined textual form. [Write]
// and [Fprint] report only sink errors. [Print] writes to stdout and wraps
// the output in an escaped <pre> block when stdout is not a terminal, so
// dumps embedded in web hosts stay readable.
package tdump
