package tdump

import "reflect"

// Shape is the dimensionality category of a value.
type Shape int

const (
	Scalar Shape = iota
	OneD
	TwoD
	ThreeD
	Unclassified
)

var shapeNames = map[Shape]string{
	Scalar:       "scalar",
	OneD:         "1d",
	TwoD:         "2d",
	ThreeD:       "3d",
	Unclassified: "unclassified",
}

// String returns the shape name.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// ArrayConvertible lets container-like host objects expose their elements.
// Implementations are classified and rendered as if they were the returned
// slice.
type ArrayConvertible interface {
	AsArray() []any
}

// asSlice converts one level of sequence structure to []any. It consults
// [ArrayConvertible] first, then accepts any slice or array kind via
// reflection. Strings and nil are not sequences.
func asSlice(v any) ([]any, bool) {
	if c, ok := v.(ArrayConvertible); ok {
		return c.AsArray(), true
	}
	if s, ok := v.([]any); ok {
		return s, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Classify determines how a value will be rendered.
//
// A sequence of scalars is OneD. A sequence whose elements are all
// scalar-sequences (of any lengths, including none) is TwoD, as is an empty
// sequence: an empty value carries no depth of its own, so the convention
// follows what callers most often pass. A sequence whose elements all
// classify TwoD is ThreeD. Anything deeper or mixed is Unclassified and
// takes the generic rendering path. Non-sequences are Scalar.
func Classify(v any) Shape {
	s, ok := asSlice(v)
	if !ok {
		return Scalar
	}
	if len(s) == 0 {
		return TwoD
	}
	if allScalars(s) {
		return OneD
	}
	if isMatrix(s) {
		return TwoD
	}
	threeD := true
	for _, e := range s {
		block, ok := asSlice(e)
		if !ok || !isMatrix(block) {
			threeD = false
			break
		}
	}
	if threeD {
		return ThreeD
	}
	return Unclassified
}

// isMatrix reports whether every element is a sequence of scalars. Rows may
// be empty or absent entirely (a zero-row matrix). The check is direct
// rather than recursive, so cyclic structures classify Unclassified instead
// of overflowing.
func isMatrix(rows []any) bool {
	for _, e := range rows {
		row, ok := asSlice(e)
		if !ok || !allScalars(row) {
			return false
		}
	}
	return true
}

func allScalars(s []any) bool {
	for _, e := range s {
		if _, ok := asSlice(e); ok {
			return false
		}
	}
	return true
}

// toMatrix converts a TwoD-classified value into rows of raw cells.
// Non-sequence rows contribute empty rows; callers only pass classified
// values so that branch is defensive.
func toMatrix(v any) [][]any {
	s, _ := asSlice(v)
	rows := make([][]any, len(s))
	for i, e := range s {
		row, _ := asSlice(e)
		rows[i] = row
	}
	return rows
}

// toTensor converts a ThreeD-classified value into blocks of rows.
func toTensor(v any) [][][]any {
	s, _ := asSlice(v)
	blocks := make([][][]any, len(s))
	for i, e := range s {
		blocks[i] = toMatrix(e)
	}
	return blocks
}
