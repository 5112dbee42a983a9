package tdump

import (
	"reflect"
	"strings"
)

// maxGenericDepth caps recursion on irregular nested values. Elements past
// the cap render as the "Array" literal, as does any sequence already being
// rendered further up the stack (cyclic structures).
const maxGenericDepth = 8

// renderGeneric renders a value that fits none of the specialized shapes:
// elements joined by ", " inside brackets, recursing into nested sequences.
// A nested value that classifies TwoD renders as an aligned grid.
func renderGeneric(v any, precision int) string {
	var b strings.Builder
	writeGeneric(&b, v, precision, 0, map[uintptr]bool{})
	return b.String()
}

func writeGeneric(b *strings.Builder, v any, precision, depth int, active map[uintptr]bool) {
	s, ok := asSlice(v)
	if !ok {
		b.WriteString(renderCell(v, precision, true))
		return
	}
	if depth >= maxGenericDepth {
		b.WriteString(litArray)
		return
	}
	if id, ok := sliceID(v); ok {
		if active[id] {
			b.WriteString(litArray)
			return
		}
		active[id] = true
		defer delete(active, id)
	}

	b.WriteByte('[')
	for i, e := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		if Classify(e) == TwoD {
			b.WriteString(formatAligned(toMatrix(e), precision))
			continue
		}
		writeGeneric(b, e, precision, depth+1, active)
	}
	b.WriteByte(']')
}

// sliceID returns an identity for the value's backing array, used to detect
// self-referential structures. Only slice kinds have a stable identity;
// arrays and converted objects rely on the depth cap instead.
func sliceID(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.IsNil() || rv.Cap() == 0 {
		return 0, false
	}
	return rv.Pointer(), true
}
