package tdump

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Fallback literals for values with no scalar rendering.
const (
	litNone     = "None"
	litTrue     = "True"
	litFalse    = "False"
	litArray    = "Array"
	litObject   = "Object"
	litResource = "Resource"
	litUnknown  = "Unknown"
	litEllipsis = "..."
)

// Resource marks a value as an external handle. Open handles render as
// "Resource"; closed handles render as "Unknown".
type Resource interface {
	Closed() bool
}

// renderCell converts a single value to its display string. precision is the
// number of decimal places for floats. inMatrix selects the matrix-cell
// string convention (single-quoted, escaped) over the bare top-level one
// (verbatim). renderCell is total: every value produces a string.
func renderCell(v any, precision int, inMatrix bool) string {
	switch x := v.(type) {
	case nil:
		return litNone
	case bool:
		if x {
			return litTrue
		}
		return litFalse
	case string:
		if inMatrix {
			return quoteCell(x)
		}
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x, precision)
	case float32:
		return formatFloat(float64(x), precision)
	}
	if r, ok := v.(Resource); ok {
		if r.Closed() {
			return litUnknown
		}
		return litResource
	}
	if _, ok := asSlice(v); ok {
		return litArray
	}
	return renderReflected(v, precision, inMatrix)
}

// renderReflected handles named types and everything without a fast path.
func renderReflected(v any, precision int, inMatrix bool) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float(), precision)
	case reflect.Bool:
		if rv.Bool() {
			return litTrue
		}
		return litFalse
	case reflect.String:
		if inMatrix {
			return quoteCell(rv.String())
		}
		return rv.String()
	case reflect.Map, reflect.Struct:
		return litObject
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return litNone
		}
		return renderCell(rv.Elem().Interface(), precision, inMatrix)
	default:
		return litUnknown
	}
}

// formatFloat renders f with exactly precision digits after the decimal
// point, rounding half away from zero (2.5 at precision 0 is "3", -2.5 is
// "-3"). strconv alone rounds half to even, so the rounding is done first.
func formatFloat(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	shift := math.Pow(10, float64(precision))
	r := math.Floor(math.Abs(f)*shift+0.5) / shift
	if math.Signbit(f) && r != 0 {
		r = -r
	}
	return strconv.FormatFloat(r, 'f', precision, 64)
}

// quoteCell wraps s in single quotes, escaping backslashes and embedded
// single quotes.
func quoteCell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}
