// Package boxing converts primitive slices and arrays into ordered
// sequences of boxed values, presenting a uniform interface between typed
// element storage and the traversal engine.
package boxing

import "reflect"

func box[T any](s []T) []any {
	out := make([]any, len(s))
	for i, e := range s {
		out[i] = e
	}
	return out
}

// Box returns the elements of a slice or array as boxed values, in order.
// Common primitive widths take a typed fast path; other element types fall
// back to reflection. The second result is false when v is not a slice or
// array.
func Box(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []bool:
		return box(s), true
	case []int:
		return box(s), true
	case []int8:
		return box(s), true
	case []int16:
		return box(s), true
	case []int32:
		return box(s), true
	case []int64:
		return box(s), true
	case []uint:
		return box(s), true
	case []uint8:
		return box(s), true
	case []uint16:
		return box(s), true
	case []uint32:
		return box(s), true
	case []uint64:
		return box(s), true
	case []float32:
		return box(s), true
	case []float64:
		return box(s), true
	case []string:
		return box(s), true
	}
	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
