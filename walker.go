package govisit

import (
	"fmt"
	"reflect"

	"github.com/reoring/govisit/internal/boxing"
	"github.com/reoring/govisit/internal/safecall"
)

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// Walker traverses arbitrary values depth-first and feeds the event stream
// to its Visitor. The ancestor stack, nesting depth, and adapter cache are
// instance-owned mutable state: a Walker is safe for sequential reuse and
// unsafe for concurrent Walk calls.
type Walker struct {
	visitor  Visitor
	opt      Options
	adapters adapterRegistry
	depth    int
	stack    []ancestorFrame
}

// New returns a Walker delivering events to v. The zero Options value
// carries the defaults; see Options.
func New(v Visitor, opt Options) *Walker {
	return &Walker{visitor: v, opt: opt}
}

// Depth returns the current nesting depth, 0 at the root and between
// top-level Walk calls.
func (w *Walker) Depth() int { return w.depth }

// Walk classifies v and traverses it, running to completion or to the first
// fatal error. The traversal context is fresh per call: depth starts at 0
// and the ancestor stack empty. The root value itself joins the ancestor
// path, so any descendant reference back to it is treated as a cycle.
func (w *Walker) Walk(v any) error {
	w.depth = 0
	w.stack = w.stack[:0]
	d := w.enter(v)
	defer w.leave(d)
	return w.walk(d.value)
}

func (w *Walker) walk(v any) error {
	if v == nil {
		return w.visitor.VisitNil()
	}
	rv := reflect.ValueOf(v)
	t := rv.Type()

	if adaptable(t) {
		if fn := w.adapters.resolve(t); fn != nil {
			return w.walkAdapted(t, fn, v)
		}
	}
	if c, ok := v.(Char); ok {
		return w.visitor.VisitRune(rune(c))
	}
	if isEnum(t) {
		return w.visitor.VisitEnum(v.(fmt.Stringer).String())
	}

	switch rv.Kind() {
	case reflect.Bool:
		return w.visitor.VisitBool(rv.Bool())
	case reflect.Int8:
		return w.visitor.VisitInt8(int8(rv.Int()))
	case reflect.Int16:
		return w.visitor.VisitInt16(int16(rv.Int()))
	case reflect.Int32:
		return w.visitor.VisitInt32(int32(rv.Int()))
	case reflect.Int, reflect.Int64:
		return w.visitor.VisitInt64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return w.visitor.VisitUint64(rv.Uint())
	case reflect.Float32:
		return w.visitor.VisitFloat32(float32(rv.Float()))
	case reflect.Float64:
		return w.visitor.VisitFloat64(rv.Float())
	case reflect.String:
		return w.visitor.VisitString(rv.String())
	case reflect.Pointer:
		if rv.IsNil() {
			return w.visitor.VisitNil()
		}
		elem := rv.Elem()
		// Keep the pointer for the struct composer so pointer-receiver
		// accessors stay reachable; anything else re-enters classification.
		if elem.Kind() == reflect.Struct && w.adapters.resolve(elem.Type()) == nil {
			return w.walkStruct(v, elem)
		}
		return w.walk(elem.Interface())
	case reflect.Map:
		if rv.IsNil() {
			return w.visitor.VisitNil()
		}
		// Set and map detection must precede the generic sequence cases.
		if isSet(t) {
			return w.walkSet(v, rv)
		}
		return w.walkMap(v, rv)
	case reflect.Slice:
		if rv.IsNil() {
			return w.visitor.VisitNil()
		}
		items, _ := boxing.Box(v)
		return w.walkSequence(v, items)
	case reflect.Array:
		items, _ := boxing.Box(v)
		return w.walkSequence(v, items)
	case reflect.Func:
		if rv.IsNil() {
			return w.visitor.VisitNil()
		}
		if items, ok := seqValues(rv); ok {
			return w.walkSequence(v, items)
		}
	case reflect.Struct:
		return w.walkStruct(v, rv)
	}
	return &UnsupportedTypeError{Type: t}
}

func (w *Walker) walkAdapted(t reflect.Type, fn AdapterFunc, v any) error {
	var out any
	if err := safecall.Do("adapter", func() error {
		out = fn(v)
		return nil
	}); err != nil {
		return &AdapterError{Type: t, Err: err}
	}
	// The rewritten value re-enters full classification.
	return w.walk(out)
}

// isEnum reports the enumerant kind: a defined integer type implementing
// fmt.Stringer, the stringer-generated enum idiom.
func isEnum(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return t.PkgPath() != "" && t.Implements(stringerType)
	}
	return false
}

var emptyStructType = reflect.TypeOf(struct{}{})

// isSet recognizes the map[T]struct{} set idiom.
func isSet(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Elem() == emptyStructType
}

// accepted applies the value-level inclusion filter: nils are dropped unless
// included, and the type filter may reject the dynamic type. A rejected
// value is dropped together with its key.
func (w *Walker) accepted(child any) bool {
	if isNilValue(child) {
		return w.opt.IncludeNils
	}
	if w.opt.TypeFilter != nil && !w.opt.TypeFilter(reflect.TypeOf(child)) {
		return false
	}
	return true
}

// isNilValue treats typed nil pointers, maps, slices, chans, and funcs the
// same as an untyped nil for the null-inclusion policy.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func (w *Walker) warn(err error) {
	if w.opt.Warn != nil {
		w.opt.Warn(err)
	}
}
