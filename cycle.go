package govisit

import "reflect"

// ancestorFrame records one entry on the active recursion path. Only values
// with pointer identity can participate in cycles; identity-less values push
// a dead frame so the push/pop discipline stays strictly LIFO.
type ancestorFrame struct {
	typ  reflect.Type
	ptr  uintptr
	live bool
}

// decision is the cycle guard's verdict for one child.
type decision struct {
	skip   bool
	value  any
	pushed bool
}

// identity returns a reference identity for v when its kind has one.
// Comparison is by identity, never by value equality.
func identity(v any) (reflect.Type, uintptr, bool) {
	if v == nil {
		return nil, 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.Type(), rv.Pointer(), true
	}
	return rv.Type(), 0, false
}

// enter consults the ancestor stack for child. It detects cycles only along
// the current root-to-node path: two sibling branches may share an object
// without triggering skip or substitution.
func (w *Walker) enter(child any) decision {
	if w.opt.DisableCycleDetection {
		return decision{value: child}
	}
	t, p, live := identity(child)
	if live {
		for _, f := range w.stack {
			if f.live && f.ptr == p && f.typ == t {
				if w.opt.CycleReplacement == nil {
					return decision{skip: true}
				}
				child = w.opt.CycleReplacement(child)
				t, p, live = identity(child)
				w.stack = append(w.stack, ancestorFrame{typ: t, ptr: p, live: live})
				return decision{value: child, pushed: true}
			}
		}
	}
	w.stack = append(w.stack, ancestorFrame{typ: t, ptr: p, live: live})
	return decision{value: child, pushed: true}
}

// leave pops the frame pushed by a Proceed decision. Callers invoke it
// exactly once per Proceed, including on error paths.
func (w *Walker) leave(d decision) {
	if d.pushed {
		w.stack = w.stack[:len(w.stack)-1]
	}
}
