package govisit

import (
	"encoding/json"
	"math/big"
	"reflect"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// AdapterFunc rewrites a value before structural introspection. The result
// re-enters full classification, so a rewrite to another adapted type
// recurses correctly.
type AdapterFunc func(v any) any

type adapterEntry struct {
	typ reflect.Type
	fn  AdapterFunc
}

// adapterRegistry maps exact runtime types to rewrite functions. Resolution
// memoizes per exact type, including explicit no-match, so covariant scans
// run at most once per type seen.
type adapterRegistry struct {
	entries []adapterEntry
	cache   map[reflect.Type]AdapterFunc
}

func (r *adapterRegistry) register(t reflect.Type, fn AdapterFunc) {
	for i := range r.entries {
		if r.entries[i].typ == t {
			r.entries[i].fn = fn
			r.cache = nil
			return
		}
	}
	r.entries = append(r.entries, adapterEntry{typ: t, fn: fn})
	// A new entry may satisfy types previously memoized as no-match.
	r.cache = nil
}

func (r *adapterRegistry) resolve(t reflect.Type) AdapterFunc {
	if fn, ok := r.cache[t]; ok {
		return fn
	}
	var match AdapterFunc
	for _, e := range r.entries {
		if t == e.typ || t.AssignableTo(e.typ) {
			match = e.fn
			break
		}
	}
	if r.cache == nil {
		r.cache = make(map[reflect.Type]AdapterFunc)
	}
	r.cache[t] = match
	return match
}

// Register stores a rewrite for the exact type t, silently overwriting any
// previous registration for t. Interface types match every implementor
// during resolution, in registration order.
func (w *Walker) Register(t reflect.Type, fn AdapterFunc) {
	w.adapters.register(t, fn)
}

// RegisterAdapter is typed sugar over Walker.Register.
func RegisterAdapter[T any](w *Walker, fn func(v T) any) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	w.Register(t, func(v any) any { return fn(v.(T)) })
}

// RegisterBuiltinAdapters registers rewrites for common opaque value types:
// times and durations to their canonical strings, big numbers to their
// decimal form, compiled patterns to their source, json.Number to a numeric
// scalar, and UUIDs to their canonical string.
func (w *Walker) RegisterBuiltinAdapters() {
	RegisterAdapter(w, func(t time.Time) any { return t.Format(time.RFC3339Nano) })
	RegisterAdapter(w, func(d time.Duration) any { return d.String() })
	RegisterAdapter(w, func(re *regexp.Regexp) any { return re.String() })
	RegisterAdapter(w, func(i *big.Int) any { return i.String() })
	RegisterAdapter(w, func(f *big.Float) any { return f.Text('g', -1) })
	RegisterAdapter(w, func(r *big.Rat) any { return r.RatString() })
	RegisterAdapter(w, func(n json.Number) any {
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	})
	RegisterAdapter(w, func(u uuid.UUID) any { return u.String() })
}

// adaptable reports whether the registry is consulted for t: defined types
// and structs, plus pointers to either. Predeclared scalar kinds and unnamed
// containers bypass resolution and go straight to their dedicated path.
func adaptable(t reflect.Type) bool {
	if t.PkgPath() != "" || t.Kind() == reflect.Struct {
		return true
	}
	if t.Kind() == reflect.Pointer {
		e := t.Elem()
		return e.PkgPath() != "" || e.Kind() == reflect.Struct
	}
	return false
}
