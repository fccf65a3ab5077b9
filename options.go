package govisit

import "reflect"

// Options bundles traversal options. The zero value carries the defaults:
// nils excluded, keys and sets sorted, fields included, accessors excluded,
// cycle detection on. Mutating an Options value while a Walk is in flight has
// undefined effect.
type Options struct {
	// IncludeNils emits nil-valued members; when false (default) a nil member
	// is dropped together with its key.
	IncludeNils bool

	// DisableKeySort keeps object members in declaration order and map
	// entries in iteration order instead of sorting them.
	// Object members sort case-insensitively by display name; map keys sort
	// by natural order when both keys share an ordered kind, falling back to
	// their string form.
	DisableKeySort bool

	// DisableSetSort keeps set elements (map[T]struct{}) in iteration order.
	// Sorting is best-effort: element kinds without a natural order silently
	// keep iteration order either way.
	DisableSetSort bool

	// IncludeOmitted traverses fields whose resolved key is "-"
	// (tagged visit:"-" or json:"-"), which are dropped by default.
	IncludeOmitted bool

	// SkipFields excludes struct fields from traversal. Fields are included
	// by default.
	SkipFields bool

	// Accessors includes exported niladic single-result methods as members
	// of struct composites.
	Accessors bool

	// DisableCycleDetection turns off the ancestor-path cycle guard. A
	// cyclic graph then recurses without bound; that is the documented
	// outcome of disabling the guard, not a defect.
	DisableCycleDetection bool

	// CycleReplacement substitutes a value for a child already present on
	// the ancestor path. When nil, such children are skipped along with
	// their key. The replacement is traversed normally and is itself subject
	// to cycle detection.
	CycleReplacement func(v any) any

	// FieldFilter rejects struct fields before they are read. Nil accepts
	// every field.
	FieldFilter func(sf reflect.StructField) bool

	// TypeFilter rejects resolved values by dynamic type; a rejected value
	// is dropped together with its key. Nil accepts every type.
	TypeFilter func(t reflect.Type) bool

	// FieldNameFunc rewrites field display names after tag resolution.
	FieldNameFunc func(name string) string

	// AccessorNameFunc rewrites accessor display names.
	AccessorNameFunc func(name string) string

	// AccessorErrorsFatal promotes accessor invocation failures to fatal
	// errors. By default a failing accessor is reported through Warn and its
	// member is dropped, while field read failures are always fatal.
	AccessorErrorsFatal bool

	// Warn receives recovered, non-fatal failures (accessor invocations).
	// Nil drops them.
	Warn func(err error)
}
