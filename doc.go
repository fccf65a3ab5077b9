package govisit

// Package govisit provides:
//
// - Recursive, depth-first traversal of arbitrary Go values (Walker.Walk)
// - A pluggable Visitor interface receiving lifecycle events and scalar visits
// - A uniform key/value model over struct fields, accessor methods, and map keys
// - Ancestor-path cycle detection with skip-or-replace policy
// - A type-adapter registry rewriting opaque values before introspection
//
// Design policy:
// - Keep only public APIs in the root package; put helpers under internal/.
// - Consumers live in subpackages (json5) and never introspect values themselves.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	d := json5.NewDumper(os.Stdout)
//	w := govisit.New(d, govisit.Options{IncludeNils: true})
//	w.RegisterBuiltinAdapters()
//	err := w.Walk(value)
//
// A single Walker is safe for sequential reuse; it is not safe for
// concurrent Walk calls.
