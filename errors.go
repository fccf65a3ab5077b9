package govisit

import (
	"fmt"
	"reflect"
)

// FieldError reports a failed struct field read. Field reads are fatal: the
// traversal aborts and the error surfaces to the Walk caller.
type FieldError struct {
	Type  reflect.Type
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("govisit: read field %s.%s: %v", e.Type, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// AccessorError reports a failed accessor invocation. By default it is
// recovered: reported through Options.Warn and the member dropped. With
// Options.AccessorErrorsFatal it aborts the traversal instead.
type AccessorError struct {
	Type   reflect.Type
	Method string
	Err    error
}

func (e *AccessorError) Error() string {
	return fmt.Sprintf("govisit: invoke accessor %s.%s: %v", e.Type, e.Method, e.Err)
}

func (e *AccessorError) Unwrap() error { return e.Err }

// AdapterError reports a type adapter that failed while rewriting a value.
type AdapterError struct {
	Type reflect.Type
	Err  error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("govisit: adapt %s: %v", e.Type, e.Err)
}

func (e *AdapterError) Unwrap() error { return e.Err }

// UnsupportedTypeError reports a value whose kind the Walker cannot classify
// and for which no adapter is registered.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("govisit: unsupported type %s", e.Type)
}
