// Package safecall runs fallible reflective steps, converting panics into
// ordinary errors so callers deal with a single failure channel.
package safecall

import "fmt"

// Do invokes fn and returns its error. A panic inside fn is recovered and
// reported as an error labeled with op.
func Do(op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%s: %w", op, e)
				return
			}
			err = fmt.Errorf("%s: panic: %v", op, r)
		}
	}()
	return fn()
}
