package govisit

import (
	"reflect"
	"strings"
)

// KeyOrigin records which kind of slot a key names inside its composite.
type KeyOrigin int

const (
	OriginField    KeyOrigin = iota // A struct field.
	OriginAccessor                  // A niladic accessor method.
	OriginMapKey                    // A map entry key.
)

// Key identifies a named slot inside a key-value composite. For map entries
// Name is the key value itself and may be non-string; for fields and
// accessors it is a rewritable display name.
type Key struct {
	Name   any
	Origin KeyOrigin
	Owner  any
}

// resolveFieldKey applies the repository-wide rule to resolve a struct
// field's display name.
// Priority: visit:"name=..." > json tag name > field name; "-" omits the field.
func resolveFieldKey(sf reflect.StructField) string {
	if vt := sf.Tag.Get("visit"); vt != "" {
		if vt == "-" {
			return "-"
		}
		for _, p := range strings.Split(vt, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if i == 0 {
				return sf.Name
			}
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}
