package govisit

import (
	"reflect"
	"sort"
	"strings"

	"github.com/reoring/govisit/internal/safecall"
)

// accessorDenylist rejects identity/introspection methods that every type
// tends to carry but that do not name data.
var accessorDenylist = map[string]bool{
	"String":   true,
	"Error":    true,
	"GoString": true,
	"Format":   true,
}

// member is one accepted slot of a struct composite, field or accessor,
// carrying its display name and a deferred read.
type member struct {
	name   string
	raw    string
	origin KeyOrigin
	read   func() (any, error)
}

// walkStruct composes a struct value as a key-value object. v keeps the
// caller's shape (possibly a pointer) for the accessor method set and for
// event payloads; sv is the dereferenced struct for field access.
func (w *Walker) walkStruct(v any, sv reflect.Value) error {
	members := w.structMembers(v, sv)
	if !w.opt.DisableKeySort {
		sort.SliceStable(members, func(i, j int) bool {
			return strings.ToLower(members[i].name) < strings.ToLower(members[j].name)
		})
	}
	w.depth++
	err := func() error {
		if err := w.visitor.OnComposite(EventEnter, KindObject, v); err != nil {
			return err
		}
		return w.walkMembers(v, sv.Type(), members)
	}()
	w.depth--
	if err != nil {
		return err
	}
	return w.visitor.OnComposite(EventLeave, KindObject, v)
}

func (w *Walker) walkMembers(v any, st reflect.Type, members []member) error {
	first := true
	for _, m := range members {
		child, err := m.read()
		if err != nil {
			if m.origin == OriginAccessor {
				ae := &AccessorError{Type: reflect.TypeOf(v), Method: m.raw, Err: err}
				if w.opt.AccessorErrorsFatal {
					return ae
				}
				// Recovered: report and treat the accessor as yielding no value.
				w.warn(ae)
				continue
			}
			return &FieldError{Type: st, Field: m.raw, Err: err}
		}
		if !w.accepted(child) {
			continue
		}
		d := w.enter(child)
		if d.skip {
			continue
		}
		err = func() error {
			defer w.leave(d)
			if !first {
				if err := w.visitor.OnComposite(EventBetweenChildren, KindObject, v); err != nil {
					return err
				}
			}
			if err := w.visitor.OnComposite(EventBeforeChild, KindObject, v); err != nil {
				return err
			}
			first = false
			if err := w.visitor.VisitKey(Key{Name: m.name, Origin: m.origin, Owner: v}); err != nil {
				return err
			}
			if err := w.walk(d.value); err != nil {
				return err
			}
			return w.visitor.OnComposite(EventAfterChild, KindObject, v)
		}()
		if err != nil {
			return err
		}
	}
	return nil
}

// structMembers gathers the accepted fields and, when enabled, accessor
// methods into one combined, logically unordered member set.
func (w *Walker) structMembers(v any, sv reflect.Value) []member {
	var members []member
	seen := make(map[string]bool)
	st := sv.Type()

	if !w.opt.SkipFields {
		for _, sf := range reflect.VisibleFields(st) {
			if sf.PkgPath != "" {
				// Unexported fields are unreadable from here.
				continue
			}
			if sf.Anonymous {
				ft := sf.Type
				if ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct {
					// The embedded struct itself is skipped; its promoted
					// leaves are visible on their own.
					continue
				}
			}
			key := resolveFieldKey(sf)
			if key == "-" {
				if !w.opt.IncludeOmitted {
					continue
				}
				key = sf.Name
			}
			if w.opt.FieldFilter != nil && !w.opt.FieldFilter(sf) {
				continue
			}
			if w.opt.FieldNameFunc != nil {
				key = w.opt.FieldNameFunc(key)
			}
			seen[sf.Name] = true
			index := sf.Index
			members = append(members, member{
				name:   key,
				raw:    sf.Name,
				origin: OriginField,
				read: func() (any, error) {
					var child any
					err := safecall.Do("field read", func() error {
						fv, err := sv.FieldByIndexErr(index)
						if err != nil {
							return err
						}
						child = fv.Interface()
						return nil
					})
					return child, err
				},
			})
		}
	}

	if w.opt.Accessors {
		mv := reflect.ValueOf(v)
		mt := mv.Type()
		for i := 0; i < mt.NumMethod(); i++ {
			name := mt.Method(i).Name
			bound := mv.Method(i)
			bt := bound.Type()
			if bt.NumIn() != 0 || bt.NumOut() != 1 {
				continue
			}
			if accessorDenylist[name] || seen[name] {
				continue
			}
			display := name
			if w.opt.AccessorNameFunc != nil {
				display = w.opt.AccessorNameFunc(display)
			}
			members = append(members, member{
				name:   display,
				raw:    name,
				origin: OriginAccessor,
				read: func() (any, error) {
					var child any
					err := safecall.Do("accessor invoke", func() error {
						child = bound.Call(nil)[0].Interface()
						return nil
					})
					return child, err
				},
			})
		}
	}
	return members
}
