package govisit

import (
	"fmt"
	"reflect"
	"sort"
)

// walkMap composes a Go map as a key-value composite. Map children join the
// ancestor stack; sequence elements (walkSequence) do not, since a sequence
// element has no durable key to re-enter through.
func (w *Walker) walkMap(v any, rv reflect.Value) error {
	keys := rv.MapKeys()
	if !w.opt.DisableKeySort {
		sort.SliceStable(keys, func(i, j int) bool { return naturalLess(keys[i], keys[j]) })
	}
	w.depth++
	err := func() error {
		if err := w.visitor.OnComposite(EventEnter, KindMap, v); err != nil {
			return err
		}
		first := true
		for _, k := range keys {
			child := rv.MapIndex(k).Interface()
			if !w.accepted(child) {
				continue
			}
			d := w.enter(child)
			if d.skip {
				continue
			}
			err := func() error {
				defer w.leave(d)
				if !first {
					if err := w.visitor.OnComposite(EventBetweenChildren, KindMap, v); err != nil {
						return err
					}
				}
				if err := w.visitor.OnComposite(EventBeforeChild, KindMap, v); err != nil {
					return err
				}
				first = false
				if err := w.visitor.VisitKey(Key{Name: k.Interface(), Origin: OriginMapKey, Owner: v}); err != nil {
					return err
				}
				if err := w.walk(d.value); err != nil {
					return err
				}
				return w.visitor.OnComposite(EventAfterChild, KindMap, v)
			}()
			if err != nil {
				return err
			}
		}
		return nil
	}()
	w.depth--
	if err != nil {
		return err
	}
	return w.visitor.OnComposite(EventLeave, KindMap, v)
}

// walkSet composes a map[T]struct{} as a sequence of its keys, sorted
// best-effort: element kinds without a natural order silently keep
// iteration order.
func (w *Walker) walkSet(v any, rv reflect.Value) error {
	keys := rv.MapKeys()
	if !w.opt.DisableSetSort && orderable(rv.Type().Key()) {
		sort.SliceStable(keys, func(i, j int) bool { return naturalLess(keys[i], keys[j]) })
	}
	items := make([]any, len(keys))
	for i, k := range keys {
		items[i] = k.Interface()
	}
	return w.walkSequence(v, items)
}

func (w *Walker) walkSequence(v any, items []any) error {
	w.depth++
	err := func() error {
		if err := w.visitor.OnSequence(EventEnter, v); err != nil {
			return err
		}
		first := true
		for _, child := range items {
			if !w.accepted(child) {
				continue
			}
			if !first {
				if err := w.visitor.OnSequence(EventBetweenChildren, v); err != nil {
					return err
				}
			}
			if err := w.visitor.OnSequence(EventBeforeChild, v); err != nil {
				return err
			}
			first = false
			if err := w.walk(child); err != nil {
				return err
			}
			if err := w.visitor.OnSequence(EventAfterChild, v); err != nil {
				return err
			}
		}
		return nil
	}()
	w.depth--
	if err != nil {
		return err
	}
	return w.visitor.OnSequence(EventLeave, v)
}

// seqValues collects the pushed values of an iter.Seq-shaped function,
// func(yield func(T) bool), the Go rendition of a general iterable.
func seqValues(fv reflect.Value) ([]any, bool) {
	t := fv.Type()
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return nil, false
	}
	yt := t.In(0)
	if yt.Kind() != reflect.Func || yt.NumIn() != 1 || yt.NumOut() != 1 || yt.Out(0).Kind() != reflect.Bool {
		return nil, false
	}
	var items []any
	yield := reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
		items = append(items, args[0].Interface())
		return []reflect.Value{reflect.ValueOf(true)}
	})
	fv.Call([]reflect.Value{yield})
	return items, true
}

type orderClass int

const (
	classNone orderClass = iota
	classInt
	classUint
	classFloat
	classString
)

func classOf(k reflect.Kind) orderClass {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.String:
		return classString
	}
	return classNone
}

func orderable(t reflect.Type) bool { return classOf(t.Kind()) != classNone }

// naturalLess orders two keys by natural order when both share an ordered
// kind, falling back to their string form. It tolerates any mix of key types
// without panicking.
func naturalLess(a, b reflect.Value) bool {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if a.IsValid() && b.IsValid() {
		ac, bc := classOf(a.Kind()), classOf(b.Kind())
		if ac == bc {
			switch ac {
			case classInt:
				return a.Int() < b.Int()
			case classUint:
				return a.Uint() < b.Uint()
			case classFloat:
				return a.Float() < b.Float()
			case classString:
				return a.String() < b.String()
			}
		}
	}
	return stringForm(a) < stringForm(b)
}

func stringForm(v reflect.Value) string {
	if !v.IsValid() {
		return "<nil>"
	}
	return fmt.Sprint(v.Interface())
}
