package govisit_test

import (
	"fmt"
	"strings"
	"testing"

	govisit "github.com/reoring/govisit"
)

// recorder captures the event stream as readable strings so tests can
// assert exact traversal cadence.
type recorder struct {
	events []string
	failOn string
}

func (r *recorder) add(s string) error {
	r.events = append(r.events, s)
	if r.failOn != "" && strings.HasPrefix(s, r.failOn) {
		return fmt.Errorf("consumer rejected %s", s)
	}
	return nil
}

func evName(e govisit.Event) string {
	switch e {
	case govisit.EventEnter:
		return "enter"
	case govisit.EventLeave:
		return "leave"
	case govisit.EventBeforeChild:
		return "before"
	case govisit.EventAfterChild:
		return "after"
	case govisit.EventBetweenChildren:
		return "between"
	}
	return "unknown"
}

func originName(o govisit.KeyOrigin) string {
	switch o {
	case govisit.OriginField:
		return "field"
	case govisit.OriginAccessor:
		return "accessor"
	case govisit.OriginMapKey:
		return "mapkey"
	}
	return "unknown"
}

func (r *recorder) VisitNil() error              { return r.add("nil") }
func (r *recorder) VisitBool(b bool) error       { return r.add(fmt.Sprintf("bool:%v", b)) }
func (r *recorder) VisitInt8(i int8) error       { return r.add(fmt.Sprintf("int8:%d", i)) }
func (r *recorder) VisitInt16(i int16) error     { return r.add(fmt.Sprintf("int16:%d", i)) }
func (r *recorder) VisitInt32(i int32) error     { return r.add(fmt.Sprintf("int32:%d", i)) }
func (r *recorder) VisitInt64(i int64) error     { return r.add(fmt.Sprintf("int64:%d", i)) }
func (r *recorder) VisitUint64(u uint64) error   { return r.add(fmt.Sprintf("uint64:%d", u)) }
func (r *recorder) VisitFloat32(f float32) error { return r.add(fmt.Sprintf("float32:%v", f)) }
func (r *recorder) VisitFloat64(f float64) error { return r.add(fmt.Sprintf("float64:%v", f)) }
func (r *recorder) VisitRune(c rune) error       { return r.add(fmt.Sprintf("rune:%c", c)) }
func (r *recorder) VisitString(s string) error   { return r.add("string:" + s) }
func (r *recorder) VisitEnum(name string) error  { return r.add("enum:" + name) }

func (r *recorder) VisitKey(k govisit.Key) error {
	return r.add(fmt.Sprintf("key:%v(%s)", k.Name, originName(k.Origin)))
}

func (r *recorder) OnComposite(e govisit.Event, kind govisit.CompositeKind, _ any) error {
	name := "object"
	if kind == govisit.KindMap {
		name = "map"
	}
	return r.add(evName(e) + "-" + name)
}

func (r *recorder) OnSequence(e govisit.Event, _ any) error {
	return r.add(evName(e) + "-seq")
}

func walkEvents(t *testing.T, v any, opt govisit.Options) []string {
	t.Helper()
	r := &recorder{}
	w := govisit.New(r, opt)
	if err := w.Walk(v); err != nil {
		t.Fatalf("walk: %v", err)
	}
	return r.events
}

func wantEvents(t *testing.T, got, want []string) {
	t.Helper()
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("event mismatch\ngot:\n  %s\nwant:\n  %s",
			strings.Join(got, "\n  "), strings.Join(want, "\n  "))
	}
}
