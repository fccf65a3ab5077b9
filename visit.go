package govisit

// Event enumerates lifecycle notifications delivered to a Visitor while a
// composite value is traversed.
type Event int

const (
	EventEnter           Event = iota // A composite is about to be traversed.
	EventLeave                        // The composite has been fully traversed.
	EventBeforeChild                  // Emitted immediately before each accepted child.
	EventAfterChild                   // Emitted immediately after each accepted child.
	EventBetweenChildren              // Emitted before every accepted child after the first.
)

// CompositeKind distinguishes the two key-value composite shapes.
type CompositeKind int

const (
	KindMap    CompositeKind = iota // An associative container (Go map).
	KindObject                      // A structural object (Go struct).
)

// Char marks a value as a character scalar. Go cannot tell a rune apart from
// an int32 at runtime, so callers wrap character-intent values explicitly;
// the Walker routes Char values to VisitRune.
type Char rune

// Visitor receives the traversal event stream. The scalar kinds form a closed
// set: one visit method per kind, and the set is the method set below.
//
// Any error returned from a Visitor method is fatal and aborts the whole
// traversal, surfacing to the Walk caller unmodified.
type Visitor interface {
	VisitNil() error
	VisitBool(b bool) error
	VisitInt8(i int8) error
	VisitInt16(i int16) error
	VisitInt32(i int32) error
	// VisitInt64 also receives values of the plain int kind.
	VisitInt64(i int64) error
	// VisitUint64 receives every unsigned width, widened.
	VisitUint64(u uint64) error
	VisitFloat32(f float32) error
	VisitFloat64(f float64) error
	VisitRune(r rune) error
	VisitString(s string) error
	// VisitEnum receives the display name of an enumerant: a defined integer
	// type implementing fmt.Stringer.
	VisitEnum(name string) error

	// VisitKey is called for each key of a key-value composite, after
	// EventBeforeChild and before the child value's own visit.
	VisitKey(k Key) error

	// OnComposite delivers lifecycle events for key-value composites.
	OnComposite(e Event, kind CompositeKind, v any) error
	// OnSequence delivers lifecycle events for sequences, which carry no kind.
	OnSequence(e Event, v any) error
}

// NopVisitor implements Visitor with no-ops. Embed it to implement only the
// methods a consumer cares about.
type NopVisitor struct{}

func (NopVisitor) VisitNil() error                             { return nil }
func (NopVisitor) VisitBool(bool) error                        { return nil }
func (NopVisitor) VisitInt8(int8) error                        { return nil }
func (NopVisitor) VisitInt16(int16) error                      { return nil }
func (NopVisitor) VisitInt32(int32) error                      { return nil }
func (NopVisitor) VisitInt64(int64) error                      { return nil }
func (NopVisitor) VisitUint64(uint64) error                    { return nil }
func (NopVisitor) VisitFloat32(float32) error                  { return nil }
func (NopVisitor) VisitFloat64(float64) error                  { return nil }
func (NopVisitor) VisitRune(rune) error                        { return nil }
func (NopVisitor) VisitString(string) error                    { return nil }
func (NopVisitor) VisitEnum(string) error                      { return nil }
func (NopVisitor) VisitKey(Key) error                          { return nil }
func (NopVisitor) OnComposite(Event, CompositeKind, any) error { return nil }
func (NopVisitor) OnSequence(Event, any) error                 { return nil }
