// Package json5 renders traversal events as a JSON5-flavored text
// representation. It is a consumer of govisit lifecycle events and performs
// no introspection of its own.
package json5

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	govisit "github.com/reoring/govisit"
)

var unquotedKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// replacementChars maps ASCII code points to their escape sequences.
var replacementChars = buildReplacements()

func buildReplacements() [128]string {
	var r [128]string
	for i := 0; i <= 0x1f; i++ {
		r[i] = fmt.Sprintf(`\u%04x`, i)
	}
	r['"'] = `\"`
	r['\\'] = `\\`
	r['\t'] = `\t`
	r['\b'] = `\b`
	r['\n'] = `\n`
	r['\r'] = `\r`
	r['\f'] = `\f`
	return r
}

// Dumper implements govisit.Visitor, writing a JSON5-flavored rendition of
// the event stream. Keys matching [A-Za-z0-9_]+ are left unquoted unless
// Strict is set, in which case the output is plain JSON.
type Dumper struct {
	// Strict quotes every key, producing output any JSON parser accepts.
	Strict bool

	w     io.Writer
	depth int
}

// NewDumper returns a Dumper writing to w with four-space indentation.
func NewDumper(w io.Writer) *Dumper {
	return &Dumper{w: w}
}

// Dump traverses v with the given options and writes its rendition to w.
// Builtin type adapters are registered; use a Dumper with your own Walker
// for full control.
func Dump(w io.Writer, v any, opt govisit.Options) error {
	d := NewDumper(w)
	walker := govisit.New(d, opt)
	walker.RegisterBuiltinAdapters()
	return walker.Walk(v)
}

func (d *Dumper) write(s string) error {
	_, err := io.WriteString(d.w, s)
	return err
}

func (d *Dumper) indent() error {
	return d.write(strings.Repeat(" ", d.depth*4))
}

func (d *Dumper) enter(open string) error {
	if err := d.write(open); err != nil {
		return err
	}
	d.depth++
	return nil
}

func (d *Dumper) leave(close string) error {
	d.depth--
	if err := d.write("\n"); err != nil {
		return err
	}
	if err := d.indent(); err != nil {
		return err
	}
	return d.write(close)
}

func (d *Dumper) onEvent(e govisit.Event, open, close string) error {
	switch e {
	case govisit.EventEnter:
		return d.enter(open)
	case govisit.EventLeave:
		return d.leave(close)
	case govisit.EventBeforeChild:
		if err := d.write("\n"); err != nil {
			return err
		}
		return d.indent()
	case govisit.EventBetweenChildren:
		return d.write(",")
	}
	return nil
}

func (d *Dumper) OnComposite(e govisit.Event, _ govisit.CompositeKind, _ any) error {
	return d.onEvent(e, "{", "}")
}

func (d *Dumper) OnSequence(e govisit.Event, _ any) error {
	return d.onEvent(e, "[", "]")
}

func (d *Dumper) VisitKey(k govisit.Key) error {
	var name string
	if k.Name != nil {
		name = fmt.Sprint(k.Name)
	}
	if !d.Strict && unquotedKeyPattern.MatchString(name) {
		if err := d.write(name); err != nil {
			return err
		}
	} else if err := d.writeQuoted(name); err != nil {
		return err
	}
	return d.write(": ")
}

func (d *Dumper) VisitNil() error          { return d.write("null") }
func (d *Dumper) VisitBool(b bool) error   { return d.write(strconv.FormatBool(b)) }
func (d *Dumper) VisitInt8(i int8) error   { return d.write(strconv.FormatInt(int64(i), 10)) }
func (d *Dumper) VisitInt16(i int16) error { return d.write(strconv.FormatInt(int64(i), 10)) }
func (d *Dumper) VisitInt32(i int32) error { return d.write(strconv.FormatInt(int64(i), 10)) }
func (d *Dumper) VisitInt64(i int64) error { return d.write(strconv.FormatInt(i, 10)) }

func (d *Dumper) VisitUint64(u uint64) error {
	return d.write(strconv.FormatUint(u, 10))
}

func (d *Dumper) VisitFloat32(f float32) error {
	return d.write(strconv.FormatFloat(float64(f), 'g', -1, 32))
}

func (d *Dumper) VisitFloat64(f float64) error {
	return d.write(strconv.FormatFloat(f, 'g', -1, 64))
}

func (d *Dumper) VisitRune(r rune) error { return d.writeQuoted(string(r)) }

func (d *Dumper) VisitString(s string) error { return d.writeQuoted(s) }

func (d *Dumper) VisitEnum(name string) error { return d.writeQuoted(name) }

func (d *Dumper) writeQuoted(s string) error {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if r < 128 && replacementChars[r] != "" {
			b.WriteString(replacementChars[r])
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return d.write(b.String())
}
