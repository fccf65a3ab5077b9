package govisit_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	govisit "github.com/reoring/govisit"
)

func TestKeysSortedCaseInsensitive(t *testing.T) {
	v := struct {
		F1 string `json:"beta"`
		F2 string `json:"Alpha"`
		F3 string `json:"gamma"`
	}{"b", "a", "g"}
	got := walkEvents(t, v, govisit.Options{})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:Alpha(field)",
		"string:a",
		"after-object",
		"between-object",
		"before-object",
		"key:beta(field)",
		"string:b",
		"after-object",
		"between-object",
		"before-object",
		"key:gamma(field)",
		"string:g",
		"after-object",
		"leave-object",
	})
}

func TestDeclarationOrderWhenSortDisabled(t *testing.T) {
	v := struct {
		Zulu  int
		Alpha int
	}{1, 2}
	got := walkEvents(t, v, govisit.Options{DisableKeySort: true})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:Zulu(field)",
		"int64:1",
		"after-object",
		"between-object",
		"before-object",
		"key:Alpha(field)",
		"int64:2",
		"after-object",
		"leave-object",
	})
}

func TestTagResolution(t *testing.T) {
	v := struct {
		A string `visit:"name=handle" json:"ignored"`
		B string `json:"renamed"`
		C string `visit:"-"`
		D string `json:"-"`
		E string
	}{"a", "b", "c", "d", "e"}
	got := walkEvents(t, v, govisit.Options{DisableKeySort: true})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:handle(field)",
		"string:a",
		"after-object",
		"between-object",
		"before-object",
		"key:renamed(field)",
		"string:b",
		"after-object",
		"between-object",
		"before-object",
		"key:E(field)",
		"string:e",
		"after-object",
		"leave-object",
	})
}

func TestIncludeOmittedFields(t *testing.T) {
	v := struct {
		Secret string `visit:"-"`
	}{"s3cr3t"}
	got := walkEvents(t, v, govisit.Options{IncludeOmitted: true})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:Secret(field)",
		"string:s3cr3t",
		"after-object",
		"leave-object",
	})
}

func TestNullMemberPolicy(t *testing.T) {
	v := struct {
		Age  *int
		Name string
	}{nil, "gopher"}

	got := walkEvents(t, v, govisit.Options{})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:Name(field)",
		"string:gopher",
		"after-object",
		"leave-object",
	})

	got = walkEvents(t, v, govisit.Options{IncludeNils: true})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:Age(field)",
		"nil",
		"after-object",
		"between-object",
		"before-object",
		"key:Name(field)",
		"string:gopher",
		"after-object",
		"leave-object",
	})
}

func TestFieldFilter(t *testing.T) {
	v := struct {
		MyLong int64
		Kept   string
	}{1, "k"}
	got := walkEvents(t, v, govisit.Options{
		FieldFilter: func(sf reflect.StructField) bool {
			return !strings.HasPrefix(sf.Name, "My")
		},
	})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:Kept(field)",
		"string:k",
		"after-object",
		"leave-object",
	})
}

func TestTypeFilter(t *testing.T) {
	v := struct {
		A string
		B int
	}{"drop", 9}
	got := walkEvents(t, v, govisit.Options{
		TypeFilter: func(ty reflect.Type) bool { return ty.Kind() != reflect.String },
	})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:B(field)",
		"int64:9",
		"after-object",
		"leave-object",
	})
}

func TestFieldNameFunc(t *testing.T) {
	v := struct{ Name string }{"x"}
	got := walkEvents(t, v, govisit.Options{
		FieldNameFunc: strings.ToLower,
	})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:name(field)",
		"string:x",
		"after-object",
		"leave-object",
	})
}

func TestUnexportedFieldsSkipped(t *testing.T) {
	type pair struct {
		hidden int
		Shown  int
	}
	_ = pair{}.hidden
	got := walkEvents(t, pair{1, 2}, govisit.Options{})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:Shown(field)",
		"int64:2",
		"after-object",
		"leave-object",
	})
}

type base struct{ ID int }

type wrapper struct {
	base
	Name string
}

func TestPromotedFields(t *testing.T) {
	got := walkEvents(t, wrapper{base{7}, "n"}, govisit.Options{})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:ID(field)",
		"int64:7",
		"after-object",
		"between-object",
		"before-object",
		"key:Name(field)",
		"string:n",
		"after-object",
		"leave-object",
	})
}

type brokenEmbed struct {
	*base
	Name string
}

func TestNilEmbeddedPointerFieldIsFatal(t *testing.T) {
	r := &recorder{}
	w := govisit.New(r, govisit.Options{})
	err := w.Walk(brokenEmbed{Name: "x"})
	var fe *govisit.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if fe.Field != "ID" {
		t.Fatalf("unexpected field: %s", fe.Field)
	}
}

type account struct {
	tier string
}

func (a account) Tier() string   { return a.tier }
func (a account) String() string { return "account" }

func TestAccessors(t *testing.T) {
	v := account{tier: "gold"}

	// Accessors are off by default; the struct has no visible members.
	got := walkEvents(t, v, govisit.Options{})
	wantEvents(t, got, []string{"enter-object", "leave-object"})

	got = walkEvents(t, v, govisit.Options{Accessors: true})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:Tier(accessor)",
		"string:gold",
		"after-object",
		"leave-object",
	})
}

type counter struct{ n int }

func (c *counter) Count() int { return c.n + 1 }

func TestAccessorPointerReceiver(t *testing.T) {
	got := walkEvents(t, &counter{n: 1}, govisit.Options{Accessors: true})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:Count(accessor)",
		"int64:2",
		"after-object",
		"leave-object",
	})
}

func TestAccessorNameFunc(t *testing.T) {
	got := walkEvents(t, account{tier: "gold"}, govisit.Options{
		Accessors:        true,
		AccessorNameFunc: strings.ToLower,
	})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:tier(accessor)",
		"string:gold",
		"after-object",
		"leave-object",
	})
}

type flaky struct{ OK bool }

func (flaky) Boom() string { panic("nope") }

func TestAccessorFailureRecovered(t *testing.T) {
	var warned []error
	got := walkEvents(t, flaky{OK: true}, govisit.Options{
		Accessors: true,
		Warn:      func(err error) { warned = append(warned, err) },
	})
	wantEvents(t, got, []string{
		"enter-object",
		"before-object",
		"key:OK(field)",
		"bool:true",
		"after-object",
		"leave-object",
	})
	if len(warned) != 1 {
		t.Fatalf("expected one warning, got %d", len(warned))
	}
	var ae *govisit.AccessorError
	if !errors.As(warned[0], &ae) || ae.Method != "Boom" {
		t.Fatalf("unexpected warning: %v", warned[0])
	}
}

func TestAccessorFailureFatalWhenConfigured(t *testing.T) {
	r := &recorder{}
	w := govisit.New(r, govisit.Options{Accessors: true, AccessorErrorsFatal: true})
	err := w.Walk(flaky{})
	var ae *govisit.AccessorError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AccessorError, got %v", err)
	}
}

func TestSkipFields(t *testing.T) {
	v := struct{ Name string }{"x"}
	got := walkEvents(t, v, govisit.Options{SkipFields: true})
	wantEvents(t, got, []string{"enter-object", "leave-object"})
}
