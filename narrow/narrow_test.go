package narrow

import (
	"errors"
	"testing"

	"github.com/signadot/shapealg/desc"
)

func shapes() (a, b, c, u *desc.Desc) {
	a = desc.Record(desc.F("k", desc.StrLit("a")), desc.F("value", desc.Number()))
	b = desc.Record(desc.F("k", desc.StrLit("b")), desc.F("value", desc.String()))
	c = desc.Record(desc.F("k", desc.StrLit("c")), desc.F("value", desc.Number()))
	u = desc.TaggedUnion("k", a, b, c)
	return
}

func TestNarrow(t *testing.T) {
	a, b, c, u := shapes()
	tests := []struct {
		name    string
		pattern *desc.Desc
		want    *desc.Desc
	}{
		{"single discriminant", desc.Record(desc.F("k", desc.StrLit("b"))), b},
		{"discriminant union", desc.Record(desc.F("k", desc.Union(desc.StrLit("a"), desc.StrLit("c")))),
			desc.TaggedUnion("k", a, c)},
		{"no match", desc.Record(desc.F("k", desc.StrLit("z"))), desc.Bottom()},
		{"primitive pattern keeps all", desc.Record(desc.F("k", desc.String())), u},
		{"unknown pattern keeps all", desc.Record(desc.F("k", desc.Unknown())), u},
		{"payload type", desc.Record(desc.F("value", desc.String())), b},
		{"payload literal", desc.Record(desc.F("value", desc.IntLit(3))),
			desc.TaggedUnion("k",
				desc.Record(desc.F("k", desc.StrLit("a")), desc.F("value", desc.IntLit(3))),
				desc.Record(desc.F("k", desc.StrLit("c")), desc.F("value", desc.IntLit(3))))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Narrow(u, tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			if !desc.Equal(got, tt.want) {
				t.Errorf("Narrow(%s) = %s, want %s", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestNarrowNested(t *testing.T) {
	ok := desc.Record(desc.F("t", desc.StrLit("ok")), desc.F("body", desc.Record(desc.F("code", desc.IntLit(200)))))
	bad := desc.Record(desc.F("t", desc.StrLit("err")), desc.F("body", desc.Record(desc.F("code", desc.Number()))))
	u := desc.TaggedUnion("t", ok, bad)

	pattern := desc.Record(desc.F("body", desc.Record(desc.F("code", desc.IntLit(404)))))
	got, err := Narrow(u, pattern)
	if err != nil {
		t.Fatal(err)
	}
	want := desc.Record(desc.F("t", desc.StrLit("err")), desc.F("body", desc.Record(desc.F("code", desc.IntLit(404)))))
	if !desc.Equal(got, want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestNarrowTuple(t *testing.T) {
	u := desc.Union(
		desc.ReadOnlyTuple(desc.StrLit("x"), desc.Number()),
		desc.ReadOnlyTuple(desc.StrLit("y"), desc.String()))
	got, err := Narrow(u, desc.Tuple(desc.StrLit("y")))
	if err != nil {
		t.Fatal(err)
	}
	want := desc.ReadOnlyTuple(desc.StrLit("y"), desc.String())
	if !desc.Equal(got, want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestNarrowMalformed(t *testing.T) {
	_, _, _, u := shapes()
	bad := desc.TaggedUnion("kind", u.Variants...)
	if _, err := Narrow(bad, desc.Record()); !errors.Is(err, desc.ErrMalformedUnion) {
		t.Errorf("expected ErrMalformedUnion, got %v", err)
	}
}

func TestNarrowMergesEqualMembers(t *testing.T) {
	ab := desc.Record(desc.F("k", desc.Union(desc.StrLit("a"), desc.StrLit("b"))), desc.F("v", desc.Number()))
	a := desc.Record(desc.F("k", desc.StrLit("a")), desc.F("v", desc.Number()))
	got, err := Narrow(desc.TaggedUnion("k", ab, a), desc.Record(desc.F("k", desc.StrLit("a"))))
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != desc.RecordKind || !desc.Equal(got, a) {
		t.Errorf("got %s (%s), want %s", got, got.Kind, a)
	}
}

func TestNarrowNil(t *testing.T) {
	if _, err := Narrow(nil, desc.Record()); !errors.Is(err, desc.ErrNilDesc) {
		t.Errorf("expected ErrNilDesc, got %v", err)
	}
}
