package narrow

import (
	"errors"
	"testing"

	"github.com/signadot/shapealg/desc"
)

var (
	some     = desc.StrLit("some")
	someRec  = desc.Record(desc.F("kind", some), desc.F("value", desc.String()))
	someKind = desc.Record(desc.F("kind", some))
)

func TestExcludeIfBottom(t *testing.T) {
	tests := []struct {
		name    string
		actual  *desc.Desc
		pattern *desc.Desc
		want    *desc.Desc
	}{
		{
			name:    "object",
			actual:  desc.Union(someRec, desc.Record(desc.F("kind", desc.Bottom()))),
			pattern: someKind,
			want:    someRec,
		},
		{
			name:    "tuple of union",
			actual:  desc.Tuple(desc.Union(someRec, desc.Bottom())),
			pattern: desc.Tuple(someKind),
			want:    desc.Tuple(someRec),
		},
		{
			name:    "tuple with bottom",
			actual:  desc.Tuple(someRec, desc.Bottom()),
			pattern: desc.Tuple(someKind, desc.Unknown()),
			want:    desc.Bottom(),
		},
		{
			name:    "unmatched bottom position is ignored",
			actual:  desc.Record(desc.F("kind", some), desc.F("other", desc.Bottom())),
			pattern: someKind,
			want:    desc.Record(desc.F("kind", some), desc.F("other", desc.Bottom())),
		},
		{
			name:    "pattern longer than tuple",
			actual:  desc.Tuple(some),
			pattern: desc.Tuple(desc.Unknown(), desc.Unknown()),
			want:    desc.Tuple(some),
		},
		{
			name: "union of tuples",
			actual: desc.Union(
				desc.Tuple(some, desc.Bottom()),
				desc.Tuple(some, desc.Number())),
			pattern: desc.Tuple(desc.Unknown(), desc.Unknown()),
			want:    desc.Tuple(some, desc.Number()),
		},
		{
			name:    "uninhabited intersection",
			actual:  desc.Union(someRec, desc.Record(desc.F("kind", desc.Intersect(some, desc.StrLit("none"))))),
			pattern: someKind,
			want:    someRec,
		},
		{
			name:    "scalar pattern selects nothing",
			actual:  desc.Record(desc.F("kind", desc.Bottom())),
			pattern: some,
			want:    desc.Record(desc.F("kind", desc.Bottom())),
		},
		{
			name:    "bottom stays bottom",
			actual:  desc.Bottom(),
			pattern: someKind,
			want:    desc.Bottom(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExcludeIfBottom(tt.actual, tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			if !desc.Equal(got, tt.want) {
				t.Errorf("ExcludeIfBottom(%s, %s) = %s, want %s", tt.actual, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestExcludeIfBottomTagged(t *testing.T) {
	a := desc.Record(desc.F("type", desc.StrLit("a")), desc.F("data", desc.Number()))
	b := desc.Record(desc.F("type", desc.StrLit("b")), desc.F("data", desc.Bottom()))
	c := desc.Record(desc.F("type", desc.StrLit("c")), desc.F("data", desc.String()))
	u := desc.TaggedUnion("type", a, b, c)
	pattern := desc.Record(desc.F("type", desc.String()), desc.F("data", desc.Unknown()))

	got, err := ExcludeIfBottom(u, pattern)
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != desc.UnionKind || len(got.Variants) != 2 {
		t.Fatalf("expected two variants, got %s", got)
	}
	if got.Variants[0] != a || got.Variants[1] != c {
		t.Errorf("surviving variants should be unchanged, got %s", got)
	}
	if got.Discriminant != "type" {
		t.Errorf("discriminant lost: %q", got.Discriminant)
	}

	all := desc.TaggedUnion("type", b, desc.Record(desc.F("type", desc.StrLit("d")), desc.F("data", desc.Bottom())))
	got, err = ExcludeIfBottom(all, pattern)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsBottom() {
		t.Errorf("expected never, got %s", got)
	}
}

func TestExcludeIfBottomNoChange(t *testing.T) {
	u := desc.Union(someRec, desc.Record(desc.F("kind", desc.StrLit("other"))))
	got, err := ExcludeIfBottom(u, someKind)
	if err != nil {
		t.Fatal(err)
	}
	if got != u {
		t.Errorf("expected the input back, got %s", got)
	}
}

func TestExcludeIfBottomLiteralOnly(t *testing.T) {
	dead := desc.Record(desc.F("kind", desc.Intersect(some, desc.StrLit("none"))))
	u := desc.Union(someRec, dead)
	got, err := ExcludeIfBottom(u, someKind, LiteralOnly(true))
	if err != nil {
		t.Fatal(err)
	}
	if !desc.Equal(got, u) {
		t.Errorf("literal only should keep %s, got %s", dead, got)
	}
}

func TestExcludeIfBottomMalformed(t *testing.T) {
	u := desc.TaggedUnion("kind", someRec, desc.Record(desc.F("tag", some)))
	_, err := ExcludeIfBottom(u, someKind)
	if !errors.Is(err, desc.ErrMalformedUnion) {
		t.Errorf("expected ErrMalformedUnion, got %v", err)
	}
}

func TestExcludeIfBottomNil(t *testing.T) {
	if _, err := ExcludeIfBottom(nil, someKind); !errors.Is(err, desc.ErrNilDesc) {
		t.Errorf("expected ErrNilDesc, got %v", err)
	}
}
