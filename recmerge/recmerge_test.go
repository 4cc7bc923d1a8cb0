package recmerge

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/shapealg/desc"
)

func TestIntersectVariants(t *testing.T) {
	tests := []struct {
		name string
		in   *desc.Desc
		want *desc.Desc
	}{
		{
			name: "tagged with own fields",
			in: desc.TaggedUnion("k",
				desc.Record(desc.F("k", desc.StrLit("a")), desc.F("value", desc.Number()), desc.F("a", desc.String())),
				desc.Record(desc.F("k", desc.StrLit("b")), desc.F("value", desc.String()), desc.F("b", desc.String())),
				desc.Record(desc.F("k", desc.StrLit("c")), desc.F("value", desc.Number()), desc.F("c", desc.String())),
			),
			want: desc.Record(
				desc.F("k", desc.Union(desc.StrLit("a"), desc.StrLit("b"), desc.StrLit("c"))),
				desc.F("value", desc.Union(desc.Number(), desc.String())),
				desc.F("a", desc.String()),
				desc.F("b", desc.String()),
				desc.F("c", desc.String()),
			),
		},
		{
			name: "mixed discriminant",
			in: desc.TaggedUnion("type",
				desc.Record(desc.F("type", desc.IntLit(1)), desc.F("data", desc.Number())),
				desc.Record(desc.F("type", desc.StrLit("two")), desc.F("data", desc.String())),
				desc.Record(desc.F("type", desc.IntLit(3)), desc.F("data", desc.Bool())),
				desc.Record(desc.F("type", desc.IntLit(4))),
			),
			want: desc.Record(
				desc.F("type", desc.Union(desc.IntLit(1), desc.StrLit("two"), desc.IntLit(3), desc.IntLit(4))),
				desc.F("data", desc.Union(desc.Number(), desc.String(), desc.Bool())),
			),
		},
		{
			name: "boolean discriminant",
			in: desc.TaggedUnion("ok",
				desc.Record(desc.F("ok", desc.True()), desc.F("value", desc.Number())),
				desc.Record(desc.F("ok", desc.False()), desc.F("error", desc.String())),
			),
			want: desc.Record(
				desc.F("ok", desc.DistinctUnion(desc.True(), desc.False())),
				desc.F("value", desc.Number()),
				desc.F("error", desc.String()),
			),
		},
		{
			name: "tagged",
			in: desc.TaggedUnion("k",
				desc.Record(desc.F("k", desc.StrLit("a")), desc.F("value", desc.Number())),
				desc.Record(desc.F("k", desc.StrLit("b")), desc.F("value", desc.String())),
				desc.Record(desc.F("k", desc.StrLit("c")), desc.F("value", desc.Bool())),
			),
			want: desc.Record(
				desc.F("k", desc.Union(desc.StrLit("a"), desc.StrLit("b"), desc.StrLit("c"))),
				desc.F("value", desc.Union(desc.Number(), desc.String(), desc.Bool())),
			),
		},
		{
			name: "mixed discriminant literals",
			in: desc.TaggedUnion("type",
				desc.Record(desc.F("type", desc.IntLit(1)), desc.F("data", desc.Number())),
				desc.Record(desc.F("type", desc.StrLit("two")), desc.F("data", desc.String())),
				desc.Record(desc.F("type", desc.Union(desc.IntLit(3), desc.IntLit(4))), desc.F("data", desc.Bool())),
			),
			want: desc.Record(
				desc.F("type", desc.Union(desc.IntLit(1), desc.StrLit("two"), desc.IntLit(3), desc.IntLit(4))),
				desc.F("data", desc.Union(desc.Number(), desc.String(), desc.Bool())),
			),
		},
		{
			name: "field in one variant keeps its type",
			in: desc.Union(
				desc.Record(desc.F("a", desc.Number())),
				desc.Record(desc.F("a", desc.String()), desc.F("b", desc.Bool())),
			),
			want: desc.Record(
				desc.F("a", desc.Union(desc.Number(), desc.String())),
				desc.F("b", desc.Bool()),
			),
		},
		{
			name: "single record",
			in:   desc.Record(desc.F("k", desc.StrLit("a")), desc.F("n", desc.Number())),
			want: desc.Record(desc.F("k", desc.StrLit("a")), desc.F("n", desc.Number())),
		},
		{
			name: "bottom",
			in:   desc.Bottom(),
			want: desc.Record(),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IntersectVariants(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if !desc.Equal(tc.want, got) {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestIntersectVariantsFieldOrder(t *testing.T) {
	got, err := IntersectVariants(desc.Union(
		desc.Record(desc.F("b", desc.Number()), desc.F("a", desc.Number())),
		desc.Record(desc.F("c", desc.Number()), desc.F("a", desc.String())),
	))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, got.FieldNames()); diff != "" {
		t.Errorf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestIntersectVariantsMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   *desc.Desc
	}{
		{"non-record variant", desc.Union(desc.Record(desc.F("a", desc.Number())), desc.String())},
		{"scalar", desc.Number()},
		{"missing discriminant", desc.TaggedUnion("k",
			desc.Record(desc.F("k", desc.StrLit("a"))),
			desc.Record(desc.F("kind", desc.StrLit("b"))),
		)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := IntersectVariants(tc.in); !errors.Is(err, desc.ErrMalformedUnion) {
				t.Errorf("expected ErrMalformedUnion, got %v", err)
			}
		})
	}
}
