package desc

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Desc
		expected int
	}{
		// Kind ranking
		{"Bottom < Unknown", Bottom(), Unknown(), -1},
		{"Null < Bool", Null(), Bool(), -1},
		{"Bool < Number", True(), IntLit(1), -1},
		{"Number < String", Number(), String(), -1},
		{"Class < Sequence", Class("A"), Tuple(), -1},
		{"Sequence < Record", Tuple(), Record(), -1},

		// Scalars
		{"primitive < literal", String(), StrLit("a"), -1},
		{"false < true", False(), True(), -1},
		{"Int < Float", IntLit(1), FloatLit(1), -1},
		{"Int < Int", IntLit(1), IntLit(2), -1},
		{"String < String", StrLit("a"), StrLit("b"), -1},
		{"same literal", StrLit("a"), StrLit("a"), 0},

		// Sequences
		{"mutable < readonly", Tuple(IntLit(1)), ReadOnlyTuple(IntLit(1)), -1},
		{"short < long", Tuple(IntLit(1)), Tuple(IntLit(1), IntLit(2)), -1},
		{"element order matters", Tuple(IntLit(1), IntLit(2)), Tuple(IntLit(2), IntLit(1)), -1},

		// Records
		{"field order ignored",
			Record(F("a", Number()), F("b", String())),
			Record(F("b", String()), F("a", Number())),
			0},
		{"field value",
			Record(F("a", IntLit(1))),
			Record(F("a", IntLit(2))),
			-1},

		// Unions
		{"member order ignored",
			Union(StrLit("a"), StrLit("b")),
			Union(StrLit("b"), StrLit("a")),
			0},
		{"discriminant counts",
			Union(Record(F("k", StrLit("a"))), Record(F("k", StrLit("b")))),
			TaggedUnion("k", Record(F("k", StrLit("a"))), Record(F("k", StrLit("b")))),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
			if tt.expected == 0 && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal descriptors hash differently: %s, %s", tt.a, tt.b)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Record(F("a", Tuple(IntLit(1))), F("b", Union(StrLit("x"), Number())))
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatalf("clone %s differs from %s", c, orig)
	}
	*c.Fields[0].Type.Elems[0].Int64 = 7
	if *orig.Fields[0].Type.Elems[0].Int64 != 1 {
		t.Errorf("mutating clone changed original: %s", orig)
	}
}
