// Package desc provides structural descriptors: reified types that the
// shapealg algorithms reason about.
//
// # Overview
//
// A descriptor is a declared shape, not a runtime value.  All descriptors
// are represented by *Desc, a recursive tagged union in which the Kind
// field selects which other fields are meaningful:
//
//   - BottomKind: the uninhabited descriptor ("never"), used as a sentinel
//     meaning the slot cannot occur
//   - UnknownKind: matches anything
//   - NullKind
//   - BoolKind, NumberKind, StringKind: primitives, or literals when Lit
//     is set (Bool, Int64/Float64, Str hold the value)
//   - ClassKind: a reference by name to a node of a class hierarchy
//   - SequenceKind: fixed length Elems, read-only when ReadOnly is set
//   - RecordKind: ordered Fields
//   - UnionKind: Variants, with an optional declared Discriminant field
//   - IntersectKind: Variants read as a conjunction
//
// # Creating Descriptors
//
//	kind := desc.Union(desc.StrLit("a"), desc.StrLit("b"))
//	rec := desc.Record(
//	    desc.F("kind", desc.StrLit("a")),
//	    desc.F("value", desc.Number()),
//	)
//	tup := desc.ReadOnlyTuple(desc.IntLit(1), desc.IntLit(2))
//	tagged := desc.TaggedUnion("kind", recA, recB)
//
// # Normalisation
//
// Union and Intersect normalise their members: nesting is flattened,
// duplicates are removed, Bottom vanishes from unions and collapses
// intersections, Unknown vanishes from intersections and absorbs unions.
// An empty union is Bottom.  Union keeps first-seen member order.
//
// # Immutability
//
// Descriptors are treated as immutable values.  Operations in shapealg
// return new descriptors and may share children with their inputs; use
// Clone before mutating.
//
// # Comparison and Hashing
//
//	desc.Equal(a, b)
//	desc.Compare(a, b)
//	a.Hash()
//
// Records compare as field sets and unions as member sets, so field and
// member order do not affect equality.
//
// # Text and JSON
//
// String renders a TypeScript-like notation.  MarshalJSON and
// UnmarshalJSON give a self-describing JSON form:
//
//	{"kind":"record","fields":[{"name":"k","type":{"kind":"string","lit":true,"string":"a"}}]}
package desc
