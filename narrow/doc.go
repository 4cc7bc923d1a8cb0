// Package narrow eliminates union members that can never occur.
//
// # Exclusion
//
// ExcludeIfBottom checks, for each member of a union, the positions named
// by a pattern: the field names of a record pattern or the indices of a
// sequence pattern.  A member whose slot at any of those positions
// resolves to Bottom is dropped.  When nothing survives the result is
// Bottom, which is an ordinary value and not an error.
//
//	u := desc.TaggedUnion("kind",
//	    desc.Record(desc.F("kind", desc.StrLit("some")), desc.F("value", desc.String())),
//	    desc.Record(desc.F("kind", desc.Bottom())),
//	)
//	res, err := narrow.ExcludeIfBottom(u, desc.Record(desc.F("kind", desc.StrLit("some"))))
//	// res: {kind: 'some'; value: string}
//
// A slot resolves to Bottom when it is Bottom, or when it is a union or
// intersection that no value inhabits (see Inhabited).  The LiteralOnly
// option turns the satisfiability check off.
//
// # Narrowing
//
// Narrow first intersects each member's slots with the pattern's slots and
// then excludes as above, which removes the members whose discriminant
// cannot match:
//
//	res, err := narrow.Narrow(u, desc.Record(desc.F("kind", desc.StrLit("none"))))
//	// res: never
package narrow
