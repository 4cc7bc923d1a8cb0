package desc

import "fmt"

// Union returns the normalised union of ds.
//
// Nested unions are flattened, Bottom members dropped and duplicates
// removed.  Literals are absorbed by their primitive when it is present
// and true|false collapses to boolean.  Unknown absorbs everything.  An
// empty union is Bottom and a single member is returned as is.  Member
// order is first-seen.
func Union(ds ...*Desc) *Desc {
	return unionOf("", true, ds)
}

// DistinctUnion is Union keeping true and false apart.
func DistinctUnion(ds ...*Desc) *Desc {
	return unionOf("", false, ds)
}

// TaggedUnion is Union with a declared discriminant field.  The
// discriminant is kept only when more than one member remains.
func TaggedUnion(discriminant string, ds ...*Desc) *Desc {
	return unionOf(discriminant, true, ds)
}

func unionOf(disc string, collapse bool, ds []*Desc) *Desc {
	var flat []*Desc
	var walk func([]*Desc)
	walk = func(ds []*Desc) {
		for _, d := range ds {
			if d == nil {
				continue
			}
			switch d.Kind {
			case UnionKind:
				walk(d.Variants)
			case BottomKind:
			default:
				flat = append(flat, d)
			}
		}
	}
	walk(ds)

	prims := map[Kind]bool{}
	for _, d := range flat {
		if d.Kind == UnknownKind {
			return d
		}
		if d.Kind.IsScalar() && !d.Lit {
			prims[d.Kind] = true
		}
	}
	seen := newSet()
	var res []*Desc
	var hasTrue, hasFalse bool
	for _, d := range flat {
		if d.Lit && prims[d.Kind] {
			continue
		}
		if !seen.add(d) {
			continue
		}
		if d.Kind == BoolKind && d.Lit {
			if d.Bool {
				hasTrue = true
			} else {
				hasFalse = true
			}
		}
		res = append(res, d)
	}
	if collapse && hasTrue && hasFalse {
		res = collapseBool(res)
	}
	switch len(res) {
	case 0:
		return Bottom()
	case 1:
		return res[0]
	}
	return &Desc{Kind: UnionKind, Variants: res, Discriminant: disc}
}

// collapseBool replaces the first boolean literal by boolean and drops the
// other one.
func collapseBool(ds []*Desc) []*Desc {
	res := make([]*Desc, 0, len(ds)-1)
	placed := false
	for _, d := range ds {
		if d.Kind != BoolKind || !d.Lit {
			res = append(res, d)
			continue
		}
		if !placed {
			res = append(res, Bool())
			placed = true
		}
	}
	return res
}

// Intersect returns the normalised conjunction of ds.  Nested intersections
// are flattened, Unknown members dropped and duplicates removed; any
// Bottom member makes the result Bottom.  Whether a remaining intersection
// is inhabited is not decided here.
func Intersect(ds ...*Desc) *Desc {
	var flat []*Desc
	var walk func([]*Desc) bool
	walk = func(ds []*Desc) bool {
		for _, d := range ds {
			if d == nil {
				continue
			}
			switch d.Kind {
			case IntersectKind:
				if !walk(d.Variants) {
					return false
				}
			case UnknownKind:
			case BottomKind:
				return false
			default:
				flat = append(flat, d)
			}
		}
		return true
	}
	if !walk(ds) {
		return Bottom()
	}
	seen := newSet()
	var res []*Desc
	for _, d := range flat {
		if seen.add(d) {
			res = append(res, d)
		}
	}
	switch len(res) {
	case 0:
		return Unknown()
	case 1:
		return res[0]
	}
	return &Desc{Kind: IntersectKind, Variants: res}
}

// CheckTagged verifies that every variant of a tagged union is a record
// carrying the declared discriminant field.  Plain unions and non-unions
// pass.
func CheckTagged(u *Desc) error {
	if u == nil || u.Kind != UnionKind || u.Discriminant == "" {
		return nil
	}
	for i, v := range u.Variants {
		if v.Kind != RecordKind {
			return fmt.Errorf("%w: variant %d is a %s, not a record", ErrMalformedUnion, i, v.Kind)
		}
		if _, ok := v.Field(u.Discriminant); !ok {
			return fmt.Errorf("%w: variant %d (%s) has no discriminant field %q",
				ErrMalformedUnion, i, v, u.Discriminant)
		}
	}
	return nil
}

// set is a small structural set keyed on Hash and confirmed with Equal.
type set struct {
	buckets map[uint64][]*Desc
}

func newSet() *set {
	return &set{buckets: map[uint64][]*Desc{}}
}

func (s *set) add(d *Desc) bool {
	h := d.Hash()
	for _, e := range s.buckets[h] {
		if Equal(e, d) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], d)
	return true
}
