package desc

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports whether a and b describe the same shape.  Records compare
// as field sets and unions and intersections as member sets.
func Equal(a, b *Desc) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two descriptors.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Desc) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}

	switch a.Kind {
	case BoolKind, NumberKind, StringKind:
		return compareScalars(a, b)
	case ClassKind:
		return strings.Compare(a.Class, b.Class)
	case SequenceKind:
		if a.ReadOnly != b.ReadOnly {
			if !a.ReadOnly {
				return -1
			}
			return 1
		}
		return compareLists(a.Elems, b.Elems)
	case RecordKind:
		return compareRecords(a, b)
	case UnionKind, IntersectKind:
		if c := strings.Compare(a.Discriminant, b.Discriminant); c != 0 {
			return c
		}
		return compareLists(sorted(a.Variants), sorted(b.Variants))
	}
	return 0
}

func compareScalars(a, b *Desc) int {
	if a.Lit != b.Lit {
		if !a.Lit {
			return -1
		}
		return 1
	}
	if !a.Lit {
		return 0
	}
	switch a.Kind {
	case BoolKind:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case StringKind:
		return strings.Compare(a.Str, b.Str)
	}
	// Sub-rank: Int64 < Float64
	subA, subB := numberSubRank(a), numberSubRank(b)
	if subA != subB {
		return cmp.Compare(subA, subB)
	}
	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return 0
}

func numberSubRank(d *Desc) int {
	if d.Int64 != nil {
		return 0
	}
	if d.Float64 != nil {
		return 1
	}
	return 2
}

func compareLists(a, b []*Desc) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareRecords(a, b *Desc) int {
	fa, fb := sortedFields(a.Fields), sortedFields(b.Fields)
	minLen := min(len(fa), len(fb))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(fa[i].Name, fb[i].Name); c != 0 {
			return c
		}
		if c := Compare(fa[i].Type, fb[i].Type); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(fa), len(fb))
}

func sorted(ds []*Desc) []*Desc {
	res := slices.Clone(ds)
	slices.SortFunc(res, Compare)
	return res
}

func sortedFields(fs []Field) []Field {
	res := slices.Clone(fs)
	slices.SortFunc(res, func(x, y Field) int {
		return strings.Compare(x.Name, y.Name)
	})
	return res
}
