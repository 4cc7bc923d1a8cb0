package libdiff

import (
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/shapealg/desc"
)

// Diff returns the changes turning from into to, nil when they are equal.
func Diff(from, to *desc.Desc) []Change {
	d := &differ{}
	d.diff("", from, to)
	return d.res
}

type differ struct {
	res []Change
}

func (d *differ) add(c Change) {
	d.res = append(d.res, c)
}

func (d *differ) diff(path string, from, to *desc.Desc) {
	if desc.Equal(from, to) {
		return
	}
	switch {
	case from.Kind == desc.RecordKind && to.Kind == desc.RecordKind:
		d.record(path, from, to)
	case from.Kind == desc.SequenceKind && to.Kind == desc.SequenceKind && from.ReadOnly == to.ReadOnly:
		d.sequence(path, from, to)
	case from.Kind == desc.UnionKind && to.Kind == desc.UnionKind:
		if from.Discriminant != "" && from.Discriminant == to.Discriminant &&
			desc.CheckTagged(from) == nil && desc.CheckTagged(to) == nil {
			d.tagged(path, from, to)
			return
		}
		d.union(path, from, to)
	default:
		d.add(Change{Op: Replace, Path: path, From: from, To: to})
	}
}

// 1 diff field names
// for every different field name add a change
// for every same field name, recurse on the type
func (d *differ) record(path string, from, to *desc.Desc) {
	fieldMap := map[string]rune{}
	fromRunes := mapFieldsTo(fieldMap, from)
	toRunes := mapFieldsTo(fieldMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range []rune(diff.Text) {
				f := from.Fields[fi]
				d.add(Change{Op: Delete, Path: fieldPath(path, f.Name), From: f.Type})
				fi++
			}
		case diffpatch.DiffEqual:
			for range []rune(diff.Text) {
				f := from.Fields[fi]
				d.diff(fieldPath(path, f.Name), f.Type, to.Fields[ti].Type)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range []rune(diff.Text) {
				f := to.Fields[ti]
				d.add(Change{Op: Insert, Path: fieldPath(path, f.Name), To: f.Type})
				ti++
			}
		}
	}
}

// runes start past the ASCII range so that field names never collide with
// the line separators go-diff special-cases.
const runeBase = 0x100

func mapFieldsTo(m map[string]rune, d *desc.Desc) []rune {
	rs := make([]rune, len(d.Fields))
	for i := range d.Fields {
		name := d.Fields[i].Name
		r, ok := m[name]
		if !ok {
			r = runeBase + rune(len(m))
			m[name] = r
		}
		rs[i] = r
	}
	return rs
}

func (d *differ) sequence(path string, from, to *desc.Desc) {
	n := min(len(from.Elems), len(to.Elems))
	for i := 0; i < n; i++ {
		d.diff(indexPath(path, i), from.Elems[i], to.Elems[i])
	}
	for i := n; i < len(from.Elems); i++ {
		d.add(Change{Op: Delete, Path: indexPath(path, i), From: from.Elems[i]})
	}
	for i := n; i < len(to.Elems); i++ {
		d.add(Change{Op: Insert, Path: indexPath(path, i), To: to.Elems[i]})
	}
}

// tagged pairs variants whose discriminant types are equal.
func (d *differ) tagged(path string, from, to *desc.Desc) {
	disc := from.Discriminant
	used := make([]bool, len(to.Variants))
	for _, fv := range from.Variants {
		fk, _ := fv.Field(disc)
		match := -1
		for j, tv := range to.Variants {
			if used[j] {
				continue
			}
			if tk, _ := tv.Field(disc); desc.Equal(fk, tk) {
				match = j
				break
			}
		}
		vpath := variantPath(path, fk)
		if match < 0 {
			d.add(Change{Op: Delete, Path: vpath, From: fv})
			continue
		}
		used[match] = true
		d.diff(vpath, fv, to.Variants[match])
	}
	for j, tv := range to.Variants {
		if used[j] {
			continue
		}
		tk, _ := tv.Field(disc)
		d.add(Change{Op: Insert, Path: variantPath(path, tk), To: tv})
	}
}

// union reports members removed and added, unpaired.
func (d *differ) union(path string, from, to *desc.Desc) {
	path += "|"
	for _, fv := range from.Variants {
		if !hasMember(to, fv) {
			d.add(Change{Op: Delete, Path: path, From: fv})
		}
	}
	for _, tv := range to.Variants {
		if !hasMember(from, tv) {
			d.add(Change{Op: Insert, Path: path, To: tv})
		}
	}
}

func hasMember(u, m *desc.Desc) bool {
	for _, v := range u.Variants {
		if desc.Equal(v, m) {
			return true
		}
	}
	return false
}

func fieldPath(path, name string) string {
	return path + "." + desc.FieldName(name)
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func variantPath(path string, key *desc.Desc) string {
	return path + "<" + key.String() + ">"
}
