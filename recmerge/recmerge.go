// Package recmerge merges the record variants of a union into one record.
package recmerge

import (
	"fmt"

	"github.com/signadot/shapealg/debug"
	"github.com/signadot/shapealg/desc"
)

// IntersectVariants returns the record whose fields are all the field names
// of the variants of u, in first-seen order.  Each field's type is the
// union of its types across the variants that have it; a field found in a
// single variant keeps that type unchanged.  The literals of a tagged
// union's discriminant are kept apart, so true and false do not become
// boolean.
//
// Bottom gives the empty record.  A variant that is not a record, or a
// tagged union whose variants lack the discriminant, gives
// desc.ErrMalformedUnion.
func IntersectVariants(u *desc.Desc) (*desc.Desc, error) {
	if u == nil {
		return nil, fmt.Errorf("%w: nil descriptor", desc.ErrMalformedUnion)
	}
	if err := desc.CheckTagged(u); err != nil {
		return nil, err
	}
	var (
		order []string
		types = map[string][]*desc.Desc{}
	)
	for i, v := range u.Members() {
		if v.Kind != desc.RecordKind {
			return nil, fmt.Errorf("%w: variant %d is a %s, not a record", desc.ErrMalformedUnion, i, v.Kind)
		}
		for _, f := range v.Fields {
			if _, ok := types[f.Name]; !ok {
				order = append(order, f.Name)
			}
			types[f.Name] = append(types[f.Name], f.Type)
		}
	}
	fields := make([]desc.Field, len(order))
	for i, name := range order {
		ts := types[name]
		t := ts[0]
		switch {
		case len(ts) == 1:
		case name == u.Discriminant:
			t = desc.DistinctUnion(ts...)
		default:
			t = desc.Union(ts...)
		}
		fields[i] = desc.F(name, t)
	}
	res := desc.Record(fields...)
	if debug.Merge() {
		debug.Logf("merge %s -> %s\n", u, res)
	}
	return res, nil
}
