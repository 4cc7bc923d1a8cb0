package narrow

import (
	"github.com/signadot/shapealg/debug"
	"github.com/signadot/shapealg/desc"
)

// Narrow restricts each member of actual to pattern, position by position,
// and then drops the members left with a Bottom slot.
//
// A record member has each field that pattern also names replaced by the
// intersection of both types; a sequence member likewise for the indices
// of a sequence pattern.  Unknown pattern slots leave the member's slot
// as is.
func Narrow(actual, pattern *desc.Desc, opts ...Opt) (*desc.Desc, error) {
	cfg := newConfig(opts)
	if err := check(actual); err != nil {
		return nil, err
	}
	members := actual.Members()
	narrowed := make([]*desc.Desc, len(members))
	changed := false
	for i, m := range members {
		narrowed[i] = cfg.narrowMember(m, pattern)
		if narrowed[i] != m {
			changed = true
		}
	}
	res := actual
	if changed {
		res = rebuild(actual, narrowed)
	}
	if debug.Narrow() {
		debug.Logf("narrow %s by %s -> %s\n", actual, pattern, res)
	}
	res, err := ExcludeIfBottom(res, pattern, opts...)
	if err != nil {
		return nil, err
	}
	// narrowed members may now coincide
	return desc.TaggedUnion(res.Discriminant, res.Members()...), nil
}

func rebuild(actual *desc.Desc, members []*desc.Desc) *desc.Desc {
	if actual.Kind != desc.UnionKind {
		return members[0]
	}
	// keep every member, Bottom slots are for ExcludeIfBottom to see
	return &desc.Desc{
		Kind:         desc.UnionKind,
		Variants:     members,
		Discriminant: actual.Discriminant,
	}
}

func (cfg *Config) narrowMember(m, pattern *desc.Desc) *desc.Desc {
	if pattern == nil {
		return m
	}
	switch {
	case m.Kind == desc.RecordKind && pattern.Kind == desc.RecordKind:
		var fields []desc.Field
		for i, f := range m.Fields {
			pt, ok := pattern.Field(f.Name)
			if !ok {
				continue
			}
			nt := cfg.restrict(f.Type, pt)
			if nt == f.Type {
				continue
			}
			if fields == nil {
				fields = append([]desc.Field(nil), m.Fields...)
			}
			fields[i] = desc.F(f.Name, nt)
		}
		if fields == nil {
			return m
		}
		return desc.Record(fields...)
	case m.Kind == desc.SequenceKind && pattern.Kind == desc.SequenceKind:
		var elems []*desc.Desc
		for i := 0; i < len(m.Elems) && i < len(pattern.Elems); i++ {
			ne := cfg.restrict(m.Elems[i], pattern.Elems[i])
			if ne == m.Elems[i] {
				continue
			}
			if elems == nil {
				elems = append([]*desc.Desc(nil), m.Elems...)
			}
			elems[i] = ne
		}
		if elems == nil {
			return m
		}
		res := desc.Tuple(elems...)
		res.ReadOnly = m.ReadOnly
		return res
	}
	return m
}

// restrict returns the part of slot t that pattern p admits.  Record and
// sequence patterns recurse into record and sequence slots, and a nested
// slot left with a Bottom position is Bottom itself.
func (cfg *Config) restrict(t, p *desc.Desc) *desc.Desc {
	if p.IsUnknown() || desc.Equal(t, p) {
		return t
	}
	if t.Kind == p.Kind && (t.Kind == desc.RecordKind || t.Kind == desc.SequenceKind) {
		nt := cfg.narrowMember(t, p)
		if _, dead := cfg.deadAt(nt, positionsOf(p)); dead {
			return desc.Bottom()
		}
		return nt
	}
	if t.Kind == desc.UnionKind {
		var parts []*desc.Desc
		for _, v := range t.Variants {
			parts = append(parts, cfg.restrict(v, p))
		}
		return desc.Union(parts...)
	}
	return cfg.simplify(desc.Intersect(t, p))
}

// simplify reduces an intersection that is empty to Bottom, and one
// whose member implies all the others to that member.
func (cfg *Config) simplify(d *desc.Desc) *desc.Desc {
	if d.Kind != desc.IntersectKind || cfg.LiteralOnly {
		return d
	}
	if !Inhabited(d) {
		return desc.Bottom()
	}
	for i, m := range d.Variants {
		rest := make([]*desc.Desc, 0, len(d.Variants)-1)
		rest = append(rest, d.Variants[:i]...)
		rest = append(rest, d.Variants[i+1:]...)
		if Implies(m, desc.Intersect(rest...)) {
			return m
		}
	}
	return d
}
