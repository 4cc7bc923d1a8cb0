package narrow

import (
	"fmt"
	"strconv"

	"github.com/signadot/shapealg/debug"
	"github.com/signadot/shapealg/desc"
)

// ExcludeIfBottom returns actual without the members that have a Bottom
// slot at a position of pattern.  See the package documentation.
func ExcludeIfBottom(actual, pattern *desc.Desc, opts ...Opt) (*desc.Desc, error) {
	cfg := newConfig(opts)
	if err := check(actual); err != nil {
		return nil, err
	}
	pos := positionsOf(pattern)
	members := actual.Members()
	keep := make([]*desc.Desc, 0, len(members))
	for _, m := range members {
		if at, dead := cfg.deadAt(m, pos); dead {
			if debug.Narrow() {
				debug.Logf("exclude %s: bottom at %s\n", m, at)
			}
			continue
		}
		keep = append(keep, m)
	}
	if len(keep) == len(members) {
		return actual, nil
	}
	return desc.TaggedUnion(actual.Discriminant, keep...), nil
}

func check(actual *desc.Desc) error {
	if actual == nil {
		return fmt.Errorf("%w: actual", desc.ErrNilDesc)
	}
	return desc.CheckTagged(actual)
}

// positions are the slots a pattern selects.
type positions struct {
	names   []string
	indices int
}

func positionsOf(pattern *desc.Desc) positions {
	if pattern == nil {
		return positions{}
	}
	switch pattern.Kind {
	case desc.RecordKind:
		return positions{names: pattern.FieldNames()}
	case desc.SequenceKind:
		return positions{indices: len(pattern.Elems)}
	case desc.UnionKind:
		return commonPositions(pattern.Variants)
	}
	return positions{}
}

// commonPositions are the positions every member of a union pattern has.
func commonPositions(ms []*desc.Desc) positions {
	if len(ms) == 0 {
		return positions{}
	}
	switch ms[0].Kind {
	case desc.RecordKind:
		names := ms[0].FieldNames()
		for _, m := range ms[1:] {
			if m.Kind != desc.RecordKind {
				return positions{}
			}
			var common []string
			for _, n := range names {
				if _, ok := m.Field(n); ok {
					common = append(common, n)
				}
			}
			names = common
		}
		return positions{names: names}
	case desc.SequenceKind:
		n := len(ms[0].Elems)
		for _, m := range ms[1:] {
			if m.Kind != desc.SequenceKind {
				return positions{}
			}
			n = min(n, len(m.Elems))
		}
		return positions{indices: n}
	}
	return positions{}
}

func (cfg *Config) deadAt(m *desc.Desc, pos positions) (string, bool) {
	switch m.Kind {
	case desc.RecordKind:
		for _, name := range pos.names {
			t, ok := m.Field(name)
			if !ok {
				continue
			}
			if cfg.isBottom(t) {
				return name, true
			}
		}
	case desc.SequenceKind:
		for i := 0; i < pos.indices && i < len(m.Elems); i++ {
			if cfg.isBottom(m.Elems[i]) {
				return strconv.Itoa(i), true
			}
		}
	}
	return "", false
}

func (cfg *Config) isBottom(d *desc.Desc) bool {
	if d.IsBottom() {
		return true
	}
	if cfg.LiteralOnly {
		return false
	}
	return !Inhabited(d)
}

// IsBottom reports whether a slot of type d can never be occupied.
func IsBottom(d *desc.Desc, opts ...Opt) bool {
	return newConfig(opts).isBottom(d)
}
