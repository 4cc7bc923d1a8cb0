// Package shapealg is a structural type algebra over descriptors.
//
// Descriptors (package desc) reify types: literals, primitives, tuples,
// records, unions, intersections and class references.  The operations
// here answer questions about them:
//
//   - All, Slice and Drop on fixed-length sequences
//   - ExcludeIfBottom and Narrow filter union variants by a pattern
//   - LeastUpperBound joins class references in a Hierarchy
//   - IntersectVariants merges the record variants of a union
//
// Each is implemented in its own package; this package puts them under one
// name and adds options.  Inputs are never modified.
package shapealg

import (
	"errors"
	"fmt"

	"github.com/signadot/shapealg/debug"
	"github.com/signadot/shapealg/desc"
	"github.com/signadot/shapealg/hier"
	"github.com/signadot/shapealg/narrow"
	"github.com/signadot/shapealg/recmerge"
	"github.com/signadot/shapealg/seqop"
)

func All(seq *desc.Desc) (bool, error) {
	return seqop.All(seq)
}

func Slice(seq *desc.Desc, n int) (*desc.Desc, error) {
	return seqop.Slice(seq, n)
}

func Drop(seq *desc.Desc, n int) (*desc.Desc, error) {
	return seqop.Drop(seq, n)
}

func ExcludeIfBottom(actual, pattern *desc.Desc, opts ...Opt) (*desc.Desc, error) {
	return narrow.ExcludeIfBottom(actual, pattern, newConfig(opts).narrowOpts()...)
}

func Narrow(actual, pattern *desc.Desc, opts ...Opt) (*desc.Desc, error) {
	return narrow.Narrow(actual, pattern, newConfig(opts).narrowOpts()...)
}

func IntersectVariants(u *desc.Desc) (*desc.Desc, error) {
	return recmerge.IntersectVariants(u)
}

// LeastUpperBound joins two class descriptors in h.  Unions of classes on
// either side are folded pairwise, so lub(A | B, C) is lub(lub(A, B), C).
// Bottom is the identity and Unknown absorbs.
func LeastUpperBound(h *hier.Hierarchy, a, b *desc.Desc, opts ...Opt) (*desc.Desc, error) {
	cfg := newConfig(opts)
	if cfg.Joiner != nil {
		h = cfg.Joiner.Hierarchy()
	}
	unknown := false
	for _, d := range []*desc.Desc{a, b} {
		switch {
		case d == nil:
			return nil, fmt.Errorf("%w: %w", ErrNotClass, desc.ErrNilDesc)
		case d.IsUnknown():
			unknown = true
			continue
		}
		for _, m := range d.Members() {
			if m.Kind != desc.ClassKind {
				return nil, fmt.Errorf("%w: %s", ErrNotClass, m)
			}
		}
	}
	if unknown {
		return desc.Unknown(), nil
	}
	j := &classJoin{cfg: cfg, h: h, acc: hier.NoNode}
	for _, d := range []*desc.Desc{a, b} {
		for _, m := range d.Members() {
			if err := j.add(m); err != nil {
				return nil, err
			}
		}
	}
	res := j.result()
	if debug.Join() {
		debug.Logf("lub %s %s -> %s\n", a, b, res)
	}
	return res, nil
}

type classJoin struct {
	cfg   *Config
	h     *hier.Hierarchy
	acc   hier.NodeID
	atTop bool
}

func (j *classJoin) add(m *desc.Desc) error {
	if m.Kind != desc.ClassKind {
		return fmt.Errorf("%w: %s", ErrNotClass, m)
	}
	id, ok := j.h.Lookup(m.Class)
	if !ok {
		if j.cfg.Top != "" && m.Class == j.cfg.Top {
			j.atTop = true
			return nil
		}
		return fmt.Errorf("%w: class %q", ErrUnknownNode, m.Class)
	}
	if j.atTop {
		return nil
	}
	if j.acc == hier.NoNode {
		j.acc = id
		return nil
	}
	res, err := j.join(j.acc, id)
	if errors.Is(err, hier.ErrNoCommonAncestor) && j.cfg.Top != "" {
		j.atTop = true
		return nil
	}
	if err != nil {
		return err
	}
	j.acc = res
	return nil
}

func (j *classJoin) join(a, b hier.NodeID) (hier.NodeID, error) {
	if j.cfg.Joiner != nil {
		return j.cfg.Joiner.Join(a, b)
	}
	return j.h.LeastUpperBound(a, b)
}

func (j *classJoin) result() *desc.Desc {
	switch {
	case j.atTop:
		return desc.Class(j.cfg.Top)
	case j.acc == hier.NoNode:
		return desc.Bottom()
	}
	return desc.Class(j.h.Name(j.acc))
}
