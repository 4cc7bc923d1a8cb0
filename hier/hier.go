// Package hier computes joins in single-inheritance class hierarchies.
//
// A Hierarchy is an arena: nodes are addressed by NodeID and hold the
// index of their parent.  Add only accepts parents that already exist, so
// the extends relation is acyclic by construction.  A Hierarchy is built
// by one goroutine and may then be read concurrently.
package hier

import (
	"fmt"

	"github.com/signadot/shapealg/debug"
)

type NodeID int32

const NoNode NodeID = -1

type node struct {
	name   string
	parent NodeID
	depth  int
}

type Hierarchy struct {
	nodes  []node
	byName map[string]NodeID
	top    NodeID
}

func New() *Hierarchy {
	return &Hierarchy{byName: map[string]NodeID{}, top: NoNode}
}

// Add adds a node named name extending parent.  An empty parent makes the
// node a root.
func (h *Hierarchy) Add(name, parent string) (NodeID, error) {
	if _, ok := h.byName[name]; ok {
		return NoNode, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}
	n := node{name: name, parent: NoNode}
	if parent != "" {
		pid, ok := h.byName[parent]
		if !ok || pid == h.top {
			return NoNode, fmt.Errorf("%w: parent %q of %q", ErrUnknownNode, parent, name)
		}
		n.parent = pid
		n.depth = h.nodes[pid].depth + 1
	}
	id := NodeID(len(h.nodes))
	h.nodes = append(h.nodes, n)
	h.byName[name] = id
	return id, nil
}

// SetTop adds a synthetic root named name.  It is returned by
// LeastUpperBound instead of ErrNoCommonAncestor and counts as an ancestor
// of every node, but it is not on any ancestor chain and cannot be
// extended.
func (h *Hierarchy) SetTop(name string) (NodeID, error) {
	if h.top != NoNode {
		return NoNode, fmt.Errorf("%w: top already set to %q", ErrDuplicateNode, h.nodes[h.top].name)
	}
	id, err := h.Add(name, "")
	if err != nil {
		return NoNode, err
	}
	h.top = id
	return id, nil
}

// Top returns the synthetic root, if any.
func (h *Hierarchy) Top() (NodeID, bool) {
	return h.top, h.top != NoNode
}

func (h *Hierarchy) Len() int {
	return len(h.nodes)
}

func (h *Hierarchy) Lookup(name string) (NodeID, bool) {
	id, ok := h.byName[name]
	return id, ok
}

func (h *Hierarchy) Name(id NodeID) string {
	if !h.valid(id) {
		return ""
	}
	return h.nodes[id].name
}

func (h *Hierarchy) Parent(id NodeID) (NodeID, bool) {
	if !h.valid(id) || h.nodes[id].parent == NoNode {
		return NoNode, false
	}
	return h.nodes[id].parent, true
}

func (h *Hierarchy) Depth(id NodeID) int {
	if !h.valid(id) {
		return -1
	}
	return h.nodes[id].depth
}

func (h *Hierarchy) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(h.nodes)
}

func (h *Hierarchy) check(ids ...NodeID) error {
	for _, id := range ids {
		if !h.valid(id) {
			return fmt.Errorf("%w: id %d", ErrUnknownNode, id)
		}
	}
	return nil
}

// Ancestors returns id followed by its ancestors, most specific first.
func (h *Hierarchy) Ancestors(id NodeID) []NodeID {
	if !h.valid(id) {
		return nil
	}
	res := make([]NodeID, 0, h.nodes[id].depth+1)
	for cur := id; cur != NoNode; cur = h.nodes[cur].parent {
		res = append(res, cur)
	}
	return res
}

// IsAncestor reports whether anc is id or one of its ancestors.
func (h *Hierarchy) IsAncestor(anc, id NodeID) bool {
	if !h.valid(anc) || !h.valid(id) {
		return false
	}
	if anc == h.top {
		return true
	}
	cur := id
	for h.nodes[cur].depth > h.nodes[anc].depth {
		cur = h.nodes[cur].parent
	}
	return cur == anc
}

// LeastUpperBound returns the most specific common ancestor of a and b.
// When one is an ancestor of the other the ancestor is returned.  Nodes in
// disjoint trees have no common ancestor: the result is the synthetic top
// when set and ErrNoCommonAncestor otherwise.
func (h *Hierarchy) LeastUpperBound(a, b NodeID) (NodeID, error) {
	if err := h.check(a, b); err != nil {
		return NoNode, err
	}
	ca, cb := h.Ancestors(a), h.Ancestors(b)
	// chains agree from the root end up to the join
	res := NoNode
	for i, j := len(ca)-1, len(cb)-1; i >= 0 && j >= 0 && ca[i] == cb[j]; i, j = i-1, j-1 {
		res = ca[i]
	}
	if debug.Join() {
		debug.Logf("join %s %s: %v %v -> %d\n", h.Name(a), h.Name(b), ca, cb, res)
	}
	if res != NoNode {
		return res, nil
	}
	if h.top != NoNode {
		return h.top, nil
	}
	return NoNode, fmt.Errorf("%w: %q and %q", ErrNoCommonAncestor, h.Name(a), h.Name(b))
}

// JoinNames is LeastUpperBound by node name.
func (h *Hierarchy) JoinNames(a, b string) (string, error) {
	ia, ok := h.Lookup(a)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNode, a)
	}
	ib, ok := h.Lookup(b)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNode, b)
	}
	res, err := h.LeastUpperBound(ia, ib)
	if err != nil {
		return "", err
	}
	return h.Name(res), nil
}
