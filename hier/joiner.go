package hier

import "sync"

// Joiner memoises LeastUpperBound over a fixed Hierarchy.  It is safe for
// concurrent use once the Hierarchy is no longer modified.
type Joiner struct {
	h    *Hierarchy
	mu   sync.Mutex
	memo map[[2]NodeID]joinResult
}

type joinResult struct {
	id  NodeID
	err error
}

func NewJoiner(h *Hierarchy) *Joiner {
	return &Joiner{h: h, memo: map[[2]NodeID]joinResult{}}
}

func (j *Joiner) Hierarchy() *Hierarchy {
	return j.h
}

// Join is LeastUpperBound, cached.  The cache key is order normalised.
func (j *Joiner) Join(a, b NodeID) (NodeID, error) {
	key := [2]NodeID{a, b}
	if b < a {
		key = [2]NodeID{b, a}
	}
	j.mu.Lock()
	r, ok := j.memo[key]
	j.mu.Unlock()
	if ok {
		return r.id, r.err
	}
	id, err := j.h.LeastUpperBound(key[0], key[1])
	j.mu.Lock()
	j.memo[key] = joinResult{id: id, err: err}
	j.mu.Unlock()
	return id, err
}

func (j *Joiner) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.memo)
}
