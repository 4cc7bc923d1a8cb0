package hier

import "errors"

var (
	ErrNoCommonAncestor = errors.New("no common ancestor")
	ErrUnknownNode      = errors.New("unknown node")
	ErrDuplicateNode    = errors.New("duplicate node")
	ErrCycle            = errors.New("extends cycle")
)
