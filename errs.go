package shapealg

import (
	"errors"

	"github.com/signadot/shapealg/desc"
	"github.com/signadot/shapealg/hier"
	"github.com/signadot/shapealg/seqop"
)

var (
	ErrInvalidIndex     = seqop.ErrInvalidIndex
	ErrNotSequence      = seqop.ErrNotSequence
	ErrMalformedUnion   = desc.ErrMalformedUnion
	ErrNilDesc          = desc.ErrNilDesc
	ErrNoCommonAncestor = hier.ErrNoCommonAncestor
	ErrUnknownNode      = hier.ErrUnknownNode

	ErrNotClass = errors.New("not a class descriptor")
)
