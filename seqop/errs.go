package seqop

import "errors"

var (
	ErrInvalidIndex = errors.New("invalid index")
	ErrNotSequence  = errors.New("not a sequence")
)
