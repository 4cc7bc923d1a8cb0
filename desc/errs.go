package desc

import (
	"errors"
)

var (
	ErrMalformedUnion = errors.New("malformed union")
	ErrBadJSON        = errors.New("bad descriptor json")
	ErrNilDesc        = errors.New("nil descriptor")
)
