package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse  = errors.New("parse error")
	ErrTag    = fmt.Errorf("%w: bad tag", ErrParse)
	ErrKeyTag = fmt.Errorf("%w: key cannot be tagged", ErrParse)
	ErrExpr   = errors.New("expr error")
	ErrPatch  = errors.New("patch error")
)
