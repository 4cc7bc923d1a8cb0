package libdiff

import (
	"strings"

	"github.com/signadot/shapealg/desc"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return "~"
}

type Change struct {
	Op   Op
	Path string
	// From is nil for Insert and To is nil for Delete.
	From *desc.Desc
	To   *desc.Desc
}

func (c Change) String() string {
	path := c.Path
	if path == "" {
		path = "."
	}
	switch c.Op {
	case Insert:
		return c.Op.String() + " " + path + ": " + c.To.String()
	case Delete:
		return c.Op.String() + " " + path + ": " + c.From.String()
	}
	return c.Op.String() + " " + path + ": " + c.From.String() + " -> " + c.To.String()
}

// Format renders one change per line.
func Format(cs []Change) string {
	buf := &strings.Builder{}
	for _, c := range cs {
		buf.WriteString(c.String())
		buf.WriteByte('\n')
	}
	return buf.String()
}

// Reverse returns the changes that undo cs.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i, c := range cs {
		r := Change{Op: c.Op, Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		}
		res[i] = r
	}
	return res
}
