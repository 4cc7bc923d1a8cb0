package desc

import (
	"strconv"
	"strings"
	"unicode"
)

// String renders d in a TypeScript-like notation, e.g.
//
//	{k: 'a'; value: number | string}
//	readonly [1, 2]
func (d *Desc) String() string {
	buf := &strings.Builder{}
	d.write(buf, false)
	return buf.String()
}

func (d *Desc) write(buf *strings.Builder, inIntersect bool) {
	if d == nil {
		buf.WriteString("<nil>")
		return
	}
	switch d.Kind {
	case BottomKind, UnknownKind, NullKind:
		buf.WriteString(d.Kind.String())
	case BoolKind, NumberKind, StringKind:
		buf.WriteString(d.scalarString())
	case ClassKind:
		buf.WriteString(d.Class)
	case SequenceKind:
		if d.ReadOnly {
			buf.WriteString("readonly ")
		}
		buf.WriteByte('[')
		for i, e := range d.Elems {
			if i != 0 {
				buf.WriteString(", ")
			}
			e.write(buf, false)
		}
		buf.WriteByte(']')
	case RecordKind:
		buf.WriteByte('{')
		for i, f := range d.Fields {
			if i != 0 {
				buf.WriteString("; ")
			}
			buf.WriteString(FieldName(f.Name))
			buf.WriteString(": ")
			f.Type.write(buf, false)
		}
		buf.WriteByte('}')
	case UnionKind:
		if inIntersect {
			buf.WriteByte('(')
		}
		for i, v := range d.Variants {
			if i != 0 {
				buf.WriteString(" | ")
			}
			v.write(buf, false)
		}
		if inIntersect {
			buf.WriteByte(')')
		}
	case IntersectKind:
		for i, v := range d.Variants {
			if i != 0 {
				buf.WriteString(" & ")
			}
			v.write(buf, true)
		}
	}
}

func (d *Desc) scalarString() string {
	if !d.Lit {
		return d.Kind.String()
	}
	switch d.Kind {
	case BoolKind:
		return strconv.FormatBool(d.Bool)
	case StringKind:
		return quote(d.Str)
	}
	switch {
	case d.Int64 != nil:
		return strconv.FormatInt(*d.Int64, 10)
	case d.Float64 != nil:
		return strconv.FormatFloat(*d.Float64, 'g', -1, 64)
	}
	return d.Kind.String()
}

func quote(s string) string {
	q := strconv.Quote(s)
	q = q[1 : len(q)-1]
	q = strings.ReplaceAll(q, `\"`, `"`)
	q = strings.ReplaceAll(q, `'`, `\'`)
	return "'" + q + "'"
}

// FieldName returns name as a record key, quoted unless it is an
// identifier.
func FieldName(name string) string {
	if name == "" {
		return quote(name)
	}
	for i, r := range name {
		if r == '_' || r == '$' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return quote(name)
	}
	return name
}
