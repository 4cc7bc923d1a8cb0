package desc

import "slices"

type Desc struct {
	Kind Kind

	// scalars: Lit marks a literal; the value lives in the field
	// matching Kind.
	Lit     bool
	Bool    bool
	Str     string
	Int64   *int64
	Float64 *float64

	Class string

	Elems    []*Desc
	ReadOnly bool

	Fields []Field

	Variants     []*Desc
	Discriminant string
}

type Field struct {
	Name string `json:"name"`
	Type *Desc  `json:"type"`
}

func F(name string, t *Desc) Field {
	return Field{Name: name, Type: t}
}

func Bottom() *Desc  { return &Desc{Kind: BottomKind} }
func Unknown() *Desc { return &Desc{Kind: UnknownKind} }
func Null() *Desc    { return &Desc{Kind: NullKind} }
func Bool() *Desc    { return &Desc{Kind: BoolKind} }
func Number() *Desc  { return &Desc{Kind: NumberKind} }
func String() *Desc  { return &Desc{Kind: StringKind} }

func True() *Desc  { return BoolLit(true) }
func False() *Desc { return BoolLit(false) }

func BoolLit(v bool) *Desc {
	return &Desc{Kind: BoolKind, Lit: true, Bool: v}
}

func IntLit(v int64) *Desc {
	return &Desc{Kind: NumberKind, Lit: true, Int64: &v}
}

func FloatLit(v float64) *Desc {
	return &Desc{Kind: NumberKind, Lit: true, Float64: &v}
}

func StrLit(v string) *Desc {
	return &Desc{Kind: StringKind, Lit: true, Str: v}
}

func Class(name string) *Desc {
	return &Desc{Kind: ClassKind, Class: name}
}

// Tuple returns a mutable sequence of elems. The slice is copied.
func Tuple(elems ...*Desc) *Desc {
	return &Desc{Kind: SequenceKind, Elems: slices.Clone(elems)}
}

// ReadOnlyTuple returns a read-only sequence of elems.
func ReadOnlyTuple(elems ...*Desc) *Desc {
	res := Tuple(elems...)
	res.ReadOnly = true
	return res
}

// Record builds a record from fields in order.  A repeated name replaces
// the earlier field's type in place.
func Record(fields ...Field) *Desc {
	res := &Desc{Kind: RecordKind, Fields: make([]Field, 0, len(fields))}
	for _, f := range fields {
		if i := res.fieldIndex(f.Name); i >= 0 {
			res.Fields[i].Type = f.Type
			continue
		}
		res.Fields = append(res.Fields, f)
	}
	return res
}

func (d *Desc) fieldIndex(name string) int {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return i
		}
	}
	return -1
}

// Field returns the type of the named field of a record.
func (d *Desc) Field(name string) (*Desc, bool) {
	if d.Kind != RecordKind {
		return nil, false
	}
	i := d.fieldIndex(name)
	if i < 0 {
		return nil, false
	}
	return d.Fields[i].Type, true
}

func (d *Desc) FieldNames() []string {
	res := make([]string, len(d.Fields))
	for i := range d.Fields {
		res[i] = d.Fields[i].Name
	}
	return res
}

// Len is the length of a sequence, or -1 for other kinds.
func (d *Desc) Len() int {
	if d.Kind != SequenceKind {
		return -1
	}
	return len(d.Elems)
}

// Members returns the alternatives d stands for: the variants of a union,
// nothing for Bottom, and d itself otherwise.
func (d *Desc) Members() []*Desc {
	switch d.Kind {
	case UnionKind:
		return d.Variants
	case BottomKind:
		return nil
	default:
		return []*Desc{d}
	}
}

func (d *Desc) IsBottom() bool {
	return d != nil && d.Kind == BottomKind
}

func (d *Desc) IsUnknown() bool {
	return d != nil && d.Kind == UnknownKind
}

// IsTrue reports whether d is the literal true.
func (d *Desc) IsTrue() bool {
	return d != nil && d.Kind == BoolKind && d.Lit && d.Bool
}

func (d *Desc) Clone() *Desc {
	if d == nil {
		return nil
	}
	res := &Desc{}
	return d.CloneTo(res)
}

func (d *Desc) CloneTo(dst *Desc) *Desc {
	dst.Kind = d.Kind
	dst.Lit = d.Lit
	dst.Bool = d.Bool
	dst.Str = d.Str
	dst.Int64 = nil
	dst.Float64 = nil
	if d.Int64 != nil {
		i := *d.Int64
		dst.Int64 = &i
	}
	if d.Float64 != nil {
		f := *d.Float64
		dst.Float64 = &f
	}
	dst.Class = d.Class
	dst.ReadOnly = d.ReadOnly
	dst.Discriminant = d.Discriminant
	dst.Elems = cloneAll(d.Elems)
	dst.Variants = cloneAll(d.Variants)
	dst.Fields = nil
	if d.Fields != nil {
		dst.Fields = make([]Field, len(d.Fields))
		for i, f := range d.Fields {
			dst.Fields[i] = Field{Name: f.Name, Type: f.Type.Clone()}
		}
	}
	return dst
}

func cloneAll(ds []*Desc) []*Desc {
	if ds == nil {
		return nil
	}
	res := make([]*Desc, len(ds))
	for i, d := range ds {
		res[i] = d.Clone()
	}
	return res
}
