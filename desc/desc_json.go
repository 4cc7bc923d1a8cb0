package desc

import (
	"encoding/json"
	"fmt"
)

type descJSON struct {
	Kind Kind `json:"kind"`

	Lit     bool     `json:"lit,omitempty"`
	Bool    *bool    `json:"bool,omitempty"`
	Str     *string  `json:"string,omitempty"`
	Int64   *int64   `json:"int,omitempty"`
	Float64 *float64 `json:"float,omitempty"`

	Class string `json:"class,omitempty"`

	Elems    []*Desc `json:"elems,omitempty"`
	ReadOnly bool    `json:"readonly,omitempty"`

	Fields []Field `json:"fields,omitempty"`

	Variants     []*Desc `json:"variants,omitempty"`
	Discriminant string  `json:"discriminant,omitempty"`
}

func (d *Desc) MarshalJSON() ([]byte, error) {
	base := &descJSON{
		Kind:         d.Kind,
		Lit:          d.Lit,
		Class:        d.Class,
		Elems:        d.Elems,
		ReadOnly:     d.ReadOnly,
		Fields:       d.Fields,
		Variants:     d.Variants,
		Discriminant: d.Discriminant,
	}
	if d.Lit {
		switch d.Kind {
		case BoolKind:
			b := d.Bool
			base.Bool = &b
		case StringKind:
			s := d.Str
			base.Str = &s
		case NumberKind:
			base.Int64 = d.Int64
			base.Float64 = d.Float64
		}
	}
	if d.Kind == SequenceKind && base.Elems == nil {
		base.Elems = []*Desc{}
	}
	return json.Marshal(base)
}

func (d *Desc) UnmarshalJSON(data []byte) error {
	tmp := &descJSON{}
	if err := json.Unmarshal(data, tmp); err != nil {
		return err
	}
	*d = Desc{
		Kind:         tmp.Kind,
		Lit:          tmp.Lit,
		Class:        tmp.Class,
		Elems:        tmp.Elems,
		ReadOnly:     tmp.ReadOnly,
		Fields:       tmp.Fields,
		Variants:     tmp.Variants,
		Discriminant: tmp.Discriminant,
	}
	if len(d.Elems) == 0 {
		d.Elems = nil
	}
	if d.Lit {
		if !d.Kind.IsScalar() {
			return fmt.Errorf("%w: literal of kind %s", ErrBadJSON, d.Kind)
		}
		switch d.Kind {
		case BoolKind:
			if tmp.Bool == nil {
				return fmt.Errorf("%w: boolean literal without value", ErrBadJSON)
			}
			d.Bool = *tmp.Bool
		case StringKind:
			if tmp.Str == nil {
				return fmt.Errorf("%w: string literal without value", ErrBadJSON)
			}
			d.Str = *tmp.Str
		case NumberKind:
			if (tmp.Int64 == nil) == (tmp.Float64 == nil) {
				return fmt.Errorf("%w: number literal needs exactly one of int, float", ErrBadJSON)
			}
			d.Int64 = tmp.Int64
			d.Float64 = tmp.Float64
		}
	}
	for _, f := range d.Fields {
		if f.Type == nil {
			return fmt.Errorf("%w: field %q has no type", ErrBadJSON, f.Name)
		}
	}
	for _, ds := range [][]*Desc{d.Elems, d.Variants} {
		for _, e := range ds {
			if e == nil {
				return fmt.Errorf("%w: null descriptor in %s", ErrBadJSON, d.Kind)
			}
		}
	}
	return nil
}
