package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/signadot/shapealg/desc"
)

type EncState struct {
	format Format
	indent int
	depth  int

	Color func(desc.Kind, ColorAttr, string) string
}

// Encode writes d to w followed by a newline.
func Encode(d *desc.Desc, w io.Writer, opts ...EncodeOption) error {
	if d == nil {
		return fmt.Errorf("%w: nil descriptor", ErrEncoding)
	}
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	buf := &strings.Builder{}
	switch es.format {
	case JSONFormat:
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		buf.Write(data)
	case YAMLFormat:
		if err := es.yaml(buf, d); err != nil {
			return err
		}
	default:
		es.text(buf, d, false)
	}
	buf.WriteByte('\n')
	_, err := io.WriteString(w, buf.String())
	return err
}

func (es *EncState) color(k desc.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func (es *EncState) nl(buf *strings.Builder) {
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

// text

func (es *EncState) text(buf *strings.Builder, d *desc.Desc, inIntersect bool) {
	switch d.Kind {
	case desc.BottomKind, desc.UnknownKind:
		buf.WriteString(es.color(d.Kind, KeywordColor, d.Kind.String()))
	case desc.NullKind:
		buf.WriteString(es.color(d.Kind, ValueColor, "null"))
	case desc.BoolKind, desc.NumberKind, desc.StringKind:
		attr := KeywordColor
		if d.Lit {
			attr = ValueColor
		}
		buf.WriteString(es.color(d.Kind, attr, d.String()))
	case desc.ClassKind:
		buf.WriteString(es.color(d.Kind, ValueColor, d.Class))
	case desc.SequenceKind:
		if d.ReadOnly {
			buf.WriteString(es.color(d.Kind, KeywordColor, "readonly") + " ")
		}
		buf.WriteString(es.color(d.Kind, SepColor, "["))
		for i, e := range d.Elems {
			if i != 0 {
				buf.WriteString(es.color(d.Kind, SepColor, ",") + " ")
			}
			es.text(buf, e, false)
		}
		buf.WriteString(es.color(d.Kind, SepColor, "]"))
	case desc.RecordKind:
		es.textRecord(buf, d)
	case desc.UnionKind, desc.IntersectKind:
		sep := " | "
		if d.Kind == desc.IntersectKind {
			sep = " & "
		}
		paren := inIntersect && d.Kind == desc.UnionKind
		if paren {
			buf.WriteString(es.color(d.Kind, SepColor, "("))
		}
		for i, v := range d.Variants {
			if i != 0 {
				buf.WriteString(es.color(d.Kind, SepColor, sep))
			}
			es.text(buf, v, d.Kind == desc.IntersectKind)
		}
		if paren {
			buf.WriteString(es.color(d.Kind, SepColor, ")"))
		}
	}
}

func (es *EncState) textRecord(buf *strings.Builder, d *desc.Desc) {
	k := desc.RecordKind
	buf.WriteString(es.color(k, SepColor, "{"))
	multi := es.indent > 0 && len(d.Fields) > 0
	if multi {
		es.depth++
	}
	for i, f := range d.Fields {
		if i != 0 {
			buf.WriteString(es.color(k, SepColor, ";"))
			if !multi {
				buf.WriteByte(' ')
			}
		}
		if multi {
			es.nl(buf)
		}
		buf.WriteString(es.color(k, FieldColor, desc.FieldName(f.Name)))
		buf.WriteString(es.color(k, SepColor, ":") + " ")
		es.text(buf, f.Type, false)
	}
	if multi {
		es.depth--
		es.nl(buf)
	}
	buf.WriteString(es.color(k, SepColor, "}"))
}

// yaml writes the flow notation read by package parse.

func (es *EncState) yaml(buf *strings.Builder, d *desc.Desc) error {
	tag := func(s string) {
		buf.WriteString(es.color(d.Kind, TagColor, s))
	}
	switch d.Kind {
	case desc.BottomKind, desc.UnknownKind:
		tag("!" + d.Kind.String() + " ~")
	case desc.NullKind:
		buf.WriteString(es.color(d.Kind, ValueColor, "null"))
	case desc.BoolKind, desc.NumberKind, desc.StringKind:
		if !d.Lit {
			tag("!" + d.Kind.String() + " ~")
			return nil
		}
		buf.WriteString(es.color(d.Kind, ValueColor, yamlScalar(d)))
	case desc.ClassKind:
		tag("!class ")
		buf.WriteString(es.color(d.Kind, ValueColor, strconv.Quote(d.Class)))
	case desc.SequenceKind:
		if d.ReadOnly {
			tag("!readonly ")
		}
		return es.yamlList(buf, d.Kind, d.Elems)
	case desc.RecordKind:
		buf.WriteString(es.color(d.Kind, SepColor, "{"))
		for i, f := range d.Fields {
			if i != 0 {
				buf.WriteString(es.color(d.Kind, SepColor, ",") + " ")
			}
			buf.WriteString(es.color(d.Kind, FieldColor, yamlKey(f.Name)))
			buf.WriteString(es.color(d.Kind, SepColor, ":") + " ")
			if err := es.yaml(buf, f.Type); err != nil {
				return err
			}
		}
		buf.WriteString(es.color(d.Kind, SepColor, "}"))
	case desc.UnionKind:
		if d.Discriminant != "" {
			tag("!tagged ")
			buf.WriteString("{discriminant: " + strconv.Quote(d.Discriminant) + ", variants: ")
			if err := es.yamlList(buf, d.Kind, d.Variants); err != nil {
				return err
			}
			buf.WriteByte('}')
			return nil
		}
		tag("!union ")
		return es.yamlList(buf, d.Kind, d.Variants)
	case desc.IntersectKind:
		tag("!intersect ")
		return es.yamlList(buf, d.Kind, d.Variants)
	default:
		return fmt.Errorf("%w: kind %s", ErrEncoding, d.Kind)
	}
	return nil
}

func (es *EncState) yamlList(buf *strings.Builder, k desc.Kind, ds []*desc.Desc) error {
	buf.WriteString(es.color(k, SepColor, "["))
	for i, e := range ds {
		if i != 0 {
			buf.WriteString(es.color(k, SepColor, ",") + " ")
		}
		if err := es.yaml(buf, e); err != nil {
			return err
		}
	}
	buf.WriteString(es.color(k, SepColor, "]"))
	return nil
}

func yamlScalar(d *desc.Desc) string {
	switch d.Kind {
	case desc.BoolKind:
		return strconv.FormatBool(d.Bool)
	case desc.StringKind:
		return strconv.Quote(d.Str)
	}
	if d.Int64 != nil {
		return strconv.FormatInt(*d.Int64, 10)
	}
	if d.Float64 == nil {
		return "!number ~"
	}
	f := *d.Float64
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func yamlKey(name string) string {
	if name == "" {
		return `""`
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && (unicode.IsDigit(r) || r == '-')) {
			continue
		}
		return strconv.Quote(name)
	}
	switch name {
	case "true", "false", "null", "yes", "no", "on", "off", "y", "n":
		return strconv.Quote(name)
	}
	return name
}

func MustString(d *desc.Desc, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Encode(d, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
