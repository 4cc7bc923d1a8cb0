package desc

import "fmt"

type Kind int

const (
	BottomKind Kind = iota
	UnknownKind
	NullKind
	BoolKind
	NumberKind
	StringKind
	ClassKind
	SequenceKind
	RecordKind
	UnionKind
	IntersectKind
)

var kindNames = map[Kind]string{
	BottomKind:    "never",
	UnknownKind:   "unknown",
	NullKind:      "null",
	BoolKind:      "boolean",
	NumberKind:    "number",
	StringKind:    "string",
	ClassKind:     "class",
	SequenceKind:  "sequence",
	RecordKind:    "record",
	UnionKind:     "union",
	IntersectKind: "intersect",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, name := range kindNames {
		if name == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{
		BottomKind,
		UnknownKind,
		NullKind,
		BoolKind,
		NumberKind,
		StringKind,
		ClassKind,
		SequenceKind,
		RecordKind,
		UnionKind,
		IntersectKind,
	}
}

// IsScalar reports whether descriptors of kind k may carry a literal.
func (k Kind) IsScalar() bool {
	switch k {
	case BoolKind, NumberKind, StringKind:
		return true
	default:
		return false
	}
}

// IsComposite reports whether k holds child descriptors.
func (k Kind) IsComposite() bool {
	switch k {
	case SequenceKind, RecordKind, UnionKind, IntersectKind:
		return true
	default:
		return false
	}
}
