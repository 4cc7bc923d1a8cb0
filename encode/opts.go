package encode

type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

func (f Format) String() string {
	switch f {
	case YAMLFormat:
		return "yaml"
	case JSONFormat:
		return "json"
	}
	return "text"
}

func ParseFormat(s string) (Format, bool) {
	for _, f := range []Format{TextFormat, YAMLFormat, JSONFormat} {
		if f.String() == s {
			return f, true
		}
	}
	return TextFormat, false
}

type EncodeOption func(*EncState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// Indent lays records out one field per line in text format.  Zero
// keeps everything on one line.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
