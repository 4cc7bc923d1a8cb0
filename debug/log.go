package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/shapealg/desc"
)

var out io.Writer = os.Stderr

// SetOutput redirects debug logging, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *desc.Desc:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = x.String()
		case []*desc.Desc:
			args[i] = desc.Tuple(x...).String()
		}
	}
	fmt.Fprintf(out, msg, args...)
}
