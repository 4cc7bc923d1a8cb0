package parse

import (
	"fmt"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/signadot/shapealg/debug"
	"github.com/signadot/shapealg/desc"
)

func evalExpr(src string, env map[string]any) (*desc.Desc, error) {
	prg, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrExpr, src, err)
	}
	v, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrExpr, src, err)
	}
	if debug.Parse() {
		debug.Logf("expr %q = %v\n", src, v)
	}
	return fromValue(v)
}

// fromValue reads an evaluation result back as literals.
func fromValue(v any) (*desc.Desc, error) {
	switch x := v.(type) {
	case nil:
		return desc.Null(), nil
	case bool:
		return desc.BoolLit(x), nil
	case string:
		return desc.StrLit(x), nil
	case int:
		return desc.IntLit(int64(x)), nil
	case int32:
		return desc.IntLit(int64(x)), nil
	case int64:
		return desc.IntLit(x), nil
	case uint:
		return desc.IntLit(int64(x)), nil
	case uint32:
		return desc.IntLit(int64(x)), nil
	case uint64:
		if x > 1<<63-1 {
			return desc.FloatLit(float64(x)), nil
		}
		return desc.IntLit(int64(x)), nil
	case float32:
		return desc.FloatLit(float64(x)), nil
	case float64:
		return desc.FloatLit(x), nil
	case []any:
		elems := make([]*desc.Desc, len(x))
		for i, e := range x {
			d, err := fromValue(e)
			if err != nil {
				return nil, err
			}
			elems[i] = d
		}
		return desc.Tuple(elems...), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]desc.Field, len(keys))
		for i, k := range keys {
			d, err := fromValue(x[k])
			if err != nil {
				return nil, err
			}
			fields[i] = desc.F(k, d)
		}
		return desc.Record(fields...), nil
	}
	return nil, fmt.Errorf("%w: cannot read %T as a descriptor", ErrExpr, v)
}
