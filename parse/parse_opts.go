package parse

type parseOpts struct {
	env map[string]any
}

type ParseOption func(*parseOpts)

// ExprEnv sets the variables visible to !expr scalars.
func ExprEnv(env map[string]any) ParseOption {
	return func(o *parseOpts) { o.env = env }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{}
	for _, f := range opts {
		f(res)
	}
	if res.env == nil {
		res.env = map[string]any{}
	}
	return res
}
