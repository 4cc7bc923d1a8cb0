package parse

import (
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
	"github.com/signadot/shapealg/debug"
	"github.com/signadot/shapealg/desc"
	"github.com/signadot/shapealg/hier"
)

// Parse reads the first document of d as a descriptor.
func Parse(d []byte, opts ...ParseOption) (*desc.Desc, error) {
	body, err := firstBody(d)
	if err != nil {
		return nil, err
	}
	p := &descParser{opts: newParseOpts(opts)}
	res, err := p.node(body)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s\n", res)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*desc.Desc, error) {
	return Parse([]byte(s), opts...)
}

// Hierarchy reads a child → parent mapping.
func Hierarchy(d []byte) (*hier.Hierarchy, error) {
	body, err := firstBody(d)
	if err != nil {
		return nil, err
	}
	mvs, err := mappingValues(body)
	if err != nil {
		return nil, err
	}
	parents := make(map[string]string, len(mvs))
	for _, mv := range mvs {
		name, err := keyString(mv)
		if err != nil {
			return nil, err
		}
		if _, dup := parents[name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate class %q", ErrParse, pos(mv), name)
		}
		switch v := unwrap(mv.Value).(type) {
		case nil, *ast.NullNode:
			parents[name] = ""
		case *ast.StringNode:
			parents[name] = v.Value
		default:
			return nil, fmt.Errorf("%w: %s: parent of %q must be a name, got %s", ErrParse, pos(mv.Value), name, v.Type())
		}
	}
	return hier.FromParents(parents)
}

func firstBody(d []byte) (ast.Node, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	for _, doc := range f.Docs {
		if doc.Body != nil {
			return doc.Body, nil
		}
	}
	return nil, fmt.Errorf("%w: empty document", ErrParse)
}

type descParser struct {
	opts *parseOpts
}

func (p *descParser) node(n ast.Node) (*desc.Desc, error) {
	switch v := n.(type) {
	case nil, *ast.NullNode:
		return desc.Null(), nil
	case *ast.TagNode:
		return p.tagged(v)
	case *ast.AnchorNode:
		return p.node(v.Value)
	case *ast.StringNode:
		return desc.StrLit(v.Value), nil
	case *ast.LiteralNode:
		return desc.StrLit(v.Value.Value), nil
	case *ast.BoolNode:
		return desc.BoolLit(v.Value), nil
	case *ast.IntegerNode:
		return intLit(v)
	case *ast.FloatNode:
		return desc.FloatLit(v.Value), nil
	case *ast.InfinityNode:
		return desc.FloatLit(v.Value), nil
	case *ast.NanNode:
		return desc.FloatLit(math.NaN()), nil
	case *ast.MappingNode, *ast.MappingValueNode:
		return p.record(n)
	case *ast.SequenceNode:
		elems, err := p.nodes(v.Values)
		if err != nil {
			return nil, err
		}
		return desc.Tuple(elems...), nil
	}
	return nil, fmt.Errorf("%w: %s: unsupported %s", ErrParse, pos(n), n.Type())
}

func (p *descParser) nodes(ns []ast.Node) ([]*desc.Desc, error) {
	res := make([]*desc.Desc, len(ns))
	for i, n := range ns {
		d, err := p.node(n)
		if err != nil {
			return nil, err
		}
		res[i] = d
	}
	return res, nil
}

func (p *descParser) record(n ast.Node) (*desc.Desc, error) {
	mvs, err := mappingValues(n)
	if err != nil {
		return nil, err
	}
	fields := make([]desc.Field, 0, len(mvs))
	for _, mv := range mvs {
		name, err := keyString(mv)
		if err != nil {
			return nil, err
		}
		t, err := p.node(mv.Value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, desc.F(name, t))
	}
	return desc.Record(fields...), nil
}

func (p *descParser) tagged(tn *ast.TagNode) (*desc.Desc, error) {
	tag := strings.TrimPrefix(tn.Start.Value, "!")
	switch tag {
	case "never":
		return desc.Bottom(), nil
	case "unknown":
		return desc.Unknown(), nil
	case "null":
		return desc.Null(), nil
	case "boolean":
		return desc.Bool(), nil
	case "number":
		return desc.Number(), nil
	case "string":
		return desc.String(), nil
	case "class":
		s, ok := unwrap(tn.Value).(*ast.StringNode)
		if !ok || s.Value == "" || isNull(s) {
			return nil, fmt.Errorf("%w: %s: !class needs a name", ErrTag, pos(tn))
		}
		return desc.Class(s.Value), nil
	case "readonly", "union", "intersect":
		seq, ok := unwrap(tn.Value).(*ast.SequenceNode)
		if !ok {
			return nil, fmt.Errorf("%w: %s: !%s needs a sequence", ErrTag, pos(tn), tag)
		}
		ds, err := p.nodes(seq.Values)
		if err != nil {
			return nil, err
		}
		switch tag {
		case "readonly":
			return desc.ReadOnlyTuple(ds...), nil
		case "union":
			return desc.Union(ds...), nil
		}
		return desc.Intersect(ds...), nil
	case "tagged":
		return p.taggedUnion(tn)
	case "expr":
		s, ok := unwrap(tn.Value).(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("%w: %s: !expr needs a string", ErrTag, pos(tn))
		}
		res, err := evalExpr(s.Value, p.opts.env)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pos(tn), err)
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %s: unknown tag %q", ErrTag, pos(tn), tn.Start.Value)
}

func (p *descParser) taggedUnion(tn *ast.TagNode) (*desc.Desc, error) {
	mvs, err := mappingValues(unwrap(tn.Value))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: !tagged needs a mapping", ErrTag, pos(tn))
	}
	var (
		disc     string
		variants []*desc.Desc
	)
	for _, mv := range mvs {
		key, err := keyString(mv)
		if err != nil {
			return nil, err
		}
		switch key {
		case "discriminant":
			s, ok := unwrap(mv.Value).(*ast.StringNode)
			if !ok {
				return nil, fmt.Errorf("%w: %s: discriminant must be a field name", ErrTag, pos(mv.Value))
			}
			disc = s.Value
		case "variants":
			seq, ok := unwrap(mv.Value).(*ast.SequenceNode)
			if !ok {
				return nil, fmt.Errorf("%w: %s: variants must be a sequence", ErrTag, pos(mv.Value))
			}
			variants, err = p.nodes(seq.Values)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: %s: unexpected key %q in !tagged", ErrTag, pos(mv), key)
		}
	}
	if disc == "" {
		return nil, fmt.Errorf("%w: %s: !tagged without discriminant", ErrTag, pos(tn))
	}
	u := &desc.Desc{Kind: desc.UnionKind, Variants: variants, Discriminant: disc}
	if err := desc.CheckTagged(u); err != nil {
		return nil, fmt.Errorf("%s: %w", pos(tn), err)
	}
	return desc.TaggedUnion(disc, variants...), nil
}

func intLit(n *ast.IntegerNode) (*desc.Desc, error) {
	switch v := n.Value.(type) {
	case int:
		return desc.IntLit(int64(v)), nil
	case int64:
		return desc.IntLit(v), nil
	case uint64:
		if v > 1<<63-1 {
			return desc.FloatLit(float64(v)), nil
		}
		return desc.IntLit(int64(v)), nil
	}
	return nil, fmt.Errorf("%w: %s: bad integer %v", ErrParse, pos(n), n.Value)
}

func mappingValues(n ast.Node) ([]*ast.MappingValueNode, error) {
	switch v := n.(type) {
	case *ast.MappingNode:
		return v.Values, nil
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{v}, nil
	case nil:
		return nil, fmt.Errorf("%w: expected a mapping", ErrParse)
	}
	return nil, fmt.Errorf("%w: %s: expected a mapping, got %s", ErrParse, pos(n), n.Type())
}

func keyString(mv *ast.MappingValueNode) (string, error) {
	switch k := ast.Node(mv.Key).(type) {
	case *ast.StringNode:
		return k.Value, nil
	case *ast.TagNode:
		return "", fmt.Errorf("%w: %s", ErrKeyTag, pos(k))
	}
	tok := mv.Key.GetToken()
	if tok == nil {
		return "", fmt.Errorf("%w: %s: bad key", ErrParse, pos(mv))
	}
	return tok.Value, nil
}

// unwrap skips anchors.
func unwrap(n ast.Node) ast.Node {
	for {
		a, ok := n.(*ast.AnchorNode)
		if !ok {
			return n
		}
		n = a.Value
	}
}

func pos(n ast.Node) string {
	if n == nil {
		return "-"
	}
	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return "-"
	}
	return fmt.Sprintf("%d:%d", tok.Position.Line, tok.Position.Column)
}

// isNull reports whether a plain scalar spells null.  Tagged values reach
// us as strings, so ~ and null are not NullNodes here.
func isNull(s *ast.StringNode) bool {
	if s.Token != nil {
		switch s.Token.Type {
		case token.SingleQuoteType, token.DoubleQuoteType:
			return false
		case token.NullType:
			return true
		}
	}
	switch s.Value {
	case "~", "null", "Null", "NULL":
		return true
	}
	return false
}
