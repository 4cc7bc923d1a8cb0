package narrow

// Slot satisfiability
//
// A slot descriptor is uninhabited when no value can occupy it.  Literal
// Bottom is the obvious case; unions and intersections of scalars can also
// be empty, e.g. 'a' & 'b' or string & number.  We decide this with a SAT
// formula over a single position.
//
// # Variables
//
//   - one variable per value class: null, boolean, number, string, object
//     (records, sequences and classes all live in object)
//   - one variable per scalar literal, e.g. string:'a'
//   - one variable per distinct composite descriptor (records, sequences,
//     classes), opaque: two different records may overlap
//
// # Clauses
//
//   - value classes are pairwise exclusive
//   - literals of the same class are pairwise exclusive
//   - a literal implies its class, a composite implies object
//
// # Formula
//
//   - Bottom → false, Unknown → true
//   - primitive → class variable, literal → literal variable
//   - union → OR of members, intersection → AND of members
//
// Fields of records and elements of sequences are not descended into: a
// record with a Bottom field is still a record at this position.

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/signadot/shapealg/debug"
	"github.com/signadot/shapealg/desc"
)

const objectClass = "object"

type opaqueVar struct {
	d   *desc.Desc
	lit z.Lit
}

type formulaBuilder struct {
	c        *logic.C
	classes  map[string]z.Lit
	literals map[string]z.Lit
	byClass  map[string][]z.Lit
	opaque   []opaqueVar
	implied  [][2]z.Lit
}

func newFormulaBuilder() *formulaBuilder {
	return &formulaBuilder{
		c:        logic.NewC(),
		classes:  map[string]z.Lit{},
		literals: map[string]z.Lit{},
		byClass:  map[string][]z.Lit{},
	}
}

func (b *formulaBuilder) build(d *desc.Desc) z.Lit {
	if d == nil {
		return b.c.T
	}
	switch d.Kind {
	case desc.BottomKind:
		return b.c.F
	case desc.UnknownKind:
		return b.c.T
	case desc.NullKind:
		return b.class(d.Kind.String())
	case desc.BoolKind, desc.NumberKind, desc.StringKind:
		if d.Lit {
			return b.literal(d)
		}
		return b.class(d.Kind.String())
	case desc.UnionKind:
		if len(d.Variants) == 0 {
			return b.c.F
		}
		return b.c.Ors(b.buildAll(d.Variants)...)
	case desc.IntersectKind:
		if len(d.Variants) == 0 {
			return b.c.T
		}
		return b.c.Ands(b.buildAll(d.Variants)...)
	default:
		return b.composite(d)
	}
}

func (b *formulaBuilder) buildAll(ds []*desc.Desc) []z.Lit {
	lits := make([]z.Lit, len(ds))
	for i, d := range ds {
		lits[i] = b.build(d)
	}
	return lits
}

// class gets or creates the variable for a value class.
func (b *formulaBuilder) class(name string) z.Lit {
	if lit, ok := b.classes[name]; ok {
		return lit
	}
	lit := b.c.Lit()
	b.classes[name] = lit
	return lit
}

func (b *formulaBuilder) literal(d *desc.Desc) z.Lit {
	className := d.Kind.String()
	key := className + ":" + d.String()
	if lit, ok := b.literals[key]; ok {
		return lit
	}
	lit := b.c.Lit()
	b.literals[key] = lit
	b.byClass[className] = append(b.byClass[className], lit)
	b.implied = append(b.implied, [2]z.Lit{lit, b.class(className)})
	return lit
}

func (b *formulaBuilder) composite(d *desc.Desc) z.Lit {
	for _, o := range b.opaque {
		if desc.Equal(o.d, d) {
			return o.lit
		}
	}
	lit := b.c.Lit()
	b.opaque = append(b.opaque, opaqueVar{d: d, lit: lit})
	b.implied = append(b.implied, [2]z.Lit{lit, b.class(objectClass)})
	return lit
}

func (b *formulaBuilder) addClauses(g *gini.Gini) {
	classes := make([]z.Lit, 0, len(b.classes))
	for _, lit := range b.classes {
		classes = append(classes, lit)
	}
	addMutex(g, classes)
	for _, lits := range b.byClass {
		addMutex(g, lits)
	}
	for _, imp := range b.implied {
		// a → b = ¬a ∨ b
		g.Add(imp[0].Not())
		g.Add(imp[1])
		g.Add(0)
	}
}

func addMutex(g *gini.Gini, lits []z.Lit) {
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			g.Add(lits[i].Not())
			g.Add(lits[j].Not())
			g.Add(0)
		}
	}
}

func (b *formulaBuilder) satisfiable(formula z.Lit) bool {
	g := gini.New()
	b.c.ToCnf(g)
	b.addClauses(g)
	g.Assume(formula)
	return g.Solve() == 1
}

// Inhabited reports whether some value can occupy a slot of type d.
func Inhabited(d *desc.Desc) bool {
	switch d.Kind {
	case desc.BottomKind:
		return false
	case desc.UnionKind, desc.IntersectKind:
	default:
		return true
	}
	b := newFormulaBuilder()
	res := b.satisfiable(b.build(d))
	if debug.SAT() {
		debug.Logf("sat: inhabited(%s) = %v\n", d, res)
	}
	return res
}

// Implies reports whether every value of a is also a value of b.
func Implies(a, b *desc.Desc) bool {
	fb := newFormulaBuilder()
	la, lb := fb.build(a), fb.build(b)
	res := !fb.satisfiable(fb.c.And(la, lb.Not()))
	if debug.SAT() {
		debug.Logf("sat: %s implies %s = %v\n", a, b, res)
	}
	return res
}
