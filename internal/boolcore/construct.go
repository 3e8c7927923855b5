package boolcore

// This file implements the public construction API of spec.md §4.1.
// Convention used throughout the engine: constructors CONSUME (take
// ownership of) every *Node argument passed to them and return a freshly
// owned reference; rewrite passes (simplify.go and friends) instead
// BORROW their top-level expression argument. On any construction
// failure, every already-held child is released before the error is
// returned (spec.md §5/§9).

// Literal returns ctx's unique literal node for id (positive for a
// variable, negative for its complement), creating the pair on first
// use. id must be nonzero.
func Literal(ctx *Context, id int32) *Node {
	if id == 0 {
		violate("Literal", "id must be nonzero")
	}
	return ctx.pool.get(id).IncRef()
}

func identityConst(k Kind) *Node {
	if identityFor(k) == One {
		return constOne
	}
	return constZero
}

func dominatorConst(k Kind) *Node {
	if dominatorFor(k) == One {
		return constOne
	}
	return constZero
}

// orAnd implements the shared or_op/and_op/xor_op arity-collapse rule:
// 0 operands -> the kind's identity constant, 1 operand -> that operand,
// otherwise a fresh operator node.
func (ctx *Context) orAnd(kind Kind, xs []*Node) (*Node, error) {
	ctx.checkSamePool(kind.String(), xs...)
	switch len(xs) {
	case 0:
		return identityConst(kind).IncRef(), nil
	case 1:
		return xs[0], nil
	default:
		return ctx.build(kind.String(), kind, xs)
	}
}

// Or builds an n-ary disjunction. See orAnd for the arity-collapse rule.
func (ctx *Context) Or(xs ...*Node) (*Node, error) { return ctx.orAnd(Or, xs) }

// And builds an n-ary conjunction. See orAnd for the arity-collapse rule.
func (ctx *Context) And(xs ...*Node) (*Node, error) { return ctx.orAnd(And, xs) }

// Xor builds an n-ary exclusive-or. See orAnd for the arity-collapse rule.
func (ctx *Context) Xor(xs ...*Node) (*Node, error) { return ctx.orAnd(Xor, xs) }

// Eq builds an n-ary equality (all operands equal). With zero or one
// operand it returns ONE (vacuously/trivially true).
func (ctx *Context) Eq(xs ...*Node) (*Node, error) {
	ctx.checkSamePool("eq", xs...)
	switch len(xs) {
	case 0:
		return constOne.IncRef(), nil
	case 1:
		xs[0].DecRef()
		return constOne.IncRef(), nil
	default:
		return ctx.build("eq", Eq, xs)
	}
}

// Not builds the negation of x: constant-folds on constants, returns the
// complementary literal for a literal, cancels an existing NOT, and
// otherwise wraps x in a fresh NOT node.
func (ctx *Context) Not(x *Node) (*Node, error) {
	ctx.checkSamePool("not", x)
	switch x.kind {
	case Illogical:
		x.DecRef()
		return constIllogical.IncRef(), nil
	case Zero:
		x.DecRef()
		return constOne.IncRef(), nil
	case One:
		x.DecRef()
		return constZero.IncRef(), nil
	case Logical:
		x.DecRef()
		return constLogical.IncRef(), nil
	case Var, Comp:
		comp := ctx.pool.get(-x.litID)
		comp.IncRef()
		x.DecRef()
		return comp, nil
	case Not:
		c := x.children[0]
		c.IncRef()
		x.DecRef()
		return c, nil
	default:
		return ctx.build("not", Not, []*Node{x})
	}
}

// Nor builds NOT(OR(xs...)).
func (ctx *Context) Nor(xs ...*Node) (*Node, error) {
	o, err := ctx.Or(xs...)
	if err != nil {
		return nil, err
	}
	return ctx.Not(o)
}

// Nand builds NOT(AND(xs...)).
func (ctx *Context) Nand(xs ...*Node) (*Node, error) {
	a, err := ctx.And(xs...)
	if err != nil {
		return nil, err
	}
	return ctx.Not(a)
}

// Xnor builds NOT(XOR(xs...)).
func (ctx *Context) Xnor(xs ...*Node) (*Node, error) {
	x, err := ctx.Xor(xs...)
	if err != nil {
		return nil, err
	}
	return ctx.Not(x)
}

// Unequal builds NOT(EQ(xs...)).
func (ctx *Context) Unequal(xs ...*Node) (*Node, error) {
	e, err := ctx.Eq(xs...)
	if err != nil {
		return nil, err
	}
	return ctx.Not(e)
}

// Implies builds p -> q directly, with no simplification.
func (ctx *Context) Implies(p, q *Node) (*Node, error) {
	ctx.checkSamePool("implies", p, q)
	return ctx.build("implies", Impl, []*Node{p, q})
}

// Ite builds "if s then d1 else d0" directly, with no simplification.
func (ctx *Context) Ite(s, d1, d0 *Node) (*Node, error) {
	ctx.checkSamePool("ite", s, d1, d0)
	return ctx.build("ite", Ite, []*Node{s, d1, d0})
}
