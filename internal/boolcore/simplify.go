package boolcore

// Simplify rewrites e into its canonical simplified form (spec.md §4.4).
// It borrows e: e's own reference is left untouched, and a freshly owned
// result is returned. Simplify memoizes on the SIMPLE flag and marks it,
// along with every descendant, on its way out.
func Simplify(ctx *Context, e *Node) (*Node, error) {
	if e.IsSimple() {
		return e.IncRef(), nil
	}
	if e.kind.IsAtom() {
		return e.IncRef(), nil
	}

	newChildren := make([]*Node, len(e.children))
	for i, c := range e.children {
		nc, err := Simplify(ctx, c)
		if err != nil {
			for j := 0; j < i; j++ {
				newChildren[j].DecRef()
			}
			return nil, err
		}
		newChildren[i] = nc
	}

	result, err := simplifyDispatch(ctx, e.kind, newChildren)
	if err != nil {
		return nil, err
	}
	markSimpleRecursive(result)
	return result, nil
}

// simplifyDispatch runs the per-kind simplifier named in spec.md §4.4 on
// an already-child-simplified operand list, consuming children.
//
// OR/AND/XOR/EQ delegate to their algebraic arg-set accumulators
// (argset_orand.go, argset_xor.go, argset_eq.go): those already implement
// exactly the flatten/absorb/complementary-pair rules this step
// describes, just via hash-set membership instead of a sorted adjacency
// scan, so there is no separate "sort then dedupe" pass here.
func simplifyDispatch(ctx *Context, kind Kind, children []*Node) (*Node, error) {
	switch kind {
	case Or, And:
		as := NewOrAndArgSet(kind)
		for _, c := range children {
			as.Insert(c)
		}
		return as.Build(ctx)
	case Xor:
		as := NewXorArgSet()
		for _, c := range children {
			as.Insert(c)
		}
		return as.Build(ctx)
	case Eq:
		as := NewEqArgSet()
		for _, c := range children {
			as.Insert(c)
		}
		return as.Build(ctx)
	case Not:
		return ctx.Not(children[0])
	case Impl:
		return implSimplify(ctx, children[0], children[1])
	case Ite:
		return iteSimplify(ctx, children[0], children[1], children[2])
	default:
		violate("simplifyDispatch", "unhandled operator kind %s", kind)
		return nil, nil
	}
}

// implSimplify applies spec.md §4.4's impl_simplify table, consuming p
// and q.
func implSimplify(ctx *Context, p, q *Node) (*Node, error) {
	switch {
	case p == constZero: // 0 -> q = 1
		p.DecRef()
		q.DecRef()
		return constOne.IncRef(), nil
	case q == constOne: // p -> 1 = 1
		p.DecRef()
		q.DecRef()
		return constOne.IncRef(), nil
	case p == constOne: // 1 -> q = q
		p.DecRef()
		return q, nil
	case q == constZero: // p -> 0 = ¬p
		q.DecRef()
		return ctx.Not(p)
	case p == q: // p -> p = 1
		p.DecRef()
		q.DecRef()
		return constOne.IncRef(), nil
	case isComplementOf(p, q): // ¬p -> p = p
		p.DecRef()
		return q, nil
	default:
		return ctx.build("implies-argset", Impl, []*Node{p, q})
	}
}

// isComplementOf reports whether a is the negation of b: either a
// literal whose id is -b's, or a NOT node whose child is b.
func isComplementOf(a, b *Node) bool {
	if a.kind == Not {
		return a.children[0] == b
	}
	if a.kind.IsLiteral() && b.kind.IsLiteral() {
		return a.litID == -b.litID
	}
	return false
}

// iteSimplify applies the ITE decision table of spec.md §4.4, consuming
// s, d1, d0.
func iteSimplify(ctx *Context, s, d1, d0 *Node) (*Node, error) {
	switch {
	case s == constOne: // s selects d1
		s.DecRef()
		d0.DecRef()
		return d1, nil
	case s == constZero: // s selects d0
		s.DecRef()
		d1.DecRef()
		return d0, nil
	case d1 == constOne && d0 == constZero: // ite(s,1,0) = s
		d1.DecRef()
		d0.DecRef()
		return s, nil
	case d1 == constZero && d0 == constOne: // ite(s,0,1) = ¬s
		d1.DecRef()
		d0.DecRef()
		return ctx.Not(s)
	case d1 == d0: // same branch regardless of selector
		s.DecRef()
		d0.DecRef()
		return d1, nil
	case s == d1: // ite(s,s,d0) = s v d0
		return ctx.Or(s, d0)
	case s == d0: // ite(s,d1,s) = s ^ d1
		return ctx.And(s, d1)
	case d1 == constOne: // ite(s,1,d0) = s v d0
		d1.DecRef()
		return ctx.Or(s, d0)
	case d1 == constZero: // ite(s,0,d0) = ¬s ^ d0
		d1.DecRef()
		ns, err := ctx.Not(s.IncRef())
		if err != nil {
			s.DecRef()
			d0.DecRef()
			return nil, err
		}
		s.DecRef()
		return ctx.And(ns, d0)
	case d0 == constOne: // ite(s,d1,1) = ¬s v d1
		d0.DecRef()
		ns, err := ctx.Not(s.IncRef())
		if err != nil {
			s.DecRef()
			d1.DecRef()
			return nil, err
		}
		s.DecRef()
		return ctx.Or(ns, d1)
	case d0 == constZero: // ite(s,d1,0) = s ^ d1
		d0.DecRef()
		return ctx.And(s, d1)
	default:
		return ctx.build("ite-argset", Ite, []*Node{s, d1, d0})
	}
}
