package boolcore

// PushDownNot pushes negations down through OR and AND (De Morgan's laws)
// and into both branches of an ITE (spec.md §4.5). XOR, EQ and IMPL are
// not rewritten through: their operands are processed with no pending
// negation, and a pending negation becomes a NOT wrapped around the
// rebuilt XOR/EQ/IMPL node, so the result can still hold a NOT over a
// non-literal. PushDownNot borrows e and returns a fresh owned result; it
// does not re-simplify afterwards.
func PushDownNot(ctx *Context, e *Node) (*Node, error) {
	return pushDownNot(ctx, e, false)
}

// pushDownNot walks e carrying a pending negation (neg) downward. When it
// reaches a literal or a kind it does not rewrite through, it applies the
// pending negation there instead of wrapping a NOT around the whole
// rebuilt subtree.
func pushDownNot(ctx *Context, e *Node, neg bool) (*Node, error) {
	switch e.kind {
	case Not:
		return pushDownNot(ctx, e.children[0], !neg)

	case Or, And:
		dual := e.kind
		if neg {
			if e.kind == Or {
				dual = And
			} else {
				dual = Or
			}
		}
		children := make([]*Node, len(e.children))
		for i, c := range e.children {
			nc, err := pushDownNot(ctx, c, neg)
			if err != nil {
				for j := 0; j < i; j++ {
					children[j].DecRef()
				}
				return nil, err
			}
			children[i] = nc
		}
		return ctx.orAnd(dual, children)

	case Ite:
		s, err := pushDownNot(ctx, e.children[0], false)
		if err != nil {
			return nil, err
		}
		d1, err := pushDownNot(ctx, e.children[1], neg)
		if err != nil {
			s.DecRef()
			return nil, err
		}
		d0, err := pushDownNot(ctx, e.children[2], neg)
		if err != nil {
			s.DecRef()
			d1.DecRef()
			return nil, err
		}
		return ctx.Ite(s, d1, d0)

	case Xor, Eq:
		children := make([]*Node, len(e.children))
		for i, c := range e.children {
			nc, err := pushDownNot(ctx, c, false)
			if err != nil {
				for j := 0; j < i; j++ {
					children[j].DecRef()
				}
				return nil, err
			}
			children[i] = nc
		}
		built, err := ctx.build(e.kind.String(), e.kind, children)
		if err != nil {
			return nil, err
		}
		if neg {
			return ctx.Not(built)
		}
		return built, nil

	case Impl:
		p, err := pushDownNot(ctx, e.children[0], false)
		if err != nil {
			return nil, err
		}
		q, err := pushDownNot(ctx, e.children[1], false)
		if err != nil {
			p.DecRef()
			return nil, err
		}
		built, err := ctx.Implies(p, q)
		if err != nil {
			return nil, err
		}
		if neg {
			return ctx.Not(built)
		}
		return built, nil

	default: // constants and literals
		e.IncRef()
		if neg {
			return ctx.Not(e)
		}
		return e, nil
	}
}
