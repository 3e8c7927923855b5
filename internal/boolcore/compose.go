package boolcore

// Compose substitutes, for every (variable, replacement) pair in
// var2ex, the replacement expression for every occurrence of that
// variable in e — both its positive and complemented literal — and
// rebuilds the tree with the raw (non-simplifying) constructors
// (spec.md §4.10). Variables with no entry in var2ex pass through
// unchanged. Compose borrows e and does not consume var2ex.
func Compose(ctx *Context, e *Node, var2ex *Dict) (*Node, error) {
	return composeRecurse(ctx, e, var2ex)
}

// Restrict specializes e under the total or partial variable assignment
// var2const (values must be the ZERO/ONE constants) by composing it in
// and then simplifying the result (spec.md §4.10). Restrict borrows e
// and does not consume var2const.
func Restrict(ctx *Context, e *Node, var2const *Dict) (*Node, error) {
	raw, err := composeRecurse(ctx, e, var2const)
	if err != nil {
		return nil, err
	}
	result, err := Simplify(ctx, raw)
	raw.DecRef()
	return result, err
}

func composeRecurse(ctx *Context, e *Node, dict *Dict) (*Node, error) {
	switch e.kind {
	case Var:
		if val, ok := dict.Search(e); ok {
			return val.IncRef(), nil
		}
		return e.IncRef(), nil

	case Comp:
		posLit := e.pool.get(-e.litID)
		if val, ok := dict.Search(posLit); ok {
			return ctx.Not(val.IncRef())
		}
		return e.IncRef(), nil

	case Illogical, Zero, One, Logical:
		return e.IncRef(), nil

	case Or, And, Xor, Eq:
		children, err := composeEach(ctx, e.children, dict)
		if err != nil {
			return nil, err
		}
		return rebuildCommutative(ctx, e.kind, children)

	case Not:
		c, err := composeRecurse(ctx, e.children[0], dict)
		if err != nil {
			return nil, err
		}
		return ctx.Not(c)

	case Impl:
		p, err := composeRecurse(ctx, e.children[0], dict)
		if err != nil {
			return nil, err
		}
		q, err := composeRecurse(ctx, e.children[1], dict)
		if err != nil {
			p.DecRef()
			return nil, err
		}
		return ctx.Implies(p, q)

	case Ite:
		s, err := composeRecurse(ctx, e.children[0], dict)
		if err != nil {
			return nil, err
		}
		d1, err := composeRecurse(ctx, e.children[1], dict)
		if err != nil {
			s.DecRef()
			return nil, err
		}
		d0, err := composeRecurse(ctx, e.children[2], dict)
		if err != nil {
			s.DecRef()
			d1.DecRef()
			return nil, err
		}
		return ctx.Ite(s, d1, d0)

	default:
		violate("Compose", "unhandled kind %s", e.kind)
		return nil, nil
	}
}

func composeEach(ctx *Context, xs []*Node, dict *Dict) ([]*Node, error) {
	out := make([]*Node, len(xs))
	for i, c := range xs {
		nc, err := composeRecurse(ctx, c, dict)
		if err != nil {
			for j := 0; j < i; j++ {
				out[j].DecRef()
			}
			return nil, err
		}
		out[i] = nc
	}
	return out, nil
}

func rebuildCommutative(ctx *Context, kind Kind, children []*Node) (*Node, error) {
	switch kind {
	case Or:
		return ctx.Or(children...)
	case And:
		return ctx.And(children...)
	case Xor:
		return ctx.Xor(children...)
	case Eq:
		return ctx.Eq(children...)
	default:
		violate("rebuildCommutative", "unhandled kind %s", kind)
		return nil, nil
	}
}
