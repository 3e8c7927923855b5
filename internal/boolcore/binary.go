package boolcore

// ToBinary reshapes every n-ary OR/AND/XOR in e into a balanced tree of
// 2-ary operators of the same kind (spec.md §4.6), halving the operand
// list at each level so that operator fan-in never exceeds two. An n-ary
// EQ is first rewritten as the conjunction of its adjacent pairwise
// equalities (EQ(x1..xn) == AND_i EQ(x_i, x_i+1)), and that AND is then
// binarized the same way. NOT, IMPL and ITE keep their shape; only their
// children are recursively binarized. ToBinary borrows e, builds with the
// raw (non-simplifying) constructors, and performs no constant folding or
// absorption of its own beyond what those constructors already do.
func ToBinary(ctx *Context, e *Node) (*Node, error) {
	switch e.kind {
	case Or, And, Xor:
		children, err := binarizeChildren(ctx, e.children)
		if err != nil {
			return nil, err
		}
		return binarySplit(ctx, e.kind, children)

	case Eq:
		children, err := binarizeChildren(ctx, e.children)
		if err != nil {
			return nil, err
		}
		if len(children) <= 1 {
			for _, c := range children {
				c.DecRef()
			}
			return constOne.IncRef(), nil
		}
		if len(children) == 2 {
			return ctx.build("eq", Eq, children)
		}
		pairs := make([]*Node, 0, len(children)-1)
		for i := 0; i+1 < len(children); i++ {
			children[i].IncRef()
			children[i+1].IncRef()
			p, err := ctx.build("eq-pair", Eq, []*Node{children[i], children[i+1]})
			if err != nil {
				for _, c := range children {
					c.DecRef()
				}
				for _, p := range pairs {
					p.DecRef()
				}
				return nil, err
			}
			pairs = append(pairs, p)
		}
		for _, c := range children {
			c.DecRef()
		}
		return binarySplit(ctx, And, pairs)

	case Not:
		c, err := ToBinary(ctx, e.children[0])
		if err != nil {
			return nil, err
		}
		return ctx.Not(c)

	case Impl:
		p, err := ToBinary(ctx, e.children[0])
		if err != nil {
			return nil, err
		}
		q, err := ToBinary(ctx, e.children[1])
		if err != nil {
			p.DecRef()
			return nil, err
		}
		return ctx.Implies(p, q)

	case Ite:
		s, err := ToBinary(ctx, e.children[0])
		if err != nil {
			return nil, err
		}
		d1, err := ToBinary(ctx, e.children[1])
		if err != nil {
			s.DecRef()
			return nil, err
		}
		d0, err := ToBinary(ctx, e.children[2])
		if err != nil {
			s.DecRef()
			d1.DecRef()
			return nil, err
		}
		return ctx.Ite(s, d1, d0)

	default: // constants and literals
		return e.IncRef(), nil
	}
}

func binarizeChildren(ctx *Context, xs []*Node) ([]*Node, error) {
	out := make([]*Node, len(xs))
	for i, c := range xs {
		nc, err := ToBinary(ctx, c)
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

// binarySplit consumes xs and combines them into a balanced 2-ary tree of
// kind operators.
func binarySplit(ctx *Context, kind Kind, xs []*Node) (*Node, error) {
	switch len(xs) {
	case 0:
		return identityConst(kind).IncRef(), nil
	case 1:
		return xs[0], nil
	case 2:
		return ctx.build(kind.String(), kind, xs)
	default:
		mid := len(xs) / 2
		left, err := binarySplit(ctx, kind, xs[:mid])
		if err != nil {
			for _, x := range xs[mid:] {
				x.DecRef()
			}
			return nil, err
		}
		right, err := binarySplit(ctx, kind, xs[mid:])
		if err != nil {
			left.DecRef()
			return nil, err
		}
		return ctx.build(kind.String(), kind, []*Node{left, right})
	}
}
