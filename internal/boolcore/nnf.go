package boolcore

// ToNNF rewrites e into negation normal form: NOT only ever wraps a
// literal, and IMPL/EQ/XOR/ITE are expanded away into OR/AND/NOT
// (spec.md §4.7). It borrows e, pushes the resulting negations down to
// the literals, re-simplifies, and marks SIMPLE and NNF on the result
// before returning it.
func ToNNF(ctx *Context, e *Node) (*Node, error) {
	raw, err := nnf(ctx, e)
	if err != nil {
		return nil, err
	}
	pushed, err := PushDownNot(ctx, raw)
	raw.DecRef()
	if err != nil {
		return nil, err
	}
	simplified, err := Simplify(ctx, pushed)
	pushed.DecRef()
	if err != nil {
		return nil, err
	}
	markNNFRecursive(simplified)
	return simplified, nil
}

// nnf returns the NNF of e; nnfNeg returns the NNF of NOT(e). Both borrow
// e. They are mutually recursive so that a negation is resolved by
// choosing the dual branch instead of ever materializing a NOT over a
// non-literal.
func nnf(ctx *Context, e *Node) (*Node, error) {
	switch e.kind {
	case Not:
		return nnfNeg(ctx, e.children[0])

	case Or, And:
		children, err := nnfEach(ctx, e.children, false)
		if err != nil {
			return nil, err
		}
		return ctx.orAnd(e.kind, children)

	case Xor:
		return nnfXorFold(ctx, e.children, false)

	case Eq:
		return nnfEqPairwise(ctx, e.children, false)

	case Impl:
		p, err := nnfNeg(ctx, e.children[0])
		if err != nil {
			return nil, err
		}
		q, err := nnf(ctx, e.children[1])
		if err != nil {
			p.DecRef()
			return nil, err
		}
		return ctx.Or(p, q)

	case Ite:
		return nnfIte(ctx, e.children[0], e.children[1], e.children[2], false)

	default: // constants and literals
		return e.IncRef(), nil
	}
}

func nnfNeg(ctx *Context, e *Node) (*Node, error) {
	switch e.kind {
	case Not:
		return nnf(ctx, e.children[0])

	case Or: // ¬(a v b) = ¬a ^ ¬b
		children, err := nnfEach(ctx, e.children, true)
		if err != nil {
			return nil, err
		}
		return ctx.orAnd(And, children)

	case And: // ¬(a ^ b) = ¬a v ¬b
		children, err := nnfEach(ctx, e.children, true)
		if err != nil {
			return nil, err
		}
		return ctx.orAnd(Or, children)

	case Xor:
		return nnfXorFold(ctx, e.children, true)

	case Eq:
		return nnfEqPairwise(ctx, e.children, true)

	case Impl: // ¬(p -> q) = p ^ ¬q
		p, err := nnf(ctx, e.children[0])
		if err != nil {
			return nil, err
		}
		q, err := nnfNeg(ctx, e.children[1])
		if err != nil {
			p.DecRef()
			return nil, err
		}
		return ctx.And(p, q)

	case Ite:
		return nnfIte(ctx, e.children[0], e.children[1], e.children[2], true)

	default: // constants and literals
		return ctx.Not(e.IncRef())
	}
}

func nnfEach(ctx *Context, xs []*Node, neg bool) ([]*Node, error) {
	out := make([]*Node, len(xs))
	for i, c := range xs {
		var nc *Node
		var err error
		if neg {
			nc, err = nnfNeg(ctx, c)
		} else {
			nc, err = nnf(ctx, c)
		}
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

func nnfIte(ctx *Context, s, d1, d0 *Node, neg bool) (*Node, error) {
	sp, err := nnf(ctx, s)
	if err != nil {
		return nil, err
	}
	sn, err := nnfNeg(ctx, s)
	if err != nil {
		sp.DecRef()
		return nil, err
	}
	var d1n, d0n *Node
	if neg {
		d1n, err = nnfNeg(ctx, d1)
	} else {
		d1n, err = nnf(ctx, d1)
	}
	if err != nil {
		sp.DecRef()
		sn.DecRef()
		return nil, err
	}
	var d0r *Node
	if neg {
		d0r, err = nnfNeg(ctx, d0)
	} else {
		d0r, err = nnf(ctx, d0)
	}
	if err != nil {
		sp.DecRef()
		sn.DecRef()
		d1n.DecRef()
		return nil, err
	}

	if preferConjunctive(d1n, d0r) {
		o1, err := ctx.Or(sn, d1n)
		if err != nil {
			sp.DecRef()
			d0r.DecRef()
			return nil, err
		}
		o2, err := ctx.Or(sp, d0r)
		if err != nil {
			o1.DecRef()
			return nil, err
		}
		return ctx.And(o1, o2)
	}
	a1, err := ctx.And(sp, d1n)
	if err != nil {
		sn.DecRef()
		d0r.DecRef()
		return nil, err
	}
	a2, err := ctx.And(sn, d0r)
	if err != nil {
		a1.DecRef()
		return nil, err
	}
	return ctx.Or(a1, a2)
}

// xorCombine builds NNF(lpos ^ rpos) when wantNeg is false, or
// NNF(¬(lpos ^ rpos)) when wantNeg is true, given both polarities of
// each operand. It consumes all four arguments, using each exactly once.
func xorCombine(ctx *Context, lpos, lneg, rpos, rneg *Node, wantNeg bool) (*Node, error) {
	conj := preferConjunctive(lpos, rpos)
	switch {
	case !wantNeg && !conj: // (lpos^rneg) v (lneg^rpos)
		a1, err := ctx.And(lpos, rneg)
		if err != nil {
			lneg.DecRef()
			rpos.DecRef()
			return nil, err
		}
		a2, err := ctx.And(lneg, rpos)
		if err != nil {
			a1.DecRef()
			return nil, err
		}
		return ctx.Or(a1, a2)
	case !wantNeg && conj: // (lpos v rpos) ^ (lneg v rneg)
		o1, err := ctx.Or(lpos, rpos)
		if err != nil {
			lneg.DecRef()
			rneg.DecRef()
			return nil, err
		}
		o2, err := ctx.Or(lneg, rneg)
		if err != nil {
			o1.DecRef()
			return nil, err
		}
		return ctx.And(o1, o2)
	case wantNeg && !conj: // (lpos^rpos) v (lneg^rneg)
		a1, err := ctx.And(lpos, rpos)
		if err != nil {
			lneg.DecRef()
			rneg.DecRef()
			return nil, err
		}
		a2, err := ctx.And(lneg, rneg)
		if err != nil {
			a1.DecRef()
			return nil, err
		}
		return ctx.Or(a1, a2)
	default: // wantNeg && conj: (lneg v rpos) ^ (lpos v rneg)
		o1, err := ctx.Or(lneg, rpos)
		if err != nil {
			lpos.DecRef()
			rneg.DecRef()
			return nil, err
		}
		o2, err := ctx.Or(lpos, rneg)
		if err != nil {
			o1.DecRef()
			return nil, err
		}
		return ctx.And(o1, o2)
	}
}

// preferConjunctive decides, for a single XOR/EQ/ITE expansion step,
// whether to build an AND-of-ORs (conjunctive) or OR-of-ANDs
// (disjunctive) shape: whichever matches the operands' own dominant
// connective produces fewer net operators once the two halves are
// combined, so the choice is driven by which connective already occurs
// more often across a and b.
func preferConjunctive(a, b *Node) bool {
	return countKind(a, Or)+countKind(b, Or) > countKind(a, And)+countKind(b, And)
}

func countKind(e *Node, kind Kind) int {
	total := 0
	if e.kind == kind {
		total = 1
	}
	for _, c := range e.children {
		total += countKind(c, kind)
	}
	return total
}

// nnfXorFold reduces an n-ary XOR's NNF by folding its children
// left-to-right through xorCombine, carrying both polarities of the
// running accumulator since either may be needed by the next fold step.
func nnfXorFold(ctx *Context, children []*Node, neg bool) (*Node, error) {
	if len(children) == 0 {
		if neg {
			return constOne.IncRef(), nil
		}
		return constZero.IncRef(), nil
	}
	accPos, err := nnf(ctx, children[0])
	if err != nil {
		return nil, err
	}
	accNeg, err := nnfNeg(ctx, children[0])
	if err != nil {
		accPos.DecRef()
		return nil, err
	}
	if len(children) == 1 {
		if neg {
			accPos.DecRef()
			return accNeg, nil
		}
		accNeg.DecRef()
		return accPos, nil
	}
	for i := 1; i < len(children); i++ {
		cp, err := nnf(ctx, children[i])
		if err != nil {
			accPos.DecRef()
			accNeg.DecRef()
			return nil, err
		}
		cn, err := nnfNeg(ctx, children[i])
		if err != nil {
			accPos.DecRef()
			accNeg.DecRef()
			cp.DecRef()
			return nil, err
		}
		last := i == len(children)-1
		if last {
			return xorCombine(ctx, accPos, accNeg, cp, cn, neg)
		}
		accPos2, accNeg2 := accPos.IncRef(), accNeg.IncRef()
		cp2, cn2 := cp.IncRef(), cn.IncRef()
		newPos, err := xorCombine(ctx, accPos, accNeg, cp, cn, false)
		if err != nil {
			accPos2.DecRef()
			accNeg2.DecRef()
			cp2.DecRef()
			cn2.DecRef()
			return nil, err
		}
		newNeg, err := xorCombine(ctx, accPos2, accNeg2, cp2, cn2, true)
		if err != nil {
			newPos.DecRef()
			return nil, err
		}
		accPos, accNeg = newPos, newNeg
	}
	panic("unreachable")
}

// nnfEqPairwise reduces an n-ary EQ into the conjunction of its adjacent
// pairwise equalities (EQ(x1..xn) == AND_i EQ(x_i, x_i+1)), each built as
// a negated XOR via xorCombine, then balances the conjunction/disjunction
// with binarySplit. Negating the whole EQ De Morgans into a disjunction
// of the pairwise XORs instead.
func nnfEqPairwise(ctx *Context, children []*Node, neg bool) (*Node, error) {
	n := len(children)
	if n <= 1 {
		if neg {
			return constZero.IncRef(), nil
		}
		return constOne.IncRef(), nil
	}

	pos := make([]*Node, n)
	negs := make([]*Node, n)
	for i, c := range children {
		p, err := nnf(ctx, c)
		if err != nil {
			for j := 0; j < i; j++ {
				pos[j].DecRef()
				negs[j].DecRef()
			}
			return nil, err
		}
		nn, err := nnfNeg(ctx, c)
		if err != nil {
			p.DecRef()
			for j := 0; j < i; j++ {
				pos[j].DecRef()
				negs[j].DecRef()
			}
			return nil, err
		}
		pos[i] = p
		negs[i] = nn
	}

	terms := make([]*Node, 0, n-1)
	for i := 0; i < n-1; i++ {
		if i+1 < n-1 {
			pos[i+1] = pos[i+1].IncRef()
			negs[i+1] = negs[i+1].IncRef()
		}
		term, err := xorCombine(ctx, pos[i], negs[i], pos[i+1], negs[i+1], !neg)
		if err != nil {
			for _, t := range terms {
				t.DecRef()
			}
			for j := i + 2; j < n; j++ {
				pos[j].DecRef()
				negs[j].DecRef()
			}
			return nil, err
		}
		terms = append(terms, term)
	}
	kind := And
	if neg {
		kind = Or
	}
	return binarySplit(ctx, kind, terms)
}
