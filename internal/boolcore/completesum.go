package boolcore

// CompleteSum computes e's Blake canonical form: the disjunction of all
// of its prime implicants (spec.md §4.11). It picks a support variable,
// recurses on both of its Shannon cofactors via Restrict, and combines
// them with their consensus term (the classical Quine-McCluskey
// consensus step), then converts the combination to DNF and drops any
// clause subsumed by a smaller one. CompleteSum borrows e.
func CompleteSum(ctx *Context, e *Node) (*Node, error) {
	sup := Support(e)
	if sup.Len() == 0 {
		sup.Clear()
		return Simplify(ctx, e)
	}

	var pick *Node
	sup.Each(func(v *Node) {
		if pick == nil || v.litID < pick.litID {
			pick = v
		}
	})
	pick.IncRef()
	sup.Clear()

	one := NewDict()
	one.Insert(pick.IncRef(), constOne.IncRef())
	f1, err := Restrict(ctx, e, one)
	one.Clear()
	if err != nil {
		pick.DecRef()
		return nil, err
	}

	zero := NewDict()
	zero.Insert(pick.IncRef(), constZero.IncRef())
	f0, err := Restrict(ctx, e, zero)
	zero.Clear()
	if err != nil {
		pick.DecRef()
		f1.DecRef()
		return nil, err
	}

	cs1, err := CompleteSum(ctx, f1)
	f1.DecRef()
	if err != nil {
		pick.DecRef()
		f0.DecRef()
		return nil, err
	}

	cs0, err := CompleteSum(ctx, f0)
	f0.DecRef()
	if err != nil {
		pick.DecRef()
		cs1.DecRef()
		return nil, err
	}

	cs1b := cs1.IncRef()
	cs0b := cs0.IncRef()
	negPick, err := ctx.Not(pick.IncRef())
	if err != nil {
		pick.DecRef()
		cs1.DecRef()
		cs0.DecRef()
		cs1b.DecRef()
		cs0b.DecRef()
		return nil, err
	}

	term1, err := ctx.And(pick, cs1)
	if err != nil {
		negPick.DecRef()
		cs0.DecRef()
		cs1b.DecRef()
		cs0b.DecRef()
		return nil, err
	}
	term0, err := ctx.And(negPick, cs0)
	if err != nil {
		term1.DecRef()
		cs1b.DecRef()
		cs0b.DecRef()
		return nil, err
	}
	consensus, err := ctx.And(cs1b, cs0b)
	if err != nil {
		term1.DecRef()
		term0.DecRef()
		return nil, err
	}

	result, err := ctx.Or(term1, term0, consensus)
	if err != nil {
		return nil, err
	}
	simplified, err := ToDNF(ctx, result)
	result.DecRef()
	if err != nil {
		return nil, err
	}
	absorbed, err := absorb(ctx, simplified, Or, And)
	simplified.DecRef()
	return absorbed, err
}
