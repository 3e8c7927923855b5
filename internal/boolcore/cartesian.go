package boolcore

// CartesianProduct combines factors — each a list of alternative
// sub-expressions for one operand — into the flat list of every way of
// picking one alternative from each factor and joining the picks with
// combineKind's 2-ary operator (spec.md §4.9). It is the distribution
// step shared by ToDNF (combineKind = And, distributing AND over OR) and
// ToCNF (combineKind = Or, distributing OR over AND).
//
// With zero factors the product is the singleton array holding
// combineKind's identity constant (the empty join). Each product is built
// left to right on top of that identity, so a single factor {x, y} under
// And yields [and(ONE, x), and(ONE, y)], not the bare alternatives.
// CartesianProduct consumes every node reachable from factors.
func CartesianProduct(ctx *Context, combineKind Kind, factors [][]*Node) ([]*Node, error) {
	if len(factors) == 0 {
		return []*Node{identityConst(combineKind).IncRef()}, nil
	}
	prev, err := CartesianProduct(ctx, combineKind, factors[:len(factors)-1])
	if err != nil {
		for _, x := range factors[len(factors)-1] {
			x.DecRef()
		}
		return nil, err
	}
	last := factors[len(factors)-1]

	if len(prev) == 0 || len(last) == 0 {
		for _, p := range prev {
			p.DecRef()
		}
		for _, x := range last {
			x.DecRef()
		}
		return []*Node{}, nil
	}

	for _, p := range prev {
		for k := 1; k < len(last); k++ {
			p.IncRef()
		}
	}
	for _, x := range last {
		for k := 1; k < len(prev); k++ {
			x.IncRef()
		}
	}

	out := make([]*Node, 0, len(prev)*len(last))
	for _, p := range prev {
		for _, x := range last {
			combo, err := ctx.build(combineKind.String()+"-cartesian", combineKind, []*Node{p, x})
			if err != nil {
				for _, o := range out {
					o.DecRef()
				}
				return nil, err
			}
			out = append(out, combo)
		}
	}
	return out, nil
}
