package boolcore

import "golang.org/x/exp/slices"

// ToDNF rewrites e into disjunctive normal form: an OR of AND-clauses,
// each an AND of literals (spec.md §4.8). It normalizes to NNF first,
// distributes AND over OR with CartesianProduct, re-simplifies, and
// finally drops clauses subsumed by a smaller one via absorb. ToDNF
// borrows e.
func ToDNF(ctx *Context, e *Node) (*Node, error) {
	nnfForm, err := ToNNF(ctx, e)
	if err != nil {
		return nil, err
	}
	raw, err := distribute(ctx, nnfForm, And, Or)
	nnfForm.DecRef()
	if err != nil {
		return nil, err
	}
	simplified, err := Simplify(ctx, raw)
	raw.DecRef()
	if err != nil {
		return nil, err
	}
	result, err := absorb(ctx, simplified, Or, And)
	simplified.DecRef()
	return result, err
}

// ToCNF rewrites e into conjunctive normal form: an AND of OR-clauses
// (spec.md §4.8). Symmetric to ToDNF with OR and AND swapped.
func ToCNF(ctx *Context, e *Node) (*Node, error) {
	nnfForm, err := ToNNF(ctx, e)
	if err != nil {
		return nil, err
	}
	raw, err := distribute(ctx, nnfForm, Or, And)
	nnfForm.DecRef()
	if err != nil {
		return nil, err
	}
	simplified, err := Simplify(ctx, raw)
	raw.DecRef()
	if err != nil {
		return nil, err
	}
	result, err := absorb(ctx, simplified, And, Or)
	simplified.DecRef()
	return result, err
}

// distribute pushes spreadKind up through joinKind so that no joinKind
// node keeps a spreadKind descendant: joinKind(a, spreadKind(b,c), ...)
// becomes spreadKind(joinKind(a,b,...), joinKind(a,c,...)). e must
// already be in NNF (only OR/AND/NOT-of-literal remain). It borrows e.
func distribute(ctx *Context, e *Node, joinKind, spreadKind Kind) (*Node, error) {
	switch e.kind {
	case joinKind:
		factors := make([][]*Node, len(e.children))
		for i, c := range e.children {
			dc, err := distribute(ctx, c, joinKind, spreadKind)
			if err != nil {
				for j := 0; j < i; j++ {
					for _, t := range factors[j] {
						t.DecRef()
					}
				}
				return nil, err
			}
			factors[i] = distributionTerms(dc, spreadKind)
		}
		combos, err := CartesianProduct(ctx, joinKind, factors)
		if err != nil {
			return nil, err
		}
		return ctx.orAnd(spreadKind, combos)

	case spreadKind:
		terms := make([]*Node, 0, len(e.children))
		for _, c := range e.children {
			dc, err := distribute(ctx, c, joinKind, spreadKind)
			if err != nil {
				for _, t := range terms {
					t.DecRef()
				}
				return nil, err
			}
			terms = append(terms, distributionTerms(dc, spreadKind)...)
		}
		return ctx.orAnd(spreadKind, terms)

	default: // literal, NOT(literal), or a constant
		return e.IncRef(), nil
	}
}

// distributionTerms detaches dc's children if dc is itself a spreadKind
// node (so its alternatives splice into the surrounding list), or wraps
// dc as the sole alternative otherwise. It consumes dc.
func distributionTerms(dc *Node, spreadKind Kind) []*Node {
	if dc.kind == spreadKind {
		return detachChildren(dc)
	}
	return []*Node{dc}
}

// detachChildren returns dc's children as freshly owned references and
// releases dc itself, without recursively releasing those children (it
// pre-increments each child's count to cancel out the decrement dc's own
// release would otherwise apply to them).
func detachChildren(dc *Node) []*Node {
	children := make([]*Node, len(dc.children))
	copy(children, dc.children)
	for _, c := range children {
		c.IncRef()
	}
	dc.DecRef()
	return children
}

// signedID returns a literal's signed variable id, or the negation of
// one for NOT(literal). Panics on anything else.
func signedID(n *Node) int32 {
	if n.kind.IsLiteral() {
		return n.litID
	}
	if n.kind == Not && n.children[0].kind.IsLiteral() {
		return -n.children[0].litID
	}
	violate("signedID", "expected a literal or its negation, got kind %s", n.kind)
	return 0
}

// absorb drops every clause in root (an outerKind of innerKind-of-literal
// clauses) that is a superset, by literal id, of another surviving
// clause: the smaller clause already dominates it (spec.md §4.8). Each
// clause's literal ids are sorted once so survivorship is decided by a
// lexicographic merge-compare instead of a hash lookup. Ties keep the
// earliest clause. It borrows root.
func absorb(ctx *Context, root *Node, outerKind, innerKind Kind) (*Node, error) {
	if root.kind != outerKind {
		return root.IncRef(), nil
	}
	clauses := root.children
	sets := make([][]int32, len(clauses))
	for i, c := range clauses {
		sets[i] = literalSetOf(c, innerKind)
	}
	keep := make([]bool, len(clauses))
	for i := range clauses {
		keep[i] = true
	}
	for i := range clauses {
		if !keep[i] {
			continue
		}
		for j := range clauses {
			if i == j || !keep[j] {
				continue
			}
			iSubJ := isSortedSubset(sets[i], sets[j])
			jSubI := isSortedSubset(sets[j], sets[i])
			switch {
			case iSubJ && !jSubI:
				keep[j] = false
			case iSubJ && jSubI && i < j:
				keep[j] = false
			}
		}
	}
	survivors := make([]*Node, 0, len(clauses))
	for i, c := range clauses {
		if keep[i] {
			survivors = append(survivors, c.IncRef())
		}
	}
	return ctx.orAnd(outerKind, survivors)
}

// literalSetOf returns clause c's member literal ids, sorted ascending.
func literalSetOf(c *Node, innerKind Kind) []int32 {
	var ids []int32
	if c.kind == innerKind {
		ids = make([]int32, len(c.children))
		for i, lit := range c.children {
			ids[i] = signedID(lit)
		}
	} else {
		ids = []int32{signedID(c)}
	}
	slices.Sort(ids)
	return ids
}

// isSortedSubset reports whether every id in a (sorted ascending) also
// occurs in b (sorted ascending), via a linear lexicographic merge.
func isSortedSubset(a, b []int32) bool {
	j := 0
	for _, id := range a {
		for j < len(b) && b[j] < id {
			j++
		}
		if j >= len(b) || b[j] != id {
			return false
		}
	}
	return true
}

// IsDNF reports whether e is already shaped as an OR of AND-of-literal
// clauses (including the degenerate single-clause and single-literal
// cases).
func IsDNF(e *Node) bool { return isNormalFormShape(e, Or, And) }

// IsCNF reports whether e is already shaped as an AND of OR-of-literal
// clauses.
func IsCNF(e *Node) bool { return isNormalFormShape(e, And, Or) }

func isNormalFormShape(e *Node, outerKind, innerKind Kind) bool {
	if e.kind.IsAtom() {
		return true
	}
	if e.kind == innerKind {
		return isClauseOfLiterals(e)
	}
	if e.kind != outerKind {
		return false
	}
	for _, c := range e.children {
		if c.kind.IsLiteral() {
			continue
		}
		if c.kind == innerKind && isClauseOfLiterals(c) {
			continue
		}
		return false
	}
	return true
}

func isClauseOfLiterals(clause *Node) bool {
	for _, c := range clause.children {
		if !c.kind.IsLiteral() {
			return false
		}
	}
	return true
}
