package boolcore

// Support returns the set of variables e depends on, as their positive
// Var literal nodes (supplementing spec.md §4 with a query the original
// distillation left out: original_source/ has no files for this pull, so
// this is grounded directly on the Iterator's post-order walk of §4.2).
// Support borrows e; the returned Set is newly owned by the caller.
func Support(e *Node) *Set {
	vars := NewSet()
	it := NewIterator(e)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		if !n.kind.IsLiteral() {
			continue
		}
		v := n.pool.get(abs32(n.litID))
		vars.Insert(v.IncRef())
	}
	return vars
}

// Equivalent reports whether a and b compute the same function: they are
// equivalent exactly when the complete sum of XOR(a, b) is ZERO
// (supplementing spec.md §4 the same way Support does). Equivalent
// borrows both a and b.
func Equivalent(ctx *Context, a, b *Node) (bool, error) {
	x, err := ctx.Xor(a.IncRef(), b.IncRef())
	if err != nil {
		return false, err
	}
	cs, err := CompleteSum(ctx, x)
	x.DecRef()
	if err != nil {
		return false, err
	}
	eq := cs == constZero
	cs.DecRef()
	return eq, nil
}
