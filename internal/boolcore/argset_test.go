package boolcore

import "testing"

func TestOrAndArgSetAbsorbsIdentityAndDeduplicates(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	b := lit(ctx, 2)

	as := NewOrAndArgSet(Or)
	as.Insert(constZero.IncRef()) // identity for OR, dropped
	as.Insert(a.IncRef())
	as.Insert(a.IncRef()) // duplicate, collapses to one
	as.Insert(b.IncRef())

	if as.Collapsed() {
		t.Fatalf("Collapsed() = true, want false")
	}
	if as.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (a, b)", as.Len())
	}
	result, err := as.Build(ctx)
	result = mustBuild(t, result, err)
	defer result.DecRef()
	if result.Kind() != Or || len(result.Children()) != 2 {
		t.Fatalf("Build() = %s, want OR(a,b)", describe(result))
	}
}

func TestOrAndArgSetDominatorCollapses(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)

	as := NewOrAndArgSet(Or)
	as.Insert(a.IncRef())
	as.Insert(constOne.IncRef()) // dominator for OR
	if !as.Collapsed() {
		t.Fatalf("Collapsed() = false, want true after inserting the OR dominator")
	}
	result, err := as.Build(ctx)
	result = mustBuild(t, result, err)
	if result != constOne {
		t.Fatalf("Build() = %s, want ONE", describe(result))
	}
}

func TestOrAndArgSetComplementaryPairDominates(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	na, err := ctx.Not(a.IncRef())
	na = mustBuild(t, na, err)

	as := NewOrAndArgSet(Or)
	as.Insert(a.IncRef())
	as.Insert(na)
	if !as.Collapsed() {
		t.Fatalf("OR(a, !a) should collapse to the dominator ONE")
	}
	result, err := as.Build(ctx)
	result = mustBuild(t, result, err)
	if result != constOne {
		t.Fatalf("Build() = %s, want ONE", describe(result))
	}
}

func TestOrAndArgSetFlattensSameKindChild(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	b := lit(ctx, 2)
	c := lit(ctx, 3)
	inner, err := ctx.build("or", Or, []*Node{a, b})
	inner = mustBuild(t, inner, err)

	as := NewOrAndArgSet(Or)
	as.Insert(inner)
	as.Insert(c.IncRef())
	if as.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (flattened a, b, c)", as.Len())
	}
	result, err := as.Build(ctx)
	result.DecRef()
	_ = err
}

func TestXorArgSetParityAndCancellation(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)

	as := NewXorArgSet()
	as.Insert(a.IncRef())
	as.Insert(a.IncRef()) // a ^ a = 0, cancels
	if as.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after self-cancellation", as.Len())
	}
	result, err := as.Build(ctx)
	result = mustBuild(t, result, err)
	if result != constZero {
		t.Fatalf("Build() = %s, want ZERO", describe(result))
	}
}

func TestXorArgSetOneTogglesParity(t *testing.T) {
	ctx := NewContext()
	as := NewXorArgSet()
	as.Insert(constOne.IncRef())
	if !as.Parity() {
		t.Fatalf("Parity() = false after inserting ONE, want true")
	}
	as.Insert(constZero.IncRef()) // identity, no effect
	if !as.Parity() {
		t.Fatalf("Parity() changed after inserting ZERO")
	}
	result, err := as.Build(ctx)
	result = mustBuild(t, result, err)
	if result != constOne {
		t.Fatalf("Build() = %s, want ONE", describe(result))
	}
}

func TestXorArgSetComplementaryPairTogglesParityAndCancels(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	na, err := ctx.Not(a.IncRef())
	na = mustBuild(t, na, err)

	as := NewXorArgSet()
	as.Insert(a.IncRef())
	as.Insert(na) // a ^ !a = 1
	if as.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 (a,!a cancel as operands)", as.Len())
	}
	if !as.Parity() {
		t.Fatalf("Parity() = false, want true (a ^ !a = 1)")
	}
	result, err := as.Build(ctx)
	result = mustBuild(t, result, err)
	if result != constOne {
		t.Fatalf("Build() = %s, want ONE", describe(result))
	}
}

func TestEqArgSetBothConstantsCollapseToZero(t *testing.T) {
	ctx := NewContext()
	as := NewEqArgSet()
	as.Insert(constZero.IncRef())
	as.Insert(constOne.IncRef())
	if !as.Collapsed() {
		t.Fatalf("Collapsed() = false, want true (eq(0,1) is unsatisfiable)")
	}
	result, err := as.Build(ctx)
	result = mustBuild(t, result, err)
	if result != constZero {
		t.Fatalf("Build() = %s, want ZERO", describe(result))
	}
}

func TestEqArgSetComplementaryLiteralsCollapse(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	na, err := ctx.Not(a.IncRef())
	na = mustBuild(t, na, err)

	as := NewEqArgSet()
	as.Insert(a.IncRef())
	as.Insert(na)
	if !as.Collapsed() {
		t.Fatalf("eq(a, !a) should collapse to ZERO")
	}
}

func TestEqArgSetDuplicateOperandIsRedundantNotCollapsing(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	as := NewEqArgSet()
	as.Insert(a.IncRef())
	as.Insert(a.IncRef())
	if as.Collapsed() {
		t.Fatalf("eq(a, a) must not collapse")
	}
	if as.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (duplicate is redundant)", as.Len())
	}
	result, err := as.Build(ctx)
	result = mustBuild(t, result, err)
	if result != constOne {
		t.Fatalf("Build() = %s, want ONE (eq(a) is trivially true)", describe(result))
	}
}
