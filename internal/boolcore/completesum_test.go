package boolcore

import "testing"

func TestCompleteSumOnConstantIsBaseCase(t *testing.T) {
	ctx := NewContext()
	result, err := CompleteSum(ctx, constOne.IncRef())
	result = mustBuild(t, result, err)
	defer result.DecRef()
	if result != constOne {
		t.Fatalf("CompleteSum(1) = %s, want ONE", describe(result))
	}
}

func TestCompleteSumOnSingleLiteralIsItself(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	result, err := CompleteSum(ctx, a.IncRef())
	result = mustBuild(t, result, err)
	defer func() { a.DecRef(); result.DecRef() }()
	if result != a {
		t.Fatalf("CompleteSum(a) = %s, want a", describe(result))
	}
}

func TestCompleteSumOfOrIsItsOwnPrimeImplicants(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	b := lit(ctx, 2)
	raw, err := ctx.build("or", Or, []*Node{a, b})
	raw = mustBuild(t, raw, err)

	result, err := CompleteSum(ctx, raw.IncRef())
	result = mustBuild(t, result, err)
	defer func() { raw.DecRef(); result.DecRef() }()

	eq, err := Equivalent(ctx, raw, result)
	if err != nil {
		t.Fatalf("Equivalent returned error: %v", err)
	}
	if !eq {
		t.Fatalf("CompleteSum(or(a,b)) = %s is not equivalent to or(a,b)", describe(result))
	}
}

func TestCompleteSumAddsConsensusTerm(t *testing.T) {
	// or(and(a,b), and(!a,c)) has consensus term and(b,c); the complete
	// sum is the disjunction of all three prime implicants.
	ctx := NewContext()
	a := lit(ctx, 1)
	b := lit(ctx, 2)
	c := lit(ctx, 3)
	na, err := ctx.Not(a.IncRef())
	na = mustBuild(t, na, err)

	ab, err := ctx.build("and", And, []*Node{a, b})
	ab = mustBuild(t, ab, err)
	nac, err := ctx.build("and", And, []*Node{na, c})
	nac = mustBuild(t, nac, err)
	raw, err := ctx.build("or", Or, []*Node{ab, nac})
	raw = mustBuild(t, raw, err)

	result, err := CompleteSum(ctx, raw.IncRef())
	result = mustBuild(t, result, err)
	defer func() { raw.DecRef(); result.DecRef() }()

	eq, err := Equivalent(ctx, raw, result)
	if err != nil {
		t.Fatalf("Equivalent returned error: %v", err)
	}
	if !eq {
		t.Fatalf("CompleteSum result is not equivalent to the original expression")
	}
	if !IsDNF(result) {
		t.Fatalf("CompleteSum(%s) = %s, want a DNF shape", describe(raw), describe(result))
	}
}
