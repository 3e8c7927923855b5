package boolcore

import (
	"errors"
	"testing"
)

func TestContextWithBudgetExceeded(t *testing.T) {
	ctx := NewContextWithBudget(1)
	a := lit(ctx, 1)
	b := lit(ctx, 2)
	c := lit(ctx, 3)

	first, err := ctx.Or(a, b)
	first = mustBuild(t, first, err)
	defer first.DecRef()

	_, err = ctx.Or(first.IncRef(), c)
	if err == nil {
		t.Fatalf("expected ErrCapacityExceeded once the budget is exhausted")
	}
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("errors.Is(err, ErrCapacityExceeded) = false for err %v", err)
	}
}

func TestContextUnlimitedByDefault(t *testing.T) {
	ctx := NewContext()
	if ctx.MaxNodes != 0 {
		t.Fatalf("NewContext().MaxNodes = %d, want 0 (unlimited)", ctx.MaxNodes)
	}
}

func TestCheckSamePoolRejectsForeignLiteral(t *testing.T) {
	ctx1 := NewContext()
	ctx2 := NewContext()
	a := lit(ctx1, 1)
	b := lit(ctx2, 2)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a ContractViolation panic mixing literals across pools")
		}
		if _, ok := r.(*ContractViolation); !ok {
			t.Fatalf("panic value = %#v, want *ContractViolation", r)
		}
		a.DecRef()
		b.DecRef()
	}()
	_, _ = ctx1.Or(a, b)
}

func TestContextWithNonPositiveBudgetIsUnlimited(t *testing.T) {
	ctx := NewContextWithBudget(0) // unlimited by convention (<=0)
	a := lit(ctx, 1)
	b := lit(ctx, 2)
	n, err := ctx.Or(a, b)
	n = mustBuild(t, n, err)
	n.DecRef()
}
