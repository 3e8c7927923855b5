package boolcore

import "testing"

func TestCartesianProductOfOneFactorJoinsIdentityWithEachAlternative(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	b := lit(ctx, 2)

	products, err := CartesianProduct(ctx, And, [][]*Node{{a, b}})
	if err != nil {
		t.Fatalf("CartesianProduct returned error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("len(products) = %d, want 2", len(products))
	}
	for i, alt := range []*Node{a, b} {
		p := products[i]
		if p.Kind() != And || len(p.Children()) != 2 || p.Children()[0] != constOne || p.Children()[1] != alt {
			t.Fatalf("single-factor product %d = %s, want the 2-ary AND of ONE and the alternative", i, describe(p))
		}
	}
	for _, p := range products {
		p.DecRef()
	}
}

func TestCartesianProductCombinesEveryPick(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	b := lit(ctx, 2)
	c := lit(ctx, 3)
	d := lit(ctx, 4)

	products, err := CartesianProduct(ctx, And, [][]*Node{{a, b}, {c, d}})
	if err != nil {
		t.Fatalf("CartesianProduct returned error: %v", err)
	}
	if len(products) != 4 {
		t.Fatalf("len(products) = %d, want 4 (2x2)", len(products))
	}
	for _, p := range products {
		if p.Kind() != And || len(p.Children()) != 2 {
			t.Errorf("product %s is not a 2-ary AND", describe(p))
		}
		p.DecRef()
	}
}

func TestCartesianProductWithZeroFactorsYieldsIdentitySingleton(t *testing.T) {
	ctx := NewContext()
	products, err := CartesianProduct(ctx, And, nil)
	if err != nil {
		t.Fatalf("CartesianProduct returned error: %v", err)
	}
	if len(products) != 1 || products[0] != constOne {
		t.Fatalf("CartesianProduct(And, []) = %v, want [ONE]", products)
	}
	products[0].DecRef()
}

func TestCartesianProductWithEmptyFactorYieldsEmptyProduct(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	products, err := CartesianProduct(ctx, Or, [][]*Node{{a}, {}})
	if err != nil {
		t.Fatalf("CartesianProduct returned error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("len(products) = %d, want 0 when any factor is empty", len(products))
	}
}
