package boolcore

import "testing"

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		k                              Kind
		constant, literal, operator, atom, commutative bool
	}{
		{Illogical, true, false, false, true, false},
		{Zero, true, false, false, true, false},
		{One, true, false, false, true, false},
		{Logical, true, false, false, true, false},
		{Var, false, true, false, true, false},
		{Comp, false, true, false, true, false},
		{Or, false, false, true, false, true},
		{And, false, false, true, false, true},
		{Xor, false, false, true, false, true},
		{Eq, false, false, true, false, true},
		{Not, false, false, true, false, false},
		{Impl, false, false, true, false, false},
		{Ite, false, false, true, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.k.String(), func(t *testing.T) {
			if got := tc.k.IsConstant(); got != tc.constant {
				t.Errorf("IsConstant() = %v, want %v", got, tc.constant)
			}
			if got := tc.k.IsLiteral(); got != tc.literal {
				t.Errorf("IsLiteral() = %v, want %v", got, tc.literal)
			}
			if got := tc.k.IsOperator(); got != tc.operator {
				t.Errorf("IsOperator() = %v, want %v", got, tc.operator)
			}
			if got := tc.k.IsAtom(); got != tc.atom {
				t.Errorf("IsAtom() = %v, want %v", got, tc.atom)
			}
			if got := tc.k.IsCommutative(); got != tc.commutative {
				t.Errorf("IsCommutative() = %v, want %v", got, tc.commutative)
			}
		})
	}
}

func TestIdentityAndDominatorConstants(t *testing.T) {
	if identityFor(Or) != Zero || identityFor(Xor) != Zero || identityFor(And) != One {
		t.Fatalf("identityFor mismatch")
	}
	if dominatorFor(Or) != One || dominatorFor(And) != Zero {
		t.Fatalf("dominatorFor mismatch")
	}
}
