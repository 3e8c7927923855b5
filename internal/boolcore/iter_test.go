package boolcore

import "testing"

func TestIteratorVisitsPostOrder(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	b := lit(ctx, 2)
	and, err := ctx.build("and", And, []*Node{a, b})
	and = mustBuild(t, and, err)
	defer and.DecRef()

	it := NewIterator(and)
	var seen []*Node
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		seen = append(seen, n)
	}
	if len(seen) != 3 {
		t.Fatalf("visited %d nodes, want 3 (a, b, and)", len(seen))
	}
	if seen[0] != a || seen[1] != b {
		t.Fatalf("children must be visited before their parent, got %s then %s", describe(seen[0]), describe(seen[1]))
	}
	if seen[2] != and {
		t.Fatalf("last node visited must be the root, got %s", describe(seen[2]))
	}
}

func TestIteratorIsSingleShot(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	defer a.DecRef()

	it := NewIterator(a)
	_, ok := it.Next()
	if !ok {
		t.Fatalf("first Next() = false, want true")
	}
	_, ok = it.Next()
	if ok {
		t.Fatalf("second Next() = true, want false (exhausted)")
	}
}

func TestIteratorOnLeafYieldsOnlyItself(t *testing.T) {
	result := constOne
	it := NewIterator(result)
	n, ok := it.Next()
	if !ok || n != constOne {
		t.Fatalf("Next() = (%v, %v), want (ONE, true)", n, ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("expected exhaustion after the single constant node")
	}
}
