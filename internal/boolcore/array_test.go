package boolcore

import "testing"

func TestArrayAppendAtRelease(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	b := lit(ctx, 2)
	arr := NewArray(a)
	arr.Append(b)

	if arr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", arr.Len())
	}
	if arr.At(0) != a || arr.At(1) != b {
		t.Fatalf("At() returned the wrong elements")
	}
	arr.Release()
	if arr.Len() != 0 {
		t.Fatalf("Len() after Release() = %d, want 0", arr.Len())
	}
}

func TestArrayEqual(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	b := lit(ctx, 2)
	x := NewArray(a.IncRef(), b.IncRef())
	y := NewArray(a.IncRef(), b.IncRef())
	z := NewArray(b.IncRef(), a.IncRef())

	if !x.Equal(y) {
		t.Errorf("identical-order arrays should be Equal")
	}
	if x.Equal(z) {
		t.Errorf("reordered arrays should not be Equal")
	}
	x.Release()
	y.Release()
	z.Release()
	a.DecRef()
	b.DecRef()
}

func TestTwoDArrayRowsAndRelease(t *testing.T) {
	ctx := NewContext()
	a := lit(ctx, 1)
	b := lit(ctx, 2)
	row0 := NewArray(a)
	row1 := NewArray(b)
	td := NewTwoDArray(row0, row1)

	if td.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", td.Len())
	}
	if td.Row(0) != row0 || td.Row(1) != row1 {
		t.Fatalf("Row() returned the wrong array")
	}
	td.Release()
}

func TestVectorGrowsOnAt(t *testing.T) {
	v := NewVector[int]()
	if v.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", v.Len())
	}
	*v.At(5) = 42
	if v.Len() != 6 {
		t.Fatalf("Len() after At(5) = %d, want 6", v.Len())
	}
	if v.Get(5) != 42 {
		t.Fatalf("Get(5) = %d, want 42", v.Get(5))
	}
	if v.Get(0) != 0 {
		t.Fatalf("Get(0) = %d, want zero value 0", v.Get(0))
	}
}

func TestVectorGetOutOfRangePanics(t *testing.T) {
	v := NewVector[int]()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Get out of range to panic")
		}
	}()
	v.Get(0)
}
