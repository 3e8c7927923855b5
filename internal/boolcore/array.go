package boolcore

// Array is an owned, ordered sequence of expression handles. Appending
// transfers ownership of the element into the array; Release drops the
// array's references to every element. Equality is element-wise by
// handle identity.
type Array struct {
	items []*Node
}

// NewArray wraps xs (already-owned handles) into an Array.
func NewArray(xs ...*Node) *Array {
	items := make([]*Node, len(xs))
	copy(items, xs)
	return &Array{items: items}
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.items) }

// At returns the element at i. Panics if i is out of range.
func (a *Array) At(i int) *Node {
	if i < 0 || i >= len(a.items) {
		violate("Array.At", "index %d out of range [0,%d)", i, len(a.items))
	}
	return a.items[i]
}

// Append transfers ownership of x into the array.
func (a *Array) Append(x *Node) { a.items = append(a.items, x) }

// Items returns the underlying slice. Callers must treat it as a borrow.
func (a *Array) Items() []*Node { return a.items }

// Release drops the array's reference to every element.
func (a *Array) Release() {
	for _, x := range a.items {
		x.DecRef()
	}
	a.items = nil
}

// Equal reports whether a and b hold the same elements, by handle
// identity, in the same order.
func (a *Array) Equal(b *Array) bool {
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if a.items[i] != b.items[i] {
			return false
		}
	}
	return true
}

// TwoDArray is an owned sequence of Arrays, used by the cartesian product
// machinery of spec.md §4.9.
type TwoDArray struct {
	rows []*Array
}

// NewTwoDArray wraps rows (already-owned Arrays).
func NewTwoDArray(rows ...*Array) *TwoDArray {
	r := make([]*Array, len(rows))
	copy(r, rows)
	return &TwoDArray{rows: r}
}

// Len returns the number of rows.
func (t *TwoDArray) Len() int { return len(t.rows) }

// Row returns the Array at index i. Panics if i is out of range.
func (t *TwoDArray) Row(i int) *Array {
	if i < 0 || i >= len(t.rows) {
		violate("TwoDArray.Row", "index %d out of range [0,%d)", i, len(t.rows))
	}
	return t.rows[i]
}

// Append adds a row, transferring ownership of it.
func (t *TwoDArray) Append(row *Array) { t.rows = append(t.rows, row) }

// Release releases every row (and, through it, every element).
func (t *TwoDArray) Release() {
	for _, r := range t.rows {
		r.Release()
	}
	t.rows = nil
}
