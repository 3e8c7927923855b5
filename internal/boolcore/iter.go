package boolcore

type iterFrame struct {
	node *Node
	idx  int
}

// Iterator is a single-shot, depth-first post-order traversal: every
// sub-node is yielded before the node that contains it. It borrows the
// tree it walks and never increments reference counts on yielded nodes
// (spec.md §4.2). Not restartable.
type Iterator struct {
	stack []iterFrame
}

// NewIterator creates an iterator rooted at ex.
func NewIterator(ex *Node) *Iterator {
	return &Iterator{stack: []iterFrame{{node: ex}}}
}

// Next returns the next node in post-order, or (nil, false) once
// traversal is exhausted.
func (it *Iterator) Next() (*Node, bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.idx < len(top.node.children) {
			child := top.node.children[top.idx]
			top.idx++
			it.stack = append(it.stack, iterFrame{node: child})
			continue
		}
		n := top.node
		it.stack = it.stack[:len(it.stack)-1]
		return n, true
	}
	return nil, false
}
