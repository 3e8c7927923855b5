package boolcore

const (
	flagSimple uint8 = 1 << 0
	flagNNF    uint8 = 1 << 1
)

// Node is an expression: a tagged variant identified by Kind. Constants
// and literals are unique per (pool, id); operator nodes are not uniqued.
// Ref-counting is manual and single-threaded: every constructor returns a
// handle with an already-incremented count, and every recursive pass
// consumes its inputs by borrowing and returns a new strong reference.
type Node struct {
	kind     Kind
	flags    uint8
	refCount int32
	seq      uint64 // arena-index surrogate: stable identity hash for Dict/Set

	truthMask uint8 // constants only: bit0 = can be 0, bit1 = can be 1

	litID int32        // literals only: signed id, positive for Var
	pool  *LiteralPool // literals only: owning pool

	children []*Node // operators only: owned, ref-counted
}

// nextSeq hands out the arena-index surrogate used to hash a node by
// identity in Dict/Set (spec.md §9: "the pointer-identity hash... maps to
// hashing the arena index"). The engine is single-threaded, so a plain
// counter suffices.
var nodeSeqCounter uint64 = 4 // 1..4 are reserved for the constant singletons

func nextSeq() uint64 {
	nodeSeqCounter++
	return nodeSeqCounter
}

// Kind returns the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// IsSimple reports whether the SIMPLE flag is set (spec.md §3 invariant 4).
func (n *Node) IsSimple() bool { return n.flags&flagSimple != 0 }

// IsNNF reports whether the NNF flag is set (spec.md §3 invariant 5).
func (n *Node) IsNNF() bool { return n.flags&flagNNF != 0 }

// Children returns the operator's owned child array. Callers must not
// retain or mutate the returned slice beyond a borrow.
func (n *Node) Children() []*Node { return n.children }

// LitID returns the literal's signed variable id. Panics if n is not a
// literal.
func (n *Node) LitID() int32 {
	if !n.kind.IsLiteral() {
		violate("LitID", "called on non-literal kind %s", n.kind)
	}
	return n.litID
}

// TruthMask returns the constant's possible-truth-value bitmask. Panics
// if n is not a constant.
func (n *Node) TruthMask() uint8 {
	if !n.kind.IsConstant() {
		violate("TruthMask", "called on non-constant kind %s", n.kind)
	}
	return n.truthMask
}

// RefCount returns the node's current strong-reference count. Constants
// report a sentinel of -1: their count is never tracked since it can
// never reach zero.
func (n *Node) RefCount() int32 {
	if n.kind.IsConstant() {
		return -1
	}
	return n.refCount
}

// IncRef increments n's reference count and returns n, for chaining at
// call sites that re-share an existing handle.
func (n *Node) IncRef() *Node {
	if n.kind.IsConstant() {
		return n
	}
	if n.kind.IsLiteral() {
		n.refCount++
		return n
	}
	n.refCount++
	return n
}

// DecRef decrements n's reference count. When an operator's count drops
// to zero, its children are released in turn and its child array is
// cleared. Constants are never released. Releasing a literal or operator
// whose count is already zero is a contract violation; a literal whose
// count reaches zero is left in its pool with no release work.
func (n *Node) DecRef() {
	if n.kind.IsConstant() {
		return
	}
	if n.refCount <= 0 {
		violate("DecRef", "ref count already %d for kind %s", n.refCount, n.kind)
	}
	n.refCount--
	if n.kind.IsLiteral() {
		// The pool holds one permanent strong reference (spec.md §3): a
		// literal's count never needs to trigger release work.
		return
	}
	if n.refCount == 0 {
		for _, c := range n.children {
			c.DecRef()
		}
		n.children = nil
	}
}

// newOperator allocates a fresh operator node with ref count 1, owning xs
// (callers transfer their references into the node; newOperator does not
// IncRef the children itself — constructors that build xs as a new array
// already hold the only references to each element).
func newOperator(kind Kind, xs []*Node) *Node {
	return &Node{kind: kind, refCount: 1, children: xs, seq: nextSeq()}
}

// Depth is 0 for an atom, else 1 + the maximum child depth.
func Depth(e *Node) int {
	if e.kind.IsAtom() {
		return 0
	}
	max := 0
	for _, c := range e.children {
		if d := Depth(c); d > max {
			max = d
		}
	}
	return 1 + max
}

// Size is 1 for an atom, else 1 + the sum of child sizes.
func Size(e *Node) int {
	if e.kind.IsAtom() {
		return 1
	}
	total := 1
	for _, c := range e.children {
		total += Size(c)
	}
	return total
}

// AtomCount is the number of atom (constant or literal) sub-nodes,
// counted with multiplicity.
func AtomCount(e *Node) int {
	if e.kind.IsAtom() {
		return 1
	}
	total := 0
	for _, c := range e.children {
		total += AtomCount(c)
	}
	return total
}

// OpCount is the number of operator sub-nodes, counted with multiplicity.
func OpCount(e *Node) int {
	if e.kind.IsAtom() {
		return 0
	}
	total := 1
	for _, c := range e.children {
		total += OpCount(c)
	}
	return total
}

// IsClause reports whether e is an operator all of whose children are
// literals (spec.md §4.1).
func IsClause(e *Node) bool {
	if !e.kind.IsOperator() {
		return false
	}
	for _, c := range e.children {
		if !c.kind.IsLiteral() {
			return false
		}
	}
	return true
}

// markSimpleRecursive sets the SIMPLE flag on e and every descendant.
func markSimpleRecursive(e *Node) {
	if e.flags&flagSimple != 0 {
		return
	}
	e.flags |= flagSimple
	for _, c := range e.children {
		markSimpleRecursive(c)
	}
}

// markNNFRecursive sets the NNF flag on e and every descendant.
func markNNFRecursive(e *Node) {
	if e.flags&flagNNF != 0 {
		return
	}
	e.flags |= flagNNF
	for _, c := range e.children {
		markNNFRecursive(c)
	}
}
