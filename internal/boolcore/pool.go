package boolcore

// The four constants are process-lifetime singletons: pointer equality
// coincides with semantic equality, and their ref count is never
// tracked (spec.md §3 invariant 3).
var (
	constIllogical = &Node{kind: Illogical, truthMask: 0b00, seq: 1}
	constZero      = &Node{kind: Zero, truthMask: 0b01, seq: 2}
	constOne       = &Node{kind: One, truthMask: 0b10, seq: 3}
	constLogical   = &Node{kind: Logical, truthMask: 0b11, seq: 4}
)

func init() {
	for _, c := range []*Node{constIllogical, constZero, constOne, constLogical} {
		c.flags = flagSimple | flagNNF
	}
}

// literalSlot holds the unique Var/Comp node pair for one variable id.
type literalSlot struct {
	varNode  *Node
	compNode *Node
}

// LiteralPool is a growable, id-indexed vector owning exactly one strong
// reference per live literal node (spec.md §3). A pool is a single
// non-sharable context: literals from two pools must never appear in the
// same tree.
type LiteralPool struct {
	slots *Vector[literalSlot] // indexed by abs(id) - 1
}

// NewLiteralPool creates an empty literal pool.
func NewLiteralPool() *LiteralPool {
	return &LiteralPool{slots: NewVector[literalSlot]()}
}

// get returns the pool's unique literal node for id, creating both the
// variable and its complement on first use. id must be nonzero.
func (p *LiteralPool) get(id int32) *Node {
	if id == 0 {
		violate("LiteralPool.get", "literal id must be nonzero")
	}
	idx := int(abs32(id)) - 1
	slot := p.slots.At(idx)
	if slot.varNode == nil {
		v := abs32(id)
		slot.varNode = &Node{kind: Var, litID: v, pool: p, refCount: 1, flags: flagSimple | flagNNF, seq: nextSeq()}
		slot.compNode = &Node{kind: Comp, litID: -v, pool: p, refCount: 1, flags: flagSimple | flagNNF, seq: nextSeq()}
	}
	if id > 0 {
		return slot.varNode
	}
	return slot.compNode
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// Context pairs a LiteralPool with an optional construction budget. All
// public node constructors and rewrite passes take a *Context so that
// every pass operates on exactly one non-sharable literal-id space, per
// spec.md §5.
type Context struct {
	pool      *LiteralPool
	MaxNodes  int // 0 means unlimited
	nodeCount int
}

// NewContext creates a Context with its own literal pool and no node
// budget.
func NewContext() *Context {
	return &Context{pool: NewLiteralPool()}
}

// NewContextWithBudget creates a Context whose operator construction
// fails with ErrCapacityExceeded once max operator nodes have been built.
// Used to exercise the rollback discipline of spec.md §5/§9; max <= 0
// means unlimited.
func NewContextWithBudget(max int) *Context {
	return &Context{pool: NewLiteralPool(), MaxNodes: max}
}

// Pool returns the context's literal pool.
func (ctx *Context) Pool() *LiteralPool { return ctx.pool }

// alloc reserves budget for one new operator node, or returns
// ErrCapacityExceeded if the budget is exhausted.
func (ctx *Context) alloc(step string) error {
	if ctx.MaxNodes > 0 && ctx.nodeCount >= ctx.MaxNodes {
		return wrapAlloc(step)
	}
	ctx.nodeCount++
	return nil
}

// build constructs an operator node of kind with children xs, charging
// the context's budget. On failure every node in xs is released before
// the error is returned, matching spec.md §9's scoped-acquisition
// rollback discipline.
func (ctx *Context) build(step string, kind Kind, xs []*Node) (*Node, error) {
	if err := ctx.alloc(step); err != nil {
		for _, x := range xs {
			x.DecRef()
		}
		return nil, err
	}
	return newOperator(kind, xs), nil
}

// checkSamePool asserts every literal among xs belongs to ctx's pool.
// Deep children are not walked; this catches the common case of passing
// a literal from a foreign pool directly as an operand (spec.md §7:
// mixed-context literal use is a contract violation).
func (ctx *Context) checkSamePool(op string, xs ...*Node) {
	for _, x := range xs {
		if x == nil {
			violate(op, "nil expression operand")
		}
		if x.kind.IsLiteral() && x.pool != ctx.pool {
			violate(op, "literal from a foreign pool used in this context")
		}
	}
}
