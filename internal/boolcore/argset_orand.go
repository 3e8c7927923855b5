package boolcore

// OrAndArgSet incrementally accumulates operands for an OR or AND,
// applying absorption and domination eagerly (spec.md §4.3). min tracks
// whether the accumulated value is still just the kind's identity
// constant; max tracks whether it has already collapsed to the
// dominator. Insertion is iterative (an explicit stack, not recursion)
// per spec.md §9's adversarial-input note.
type OrAndArgSet struct {
	kind Kind
	min  bool
	max  bool
	ops  *Set
}

// NewOrAndArgSet creates an empty accumulator for the given commutative
// kind (Or or And).
func NewOrAndArgSet(kind Kind) *OrAndArgSet {
	return &OrAndArgSet{kind: kind, min: true, ops: NewSet()}
}

// Insert adds key to the accumulator, consuming it. It builds no nodes,
// so it cannot fail and returns nothing.
func (s *OrAndArgSet) Insert(key *Node) {
	stack := []*Node{key}
	identity := identityConst(s.kind)
	dominator := dominatorConst(s.kind)
	for len(stack) > 0 {
		n := len(stack) - 1
		k := stack[n]
		stack = stack[:n]

		if s.max {
			k.DecRef()
			continue
		}
		if k == identity {
			k.DecRef()
			continue
		}
		if k == dominator || s.hasComplement(k) {
			s.max = true
			s.min = false
			s.clearOps()
			k.DecRef()
			continue
		}
		if k.kind == s.kind {
			for _, c := range k.children {
				c.IncRef()
				stack = append(stack, c)
			}
			k.DecRef()
			continue
		}
		if s.ops.Insert(k) {
			s.min = false
		}
	}
}

// hasComplement reports whether k is a literal whose complement is
// already a member of the accumulator.
func (s *OrAndArgSet) hasComplement(k *Node) bool {
	if !k.kind.IsLiteral() {
		return false
	}
	comp := k.pool.get(-k.litID)
	return s.ops.Contains(comp)
}

func (s *OrAndArgSet) clearOps() {
	s.ops.Clear()
}

// Collapsed reports whether the accumulator has already reached the
// dominator.
func (s *OrAndArgSet) Collapsed() bool { return s.max }

// Len reports the number of surviving distinct operands.
func (s *OrAndArgSet) Len() int { return s.ops.Len() }

// Build finalizes the accumulator into an expression: the dominator if
// collapsed, the identity if empty, the sole survivor if exactly one,
// or a fresh operator node otherwise.
func (s *OrAndArgSet) Build(ctx *Context) (*Node, error) {
	if s.max {
		return dominatorConst(s.kind).IncRef(), nil
	}
	items := s.ops.TakeAll()
	switch len(items) {
	case 0:
		return identityConst(s.kind).IncRef(), nil
	case 1:
		return items[0], nil
	default:
		sortNodes(items)
		return ctx.build(s.kind.String()+"-argset", s.kind, items)
	}
}
