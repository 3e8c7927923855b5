package boolcore

// XorArgSet incrementally accumulates operands for an XOR, tracking a
// parity bit flipped by every ONE constant absorbed and by every
// complementary literal pair found (spec.md §4.3/§4.4). Operand
// membership is a toggle (GF(2)) set: inserting an already-present
// operand cancels it out, since x ⊕ x = 0.
type XorArgSet struct {
	parity bool
	ops    *Set
}

// NewXorArgSet creates an empty XOR accumulator.
func NewXorArgSet() *XorArgSet {
	return &XorArgSet{ops: NewSet()}
}

// Insert adds key to the accumulator, consuming it.
func (s *XorArgSet) Insert(key *Node) {
	stack := []*Node{key}
	for len(stack) > 0 {
		n := len(stack) - 1
		k := stack[n]
		stack = stack[:n]

		switch {
		case k == constZero:
			k.DecRef()
		case k == constOne:
			s.parity = !s.parity
			k.DecRef()
		case k.kind == Xor:
			for _, c := range k.children {
				c.IncRef()
				stack = append(stack, c)
			}
			k.DecRef()
		case s.ops.Contains(k):
			s.ops.Remove(k) // releases the stored copy
			k.DecRef()      // releases the incoming duplicate
		case k.kind.IsLiteral() && s.ops.Contains(k.pool.get(-k.litID)):
			comp := k.pool.get(-k.litID)
			s.ops.Remove(comp) // releases the stored complement
			s.parity = !s.parity
			k.DecRef()
		default:
			s.ops.Insert(k)
		}
	}
}

// Len reports the number of surviving distinct operands.
func (s *XorArgSet) Len() int { return s.ops.Len() }

// Parity reports the accumulator's current parity bit.
func (s *XorArgSet) Parity() bool { return s.parity }

// Build finalizes the accumulator: ZERO/ONE if empty (per parity), the
// sole survivor (negated if parity is set), or a fresh XOR/XNOR
// otherwise.
func (s *XorArgSet) Build(ctx *Context) (*Node, error) {
	items := s.ops.TakeAll()
	var base *Node
	var err error
	switch len(items) {
	case 0:
		if s.parity {
			return constOne.IncRef(), nil
		}
		return constZero.IncRef(), nil
	case 1:
		base = items[0]
	default:
		sortNodes(items)
		base, err = ctx.build("xor-argset", Xor, items)
		if err != nil {
			return nil, err
		}
	}
	if s.parity {
		return ctx.Not(base)
	}
	return base, nil
}
