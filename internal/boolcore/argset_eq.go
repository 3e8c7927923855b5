package boolcore

// EqArgSet incrementally accumulates operands for an EQ, tracking
// whether a ZERO and/or a ONE constant has been absorbed (spec.md
// §4.3/§4.4: "zero/one flags for EQ"). Seeing both, or a complementary
// literal pair, collapses the whole equality to ZERO (no assignment can
// make a variable equal to its own complement).
type EqArgSet struct {
	sawZero   bool
	sawOne    bool
	collapsed bool
	ops       *Set
}

// NewEqArgSet creates an empty EQ accumulator.
func NewEqArgSet() *EqArgSet {
	return &EqArgSet{ops: NewSet()}
}

// Insert adds key to the accumulator, consuming it.
func (s *EqArgSet) Insert(key *Node) {
	stack := []*Node{key}
	for len(stack) > 0 {
		n := len(stack) - 1
		k := stack[n]
		stack = stack[:n]

		if s.collapsed {
			k.DecRef()
			continue
		}
		switch {
		case k == constZero:
			if s.sawOne {
				s.collapse()
			} else {
				s.sawZero = true
			}
			k.DecRef()
		case k == constOne:
			if s.sawZero {
				s.collapse()
			} else {
				s.sawOne = true
			}
			k.DecRef()
		case k.kind == Eq:
			for _, c := range k.children {
				c.IncRef()
				stack = append(stack, c)
			}
			k.DecRef()
		case k.kind.IsLiteral() && s.ops.Contains(k.pool.get(-k.litID)):
			s.collapse()
			k.DecRef()
		case s.ops.Contains(k):
			k.DecRef() // duplicate: eq(x, x, ...) is redundant, not collapsing
		default:
			s.ops.Insert(k)
		}
	}
}

func (s *EqArgSet) collapse() {
	s.collapsed = true
	s.ops.Clear()
}

// Collapsed reports whether the accumulator has already reached ZERO.
func (s *EqArgSet) Collapsed() bool { return s.collapsed }

// Len reports the number of surviving distinct operands.
func (s *EqArgSet) Len() int { return s.ops.Len() }

// Build finalizes the accumulator per the size table of spec.md §4.4's
// eq_simplify.
func (s *EqArgSet) Build(ctx *Context) (*Node, error) {
	if s.collapsed {
		return constZero.IncRef(), nil
	}
	items := s.ops.TakeAll()
	sortNodes(items)

	if s.sawZero {
		switch len(items) {
		case 0:
			return constOne.IncRef(), nil
		case 1:
			return ctx.Not(items[0])
		default:
			return ctx.Nor(items...)
		}
	}
	if s.sawOne {
		switch len(items) {
		case 0:
			return constOne.IncRef(), nil
		case 1:
			return items[0], nil
		default:
			return ctx.And(items...)
		}
	}
	switch len(items) {
	case 0:
		return constOne.IncRef(), nil
	case 1:
		items[0].DecRef()
		return constOne.IncRef(), nil
	default:
		return ctx.build("eq-argset", Eq, items)
	}
}
