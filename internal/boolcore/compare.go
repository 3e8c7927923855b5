package boolcore

import "golang.org/x/exp/slices"

// compareNodes orders literals first by |id| then by signed id, so that
// a literal and its complement become adjacent, and groups every other
// node into an equal class by kind (spec.md §4.4's orand_simplify sort
// step). Ties beyond that fall back to construction order (seq) purely
// for determinism; correctness never depends on operator-vs-operator
// order.
func compareNodes(a, b *Node) int {
	al, bl := a.kind.IsLiteral(), b.kind.IsLiteral()
	switch {
	case al && bl:
		aAbs, bAbs := abs32(a.litID), abs32(b.litID)
		if aAbs != bAbs {
			return int(aAbs - bAbs)
		}
		if a.litID != b.litID {
			return int(a.litID - b.litID)
		}
		return 0
	case al && !bl:
		return -1
	case !al && bl:
		return 1
	default:
		if a.kind != b.kind {
			return int(a.kind) - int(b.kind)
		}
		if a.seq != b.seq {
			if a.seq < b.seq {
				return -1
			}
			return 1
		}
		return 0
	}
}

// sortNodes sorts xs in place per compareNodes.
func sortNodes(xs []*Node) {
	slices.SortFunc(xs, compareNodes)
}
