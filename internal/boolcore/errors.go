package boolcore

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrCapacityExceeded is returned by construction when a Context's node
// budget (Context.MaxNodes) has been exhausted. It is the engine's only
// allocation/construction failure: every construction helper that can
// return it has already released any intermediate handles it had
// acquired before propagating the failure.
var ErrCapacityExceeded = errors.New("boolcore: node capacity exceeded")

// ContractViolation is the panic value raised when a caller violates one
// of the data model's invariants (nil expression operand, release of a
// node whose ref count is already zero, id 0 for a literal, a literal
// from another pool passed directly as an operand, an out-of-range
// index). Mutating a set/dict mid-iteration is not detected. These are
// caller bugs, not
// recoverable engine failures, and are reported as assertions per
// spec.md §7.
type ContractViolation struct {
	Op      string
	Message string
}

func (c *ContractViolation) Error() string {
	return fmt.Sprintf("boolcore: contract violation in %s: %s", c.Op, c.Message)
}

func violate(op, format string, args ...interface{}) {
	panic(&ContractViolation{Op: op, Message: fmt.Sprintf(format, args...)})
}

// wrapAlloc wraps ErrCapacityExceeded with the construction step that hit
// the budget, for diagnostics; the sentinel is still matchable with
// errors.Is by callers.
func wrapAlloc(step string) error {
	return errors.Wrapf(ErrCapacityExceeded, "constructing %s", step)
}
