package main

import (
	"fmt"
	"strings"

	"boolcore/internal/boolcore"
)

// exprString renders e back into the infix syntax parse.go accepts,
// resolving literal ids through syms so variables print under the names
// the user originally typed. Parenthesization is uniform rather than
// precedence-minimal: unambiguous over terse.
func exprString(e *boolcore.Node, syms *symbolTable) string {
	switch e.Kind() {
	case boolcore.Illogical:
		return "ILLOGICAL"
	case boolcore.Zero:
		return "0"
	case boolcore.One:
		return "1"
	case boolcore.Logical:
		return "LOGICAL"
	case boolcore.Var:
		return syms.nameFor(e.LitID())
	case boolcore.Comp:
		return "!" + syms.nameFor(-e.LitID())
	case boolcore.Not:
		return "!" + exprString(e.Children()[0], syms)
	case boolcore.Or:
		return joinChildren(e, syms, " | ")
	case boolcore.And:
		return joinChildren(e, syms, " & ")
	case boolcore.Xor:
		return joinChildren(e, syms, " ^ ")
	case boolcore.Eq:
		return joinChildren(e, syms, " == ")
	case boolcore.Impl:
		c := e.Children()
		return fmt.Sprintf("(%s -> %s)", exprString(c[0], syms), exprString(c[1], syms))
	case boolcore.Ite:
		c := e.Children()
		return fmt.Sprintf("ite(%s, %s, %s)", exprString(c[0], syms), exprString(c[1], syms), exprString(c[2], syms))
	default:
		return "?"
	}
}

func joinChildren(e *boolcore.Node, syms *symbolTable, sep string) string {
	parts := make([]string, len(e.Children()))
	for i, c := range e.Children() {
		parts[i] = exprString(c, syms)
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// metrics is the tree summary the CLI prints after every pass: size,
// depth, atom/op counts, and support-set size, formatted with
// github.com/dustin/go-humanize the way the teacher formats byte counts
// and durations in its CLI output.
type metrics struct {
	size, depth, atoms, ops, support int
}

func measure(e *boolcore.Node) metrics {
	sup := boolcore.Support(e)
	n := sup.Len()
	sup.Clear()
	return metrics{
		size:    boolcore.Size(e),
		depth:   boolcore.Depth(e),
		atoms:   boolcore.AtomCount(e),
		ops:     boolcore.OpCount(e),
		support: n,
	}
}
