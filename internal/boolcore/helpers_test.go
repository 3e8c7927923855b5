package boolcore

import (
	"strconv"
	"testing"
)

// lit returns ctx's literal for id, for terser test bodies.
func lit(ctx *Context, id int32) *Node { return Literal(ctx, id) }

// mustBuild fails the test immediately on a construction error; used
// throughout for the common case where no budget is in play and any
// error is a bug.
func mustBuild(t *testing.T, n *Node, err error) *Node {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	return n
}

// describe renders e as a parenthesized S-expression of kind names and
// signed literal ids, used by table-driven tests to compare shapes
// without depending on any particular canonical printer.
func describe(e *Node) string {
	if e.Kind().IsAtom() {
		if e.Kind().IsLiteral() {
			return strconv.Itoa(int(e.LitID()))
		}
		return e.Kind().String()
	}
	s := "(" + e.Kind().String()
	for _, c := range e.Children() {
		s += " " + describe(c)
	}
	return s + ")"
}
