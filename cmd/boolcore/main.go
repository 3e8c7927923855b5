// Command boolcore parses a single Boolean formula, runs one named
// rewrite pass over it, and prints the result alongside its tree
// metrics. It exercises internal/boolcore end to end the same way the
// teacher's cmd/sentra wraps its lexer/parser/VM pipeline behind a
// flag-driven main, just scaled to one formula instead of a whole
// script (grounded on cmd/sentrabool_ref/main_ref.go).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/kr/pretty"
	"github.com/kr/text"
	"github.com/mattn/go-isatty"

	"boolcore/internal/boolcore"
)

const version = "0.1.0"

var passAliases = map[string]string{
	"s":  "simplify",
	"nn": "nnf",
	"b":  "binary",
	"d":  "dnf",
	"c":  "cnf",
	"cs": "completesum",
	"nt": "notbubble",
}

func main() {
	passFlag := flag.String("pass", "simplify", "rewrite pass to run: simplify, notbubble, binary, nnf, dnf, cnf, completesum")
	equivFlag := flag.String("equiv", "", "if set, check the main expression for equivalence against this one instead of running -pass")
	budgetFlag := flag.Int("budget", 0, "node construction budget (0 = unlimited); exhausting it fails with ErrCapacityExceeded")
	debugFlag := flag.Bool("debug", false, "print a kr/pretty structural dump of the parsed and resulting trees")
	noColorFlag := flag.Bool("no-color", false, "disable ANSI color even on a terminal")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("boolcore %s\n", version)
		return
	}
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: boolcore [flags] <expression>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	runID := uuid.New().String()
	color := !*noColorFlag && isatty.IsTerminal(os.Stdout.Fd())
	logger := log.New(os.Stderr, fmt.Sprintf("boolcore[%s] ", runID[:8]), log.LstdFlags)

	var ctx *boolcore.Context
	if *budgetFlag > 0 {
		ctx = boolcore.NewContextWithBudget(*budgetFlag)
	} else {
		ctx = boolcore.NewContext()
	}
	syms := newSymbolTable()

	source := flag.Arg(0)
	e, err := ParseExpr(ctx, syms, source)
	if err != nil {
		logger.Printf("parse error: %v", err)
		os.Exit(1)
	}

	if *debugFlag {
		fmt.Fprintln(os.Stderr, text.Indent(pretty.Sprint(dumpNode(e, syms)), "  "))
	}

	if *equivFlag != "" {
		other, err := ParseExpr(ctx, syms, *equivFlag)
		if err != nil {
			e.DecRef()
			logger.Printf("parse error in -equiv expression: %v", err)
			os.Exit(1)
		}
		eq, err := boolcore.Equivalent(ctx, e, other)
		e.DecRef()
		other.DecRef()
		if err != nil {
			logger.Printf("equivalence check failed: %v", err)
			os.Exit(1)
		}
		fmt.Printf("equivalent: %v\n", eq)
		return
	}

	pass := *passFlag
	if alias, ok := passAliases[pass]; ok {
		pass = alias
	}
	result, err := runPass(ctx, pass, e)
	e.DecRef()
	if err != nil {
		logger.Printf("%s failed: %v", pass, err)
		os.Exit(1)
	}
	defer result.DecRef()

	m := measure(result)
	printResult(pass, result, syms, m, color)
	if *debugFlag {
		fmt.Fprintln(os.Stderr, text.Indent(pretty.Sprint(dumpNode(result, syms)), "  "))
	}
	logger.Printf("done: pass=%s size=%s depth=%d", pass, humanize.Comma(int64(m.size)), m.depth)
}

func runPass(ctx *boolcore.Context, pass string, e *boolcore.Node) (*boolcore.Node, error) {
	switch pass {
	case "simplify":
		return boolcore.Simplify(ctx, e)
	case "notbubble", "pushdownnot":
		return boolcore.PushDownNot(ctx, e)
	case "binary":
		return boolcore.ToBinary(ctx, e)
	case "nnf":
		return boolcore.ToNNF(ctx, e)
	case "dnf":
		return boolcore.ToDNF(ctx, e)
	case "cnf":
		return boolcore.ToCNF(ctx, e)
	case "completesum":
		return boolcore.CompleteSum(ctx, e)
	default:
		return nil, fmt.Errorf("unknown pass %q (want simplify, notbubble, binary, nnf, dnf, cnf, completesum)", pass)
	}
}

func printResult(pass string, result *boolcore.Node, syms *symbolTable, m metrics, color bool) {
	rendered := exprString(result, syms)
	if color {
		fmt.Printf("\x1b[1m%s\x1b[0m => \x1b[32m%s\x1b[0m\n", pass, rendered)
	} else {
		fmt.Printf("%s => %s\n", pass, rendered)
	}
	fmt.Printf("size=%s depth=%s atoms=%s ops=%s support=%s\n",
		humanize.Comma(int64(m.size)), humanize.Comma(int64(m.depth)),
		humanize.Comma(int64(m.atoms)), humanize.Comma(int64(m.ops)), humanize.Comma(int64(m.support)))
}

// dumpNode flattens a tree into plain Go values (maps/slices/strings) so
// kr/pretty's reflection-based printer renders something readable instead
// of walking the Node struct's unexported fields.
func dumpNode(e *boolcore.Node, syms *symbolTable) interface{} {
	if e.Kind().IsAtom() {
		return exprString(e, syms)
	}
	kids := make([]interface{}, len(e.Children()))
	for i, c := range e.Children() {
		kids[i] = dumpNode(c, syms)
	}
	return map[string]interface{}{"kind": e.Kind().String(), "children": kids}
}
