package parser

import (
	"fmt"
	"io"
	"strings"
)

// GetChildren returns every direct child of n across all of its shape
// fields, in a stable order (declaration shape, then condition, then body,
// then else/catch/finally, then operands/arguments). Used by generic
// tree-walkers; the PE builder walks the typed fields directly instead.
func (n *Node) GetChildren() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	add := func(c *Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	add(n.Type)
	add(n.Condition)
	add(n.Left)
	add(n.Right)
	add(n.Qualifier)
	add(n.Index)
	add(n.AnonymousBody)
	for _, p := range n.Parameters {
		add(p)
	}
	for _, i := range n.Initializers {
		add(i)
	}
	for _, a := range n.Arguments {
		add(a)
	}
	for _, b := range n.Body {
		add(b)
	}
	for _, e := range n.ElseBody {
		add(e)
	}
	for _, c := range n.Catches {
		add(c)
	}
	for _, f := range n.Finally {
		add(f)
	}
	for _, u := range n.Updaters {
		add(u)
	}
	for _, m := range n.Methods {
		add(m)
	}
	return out
}

// Walk calls visit for n and every descendant in pre-order, stopping a
// subtree's descent when visit returns false for its root.
func (n *Node) Walk(visit func(*Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, child := range n.GetChildren() {
		child.Walk(visit)
	}
}

// Find returns every descendant (including n) matching predicate.
func (n *Node) Find(predicate func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if predicate(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// FindByKind returns every descendant of the given kind.
func (n *Node) FindByKind(kind NodeKind) []*Node {
	return n.Find(func(c *Node) bool { return c.Kind == kind })
}

// Print writes an indented tree dump of n to w, for debugging only.
func (n *Node) Print(w io.Writer) {
	n.printIndented(w, 0)
}

func (n *Node) printIndented(w io.Writer, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	switch {
	case n.Name != "":
		fmt.Fprintf(w, "%s%s: %s\n", indent, n.Kind, n.Name)
	case n.Operator != "":
		fmt.Fprintf(w, "%s%s: %s\n", indent, n.Kind, n.Operator)
	default:
		fmt.Fprintf(w, "%s%s\n", indent, n.Kind)
	}
	for _, child := range n.GetChildren() {
		child.printIndented(w, depth+1)
	}
}
