package cfg

import (
	"testing"

	"github.com/go-pdg/jpdg/internal/pe"
)

func TestRemoveJumpNodesSplicesBreakToItsTarget(t *testing.T) {
	gen := pe.NewIDGen()
	brk := pe.NewStatement(gen, nil, 1, 1, pe.StmtBreak)
	loop := pe.NewStatement(gen, nil, 1, 1, pe.StmtWhile)
	cond := pe.NewExpression(gen, nil, 1, 1, pe.ExprSimpleName)
	loop.SetCondition(cond)
	loop.Statements = append(loop.Statements, brk)
	after := simpleExprStatement(gen)
	method := methodWithStatements(gen, loop, after)

	g := NewBuilder().Build(method)
	breakNode := g.NormalByPE[brk.ID()]
	afterNode := g.NormalByPE[after.ID()]
	control := g.ControlByPE[loop.ID()]

	RemoveJumpNodes(g)

	for _, n := range g.Nodes {
		if n == breakNode {
			t.Fatal("break node should have been removed from g.Nodes")
		}
	}
	found := false
	for _, e := range control.Successors {
		if e.To == afterNode {
			found = true
		}
	}
	if !found {
		t.Error("expected the loop's control node to connect directly to the node after the loop")
	}
	for _, e := range afterNode.Predecessors {
		if e.From == breakNode {
			t.Error("spliced break node should not remain as a predecessor")
		}
	}
}

func TestRemoveSwitchCaseNodesPreservesFallthrough(t *testing.T) {
	gen := pe.NewIDGen()
	sw := pe.NewStatement(gen, nil, 1, 1, pe.StmtSwitch)
	cond := pe.NewExpression(gen, nil, 1, 1, pe.ExprSimpleName)
	sw.SetCondition(cond)

	case1 := pe.NewStatement(gen, nil, 1, 1, pe.StmtCase)
	case1Body := simpleExprStatement(gen)
	case1.Statements = append(case1.Statements, case1Body)
	case2 := pe.NewStatement(gen, nil, 1, 1, pe.StmtCase)
	case2Body := simpleExprStatement(gen)
	case2.Statements = append(case2.Statements, case2Body)
	sw.Statements = append(sw.Statements, case1, case2)
	method := methodWithStatements(gen, sw)

	g := NewBuilder().Build(method)
	case1Node := g.NormalByPE[case1.ID()]
	case1BodyNode := g.NormalByPE[case1Body.ID()]

	before := len(g.Nodes)
	RemoveSwitchCaseNodes(g)
	if len(g.Nodes) != before-2 {
		t.Fatalf("g.Nodes length = %d, want %d after removing 2 case nodes", len(g.Nodes), before-2)
	}

	found := false
	for _, e := range g.ControlByPE[sw.ID()].Successors {
		if e.To == case1BodyNode {
			found = true
		}
	}
	if !found {
		t.Error("expected switch control node to connect directly to case1's body after trimming")
	}
	for _, n := range g.Nodes {
		if n == case1Node {
			t.Error("case1 node should have been removed")
		}
	}
}
