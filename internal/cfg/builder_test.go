package cfg

import (
	"testing"

	"github.com/go-pdg/jpdg/internal/pe"
)

func simpleExprStatement(gen *pe.IDGen) *pe.Statement {
	s := pe.NewStatement(gen, nil, 1, 1, pe.StmtExpression)
	e := pe.NewExpression(gen, nil, 1, 1, pe.ExprSimpleName)
	e.SetText("x")
	s.AddExpression(e)
	return s
}

func methodWithStatements(gen *pe.IDGen, stmts ...*pe.Statement) *pe.Method {
	m := pe.NewMethod(gen, nil, 1, 1, "m", false)
	for _, s := range stmts {
		m.AddStatement(s)
	}
	return m
}

func TestBuildLinearBlock(t *testing.T) {
	gen := pe.NewIDGen()
	a := simpleExprStatement(gen)
	b := simpleExprStatement(gen)
	method := methodWithStatements(gen, a, b)

	g := NewBuilder().Build(method)

	if g.Entry == nil || g.Exit == nil {
		t.Fatal("Entry/Exit missing")
	}
	reachable := g.Reachable()
	if len(reachable) != 4 { // entry, a, b, exit
		t.Errorf("Reachable() = %d nodes, want 4", len(reachable))
	}
	if len(g.UnreachableNodes()) != 0 {
		t.Errorf("UnreachableNodes() = %+v, want none", g.UnreachableNodes())
	}

	na := g.NormalByPE[a.ID()]
	nb := g.NormalByPE[b.ID()]
	if na == nil || nb == nil {
		t.Fatal("statement nodes not recorded in NormalByPE")
	}
	found := false
	for _, e := range na.Successors {
		if e.To == nb {
			found = true
		}
	}
	if !found {
		t.Error("expected an edge from a's node to b's node")
	}
}

func TestBuildStatementAfterReturnIsUnreachable(t *testing.T) {
	gen := pe.NewIDGen()
	ret := pe.NewStatement(gen, nil, 1, 1, pe.StmtReturn)
	dead := simpleExprStatement(gen)
	method := methodWithStatements(gen, ret, dead)

	g := NewBuilder().Build(method)

	unreachable := g.UnreachableNodes()
	var found bool
	for _, n := range unreachable {
		if n.PE != nil && n.PE.ID() == dead.ID() {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the statement after return to be unreachable, got %+v", unreachable)
	}
}

func buildIfStatement(gen *pe.IDGen) *pe.Statement {
	st := pe.NewStatement(gen, nil, 1, 1, pe.StmtIf)
	cond := pe.NewExpression(gen, nil, 1, 1, pe.ExprSimpleName)
	cond.SetText("cond")
	st.SetCondition(cond)
	st.Statements = append(st.Statements, simpleExprStatement(gen))
	st.ElseStatements = append(st.ElseStatements, simpleExprStatement(gen))
	return st
}

func TestBuildIfHasTrueAndFalseEdges(t *testing.T) {
	gen := pe.NewIDGen()
	ifStmt := buildIfStatement(gen)
	method := methodWithStatements(gen, ifStmt)

	g := NewBuilder().Build(method)

	control := g.ControlByPE[ifStmt.ID()]
	if control == nil {
		t.Fatal("if statement has no control node")
	}
	var sawTrue, sawFalse bool
	for _, e := range control.Successors {
		switch e.Label {
		case EdgeTrue:
			sawTrue = true
		case EdgeFalse:
			sawFalse = true
		}
	}
	if !sawTrue || !sawFalse {
		t.Errorf("if control node successors = %+v, want one true and one false edge", control.Successors)
	}
}

func TestBuildIfWithoutElseFalseEdgeSkipsBlock(t *testing.T) {
	gen := pe.NewIDGen()
	st := pe.NewStatement(gen, nil, 1, 1, pe.StmtIf)
	cond := pe.NewExpression(gen, nil, 1, 1, pe.ExprSimpleName)
	st.SetCondition(cond)
	st.Statements = append(st.Statements, simpleExprStatement(gen))
	after := simpleExprStatement(gen)
	method := methodWithStatements(gen, st, after)

	g := NewBuilder().Build(method)

	control := g.ControlByPE[st.ID()]
	afterNode := g.NormalByPE[after.ID()]
	var falseGoesToAfter bool
	for _, e := range control.Successors {
		if e.Label == EdgeFalse && e.To == afterNode {
			falseGoesToAfter = true
		}
	}
	if !falseGoesToAfter {
		t.Error("expected the if's false edge to skip straight to the statement after the if")
	}
}

func TestBuildWhileLoopsBackOnTrue(t *testing.T) {
	gen := pe.NewIDGen()
	st := pe.NewStatement(gen, nil, 1, 1, pe.StmtWhile)
	cond := pe.NewExpression(gen, nil, 1, 1, pe.ExprSimpleName)
	st.SetCondition(cond)
	body := simpleExprStatement(gen)
	st.Statements = append(st.Statements, body)
	method := methodWithStatements(gen, st)

	g := NewBuilder().Build(method)

	control := g.ControlByPE[st.ID()]
	bodyNode := g.NormalByPE[body.ID()]
	var loopsBack bool
	for _, e := range bodyNode.Successors {
		if e.To == control {
			loopsBack = true
		}
	}
	if !loopsBack {
		t.Error("expected the while body to loop back to the condition node")
	}
}

func TestBuildBreakExitsEnclosingLoop(t *testing.T) {
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
	if breakNode == nil || afterNode == nil {
		t.Fatal("missing nodes")
	}
	reachable := g.Reachable()
	if !reachable[afterNode.ID] {
		t.Error("expected the statement after the loop to be reachable via break")
	}
}

func TestBuildContinueRunsForUpdateBeforeRecheck(t *testing.T) {
	gen := pe.NewIDGen()
	cont := pe.NewStatement(gen, nil, 1, 1, pe.StmtContinue)
	forStmt := pe.NewStatement(gen, nil, 1, 1, pe.StmtFor)
	cond := pe.NewExpression(gen, nil, 1, 1, pe.ExprSimpleName)
	forStmt.SetCondition(cond)
	update := pe.NewExpression(gen, nil, 1, 1, pe.ExprPostfix)
	forStmt.Updaters = append(forStmt.Updaters, update)
	forStmt.Statements = append(forStmt.Statements, cont)
	method := methodWithStatements(gen, forStmt)

	g := NewBuilder().Build(method)

	contNode := g.NormalByPE[cont.ID()]
	control := g.ControlByPE[forStmt.ID()]
	if contNode == nil || control == nil {
		t.Fatal("missing nodes")
	}
	// continue's successor should be a pseudo update node, not the
	// condition directly, and that pseudo node's own successor is the
	// condition.
	if len(contNode.Successors) != 1 {
		t.Fatalf("continue node successors = %+v, want 1", contNode.Successors)
	}
	updateNode := contNode.Successors[0].To
	if updateNode.NodeKind != KindPseudo {
		t.Fatalf("continue's target = %s, want a pseudo update node", updateNode.NodeKind)
	}
	var updateLeadsToCond bool
	for _, e := range updateNode.Successors {
		if e.To == control {
			updateLeadsToCond = true
		}
	}
	if !updateLeadsToCond {
		t.Error("expected the update pseudo node to lead back to the for's condition")
	}
}

func TestBuildTryHasControlNodeAndCatchEdge(t *testing.T) {
	gen := pe.NewIDGen()
	tryStmt := pe.NewStatement(gen, nil, 1, 1, pe.StmtTry)
	tryStmt.Statements = append(tryStmt.Statements, simpleExprStatement(gen))
	catch := pe.NewStatement(gen, nil, 1, 1, pe.StmtCatch)
	catch.Statements = append(catch.Statements, simpleExprStatement(gen))
	tryStmt.CatchClauses = append(tryStmt.CatchClauses, catch)
	method := methodWithStatements(gen, tryStmt)

	g := NewBuilder().Build(method)

	control := g.ControlByPE[tryStmt.ID()]
	if control == nil {
		t.Fatal("try statement has no control node")
	}
	if len(control.Successors) < 2 {
		t.Fatalf("try control node successors = %+v, want at least one to the body and one to the catch", control.Successors)
	}
}

func TestBuildSwitchFallsThroughWithoutBreak(t *testing.T) {
	gen := pe.NewIDGen()
	sw := pe.NewStatement(gen, nil, 1, 1, pe.StmtSwitch)
	cond := pe.NewExpression(gen, nil, 1, 1, pe.ExprSimpleName)
	sw.SetCondition(cond)

	case1 := pe.NewStatement(gen, nil, 1, 1, pe.StmtCase)
	case1Body := simpleExprStatement(gen)
	case1.Statements = append(case1.Statements, case1Body)

	case2 := pe.NewStatement(gen, nil, 1, 1, pe.StmtCase)
	case2.Label = "default"
	case2Body := simpleExprStatement(gen)
	case2.Statements = append(case2.Statements, case2Body)

	sw.Statements = append(sw.Statements, case1, case2)
	method := methodWithStatements(gen, sw)

	g := NewBuilder().Build(method)

	case1Node := g.NormalByPE[case1Body.ID()]
	case2SwitchNode := g.NormalByPE[case2.ID()]
	case2Node := g.NormalByPE[case2Body.ID()]
	var fallsThrough bool
	for _, e := range case1Node.Successors {
		if e.To == case2SwitchNode {
			fallsThrough = true
		}
	}
	if !fallsThrough {
		t.Error("expected case1's body to fall through into case2's switch-case node")
	}
	var switchNodeLeadsToBody bool
	for _, e := range case2SwitchNode.Successors {
		if e.To == case2Node {
			switchNodeLeadsToBody = true
		}
	}
	if !switchNodeLeadsToBody {
		t.Error("expected case2's switch-case node to lead into its body")
	}
}

func TestWalkVisitsEveryReachableNodeOnce(t *testing.T) {
	gen := pe.NewIDGen()
	ifStmt := buildIfStatement(gen)
	method := methodWithStatements(gen, ifStmt)
	g := NewBuilder().Build(method)

	visited := map[int64]int{}
	g.Walk(&countingVisitor{counts: visited})

	for id, count := range visited {
		if count != 1 {
			t.Errorf("node %d visited %d times, want 1", id, count)
		}
	}
	if len(visited) == 0 {
		t.Error("Walk visited no nodes")
	}
}

type countingVisitor struct {
	counts map[int64]int
}

func (v *countingVisitor) VisitNode(n *Node) bool {
	v.counts[n.ID]++
	return true
}

func (v *countingVisitor) VisitEdge(e *Edge) bool { return true }
