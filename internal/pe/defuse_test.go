package pe

import "testing"

func newAnalyzer() *DefUseAnalyzer {
	return NewDefUseAnalyzer(
		[]string{"add", "set", "put"},
		[]string{"get", "compute"},
	)
}

func simpleName(gen *IDGen, name string) *Expression {
	e := NewExpression(gen, nil, 1, 1, ExprSimpleName)
	e.SetText(name)
	return e
}

func TestDefLevelRank(t *testing.T) {
	levels := []DefLevel{DefUnknown, DefNoDef, DefMayDef, DefDef, DefDeclare, DefDeclareAndDef}
	for i := 1; i < len(levels); i++ {
		if levels[i].rank() <= levels[i-1].rank() {
			t.Errorf("expected %s to outrank %s", levels[i], levels[i-1])
		}
	}
}

func TestVarDefPromoteNeverLowers(t *testing.T) {
	d := NewVarDef("x", DefDef)
	d.Promote(DefMayDef)
	if d.Level != DefDef {
		t.Errorf("Promote lowered level to %s", d.Level)
	}
	d.Promote(DefDeclareAndDef)
	if d.Level != DefDeclareAndDef {
		t.Errorf("Promote did not raise level, got %s", d.Level)
	}
}

func TestClassifyCall(t *testing.T) {
	a := newAnalyzer()
	tests := []struct {
		name string
		want DefLevel
	}{
		{"add", DefDef},
		{"addAll", DefDef},
		{"get", DefMayDef},
		{"getOrDefault", DefMayDef},
		{"toString", DefNoDef},
	}
	for _, tt := range tests {
		if got := a.classifyCall(tt.name); got != tt.want {
			t.Errorf("classifyCall(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

// buildAssignment constructs "target = rhs" as the builder would.
func buildAssignment(gen *IDGen, target string, rhs *Expression) *Expression {
	e := NewExpression(gen, nil, 1, 1, ExprAssignment)
	e.AddChild(simpleName(gen, target))
	e.AddChild(NewOperator(gen, nil, 1, 1, "="))
	if rhs != nil {
		e.AddChild(rhs)
	}
	return e
}

func TestAssignmentDefsAndUses(t *testing.T) {
	gen := NewIDGen()
	a := newAnalyzer()

	rhs := NewExpression(gen, nil, 1, 1, ExprInfix)
	rhs.AddChild(simpleName(gen, "b"))
	rhs.AddChild(NewOperator(gen, nil, 1, 1, "+"))
	rhs.AddChild(simpleName(gen, "c"))

	assign := buildAssignment(gen, "a", rhs)

	defs := a.Defs(assign)
	if len(defs) != 1 || defs[0].Name != "a" || defs[0].Level != DefDef {
		t.Fatalf("Defs(a=b+c) = %+v, want single DEF of a", defs)
	}

	// Direct Uses on a plain "=" assignment report none (the target is a
	// def, not a use, of itself).
	if uses := a.Uses(assign); len(uses) != 0 {
		t.Errorf("Uses(a=b+c) direct = %+v, want none", uses)
	}

	allUses := a.AllUses(assign)
	names := map[string]UseLevel{}
	for _, u := range allUses {
		names[u.Name] = u.Level
	}
	if names["b"] != UseUse || names["c"] != UseUse {
		t.Errorf("AllUses(a=b+c) = %+v, want USE of b and c", allUses)
	}
	if _, ok := names["a"]; ok {
		t.Errorf("AllUses(a=b+c) reported a use of the assignment target a")
	}
}

func TestCompoundAssignmentUsesTarget(t *testing.T) {
	gen := NewIDGen()
	a := newAnalyzer()

	rhs := simpleName(gen, "n")
	assign := NewExpression(gen, nil, 1, 1, ExprAssignment)
	assign.AddChild(simpleName(gen, "total"))
	assign.AddChild(NewOperator(gen, nil, 1, 1, "+="))
	assign.AddChild(rhs)

	defs := a.Defs(assign)
	if len(defs) != 1 || defs[0].Name != "total" || defs[0].Level != DefDef {
		t.Fatalf("Defs(total+=n) = %+v", defs)
	}
	uses := a.Uses(assign)
	if len(uses) != 1 || uses[0].Name != "total" {
		t.Fatalf("Uses(total+=n) direct = %+v, want USE of total", uses)
	}
	allUses := a.AllUses(assign)
	found := map[string]bool{}
	for _, u := range allUses {
		found[u.Name] = true
	}
	if !found["total"] || !found["n"] {
		t.Errorf("AllUses(total+=n) = %+v, want total and n", allUses)
	}
}

func TestIncrementDefsAndUsesSameVariable(t *testing.T) {
	gen := NewIDGen()
	a := newAnalyzer()

	e := NewExpression(gen, nil, 1, 1, ExprPostfix)
	e.AddChild(simpleName(gen, "i"))
	e.AddChild(NewOperator(gen, nil, 1, 1, "++"))

	defs := a.Defs(e)
	if len(defs) != 1 || defs[0].Name != "i" || defs[0].Level != DefDef {
		t.Fatalf("Defs(i++) = %+v", defs)
	}
	uses := a.Uses(e)
	if len(uses) != 1 || uses[0].Name != "i" || uses[0].Level != UseUse {
		t.Fatalf("Uses(i++) = %+v", uses)
	}
}

func TestVariableDeclarationFragmentLevels(t *testing.T) {
	gen := NewIDGen()
	a := newAnalyzer()

	v := NewVariable(gen, nil, 1, 1, "x", nil, VarLocal)

	declOnly := NewExpression(gen, nil, 1, 1, ExprVariableDeclarationFragment)
	declOnly.AddChild(v)
	if defs := a.Defs(declOnly); len(defs) != 1 || defs[0].Level != DefDeclare {
		t.Fatalf("Defs(int x;) = %+v, want DECLARE", defs)
	}

	declAndDef := NewExpression(gen, nil, 1, 1, ExprVariableDeclarationFragment)
	declAndDef.AddChild(v)
	declAndDef.AddChild(simpleName(gen, "0"))
	if defs := a.Defs(declAndDef); len(defs) != 1 || defs[0].Level != DefDeclareAndDef {
		t.Fatalf("Defs(int x = 0;) = %+v, want DECLARE_AND_DEF", defs)
	}
}

func TestMethodInvocationReceiverClassification(t *testing.T) {
	gen := NewIDGen()
	a := newAnalyzer()

	buildCall := func(recv, method string) *Expression {
		e := NewExpression(gen, nil, 1, 1, ExprMethodInvocation)
		q := simpleName(gen, recv)
		e.Qualifier = q
		e.AddChild(q)
		e.AddChild(NewOperator(gen, nil, 1, 1, method))
		return e
	}

	addCall := buildCall("list", "add")
	if defs := a.Defs(addCall); len(defs) != 1 || defs[0].Name != "list" || defs[0].Level != DefDef {
		t.Fatalf("Defs(list.add(x)) = %+v, want DEF of list", defs)
	}
	if uses := a.Uses(addCall); len(uses) != 1 || uses[0].Name != "list" {
		t.Fatalf("Uses(list.add(x)) = %+v, want USE of list", uses)
	}

	getCall := buildCall("map", "get")
	if defs := a.Defs(getCall); len(defs) != 1 || defs[0].Level != DefMayDef {
		t.Fatalf("Defs(map.get(k)) = %+v, want MAY_DEF", defs)
	}

	queryCall := buildCall("obj", "toString")
	if defs := a.Defs(queryCall); len(defs) != 0 {
		t.Fatalf("Defs(obj.toString()) = %+v, want none", defs)
	}
}

func TestAllDefsMergesNestedDuplicateNamesToHighestLevel(t *testing.T) {
	gen := NewIDGen()
	a := newAnalyzer()

	inner := buildAssignment(gen, "x", simpleName(gen, "y"))
	outer := NewExpression(gen, nil, 1, 1, ExprParenthesized)
	outer.AddChild(inner)

	decl := NewExpression(gen, nil, 1, 1, ExprVariableDeclarationFragment)
	decl.AddChild(NewVariable(gen, nil, 1, 1, "x", nil, VarLocal))
	decl.AddChild(outer)

	defs := a.AllDefs(decl)
	if len(defs) != 1 {
		t.Fatalf("AllDefs = %+v, want one merged def of x", defs)
	}
	if defs[0].Level != DefDeclareAndDef {
		t.Errorf("AllDefs merged level = %s, want DECLARE_AND_DEF (the higher of DECLARE_AND_DEF and DEF)", defs[0].Level)
	}
}

func TestArrayAccessAndFieldAccessUses(t *testing.T) {
	gen := NewIDGen()
	a := newAnalyzer()

	arr := NewExpression(gen, nil, 1, 1, ExprArrayAccess)
	arr.AddChild(simpleName(gen, "arr"))
	arr.AddChild(simpleName(gen, "i"))
	uses := a.AllUses(arr)
	found := map[string]bool{}
	for _, u := range uses {
		found[u.Name] = true
	}
	if !found["arr"] || !found["i"] {
		t.Errorf("AllUses(arr[i]) = %+v, want arr and i", uses)
	}

	field := NewExpression(gen, nil, 1, 1, ExprFieldAccess)
	recv := simpleName(gen, "obj")
	field.Qualifier = recv
	field.AddChild(recv)
	field.SetText("field")
	if uses := a.Uses(field); len(uses) != 1 || uses[0].Name != "obj" {
		t.Fatalf("Uses(obj.field) = %+v, want USE of obj", uses)
	}
}

// fieldAccess constructs "recvCat.name" as the builder would (recvCat is
// ExprSimpleName or ExprThis).
func fieldAccess(gen *IDGen, recvCat ExpressionCategory, recvText, name string) *Expression {
	e := NewExpression(gen, nil, 1, 1, ExprFieldAccess)
	recv := NewExpression(gen, nil, 1, 1, recvCat)
	recv.SetText(recvText)
	e.Qualifier = recv
	e.AddChild(recv)
	e.SetText(name)
	return e
}

func TestFieldAndArrayAssignmentTargetsAreDefs(t *testing.T) {
	gen := NewIDGen()
	a := newAnalyzer()

	thisField := fieldAccess(gen, ExprThis, "this", "x")
	assign := buildAssignment(gen, "", nil)
	assign.Children[0] = thisField
	if defs := a.Defs(assign); len(defs) != 1 || defs[0].Name != "this.x" || defs[0].Level != DefDef {
		t.Fatalf("Defs(this.x = 5) = %+v, want DEF of this.x", defs)
	}

	objField := fieldAccess(gen, ExprSimpleName, "obj", "field")
	assign2 := buildAssignment(gen, "", nil)
	assign2.Children[0] = objField
	if defs := a.Defs(assign2); len(defs) != 1 || defs[0].Name != "obj.field" || defs[0].Level != DefDef {
		t.Fatalf("Defs(obj.field = 5) = %+v, want DEF of obj.field", defs)
	}

	arr := NewExpression(gen, nil, 1, 1, ExprArrayAccess)
	arr.AddChild(simpleName(gen, "arr"))
	arr.AddChild(simpleName(gen, "i"))
	assign3 := buildAssignment(gen, "", nil)
	assign3.Children[0] = arr
	if defs := a.Defs(assign3); len(defs) != 1 || defs[0].Name != "arr" || defs[0].Level != DefDef {
		t.Fatalf("Defs(arr[i] = 5) = %+v, want DEF of arr", defs)
	}
}

func TestQualifiedNameNameOf(t *testing.T) {
	gen := NewIDGen()

	qn := NewExpression(gen, nil, 1, 1, ExprQualifiedName)
	q := simpleName(gen, "pkg")
	qn.Qualifier = q
	qn.AddChild(q)
	qn.SetText("pkg.Name")

	if got := nameOf(qn); got != "pkg.Name" {
		t.Errorf("nameOf(pkg.Name) = %q, want %q", got, "pkg.Name")
	}
}

func TestCanonicalNameJoinsFieldAliasedByBuilder(t *testing.T) {
	gen := NewIDGen()
	a := newAnalyzer()

	// Simulates what Builder.buildFieldAccess/buildSimpleName stamp once a
	// field has been resolved against the method's fieldScope: both spellings
	// share one ResolvedAPIName, so they must collapse to one def/use name.
	thisField := fieldAccess(gen, ExprThis, "this", "x")
	thisField.ResolvedAPIName = "x"
	assign := buildAssignment(gen, "", nil)
	assign.Children[0] = thisField

	bareX := simpleName(gen, "x")
	bareX.ResolvedAPIName = "x"

	if defs := a.Defs(assign); len(defs) != 1 || defs[0].Name != "x" {
		t.Fatalf("Defs(this.x = 5) with ResolvedAPIName = %+v, want DEF of x", defs)
	}
	if uses := a.Uses(bareX); len(uses) != 1 || uses[0].Name != "x" {
		t.Fatalf("Uses(x) with ResolvedAPIName = %+v, want USE of x", uses)
	}
}

func TestDefsAndUsesOnNilExpression(t *testing.T) {
	a := newAnalyzer()
	if defs := a.Defs(nil); defs != nil {
		t.Errorf("Defs(nil) = %+v, want nil", defs)
	}
	if uses := a.Uses(nil); uses != nil {
		t.Errorf("Uses(nil) = %+v, want nil", uses)
	}
}
