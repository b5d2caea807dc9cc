package pe

import (
	"strings"

	"github.com/go-pdg/jpdg/internal/parser"
)

// Builder translates an external parser.Node tree into a PE tree, one
// Method/Class/Statement/Expression at a time. Statements pass through a
// safe-stack: buildStatement pushes its one PE and pops it straight back,
// and buildSingleOrBlockBody pushes each child's contribution (a flattened
// simple block's statements, or one statement) and drains them back in
// order. Expressions are built by plain recursion without the stack. A
// production this core doesn't recognize translates to nil and is left out
// of its parent.
type Builder struct {
	gen   *IDGen
	stack *Stack

	// fieldScope is the current method's root scope, used as the home for
	// field-identity Vars so that "this.x" and a bare "x" resolving to the
	// same field collapse onto one Var (see resolveFieldVar). BuildMethod
	// saves and restores it around the body it builds, and buildLambda leaves
	// it untouched entirely, so a lambda nested inside a method resolves
	// fields against the enclosing method's scope rather than its own, while
	// an anonymous class's own methods (built by a nested BuildMethod call)
	// get their own fieldScope without leaking it back to the caller.
	fieldScope *Scope
}

// NewBuilder returns a Builder allocating PE ids from gen (DefaultIDGen if
// nil).
func NewBuilder(gen *IDGen) *Builder {
	return &Builder{gen: gen, stack: NewStack()}
}

// BuildClass builds the PE Class (and its methods/lambdas) for a
// parser.KindClassDeclaration node.
func (b *Builder) BuildClass(n *parser.Node) *Class {
	if n == nil {
		return nil
	}
	cls := NewClass(b.gen, n, n.StartLine, n.EndLine, n.Name)
	for _, m := range n.Methods {
		switch m.Kind {
		case parser.KindMethodDeclaration:
			if method := b.BuildMethod(m); method != nil {
				cls.AddMethod(method)
			}
		case parser.KindClassDeclaration, parser.KindAnonymousClassBody:
			// nested/anonymous classes are built lazily by the expression
			// that references them (ClassInstanceCreation); top-level
			// nested classes are skipped, matching the "one method at a
			// time" analysis granularity (no inter-procedural analysis).
		}
	}
	return cls
}

// BuildMethod builds the PE Method for a parser.KindMethodDeclaration node,
// including its full statement body.
func (b *Builder) BuildMethod(n *parser.Node) *Method {
	if n == nil {
		return nil
	}
	method := NewMethod(b.gen, n, n.StartLine, n.EndLine, n.Name, false)
	scope := NewScope(method, nil)

	// BuildMethod recurses into itself for an anonymous class's methods
	// (buildClassInstanceCreation below), so fieldScope is saved and restored
	// around the body rather than just set: without this, building an
	// anonymous class nested inside method A's body would leave fieldScope
	// pointing at the anonymous method's scope for the rest of A.
	prevFieldScope := b.fieldScope
	b.fieldScope = scope
	defer func() { b.fieldScope = prevFieldScope }()

	for _, p := range n.Parameters {
		v := b.declareVariable(p, VarParameter, scope)
		method.AddParameter(v)
	}
	b.buildBody(n.Body, method, scope)
	return method
}

// resolveFieldVar returns the Var for a field-like reference named name,
// creating and registering one in fieldScope on first sight. Every later
// reference to the same name within the method — spelled "this.x", spelled
// bare "x", or both — resolves to this same Var, which is how buildFieldAccess
// and buildSimpleName below join "this.x"/"x" into one alias set.
func (b *Builder) resolveFieldVar(name string) *Var {
	if b.fieldScope == nil || name == "" {
		return nil
	}
	if v := b.fieldScope.SearchVariable(name); v != nil {
		return v
	}
	v := NewVar(b.fieldScope, name)
	b.fieldScope.AddVariable(v)
	return v
}

// buildLambda builds the PE Method for a parser.KindLambdaExpression node,
// nested in parentScope.
func (b *Builder) buildLambda(n *parser.Node, parentScope *Scope) *Method {
	method := NewMethod(b.gen, n, n.StartLine, n.EndLine, "<lambda>", true)
	scope := NewScope(method, parentScope)
	for _, p := range n.Parameters {
		v := b.declareVariable(p, VarParameter, scope)
		method.AddParameter(v)
	}
	if n.ExpressionBody != nil {
		method.ExpressionBody = b.buildExpression(n.ExpressionBody, scope)
	} else {
		b.buildBody(n.Body, method, scope)
	}
	return method
}

func (b *Builder) declareVariable(p *parser.Node, category VariableCategory, scope *Scope) *Variable {
	var typ *Type
	if p.Type != nil {
		typ = NewType(b.gen, p.Type, p.Type.StartLine, p.Type.EndLine, p.Type.Name, 0)
	}
	v := NewVariable(b.gen, p, p.StartLine, p.EndLine, p.Name, typ, category)
	scope.AddVariable(NewVar(scope, p.Name))
	return v
}

// buildBody walks a slice of statement nodes, adding each built Statement to
// owner via AddStatement (the block's real, discrete children — distinct
// from SetStatement's single-child flattening used for loop/if/try bodies
// that the grammar allows to be a single bare statement).
func (b *Builder) buildBody(stmts []*parser.Node, owner BlockInfo, scope *Scope) {
	for _, s := range stmts {
		if st := b.buildStatement(s, owner, scope); st != nil {
			owner.AddStatement(st)
		}
	}
}

// buildSingleOrBlockBody builds the body of a construct that the grammar
// allows to be either a block or a single bare statement (If's branches,
// loop bodies, synchronized's body). A single child node here can legally
// produce zero PEs (unsupported construct), one (an ordinary statement), or
// several (a bare block flattens into its own statements) — exactly the
// variable-multiplicity case the safe stack exists for — so each child is
// pushed onto it rather than appended straight into a local slice, and the
// whole batch is drained back out in push order once every child has run.
func (b *Builder) buildSingleOrBlockBody(stmts []*parser.Node, parentBlock BlockInfo, scope *Scope) []*Statement {
	height := b.stack.Size()
	for _, s := range stmts {
		st := b.buildStatement(s, parentBlock, scope)
		if st == nil {
			continue
		}
		if st.Category == StmtSimpleBlock {
			for _, inner := range st.Statements {
				b.stack.Push(inner)
			}
		} else {
			b.stack.Push(st)
		}
	}
	return DrainAs[*Statement](b.stack, height)
}

func (b *Builder) buildStatement(n *parser.Node, owner BlockInfo, scope *Scope) *Statement {
	if n == nil {
		return nil
	}
	height := b.stack.Size()
	var st *Statement
	switch n.Kind {
	case parser.KindBlock:
		st = b.buildSimpleBlock(n, owner, scope)
	case parser.KindIfStatement:
		st = b.buildIf(n, owner, scope)
	case parser.KindWhileStatement:
		st = b.buildLoop(n, owner, scope, StmtWhile)
	case parser.KindDoStatement:
		st = b.buildLoop(n, owner, scope, StmtDo)
	case parser.KindForStatement:
		st = b.buildFor(n, owner, scope)
	case parser.KindForeachStatement:
		st = b.buildForeach(n, owner, scope)
	case parser.KindSwitchStatement:
		st = b.buildSwitch(n, owner, scope)
	case parser.KindTryStatement:
		st = b.buildTry(n, owner, scope)
	case parser.KindBreakStatement:
		st = b.buildJump(n, owner, StmtBreak)
	case parser.KindContinueStatement:
		st = b.buildJump(n, owner, StmtContinue)
	case parser.KindReturnStatement:
		st = b.buildExprCarryingStatement(n, owner, scope, StmtReturn)
	case parser.KindThrowStatement:
		st = b.buildExprCarryingStatement(n, owner, scope, StmtThrow)
	case parser.KindAssertStatement:
		st = b.buildAssert(n, owner, scope)
	case parser.KindExpressionStatement:
		st = b.buildExprCarryingStatement(n, owner, scope, StmtExpression)
	case parser.KindVariableDeclStatement:
		st = b.buildVariableDeclaration(n, owner, scope)
	case parser.KindEmptyStatement:
		st = NewStatement(b.gen, n, n.StartLine, n.EndLine, StmtEmpty)
	case parser.KindSynchronizedStatement:
		st = b.buildSynchronized(n, owner, scope)
	case parser.KindLabeledStatement:
		st = b.buildLabeled(n, owner, scope)
	case parser.KindLocalTypeDeclStatement:
		st = NewStatement(b.gen, n, n.StartLine, n.EndLine, StmtTypeDeclaration)
	default:
		// unsupported statement production: leave nothing on the stack.
		return nil
	}
	if st != nil {
		st.Owner = owner
		b.stack.Push(st)
		return PopAs[*Statement](b.stack, height)
	}
	return nil
}

func (b *Builder) buildSimpleBlock(n *parser.Node, owner BlockInfo, scope *Scope) *Statement {
	st := NewStatement(b.gen, n, n.StartLine, n.EndLine, StmtSimpleBlock)
	inner := NewScope(st, scope)
	b.buildBody(n.Body, st, inner)
	return st
}

func (b *Builder) buildIf(n *parser.Node, owner BlockInfo, scope *Scope) *Statement {
	st := NewStatement(b.gen, n, n.StartLine, n.EndLine, StmtIf)
	st.SetCondition(b.buildExpression(n.Condition, scope))
	thenStmts := b.buildSingleOrBlockBody(n.Body, st, NewScope(st, scope))
	for _, ts := range thenStmts {
		st.Statements = append(st.Statements, ts)
	}
	if len(n.ElseBody) > 0 {
		elseStmts := b.buildSingleOrBlockBody(n.ElseBody, st, NewScope(st, scope))
		st.ElseStatements = append(st.ElseStatements, elseStmts...)
	}
	return st
}

func (b *Builder) buildLoop(n *parser.Node, owner BlockInfo, scope *Scope, category StatementCategory) *Statement {
	st := NewStatement(b.gen, n, n.StartLine, n.EndLine, category)
	st.SetCondition(b.buildExpression(n.Condition, scope))
	bodyStmts := b.buildSingleOrBlockBody(n.Body, st, NewScope(st, scope))
	st.Statements = append(st.Statements, bodyStmts...)
	return st
}

func (b *Builder) buildFor(n *parser.Node, owner BlockInfo, scope *Scope) *Statement {
	st := NewStatement(b.gen, n, n.StartLine, n.EndLine, StmtFor)
	inner := NewScope(st, scope)
	for _, init := range n.Initializers {
		if init.Kind == parser.KindVariableDeclStatement {
			if vs := b.buildVariableDeclaration(init, st, inner); vs != nil {
				for _, frag := range vs.Expressions {
					st.Initializers = append(st.Initializers, frag)
				}
			}
			continue
		}
		if e := b.buildExpression(init, inner); e != nil {
			st.Initializers = append(st.Initializers, e)
		}
	}
	st.SetCondition(b.buildExpression(n.Condition, inner))
	for _, u := range n.Updaters {
		if e := b.buildExpression(u, inner); e != nil {
			st.Updaters = append(st.Updaters, e)
		}
	}
	bodyStmts := b.buildSingleOrBlockBody(n.Body, st, NewScope(st, inner))
	st.Statements = append(st.Statements, bodyStmts...)
	return st
}

func (b *Builder) buildForeach(n *parser.Node, owner BlockInfo, scope *Scope) *Statement {
	st := NewStatement(b.gen, n, n.StartLine, n.EndLine, StmtForeach)
	inner := NewScope(st, scope)
	if len(n.Initializers) > 0 {
		param := n.Initializers[0]
		v := b.declareVariable(param, VarLocal, inner)
		st.Initializers = append(st.Initializers, v)
	}
	if len(n.Initializers) > 1 {
		if iter := b.buildExpression(n.Initializers[1], inner); iter != nil {
			st.Initializers = append(st.Initializers, iter)
		}
	}
	bodyStmts := b.buildSingleOrBlockBody(n.Body, st, NewScope(st, inner))
	st.Statements = append(st.Statements, bodyStmts...)
	return st
}

func (b *Builder) buildSwitch(n *parser.Node, owner BlockInfo, scope *Scope) *Statement {
	st := NewStatement(b.gen, n, n.StartLine, n.EndLine, StmtSwitch)
	st.SetCondition(b.buildExpression(n.Condition, scope))
	inner := NewScope(st, scope)
	for _, c := range n.Body {
		caseStmt := NewStatement(b.gen, c, c.StartLine, c.EndLine, StmtCase)
		caseStmt.Label = c.Label
		if c.Condition != nil {
			caseStmt.SetCondition(b.buildExpression(c.Condition, inner))
		}
		caseScope := NewScope(caseStmt, inner)
		b.buildBody(c.Body, caseStmt, caseScope)
		caseStmt.Owner = st
		st.Statements = append(st.Statements, caseStmt)
	}
	return st
}

func (b *Builder) buildTry(n *parser.Node, owner BlockInfo, scope *Scope) *Statement {
	st := NewStatement(b.gen, n, n.StartLine, n.EndLine, StmtTry)
	tryScope := NewScope(st, scope)
	b.buildBody(n.Body, st, tryScope)
	for _, c := range n.Catches {
		catchStmt := NewStatement(b.gen, c, c.StartLine, c.EndLine, StmtCatch)
		catchScope := NewScope(catchStmt, scope)
		if len(c.Parameters) > 0 {
			v := b.declareVariable(c.Parameters[0], VarLocal, catchScope)
			catchStmt.Expressions = append(catchStmt.Expressions, v)
		}
		b.buildBody(c.Body, catchStmt, catchScope)
		catchStmt.Owner = st
		st.CatchClauses = append(st.CatchClauses, catchStmt)
	}
	if len(n.Finally) > 0 {
		finallyStmt := NewStatement(b.gen, n, n.StartLine, n.EndLine, StmtSimpleBlock)
		finallyScope := NewScope(finallyStmt, scope)
		b.buildBody(n.Finally, finallyStmt, finallyScope)
		finallyStmt.Owner = st
		st.FinallyBlock = finallyStmt
	}
	return st
}

func (b *Builder) buildJump(n *parser.Node, owner BlockInfo, category StatementCategory) *Statement {
	st := NewStatement(b.gen, n, n.StartLine, n.EndLine, category)
	st.Label = n.Label
	return st
}

func (b *Builder) buildExprCarryingStatement(n *parser.Node, owner BlockInfo, scope *Scope, category StatementCategory) *Statement {
	st := NewStatement(b.gen, n, n.StartLine, n.EndLine, category)
	if n.Condition != nil {
		st.AddExpression(b.buildExpression(n.Condition, scope))
	}
	return st
}

func (b *Builder) buildAssert(n *parser.Node, owner BlockInfo, scope *Scope) *Statement {
	st := NewStatement(b.gen, n, n.StartLine, n.EndLine, StmtAssert)
	if n.Condition != nil {
		st.AddExpression(b.buildExpression(n.Condition, scope))
	}
	for _, m := range n.Initializers {
		st.AddExpression(b.buildExpression(m, scope))
	}
	return st
}

func (b *Builder) buildVariableDeclaration(n *parser.Node, owner BlockInfo, scope *Scope) *Statement {
	st := NewStatement(b.gen, n, n.StartLine, n.EndLine, StmtVariableDeclaration)
	var declType *Type
	if n.Type != nil {
		declType = NewType(b.gen, n.Type, n.Type.StartLine, n.Type.EndLine, n.Type.Name, 0)
	}
	for _, frag := range n.Initializers {
		v := NewVariable(b.gen, frag, frag.StartLine, frag.EndLine, frag.Name, declType, VarLocal)
		scope.AddVariable(NewVar(scope, frag.Name))
		fragExpr := NewExpression(b.gen, frag, frag.StartLine, frag.EndLine, ExprVariableDeclarationFragment)
		fragExpr.AddChild(v)
		if frag.Condition != nil {
			if init := b.buildExpression(frag.Condition, scope); init != nil {
				fragExpr.AddChild(init)
			}
		}
		fragExpr.SetText(strings.TrimSpace(v.Text()))
		st.AddExpression(fragExpr)
	}
	return st
}

func (b *Builder) buildSynchronized(n *parser.Node, owner BlockInfo, scope *Scope) *Statement {
	st := NewStatement(b.gen, n, n.StartLine, n.EndLine, StmtSynchronized)
	st.SetCondition(b.buildExpression(n.Condition, scope))
	inner := NewScope(st, scope)
	b.buildBody(n.Body, st, inner)
	return st
}

func (b *Builder) buildLabeled(n *parser.Node, owner BlockInfo, scope *Scope) *Statement {
	if len(n.Body) == 0 {
		return nil
	}
	inner := b.buildStatement(n.Body[0], owner, scope)
	if inner != nil {
		inner.Label = n.Label
	}
	return inner
}

// buildExpression translates an expression node, recursing into children in
// source order; a child that translates to nil is left out of the parent's
// Children.
func (b *Builder) buildExpression(n *parser.Node, scope *Scope) ProgramElement {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case parser.KindLambdaExpression:
		return b.buildLambda(n, scope)
	case parser.KindSimpleName:
		return b.buildSimpleName(n, scope)
	case parser.KindThisExpression:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprThis)
		e.SetText("this")
		return e
	case parser.KindNumberLiteral:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprNumber)
		e.SetText(toString(n.Value))
		return e
	case parser.KindStringLiteral:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprString)
		e.SetText(toString(n.Value))
		return e
	case parser.KindCharacterLiteral:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprCharacter)
		e.SetText(toString(n.Value))
		return e
	case parser.KindBooleanLiteral:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprBoolean)
		if v, ok := n.Value.(bool); ok && v {
			e.SetText("true")
		} else {
			e.SetText("false")
		}
		return e
	case parser.KindNullLiteral:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprNull)
		e.SetText("null")
		return e
	case parser.KindTypeLiteral:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprTypeLiteral)
		e.SetText(toString(n.Value))
		return e
	case parser.KindParenthesizedExpression:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprParenthesized)
		if inner := b.buildExpression(n.Left, scope); inner != nil {
			e.AddChild(inner)
			e.SetText("(" + inner.Text() + ")")
		}
		return e
	case parser.KindAssignment:
		return b.buildBinaryLike(n, scope, ExprAssignment)
	case parser.KindInfixExpression:
		return b.buildBinaryLike(n, scope, ExprInfix)
	case parser.KindInstanceofExpression:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprInstanceof)
		if left := b.buildExpression(n.Left, scope); left != nil {
			e.AddChild(left)
		}
		if n.Type != nil {
			typ := NewType(b.gen, n.Type, n.Type.StartLine, n.Type.EndLine, n.Type.Name, 0)
			e.AddChild(typ)
		}
		return e
	case parser.KindPrefixExpression:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprPrefix)
		op := NewOperator(b.gen, n, n.StartLine, n.EndLine, n.Operator)
		e.AddChild(op)
		if operand := b.buildExpression(n.Left, scope); operand != nil {
			e.AddChild(operand)
		}
		return e
	case parser.KindPostfixExpression:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprPostfix)
		if operand := b.buildExpression(n.Left, scope); operand != nil {
			e.AddChild(operand)
		}
		e.AddChild(NewOperator(b.gen, n, n.StartLine, n.EndLine, n.Operator))
		return e
	case parser.KindMethodInvocation, parser.KindSuperMethodInvocation:
		return b.buildMethodInvocation(n, scope)
	case parser.KindConstructorInvocation, parser.KindSuperConstructorInvocation:
		return b.buildArgumentCarrying(n, scope, categoryFor(n.Kind))
	case parser.KindClassInstanceCreation:
		return b.buildClassInstanceCreation(n, scope)
	case parser.KindFieldAccess, parser.KindSuperFieldAccess:
		return b.buildFieldAccess(n, scope)
	case parser.KindArrayAccess:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprArrayAccess)
		if arr := b.buildExpression(n.Left, scope); arr != nil {
			e.AddChild(arr)
		}
		if idx := b.buildExpression(n.Index, scope); idx != nil {
			e.AddChild(idx)
		}
		return e
	case parser.KindArrayCreation:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprArrayCreation)
		if n.Type != nil {
			e.AddChild(NewType(b.gen, n.Type, n.Type.StartLine, n.Type.EndLine, n.Type.Name, 1))
		}
		if n.Right != nil {
			if init := b.buildExpression(n.Right, scope); init != nil {
				e.AddChild(init)
			}
		}
		return e
	case parser.KindArrayInitializer:
		return b.buildArgumentCarrying(n, scope, ExprArrayInitializer)
	case parser.KindCastExpression:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprCast)
		if n.Type != nil {
			e.AddChild(NewType(b.gen, n.Type, n.Type.StartLine, n.Type.EndLine, n.Type.Name, 0))
		}
		if v := b.buildExpression(n.Left, scope); v != nil {
			e.AddChild(v)
		}
		return e
	case parser.KindConditionalExpression:
		e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprTrinomial)
		if cond := b.buildExpression(n.Condition, scope); cond != nil {
			e.AddChild(cond)
		}
		if then := b.buildExpression(n.Left, scope); then != nil {
			e.AddChild(then)
		}
		if els := b.buildExpression(n.Right, scope); els != nil {
			e.AddChild(els)
		}
		return e
	case parser.KindQualifiedName:
		return b.buildQualifiedName(n, scope)
	default:
		// unsupported expression production: produce nothing, so the
		// caller leaves it out.
		return nil
	}
}

func categoryFor(kind parser.NodeKind) ExpressionCategory {
	switch kind {
	case parser.KindConstructorInvocation:
		return ExprConstructorInvocation
	case parser.KindSuperConstructorInvocation:
		return ExprSuperConstructorInvocation
	default:
		return ExprConstructorInvocation
	}
}

func (b *Builder) buildSimpleName(n *parser.Node, scope *Scope) *Expression {
	e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprSimpleName)
	e.SetText(n.Name)
	if v := scope.SearchVariable(n.Name); v != nil {
		e.ResolvedAPIName = v.MainName
	} else if v := b.resolveFieldVar(n.Name); v != nil {
		// not a local or parameter: treat it as an implicit field reference
		// ("x" meaning "this.x") and join it with any "this.x" spelling of
		// the same field already seen in this method.
		e.ResolvedAPIName = v.MainName
	}
	return e
}

func (b *Builder) buildQualifiedName(n *parser.Node, scope *Scope) *Expression {
	e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprQualifiedName)
	if q := b.buildExpression(n.Qualifier, scope); q != nil {
		e.Qualifier = q
		e.AddChild(q)
		e.SetText(q.Text() + "." + n.Name)
	} else {
		e.SetText(n.Name)
	}
	return e
}

func (b *Builder) buildBinaryLike(n *parser.Node, scope *Scope, category ExpressionCategory) *Expression {
	e := NewExpression(b.gen, n, n.StartLine, n.EndLine, category)
	if left := b.buildExpression(n.Left, scope); left != nil {
		e.AddChild(left)
	}
	if n.Operator != "" {
		e.AddChild(NewOperator(b.gen, n, n.StartLine, n.EndLine, n.Operator))
	}
	if right := b.buildExpression(n.Right, scope); right != nil {
		e.AddChild(right)
	}
	return e
}

func (b *Builder) buildArgumentCarrying(n *parser.Node, scope *Scope, category ExpressionCategory) *Expression {
	e := NewExpression(b.gen, n, n.StartLine, n.EndLine, category)
	for _, arg := range n.Arguments {
		if v := b.buildExpression(arg, scope); v != nil {
			e.AddChild(v)
		}
	}
	return e
}

func (b *Builder) buildMethodInvocation(n *parser.Node, scope *Scope) *Expression {
	category := ExprMethodInvocation
	if n.Kind == parser.KindSuperMethodInvocation {
		category = ExprSuperMethodInvocation
	}
	e := NewExpression(b.gen, n, n.StartLine, n.EndLine, category)
	e.ResolvedAPIName = n.ResolvedQualifierType
	if n.Qualifier != nil {
		if q := b.buildExpression(n.Qualifier, scope); q != nil {
			e.Qualifier = q
			e.AddChild(q)
		}
	}
	op := NewOperator(b.gen, n, n.StartLine, n.EndLine, n.Name)
	e.AddChild(op)
	for _, arg := range n.Arguments {
		if v := b.buildExpression(arg, scope); v != nil {
			e.AddChild(v)
		}
	}
	return e
}

func (b *Builder) buildClassInstanceCreation(n *parser.Node, scope *Scope) *Expression {
	e := NewExpression(b.gen, n, n.StartLine, n.EndLine, ExprClassInstanceCreation)
	if n.Type != nil {
		e.AddChild(NewType(b.gen, n.Type, n.Type.StartLine, n.Type.EndLine, n.Type.Name, 0))
	}
	for _, arg := range n.Arguments {
		if v := b.buildExpression(arg, scope); v != nil {
			e.AddChild(v)
		}
	}
	if n.AnonymousBody != nil {
		anon := NewClass(b.gen, n.AnonymousBody, n.AnonymousBody.StartLine, n.AnonymousBody.EndLine, "")
		for _, m := range n.AnonymousBody.Methods {
			if method := b.BuildMethod(m); method != nil {
				anon.AddMethod(method)
			}
		}
		e.AnonymousBody = anon
	}
	return e
}

func (b *Builder) buildFieldAccess(n *parser.Node, scope *Scope) *Expression {
	category := ExprFieldAccess
	if n.Kind == parser.KindSuperFieldAccess {
		category = ExprSuperFieldAccess
	}
	e := NewExpression(b.gen, n, n.StartLine, n.EndLine, category)
	if n.Qualifier != nil {
		if q := b.buildExpression(n.Qualifier, scope); q != nil {
			e.Qualifier = q
			e.AddChild(q)
		}
	}
	e.SetText(n.Name)
	if category == ExprFieldAccess {
		if q, ok := e.Qualifier.(*Expression); ok && q.Category == ExprThis {
			if v := b.resolveFieldVar(n.Name); v != nil {
				v.AddAlias("this." + n.Name)
				e.ResolvedAPIName = v.MainName
			}
		}
	}
	return e
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
