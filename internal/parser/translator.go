package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Translator walks a tree-sitter Java concrete-syntax tree and produces the
// abstract Node shape internal/pe's builder consumes. Field names below
// follow tree-sitter-java's published grammar; any CST shape this
// translator doesn't recognize degrades to a nil Node rather than a panic,
// so the builder's safe-stack can skip it and keep processing siblings.
type Translator struct {
	src []byte
}

// NewTranslator returns a Translator over source, used to slice out literal
// and identifier text by byte range.
func NewTranslator(source []byte) *Translator {
	return &Translator{src: source}
}

func (t *Translator) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(t.src)
}

func pos(n *sitter.Node) (startLine, startCol, endLine, endCol int) {
	sp := n.StartPoint()
	ep := n.EndPoint()
	return int(sp.Row) + 1, int(sp.Column), int(ep.Row) + 1, int(ep.Column)
}

func setPos(dst *Node, n *sitter.Node) {
	dst.StartLine, dst.StartCol, dst.EndLine, dst.EndCol = pos(n)
}

// Translate converts the compilation unit rooted at root into a
// KindCompilationUnit Node holding one KindClassDeclaration per top-level
// type declaration.
func (t *Translator) Translate(root *sitter.Node) *Node {
	unit := NewNode(KindCompilationUnit)
	if root == nil {
		return unit
	}
	setPos(unit, root)
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration":
			if cls := t.translateClass(child); cls != nil {
				cls.Parent = unit
				unit.Methods = append(unit.Methods, cls)
			}
		}
	}
	return unit
}

func (t *Translator) translateClass(n *sitter.Node) *Node {
	cls := NewNode(KindClassDeclaration)
	setPos(cls, n)
	if name := n.ChildByFieldName("name"); name != nil {
		cls.Name = t.text(name)
	}
	body := n.ChildByFieldName("body")
	if body == nil {
		return cls
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		switch member.Type() {
		case "method_declaration", "constructor_declaration":
			if m := t.translateMethod(member); m != nil {
				m.Parent = cls
				cls.Methods = append(cls.Methods, m)
			}
		case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration":
			if nested := t.translateClass(member); nested != nil {
				nested.Parent = cls
				cls.Methods = append(cls.Methods, nested)
			}
		}
	}
	return cls
}

func (t *Translator) translateMethod(n *sitter.Node) *Node {
	m := NewNode(KindMethodDeclaration)
	setPos(m, n)
	if name := n.ChildByFieldName("name"); name != nil {
		m.Name = t.text(name)
	} else {
		m.Name = "<init>"
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			p := params.NamedChild(i)
			if p.Type() != "formal_parameter" && p.Type() != "spread_parameter" {
				continue
			}
			param := NewNode(KindParameter)
			setPos(param, p)
			if pname := p.ChildByFieldName("name"); pname != nil {
				param.Name = t.text(pname)
			}
			if ptype := p.ChildByFieldName("type"); ptype != nil {
				param.Type = t.translateType(ptype)
			}
			param.Parent = m
			m.Parameters = append(m.Parameters, param)
		}
	}
	if body := n.ChildByFieldName("body"); body != nil && body.Type() == "block" {
		for _, stmt := range t.translateBlockStatements(body) {
			stmt.Parent = m
			m.Body = append(m.Body, stmt)
		}
	}
	return m
}

func (t *Translator) translateType(n *sitter.Node) *Node {
	if n == nil {
		return nil
	}
	typ := NewNode(KindTypeNode)
	setPos(typ, n)
	typ.Name = t.text(n)
	return typ
}

// translateBlockStatements returns the direct statement children of a
// "block" CST node, translated.
func (t *Translator) translateBlockStatements(block *sitter.Node) []*Node {
	var out []*Node
	for i := 0; i < int(block.NamedChildCount()); i++ {
		if s := t.translateStatement(block.NamedChild(i)); s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (t *Translator) translateBlock(n *sitter.Node) *Node {
	blk := NewNode(KindBlock)
	if n == nil {
		return blk
	}
	setPos(blk, n)
	if n.Type() != "block" {
		// a single non-block statement standing in for a body, e.g. `if (x) foo();`
		if s := t.translateStatement(n); s != nil {
			s.Parent = blk
			blk.Body = append(blk.Body, s)
		}
		return blk
	}
	for _, s := range t.translateBlockStatements(n) {
		s.Parent = blk
		blk.Body = append(blk.Body, s)
	}
	return blk
}

func (t *Translator) translateStatement(n *sitter.Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "block":
		return t.translateBlock(n)
	case "if_statement":
		return t.translateIf(n)
	case "while_statement":
		return t.translateWhile(n)
	case "do_statement":
		return t.translateDo(n)
	case "for_statement":
		return t.translateFor(n)
	case "enhanced_for_statement":
		return t.translateForeach(n)
	case "switch_statement", "switch_expression":
		return t.translateSwitch(n)
	case "try_statement", "try_with_resources_statement":
		return t.translateTry(n)
	case "break_statement":
		return t.translateBreakContinue(n, KindBreakStatement)
	case "continue_statement":
		return t.translateBreakContinue(n, KindContinueStatement)
	case "return_statement":
		return t.translateReturn(n)
	case "throw_statement":
		return t.translateThrow(n)
	case "assert_statement":
		return t.translateAssert(n)
	case "expression_statement":
		return t.translateExpressionStatement(n)
	case "local_variable_declaration":
		return t.translateLocalVarDecl(n)
	case ";", "empty_statement":
		s := NewNode(KindEmptyStatement)
		setPos(s, n)
		return s
	case "synchronized_statement":
		return t.translateSynchronized(n)
	case "labeled_statement":
		return t.translateLabeled(n)
	case "local_class_declaration", "class_declaration", "interface_declaration", "enum_declaration":
		s := NewNode(KindLocalTypeDeclStatement)
		setPos(s, n)
		return s
	default:
		// Unsupported statement-level production: no Node, lets the
		// safe-stack discipline skip it.
		return nil
	}
}

func (t *Translator) translateIf(n *sitter.Node) *Node {
	s := NewNode(KindIfStatement)
	setPos(s, n)
	s.Condition = t.translateExpression(n.ChildByFieldName("condition"))
	consequence := n.ChildByFieldName("consequence")
	thenBlock := t.translateBlock(consequence)
	s.Body = thenBlock.Body
	if consequence != nil {
		s.ThenEndLine, _, _, _ = lineOf(consequence.EndPoint())
	}
	if alt := n.ChildByFieldName("alternative"); alt != nil {
		elseBlock := t.translateBlock(alt)
		s.ElseBody = elseBlock.Body
		s.ElseStartLine, _, _, _ = lineOf(alt.StartPoint())
	}
	return s
}

func lineOf(p sitter.Point) (int, int, int, int) {
	return int(p.Row) + 1, 0, 0, 0
}

func (t *Translator) translateWhile(n *sitter.Node) *Node {
	s := NewNode(KindWhileStatement)
	setPos(s, n)
	s.Condition = t.translateExpression(n.ChildByFieldName("condition"))
	s.Body = t.translateBlock(n.ChildByFieldName("body")).Body
	return s
}

func (t *Translator) translateDo(n *sitter.Node) *Node {
	s := NewNode(KindDoStatement)
	setPos(s, n)
	s.Condition = t.translateExpression(n.ChildByFieldName("condition"))
	s.Body = t.translateBlock(n.ChildByFieldName("body")).Body
	return s
}

func (t *Translator) translateFor(n *sitter.Node) *Node {
	s := NewNode(KindForStatement)
	setPos(s, n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "local_variable_declaration":
			s.Initializers = append(s.Initializers, t.translateLocalVarDecl(child))
		case "update_expression", "assignment_expression", "method_invocation":
			// Disambiguated below via field names where possible; tree-sitter
			// exposes for(;;) clauses as anonymous named children sharing no
			// field name, so fall back to expression-statement position
			// relative to condition/body to classify updaters.
		}
	}
	if cond := n.ChildByFieldName("condition"); cond != nil {
		s.Condition = t.translateExpression(cond)
	}
	// updaters appear after the condition's ';' and before the body; tree-sitter
	// grammar names them "update" (possibly several, as repeated anonymous children).
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.IsNamed() {
			continue
		}
		if isUpdateExprType(child.Type()) && child != n.ChildByFieldName("condition") {
			// heuristically: updaters sit strictly after the condition and
			// strictly before the body in source order.
			body := n.ChildByFieldName("body")
			if body != nil && child.StartByte() < body.StartByte() {
				cond := n.ChildByFieldName("condition")
				if cond == nil || child.StartByte() > cond.EndByte() {
					s.Updaters = append(s.Updaters, t.translateExpression(child))
				}
			}
		}
	}
	s.Body = t.translateBlock(n.ChildByFieldName("body")).Body
	return s
}

func isUpdateExprType(tpe string) bool {
	switch tpe {
	case "update_expression", "assignment_expression", "method_invocation":
		return true
	default:
		return false
	}
}

func (t *Translator) translateForeach(n *sitter.Node) *Node {
	s := NewNode(KindForeachStatement)
	setPos(s, n)
	param := NewNode(KindParameter)
	if name := n.ChildByFieldName("name"); name != nil {
		param.Name = t.text(name)
	}
	if typ := n.ChildByFieldName("type"); typ != nil {
		param.Type = t.translateType(typ)
	}
	s.Initializers = append(s.Initializers, param)
	if value := n.ChildByFieldName("value"); value != nil {
		s.Initializers = append(s.Initializers, t.translateExpression(value))
	}
	s.Body = t.translateBlock(n.ChildByFieldName("body")).Body
	return s
}

func (t *Translator) translateSwitch(n *sitter.Node) *Node {
	s := NewNode(KindSwitchStatement)
	setPos(s, n)
	s.Condition = t.translateExpression(n.ChildByFieldName("condition"))
	body := n.ChildByFieldName("body")
	if body == nil {
		return s
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		group := body.NamedChild(i)
		if group.Type() != "switch_block_statement_group" && group.Type() != "switch_rule" {
			continue
		}
		c := NewNode(KindSwitchCase)
		setPos(c, group)
		for j := 0; j < int(group.ChildCount()); j++ {
			child := group.Child(j)
			if child == nil {
				continue
			}
			switch child.Type() {
			case "switch_label":
				if t.text(child) == "default" {
					c.Label = "default"
				} else if child.NamedChildCount() > 0 {
					c.Condition = t.translateExpression(child.NamedChild(0))
				}
			default:
				if stmt := t.translateStatement(child); stmt != nil {
					c.Body = append(c.Body, stmt)
				}
			}
		}
		s.Body = append(s.Body, c)
	}
	return s
}

func (t *Translator) translateTry(n *sitter.Node) *Node {
	s := NewNode(KindTryStatement)
	setPos(s, n)
	body := n.ChildByFieldName("body")
	s.Body = t.translateBlock(body).Body
	if body != nil {
		s.TryBodyEndLine, _, _, _ = lineOf(body.EndPoint())
	}
	firstCatchSeen := false
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "catch_clause" {
			continue
		}
		if !firstCatchSeen {
			s.FirstCatchStartLine, _, _, _ = lineOf(child.StartPoint())
			firstCatchSeen = true
		}
		cc := NewNode(KindCatchClause)
		setPos(cc, child)
		if param := child.ChildByFieldName("parameter"); param != nil {
			p := NewNode(KindParameter)
			setPos(p, param)
			if name := param.ChildByFieldName("name"); name != nil {
				p.Name = t.text(name)
			}
			if typ := param.ChildByFieldName("type"); typ != nil {
				p.Type = t.translateType(typ)
			}
			cc.Parameters = append(cc.Parameters, p)
		}
		if cbody := child.ChildByFieldName("body"); cbody != nil {
			cc.Body = t.translateBlock(cbody).Body
		}
		s.Catches = append(s.Catches, cc)
	}
	if fin := n.ChildByFieldName("finally"); fin != nil {
		fbody := fin.ChildByFieldName("body")
		if fbody == nil {
			fbody = fin
		}
		s.Finally = t.translateBlock(fbody).Body
	} else {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child.Type() == "finally_clause" {
				if fbody := child.ChildByFieldName("body"); fbody != nil {
					s.Finally = t.translateBlock(fbody).Body
				}
			}
		}
	}
	return s
}

func (t *Translator) translateBreakContinue(n *sitter.Node, kind NodeKind) *Node {
	s := NewNode(kind)
	setPos(s, n)
	if label := n.ChildByFieldName("label"); label != nil {
		s.Label = t.text(label)
	} else if n.NamedChildCount() > 0 {
		s.Label = t.text(n.NamedChild(0))
	}
	return s
}

func (t *Translator) translateReturn(n *sitter.Node) *Node {
	s := NewNode(KindReturnStatement)
	setPos(s, n)
	if n.NamedChildCount() > 0 {
		s.Condition = t.translateExpression(n.NamedChild(0))
	}
	return s
}

func (t *Translator) translateThrow(n *sitter.Node) *Node {
	s := NewNode(KindThrowStatement)
	setPos(s, n)
	if n.NamedChildCount() > 0 {
		s.Condition = t.translateExpression(n.NamedChild(0))
	}
	return s
}

func (t *Translator) translateAssert(n *sitter.Node) *Node {
	s := NewNode(KindAssertStatement)
	setPos(s, n)
	if n.NamedChildCount() > 0 {
		s.Condition = t.translateExpression(n.NamedChild(0))
	}
	if n.NamedChildCount() > 1 {
		s.Initializers = append(s.Initializers, t.translateExpression(n.NamedChild(1)))
	}
	return s
}

func (t *Translator) translateExpressionStatement(n *sitter.Node) *Node {
	s := NewNode(KindExpressionStatement)
	setPos(s, n)
	if n.NamedChildCount() > 0 {
		s.Condition = t.translateExpression(n.NamedChild(0))
	}
	return s
}

func (t *Translator) translateLocalVarDecl(n *sitter.Node) *Node {
	s := NewNode(KindVariableDeclStatement)
	setPos(s, n)
	typ := n.ChildByFieldName("type")
	s.Type = t.translateType(typ)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		frag := NewNode(KindVariableDeclarationFragment)
		setPos(frag, child)
		if name := child.ChildByFieldName("name"); name != nil {
			frag.Name = t.text(name)
		}
		frag.Type = s.Type
		if value := child.ChildByFieldName("value"); value != nil {
			frag.Condition = t.translateExpression(value)
		}
		s.Initializers = append(s.Initializers, frag)
	}
	return s
}

func (t *Translator) translateSynchronized(n *sitter.Node) *Node {
	s := NewNode(KindSynchronizedStatement)
	setPos(s, n)
	if lock := n.ChildByFieldName("lock"); lock != nil {
		s.Condition = t.translateExpression(lock)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		s.Body = t.translateBlock(body).Body
	}
	return s
}

func (t *Translator) translateLabeled(n *sitter.Node) *Node {
	s := NewNode(KindLabeledStatement)
	setPos(s, n)
	if label := n.ChildByFieldName("label"); label != nil {
		s.Label = t.text(label)
	}
	if stmt := n.ChildByFieldName("statement"); stmt != nil {
		if inner := t.translateStatement(stmt); inner != nil {
			s.Body = append(s.Body, inner)
		}
	}
	return s
}

// translateExpression dispatches on the CST expression node's type,
// returning nil for productions this core doesn't model (the safe-stack
// tolerates the resulting gap).
func (t *Translator) translateExpression(n *sitter.Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "parenthesized_expression":
		if n.NamedChildCount() > 0 {
			inner := t.translateExpression(n.NamedChild(0))
			wrap := NewNode(KindParenthesizedExpression)
			setPos(wrap, n)
			wrap.Left = inner
			return wrap
		}
		return nil
	case "assignment_expression":
		e := NewNode(KindAssignment)
		setPos(e, n)
		e.Left = t.translateExpression(n.ChildByFieldName("left"))
		e.Right = t.translateExpression(n.ChildByFieldName("right"))
		if op := n.ChildByFieldName("operator"); op != nil {
			e.Operator = t.text(op)
		}
		return e
	case "binary_expression":
		e := NewNode(KindInfixExpression)
		setPos(e, n)
		e.Left = t.translateExpression(n.ChildByFieldName("left"))
		e.Right = t.translateExpression(n.ChildByFieldName("right"))
		if op := n.ChildByFieldName("operator"); op != nil {
			e.Operator = t.text(op)
		}
		return e
	case "instanceof_expression":
		e := NewNode(KindInstanceofExpression)
		setPos(e, n)
		e.Left = t.translateExpression(n.ChildByFieldName("left"))
		if typ := n.ChildByFieldName("right"); typ != nil {
			e.Type = t.translateType(typ)
		}
		return e
	case "unary_expression":
		e := NewNode(KindPrefixExpression)
		setPos(e, n)
		if op := n.ChildByFieldName("operator"); op != nil {
			e.Operator = t.text(op)
		}
		e.Left = t.translateExpression(n.ChildByFieldName("operand"))
		return e
	case "update_expression":
		e := NewNode(KindPostfixExpression)
		setPos(e, n)
		e.Operator = t.text(n)
		if n.NamedChildCount() > 0 {
			e.Left = t.translateExpression(n.NamedChild(0))
		}
		return e
	case "method_invocation":
		e := NewNode(KindMethodInvocation)
		setPos(e, n)
		if name := n.ChildByFieldName("name"); name != nil {
			e.Name = t.text(name)
		}
		if obj := n.ChildByFieldName("object"); obj != nil {
			if obj.Type() == "super" {
				e.Kind = KindSuperMethodInvocation
			} else {
				e.Qualifier = t.translateExpression(obj)
			}
		}
		if args := n.ChildByFieldName("arguments"); args != nil {
			for i := 0; i < int(args.NamedChildCount()); i++ {
				e.AddArgument(t.translateExpression(args.NamedChild(i)))
			}
		}
		return e
	case "explicit_constructor_invocation":
		e := NewNode(KindConstructorInvocation)
		setPos(e, n)
		if constructor := n.ChildByFieldName("constructor"); constructor != nil && t.text(constructor) == "super" {
			e.Kind = KindSuperConstructorInvocation
		}
		if args := n.ChildByFieldName("arguments"); args != nil {
			for i := 0; i < int(args.NamedChildCount()); i++ {
				e.AddArgument(t.translateExpression(args.NamedChild(i)))
			}
		}
		return e
	case "object_creation_expression":
		e := NewNode(KindClassInstanceCreation)
		setPos(e, n)
		if typ := n.ChildByFieldName("type"); typ != nil {
			e.Type = t.translateType(typ)
			e.Name = e.Type.Name
		}
		if args := n.ChildByFieldName("arguments"); args != nil {
			for i := 0; i < int(args.NamedChildCount()); i++ {
				e.AddArgument(t.translateExpression(args.NamedChild(i)))
			}
		}
		if body := n.ChildByFieldName("body"); body != nil {
			anon := NewNode(KindAnonymousClassBody)
			setPos(anon, body)
			for i := 0; i < int(body.NamedChildCount()); i++ {
				member := body.NamedChild(i)
				if member.Type() == "method_declaration" || member.Type() == "constructor_declaration" {
					if m := t.translateMethod(member); m != nil {
						m.Parent = anon
						anon.Methods = append(anon.Methods, m)
					}
				}
			}
			e.AnonymousBody = anon
		}
		return e
	case "field_access":
		e := NewNode(KindFieldAccess)
		setPos(e, n)
		if field := n.ChildByFieldName("field"); field != nil {
			e.Name = t.text(field)
		}
		if obj := n.ChildByFieldName("object"); obj != nil {
			if obj.Type() == "super" {
				e.Kind = KindSuperFieldAccess
			} else {
				e.Qualifier = t.translateExpression(obj)
			}
		}
		return e
	case "array_access":
		e := NewNode(KindArrayAccess)
		setPos(e, n)
		e.Left = t.translateExpression(n.ChildByFieldName("array"))
		e.Index = t.translateExpression(n.ChildByFieldName("index"))
		return e
	case "array_creation_expression":
		e := NewNode(KindArrayCreation)
		setPos(e, n)
		if typ := n.ChildByFieldName("type"); typ != nil {
			e.Type = t.translateType(typ)
		}
		if value := n.ChildByFieldName("value"); value != nil {
			e.Right = t.translateExpression(value)
		}
		return e
	case "array_initializer":
		e := NewNode(KindArrayInitializer)
		setPos(e, n)
		for i := 0; i < int(n.NamedChildCount()); i++ {
			e.AddArgument(t.translateExpression(n.NamedChild(i)))
		}
		return e
	case "cast_expression":
		e := NewNode(KindCastExpression)
		setPos(e, n)
		if typ := n.ChildByFieldName("type"); typ != nil {
			e.Type = t.translateType(typ)
		}
		e.Left = t.translateExpression(n.ChildByFieldName("value"))
		return e
	case "ternary_expression":
		e := NewNode(KindConditionalExpression)
		setPos(e, n)
		e.Condition = t.translateExpression(n.ChildByFieldName("condition"))
		e.Left = t.translateExpression(n.ChildByFieldName("consequence"))
		e.Right = t.translateExpression(n.ChildByFieldName("alternative"))
		return e
	case "lambda_expression":
		e := NewNode(KindLambdaExpression)
		setPos(e, n)
		e.IsLambda = true
		params := n.ChildByFieldName("parameters")
		if params != nil {
			switch params.Type() {
			case "formal_parameters":
				for i := 0; i < int(params.NamedChildCount()); i++ {
					p := params.NamedChild(i)
					param := NewNode(KindParameter)
					setPos(param, p)
					if pname := p.ChildByFieldName("name"); pname != nil {
						param.Name = t.text(pname)
					} else {
						param.Name = t.text(p)
					}
					if ptype := p.ChildByFieldName("type"); ptype != nil {
						param.Type = t.translateType(ptype)
					}
					e.Parameters = append(e.Parameters, param)
				}
			case "identifier":
				param := NewNode(KindParameter)
				setPos(param, params)
				param.Name = t.text(params)
				e.Parameters = append(e.Parameters, param)
			}
		}
		if body := n.ChildByFieldName("body"); body != nil {
			if body.Type() == "block" {
				e.Body = t.translateBlock(body).Body
			} else {
				e.ExpressionBody = t.translateExpression(body)
			}
		}
		return e
	case "this":
		e := NewNode(KindThisExpression)
		setPos(e, n)
		return e
	case "identifier":
		e := NewNode(KindSimpleName)
		setPos(e, n)
		e.Name = t.text(n)
		return e
	case "scoped_identifier", "scoped_type_identifier":
		e := NewNode(KindQualifiedName)
		setPos(e, n)
		if scope := n.ChildByFieldName("scope"); scope != nil {
			e.Qualifier = t.translateExpression(scope)
		}
		if name := n.ChildByFieldName("name"); name != nil {
			e.Name = t.text(name)
		} else {
			e.Name = t.text(n)
		}
		return e
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal",
		"binary_integer_literal", "decimal_floating_point_literal", "hex_floating_point_literal":
		e := NewNode(KindNumberLiteral)
		setPos(e, n)
		e.Value = t.text(n)
		return e
	case "string_literal", "text_block":
		e := NewNode(KindStringLiteral)
		setPos(e, n)
		e.Value = t.text(n)
		return e
	case "character_literal":
		e := NewNode(KindCharacterLiteral)
		setPos(e, n)
		e.Value = t.text(n)
		return e
	case "true", "false":
		e := NewNode(KindBooleanLiteral)
		setPos(e, n)
		e.Value = t.text(n) == "true"
		return e
	case "null_literal":
		e := NewNode(KindNullLiteral)
		setPos(e, n)
		return e
	case "class_literal":
		e := NewNode(KindTypeLiteral)
		setPos(e, n)
		e.Value = t.text(n)
		return e
	default:
		// Unsupported expression-level production: the caller's
		// safe-stack Pop will see nothing pushed for this subtree and
		// degrade gracefully.
		return nil
	}
}
