package parser

import "fmt"

// NodeKind discriminates the AST productions this package recognizes. The
// set matches the PE categories of spec.md §3 one-for-one where a PE exists
// for the construct; a handful of purely structural kinds (CompilationUnit,
// ClassBody, Parameter, ...) have no direct PE analog and exist only to
// shape the tree the builder walks.
type NodeKind string

const (
	KindCompilationUnit   NodeKind = "CompilationUnit"
	KindClassDeclaration  NodeKind = "ClassDeclaration"
	KindAnonymousClassBody NodeKind = "AnonymousClassBody"
	KindMethodDeclaration NodeKind = "MethodDeclaration"
	KindLambdaExpression  NodeKind = "LambdaExpression"
	KindParameter         NodeKind = "Parameter"
	KindBlock             NodeKind = "Block"

	// statements
	KindIfStatement            NodeKind = "IfStatement"
	KindWhileStatement         NodeKind = "WhileStatement"
	KindDoStatement            NodeKind = "DoStatement"
	KindForStatement           NodeKind = "ForStatement"
	KindForeachStatement       NodeKind = "ForeachStatement"
	KindSwitchStatement        NodeKind = "SwitchStatement"
	KindSwitchCase             NodeKind = "SwitchCase"
	KindTryStatement           NodeKind = "TryStatement"
	KindCatchClause            NodeKind = "CatchClause"
	KindBreakStatement         NodeKind = "BreakStatement"
	KindContinueStatement      NodeKind = "ContinueStatement"
	KindReturnStatement        NodeKind = "ReturnStatement"
	KindThrowStatement         NodeKind = "ThrowStatement"
	KindAssertStatement        NodeKind = "AssertStatement"
	KindExpressionStatement    NodeKind = "ExpressionStatement"
	KindVariableDeclStatement  NodeKind = "VariableDeclarationStatement"
	KindEmptyStatement         NodeKind = "EmptyStatement"
	KindSynchronizedStatement  NodeKind = "SynchronizedStatement"
	KindLabeledStatement       NodeKind = "LabeledStatement"
	KindLocalTypeDeclStatement NodeKind = "LocalTypeDeclarationStatement"

	// expressions
	KindAssignment                  NodeKind = "Assignment"
	KindInfixExpression             NodeKind = "InfixExpression"
	KindPrefixExpression            NodeKind = "PrefixExpression"
	KindPostfixExpression           NodeKind = "PostfixExpression"
	KindMethodInvocation            NodeKind = "MethodInvocation"
	KindSuperMethodInvocation       NodeKind = "SuperMethodInvocation"
	KindClassInstanceCreation       NodeKind = "ClassInstanceCreation"
	KindConstructorInvocation       NodeKind = "ConstructorInvocation"
	KindSuperConstructorInvocation  NodeKind = "SuperConstructorInvocation"
	KindFieldAccess                 NodeKind = "FieldAccess"
	KindSuperFieldAccess            NodeKind = "SuperFieldAccess"
	KindArrayAccess                 NodeKind = "ArrayAccess"
	KindArrayCreation               NodeKind = "ArrayCreation"
	KindArrayInitializer            NodeKind = "ArrayInitializer"
	KindCastExpression              NodeKind = "CastExpression"
	KindInstanceofExpression        NodeKind = "InstanceofExpression"
	KindConditionalExpression       NodeKind = "ConditionalExpression" // ternary / Trinomial
	KindSimpleName                  NodeKind = "SimpleName"
	KindQualifiedName               NodeKind = "QualifiedName"
	KindThisExpression              NodeKind = "ThisExpression"
	KindNumberLiteral               NodeKind = "NumberLiteral"
	KindStringLiteral               NodeKind = "StringLiteral"
	KindCharacterLiteral            NodeKind = "CharacterLiteral"
	KindBooleanLiteral              NodeKind = "BooleanLiteral"
	KindNullLiteral                 NodeKind = "NullLiteral"
	KindTypeLiteral                 NodeKind = "TypeLiteral"
	KindParenthesizedExpression     NodeKind = "ParenthesizedExpression"
	KindVariableDeclarationFragment NodeKind = "VariableDeclarationFragment"
	KindVariableDeclarationExpr     NodeKind = "VariableDeclarationExpression"
	KindTypeNode                    NodeKind = "Type"
)

// Node is a generic AST node: a kind discriminant plus a bag of
// per-production fields, populated only for the productions that need
// them. This mirrors how a tree-sitter cursor-walk typically surfaces a
// concrete-syntax tree, generalized into the abstract shape the PE builder
// expects.
type Node struct {
	Kind NodeKind

	StartLine, StartCol int
	EndLine, EndCol      int

	Name  string // declared/referenced identifier, method/class name, label, literal text
	Value any    // literal value, when resolvable (bool/number text/string content)

	Modifiers []string

	Type *Node // declared type, cast target type, instanceof's RHS type

	// expression shape
	Operator  string // infix/prefix/postfix operator token
	Left      *Node
	Right     *Node
	Qualifier *Node   // a.b -> Qualifier=a for FieldAccess/MethodInvocation/QualifiedName
	Arguments []*Node // call arguments, array initializer elements
	Index     *Node   // ArrayAccess's index expression

	// ResolvedQualifierType is the best-effort qualified type name of
	// Qualifier's static type, used only for MethodInvocation. Empty when
	// the external parser could not resolve it; callers must treat empty
	// as "unknown", never as an error.
	ResolvedQualifierType string

	AnonymousBody *Node // ClassInstanceCreation's anonymous class body, if any

	// statement shape
	Condition    *Node
	Body         []*Node // main body (If-then/loop-body/Try-body/Block's own statements/...)
	ElseBody     []*Node
	Initializers []*Node // For's init list, Foreach's (param, iterable)
	Updaters     []*Node // For's updater list
	Catches      []*Node // Try's CatchClause nodes, in order
	Finally      []*Node // Try's finally body
	Label        string  // Break/Continue's target label, LabeledStatement's own label

	// If/Try per-branch end positions (spec.md §6)
	ThenEndLine         int
	ElseStartLine       int
	TryBodyEndLine      int
	FirstCatchStartLine int

	// method/class shape
	Parameters     []*Node
	Methods        []*Node
	IsLambda       bool
	ExpressionBody *Node // single-expression lambda body, nil for block-bodied lambdas/methods

	Parent *Node
}

// NewNode allocates a bare node of the given kind.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// AddArgument appends an argument/element and fixes up its Parent pointer.
func (n *Node) AddArgument(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	n.Arguments = append(n.Arguments, child)
}

// AddBody appends a statement to Body and fixes up its Parent pointer.
func (n *Node) AddBody(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	n.Body = append(n.Body, child)
}

// IsStatement reports whether this node's kind is one of the statement
// productions.
func (n *Node) IsStatement() bool {
	switch n.Kind {
	case KindIfStatement, KindWhileStatement, KindDoStatement, KindForStatement, KindForeachStatement,
		KindSwitchStatement, KindTryStatement, KindBreakStatement, KindContinueStatement,
		KindReturnStatement, KindThrowStatement, KindAssertStatement, KindExpressionStatement,
		KindVariableDeclStatement, KindEmptyStatement, KindSynchronizedStatement, KindLabeledStatement,
		KindLocalTypeDeclStatement, KindBlock, KindSwitchCase, KindCatchClause:
		return true
	default:
		return false
	}
}

// IsExpression reports whether this node's kind is one of the expression
// productions.
func (n *Node) IsExpression() bool {
	return !n.IsStatement() && n.Kind != KindCompilationUnit && n.Kind != KindClassDeclaration &&
		n.Kind != KindMethodDeclaration && n.Kind != KindParameter && n.Kind != KindTypeNode &&
		n.Kind != KindAnonymousClassBody
}

// String renders a short diagnostic form, not used by the builder.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Name != "" {
		return fmt.Sprintf("%s(%s)", n.Kind, n.Name)
	}
	return string(n.Kind)
}
