package pdg

import (
	"github.com/go-pdg/jpdg/internal/cfg"
	"github.com/go-pdg/jpdg/internal/pe"
)

// Config selects which dependence layers Build computes and a couple of
// construction-detail knobs the original tinypdg/propertygraph library
// exposed as booleans.
type Config struct {
	BuildControlDependence   bool
	BuildDataDependence      bool
	BuildExecutionDependence bool

	// ControlDependenceFromEnterToAllNodes adds a control-dependence edge
	// from the method-enter node to every node in the graph, not just its
	// direct top-level children. Off by default: it makes "depends on
	// entering the method" explicit for deeply nested nodes, at the cost of
	// a much denser graph that duplicates information already recoverable
	// by walking the control-dependence edges transitively.
	ControlDependenceFromEnterToAllNodes bool

	// ControlDependenceFromEnterToParameterNodes adds a control-dependence
	// edge from the enter node to each parameter node. On by default: a
	// parameter's very existence is conditioned on the method having been
	// entered, and downstream data-dependence edges read more naturally
	// when every parameter node has at least one incoming edge.
	ControlDependenceFromEnterToParameterNodes bool

	// AvoidDefPropagationWhenBuildingDataDependence stops the data-
	// dependence walk from continuing past a node that DEFs (not just MAY_DEF
	// or USEs) the variable being tracked — a later node's use of that
	// variable is sourced from this def, not from anything further back, so
	// propagating past it would manufacture a spurious long-range edge.
	AvoidDefPropagationWhenBuildingDataDependence bool
}

// DefaultConfig mirrors the original library's usual defaults.
func DefaultConfig() Config {
	return Config{
		BuildControlDependence:                        true,
		BuildDataDependence:                           true,
		BuildExecutionDependence:                      true,
		ControlDependenceFromEnterToAllNodes:          false,
		ControlDependenceFromEnterToParameterNodes:    true,
		AvoidDefPropagationWhenBuildingDataDependence: true,
	}
}

// Builder builds one method's PDG from its already-built CFG.
type Builder struct {
	config  Config
	factory *Factory
	defuse  *pe.DefUseAnalyzer
	cfgG    *cfg.CFG
}

// NewBuilder returns a Builder using config and defuse (the def/use
// analyzer supplying each expression's variable defs/uses for the
// data-dependence layer).
func NewBuilder(config Config, defuse *pe.DefUseAnalyzer) *Builder {
	return &Builder{config: config, factory: NewFactory(), defuse: defuse}
}

// Build constructs the PDG for method over its CFG g.
func (b *Builder) Build(method *pe.Method, g *cfg.CFG) *PDG {
	b.cfgG = g
	out := &PDG{Method: method, CFG: g}

	// Overlay every CFG node up front so data/execution dependence can find
	// a node for any PE the control-dependence walk didn't reach (e.g. an
	// unreachable statement after a return, still worth reporting edges for
	// if it references variables).
	for _, n := range g.Nodes {
		if n.NodeKind != cfg.KindPseudo {
			b.factory.MakeNode(n)
		}
	}

	out.EnterNode = b.factory.MakeEnterNode()
	for _, param := range method.Parameters {
		pn := b.factory.MakeParameterNode(param)
		out.ParameterNodes = append(out.ParameterNodes, pn)
		if b.config.BuildControlDependence && b.config.ControlDependenceFromEnterToParameterNodes {
			out.EnterNode.addEdge(pn, EdgeControl, "")
		}
	}

	var body []*pe.Statement
	if method.ExpressionBody == nil {
		body = method.Body
	}
	b.buildControlChain(body, out.EnterNode, "", nil)

	if method.ExpressionBody != nil {
		if n := b.resolveExpr(method.ExpressionBody); n != nil {
			out.EnterNode.addEdge(n, EdgeControl, "")
		}
	}

	if b.config.BuildControlDependence && b.config.ControlDependenceFromEnterToAllNodes {
		for _, n := range b.factory.AllNodes() {
			if n == out.EnterNode || n.NodeKind == KindParameter {
				continue
			}
			out.EnterNode.addEdge(n, EdgeControl, "")
		}
	}

	if b.config.BuildDataDependence {
		b.buildDataDependence(out)
	}

	out.Nodes = b.factory.AllNodes()
	return out
}

// resolveExpr overlays a bare expression PE (a lambda's expression body)
// onto its CFG statement node — the CFG builder treats an expression-bodied
// lambda's single statement node as wrapping the expression directly.
func (b *Builder) resolveExpr(e pe.ProgramElement) *Node {
	cn := b.cfgG.NormalByPE[e.ID()]
	if cn == nil {
		return nil
	}
	return b.factory.MakeNode(cn)
}

// resolveNode finds the CFG node overlaying s and returns the corresponding
// PDG node, or nil if s never got a CFG node of its own (true for
// StmtSimpleBlock and StmtCatch, which are transparent in the CFG).
func (b *Builder) resolveNode(s *pe.Statement) *Node {
	var cn *cfg.Node
	if s.Category.HasLoopOrBranchNature() && s.Category != pe.StmtSimpleBlock {
		cn = b.cfgG.ControlByPE[s.ID()]
	} else {
		cn = b.cfgG.NormalByPE[s.ID()]
	}
	if cn == nil {
		return nil
	}
	return b.factory.MakeNode(cn)
}

// buildControlChain walks a statement list under a fixed controller/label,
// adding a control-dependence edge from controller to each statement's node
// and an execution-dependence edge from the previous statement's node,
// recursing into each branch/loop/switch/try construct with itself as the
// new controller. Returns the last node processed, so callers composing
// several such calls in sequence (a nested simple block's statements, or a
// switch case's body before the next case label) can keep chaining
// execution dependence across the boundary. A branch, loop body, try body,
// catch or finally block starts a fresh chain.
func (b *Builder) buildControlChain(stmts []*pe.Statement, controller *Node, label string, prev *Node) *Node {
	for _, s := range stmts {
		if s == nil {
			continue
		}
		if s.Category == pe.StmtSimpleBlock {
			prev = b.buildControlChain(s.Statements, controller, label, prev)
			continue
		}
		node := b.resolveNode(s)
		if node == nil {
			continue
		}
		if b.config.BuildControlDependence {
			controller.addEdge(node, EdgeControl, label)
		}
		if b.config.BuildExecutionDependence && prev != nil {
			prev.addEdge(node, EdgeExecution, "")
		}
		prev = node

		switch s.Category {
		case pe.StmtIf:
			b.buildControlChain(s.Statements, node, "true", nil)
			if len(s.ElseStatements) > 0 {
				b.buildControlChain(s.ElseStatements, node, "false", nil)
			}
		case pe.StmtWhile, pe.StmtDo, pe.StmtFor, pe.StmtForeach, pe.StmtSynchronized:
			b.buildControlChain(s.Statements, node, "true", nil)
		case pe.StmtSwitch:
			var casePrev *Node
			for _, caseStmt := range s.Statements {
				caseNode := b.resolveNode(caseStmt)
				if caseNode == nil {
					continue
				}
				if b.config.BuildControlDependence {
					node.addEdge(caseNode, EdgeControl, "")
				}
				if b.config.BuildExecutionDependence && casePrev != nil {
					casePrev.addEdge(caseNode, EdgeExecution, "")
				}
				casePrev = b.buildControlChain(caseStmt.Statements, caseNode, "", caseNode)
			}
		case pe.StmtTry:
			b.buildControlChain(s.Statements, node, "", nil)
			for _, c := range s.CatchClauses {
				b.buildControlChain(c.Statements, node, "", nil)
			}
			if s.FinallyBlock != nil {
				b.buildControlChain(s.FinallyBlock.Statements, node, "", nil)
			}
		}
	}
	return prev
}

// buildDataDependence walks the CFG forward from each def site (every
// MAY_DEF-or-stronger def, and each parameter from the CFG entry),
// connecting it to every reachable use of the same variable. When
// AvoidDefPropagationWhenBuildingDataDependence is set (the common case),
// the walk along a path stops after a node that DEFs the variable again at
// DEF level or stronger, that node's own uses still being connected; a
// MAY_DEF never stops it, since the variable might still hold its old
// value. When it is unset, the walk continues through redefinitions.
func (b *Builder) buildDataDependence(g *PDG) {
	for _, param := range g.Method.Parameters {
		b.propagateDef(g, nil, param.Name, g.factoryNodeForParam(param))
	}
	for _, n := range b.factory.AllNodes() {
		if n.NodeKind != KindCFG {
			continue
		}
		for _, ex := range cfgNodeExpressions(n.CFGNode) {
			for _, d := range b.defuse.AllDefs(ex) {
				if d.Level < pe.DefMayDef {
					continue
				}
				b.propagateDef(g, n.CFGNode, d.Name, n)
			}
		}
	}
}

// cfgNodeExpressions returns every expression directly reachable from n's
// PE that the def/use analyzer should inspect: the PE itself if it already
// is an expression (an expression-bodied lambda's sole statement node), or
// a statement's condition/expression-list/initializers/updaters otherwise.
func cfgNodeExpressions(n *cfg.Node) []*pe.Expression {
	switch p := n.PE.(type) {
	case *pe.Expression:
		return []*pe.Expression{p}
	case *pe.Statement:
		var out []*pe.Expression
		add := func(x pe.ProgramElement) {
			if ex, ok := x.(*pe.Expression); ok {
				out = append(out, ex)
			}
		}
		add(p.Condition)
		for _, e := range p.Expressions {
			add(e)
		}
		for _, e := range p.Initializers {
			add(e)
		}
		for _, e := range p.Updaters {
			add(e)
		}
		return out
	default:
		return nil
	}
}

// factoryNodeForParam returns the parameter node for v, used only as the
// data-dependence walk's synthetic starting point (parameters have no CFG
// node of their own to start a forward walk from; the walk instead starts
// at the method's CFG entry and uses the parameter's PDG node as the edge
// source).
func (g *PDG) factoryNodeForParam(v *pe.Variable) *Node {
	for _, n := range g.ParameterNodes {
		if n.PE == v {
			return n
		}
	}
	return nil
}

// propagateDef walks forward from defSite (nil meaning "start at the CFG
// entry", used for parameters) looking for uses of name, stopping along
// each path at a node that DEFs name again (when configured to) or when
// the CFG itself ends.
func (b *Builder) propagateDef(g *PDG, defSite *cfg.Node, name string, defNode *Node) {
	if defNode == nil {
		return
	}
	start := defSite
	if start == nil {
		start = g.CFG.Entry
	}
	visited := make(map[int64]bool)
	var walk func(n *cfg.Node)
	walk = func(n *cfg.Node) {
		for _, edge := range n.Successors {
			next := edge.To
			if visited[next.ID] {
				continue
			}
			visited[next.ID] = true
			if next.PE != nil {
				for _, ex := range cfgNodeExpressions(next) {
					for _, u := range b.defuse.AllUses(ex) {
						if u.Name == name && u.Level >= pe.UseMayUse {
							pn := b.factory.MakeNode(next)
							defNode.addEdge(pn, EdgeData, name)
						}
					}
				}
				if b.config.AvoidDefPropagationWhenBuildingDataDependence && redefines(b.defuse, next, name) {
					continue
				}
			}
			walk(next)
		}
	}
	walk(start)
}

// redefines reports whether n's PE issues a DEF (or stronger) of name,
// which — absent aliasing information this core doesn't model — is taken
// as killing the definition propagate is currently tracking.
func redefines(analyzer *pe.DefUseAnalyzer, n *cfg.Node, name string) bool {
	for _, ex := range cfgNodeExpressions(n) {
		for _, d := range analyzer.AllDefs(ex) {
			if d.Name == name && d.Level >= pe.DefDef {
				return true
			}
		}
	}
	return false
}
