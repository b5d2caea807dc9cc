package cfg

import "github.com/go-pdg/jpdg/internal/pe"

// dangling is an edge whose source node is fixed but whose target isn't
// known yet; builder functions hand these up to their caller, which
// connects them once it knows what comes next.
type dangling struct {
	node  *Node
	label EdgeLabel
}

func connect(d dangling, to *Node) {
	if d.node == nil || to == nil {
		return
	}
	d.node.addSuccessor(to, d.label)
}

// frag is the sub-CFG built for one statement or block: an entry point
// plus its normal ("falls through to whatever comes next") exits. Entry is
// nil only for an empty statement list.
type frag struct {
	entry *Node
	exits []dangling
}

// frame tracks one enclosing loop or switch's jump targets while building
// its body, so nested break/continue statements can resolve against it —
// or, for a labeled jump, against an outer frame found by label.
type frame struct {
	label          string
	isLoop         bool
	continueTarget *Node
	breaks         []dangling
}

// Builder builds one method's CFG by walking its PE statement tree,
// composing each statement kind's sub-CFG in turn (spec.md's per-statement-
// kind composition), and connecting fragments by the control-flow rules
// for sequencing, branching, looping, jumps and (approximated) exceptions.
type Builder struct {
	factory *Factory
	stack   []*frame
	toExit  []dangling // returns/throws and unmatched labeled jumps, connected to Exit at the end
}

// NewBuilder returns a fresh per-method builder.
func NewBuilder() *Builder {
	return &Builder{factory: NewFactory()}
}

// Build constructs method's CFG.
func (b *Builder) Build(method *pe.Method) *CFG {
	b.factory = NewFactory()
	b.stack = nil
	b.toExit = nil
	g := &CFG{Method: method}
	g.Entry = b.factory.MakePseudoNode("entry")
	g.Exit = b.factory.MakePseudoNode("exit")

	var bodyFrag frag
	if method.ExpressionBody != nil {
		node := b.factory.MakeStatementNode(method.ExpressionBody)
		bodyFrag = frag{entry: node, exits: []dangling{{node, EdgeUnlabeled}}}
	} else {
		bodyFrag = b.buildBlock(method.Body)
	}

	if bodyFrag.entry == nil {
		g.Entry.addSuccessor(g.Exit, EdgeUnlabeled)
	} else {
		g.Entry.addSuccessor(bodyFrag.entry, EdgeUnlabeled)
		for _, d := range bodyFrag.exits {
			connect(d, g.Exit)
		}
	}
	for _, d := range b.toExit {
		connect(d, g.Exit)
	}

	g.Nodes = b.factory.AllNodes()
	g.NormalByPE = b.factory.NormalTable()
	g.ControlByPE = b.factory.ControlTable()
	return g
}

func (b *Builder) ensureNonEmpty(f frag, label string) frag {
	if f.entry != nil {
		return f
	}
	p := b.factory.MakePseudoNode(label)
	return frag{entry: p, exits: []dangling{{p, EdgeUnlabeled}}}
}

// buildBlock chains a sequence of statements: each one's normal exits
// become the next one's predecessors. A statement whose predecessors are
// all consumed elsewhere (after an unconditional break/continue/return)
// still gets built — its nodes simply end up unreachable from Entry,
// matching CFG.UnreachableNodes.
func (b *Builder) buildBlock(stmts []*pe.Statement) frag {
	var entry *Node
	var prevExits []dangling
	first := true
	for _, s := range stmts {
		sf := b.buildStatement(s)
		if sf.entry == nil {
			continue
		}
		if first {
			entry = sf.entry
			first = false
		} else {
			for _, d := range prevExits {
				connect(d, sf.entry)
			}
		}
		prevExits = sf.exits
	}
	return frag{entry: entry, exits: prevExits}
}

func (b *Builder) pushFrame(label string, isLoop bool, continueTarget *Node) *frame {
	f := &frame{label: label, isLoop: isLoop, continueTarget: continueTarget}
	b.stack = append(b.stack, f)
	return f
}

func (b *Builder) popFrame() *frame {
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return f
}

// findBreakFrame returns the frame an (optionally labeled) break resolves
// against: the innermost frame when label is empty, else the nearest frame
// (loop or switch) carrying that label.
func (b *Builder) findBreakFrame(label string) *frame {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if label == "" || b.stack[i].label == label {
			return b.stack[i]
		}
	}
	return nil
}

// findLoopFrame is findBreakFrame restricted to loop frames, since continue
// never targets a bare switch.
func (b *Builder) findLoopFrame(label string) *frame {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if !b.stack[i].isLoop {
			continue
		}
		if label == "" || b.stack[i].label == label {
			return b.stack[i]
		}
	}
	return nil
}

func (b *Builder) buildStatement(s *pe.Statement) frag {
	if s == nil {
		return frag{}
	}
	switch s.Category {
	case pe.StmtSimpleBlock:
		return b.buildBlock(s.Statements)
	case pe.StmtExpression, pe.StmtVariableDeclaration, pe.StmtAssert, pe.StmtEmpty, pe.StmtTypeDeclaration:
		node := b.factory.MakeStatementNode(s)
		return frag{entry: node, exits: []dangling{{node, EdgeUnlabeled}}}
	case pe.StmtBreak:
		node := b.factory.MakeBreakNode(s)
		if f := b.findBreakFrame(s.Label); f != nil {
			f.breaks = append(f.breaks, dangling{node, EdgeUnlabeled})
		} else {
			b.toExit = append(b.toExit, dangling{node, EdgeUnlabeled})
		}
		return frag{entry: node, exits: nil}
	case pe.StmtContinue:
		node := b.factory.MakeContinueNode(s)
		if f := b.findLoopFrame(s.Label); f != nil {
			connect(dangling{node, EdgeUnlabeled}, f.continueTarget)
		} else {
			b.toExit = append(b.toExit, dangling{node, EdgeUnlabeled})
		}
		return frag{entry: node, exits: nil}
	case pe.StmtReturn, pe.StmtThrow:
		node := b.factory.MakeStatementNode(s)
		b.toExit = append(b.toExit, dangling{node, EdgeUnlabeled})
		return frag{entry: node, exits: nil}
	case pe.StmtIf:
		return b.buildIf(s)
	case pe.StmtWhile:
		return b.buildWhile(s)
	case pe.StmtDo:
		return b.buildDo(s)
	case pe.StmtFor:
		return b.buildFor(s)
	case pe.StmtForeach:
		return b.buildForeach(s)
	case pe.StmtSwitch:
		return b.buildSwitch(s)
	case pe.StmtTry:
		return b.buildTry(s)
	case pe.StmtSynchronized:
		return b.buildSynchronized(s)
	default:
		node := b.factory.MakeStatementNode(s)
		return frag{entry: node, exits: []dangling{{node, EdgeUnlabeled}}}
	}
}

// predicatePE is the PE a control node keys and wraps: always the
// statement itself (not its Condition sub-expression), so the PDG builder
// can resolve a control node by statement identity regardless of whether
// that statement's predicate is a real boolean expression (If/While/...) or
// just a structural marker (Try/Synchronized have no boolean condition).
func (b *Builder) predicatePE(s *pe.Statement) pe.ProgramElement {
	return s
}

func (b *Builder) buildIf(s *pe.Statement) frag {
	cond := b.factory.MakeControlNode(b.predicatePE(s))
	thenFrag := b.ensureNonEmpty(b.buildBlock(s.Statements), "then")
	cond.addSuccessor(thenFrag.entry, EdgeTrue)

	var elseExits []dangling
	if len(s.ElseStatements) > 0 {
		elseFrag := b.ensureNonEmpty(b.buildBlock(s.ElseStatements), "else")
		cond.addSuccessor(elseFrag.entry, EdgeFalse)
		elseExits = elseFrag.exits
	} else {
		elseExits = []dangling{{cond, EdgeFalse}}
	}

	exits := append(append([]dangling{}, thenFrag.exits...), elseExits...)
	return frag{entry: cond, exits: exits}
}

func (b *Builder) buildWhile(s *pe.Statement) frag {
	cond := b.factory.MakeControlNode(b.predicatePE(s))
	f := b.pushFrame(s.Label, true, cond)
	bodyFrag := b.ensureNonEmpty(b.buildBlock(s.Statements), "while-body")
	b.popFrame()

	cond.addSuccessor(bodyFrag.entry, EdgeTrue)
	for _, d := range bodyFrag.exits {
		connect(d, cond)
	}

	exits := append([]dangling{{cond, EdgeFalse}}, f.breaks...)
	return frag{entry: cond, exits: exits}
}

func (b *Builder) buildDo(s *pe.Statement) frag {
	cond := b.factory.MakeControlNode(b.predicatePE(s))
	f := b.pushFrame(s.Label, true, cond)
	bodyFrag := b.ensureNonEmpty(b.buildBlock(s.Statements), "do-body")
	b.popFrame()

	for _, d := range bodyFrag.exits {
		connect(d, cond)
	}
	cond.addSuccessor(bodyFrag.entry, EdgeTrue)

	exits := append([]dangling{{cond, EdgeFalse}}, f.breaks...)
	return frag{entry: bodyFrag.entry, exits: exits}
}

func (b *Builder) buildFor(s *pe.Statement) frag {
	cond := b.factory.MakeControlNode(b.predicatePE(s))
	update := b.factory.MakePseudoNode("for-update")

	f := b.pushFrame(s.Label, true, update)
	bodyFrag := b.ensureNonEmpty(b.buildBlock(s.Statements), "for-body")
	b.popFrame()

	cond.addSuccessor(bodyFrag.entry, EdgeTrue)
	for _, d := range bodyFrag.exits {
		connect(d, update)
	}
	update.addSuccessor(cond, EdgeUnlabeled)

	// The PE initializer list isn't modeled as its own CFG node (it has no
	// independent control behavior); the condition node is the loop's true
	// entry point, matching a for-loop with its init already run.
	exits := append([]dangling{{cond, EdgeFalse}}, f.breaks...)
	return frag{entry: cond, exits: exits}
}

func (b *Builder) buildForeach(s *pe.Statement) frag {
	cond := b.factory.MakeControlNode(b.predicatePE(s))
	f := b.pushFrame(s.Label, true, cond)
	bodyFrag := b.ensureNonEmpty(b.buildBlock(s.Statements), "foreach-body")
	b.popFrame()

	cond.addSuccessor(bodyFrag.entry, EdgeTrue)
	for _, d := range bodyFrag.exits {
		connect(d, cond)
	}

	exits := append([]dangling{{cond, EdgeFalse}}, f.breaks...)
	return frag{entry: cond, exits: exits}
}

func (b *Builder) buildSwitch(s *pe.Statement) frag {
	cond := b.factory.MakeControlNode(b.predicatePE(s))
	f := b.pushFrame(s.Label, false, nil)

	var fallthroughExits []dangling
	hasDefault := false
	for _, caseStmt := range s.Statements {
		caseNode := b.factory.MakeSwitchCaseNode(caseStmt, caseStmt.Label)
		if caseStmt.Label == "default" {
			hasDefault = true
		}
		cond.addSuccessor(caseNode, EdgeUnlabeled)
		for _, d := range fallthroughExits {
			connect(d, caseNode)
		}
		bodyFrag := b.buildBlock(caseStmt.Statements)
		if bodyFrag.entry == nil {
			fallthroughExits = []dangling{{caseNode, EdgeUnlabeled}}
		} else {
			caseNode.addSuccessor(bodyFrag.entry, EdgeUnlabeled)
			fallthroughExits = bodyFrag.exits
		}
	}
	b.popFrame()

	exits := append([]dangling{}, fallthroughExits...)
	exits = append(exits, f.breaks...)
	if !hasDefault {
		exits = append(exits, dangling{cond, EdgeUnlabeled})
	}
	return frag{entry: cond, exits: exits}
}

func (b *Builder) buildTry(s *pe.Statement) frag {
	tryNode := b.factory.MakeControlNode(b.predicatePE(s))
	bodyFrag := b.ensureNonEmpty(b.buildBlock(s.Statements), "try-body")
	tryNode.addSuccessor(bodyFrag.entry, EdgeUnlabeled)
	exits := append([]dangling{}, bodyFrag.exits...)

	for _, c := range s.CatchClauses {
		catchFrag := b.ensureNonEmpty(b.buildBlock(c.Statements), "catch-body")
		// Coarse approximation (no alias/type analysis to know which
		// statement can actually throw which exception): any point inside
		// the try may transfer control to a matching catch, modeled as a
		// single unlabeled edge from the try's entry.
		tryNode.addSuccessor(catchFrag.entry, EdgeUnlabeled)
		exits = append(exits, catchFrag.exits...)
	}

	entry := tryNode
	if s.FinallyBlock != nil {
		finallyFrag := b.ensureNonEmpty(b.buildBlock(s.FinallyBlock.Statements), "finally-body")
		for _, d := range exits {
			connect(d, finallyFrag.entry)
		}
		exits = finallyFrag.exits
	}
	return frag{entry: entry, exits: exits}
}

func (b *Builder) buildSynchronized(s *pe.Statement) frag {
	monitor := b.factory.MakeControlNode(b.predicatePE(s))
	bodyFrag := b.ensureNonEmpty(b.buildBlock(s.Statements), "sync-body")
	monitor.addSuccessor(bodyFrag.entry, EdgeUnlabeled)
	return frag{entry: monitor, exits: bodyFrag.exits}
}
