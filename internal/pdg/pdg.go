// Package pdg builds the per-method program dependence graph: the CFG's
// nodes overlaid with a synthetic method-enter node and one node per
// parameter, connected by control, data and execution dependence edges.
package pdg

import (
	"fmt"

	"github.com/go-pdg/jpdg/internal/cfg"
	"github.com/go-pdg/jpdg/internal/pe"
)

// Kind discriminates a PDG node's origin.
type Kind int

const (
	// KindMethodEnter is the synthetic predicate standing in for "the
	// method was invoked", the root every top-level control/data/execution
	// dependence ultimately traces back to.
	KindMethodEnter Kind = iota
	// KindParameter is one formal parameter, the data-dependence source for
	// every use its value reaches; its only incoming edge is the enter
	// node's control edge, added when ControlDependenceFromEnterToParameterNodes
	// is set.
	KindParameter
	// KindCFG mirrors one CFG node (control, statement, break, continue, or
	// switch-case).
	KindCFG
)

func (k Kind) String() string {
	switch k {
	case KindMethodEnter:
		return "MethodEnter"
	case KindParameter:
		return "Parameter"
	case KindCFG:
		return "CFG"
	default:
		return "Unknown"
	}
}

// EdgeKind discriminates the PDG's three edge layers.
type EdgeKind int

const (
	EdgeControl EdgeKind = iota
	EdgeData
	EdgeExecution
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeControl:
		return "control"
	case EdgeData:
		return "data"
	case EdgeExecution:
		return "execution"
	default:
		return "unknown"
	}
}

// Node is one PDG node: either the synthetic enter node, a parameter node,
// or an overlay of one CFG node.
type Node struct {
	ID       int64
	NodeKind Kind
	PE       pe.ProgramElement // nil only for the enter node
	CFGNode  *cfg.Node         // nil for enter/parameter nodes

	Successors   []*Edge
	Predecessors []*Edge
}

// Edge is a directed dependence edge. Label is "true"/"false" for a control
// edge into an if branch or loop body and empty for the other control edges
// (from the enter node, a switch, a case or a try), a variable name for a
// data edge, and empty for an execution edge.
type Edge struct {
	From  *Node
	To    *Node
	Kind  EdgeKind
	Label string
}

func (n *Node) addEdge(to *Node, kind EdgeKind, label string) *Edge {
	e := &Edge{From: n, To: to, Kind: kind, Label: label}
	n.Successors = append(n.Successors, e)
	to.Predecessors = append(to.Predecessors, e)
	return e
}

func (n *Node) String() string {
	if n.PE != nil {
		return fmt.Sprintf("[%s#%d]", n.NodeKind, n.PE.ID())
	}
	return fmt.Sprintf("[%s]", n.NodeKind)
}

// PDG is one method's program dependence graph.
type PDG struct {
	Method         *pe.Method
	CFG            *cfg.CFG
	EnterNode      *Node
	ParameterNodes []*Node
	Nodes          []*Node
}

// EdgesOfKind returns every edge of the given kind across all nodes.
func (g *PDG) EdgesOfKind(kind EdgeKind) []*Edge {
	var out []*Edge
	for _, n := range g.Nodes {
		for _, e := range n.Successors {
			if e.Kind == kind {
				out = append(out, e)
			}
		}
	}
	return out
}
