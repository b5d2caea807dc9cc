package cfg

import (
	"sort"
	"sync/atomic"

	"github.com/go-pdg/jpdg/internal/pe"
)

// idCounter allocates CFG node ids, kept separate from the PE id space
// since a node's identity is (factory-local kind-bucket, PE id), not the PE
// id alone.
type idCounter struct{ n atomic.Int64 }

func (c *idCounter) next() int64 { return c.n.Add(1) }

// Factory creates CFG nodes, coalescing by (bucket, PE id): calling the
// same Make* method twice for the same PE returns the same *Node both
// times, matching the rule that a PE maps to at most one normal-shaped node
// and at most one control node.
type Factory struct {
	ids     idCounter
	normal  map[int64]*Node // keyed by PE id: Statement/Break/Continue/SwitchCase
	control map[int64]*Node // keyed by PE id: Control
	pseudos []*Node
}

// NewFactory returns an empty node factory.
func NewFactory() *Factory {
	return &Factory{
		normal:  make(map[int64]*Node),
		control: make(map[int64]*Node),
	}
}

func (f *Factory) makeNormal(p pe.ProgramElement, kind Kind, label string) *Node {
	if p != nil {
		if existing, ok := f.normal[p.ID()]; ok {
			return existing
		}
	}
	n := &Node{ID: f.ids.next(), NodeKind: kind, PE: p, Label: label}
	if p != nil {
		f.normal[p.ID()] = n
	}
	return n
}

// MakeStatementNode returns (creating if needed) the statement node for p.
func (f *Factory) MakeStatementNode(p pe.ProgramElement) *Node {
	return f.makeNormal(p, KindStatement, "")
}

// MakeBreakNode returns the break node for p.
func (f *Factory) MakeBreakNode(p pe.ProgramElement) *Node {
	return f.makeNormal(p, KindBreak, "")
}

// MakeContinueNode returns the continue node for p.
func (f *Factory) MakeContinueNode(p pe.ProgramElement) *Node {
	return f.makeNormal(p, KindContinue, "")
}

// MakeSwitchCaseNode returns the switch-case node for p (a StmtCase
// Statement), labeled with its case text ("default" for the default case).
func (f *Factory) MakeSwitchCaseNode(p pe.ProgramElement, label string) *Node {
	n := f.makeNormal(p, KindSwitchCase, label)
	n.Label = label
	return n
}

// MakeControlNode returns (creating if needed) the control node for p, a
// predicate-bearing PE (an If/While/Do/For/Foreach/Switch/Try/
// Synchronized's Statement, whose predicate expression p itself stands in
// for).
func (f *Factory) MakeControlNode(p pe.ProgramElement) *Node {
	if p != nil {
		if existing, ok := f.control[p.ID()]; ok {
			return existing
		}
	}
	n := &Node{ID: f.ids.next(), NodeKind: KindControl, PE: p}
	if p != nil {
		f.control[p.ID()] = n
	}
	return n
}

// MakePseudoNode returns a fresh placeholder node with no backing PE;
// pseudo nodes are never coalesced since there is no PE id to key on.
func (f *Factory) MakePseudoNode(label string) *Node {
	n := &Node{ID: f.ids.next(), NodeKind: KindPseudo, Label: label}
	f.pseudos = append(f.pseudos, n)
	return n
}

// GetNode returns the normal node for PE id id, if one exists.
func (f *Factory) GetNode(id int64) *Node {
	return f.normal[id]
}

// RemoveNode drops n from the factory's coalescing tables, allowing a later
// Make* call for the same PE to mint a fresh node. It does not touch edges
// that reference n. Nothing in this package calls it: Builder never
// replaces a node it has created, and the trims in trim.go edit the built
// graph's edges directly.
func (f *Factory) RemoveNode(n *Node) {
	if n == nil || n.PE == nil {
		return
	}
	switch n.NodeKind {
	case KindControl:
		delete(f.control, n.PE.ID())
	default:
		delete(f.normal, n.PE.ID())
	}
}

// NormalTable returns the factory's PE-id-keyed normal-node map.
func (f *Factory) NormalTable() map[int64]*Node { return f.normal }

// ControlTable returns the factory's PE-id-keyed control-node map.
func (f *Factory) ControlTable() map[int64]*Node { return f.control }

// AllNodes returns every node this factory has ever minted, in creation
// order.
func (f *Factory) AllNodes() []*Node {
	out := make([]*Node, 0, len(f.normal)+len(f.control)+len(f.pseudos))
	seen := make(map[int64]bool)
	add := func(n *Node) {
		if !seen[n.ID] {
			seen[n.ID] = true
			out = append(out, n)
		}
	}
	for _, n := range f.normal {
		add(n)
	}
	for _, n := range f.control {
		add(n)
	}
	for _, n := range f.pseudos {
		add(n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
