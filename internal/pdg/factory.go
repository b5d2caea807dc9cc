package pdg

import (
	"sync/atomic"

	"github.com/go-pdg/jpdg/internal/cfg"
	"github.com/go-pdg/jpdg/internal/pe"
)

type idCounter struct{ n atomic.Int64 }

func (c *idCounter) next() int64 { return c.n.Add(1) }

// Factory mints PDG nodes, coalescing overlay nodes one-to-one with their
// backing CFG node (by CFG node id) so the control/data/execution builders
// can each call MakeNode for the same CFG node and share one PDG node.
type Factory struct {
	ids    idCounter
	byCFG  map[int64]*Node
	nodes  []*Node
}

// NewFactory returns an empty node factory.
func NewFactory() *Factory {
	return &Factory{byCFG: make(map[int64]*Node)}
}

// MakeNode returns (creating if needed) the PDG node overlaying c.
func (f *Factory) MakeNode(c *cfg.Node) *Node {
	if existing, ok := f.byCFG[c.ID]; ok {
		return existing
	}
	n := &Node{ID: f.ids.next(), NodeKind: KindCFG, PE: c.PE, CFGNode: c}
	f.byCFG[c.ID] = n
	f.nodes = append(f.nodes, n)
	return n
}

// MakeEnterNode mints the method's single synthetic enter node.
func (f *Factory) MakeEnterNode() *Node {
	n := &Node{ID: f.ids.next(), NodeKind: KindMethodEnter}
	f.nodes = append(f.nodes, n)
	return n
}

// MakeParameterNode mints one parameter node.
func (f *Factory) MakeParameterNode(p pe.ProgramElement) *Node {
	n := &Node{ID: f.ids.next(), NodeKind: KindParameter, PE: p}
	f.nodes = append(f.nodes, n)
	return n
}

// AllNodes returns every minted node in creation order.
func (f *Factory) AllNodes() []*Node {
	return f.nodes
}
