// Package reporter renders CFGs and PDGs as Graphviz DOT, the graph-emission
// collaborator spec.md §6 describes in prose and leaves out of the core's
// scope. This is the reference implementation a complete repo ships: node
// label is the backing PE's text with embedded quotes escaped, shape is
// diamond for control nodes and ellipse otherwise, fill is aquamarine for a
// method's entry, deeppink for its exit, white otherwise, and edge labels
// carry each edge's dependence string.
package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdg/jpdg/internal/cfg"
	"github.com/go-pdg/jpdg/internal/pdg"
	"github.com/go-pdg/jpdg/internal/pe"
)

// DotReporter renders one or more method graphs into a single DOT document,
// one subgraph cluster per method, numbered in the order given.
type DotReporter struct{}

// NewDotReporter returns a DotReporter. It carries no state.
func NewDotReporter() *DotReporter {
	return &DotReporter{}
}

// CFGCluster names one method's CFG for WriteCFGs.
type CFGCluster struct {
	Label string
	Graph *cfg.CFG
}

// PDGCluster names one method's PDG for WritePDGs.
type PDGCluster struct {
	Label string
	Graph *pdg.PDG
}

// WriteCFGs renders clusters as "digraph CFG { subgraph cluster0 {...} ... }".
func (r *DotReporter) WriteCFGs(w io.Writer, clusters []CFGCluster) error {
	if _, err := fmt.Fprintln(w, "digraph CFG {"); err != nil {
		return err
	}
	for i, c := range clusters {
		if err := r.writeCFGCluster(w, i, c.Label, c.Graph); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// WritePDGs renders clusters as "digraph PDG { subgraph cluster0 {...} ... }".
func (r *DotReporter) WritePDGs(w io.Writer, clusters []PDGCluster) error {
	if _, err := fmt.Fprintln(w, "digraph PDG {"); err != nil {
		return err
	}
	for i, c := range clusters {
		if err := r.writePDGCluster(w, i, c.Label, c.Graph); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

func (r *DotReporter) writeCFGCluster(w io.Writer, idx int, label string, g *cfg.CFG) error {
	if g == nil {
		return nil
	}
	fmt.Fprintf(w, "subgraph cluster%d {\n", idx)
	fmt.Fprintf(w, "label = %q;\n", label)

	nodes := g.AllNodes()
	ids := make(map[int64]int, len(nodes))
	for i, n := range nodes {
		ids[n.ID] = i
	}
	for i, n := range nodes {
		fill := "white"
		switch n {
		case g.Entry:
			fill = "aquamarine"
		case g.Exit:
			fill = "deeppink"
		}
		shape := "ellipse"
		if n.NodeKind == cfg.KindControl {
			shape = "diamond"
		}
		fmt.Fprintf(w, "%d.%d [style = filled, label = %q, fillcolor = %s, shape = %s];\n",
			idx, i, nodeText(n.PE, n.Label), fill, shape)
	}
	for _, n := range nodes {
		for _, e := range n.Successors {
			fmt.Fprintf(w, "%d.%d -> %d.%d [style = solid, label = %q];\n",
				idx, ids[n.ID], idx, ids[e.To.ID], e.Label.String())
		}
	}
	fmt.Fprintln(w, "}")
	return nil
}

func (r *DotReporter) writePDGCluster(w io.Writer, idx int, label string, g *pdg.PDG) error {
	if g == nil {
		return nil
	}
	fmt.Fprintf(w, "subgraph cluster%d {\n", idx)
	fmt.Fprintf(w, "label = %q;\n", label)

	nodes := g.Nodes
	ids := make(map[int64]int, len(nodes))
	for i, n := range nodes {
		ids[n.ID] = i
	}
	for i, n := range nodes {
		fill := "white"
		if n == g.EnterNode {
			fill = "aquamarine"
		}
		shape := "ellipse"
		if n.NodeKind == pdg.KindCFG && n.CFGNode != nil && n.CFGNode.NodeKind == cfg.KindControl {
			shape = "diamond"
		}
		fmt.Fprintf(w, "%d.%d [style = filled, label = %q, fillcolor = %s, shape = %s];\n",
			idx, i, pdgNodeText(n), fill, shape)
	}
	for _, n := range nodes {
		for _, e := range n.Successors {
			fmt.Fprintf(w, "%d.%d -> %d.%d [style = solid, label = %q];\n",
				idx, ids[n.ID], idx, ids[e.To.ID], dependenceString(e))
		}
	}
	fmt.Fprintln(w, "}")
	return nil
}

func nodeText(p pe.ProgramElement, fallback string) string {
	if p == nil {
		return escapeLabel(fallback)
	}
	return escapeLabel(p.Text())
}

func pdgNodeText(n *pdg.Node) string {
	if n.NodeKind == pdg.KindMethodEnter {
		return "Enter"
	}
	if n.PE != nil {
		return escapeLabel(n.PE.Text())
	}
	return escapeLabel(n.String())
}

func dependenceString(e *pdg.Edge) string {
	switch e.Kind {
	case pdg.EdgeData:
		return e.Label
	case pdg.EdgeExecution:
		return ""
	default: // EdgeControl
		return e.Label
	}
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
