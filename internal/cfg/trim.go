package cfg

// RemoveSwitchCaseNodes splices every KindSwitchCase node out of g, connecting
// each of its predecessors directly to each of its successors (cross
// product), preserving the predecessor edge's label. Optional per spec.md's
// "out-of-scope trimming" section — callers that need a simpler shape for
// rendering may apply it, but the PDG builder must run against the
// untrimmed graph (see DESIGN.md's Open Question decision on this).
func RemoveSwitchCaseNodes(g *CFG) {
	trimByKind(g, KindSwitchCase)
}

// RemoveJumpNodes splices every KindBreak/KindContinue node out of g the same
// way RemoveSwitchCaseNodes does. Same untrimmed-for-PDG caveat applies.
func RemoveJumpNodes(g *CFG) {
	trimByKind(g, KindBreak, KindContinue)
}

func trimByKind(g *CFG, kinds ...Kind) {
	remove := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		remove[k] = true
	}

	var kept []*Node
	for _, n := range g.Nodes {
		if n == g.Entry || n == g.Exit || !remove[n.NodeKind] {
			kept = append(kept, n)
			continue
		}
		spliceNode(n)
		if n.PE != nil {
			delete(g.NormalByPE, n.PE.ID())
		}
	}
	g.Nodes = kept
}

// spliceNode detaches n from the graph, reconnecting each of its
// predecessors to each of its successors with the predecessor edge's
// original label.
func spliceNode(n *Node) {
	preds := n.Predecessors
	succs := n.Successors
	n.Predecessors = nil
	n.Successors = nil

	for _, pred := range preds {
		removeSuccessor(pred.From, n)
		for _, se := range succs {
			pred.From.addSuccessor(se.To, pred.Label)
		}
	}
	for _, se := range succs {
		removePredecessor(se.To, n)
	}
}

func removeSuccessor(n *Node, target *Node) {
	out := n.Successors[:0]
	for _, e := range n.Successors {
		if e.To != target {
			out = append(out, e)
		}
	}
	n.Successors = out
}

func removePredecessor(n *Node, source *Node) {
	out := n.Predecessors[:0]
	for _, e := range n.Predecessors {
		if e.From != source {
			out = append(out, e)
		}
	}
	n.Predecessors = out
}
