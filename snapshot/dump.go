package snapshot

import (
	"fmt"
	"strings"
)

// Dump renders g as a Graphviz dot digraph for debugging, labeling each
// node with its kind, full id, and the first four bytes of its Merkle
// hash, and each edge with its kind, its key in brackets when it has
// one, and a trailing "*" for a default Use edge. A ValueSubscription
// edge's path is not shown.
func (g *Graph) Dump() string {
	var b strings.Builder
	b.WriteString("digraph wsgraph {\n")
	b.WriteString("  node [shape=box, fontname=\"monospace\"];\n")

	for _, idx := range g.Nodes() {
		w, err := g.NodeWeight(idx)
		if err != nil {
			continue
		}
		merkle := w.MerkleHash()
		label := fmt.Sprintf("%s\\n%s\\n%x", w.Kind(), w.ID(), merkle[:4])
		root := ""
		if g.hasRoot && idx == g.root {
			root = ", style=filled, fillcolor=lightgray"
		}
		fmt.Fprintf(&b, "  n%d [label=%q%s];\n", idx, label, root)
	}

	for _, idx := range g.Nodes() {
		for _, e := range g.OutgoingEdges(idx) {
			edge := g.edges[e]
			label := edge.kind.Discriminant.String()
			if edge.kind.HasKey {
				label += fmt.Sprintf("[%s]", edge.kind.Key)
			}
			if edge.kind.Discriminant.String() == "Use" && edge.kind.IsDefault {
				label += "*"
			}
			fmt.Fprintf(&b, "  n%d -> n%d [label=%q];\n", idx, edge.target, label)
		}
	}

	b.WriteString("}\n")
	return b.String()
}
