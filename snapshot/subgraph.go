package snapshot

import (
	"context"
	"log/slog"

	"github.com/arlojs/wsgraph/weight"
)

// Subgraph extracts the union of root's ancestors and descendants into a
// fresh Graph with its own node and edge indices, suitable for shipping
// a bounded slice of a large graph (for example, one component and
// everything that references or is referenced by it) without copying
// the whole thing. Every copied node is a Clone, so mutating the
// returned graph never affects g.
func (g *Graph) Subgraph(ctx context.Context, root NodeIndex) (_ *Graph, err error) {
	op := g.debugTrace(ctx, "wsgraph.snapshot.subgraph", slog.Int("root", int(root)))
	defer func() { op.End(err) }()

	if _, err := g.NodeWeight(root); err != nil {
		return nil, err
	}

	include := make(map[NodeIndex]struct{})
	var stack []NodeIndex

	stack = append(stack[:0], root)
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		if _, ok := include[cur]; ok {
			continue
		}
		include[cur] = struct{}{}
		stack = append(stack, g.Targets(cur)...)
	}

	visitedAnc := make(map[NodeIndex]struct{})
	stack = append(stack[:0], root)
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		if _, ok := visitedAnc[cur]; ok {
			continue
		}
		visitedAnc[cur] = struct{}{}
		include[cur] = struct{}{}
		stack = append(stack, g.Sources(cur)...)
	}

	sub := New()
	indexMap := make(map[NodeIndex]NodeIndex, len(include))
	for idx := range include {
		w, err := g.NodeWeight(idx)
		if err != nil {
			continue
		}
		indexMap[idx] = sub.insertNode(w.Clone())
	}
	for idx := range include {
		for _, e := range g.outgoing[idx] {
			edge := g.edges[e]
			if _, ok := include[edge.target]; !ok {
				continue
			}
			sub.AddEdge(ctx, indexMap[idx], indexMap[edge.target], edge.kind)
		}
	}
	if newRoot, ok := indexMap[root]; ok {
		sub.root = newRoot
		sub.hasRoot = true
	}
	for _, idx := range sub.Nodes() {
		sub.touched[idx] = struct{}{}
	}
	return sub, nil
}

// ImportComponentSubgraph copies componentIdx and everything reachable
// from it in other into g. A node g already has (matched first by
// identity id, then by lineage id, so a node that has since been given a
// new identity within g is still recognized as the same equivalent node
// rather than duplicated) is not copied; the existing node stands in for
// it. The traversal does not stop at such a node: its descendants that g
// lacks are copied as well, and its outgoing edges in other are added to
// the existing node in g. Edges are copied only after every node in the
// closure has been resolved to its index in g. After the copy, if the
// imported root is a Component or Func node and g has a Category node
// for that kind, the root is attached to it via a default Use edge;
// without such a Category node no edge is added.
func (g *Graph) ImportComponentSubgraph(ctx context.Context, other *Graph, componentIdx NodeIndex) (err error) {
	op := g.debugTrace(ctx, "wsgraph.snapshot.import_component_subgraph", slog.Int("component", int(componentIdx)))
	defer func() { op.End(err) }()

	visited := make(map[NodeIndex]bool)
	var order []NodeIndex
	var visit func(NodeIndex)
	visit = func(idx NodeIndex) {
		if visited[idx] {
			return
		}
		visited[idx] = true
		for _, c := range other.Targets(idx) {
			visit(c)
		}
		order = append(order, idx)
	}
	visit(componentIdx)

	indexMap := make(map[NodeIndex]NodeIndex, len(order))
	for _, idx := range order {
		w, err := other.NodeWeight(idx)
		if err != nil {
			return err
		}
		if existingIdx, err := g.NodeIndexByID(w.ID()); err == nil {
			indexMap[idx] = existingIdx
			continue
		}
		if matches := g.NodeIndicesByLineageID(w.LineageID()); len(matches) > 0 {
			indexMap[idx] = matches[0]
			continue
		}
		newIdx := g.insertNode(w.Clone())
		g.touched[newIdx] = struct{}{}
		indexMap[idx] = newIdx
	}

	for _, idx := range order {
		for _, e := range other.outgoing[idx] {
			edge := other.edges[e]
			target, ok := indexMap[edge.target]
			if !ok {
				continue
			}
			g.AddEdge(ctx, indexMap[idx], target, edge.kind)
		}
	}

	componentNewIdx := indexMap[componentIdx]
	w, err := g.NodeWeight(componentNewIdx)
	if err != nil {
		return nil
	}
	var categoryKind string
	switch w.Kind() {
	case weight.KindComponent:
		categoryKind = "Component"
	case weight.KindFunc:
		categoryKind = "Func"
	}
	if categoryKind == "" {
		return nil
	}
	if catIdx, catErr := g.GetCategoryNode(categoryKind); catErr == nil {
		g.AddEdge(ctx, catIdx, componentNewIdx, weight.NewUse(true))
	}
	return nil
}
