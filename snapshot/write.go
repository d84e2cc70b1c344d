package snapshot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arlojs/wsgraph/id"
	"github.com/arlojs/wsgraph/internal/trace"
	"github.com/arlojs/wsgraph/weight"
)

// AddOrReplaceNode inserts w as a new node, or overwrites the existing
// node sharing w's identity id in place if one exists. Either way, w's
// slot is marked touched so the next RehashTouched recomputes its Merkle
// hash (and its ancestors').
//
// Replacement is in-place even when w's lineage id differs from the
// existing node's lineage id; see DESIGN.md's Open Question 3.
func (g *Graph) AddOrReplaceNode(ctx context.Context, w weight.Node) NodeIndex {
	op := g.debugTrace(ctx, "wsgraph.snapshot.add_or_replace_node",
		slog.String("node_id", w.ID().String()),
		slog.String("kind", w.Kind().String()),
	)
	defer op.End(nil)

	if existing, ok := g.nodeIndexByID[w.ID()]; ok {
		old := g.nodes[existing].weight
		if old.LineageID() != w.LineageID() {
			g.removeFromLineageIndex(old.LineageID(), existing)
			g.nodeIndicesByLineageID[w.LineageID()] = append(g.nodeIndicesByLineageID[w.LineageID()], existing)
		}
		g.nodes[existing] = nodeSlot{weight: w, present: true}
		g.touched[existing] = struct{}{}
		return existing
	}
	idx := g.insertNode(w)
	g.touched[idx] = struct{}{}
	return idx
}

func (g *Graph) removeFromLineageIndex(lineageID id.ID, idx NodeIndex) {
	indices := g.nodeIndicesByLineageID[lineageID]
	for i, existing := range indices {
		if existing == idx {
			g.nodeIndicesByLineageID[lineageID] = append(indices[:i], indices[i+1:]...)
			break
		}
	}
	if len(g.nodeIndicesByLineageID[lineageID]) == 0 {
		delete(g.nodeIndicesByLineageID, lineageID)
	}
}

// AddEdge adds an edge from source to target with the given kind,
// without checking for cycles. If kind is a default Use edge, any
// sibling default Use edge from source is first demoted to non-default
// (see DESIGN.md's Open Question 2: enforced at every entry point that
// adds a Use edge).
//
// AddEdge enforces the at-most-one-edge-per-(source,target,discriminant)
// invariant by replacing any existing edge between the same endpoints
// with the same discriminant.
func (g *Graph) AddEdge(ctx context.Context, source, target NodeIndex, kind weight.EdgeKind) EdgeIndex {
	op := g.debugTrace(ctx, "wsgraph.snapshot.add_edge",
		slog.Int("source", int(source)),
		slog.Int("target", int(target)),
		slog.String("kind", kind.Discriminant.String()),
	)
	defer op.End(nil)

	if kind.Discriminant == weight.EdgeUse && kind.IsDefault {
		g.demoteDefaultUseSiblings(source)
	}

	for _, existingIdx := range g.outgoing[source] {
		e := g.edges[existingIdx]
		if e.target == target && e.kind.Discriminant == kind.Discriminant {
			g.edges[existingIdx].kind = kind
			g.touched[source] = struct{}{}
			return existingIdx
		}
	}

	idx := g.insertEdge(source, target, kind)
	g.touched[source] = struct{}{}
	return idx
}

func (g *Graph) insertEdge(source, target NodeIndex, kind weight.EdgeKind) EdgeIndex {
	var idx EdgeIndex
	if n := len(g.freeEdges); n > 0 {
		idx = g.freeEdges[n-1]
		g.freeEdges = g.freeEdges[:n-1]
		g.edges[idx] = edgeSlot{source: source, target: target, kind: kind, present: true}
	} else {
		idx = EdgeIndex(len(g.edges))
		g.edges = append(g.edges, edgeSlot{source: source, target: target, kind: kind, present: true})
	}
	g.outgoing[source] = append(g.outgoing[source], idx)
	g.incoming[target] = append(g.incoming[target], idx)
	return idx
}

// demoteDefaultUseSiblings clears IsDefault on every existing default Use
// edge from source, preserving the at-most-one-default invariant before a
// new default edge is added.
func (g *Graph) demoteDefaultUseSiblings(source NodeIndex) {
	for _, idx := range g.outgoing[source] {
		e := &g.edges[idx]
		if e.kind.Discriminant == weight.EdgeUse && e.kind.IsDefault {
			e.kind.IsDefault = false
		}
	}
}

// AddEdgeBetweenIDs resolves source and target by identity id before
// delegating to AddEdge.
func (g *Graph) AddEdgeBetweenIDs(ctx context.Context, sourceID, targetID id.ID, kind weight.EdgeKind) (EdgeIndex, error) {
	source, err := g.NodeIndexByID(sourceID)
	if err != nil {
		return invalidIndex, err
	}
	target, err := g.NodeIndexByID(targetID)
	if err != nil {
		return invalidIndex, err
	}
	return g.AddEdge(ctx, source, target, kind), nil
}

// AddOrderedNode adds w as a new node and appends it to the end of
// container's explicit order via an Ordinal-kind edge, creating
// container's OrderingNode if it does not already exist.
func (g *Graph) AddOrderedNode(ctx context.Context, container NodeIndex, w weight.Node) (NodeIndex, error) {
	idx := g.AddOrReplaceNode(ctx, w)
	if err := g.appendToOrder(ctx, container, w.ID()); err != nil {
		return invalidIndex, err
	}
	g.AddEdge(ctx, container, idx, weight.Structural(weight.EdgeOrdinal))
	return idx, nil
}

// AddOrderedEdge adds an edge from container to an existing node target,
// appending target to container's explicit order.
func (g *Graph) AddOrderedEdge(ctx context.Context, container, target NodeIndex, kind weight.EdgeKind) error {
	targetW, err := g.NodeWeight(target)
	if err != nil {
		return err
	}
	if err := g.appendToOrder(ctx, container, targetW.ID()); err != nil {
		return err
	}
	g.AddEdge(ctx, container, target, kind)
	g.AddEdge(ctx, container, target, weight.Structural(weight.EdgeOrdinal))
	return nil
}

func (g *Graph) appendToOrder(ctx context.Context, container NodeIndex, childID id.ID) error {
	orderingIdx, err := g.OrderingNodeForContainer(container)
	if err != nil {
		if err != ErrNoEdgesOfKindFound {
			return err
		}
		orderingID, genErr := g.GenerateID()
		if genErr != nil {
			return genErr
		}
		ordering := weight.NewOrderingNode(orderingID)
		orderingIdx = g.AddOrReplaceNode(ctx, ordering)
		g.AddEdge(ctx, container, orderingIdx, weight.Structural(weight.EdgeOrdering))
	}
	orderingW, err := g.NodeWeight(orderingIdx)
	if err != nil {
		return err
	}
	ordering := orderingW.(*weight.OrderingNode)
	for _, existing := range ordering.Order() {
		if existing == childID {
			return nil
		}
	}
	ordering.PushToOrder(childID)
	g.touched[orderingIdx] = struct{}{}
	return nil
}

// UpdateOrder overwrites the explicit child order of container. newOrder
// must contain exactly the ids currently reachable from container via
// Ordinal-kind edges, with no duplicates; any other input is rejected
// with ErrInvalidOrder (DESIGN.md's Open Question 1).
func (g *Graph) UpdateOrder(ctx context.Context, container NodeIndex, newOrder []id.ID) (err error) {
	op := g.debugTrace(ctx, "wsgraph.snapshot.update_order", slog.Int("count", len(newOrder)))
	defer func() { op.End(err) }()

	orderingIdx, err := g.OrderingNodeForContainer(container)
	if err != nil {
		return err
	}
	orderingW, err := g.NodeWeight(orderingIdx)
	if err != nil {
		return err
	}
	ordering := orderingW.(*weight.OrderingNode)

	current := make(map[id.ID]struct{}, len(ordering.Order()))
	for _, existing := range ordering.Order() {
		current[existing] = struct{}{}
	}

	seen := make(map[id.ID]struct{}, len(newOrder))
	for _, next := range newOrder {
		if _, ok := current[next]; !ok {
			return fmt.Errorf("%w: id %s is not a current child", ErrInvalidOrder, next)
		}
		if _, dup := seen[next]; dup {
			return fmt.Errorf("%w: id %s appears more than once", ErrInvalidOrder, next)
		}
		seen[next] = struct{}{}
	}
	if len(seen) != len(current) {
		return fmt.Errorf("%w: new order omits %d current child(ren)", ErrInvalidOrder, len(current)-len(seen))
	}

	ordering.SetOrder(newOrder)
	g.touched[orderingIdx] = struct{}{}
	return nil
}

// UpdateContent replaces the weight at nodeID's current slot with w,
// keeping the same identity and lineage ids as the node already carries
// (w's own identity/lineage fields are overwritten to match).
func (g *Graph) UpdateContent(ctx context.Context, nodeID id.ID, w weight.Node) (err error) {
	op := g.debugTrace(ctx, "wsgraph.snapshot.update_content", slog.String("node_id", nodeID.String()))
	defer func() { op.End(err) }()

	idx, err := g.NodeIndexByID(nodeID)
	if err != nil {
		return err
	}
	existing := g.nodes[idx].weight
	w.SetIdentity(existing.ID(), existing.LineageID())
	g.nodes[idx].weight = w
	g.touched[idx] = struct{}{}
	return nil
}

// UpdateNodeID changes the identity id of the node at nodeID to newID,
// leaving its lineage id and content unchanged. Used to give a node a
// fresh identity while preserving its lineage: afterwards the node
// resolves under newID, and nodeID no longer names any node.
func (g *Graph) UpdateNodeID(ctx context.Context, nodeID, newID id.ID) (err error) {
	op := g.debugTrace(ctx, "wsgraph.snapshot.update_node_id",
		slog.String("node_id", nodeID.String()),
		slog.String("new_id", newID.String()),
	)
	defer func() { op.End(err) }()

	idx, err := g.NodeIndexByID(nodeID)
	if err != nil {
		return err
	}
	w := g.nodes[idx].weight
	delete(g.nodeIndexByID, nodeID)
	w.SetIdentity(newID, w.LineageID())
	g.nodeIndexByID[newID] = idx
	g.touched[idx] = struct{}{}
	return nil
}

// RemoveEdge removes the edge at idx. Removal does not renumber any
// other edge index.
func (g *Graph) RemoveEdge(ctx context.Context, idx EdgeIndex) (err error) {
	op := g.debugTrace(ctx, "wsgraph.snapshot.remove_edge", slog.Int("edge", int(idx)))
	defer func() { op.End(err) }()

	if idx < 0 || int(idx) >= len(g.edges) || !g.edges[idx].present {
		return ErrEdgeDoesNotExist
	}
	e := g.edges[idx]
	g.edges[idx] = edgeSlot{}
	g.outgoing[e.source] = removeEdgeIndex(g.outgoing[e.source], idx)
	g.incoming[e.target] = removeEdgeIndex(g.incoming[e.target], idx)
	g.freeEdges = append(g.freeEdges, idx)
	g.touched[e.source] = struct{}{}
	return nil
}

func removeEdgeIndex(s []EdgeIndex, target EdgeIndex) []EdgeIndex {
	for i, e := range s {
		if e == target {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// RemoveEdgeBetween removes the edge from source to target with the
// given kind. If source has an Ordering node, target's id is also popped
// from that node's explicit order and the matching Ordinal edge from
// source to target is removed, keeping the ordering in sync with the
// remaining children.
func (g *Graph) RemoveEdgeBetween(ctx context.Context, source, target NodeIndex, kind weight.EdgeKind) (err error) {
	op := g.debugTrace(ctx, "wsgraph.snapshot.remove_edge_between",
		slog.Int("source", int(source)),
		slog.Int("target", int(target)),
		slog.String("kind", kind.Discriminant.String()),
	)
	defer func() { op.End(err) }()

	idx, err := g.FindEdge(source, target, kind)
	if err != nil {
		return err
	}
	targetW, err := g.NodeWeight(target)
	if err != nil {
		return err
	}
	if err := g.RemoveEdge(ctx, idx); err != nil {
		return err
	}

	orderingIdx, oerr := g.OrderingNodeForContainer(source)
	if oerr != nil {
		if oerr == ErrNoEdgesOfKindFound {
			return nil
		}
		return oerr
	}
	orderingW, oerr := g.NodeWeight(orderingIdx)
	if oerr != nil {
		return oerr
	}
	ordering := orderingW.(*weight.OrderingNode)
	ordering.RemoveFromOrder(targetW.ID())
	g.touched[orderingIdx] = struct{}{}

	if ordinalIdx, ferr := g.FindEdge(source, target, weight.Structural(weight.EdgeOrdinal)); ferr == nil {
		_ = g.RemoveEdge(ctx, ordinalIdx)
	}
	return nil
}

// RemoveNode removes the node at idx along with every edge touching it.
// Callers are responsible for calling CleanupAndRehash afterward if the
// removal may have orphaned other nodes.
func (g *Graph) RemoveNode(ctx context.Context, idx NodeIndex) (err error) {
	op := g.debugTrace(ctx, "wsgraph.snapshot.remove_node", slog.Int("node", int(idx)))
	defer func() { op.End(err) }()

	w, err := g.NodeWeight(idx)
	if err != nil {
		return err
	}
	for _, e := range append([]EdgeIndex(nil), g.outgoing[idx]...) {
		_ = g.RemoveEdge(ctx, e)
	}
	for _, e := range append([]EdgeIndex(nil), g.incoming[idx]...) {
		_ = g.RemoveEdge(ctx, e)
	}
	delete(g.nodeIndexByID, w.ID())
	g.removeFromLineageIndex(w.LineageID(), idx)
	delete(g.touched, idx)
	g.nodes[idx] = nodeSlot{}
	g.freeNodes = append(g.freeNodes, idx)
	return nil
}

// debugTrace is a small helper so write operations can emit a Debug-level
// span without every call site repeating the ctx/logger plumbing.
func (g *Graph) debugTrace(ctx context.Context, op string, attrs ...slog.Attr) *trace.Op {
	return trace.Begin(ctx, g.logger, op, attrs...)
}
