package snapshot

import (
	"context"
	"slices"

	"github.com/arlojs/wsgraph/id"
	"github.com/arlojs/wsgraph/weight"
)

// UpdateKind discriminates the variants of Update.
type UpdateKind uint8

const (
	UpdateNewNode UpdateKind = iota
	UpdateReplaceNode
	UpdateNewEdge
	UpdateRemoveEdge
)

func (k UpdateKind) String() string {
	switch k {
	case UpdateNewNode:
		return "NewNode"
	case UpdateReplaceNode:
		return "ReplaceNode"
	case UpdateNewEdge:
		return "NewEdge"
	case UpdateRemoveEdge:
		return "RemoveEdge"
	default:
		return "Unknown"
	}
}

// Update describes a single step needed to bring a base graph in line
// with an updated graph. NewNode and ReplaceNode carry Weight (a clone
// of the updated node's weight); NewEdge and RemoveEdge carry Source,
// Target and EdgeKind. A NewNode update for a given id is always
// produced before any NewEdge update referencing that id.
type Update struct {
	Kind     UpdateKind
	NodeID   id.ID
	Weight   weight.Node
	Source   id.ID
	Target   id.ID
	EdgeKind weight.EdgeKind
}

// edgeSetHas reports whether edges (read from graph gr) contains an edge
// to a node with identity targetID and the given kind.
func edgeSetHas(gr *Graph, edges []EdgeIndex, targetID id.ID, kind weight.EdgeKind) bool {
	for _, idx := range edges {
		e := gr.edges[idx]
		tw, err := gr.NodeWeight(e.target)
		if err != nil {
			continue
		}
		if tw.ID() == targetID && e.kind.Equal(kind) {
			return true
		}
	}
	return false
}

// DetectUpdates walks updated from its root and returns the ordered list
// of Updates that, applied to g via PerformUpdates, bring g's reachable
// content in line with updated's. Subtrees whose Merkle hash is
// unchanged between g and updated are skipped entirely without
// recursing, since neither their own content nor anything beneath them
// can have changed.
func (g *Graph) DetectUpdates(ctx context.Context, updated *Graph) (_ []Update, err error) {
	op := g.debugTrace(ctx, "wsgraph.snapshot.detect_updates")
	defer func() { op.End(err) }()

	root, err := updated.Root()
	if err != nil {
		return nil, err
	}

	var updates []Update
	visited := make(map[id.ID]struct{})

	var walk func(NodeIndex) error
	walk = func(uIdx NodeIndex) error {
		uw, err := updated.NodeWeight(uIdx)
		if err != nil {
			return err
		}
		nodeID := uw.ID()
		if _, done := visited[nodeID]; done {
			return nil
		}
		visited[nodeID] = struct{}{}

		baseIdx, baseErr := g.NodeIndexByID(nodeID)
		if baseErr != nil {
			updates = append(updates, Update{Kind: UpdateNewNode, NodeID: nodeID, Weight: uw.Clone()})
		} else {
			baseW, err := g.NodeWeight(baseIdx)
			if err != nil {
				return err
			}
			if baseW.MerkleHash() == uw.MerkleHash() {
				return nil
			}
			if baseW.NodeHash() != uw.NodeHash() {
				updates = append(updates, Update{Kind: UpdateReplaceNode, NodeID: nodeID, Weight: uw.Clone()})
			}
		}

		uEdges := updated.OutgoingEdges(uIdx)
		var baseEdges []EdgeIndex
		if baseErr == nil {
			baseEdges = g.OutgoingEdges(baseIdx)
		}

		for _, ue := range uEdges {
			e := updated.edges[ue]
			tw, err := updated.NodeWeight(e.target)
			if err != nil {
				return err
			}
			// Walk the target before recording the edge to it: if the
			// target is itself unknown to the base, this emits its
			// NewNode ahead of the NewEdge that references it.
			if err := walk(e.target); err != nil {
				return err
			}
			if baseEdges == nil || !edgeSetHas(g, baseEdges, tw.ID(), e.kind) {
				updates = append(updates, Update{Kind: UpdateNewEdge, Source: nodeID, Target: tw.ID(), EdgeKind: e.kind})
			}
		}

		for _, be := range baseEdges {
			e := g.edges[be]
			tw, err := g.NodeWeight(e.target)
			if err != nil {
				return err
			}
			if !edgeSetHas(updated, uEdges, tw.ID(), e.kind) {
				updates = append(updates, Update{Kind: UpdateRemoveEdge, Source: nodeID, Target: tw.ID(), EdgeKind: e.kind})
			}
		}

		return nil
	}

	if walkErr := walk(root); walkErr != nil {
		err = walkErr
		return nil, err
	}
	return updates, nil
}

// ChangeStatus classifies a node-level Change.
type ChangeStatus uint8

const (
	ChangeAdded ChangeStatus = iota
	ChangeModified
	ChangeRemoved
)

func (s ChangeStatus) String() string {
	switch s {
	case ChangeAdded:
		return "Added"
	case ChangeModified:
		return "Modified"
	case ChangeRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}

// Change is a coarser, node-level projection of a graph comparison: it
// reports which node ids were added, had their own content modified, or
// were removed, without the edge-level detail of Update.
type Change struct {
	ID     id.ID
	Status ChangeStatus
}

// DetectChanges compares every live node in g against every live node in
// updated (regardless of reachability from root) and reports Added,
// Modified and Removed node ids, sorted ascending by id.
func (g *Graph) DetectChanges(updated *Graph) []Change {
	baseByID := make(map[id.ID]NodeIndex)
	for _, idx := range g.Nodes() {
		if w, err := g.NodeWeight(idx); err == nil {
			baseByID[w.ID()] = idx
		}
	}
	updatedByID := make(map[id.ID]NodeIndex)
	for _, idx := range updated.Nodes() {
		if w, err := updated.NodeWeight(idx); err == nil {
			updatedByID[w.ID()] = idx
		}
	}

	var changes []Change
	for uid, uidx := range updatedByID {
		uw, err := updated.NodeWeight(uidx)
		if err != nil {
			continue
		}
		if bidx, ok := baseByID[uid]; ok {
			bw, err := g.NodeWeight(bidx)
			if err == nil && bw.NodeHash() != uw.NodeHash() {
				changes = append(changes, Change{ID: uid, Status: ChangeModified})
			}
		} else {
			changes = append(changes, Change{ID: uid, Status: ChangeAdded})
		}
	}
	for bid := range baseByID {
		if _, ok := updatedByID[bid]; !ok {
			changes = append(changes, Change{ID: bid, Status: ChangeRemoved})
		}
	}

	slices.SortFunc(changes, func(a, b Change) int { return a.ID.Compare(b.ID) })
	return changes
}
