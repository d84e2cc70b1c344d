package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlojs/wsgraph/id"
	"github.com/arlojs/wsgraph/weight"
)

func newTestGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := NewWithRoot()
	require.NoError(t, err)
	return g
}

func TestNewWithRoot_HasRoot(t *testing.T) {
	g := newTestGraph(t)
	root, err := g.Root()
	require.NoError(t, err)
	w, err := g.NodeWeight(root)
	require.NoError(t, err)
	require.Equal(t, weight.KindCategory, w.Kind())
}

func TestAddOrReplaceNode_InsertThenReplaceInPlace(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	nodeID, err := g.GenerateID()
	require.NoError(t, err)

	a := weight.NewComponentNode(nodeID)
	idx := g.AddOrReplaceNode(ctx, a)

	b := weight.NewComponentNode(nodeID)
	b.ToDelete = true
	idx2 := g.AddOrReplaceNode(ctx, b)

	require.Equal(t, idx, idx2, "replacing an existing id must reuse its slot")
	w, err := g.NodeWeight(idx)
	require.NoError(t, err)
	require.True(t, w.(*weight.ComponentNode).ToDelete)
}

func TestAddEdge_AtMostOnePerSourceTargetKind(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	childID, err := g.GenerateID()
	require.NoError(t, err)
	childIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(childID))

	g.AddEdge(ctx, root, childIdx, weight.NewContain("", false))
	g.AddEdge(ctx, root, childIdx, weight.NewContain("k", true))

	edges := g.OutgoingEdgesOfKind(root, weight.EdgeContain)
	require.Len(t, edges, 1, "second AddEdge with same discriminant must replace, not duplicate")
}

func TestAddEdge_DemotesDefaultUseSiblings(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	aID, _ := g.GenerateID()
	bID, _ := g.GenerateID()
	aIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(aID))
	bIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(bID))

	g.AddEdge(ctx, root, aIdx, weight.NewUse(true))
	g.AddEdge(ctx, root, bIdx, weight.NewUse(true))

	aEdge, err := g.FindEdge(root, aIdx, weight.NewUse(false))
	require.NoError(t, err)
	require.False(t, g.edges[aEdge].kind.IsDefault, "first default Use edge must be demoted")

	bEdge, err := g.FindEdge(root, bIdx, weight.NewUse(true))
	require.NoError(t, err)
	require.True(t, g.edges[bEdge].kind.IsDefault)
}

func TestAddOrderedNode_AppendsToOrder(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	aID, _ := g.GenerateID()
	bID, _ := g.GenerateID()
	_, err := g.AddOrderedNode(ctx, root, weight.NewComponentNode(aID))
	require.NoError(t, err)
	_, err = g.AddOrderedNode(ctx, root, weight.NewComponentNode(bID))
	require.NoError(t, err)

	children, err := g.OrderedChildrenForNode(root)
	require.NoError(t, err)
	require.Len(t, children, 2)

	childA, _ := g.NodeWeight(children[0])
	childB, _ := g.NodeWeight(children[1])
	require.Equal(t, aID, childA.ID())
	require.Equal(t, bID, childB.ID())
}

func TestUpdateOrder_RejectsOmittedChild(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	aID, _ := g.GenerateID()
	bID, _ := g.GenerateID()
	_, err := g.AddOrderedNode(ctx, root, weight.NewComponentNode(aID))
	require.NoError(t, err)
	_, err = g.AddOrderedNode(ctx, root, weight.NewComponentNode(bID))
	require.NoError(t, err)

	err = g.UpdateOrder(ctx, root, []id.ID{aID})
	require.ErrorIs(t, err, ErrInvalidOrder)
}

func TestUpdateOrder_RejectsUnknownChild(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	aID, _ := g.GenerateID()
	_, err := g.AddOrderedNode(ctx, root, weight.NewComponentNode(aID))
	require.NoError(t, err)

	strangerID, _ := g.GenerateID()
	err = g.UpdateOrder(ctx, root, []id.ID{aID, strangerID})
	require.ErrorIs(t, err, ErrInvalidOrder)
}

func TestUpdateOrder_RejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	aID, _ := g.GenerateID()
	_, err := g.AddOrderedNode(ctx, root, weight.NewComponentNode(aID))
	require.NoError(t, err)

	err = g.UpdateOrder(ctx, root, []id.ID{aID, aID})
	require.ErrorIs(t, err, ErrInvalidOrder)
}

func TestUpdateOrder_AcceptsPermutation(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	aID, _ := g.GenerateID()
	bID, _ := g.GenerateID()
	_, err := g.AddOrderedNode(ctx, root, weight.NewComponentNode(aID))
	require.NoError(t, err)
	_, err = g.AddOrderedNode(ctx, root, weight.NewComponentNode(bID))
	require.NoError(t, err)

	require.NoError(t, g.UpdateOrder(ctx, root, []id.ID{bID, aID}))

	children, err := g.OrderedChildrenForNode(root)
	require.NoError(t, err)
	firstW, _ := g.NodeWeight(children[0])
	require.Equal(t, bID, firstW.ID())
}

func TestCheckWouldCreateCycle(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	aID, _ := g.GenerateID()
	aIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(aID))
	g.AddEdge(ctx, root, aIdx, weight.NewUse(true))

	require.True(t, g.CheckWouldCreateCycle(aIdx, root), "root can already reach a via existing edge")
	require.False(t, g.CheckWouldCreateCycle(root, aIdx))

	_, err := g.AddEdgeWithCycleCheck(ctx, aIdx, root, weight.NewUse(false))
	require.ErrorIs(t, err, ErrCreateGraphCycle)
}

func TestRemoveNode_RemovesIncidentEdges(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	aID, _ := g.GenerateID()
	aIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(aID))
	g.AddEdge(ctx, root, aIdx, weight.NewUse(true))

	require.NoError(t, g.RemoveNode(ctx, aIdx))
	_, err := g.NodeWeight(aIdx)
	require.ErrorIs(t, err, ErrNodeWeightNotFound)
	require.Empty(t, g.OutgoingEdges(root))
}
