package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlojs/wsgraph/weight"
)

func TestCleanup_RemovesOrphanedSubtree(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	parentID, _ := g.GenerateID()
	childID, _ := g.GenerateID()
	parentIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(parentID))
	childIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(childID))
	g.AddEdge(ctx, root, parentIdx, weight.NewUse(true))
	g.AddEdge(ctx, parentIdx, childIdx, weight.NewContain("", false))

	require.NoError(t, g.RemoveEdge(ctx, mustFindEdge(t, g, root, parentIdx)))

	removed := g.Cleanup(ctx)
	require.Equal(t, 2, removed, "both parent and child must be collected once unreachable")

	_, err := g.NodeWeight(parentIdx)
	require.ErrorIs(t, err, ErrNodeWeightNotFound)
	_, err = g.NodeWeight(childIdx)
	require.ErrorIs(t, err, ErrNodeWeightNotFound)
}

func TestCleanup_NeverRemovesRoot(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	removed := g.Cleanup(ctx)
	require.Zero(t, removed)
	_, err := g.Root()
	require.NoError(t, err)
}

func mustFindEdge(t *testing.T, g *Graph, source, target NodeIndex) EdgeIndex {
	t.Helper()
	for _, idx := range g.OutgoingEdges(source) {
		if g.edges[idx].target == target {
			return idx
		}
	}
	t.Fatalf("no edge from %d to %d", source, target)
	return invalidIndex
}
