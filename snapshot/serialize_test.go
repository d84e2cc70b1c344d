package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlojs/wsgraph/weight"
)

func mustSnapshot(t *testing.T, g *Graph) Snapshot {
	t.Helper()
	snap, err := g.ToSnapshot()
	require.NoError(t, err)
	return snap
}

func TestSnapshotRoundTrip_PreservesTopologyAndContent(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	childID, _ := g.GenerateID()
	childIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(childID))
	g.AddEdge(ctx, root, childIdx, weight.NewContain("key", true))
	require.NoError(t, g.RehashAll())

	snap := mustSnapshot(t, g)
	restored, err := FromSnapshot(snap)
	require.NoError(t, err)

	restoredRoot, err := restored.Root()
	require.NoError(t, err)
	rootW, err := restored.NodeWeight(restoredRoot)
	require.NoError(t, err)
	require.Equal(t, weight.KindCategory, rootW.Kind())

	restoredChildIdx, err := restored.NodeIndexByID(childID)
	require.NoError(t, err)
	restoredChild, err := restored.NodeWeight(restoredChildIdx)
	require.NoError(t, err)
	require.Equal(t, childID, restoredChild.ID())

	edgeIdx, err := restored.FindEdge(restoredRoot, restoredChildIdx, weight.NewContain("key", true))
	require.NoError(t, err)
	_, _, kind, err := restored.EdgeEndpoints(edgeIdx)
	require.NoError(t, err)
	require.Equal(t, "key", kind.Key)
}

func TestSnapshotRoundTrip_OrderingNodePreservesOrder(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	aID, _ := g.GenerateID()
	bID, _ := g.GenerateID()
	_, err := g.AddOrderedNode(ctx, root, weight.NewComponentNode(aID))
	require.NoError(t, err)
	_, err = g.AddOrderedNode(ctx, root, weight.NewComponentNode(bID))
	require.NoError(t, err)
	require.NoError(t, g.RehashAll())

	restored, err := FromSnapshot(mustSnapshot(t, g))
	require.NoError(t, err)

	restoredRoot, err := restored.Root()
	require.NoError(t, err)
	children, err := restored.OrderedChildrenForNode(restoredRoot)
	require.NoError(t, err)
	require.Len(t, children, 2)

	firstW, _ := restored.NodeWeight(children[0])
	require.Equal(t, aID, firstW.ID())
}

func TestFromSnapshot_RejectsUnsupportedFormatVersion(t *testing.T) {
	_, err := FromSnapshot(Snapshot{FormatVersion: SnapshotFormatVersion + 1})
	require.ErrorIs(t, err, ErrDeserialize)
}
