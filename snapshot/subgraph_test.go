package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlojs/wsgraph/weight"
)

func TestSubgraph_IncludesDescendantsAndAncestors(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	parentID, _ := g.GenerateID()
	childID, _ := g.GenerateID()
	unrelatedID, _ := g.GenerateID()

	parentIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(parentID))
	childIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(childID))
	unrelatedIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(unrelatedID))

	g.AddEdge(ctx, root, parentIdx, weight.NewUse(true))
	g.AddEdge(ctx, parentIdx, childIdx, weight.NewContain("", false))
	g.AddEdge(ctx, root, unrelatedIdx, weight.NewUse(false))

	sub, err := g.Subgraph(ctx, parentIdx)
	require.NoError(t, err)

	_, err = sub.NodeIndexByID(parentID)
	require.NoError(t, err)
	_, err = sub.NodeIndexByID(childID)
	require.NoError(t, err)
	_, err = sub.NodeIndexByID(unrelatedID)
	require.ErrorIs(t, err, ErrNodeWithIDNotFound, "unrelated sibling must not be pulled into the subgraph")
}

func TestImportComponentSubgraph_PrunesAtExistingNode(t *testing.T) {
	ctx := context.Background()
	source := newTestGraph(t)
	sourceRoot, _ := source.Root()
	sharedID, _ := source.GenerateID()
	componentID, _ := source.GenerateID()
	sharedIdx := source.AddOrReplaceNode(ctx, weight.NewFuncNode(sharedID, "f", "js"))
	componentIdx := source.AddOrReplaceNode(ctx, weight.NewComponentNode(componentID))
	source.AddEdge(ctx, sourceRoot, sharedIdx, weight.NewUse(true))
	source.AddEdge(ctx, componentIdx, sharedIdx, weight.NewPrototype("", false))

	dest := newTestGraph(t)
	destRoot, _ := dest.Root()
	dest.AddOrReplaceNode(ctx, weight.NewFuncNode(sharedID, "f", "js"))
	destSharedIdx, err := dest.NodeIndexByID(sharedID)
	require.NoError(t, err)
	dest.AddEdge(ctx, destRoot, destSharedIdx, weight.NewUse(true))

	require.NoError(t, dest.ImportComponentSubgraph(ctx, source, componentIdx))

	destComponentIdx, err := dest.NodeIndexByID(componentID)
	require.NoError(t, err)

	_, err = dest.FindEdge(destComponentIdx, destSharedIdx, weight.NewPrototype("", false))
	require.NoError(t, err, "import must link to the existing shared node rather than duplicate it")

	matches := dest.NodeIndicesByLineageID(sharedID)
	require.Len(t, matches, 1, "shared func must not be duplicated by the import")
}
