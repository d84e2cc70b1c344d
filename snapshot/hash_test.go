package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlojs/wsgraph/content"
	"github.com/arlojs/wsgraph/weight"
)

func TestRehashAll_RootMerkleHashStable(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	aID, _ := g.GenerateID()
	aIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(aID))
	g.AddEdge(ctx, root, aIdx, weight.NewUse(true))

	require.NoError(t, g.RehashAll())
	first, err := g.RootMerkleHash()
	require.NoError(t, err)

	require.NoError(t, g.RehashAll())
	second, err := g.RootMerkleHash()
	require.NoError(t, err)

	require.Equal(t, first, second, "rehashing an unchanged graph must be deterministic")
}

func TestRehashAll_ChangesWithContent(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	aID, _ := g.GenerateID()
	aIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(aID))
	g.AddEdge(ctx, root, aIdx, weight.NewUse(true))
	require.NoError(t, g.RehashAll())
	before, _ := g.RootMerkleHash()

	changed := weight.NewComponentNode(aID)
	changed.ToDelete = true
	require.NoError(t, g.UpdateContent(ctx, aID, changed))
	require.NoError(t, g.RehashAll())
	after, _ := g.RootMerkleHash()

	require.NotEqual(t, before, after)
}

func TestRehashTouched_OnlyRecomputesDirtyAncestors(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()

	aID, _ := g.GenerateID()
	bID, _ := g.GenerateID()
	aIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(aID))
	bIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(bID))
	g.AddEdge(ctx, root, aIdx, weight.NewUse(true))
	g.AddEdge(ctx, root, bIdx, weight.NewUse(false))
	require.NoError(t, g.RehashTouched())

	bWeight, _ := g.NodeWeight(bIdx)
	bHashBefore := bWeight.MerkleHash()

	changed := weight.NewComponentNode(aID)
	changed.ToDelete = true
	require.NoError(t, g.UpdateContent(ctx, aID, changed))
	require.NoError(t, g.RehashTouched())

	bWeightAfter, _ := g.NodeWeight(bIdx)
	require.Equal(t, bHashBefore, bWeightAfter.MerkleHash(), "untouched sibling subtree must keep its cached hash")

	rootWeight, err := g.NodeWeight(root)
	require.NoError(t, err)
	require.NotEqual(t, content.MerkleTreeHash{}, rootWeight.MerkleHash())
}

func TestMigrate_RehashesAndReturnsRootHash(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	root, _ := g.Root()
	aID, _ := g.GenerateID()
	aIdx := g.AddOrReplaceNode(ctx, weight.NewComponentNode(aID))
	g.AddEdge(ctx, root, aIdx, weight.NewUse(true))

	hash, err := Migrate(g, func(gr *Graph) error {
		changed := weight.NewComponentNode(aID)
		changed.ToDelete = true
		return gr.UpdateContent(ctx, aID, changed)
	})
	require.NoError(t, err)

	rootHash, err := g.RootMerkleHash()
	require.NoError(t, err)
	require.Equal(t, rootHash, hash)
}
