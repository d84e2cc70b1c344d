package weight

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlojs/wsgraph/content"
	"github.com/arlojs/wsgraph/id"
)

func newTestID(t *testing.T) id.ID {
	t.Helper()
	gen := id.NewGenerator()
	next, err := gen.Generate()
	require.NoError(t, err)
	return next
}

func TestNewBase_LineageEqualsID(t *testing.T) {
	nodeID := newTestID(t)
	n := NewComponentNode(nodeID)
	require.Equal(t, nodeID, n.ID())
	require.Equal(t, nodeID, n.LineageID())
}

func TestSetIdentity(t *testing.T) {
	n := NewComponentNode(newTestID(t))
	newID := newTestID(t)
	newLineage := newTestID(t)
	n.SetIdentity(newID, newLineage)
	require.Equal(t, newID, n.ID())
	require.Equal(t, newLineage, n.LineageID())
}

func TestNodeHash_IgnoresIdentity(t *testing.T) {
	a := NewPropNode(newTestID(t), "name", "string")
	b := NewPropNode(newTestID(t), "name", "string")
	require.Equal(t, a.NodeHash(), b.NodeHash(), "node hash must not depend on identity")
}

func TestNodeHash_DiffersOnContent(t *testing.T) {
	a := NewPropNode(newTestID(t), "name", "string")
	b := NewPropNode(newTestID(t), "name", "integer")
	require.NotEqual(t, a.NodeHash(), b.NodeHash())
}

func TestOrderingNode_PushAndRemove(t *testing.T) {
	n := NewOrderingNode(newTestID(t))
	a, b, c := newTestID(t), newTestID(t), newTestID(t)
	n.PushToOrder(a)
	n.PushToOrder(b)
	n.PushToOrder(c)
	require.Equal(t, []id.ID{a, b, c}, n.Order())

	n.RemoveFromOrder(b)
	require.Equal(t, []id.ID{a, c}, n.Order())
}

func TestOrderingNode_Clone_Independent(t *testing.T) {
	n := NewOrderingNode(newTestID(t))
	a := newTestID(t)
	n.PushToOrder(a)

	clone := n.Clone().(*OrderingNode)
	clone.PushToOrder(newTestID(t))

	require.Len(t, n.Order(), 1)
	require.Len(t, clone.Order(), 2)
}

func TestEdgeKind_Compare_Deterministic(t *testing.T) {
	a := NewUse(false)
	b := NewUse(true)
	require.Negative(t, a.Compare(b))
	require.Positive(t, b.Compare(a))
	require.Zero(t, a.Compare(NewUse(false)))
}

func TestEdgeKind_Compare_ByDiscriminantFirst(t *testing.T) {
	use := NewUse(true)
	contain := NewContain("k", true)
	require.Negative(t, use.Compare(contain))
}

func TestEdgeKind_Equal(t *testing.T) {
	require.True(t, NewContain("x", true).Equal(NewContain("x", true)))
	require.False(t, NewContain("x", true).Equal(NewContain("y", true)))
	require.False(t, NewContain("x", true).Equal(NewContain("", false)))
}

func TestEdgeKind_HashInto_DistinguishesAux(t *testing.T) {
	h1 := newHasherSum(NewUse(true))
	h2 := newHasherSum(NewUse(false))
	require.NotEqual(t, h1, h2)
}

func newHasherSum(k EdgeKind) content.ContentHash {
	h := content.NewHasher()
	k.HashInto(h)
	return h.SumContent()
}
