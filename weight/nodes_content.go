package weight

import (
	"encoding/json"
	"slices"

	"github.com/arlojs/wsgraph/content"
	"github.com/arlojs/wsgraph/id"
)

// ContentNode wraps an opaque, CAS-stored payload. ContentKind names what
// the payload represents (e.g. "schema", "funcSpec", "staticArgValue");
// the engine itself never interprets the payload, only hashes and
// forwards its address.
type ContentNode struct {
	base
	ContentKind string
	Address     content.ContentHash
}

// NewContentNode constructs a ContentNode addressing data already
// written to the CAS under address.
func NewContentNode(nodeID id.ID, contentKind string, address content.ContentHash) *ContentNode {
	return &ContentNode{base: newBase(nodeID), ContentKind: contentKind, Address: address}
}

func (n *ContentNode) Kind() Kind { return KindContent }

func (n *ContentNode) NodeHash() content.ContentHash {
	return content.NewHasher().
		WriteString(n.ContentKind).
		WriteBytes(n.Address[:]).
		SumContent()
}

func (n *ContentNode) Clone() Node {
	c := *n
	return &c
}

// CategoryNode is a singleton container directly beneath root grouping
// all nodes of one CategoryKind (e.g. all Func nodes, all Component
// nodes). Exactly one CategoryNode of a given kind exists per graph.
type CategoryNode struct {
	base
	CategoryKind string
}

// NewCategoryNode constructs a CategoryNode.
func NewCategoryNode(nodeID id.ID, categoryKind string) *CategoryNode {
	return &CategoryNode{base: newBase(nodeID), CategoryKind: categoryKind}
}

func (n *CategoryNode) Kind() Kind { return KindCategory }

func (n *CategoryNode) NodeHash() content.ContentHash {
	return content.NewHasher().WriteString(n.CategoryKind).SumContent()
}

func (n *CategoryNode) Clone() Node {
	c := *n
	return &c
}

// OrderingNode records the explicit child order for one ordered
// container. Exactly one OrderingNode hangs off an ordered container via
// an Ordering-kind edge; Order must always equal the set of ids reachable
// from the container via Ordinal-kind edges, with no duplicates.
type OrderingNode struct {
	base
	order []id.ID
}

// NewOrderingNode constructs an empty OrderingNode.
func NewOrderingNode(nodeID id.ID) *OrderingNode {
	return &OrderingNode{base: newBase(nodeID)}
}

func (n *OrderingNode) Kind() Kind { return KindOrdering }

// Order returns the current child order. The returned slice is a
// defensive copy.
func (n *OrderingNode) Order() []id.ID {
	if len(n.order) == 0 {
		return nil
	}
	out := make([]id.ID, len(n.order))
	copy(out, n.order)
	return out
}

// SetOrder overwrites the order wholesale.
func (n *OrderingNode) SetOrder(order []id.ID) {
	n.order = slices.Clone(order)
}

// PushToOrder appends childID to the end of the order. It is the
// caller's responsibility (snapshot.Graph) to ensure childID is not
// already present.
func (n *OrderingNode) PushToOrder(childID id.ID) {
	n.order = append(n.order, childID)
}

// RemoveFromOrder removes the first occurrence of childID, if present,
// preserving the order of the remaining elements.
func (n *OrderingNode) RemoveFromOrder(childID id.ID) {
	idx := slices.Index(n.order, childID)
	if idx < 0 {
		return
	}
	n.order = slices.Delete(n.order, idx, idx+1)
}

func (n *OrderingNode) NodeHash() content.ContentHash {
	h := content.NewHasher()
	for _, childID := range n.order {
		h.WriteBytes(childID[:])
	}
	return h.SumContent()
}

func (n *OrderingNode) Clone() Node {
	c := &OrderingNode{base: n.base}
	c.order = slices.Clone(n.order)
	return c
}

// orderingNodeJSON is OrderingNode's wire shape; order is unexported so
// encoding/json would otherwise drop it.
type orderingNodeJSON struct {
	Order []id.ID `json:"order"`
}

func (n *OrderingNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderingNodeJSON{Order: n.order})
}

func (n *OrderingNode) UnmarshalJSON(data []byte) error {
	var wire orderingNodeJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	n.order = wire.Order
	return nil
}
