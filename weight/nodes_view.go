package weight

import (
	"github.com/arlojs/wsgraph/content"
	"github.com/arlojs/wsgraph/id"
)

// ViewNode is a named diagram surface; components are placed onto a view
// via Geometry nodes.
type ViewNode struct {
	base
	Name string
}

// NewViewNode constructs a ViewNode.
func NewViewNode(nodeID id.ID, name string) *ViewNode {
	return &ViewNode{base: newBase(nodeID), Name: name}
}

func (n *ViewNode) Kind() Kind { return KindView }

func (n *ViewNode) NodeHash() content.ContentHash {
	return content.NewHasher().WriteString(n.Name).SumContent()
}

func (n *ViewNode) Clone() Node {
	c := *n
	return &c
}

// GeometryNode records one object's position and size on a view.
type GeometryNode struct {
	base
	X, Y          int64
	Width, Height int64
}

// NewGeometryNode constructs a GeometryNode.
func NewGeometryNode(nodeID id.ID, x, y, width, height int64) *GeometryNode {
	return &GeometryNode{base: newBase(nodeID), X: x, Y: y, Width: width, Height: height}
}

func (n *GeometryNode) Kind() Kind { return KindGeometry }

func (n *GeometryNode) NodeHash() content.ContentHash {
	return content.NewHasher().
		WriteUint64(uint64(n.X)).
		WriteUint64(uint64(n.Y)).
		WriteUint64(uint64(n.Width)).
		WriteUint64(uint64(n.Height)).
		SumContent()
}

func (n *GeometryNode) Clone() Node {
	c := *n
	return &c
}

// DiagramObjectNode marks that a Geometry is positioning either a View
// (a nested view frame) or a Component on its parent view.
type DiagramObjectNode struct {
	base
	ObjectKind string
}

// NewDiagramObjectNode constructs a DiagramObjectNode.
func NewDiagramObjectNode(nodeID id.ID, objectKind string) *DiagramObjectNode {
	return &DiagramObjectNode{base: newBase(nodeID), ObjectKind: objectKind}
}

func (n *DiagramObjectNode) Kind() Kind { return KindDiagramObject }

func (n *DiagramObjectNode) NodeHash() content.ContentHash {
	return content.NewHasher().WriteString(n.ObjectKind).SumContent()
}

func (n *DiagramObjectNode) Clone() Node {
	c := *n
	return &c
}
