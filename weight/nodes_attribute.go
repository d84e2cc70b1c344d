package weight

import (
	"github.com/arlojs/wsgraph/content"
	"github.com/arlojs/wsgraph/id"
)

// AttributeValueNode holds the resolved value for one attribute slot in a
// component's property tree. Key distinguishes values that sit inside a
// map or array parent from its index/key among siblings; it is empty for
// values that are not part of a map or array.
type AttributeValueNode struct {
	base
	Key              string
	ValueAddress     content.ContentHash
	HasValue         bool
	FuncExecutionPk  id.ID
	HasFuncExecution bool
}

// NewAttributeValueNode constructs an AttributeValueNode with no value
// set yet.
func NewAttributeValueNode(nodeID id.ID) *AttributeValueNode {
	return &AttributeValueNode{base: newBase(nodeID)}
}

func (n *AttributeValueNode) Kind() Kind { return KindAttributeValue }

func (n *AttributeValueNode) NodeHash() content.ContentHash {
	h := content.NewHasher().WriteString(n.Key).WriteBool(n.HasValue)
	if n.HasValue {
		h.WriteBytes(n.ValueAddress[:])
	}
	h.WriteBool(n.HasFuncExecution)
	if n.HasFuncExecution {
		h.WriteBytes(n.FuncExecutionPk[:])
	}
	return h.SumContent()
}

func (n *AttributeValueNode) Clone() Node {
	c := *n
	return &c
}

// AttributePrototypeArgumentNode binds one named argument of an attribute
// prototype (function) either to a static value or, via a separate edge,
// to another attribute value it subscribes to.
type AttributePrototypeArgumentNode struct {
	base
	ArgumentName      string
	StaticValueAddr   content.ContentHash
	HasStaticValue    bool
}

// NewAttributePrototypeArgumentNode constructs a node bound to no static
// value; callers attach a ValueSubscription edge or set a static value.
func NewAttributePrototypeArgumentNode(nodeID id.ID, argumentName string) *AttributePrototypeArgumentNode {
	return &AttributePrototypeArgumentNode{base: newBase(nodeID), ArgumentName: argumentName}
}

func (n *AttributePrototypeArgumentNode) Kind() Kind { return KindAttributePrototypeArgument }

func (n *AttributePrototypeArgumentNode) NodeHash() content.ContentHash {
	h := content.NewHasher().WriteString(n.ArgumentName).WriteBool(n.HasStaticValue)
	if n.HasStaticValue {
		h.WriteBytes(n.StaticValueAddr[:])
	}
	return h.SumContent()
}

func (n *AttributePrototypeArgumentNode) Clone() Node {
	c := *n
	return &c
}

// DependentValueRootNode marks an attribute value as a root that must be
// (re)computed during dependent-values update propagation.
type DependentValueRootNode struct {
	base
	ComponentID      id.ID
	AttributeValueID id.ID
}

// NewDependentValueRootNode constructs a DependentValueRootNode.
func NewDependentValueRootNode(nodeID, componentID, attributeValueID id.ID) *DependentValueRootNode {
	return &DependentValueRootNode{base: newBase(nodeID), ComponentID: componentID, AttributeValueID: attributeValueID}
}

func (n *DependentValueRootNode) Kind() Kind { return KindDependentValueRoot }

func (n *DependentValueRootNode) NodeHash() content.ContentHash {
	return content.NewHasher().
		WriteBytes(n.ComponentID[:]).
		WriteBytes(n.AttributeValueID[:]).
		SumContent()
}

func (n *DependentValueRootNode) Clone() Node {
	c := *n
	return &c
}

// FinishedDependentValueRootNode marks that a dependent value root has
// completed its propagation pass; it carries the same identifying fields
// as the pending root it replaces.
type FinishedDependentValueRootNode struct {
	base
	ComponentID      id.ID
	AttributeValueID id.ID
}

// NewFinishedDependentValueRootNode constructs a FinishedDependentValueRootNode.
func NewFinishedDependentValueRootNode(nodeID, componentID, attributeValueID id.ID) *FinishedDependentValueRootNode {
	return &FinishedDependentValueRootNode{base: newBase(nodeID), ComponentID: componentID, AttributeValueID: attributeValueID}
}

func (n *FinishedDependentValueRootNode) Kind() Kind { return KindFinishedDependentValueRoot }

func (n *FinishedDependentValueRootNode) NodeHash() content.ContentHash {
	return content.NewHasher().
		WriteBytes(n.ComponentID[:]).
		WriteBytes(n.AttributeValueID[:]).
		SumContent()
}

func (n *FinishedDependentValueRootNode) Clone() Node {
	c := *n
	return &c
}

// ReasonNode carries a human-readable explanation attached to another
// node via a Reason-kind edge (for example, why an approval requirement
// was satisfied or an action failed).
type ReasonNode struct {
	base
	Message string
}

// NewReasonNode constructs a ReasonNode.
func NewReasonNode(nodeID id.ID, message string) *ReasonNode {
	return &ReasonNode{base: newBase(nodeID), Message: message}
}

func (n *ReasonNode) Kind() Kind { return KindReason }

func (n *ReasonNode) NodeHash() content.ContentHash {
	return content.NewHasher().WriteString(n.Message).SumContent()
}

func (n *ReasonNode) Clone() Node {
	c := *n
	return &c
}
