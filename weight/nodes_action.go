package weight

import (
	"github.com/arlojs/wsgraph/content"
	"github.com/arlojs/wsgraph/id"
)

// ActionState is the lifecycle state of a queued Action.
type ActionState uint8

const (
	ActionStateQueued ActionState = iota
	ActionStateRunning
	ActionStateOnHold
	ActionStateFailed
)

func (s ActionState) String() string {
	switch s {
	case ActionStateQueued:
		return "Queued"
	case ActionStateRunning:
		return "Running"
	case ActionStateOnHold:
		return "OnHold"
	case ActionStateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// ActionNode represents one queued or in-flight action against a
// component.
type ActionNode struct {
	base
	State               ActionState
	OriginatingChangeID id.ID
}

// NewActionNode constructs an ActionNode in the Queued state.
func NewActionNode(nodeID, originatingChangeID id.ID) *ActionNode {
	return &ActionNode{base: newBase(nodeID), State: ActionStateQueued, OriginatingChangeID: originatingChangeID}
}

func (n *ActionNode) Kind() Kind { return KindAction }

func (n *ActionNode) NodeHash() content.ContentHash {
	return content.NewHasher().
		WriteUint64(uint64(n.State)).
		WriteBytes(n.OriginatingChangeID[:]).
		SumContent()
}

func (n *ActionNode) Clone() Node {
	c := *n
	return &c
}

// ActionPrototypeNode describes how to run one kind of action (create,
// update, delete, refresh, or a named manual action) for a schema
// variant.
type ActionPrototypeNode struct {
	base
	ActionKind string
	Name       string
}

// NewActionPrototypeNode constructs an ActionPrototypeNode.
func NewActionPrototypeNode(nodeID id.ID, actionKind, name string) *ActionPrototypeNode {
	return &ActionPrototypeNode{base: newBase(nodeID), ActionKind: actionKind, Name: name}
}

func (n *ActionPrototypeNode) Kind() Kind { return KindActionPrototype }

func (n *ActionPrototypeNode) NodeHash() content.ContentHash {
	return content.NewHasher().WriteString(n.ActionKind).WriteString(n.Name).SumContent()
}

func (n *ActionPrototypeNode) Clone() Node {
	c := *n
	return &c
}

// ManagementPrototypeNode describes a management function bound to a
// schema variant, reachable from the components it manages via
// Manages-kind edges.
type ManagementPrototypeNode struct {
	base
	Name string
}

// NewManagementPrototypeNode constructs a ManagementPrototypeNode.
func NewManagementPrototypeNode(nodeID id.ID, name string) *ManagementPrototypeNode {
	return &ManagementPrototypeNode{base: newBase(nodeID), Name: name}
}

func (n *ManagementPrototypeNode) Kind() Kind { return KindManagementPrototype }

func (n *ManagementPrototypeNode) NodeHash() content.ContentHash {
	return content.NewHasher().WriteString(n.Name).SumContent()
}

func (n *ManagementPrototypeNode) Clone() Node {
	c := *n
	return &c
}

// ApprovalRequirementDefinitionNode declares that changes touching the
// node it is attached to require at least MinimumApprovers sign-offs
// before they may be applied.
type ApprovalRequirementDefinitionNode struct {
	base
	MinimumApprovers int
}

// NewApprovalRequirementDefinitionNode constructs an
// ApprovalRequirementDefinitionNode.
func NewApprovalRequirementDefinitionNode(nodeID id.ID, minimumApprovers int) *ApprovalRequirementDefinitionNode {
	return &ApprovalRequirementDefinitionNode{base: newBase(nodeID), MinimumApprovers: minimumApprovers}
}

func (n *ApprovalRequirementDefinitionNode) Kind() Kind { return KindApprovalRequirementDefinition }

func (n *ApprovalRequirementDefinitionNode) NodeHash() content.ContentHash {
	return content.NewHasher().WriteUint64(uint64(n.MinimumApprovers)).SumContent()
}

func (n *ApprovalRequirementDefinitionNode) Clone() Node {
	c := *n
	return &c
}
