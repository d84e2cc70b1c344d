package weight

import (
	"github.com/arlojs/wsgraph/content"
	"github.com/arlojs/wsgraph/id"
)

// Kind discriminates the node weight variants.
type Kind uint8

const (
	KindContent Kind = iota
	KindCategory
	KindOrdering
	KindAttributeValue
	KindAttributePrototypeArgument
	KindAction
	KindActionPrototype
	KindComponent
	KindFunc
	KindFuncArgument
	KindGeometry
	KindInputSocket
	KindProp
	KindSchemaVariant
	KindSecret
	KindView
	KindManagementPrototype
	KindDiagramObject
	KindApprovalRequirementDefinition
	KindDependentValueRoot
	KindFinishedDependentValueRoot
	KindReason
)

// String returns the canonical name of k, used in dot/debug dumps and
// serialized snapshots.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

var kindNames = [...]string{
	KindContent:                        "Content",
	KindCategory:                       "Category",
	KindOrdering:                       "Ordering",
	KindAttributeValue:                 "AttributeValue",
	KindAttributePrototypeArgument:     "AttributePrototypeArgument",
	KindAction:                         "Action",
	KindActionPrototype:                "ActionPrototype",
	KindComponent:                      "Component",
	KindFunc:                           "Func",
	KindFuncArgument:                   "FuncArgument",
	KindGeometry:                       "Geometry",
	KindInputSocket:                    "InputSocket",
	KindProp:                           "Prop",
	KindSchemaVariant:                  "SchemaVariant",
	KindSecret:                         "Secret",
	KindView:                           "View",
	KindManagementPrototype:            "ManagementPrototype",
	KindDiagramObject:                  "DiagramObject",
	KindApprovalRequirementDefinition:  "ApprovalRequirementDefinition",
	KindDependentValueRoot:             "DependentValueRoot",
	KindFinishedDependentValueRoot:     "FinishedDependentValueRoot",
	KindReason:                         "Reason",
}

// Node is implemented by every node weight variant. See the package doc
// for why this is an interface plus concrete structs rather than one
// struct with optional fields.
type Node interface {
	// ID returns the node's identity ID.
	ID() id.ID
	// LineageID returns the node's lineage ID, stable across identity
	// changes (see snapshot.Graph.UpdateNodeID).
	LineageID() id.ID
	// SetIdentity overwrites both the identity and lineage ID. Used by
	// snapshot.Graph.UpdateNodeID, snapshot.Graph.UpdateContent and
	// snapshot.FromSnapshot.
	SetIdentity(newID, newLineage id.ID)
	// MerkleHash returns the node's last-computed Merkle tree hash.
	// Returns the zero hash before the node has been hashed.
	MerkleHash() content.MerkleTreeHash
	// SetMerkleHash overwrites the node's cached Merkle tree hash. Called
	// only by package snapshot's hasher.
	SetMerkleHash(content.MerkleTreeHash)
	// Kind returns the variant discriminant.
	Kind() Kind
	// NodeHash digests this node's own local fields, excluding identity,
	// lineage, and Merkle hash. Two nodes with equal NodeHash are
	// considered content-equal regardless of where they sit in a graph.
	NodeHash() content.ContentHash
	// Clone returns a deep copy with the same identity, lineage, and
	// content, suitable for use in a different Graph instance (see
	// snapshot.Graph.Subgraph and snapshot.Graph.ImportComponentSubgraph).
	Clone() Node
}

// base is embedded by every concrete Node implementation.
type base struct {
	id        id.ID
	lineageID id.ID
	merkle    content.MerkleTreeHash
}

func (b *base) ID() id.ID                    { return b.id }
func (b *base) LineageID() id.ID             { return b.lineageID }
func (b *base) MerkleHash() content.MerkleTreeHash { return b.merkle }

func (b *base) SetIdentity(newID, newLineage id.ID) {
	b.id = newID
	b.lineageID = newLineage
}

func (b *base) SetMerkleHash(h content.MerkleTreeHash) {
	b.merkle = h
}

// newBase constructs the embedded base for a freshly-created node: its
// own ID doubles as its initial lineage ID, matching the original
// system's "a node's lineage begins with its own ID" convention.
func newBase(nodeID id.ID) base {
	return base{id: nodeID, lineageID: nodeID}
}
