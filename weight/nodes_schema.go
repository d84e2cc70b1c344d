package weight

import (
	"github.com/arlojs/wsgraph/content"
	"github.com/arlojs/wsgraph/id"
)

// ComponentNode is an instantiation of a schema variant within a
// workspace. Its properties, sockets, and values are reachable via edges
// to AttributeValue, InputSocket, and Geometry nodes; ComponentNode
// itself carries only lifecycle state.
type ComponentNode struct {
	base
	ToDelete bool
}

// NewComponentNode constructs a ComponentNode that is not marked for
// deletion.
func NewComponentNode(nodeID id.ID) *ComponentNode {
	return &ComponentNode{base: newBase(nodeID)}
}

func (n *ComponentNode) Kind() Kind { return KindComponent }

func (n *ComponentNode) NodeHash() content.ContentHash {
	return content.NewHasher().WriteBool(n.ToDelete).SumContent()
}

func (n *ComponentNode) Clone() Node {
	c := *n
	return &c
}

// FuncNode describes one executable function (an attribute function, a
// qualification, an action implementation, and so on).
type FuncNode struct {
	base
	Name    string
	Backend string
	Hidden  bool
}

// NewFuncNode constructs a FuncNode.
func NewFuncNode(nodeID id.ID, name, backend string) *FuncNode {
	return &FuncNode{base: newBase(nodeID), Name: name, Backend: backend}
}

func (n *FuncNode) Kind() Kind { return KindFunc }

func (n *FuncNode) NodeHash() content.ContentHash {
	return content.NewHasher().
		WriteString(n.Name).
		WriteString(n.Backend).
		WriteBool(n.Hidden).
		SumContent()
}

func (n *FuncNode) Clone() Node {
	c := *n
	return &c
}

// FuncArgumentNode declares one named, typed input a FuncNode accepts.
type FuncArgumentNode struct {
	base
	Name string
	Kind_ string
}

// NewFuncArgumentNode constructs a FuncArgumentNode. The parameter name
// kind shadows the method Kind, so it is stored in the Kind_ field.
func NewFuncArgumentNode(nodeID id.ID, name, kind string) *FuncArgumentNode {
	return &FuncArgumentNode{base: newBase(nodeID), Name: name, Kind_: kind}
}

func (n *FuncArgumentNode) Kind() Kind { return KindFuncArgument }

func (n *FuncArgumentNode) NodeHash() content.ContentHash {
	return content.NewHasher().WriteString(n.Name).WriteString(n.Kind_).SumContent()
}

func (n *FuncArgumentNode) Clone() Node {
	c := *n
	return &c
}

// PropNode is one node in a schema variant's property tree.
type PropNode struct {
	base
	Name     string
	PropKind string
	Hidden   bool
}

// NewPropNode constructs a PropNode.
func NewPropNode(nodeID id.ID, name, propKind string) *PropNode {
	return &PropNode{base: newBase(nodeID), Name: name, PropKind: propKind}
}

func (n *PropNode) Kind() Kind { return KindProp }

func (n *PropNode) NodeHash() content.ContentHash {
	return content.NewHasher().
		WriteString(n.Name).
		WriteString(n.PropKind).
		WriteBool(n.Hidden).
		SumContent()
}

func (n *PropNode) Clone() Node {
	c := *n
	return &c
}

// SchemaVariantNode describes one versioned shape of a schema: its
// property tree, sockets, and prototypes are reachable via edges.
type SchemaVariantNode struct {
	base
	Version     string
	Description string
}

// NewSchemaVariantNode constructs a SchemaVariantNode.
func NewSchemaVariantNode(nodeID id.ID, version string) *SchemaVariantNode {
	return &SchemaVariantNode{base: newBase(nodeID), Version: version}
}

func (n *SchemaVariantNode) Kind() Kind { return KindSchemaVariant }

func (n *SchemaVariantNode) NodeHash() content.ContentHash {
	return content.NewHasher().WriteString(n.Version).WriteString(n.Description).SumContent()
}

func (n *SchemaVariantNode) Clone() Node {
	c := *n
	return &c
}

// SecretNode references an encrypted secret payload. The engine never
// sees plaintext; EncryptedAddress names the CAS entry holding the
// ciphertext, encrypted under the key named by config.Config's secret
// key path at the service tier.
type SecretNode struct {
	base
	Name              string
	Description       string
	EncryptedAddress  content.ContentHash
}

// NewSecretNode constructs a SecretNode.
func NewSecretNode(nodeID id.ID, name string, encryptedAddress content.ContentHash) *SecretNode {
	return &SecretNode{base: newBase(nodeID), Name: name, EncryptedAddress: encryptedAddress}
}

func (n *SecretNode) Kind() Kind { return KindSecret }

func (n *SecretNode) NodeHash() content.ContentHash {
	return content.NewHasher().
		WriteString(n.Name).
		WriteString(n.Description).
		WriteBytes(n.EncryptedAddress[:]).
		SumContent()
}

func (n *SecretNode) Clone() Node {
	c := *n
	return &c
}

// InputSocketNode is a named input attachment point on a schema variant.
type InputSocketNode struct {
	base
	Name  string
	Arity string
}

// NewInputSocketNode constructs an InputSocketNode.
func NewInputSocketNode(nodeID id.ID, name, arity string) *InputSocketNode {
	return &InputSocketNode{base: newBase(nodeID), Name: name, Arity: arity}
}

func (n *InputSocketNode) Kind() Kind { return KindInputSocket }

func (n *InputSocketNode) NodeHash() content.ContentHash {
	return content.NewHasher().WriteString(n.Name).WriteString(n.Arity).SumContent()
}

func (n *InputSocketNode) Clone() Node {
	c := *n
	return &c
}
