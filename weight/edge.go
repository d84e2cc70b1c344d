package weight

import (
	"cmp"

	"github.com/arlojs/wsgraph/content"
)

// EdgeKindDiscriminant distinguishes the closed set of edge kinds a
// snapshot graph may contain. A few discriminants carry auxiliary data
// that participates in Merkle hashing and in EdgeKind equality (see
// EdgeKind); the rest are purely structural. The at-most-one-edge rule
// of snapshot.Graph.AddEdge is keyed by discriminant alone, so two edges
// between the same endpoints cannot differ only in auxiliary data.
type EdgeKindDiscriminant uint8

const (
	EdgeUse EdgeKindDiscriminant = iota
	EdgeContain
	EdgePrototype
	EdgeValueSubscription
	EdgeOrdering
	EdgeOrdinal
	EdgeProp
	EdgeSocket
	EdgeSocketValue
	EdgeRoot
	EdgeProxy
	EdgeRepresents
	EdgeAction
	EdgeActionPrototype
	EdgePrototypeArgument
	EdgePrototypeArgumentValue
	EdgeDeprecatedFrameContains
	EdgeAuthenticationPrototype
	EdgeManagementPrototype
	EdgeManages
	EdgeDiagramObject
	EdgeDefaultSubscriptionSource
	EdgeApprovalRequirementDefinition
	EdgeReason
	EdgeValidationOutput
)

func (d EdgeKindDiscriminant) String() string {
	if int(d) < len(edgeKindNames) {
		return edgeKindNames[d]
	}
	return "Unknown"
}

var edgeKindNames = [...]string{
	EdgeUse:                           "Use",
	EdgeContain:                       "Contain",
	EdgePrototype:                     "Prototype",
	EdgeValueSubscription:             "ValueSubscription",
	EdgeOrdering:                      "Ordering",
	EdgeOrdinal:                       "Ordinal",
	EdgeProp:                          "Prop",
	EdgeSocket:                        "Socket",
	EdgeSocketValue:                   "SocketValue",
	EdgeRoot:                          "Root",
	EdgeProxy:                         "Proxy",
	EdgeRepresents:                    "Represents",
	EdgeAction:                        "Action",
	EdgeActionPrototype:               "ActionPrototype",
	EdgePrototypeArgument:             "PrototypeArgument",
	EdgePrototypeArgumentValue:        "PrototypeArgumentValue",
	EdgeDeprecatedFrameContains:       "DeprecatedFrameContains",
	EdgeAuthenticationPrototype:       "AuthenticationPrototype",
	EdgeManagementPrototype:           "ManagementPrototype",
	EdgeManages:                       "Manages",
	EdgeDiagramObject:                 "DiagramObject",
	EdgeDefaultSubscriptionSource:     "DefaultSubscriptionSource",
	EdgeApprovalRequirementDefinition: "ApprovalRequirementDefinition",
	EdgeReason:                        "Reason",
	EdgeValidationOutput:              "ValidationOutput",
}

// EdgeKind is the weight carried by every graph edge: a discriminant
// plus whatever auxiliary data that discriminant requires.
//
//   - Use carries IsDefault, distinguishing the one default Use edge
//     among possibly several siblings from a container.
//   - Contain and Prototype optionally carry Key, a map/array key when
//     the edge represents membership in a keyed collection.
//   - ValueSubscription carries Path, the subscribed-to value's location
//     expression.
//
// All other discriminants carry no auxiliary data.
type EdgeKind struct {
	Discriminant EdgeKindDiscriminant
	IsDefault    bool
	Key          string
	HasKey       bool
	Path         string
}

// NewUse constructs a Use edge kind.
func NewUse(isDefault bool) EdgeKind {
	return EdgeKind{Discriminant: EdgeUse, IsDefault: isDefault}
}

// NewContain constructs a Contain edge kind, optionally keyed.
func NewContain(key string, hasKey bool) EdgeKind {
	return EdgeKind{Discriminant: EdgeContain, Key: key, HasKey: hasKey}
}

// NewPrototype constructs a Prototype edge kind, optionally keyed.
func NewPrototype(key string, hasKey bool) EdgeKind {
	return EdgeKind{Discriminant: EdgePrototype, Key: key, HasKey: hasKey}
}

// NewValueSubscription constructs a ValueSubscription edge kind.
func NewValueSubscription(path string) EdgeKind {
	return EdgeKind{Discriminant: EdgeValueSubscription, Path: path}
}

// Structural constructs an edge kind carrying no auxiliary data, for any
// of the purely-structural discriminants.
func Structural(d EdgeKindDiscriminant) EdgeKind {
	return EdgeKind{Discriminant: d}
}

// HashInto mixes k's discriminant and auxiliary data into h, for use
// when computing a parent node's Merkle tree hash from its children and
// the edges connecting them.
func (k EdgeKind) HashInto(h *content.Hasher) {
	h.WriteUint64(uint64(k.Discriminant))
	switch k.Discriminant {
	case EdgeUse:
		h.WriteBool(k.IsDefault)
	case EdgeContain, EdgePrototype:
		h.WriteBool(k.HasKey)
		if k.HasKey {
			h.WriteString(k.Key)
		}
	case EdgeValueSubscription:
		h.WriteString(k.Path)
	}
}

// auxKey returns a string that, combined with Discriminant, totally
// orders edges of the same kind for deterministic detector/dump output.
func (k EdgeKind) auxKey() string {
	switch k.Discriminant {
	case EdgeUse:
		if k.IsDefault {
			return "1"
		}
		return "0"
	case EdgeContain, EdgePrototype:
		if k.HasKey {
			return k.Key
		}
		return ""
	case EdgeValueSubscription:
		return k.Path
	default:
		return ""
	}
}

// Compare totally orders edge kinds for deterministic iteration: first
// by discriminant, then by auxiliary data.
func (k EdgeKind) Compare(other EdgeKind) int {
	if c := cmp.Compare(k.Discriminant, other.Discriminant); c != 0 {
		return c
	}
	return cmp.Compare(k.auxKey(), other.auxKey())
}

// Equal reports whether k and other are the same discriminant with the
// same auxiliary data.
func (k EdgeKind) Equal(other EdgeKind) bool {
	return k.Compare(other) == 0
}
