package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/arlojs/wsgraph/content"
	"github.com/arlojs/wsgraph/id"
	"github.com/arlojs/wsgraph/weight"
)

// SnapshotFormatVersion is bumped whenever the wire shape of Snapshot
// changes in a way that breaks FromSnapshot on older data.
const SnapshotFormatVersion = 1

// SerializedNode is one node's wire representation: identity, lineage
// and Merkle hash are stored alongside a Kind tag and a Payload holding
// the kind-specific fields, so FromSnapshot knows which concrete Node
// type to reconstruct.
type SerializedNode struct {
	Index     NodeIndex              `json:"index"`
	ID        id.ID                  `json:"id"`
	LineageID id.ID                  `json:"lineageId"`
	Kind      weight.Kind            `json:"kind"`
	Merkle    content.MerkleTreeHash `json:"merkle"`
	Payload   json.RawMessage        `json:"payload"`
}

// SerializedEdge is one edge's wire representation, addressed by the
// same NodeIndex values used in the accompanying Snapshot.Nodes.
type SerializedEdge struct {
	Source NodeIndex       `json:"source"`
	Target NodeIndex       `json:"target"`
	Kind   weight.EdgeKind `json:"kind"`
}

// Snapshot is the serialized projection of a Graph: every live node and
// edge, plus which node (if any) is root. The id.Generator and the
// touched set are process-local and are never part of a Snapshot;
// FromSnapshot gives the returned Graph a fresh generator and marks
// every node touched so a caller can run RehashAll to restore Merkle
// hashes (Merkle hashes are carried for inspection, but re-deriving them
// after deserialization is the safer default since the wire format
// predates a future node-variant field may have been added by a
// newer writer).
type Snapshot struct {
	FormatVersion int              `json:"formatVersion"`
	Nodes         []SerializedNode `json:"nodes"`
	Edges         []SerializedEdge `json:"edges"`
	HasRoot       bool             `json:"hasRoot"`
	RootIndex     NodeIndex        `json:"rootIndex"`
}

// ToSnapshot marshals g into a Snapshot. NodeIndex values in the result
// are g's current slot positions, which FromSnapshot does not promise to
// preserve; only node identity, lineage, and topology round-trip.
func (g *Graph) ToSnapshot() (Snapshot, error) {
	snap := Snapshot{FormatVersion: SnapshotFormatVersion}

	for _, idx := range g.Nodes() {
		w, err := g.NodeWeight(idx)
		if err != nil {
			continue
		}
		payload, err := json.Marshal(w)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: node %s: %v", ErrSerialize, w.ID(), err)
		}
		snap.Nodes = append(snap.Nodes, SerializedNode{
			Index:     idx,
			ID:        w.ID(),
			LineageID: w.LineageID(),
			Kind:      w.Kind(),
			Merkle:    w.MerkleHash(),
			Payload:   payload,
		})
	}

	for _, idx := range g.Nodes() {
		for _, e := range g.outgoing[idx] {
			edge := g.edges[e]
			snap.Edges = append(snap.Edges, SerializedEdge{Source: idx, Target: edge.target, Kind: edge.kind})
		}
	}

	if g.hasRoot {
		snap.HasRoot = true
		snap.RootIndex = g.root
	}
	return snap, nil
}

// FromSnapshot reconstructs a Graph from snap. The returned Graph has a
// fresh id.Generator and every node marked touched, since Merkle hashes
// from an older FormatVersion cannot be trusted without recomputation;
// callers should follow FromSnapshot with RehashAll before relying on
// Merkle hashes for comparison or detection.
func FromSnapshot(snap Snapshot, opts ...Option) (*Graph, error) {
	if snap.FormatVersion != SnapshotFormatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrDeserialize, snap.FormatVersion)
	}

	g := New(opts...)
	indexMap := make(map[NodeIndex]NodeIndex, len(snap.Nodes))

	for _, sn := range snap.Nodes {
		w, err := unmarshalNode(sn.Kind, sn.Payload)
		if err != nil {
			return nil, fmt.Errorf("%w: node %s: %v", ErrDeserialize, sn.ID, err)
		}
		w.SetIdentity(sn.ID, sn.LineageID)
		w.SetMerkleHash(sn.Merkle)
		indexMap[sn.Index] = g.insertNode(w)
	}

	for _, se := range snap.Edges {
		source, ok := indexMap[se.Source]
		if !ok {
			continue
		}
		target, ok := indexMap[se.Target]
		if !ok {
			continue
		}
		g.insertEdge(source, target, se.Kind)
	}

	if snap.HasRoot {
		if rootIdx, ok := indexMap[snap.RootIndex]; ok {
			g.root = rootIdx
			g.hasRoot = true
		}
	}

	for _, idx := range g.Nodes() {
		g.touched[idx] = struct{}{}
	}
	return g, nil
}

// unmarshalNode instantiates the concrete Node type named by kind and
// unmarshals payload into it.
func unmarshalNode(kind weight.Kind, payload json.RawMessage) (weight.Node, error) {
	var w weight.Node
	switch kind {
	case weight.KindContent:
		w = &weight.ContentNode{}
	case weight.KindCategory:
		w = &weight.CategoryNode{}
	case weight.KindOrdering:
		w = &weight.OrderingNode{}
	case weight.KindAttributeValue:
		w = &weight.AttributeValueNode{}
	case weight.KindAttributePrototypeArgument:
		w = &weight.AttributePrototypeArgumentNode{}
	case weight.KindAction:
		w = &weight.ActionNode{}
	case weight.KindActionPrototype:
		w = &weight.ActionPrototypeNode{}
	case weight.KindComponent:
		w = &weight.ComponentNode{}
	case weight.KindFunc:
		w = &weight.FuncNode{}
	case weight.KindFuncArgument:
		w = &weight.FuncArgumentNode{}
	case weight.KindGeometry:
		w = &weight.GeometryNode{}
	case weight.KindInputSocket:
		w = &weight.InputSocketNode{}
	case weight.KindProp:
		w = &weight.PropNode{}
	case weight.KindSchemaVariant:
		w = &weight.SchemaVariantNode{}
	case weight.KindSecret:
		w = &weight.SecretNode{}
	case weight.KindView:
		w = &weight.ViewNode{}
	case weight.KindManagementPrototype:
		w = &weight.ManagementPrototypeNode{}
	case weight.KindDiagramObject:
		w = &weight.DiagramObjectNode{}
	case weight.KindApprovalRequirementDefinition:
		w = &weight.ApprovalRequirementDefinitionNode{}
	case weight.KindDependentValueRoot:
		w = &weight.DependentValueRootNode{}
	case weight.KindFinishedDependentValueRoot:
		w = &weight.FinishedDependentValueRootNode{}
	case weight.KindReason:
		w = &weight.ReasonNode{}
	default:
		return nil, fmt.Errorf("unknown node kind %d", kind)
	}
	if err := json.Unmarshal(payload, w); err != nil {
		return nil, err
	}
	return w, nil
}
