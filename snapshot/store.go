package snapshot

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/arlojs/wsgraph/id"
	"github.com/arlojs/wsgraph/weight"
)

// NodeIndex addresses a node slot. NodeIndex values are stable across
// removal of other nodes but are recycled once a slot is freed; hold an
// id.ID, not a NodeIndex, across any call that might mutate the graph.
type NodeIndex int

// EdgeIndex addresses an edge slot, with the same stability and recycling
// rules as NodeIndex.
type EdgeIndex int

const invalidIndex = -1

type nodeSlot struct {
	weight  weight.Node
	present bool
}

type edgeSlot struct {
	source, target NodeIndex
	kind           weight.EdgeKind
	present        bool
}

// Graph is a stable-index directed multigraph of node and edge weights.
// See the package doc for its concurrency contract.
type Graph struct {
	nodes     []nodeSlot
	edges     []edgeSlot
	freeNodes []NodeIndex
	freeEdges []EdgeIndex

	nodeIndexByID          map[id.ID]NodeIndex
	nodeIndicesByLineageID map[id.ID][]NodeIndex

	outgoing map[NodeIndex][]EdgeIndex
	incoming map[NodeIndex][]EdgeIndex

	root    NodeIndex
	hasRoot bool

	touched map[NodeIndex]struct{}

	generator *id.Generator
	logger    *slog.Logger
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithLogger attaches a logger used for Debug-level operation tracing.
// A nil logger (the default) disables tracing at near-zero cost.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) { g.logger = logger }
}

// WithGenerator supplies a pre-configured id.Generator instead of the
// default one. Used by tests that need deterministic or frozen-clock
// generators.
func WithGenerator(gen *id.Generator) Option {
	return func(g *Graph) { g.generator = gen }
}

// New returns an empty Graph with no root node.
func New(opts ...Option) *Graph {
	g := &Graph{
		nodeIndexByID:          make(map[id.ID]NodeIndex),
		nodeIndicesByLineageID: make(map[id.ID][]NodeIndex),
		outgoing:               make(map[NodeIndex][]EdgeIndex),
		incoming:               make(map[NodeIndex][]EdgeIndex),
		touched:                make(map[NodeIndex]struct{}),
		root:                   invalidIndex,
		generator:              id.NewGenerator(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewWithRoot returns a Graph whose root is a fresh Category-kind node
// acting as the toplevel container, matching the original system's
// convention that every graph has a distinguished root.
func NewWithRoot(opts ...Option) (*Graph, error) {
	g := New(opts...)
	rootID, err := g.generator.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMutexPoison, err)
	}
	root := weight.NewCategoryNode(rootID, "Root")
	idx := g.insertNode(root)
	g.root = idx
	g.hasRoot = true
	g.touched[idx] = struct{}{}
	return g, nil
}

// GenerateID issues a fresh id.ID from the graph's internal generator.
func (g *Graph) GenerateID() (id.ID, error) {
	next, err := g.generator.Generate()
	if err != nil {
		return id.ID{}, fmt.Errorf("%w: %v", ErrMutexPoison, err)
	}
	return next, nil
}

// Root returns the index of the graph's root node.
func (g *Graph) Root() (NodeIndex, error) {
	if !g.hasRoot {
		return invalidIndex, ErrNoRoot
	}
	return g.root, nil
}

// NodeWeight returns the weight stored at idx.
func (g *Graph) NodeWeight(idx NodeIndex) (weight.Node, error) {
	if idx < 0 || int(idx) >= len(g.nodes) || !g.nodes[idx].present {
		return nil, ErrNodeWeightNotFound
	}
	return g.nodes[idx].weight, nil
}

// NodeIndexByID returns the index of the live node with the given
// identity id.
func (g *Graph) NodeIndexByID(nodeID id.ID) (NodeIndex, error) {
	idx, ok := g.nodeIndexByID[nodeID]
	if !ok {
		return invalidIndex, ErrNodeWithIDNotFound
	}
	return idx, nil
}

// NodeWeightByID looks up a node weight by identity id.
func (g *Graph) NodeWeightByID(nodeID id.ID) (weight.Node, error) {
	idx, err := g.NodeIndexByID(nodeID)
	if err != nil {
		return nil, err
	}
	return g.NodeWeight(idx)
}

// NodeIndicesByLineageID returns every live node index sharing the given
// lineage id, across all the identity changes that lineage has undergone,
// sorted ascending by identity id for deterministic iteration.
func (g *Graph) NodeIndicesByLineageID(lineageID id.ID) []NodeIndex {
	indices := g.nodeIndicesByLineageID[lineageID]
	if len(indices) == 0 {
		return nil
	}
	out := slices.Clone(indices)
	slices.SortFunc(out, func(a, b NodeIndex) int {
		aw, _ := g.NodeWeight(a)
		bw, _ := g.NodeWeight(b)
		return aw.ID().Compare(bw.ID())
	})
	return out
}

// insertNode places w into a free or new slot and updates the secondary
// indices, returning the assigned index. It does not touch the touched
// set; callers that mutate graph content are responsible for that.
func (g *Graph) insertNode(w weight.Node) NodeIndex {
	var idx NodeIndex
	if n := len(g.freeNodes); n > 0 {
		idx = g.freeNodes[n-1]
		g.freeNodes = g.freeNodes[:n-1]
		g.nodes[idx] = nodeSlot{weight: w, present: true}
	} else {
		idx = NodeIndex(len(g.nodes))
		g.nodes = append(g.nodes, nodeSlot{weight: w, present: true})
	}
	g.nodeIndexByID[w.ID()] = idx
	g.nodeIndicesByLineageID[w.LineageID()] = append(g.nodeIndicesByLineageID[w.LineageID()], idx)
	return idx
}

// Nodes returns every live node index in ascending order. Primarily
// useful for full-graph traversal (cleanup, subgraph extraction, dump).
func (g *Graph) Nodes() []NodeIndex {
	out := make([]NodeIndex, 0, len(g.nodes))
	for i, slot := range g.nodes {
		if slot.present {
			out = append(out, NodeIndex(i))
		}
	}
	return out
}

// EdgeEndpoints returns the source and target of the edge at idx.
func (g *Graph) EdgeEndpoints(idx EdgeIndex) (source, target NodeIndex, kind weight.EdgeKind, err error) {
	if idx < 0 || int(idx) >= len(g.edges) || !g.edges[idx].present {
		return invalidIndex, invalidIndex, weight.EdgeKind{}, ErrEdgeDoesNotExist
	}
	e := g.edges[idx]
	return e.source, e.target, e.kind, nil
}

// OutgoingEdges returns every edge index leaving source, sorted
// ascending by (target id, kind discriminant, aux data) for
// deterministic iteration.
func (g *Graph) OutgoingEdges(source NodeIndex) []EdgeIndex {
	return g.sortedEdges(g.outgoing[source])
}

// IncomingEdges returns every edge index arriving at target, sorted the
// same way as OutgoingEdges.
func (g *Graph) IncomingEdges(target NodeIndex) []EdgeIndex {
	return g.sortedEdges(g.incoming[target])
}

func (g *Graph) sortedEdges(indices []EdgeIndex) []EdgeIndex {
	if len(indices) == 0 {
		return nil
	}
	out := slices.Clone(indices)
	slices.SortFunc(out, func(a, b EdgeIndex) int {
		ea, eb := g.edges[a], g.edges[b]
		aID, _ := g.nodeWeightUnsafe(ea.target)
		bID, _ := g.nodeWeightUnsafe(eb.target)
		if c := aID.Compare(bID); c != 0 {
			return c
		}
		return ea.kind.Compare(eb.kind)
	})
	return out
}

func (g *Graph) nodeWeightUnsafe(idx NodeIndex) (id.ID, error) {
	w, err := g.NodeWeight(idx)
	if err != nil {
		return id.ID{}, err
	}
	return w.ID(), nil
}

// OutgoingEdgesOfKind returns every outgoing edge from source whose kind
// discriminant matches d, in the same deterministic order as
// OutgoingEdges.
func (g *Graph) OutgoingEdgesOfKind(source NodeIndex, d weight.EdgeKindDiscriminant) []EdgeIndex {
	var out []EdgeIndex
	for _, idx := range g.OutgoingEdges(source) {
		if g.edges[idx].kind.Discriminant == d {
			out = append(out, idx)
		}
	}
	return out
}

// IncomingEdgesOfKind returns every incoming edge to target whose kind
// discriminant matches d.
func (g *Graph) IncomingEdgesOfKind(target NodeIndex, d weight.EdgeKindDiscriminant) []EdgeIndex {
	var out []EdgeIndex
	for _, idx := range g.IncomingEdges(target) {
		if g.edges[idx].kind.Discriminant == d {
			out = append(out, idx)
		}
	}
	return out
}

// ExactlyOneOutgoingEdgeOfKind returns the single outgoing edge from
// source of kind discriminant d, or an error if there is not exactly one.
func (g *Graph) ExactlyOneOutgoingEdgeOfKind(source NodeIndex, d weight.EdgeKindDiscriminant) (EdgeIndex, error) {
	edges := g.OutgoingEdgesOfKind(source, d)
	switch len(edges) {
	case 0:
		return invalidIndex, ErrNoEdgesOfKindFound
	case 1:
		return edges[0], nil
	default:
		return invalidIndex, ErrTooManyEdgesOfKind
	}
}

// Targets returns the target node index of every outgoing edge from
// source, in the same order as OutgoingEdges.
func (g *Graph) Targets(source NodeIndex) []NodeIndex {
	edges := g.OutgoingEdges(source)
	out := make([]NodeIndex, len(edges))
	for i, e := range edges {
		out[i] = g.edges[e].target
	}
	return out
}

// Sources returns the source node index of every incoming edge to
// target, in the same order as IncomingEdges.
func (g *Graph) Sources(target NodeIndex) []NodeIndex {
	edges := g.IncomingEdges(target)
	out := make([]NodeIndex, len(edges))
	for i, e := range edges {
		out[i] = g.edges[e].source
	}
	return out
}

// FindEdge returns the edge from source to target with the given kind,
// if one exists.
func (g *Graph) FindEdge(source, target NodeIndex, kind weight.EdgeKind) (EdgeIndex, error) {
	for _, idx := range g.outgoing[source] {
		e := g.edges[idx]
		if e.target == target && e.kind.Equal(kind) {
			return idx, nil
		}
	}
	return invalidIndex, ErrEdgeDoesNotExist
}

// GetCategoryNode returns the index of the singleton CategoryNode with
// the given category kind, reachable directly from root.
func (g *Graph) GetCategoryNode(categoryKind string) (NodeIndex, error) {
	root, err := g.Root()
	if err != nil {
		return invalidIndex, err
	}
	for _, target := range g.Targets(root) {
		w, err := g.NodeWeight(target)
		if err != nil {
			continue
		}
		cat, ok := w.(*weight.CategoryNode)
		if ok && cat.CategoryKind == categoryKind {
			return target, nil
		}
	}
	return invalidIndex, ErrCategoryNodeNotFound
}

// OrderingNodeForContainer returns the index of the Ordering node
// attached to container via its single outgoing Ordering-kind edge.
func (g *Graph) OrderingNodeForContainer(container NodeIndex) (NodeIndex, error) {
	edges := g.OutgoingEdgesOfKind(container, weight.EdgeOrdering)
	switch len(edges) {
	case 0:
		return invalidIndex, ErrNoEdgesOfKindFound
	case 1:
		return g.edges[edges[0]].target, nil
	default:
		return invalidIndex, ErrTooManyOrderingForNode
	}
}

// OrderedChildrenForNode returns container's children in explicit order,
// per the OrderingNode reached via the container's Ordering-kind edge.
func (g *Graph) OrderedChildrenForNode(container NodeIndex) ([]NodeIndex, error) {
	orderingIdx, err := g.OrderingNodeForContainer(container)
	if err != nil {
		return nil, err
	}
	orderingW, err := g.NodeWeight(orderingIdx)
	if err != nil {
		return nil, err
	}
	ordering, ok := orderingW.(*weight.OrderingNode)
	if !ok {
		return nil, fmt.Errorf("%w: ordering target is not an OrderingNode", ErrInternal)
	}
	out := make([]NodeIndex, 0, len(ordering.Order()))
	for _, childID := range ordering.Order() {
		childIdx, err := g.NodeIndexByID(childID)
		if err != nil {
			return nil, err
		}
		out = append(out, childIdx)
	}
	return out, nil
}
