package snapshot

import (
	"errors"
	"fmt"
)

// ErrInternal is the base error for every sentinel in this package, so a
// caller can test errors.Is(err, ErrInternal) to recognize any error this
// package returns. ErrContentStore wraps ErrInternal as well, so that
// test does not separate content-store errors from other engine errors;
// errors.Is(err, ErrContentStore) does.
var ErrInternal = errors.New("snapshot: internal error")

var (
	// ErrNodeWithIDNotFound indicates an id.ID that does not name any
	// live node in the graph.
	ErrNodeWithIDNotFound = fmt.Errorf("%w: node with id not found", ErrInternal)

	// ErrNodeWeightNotFound indicates a NodeIndex that does not name any
	// live node slot.
	ErrNodeWeightNotFound = fmt.Errorf("%w: node weight not found", ErrInternal)

	// ErrEdgeDoesNotExist indicates an EdgeIndex, or a (source, target,
	// kind) triple, that does not name any live edge.
	ErrEdgeDoesNotExist = fmt.Errorf("%w: edge does not exist", ErrInternal)

	// ErrNoEdgesOfKindFound is returned by an exactly-one accessor when
	// zero edges of the requested kind exist.
	ErrNoEdgesOfKindFound = fmt.Errorf("%w: no edges of kind found", ErrInternal)

	// ErrTooManyEdgesOfKind is returned by an exactly-one accessor when
	// more than one edge of the requested kind exists.
	ErrTooManyEdgesOfKind = fmt.Errorf("%w: too many edges of kind found", ErrInternal)

	// ErrTooManyOrderingForNode indicates a container with more than one
	// outgoing Ordering-kind edge, violating the ordered container
	// invariant.
	ErrTooManyOrderingForNode = fmt.Errorf("%w: too many ordering nodes for container", ErrInternal)

	// ErrTooManyPropForNode indicates a lookup expecting at most one
	// Prop-kind child found more than one.
	ErrTooManyPropForNode = fmt.Errorf("%w: too many prop children for node", ErrInternal)

	// ErrCategoryNodeNotFound indicates the singleton category node for
	// a given category kind does not exist in the graph.
	ErrCategoryNodeNotFound = fmt.Errorf("%w: category node not found", ErrInternal)

	// ErrCreateGraphCycle indicates an operation would introduce a cycle
	// into the graph. It aborts the operation without mutating the
	// graph.
	ErrCreateGraphCycle = fmt.Errorf("%w: operation would create a cycle", ErrInternal)

	// ErrMutexPoison indicates the graph's id.Generator has been
	// poisoned by a prior panic; see id.ErrGeneratorPoisoned.
	ErrMutexPoison = fmt.Errorf("%w: id generator poisoned", ErrInternal)

	// ErrInvalidOrder is returned by UpdateOrder when the caller's new
	// order references ids that are not currently children of the
	// container, or omits/duplicates a current child.
	ErrInvalidOrder = fmt.Errorf("%w: invalid order", ErrInternal)

	// ErrSerialize indicates a Graph failed to marshal to a Snapshot.
	ErrSerialize = fmt.Errorf("%w: serialize failed", ErrInternal)

	// ErrDeserialize indicates a Snapshot failed to unmarshal into a
	// Graph, including an unsupported FormatVersion.
	ErrDeserialize = fmt.Errorf("%w: deserialize failed", ErrInternal)

	// ErrContentStore wraps an error returned by a cas.Store
	// collaborator, surfaced unchanged to the caller.
	ErrContentStore = fmt.Errorf("%w: content store error", ErrInternal)

	// ErrNoRoot indicates an operation requires a root node but none has
	// been set.
	ErrNoRoot = fmt.Errorf("%w: graph has no root", ErrInternal)
)
