// Package wsgraph provides a content-addressed, versioned DAG representing
// a workspace's full state: schema variants, components, properties,
// functions, attribute values, sockets, views, and the edges between them.
//
// It supports concurrent editing via independent change-sets, per-subtree
// Merkle hashing for cheap equality and change detection, diffing between
// snapshots, and rebasing one snapshot's changes onto another.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - id: monotonic sortable node/edge identifiers
//	  - content: ContentHash / MerkleTreeHash primitives and the incremental Hasher
//
//	Core library tier:
//	  - weight: node and edge weight types (the 22 node kinds, edge kind discriminants)
//	  - snapshot: the graph store, Merkle hasher, change detector, and rebaser/applier
//
//	Collaborator tier:
//	  - cas: the content-addressed store interface a snapshot's leaf content lives in
//	  - config: ambient configuration for the service entry points
//
//	Entry points:
//	  - cmd/graphctl: offline snapshot inspection (dump, detect)
//	  - cmd/rebaserd: the service process that wires config, logging, and a cas.Store
//
// # Entry Points
//
// Building a snapshot:
//
//	import "github.com/arlojs/wsgraph/snapshot"
//
//	g, err := snapshot.NewWithRoot()
//	if err != nil {
//	    // internal error
//	}
//	idx := g.AddOrReplaceNode(ctx, someNode)
//
// Detecting and applying changes between two snapshots of the same lineage:
//
//	updates, err := base.DetectUpdates(ctx, updated)
//	if err != nil {
//	    // internal error
//	}
//	if err := base.PerformUpdates(ctx, updates); err != nil {
//	    // internal error
//	}
//	if err := base.CleanupAndRehash(ctx); err != nil {
//	    // internal error
//	}
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/arlojs/wsgraph/id]: identifier generation
//   - [github.com/arlojs/wsgraph/content]: content hashing primitives
//   - [github.com/arlojs/wsgraph/weight]: node and edge weight types
//   - [github.com/arlojs/wsgraph/snapshot]: the graph engine itself
//   - [github.com/arlojs/wsgraph/cas]: content-addressed store interface
//   - [github.com/arlojs/wsgraph/config]: ambient service configuration
package wsgraph
