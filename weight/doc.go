// Package weight defines the node and edge weight types carried by
// snapshot graph nodes and edges.
//
// [Node] is a small closed interface implemented by one concrete struct
// per node variant (ContentNode, CategoryNode, OrderingNode, and so on).
// Go has no tagged union, so the variants are modeled as an interface
// plus concrete types rather than as one struct with a discriminant and
// a pile of optional fields; callers that need to act on a specific
// variant use a type switch on the concrete type, or inspect [Node.Kind]
// when only the discriminant itself matters.
//
// Every Node carries an identity ID, a lineage ID, and a Merkle tree
// hash; [Node.NodeHash] digests only a node's own local fields, never
// its identity or its position in any graph — the Merkle tree hash that
// folds in graph structure is computed by package snapshot, not here.
package weight
