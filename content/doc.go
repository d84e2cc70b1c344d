// Package content provides the two digest types used across the graph
// engine: [ContentHash], identifying opaque bytes stored in a
// content-addressed store, and [MerkleTreeHash], identifying a node plus
// everything reachable beneath it in a snapshot. Both are 32-byte blake2b
// digests; they are kept as distinct Go types so a value computed for one
// purpose cannot be passed to an API expecting the other without an
// explicit conversion at the call site.
package content
