// Package id provides the 128-bit monotonic identifier used throughout
// the graph engine for node identity and lineage tracking.
//
// An [ID] is 16 bytes: a 48-bit millisecond timestamp followed by 80 bits
// of randomness, laid out big-endian so that lexicographic byte order
// matches generation order. IDs produced by the same [Generator] are
// strictly increasing even if the wall clock does not advance, or moves
// backward, between calls.
//
// Every entity in the graph carries two IDs: an identity ID, which
// changes across content-preserving identity changes (see
// snapshot.Graph.UpdateNodeID), and a lineage ID, which is fixed for the
// life of the entity and survives identity changes. Both slots use the
// same [ID] type.
package id
