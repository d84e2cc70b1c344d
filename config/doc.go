// Package config holds the inert configuration bundle consumed by a
// service built on top of the graph engine (cmd/rebaserd): connection
// parameters for a cas.Store backend, for a NATS messaging layer, and a
// filesystem path to the key used to encrypt SecretNode payloads at the
// service tier. None of it affects graph semantics; package snapshot
// never imports this package.
package config
