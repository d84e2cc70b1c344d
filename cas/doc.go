// Package cas defines the content-addressed storage collaborator a
// snapshot graph's ContentNode addresses point into. The graph engine
// never interprets stored bytes; it only carries their content.ContentHash
// address and asks a Store to write or read them on its behalf.
package cas
