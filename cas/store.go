package cas

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/arlojs/wsgraph/content"
)

// ErrNotFound indicates a Read for a hash the store does not hold.
var ErrNotFound = errors.New("cas: content not found")

// Actor identifies who requested a write, for audit purposes. The store
// never interprets it beyond storing it alongside the write.
type Actor struct{ id uuid.UUID }

// NewActor returns a fresh, random Actor.
func NewActor() Actor { return Actor{id: uuid.New()} }

// String returns the actor's canonical UUID string form.
func (a Actor) String() string { return a.id.String() }

// Tenancy scopes a write to a workspace/tenant. The store never
// interprets it beyond storing it alongside the write.
type Tenancy struct{ id uuid.UUID }

// NewTenancy returns a fresh, random Tenancy.
func NewTenancy() Tenancy { return Tenancy{id: uuid.New()} }

// String returns the tenancy's canonical UUID string form.
func (t Tenancy) String() string { return t.id.String() }

// Store is the content-addressed storage collaborator a Graph's
// ContentNode/SecretNode addresses point into. Implementations must be
// safe for concurrent use by multiple goroutines, and writes must be
// idempotent by content: writing the same bytes twice returns the same
// hash without erroring.
type Store interface {
	// Write stores data under its content hash, recording tenancy and
	// actor for audit, and returns the hash. If data already exists
	// under that hash, Write succeeds without rewriting it.
	Write(ctx context.Context, data []byte, tenancy Tenancy, actor Actor) (content.ContentHash, error)

	// Read returns the bytes stored under hash, or ErrNotFound if none
	// exist.
	Read(ctx context.Context, hash content.ContentHash) ([]byte, error)
}
