package cas

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlojs/wsgraph/content"
)

func TestMemStore_WriteThenRead(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	tenancy, actor := NewTenancy(), NewActor()

	hash, err := store.Write(ctx, []byte("hello"), tenancy, actor)
	require.NoError(t, err)

	got, err := store.Read(ctx, hash)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)
}

func TestMemStore_WriteIsIdempotentByContent(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	tenancy, actor := NewTenancy(), NewActor()

	first, err := store.Write(ctx, []byte("same"), tenancy, actor)
	require.NoError(t, err)
	second, err := store.Write(ctx, []byte("same"), NewTenancy(), NewActor())
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, store.Len())
}

func TestMemStore_ReadMissingReturnsErrNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	var zero content.ContentHash
	_, err := store.Read(ctx, zero)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemStore_ReadIsDefensiveCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	hash, err := store.Write(ctx, []byte("mutate-me"), NewTenancy(), NewActor())
	require.NoError(t, err)

	got, err := store.Read(ctx, hash)
	require.NoError(t, err)
	got[0] = 'X'

	got2, err := store.Read(ctx, hash)
	require.NoError(t, err)
	require.Equal(t, []byte("mutate-me"), got2)
}
