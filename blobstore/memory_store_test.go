package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreVersioning(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// First write against the absent key (version 0)
	v1, err := store.Put(ctx, "k", []byte(`{"a":1}`), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v1)

	blob, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), blob.Data)
	assert.Equal(t, int64(1), blob.Version)

	// Write with the version we read succeeds
	v2, err := store.Put(ctx, "k", []byte(`{"a":2}`), blob.Version)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v2)

	// A second writer with the old version is refused
	_, err = store.Put(ctx, "k", []byte(`{"a":99}`), v1)
	assert.ErrorIs(t, err, ErrStale)

	// ForceWrite skips the check
	v3, err := store.Put(ctx, "k", []byte(`{"a":3}`), ForceWrite)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v3)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Put(ctx, "k", []byte(`x`), 0)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is a no-op
	assert.NoError(t, store.Delete(ctx, "missing"))
}

func TestMemoryStoreCopiesBytes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte(`original`)
	_, err := store.Put(ctx, "k", data, 0)
	require.NoError(t, err)

	data[0] = 'X'

	blob, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`original`), blob.Data)
}
