package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robomart-commerce/robomart-backend/blobstore"
)

func TestCategoryTreeCreate(t *testing.T) {
	store := blobstore.NewMemoryStore()
	svc := NewCategoryTreeService(store)
	ctx := context.Background()

	primary, err := svc.Create(ctx, 0, "Indoor robots")
	require.NoError(t, err)
	assert.Equal(t, 1, primary.ID)

	secondary, err := svc.Create(ctx, primary.ID, "Cleaning")
	require.NoError(t, err)
	assert.Equal(t, 2, secondary.ID)

	roots, _, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "Cleaning", roots[0].Children[0].Name)

	t.Run("third level is refused", func(t *testing.T) {
		_, err := svc.Create(ctx, secondary.ID, "Too deep")
		assert.ErrorIs(t, err, ErrTreeDepth)
	})

	t.Run("unknown parent", func(t *testing.T) {
		_, err := svc.Create(ctx, 999, "Orphan")
		assert.ErrorIs(t, err, ErrNodeNotFound)
	})
}

func TestCategoryTreeDelete(t *testing.T) {
	store := blobstore.NewMemoryStore()
	svc := NewCategoryTreeService(store)
	ctx := context.Background()

	primary, err := svc.Create(ctx, 0, "Outdoor robots")
	require.NoError(t, err)
	_, err = svc.Create(ctx, primary.ID, "Patrol")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, primary.ID))

	roots, _, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, roots)

	t.Run("missing node", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, primary.ID), ErrNodeNotFound)
	})
}

func TestCategoryTreeIDReuse(t *testing.T) {
	store := blobstore.NewMemoryStore()
	svc := NewCategoryTreeService(store)
	ctx := context.Background()

	a, err := svc.Create(ctx, 0, "A")
	require.NoError(t, err)
	b, err := svc.Create(ctx, 0, "B")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, b.ID))

	// Ids come from max+1 over the live tree, so a freed id can return
	c, err := svc.Create(ctx, 0, "C")
	require.NoError(t, err)
	assert.Equal(t, b.ID, c.ID)
	assert.Equal(t, a.ID+1, c.ID)
}

func TestCategoryTreeCorruptBlob(t *testing.T) {
	store := blobstore.NewMemoryStore()
	svc := NewCategoryTreeService(store)
	ctx := context.Background()

	_, err := store.Put(ctx, "categories", []byte(`not a tree`), blobstore.ForceWrite)
	require.NoError(t, err)

	roots, _, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, roots)

	_, err = svc.Create(ctx, 0, "Fresh start")
	require.NoError(t, err)
}

func TestCategoryTreeConflict(t *testing.T) {
	store := blobstore.NewMemoryStore()
	svc := NewCategoryTreeService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, 0, "A")
	require.NoError(t, err)

	roots, version, err := svc.Load(ctx)
	require.NoError(t, err)

	// Another editor writes in between
	_, err = svc.Create(ctx, 0, "B")
	require.NoError(t, err)

	err = svc.save(ctx, roots, version)
	assert.ErrorIs(t, err, ErrTreeConflict)
}

func TestMenuTreeCreate(t *testing.T) {
	store := blobstore.NewMemoryStore()
	svc := NewMenuTreeService(store)
	ctx := context.Background()

	top, err := svc.Create(ctx, 0, "Robots", "")
	require.NoError(t, err)
	mid, err := svc.Create(ctx, top.ID, "Outdoor", "")
	require.NoError(t, err)

	t.Run("leaf requires a path", func(t *testing.T) {
		_, err := svc.Create(ctx, mid.ID, "Patrol", "")
		assert.ErrorIs(t, err, ErrMenuPathRequired)
	})

	t.Run("leaf path gets a leading slash", func(t *testing.T) {
		leaf, err := svc.Create(ctx, mid.ID, "Patrol", "outdoor/patrol")
		require.NoError(t, err)
		assert.Equal(t, "/outdoor/patrol", leaf.Path)
	})

	t.Run("fourth level is refused", func(t *testing.T) {
		roots, _, err := svc.Load(ctx)
		require.NoError(t, err)
		leafID := roots[0].Children[0].Children[0].ID

		_, err = svc.Create(ctx, leafID, "Too deep", "/x")
		assert.ErrorIs(t, err, ErrTreeDepth)
	})
}

func TestMenuTreeDeleteCascades(t *testing.T) {
	store := blobstore.NewMemoryStore()
	svc := NewMenuTreeService(store)
	ctx := context.Background()

	top, err := svc.Create(ctx, 0, "Robots", "")
	require.NoError(t, err)
	mid, err := svc.Create(ctx, top.ID, "Outdoor", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, mid.ID, "Patrol", "/outdoor/patrol")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, mid.ID))

	roots, _, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Empty(t, roots[0].Children)
}
