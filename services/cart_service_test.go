package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robomart-commerce/robomart-backend/blobstore"
	"github.com/robomart-commerce/robomart-backend/models"
)

func newTestCart(t *testing.T) (*CartService, context.Context) {
	t.Helper()
	return NewCartService(blobstore.NewMemoryStore()), context.Background()
}

func TestCartAddOrMerge(t *testing.T) {
	cart, ctx := newTestCart(t)

	items, err := cart.AddOrMerge(ctx, "u1", models.CartItem{ProductID: 7, Title: "Shoe", Price: 129000, Size: 270, Qty: 1})
	require.NoError(t, err)
	require.Len(t, items, 1)

	t.Run("same id and size merges quantities", func(t *testing.T) {
		items, err := cart.AddOrMerge(ctx, "u1", models.CartItem{ProductID: 7, Title: "Shoe", Price: 129000, Size: 270, Qty: 2})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Qty)
	})

	t.Run("same id different size is a new line", func(t *testing.T) {
		items, err := cart.AddOrMerge(ctx, "u1", models.CartItem{ProductID: 7, Title: "Shoe", Price: 129000, Size: 280, Qty: 1})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("quantity below one is floored", func(t *testing.T) {
		items, err := cart.AddOrMerge(ctx, "u2", models.CartItem{ProductID: 1, Title: "Bot", Price: 5000, Qty: 0})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Qty)
	})
}

func TestCartSetQuantity(t *testing.T) {
	cart, ctx := newTestCart(t)

	_, err := cart.AddOrMerge(ctx, "u1", models.CartItem{ProductID: 7, Title: "Shoe", Price: 129000, Size: 270, Qty: 2})
	require.NoError(t, err)

	t.Run("applies delta", func(t *testing.T) {
		items, err := cart.SetQuantity(ctx, "u1", 7, 270, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, items[0].Qty)
	})

	t.Run("clamps at one", func(t *testing.T) {
		items, err := cart.SetQuantity(ctx, "u1", 7, 270, -100)
		require.NoError(t, err)
		assert.Equal(t, 1, items[0].Qty)
	})

	t.Run("unknown line is a no-op", func(t *testing.T) {
		items, err := cart.SetQuantity(ctx, "u1", 999, 0, 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Qty)
	})
}

func TestCartRemove(t *testing.T) {
	cart, ctx := newTestCart(t)

	_, err := cart.AddOrMerge(ctx, "u1", models.CartItem{ProductID: 7, Price: 129000, Size: 270, Qty: 1})
	require.NoError(t, err)
	_, err = cart.AddOrMerge(ctx, "u1", models.CartItem{ProductID: 7, Price: 129000, Size: 280, Qty: 1})
	require.NoError(t, err)

	items, err := cart.Remove(ctx, "u1", 7, 270)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 280, items[0].Size)

	// Removing a line that is already gone leaves the cart unchanged
	items, err = cart.Remove(ctx, "u1", 7, 270)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartLoadCorruptBlob(t *testing.T) {
	store := blobstore.NewMemoryStore()
	cart := NewCartService(store)
	ctx := context.Background()

	_, err := store.Put(ctx, "cart:u1", []byte(`{not json`), blobstore.ForceWrite)
	require.NoError(t, err)

	items, _, err := cart.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)

	// A fresh add works on top of the corrupt blob
	items, err = cart.AddOrMerge(ctx, "u1", models.CartItem{ProductID: 1, Price: 1000, Qty: 1})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartClear(t *testing.T) {
	cart, ctx := newTestCart(t)

	_, err := cart.AddOrMerge(ctx, "u1", models.CartItem{ProductID: 1, Price: 1000, Qty: 1})
	require.NoError(t, err)

	require.NoError(t, cart.Clear(ctx, "u1"))

	items, _, err := cart.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
