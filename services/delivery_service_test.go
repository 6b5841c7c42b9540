package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robomart-commerce/robomart-backend/blobstore"
	"github.com/robomart-commerce/robomart-backend/models"
)

func newTestDelivery(t *testing.T) (*DeliveryService, *CartService, blobstore.Store, context.Context) {
	t.Helper()
	store := blobstore.NewMemoryStore()
	cart := NewCartService(store)
	delivery := NewDeliveryService(store, cart)
	return delivery, cart, store, context.Background()
}

func TestPlaceOrder(t *testing.T) {
	delivery, cart, _, ctx := newTestDelivery(t)
	delivery.now = func() time.Time { return time.UnixMilli(1724900000000) }

	_, err := cart.AddOrMerge(ctx, "u1", models.CartItem{ProductID: 7, Title: "Shoe", Price: 129000, Size: 270, Qty: 1})
	require.NoError(t, err)
	_, err = cart.SetQuantity(ctx, "u1", 7, 270, 1)
	require.NoError(t, err)

	d, err := delivery.PlaceOrder(ctx, "u1", models.PlaceOrderRequest{
		Address:       "123 Teheran-ro, Gangnam-gu, Seoul",
		DetailAddress: "Suite 401",
		PaymentMethod: models.PaymentCard,
	})
	require.NoError(t, err)

	assert.Equal(t, "D-1724900000000", d.DeliveryID)
	assert.Equal(t, models.DeliveryReady, d.Status)
	assert.Equal(t, "123 Teheran-ro, Gangnam-gu, Seoul Suite 401", d.Address)
	assert.Equal(t, models.PaymentCard, d.PaymentMethod)
	assert.Equal(t, int64(258000), d.TotalPrice)
	require.Len(t, d.Items, 1)
	assert.Equal(t, 2, d.Items[0].Qty)

	t.Run("cart is kept after the order", func(t *testing.T) {
		items, _, err := cart.Load(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("second order overwrites the slot", func(t *testing.T) {
		delivery.now = func() time.Time { return time.UnixMilli(1724900099999) }
		d2, err := delivery.PlaceOrder(ctx, "u1", models.PlaceOrderRequest{
			Address:       "55 Sejong-daero",
			PaymentMethod: models.PaymentKakao,
		})
		require.NoError(t, err)
		assert.Equal(t, "D-1724900099999", d2.DeliveryID)

		current, err := delivery.Current(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, d2.DeliveryID, current.DeliveryID)
		assert.Equal(t, models.PaymentKakao, current.PaymentMethod)
	})
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	delivery, _, _, ctx := newTestDelivery(t)

	_, err := delivery.PlaceOrder(ctx, "u1", models.PlaceOrderRequest{
		Address:       "anywhere",
		PaymentMethod: models.PaymentCard,
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCurrentDelivery(t *testing.T) {
	delivery, _, store, ctx := newTestDelivery(t)

	t.Run("empty slot", func(t *testing.T) {
		_, err := delivery.Current(ctx, "u1")
		assert.ErrorIs(t, err, ErrNoDelivery)
	})

	t.Run("corrupt slot reads as empty", func(t *testing.T) {
		_, err := store.Put(ctx, "delivery_current:u1", []byte(`garbage`), blobstore.ForceWrite)
		require.NoError(t, err)

		_, err = delivery.Current(ctx, "u1")
		assert.ErrorIs(t, err, ErrNoDelivery)
	})

	t.Run("unknown status reads back as READY", func(t *testing.T) {
		_, err := store.Put(ctx, "delivery_current:u2",
			[]byte(`{"deliveryId":"D-1","status":"LOST","paymentMethod":"kakao","items":[]}`),
			blobstore.ForceWrite)
		require.NoError(t, err)

		d, err := delivery.Current(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, models.DeliveryReady, d.Status)
		assert.Equal(t, models.PaymentKakao, d.PaymentMethod)
	})
}

func TestUpdateDeliveryStatus(t *testing.T) {
	delivery, cart, _, ctx := newTestDelivery(t)

	_, err := cart.AddOrMerge(ctx, "u1", models.CartItem{ProductID: 1, Price: 1000, Qty: 1})
	require.NoError(t, err)
	_, err = delivery.PlaceOrder(ctx, "u1", models.PlaceOrderRequest{Address: "a", PaymentMethod: models.PaymentCard})
	require.NoError(t, err)

	d, err := delivery.UpdateStatus(ctx, "u1", models.DeliveryShipping)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryShipping, d.Status)

	current, err := delivery.Current(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryShipping, current.Status)

	t.Run("no record to update", func(t *testing.T) {
		_, err := delivery.UpdateStatus(ctx, "nobody", models.DeliveryDone)
		assert.ErrorIs(t, err, ErrNoDelivery)
	})
}
