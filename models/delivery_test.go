package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryID(t *testing.T) {
	now := time.UnixMilli(1724900000000)
	assert.Equal(t, "D-1724900000000", NewDeliveryID(now))
}

func TestNormalizeDelivery(t *testing.T) {
	t.Run("corrupt blob yields nil", func(t *testing.T) {
		assert.Nil(t, NormalizeDelivery([]byte(`{broken`)))
		assert.Nil(t, NormalizeDelivery(nil))
	})

	t.Run("unknown status collapses to READY", func(t *testing.T) {
		d := NormalizeDelivery([]byte(`{"deliveryId":"D-1","status":"TELEPORTING","paymentMethod":"card"}`))
		require.NotNil(t, d)
		assert.Equal(t, DeliveryReady, d.Status)
	})

	t.Run("known statuses survive", func(t *testing.T) {
		d := NormalizeDelivery([]byte(`{"deliveryId":"D-1","status":"SHIPPING","paymentMethod":"kakao"}`))
		require.NotNil(t, d)
		assert.Equal(t, DeliveryShipping, d.Status)
		assert.Equal(t, PaymentKakao, d.PaymentMethod)
	})

	t.Run("unknown payment method collapses to card", func(t *testing.T) {
		d := NormalizeDelivery([]byte(`{"deliveryId":"D-1","paymentMethod":"bitcoin"}`))
		require.NotNil(t, d)
		assert.Equal(t, PaymentCard, d.PaymentMethod)
	})

	t.Run("items are re-normalized", func(t *testing.T) {
		d := NormalizeDelivery([]byte(`{"deliveryId":"D-1","items":[{"id":7,"title":"Shoe","price":129000,"qty":0}]}`))
		require.NotNil(t, d)
		require.Len(t, d.Items, 1)
		assert.Equal(t, 1, d.Items[0].Qty)
	})

	t.Run("missing id and timestamp are backfilled", func(t *testing.T) {
		d := NormalizeDelivery([]byte(`{"status":"READY"}`))
		require.NotNil(t, d)
		assert.NotEmpty(t, d.DeliveryID)
		assert.NotEmpty(t, d.CreatedAt)
	})
}

func TestPlaceOrderRequestFullAddress(t *testing.T) {
	req := PlaceOrderRequest{Address: "123 Teheran-ro"}
	assert.Equal(t, "123 Teheran-ro", req.FullAddress())

	req.DetailAddress = "Suite 401"
	assert.Equal(t, "123 Teheran-ro Suite 401", req.FullAddress())
}
