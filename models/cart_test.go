package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCartItems(t *testing.T) {
	t.Run("corrupt JSON yields empty cart", func(t *testing.T) {
		assert.Empty(t, NormalizeCartItems([]byte(`{broken`)))
	})

	t.Run("non-array content yields empty cart", func(t *testing.T) {
		assert.Empty(t, NormalizeCartItems([]byte(`{"id":1}`)))
		assert.Empty(t, NormalizeCartItems([]byte(`"just a string"`)))
	})

	t.Run("empty input yields empty cart", func(t *testing.T) {
		assert.Empty(t, NormalizeCartItems(nil))
		assert.Empty(t, NormalizeCartItems([]byte(`[]`)))
	})

	t.Run("quantity floors at 1", func(t *testing.T) {
		items := NormalizeCartItems([]byte(`[
			{"id": 1, "title": "Robot", "price": 1000, "qty": 0},
			{"id": 2, "title": "Robot", "price": 1000, "qty": -3}
		]`))
		require.Len(t, items, 2)
		assert.Equal(t, 1, items[0].Qty)
		assert.Equal(t, 1, items[1].Qty)
	})

	t.Run("legacy field spellings are accepted", func(t *testing.T) {
		items := NormalizeCartItems([]byte(`[
			{"id": 7, "title": "Shoe", "price": 129000, "quantity": 2, "selectedSize": 270}
		]`))
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Qty)
		assert.Equal(t, 270, items[0].Size)
	})

	t.Run("well-formed items survive unchanged", func(t *testing.T) {
		items := NormalizeCartItems([]byte(`[
			{"id": 3, "title": "Patrol Bot", "price": 59000, "size": 1, "qty": 4, "imageUrl": "https://cdn.example.com/p3.jpg"}
		]`))
		require.Len(t, items, 1)
		assert.Equal(t, int64(3), items[0].ProductID)
		assert.Equal(t, int64(59000), items[0].Price)
		assert.Equal(t, 4, items[0].Qty)
		require.NotNil(t, items[0].ImageURL)
		assert.Equal(t, "https://cdn.example.com/p3.jpg", *items[0].ImageURL)
	})
}

func TestCartTotal(t *testing.T) {
	items := []CartItem{
		{ProductID: 1, Price: 10000, Qty: 2},
		{ProductID: 2, Price: 5000, Qty: 3},
	}
	assert.Equal(t, int64(35000), CartTotal(items))
	assert.Equal(t, int64(0), CartTotal(nil))
}

func TestSameLine(t *testing.T) {
	item := CartItem{ProductID: 7, Size: 270}

	assert.True(t, item.SameLine(7, 270))
	// Same product, different size is a separate line
	assert.False(t, item.SameLine(7, 280))
	assert.False(t, item.SameLine(8, 270))
}
