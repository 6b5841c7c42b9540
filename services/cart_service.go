package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/robomart-commerce/robomart-backend/blobstore"
	"github.com/robomart-commerce/robomart-backend/models"
)

// ErrCartConflict means repeated optimistic writes kept losing to another
// writer; the caller should have the client retry.
var ErrCartConflict = errors.New("cart was modified concurrently")

// CartService owns the per-user cart blob. Every read normalizes: corrupt
// or non-array content is an empty cart, quantities are floored at 1, and
// legacy field spellings are accepted. Line identity is the composite
// (productID, size).
type CartService struct {
	store blobstore.Store
}

func NewCartService(store blobstore.Store) *CartService {
	return &CartService{store: store}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

// Load returns the user's cart and the blob version it was read at.
func (s *CartService) Load(ctx context.Context, userID string) ([]models.CartItem, int64, error) {
	blob, ok, err := s.store.Get(ctx, cartKey(userID))
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return []models.CartItem{}, 0, nil
	}
	return models.NormalizeCartItems(blob.Data), blob.Version, nil
}

// Save writes the items back at the given version.
func (s *CartService) Save(ctx context.Context, userID string, items []models.CartItem, version int64) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	_, err = s.store.Put(ctx, cartKey(userID), data, version)
	return err
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.store.Delete(ctx, cartKey(userID))
}

// update runs a load-mutate-save cycle, retrying a few times when another
// writer got in between.
func (s *CartService) update(ctx context.Context, userID string, fn func([]models.CartItem) []models.CartItem) ([]models.CartItem, error) {
	for attempt := 0; attempt < 3; attempt++ {
		items, version, err := s.Load(ctx, userID)
		if err != nil {
			return nil, err
		}
		items = fn(items)
		err = s.Save(ctx, userID, items, version)
		if errors.Is(err, blobstore.ErrStale) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return items, nil
	}
	return nil, ErrCartConflict
}

// AddOrMerge adds the item, merging quantities into an existing line with
// the same (productID, size).
func (s *CartService) AddOrMerge(ctx context.Context, userID string, item models.CartItem) ([]models.CartItem, error) {
	if item.Qty < 1 {
		item.Qty = 1
	}
	return s.update(ctx, userID, func(items []models.CartItem) []models.CartItem {
		for i := range items {
			if items[i].SameLine(item.ProductID, item.Size) {
				items[i].Qty += item.Qty
				return items
			}
		}
		return append(items, item)
	})
}

// SetQuantity applies a delta to a line's quantity, clamping the result at
// a minimum of 1. Lines that don't match are left untouched; an unknown
// line is a no-op, same as the original quantity controls.
func (s *CartService) SetQuantity(ctx context.Context, userID string, productID int64, size, delta int) ([]models.CartItem, error) {
	return s.update(ctx, userID, func(items []models.CartItem) []models.CartItem {
		for i := range items {
			if items[i].SameLine(productID, size) {
				newQty := items[i].Qty + delta
				if newQty < 1 {
					newQty = 1
				}
				items[i].Qty = newQty
			}
		}
		return items
	})
}

// Remove drops the line with the given identity.
func (s *CartService) Remove(ctx context.Context, userID string, productID int64, size int) ([]models.CartItem, error) {
	return s.update(ctx, userID, func(items []models.CartItem) []models.CartItem {
		kept := items[:0]
		for _, it := range items {
			if !it.SameLine(productID, size) {
				kept = append(kept, it)
			}
		}
		return kept
	})
}
