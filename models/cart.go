package models

import "encoding/json"

// CartItem is one line of a shopper's cart. Identity is the composite
// (ProductID, Size); the same product in two sizes is two lines. Size 0
// means the product has no size variants.
type CartItem struct {
	ProductID int64   `json:"id"`
	Title     string  `json:"title"`
	Price     int64   `json:"price"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Size      int     `json:"size,omitempty"`
	Qty       int     `json:"qty"`
}

// SameLine reports whether two items share the composite identity key.
func (i CartItem) SameLine(productID int64, size int) bool {
	return i.ProductID == productID && i.Size == size
}

// Subtotal is price times quantity in whole won.
func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Qty)
}

// CartTotal folds the items into a total price. Integer arithmetic only;
// the catalog stores whole-won amounts.
func CartTotal(items []CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}

// NormalizeCartItems turns a stored cart blob into a clean item list.
// Corrupt JSON or non-array content yields an empty cart rather than an
// error. Legacy blobs use "quantity" instead of "qty" and "selectedSize"
// instead of "size"; both spellings are accepted. Quantities are floored
// at 1.
func NormalizeCartItems(raw []byte) []CartItem {
	if len(raw) == 0 {
		return []CartItem{}
	}
	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []CartItem{}
	}

	items := make([]CartItem, 0, len(entries))
	for _, e := range entries {
		item := CartItem{
			ProductID: asInt64(e["id"]),
			Title:     asString(e["title"]),
			Price:     asInt64(e["price"]),
			Size:      int(asInt64(e["size"])),
			Qty:       int(asInt64(e["qty"])),
		}
		if item.Size == 0 {
			item.Size = int(asInt64(e["selectedSize"]))
		}
		if item.Qty == 0 {
			item.Qty = int(asInt64(e["quantity"]))
		}
		if item.Qty < 1 {
			item.Qty = 1
		}
		if s, ok := e["imageUrl"].(string); ok && s != "" {
			item.ImageURL = &s
		}
		items = append(items, item)
	}
	return items
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	default:
		return 0
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type AddCartItemRequest struct {
	ProductID int64 `json:"productId" binding:"required" example:"7"`
	Size      int   `json:"size" example:"270"`
	Qty       int   `json:"qty" binding:"omitempty,min=1" example:"1"`
}

type UpdateCartQuantityRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Size      int   `json:"size"`
	Delta     int   `json:"delta" binding:"required" example:"-1"`
}

type RemoveCartItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Size      int   `json:"size"`
}

// CartResponse is what GET /api/cart returns.
type CartResponse struct {
	Items      []CartItem `json:"items"`
	TotalPrice int64      `json:"totalPrice"`
}
