package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Delivery statuses, in order of progression.
const (
	DeliveryReady    = "READY"
	DeliveryShipping = "SHIPPING"
	DeliveryDone     = "DONE"
)

// Payment method tags. Exactly these two are accepted at checkout.
const (
	PaymentKakao = "kakao"
	PaymentCard  = "card"
)

// Delivery is the receipt written when an order is placed. A single slot
// per user: placing another order overwrites the previous record, so at
// most one "current" delivery is representable at a time.
type Delivery struct {
	DeliveryID    string     `json:"deliveryId"`
	CreatedAt     string     `json:"createdAt"` // ISO-8601
	Status        string     `json:"status"`
	Address       string     `json:"address"`
	PaymentMethod string     `json:"paymentMethod"`
	TotalPrice    int64      `json:"totalPrice"`
	Items         []CartItem `json:"items"`
}

// NewDeliveryID generates a timestamp-based id, e.g. "D-1724900000000".
func NewDeliveryID(now time.Time) string {
	return fmt.Sprintf("D-%d", now.UnixMilli())
}

// NormalizeDelivery parses a stored delivery blob, coercing every field to a
// valid value. Corrupt content yields nil. Unknown statuses collapse to
// READY and unknown payment methods to card, the same way the blob is read
// back on the status page.
func NormalizeDelivery(raw []byte) *Delivery {
	if len(raw) == 0 {
		return nil
	}
	var d Delivery
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil
	}
	if d.DeliveryID == "" {
		d.DeliveryID = NewDeliveryID(time.Now())
	}
	if d.CreatedAt == "" {
		d.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if d.Status != DeliveryShipping && d.Status != DeliveryDone {
		d.Status = DeliveryReady
	}
	if d.PaymentMethod != PaymentKakao {
		d.PaymentMethod = PaymentCard
	}
	if itemsJSON, err := json.Marshal(d.Items); err == nil {
		d.Items = NormalizeCartItems(itemsJSON)
	} else {
		d.Items = []CartItem{}
	}
	return &d
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// SelectPaymentRequest carries the method chosen in the checkout modal.
type SelectPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=kakao card" example:"card"`
}

// PlaceOrderRequest is the order-page submission. Address is required;
// detail address is optional and appended when present.
type PlaceOrderRequest struct {
	Address       string `json:"address" binding:"required" example:"123 Teheran-ro, Gangnam-gu, Seoul"`
	DetailAddress string `json:"detailAddress" example:"Suite 401"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=kakao card" example:"card"`
}

// FullAddress joins address and detail address.
func (r PlaceOrderRequest) FullAddress() string {
	if r.DetailAddress == "" {
		return r.Address
	}
	return r.Address + " " + r.DetailAddress
}

type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=READY SHIPPING DONE" example:"SHIPPING"`
}
