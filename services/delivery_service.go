package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/robomart-commerce/robomart-backend/blobstore"
	"github.com/robomart-commerce/robomart-backend/models"
)

var (
	// ErrEmptyCart is returned when an order is placed with nothing in
	// the cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNoDelivery means there is no current delivery record.
	ErrNoDelivery = errors.New("no current delivery")
)

// DeliveryService owns the single-slot current-delivery record. Placing an
// order overwrites whatever was there: at most one current delivery exists
// per user, there is no queue and no idempotency key.
type DeliveryService struct {
	store blobstore.Store
	cart  *CartService
	now   func() time.Time
}

func NewDeliveryService(store blobstore.Store, cart *CartService) *DeliveryService {
	return &DeliveryService{store: store, cart: cart, now: time.Now}
}

func deliveryKey(userID string) string {
	return "delivery_current:" + userID
}

// PlaceOrder reloads the cart from the store (the order step never trusts
// an in-memory handoff), snapshots it into a Delivery with status READY,
// and writes the slot. The cart itself is left as-is.
func (s *DeliveryService) PlaceOrder(ctx context.Context, userID string, req models.PlaceOrderRequest) (*models.Delivery, error) {
	items, _, err := s.cart.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.now().UTC()
	delivery := &models.Delivery{
		DeliveryID:    models.NewDeliveryID(now),
		CreatedAt:     now.Format(time.RFC3339),
		Status:        models.DeliveryReady,
		Address:       req.FullAddress(),
		PaymentMethod: req.PaymentMethod,
		TotalPrice:    models.CartTotal(items),
		Items:         items,
	}

	data, err := json.Marshal(delivery)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.Put(ctx, deliveryKey(userID), data, blobstore.ForceWrite); err != nil {
		return nil, err
	}

	log.Printf("✅ Order placed: %s for user %s - Total: %d won (%s)",
		delivery.DeliveryID, userID, delivery.TotalPrice, delivery.PaymentMethod)
	return delivery, nil
}

// Current reads the slot back with normalize-on-read. Corrupt content is
// treated the same as an empty slot.
func (s *DeliveryService) Current(ctx context.Context, userID string) (*models.Delivery, error) {
	blob, ok, err := s.store.Get(ctx, deliveryKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoDelivery
	}
	delivery := models.NormalizeDelivery(blob.Data)
	if delivery == nil {
		return nil, ErrNoDelivery
	}
	return delivery, nil
}

// UpdateStatus sets the delivery status on the current record.
func (s *DeliveryService) UpdateStatus(ctx context.Context, userID, status string) (*models.Delivery, error) {
	delivery, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	delivery.Status = status

	data, err := json.Marshal(delivery)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.Put(ctx, deliveryKey(userID), data, blobstore.ForceWrite); err != nil {
		return nil, err
	}
	return delivery, nil
}
