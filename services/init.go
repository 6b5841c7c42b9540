package services

import (
	"log"

	"github.com/robomart-commerce/robomart-backend/blobstore"
)

var (
	sessionService      *SessionService
	cartService         *CartService
	deliveryService     *DeliveryService
	categoryTreeService *CategoryTreeService
	menuTreeService     *MenuTreeService
)

// InitStores wires every blob-backed service onto the given store. Called
// once at startup with the redis store; tests pass a memory store instead.
func InitStores(store blobstore.Store) {
	sessionService = NewSessionService(store)
	cartService = NewCartService(store)
	deliveryService = NewDeliveryService(store, cartService)
	categoryTreeService = NewCategoryTreeService(store)
	menuTreeService = NewMenuTreeService(store)
	log.Println("✅ Blob-backed services initialized")
}

func GetSessionService() *SessionService {
	if sessionService == nil {
		log.Fatal("❌ Session service not initialized - call InitStores first")
	}
	return sessionService
}

func GetCartService() *CartService {
	if cartService == nil {
		log.Fatal("❌ Cart service not initialized - call InitStores first")
	}
	return cartService
}

func GetDeliveryService() *DeliveryService {
	if deliveryService == nil {
		log.Fatal("❌ Delivery service not initialized - call InitStores first")
	}
	return deliveryService
}

func GetCategoryTreeService() *CategoryTreeService {
	if categoryTreeService == nil {
		log.Fatal("❌ Category tree service not initialized - call InitStores first")
	}
	return categoryTreeService
}

func GetMenuTreeService() *MenuTreeService {
	if menuTreeService == nil {
		log.Fatal("❌ Menu tree service not initialized - call InitStores first")
	}
	return menuTreeService
}
