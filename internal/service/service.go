// internal/service/service.go
package service

import (
	"purchase-tracker/internal/auth"
	"purchase-tracker/internal/events"
	"purchase-tracker/internal/storage"
)

// Store: всё хранилище целиком; postgres.Storage его реализует.
type Store interface {
	storage.UserStorage
	storage.CategoryStorage
	storage.PaymentMethodStorage
	storage.PurchaseLocationStorage
	storage.PurchaseStorage
}

type Services struct {
	Users          *UserService
	Categories     *CategoryService
	PaymentMethods *PaymentMethodService
	Locations      *PurchaseLocationService
	Purchases      *PurchaseService
}

func New(store Store, hasher *auth.PasswordHasher, publisher events.Publisher) Services {
	return Services{
		Users:          NewUserService(store, hasher),
		Categories:     NewCategoryService(store),
		PaymentMethods: NewPaymentMethodService(store),
		Locations:      NewPurchaseLocationService(store),
		Purchases:      NewPurchaseService(store, publisher),
	}
}
