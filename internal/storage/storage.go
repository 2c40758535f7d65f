// internal/storage/storage.go
package storage

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks purchase-tracker/internal/storage UserStorage,CategoryStorage,PaymentMethodStorage,PurchaseLocationStorage,PurchaseStorage

import (
	"context"
	"purchase-tracker/internal/domain"
)

// Find* возвращают nil, nil, если строки нет.
// Update* возвращают domain.ErrNotFound, если строки нет.
// Delete* возвращают false, nil, если строки нет.

type UserStorage interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	FindUser(ctx context.Context, id int) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.UserCreate) (*domain.User, error)
	UpdateUser(ctx context.Context, id int, in domain.UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, id int) (bool, error)
}

type CategoryStorage interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	FindCategory(ctx context.Context, id int) (*domain.Category, error)
	CreateCategory(ctx context.Context, in domain.CategoryCreate) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int, in domain.CategoryUpdate) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) (bool, error)
}

type PaymentMethodStorage interface {
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	FindPaymentMethod(ctx context.Context, id int) (*domain.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, in domain.PaymentMethodCreate) (*domain.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, id int, in domain.PaymentMethodUpdate) (*domain.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, id int) (bool, error)
}

type PurchaseLocationStorage interface {
	ListPurchaseLocations(ctx context.Context) ([]domain.PurchaseLocation, error)
	FindPurchaseLocation(ctx context.Context, id int) (*domain.PurchaseLocation, error)
	CreatePurchaseLocation(ctx context.Context, in domain.PurchaseLocationCreate) (*domain.PurchaseLocation, error)
	UpdatePurchaseLocation(ctx context.Context, id int, in domain.PurchaseLocationUpdate) (*domain.PurchaseLocation, error)
	DeletePurchaseLocation(ctx context.Context, id int) (bool, error)
}

// PurchaseStorage пишет покупку вместе с дочерними строками в одной транзакции.
type PurchaseStorage interface {
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
	FindPurchase(ctx context.Context, id int) (*domain.Purchase, error)
	CreatePurchase(ctx context.Context, in domain.PurchaseCreate) (*domain.Purchase, error)
	UpdatePurchase(ctx context.Context, id int, in domain.PurchaseUpdate) (*domain.Purchase, error)
	DeletePurchase(ctx context.Context, id int) (bool, error)
}
