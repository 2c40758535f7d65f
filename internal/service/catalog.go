// internal/service/catalog.go
package service

import (
	"context"
	"purchase-tracker/internal/domain"
	"purchase-tracker/internal/storage"
)

// Справочники: один CRUD над одной таблицей, без логики между сущностями.

type CategoryService struct {
	store storage.CategoryStorage
}

func NewCategoryService(store storage.CategoryStorage) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]domain.Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *CategoryService) GetOne(ctx context.Context, id int) (*domain.Category, error) {
	return s.store.FindCategory(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, in domain.CategoryCreate) (*domain.Category, error) {
	return s.store.CreateCategory(ctx, in)
}

func (s *CategoryService) Update(ctx context.Context, id int, in domain.CategoryUpdate) (*domain.Category, error) {
	return s.store.UpdateCategory(ctx, id, in)
}

func (s *CategoryService) Delete(ctx context.Context, id int) (bool, error) {
	return s.store.DeleteCategory(ctx, id)
}

type PaymentMethodService struct {
	store storage.PaymentMethodStorage
}

func NewPaymentMethodService(store storage.PaymentMethodStorage) *PaymentMethodService {
	return &PaymentMethodService{store: store}
}

func (s *PaymentMethodService) GetAll(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.store.ListPaymentMethods(ctx)
}

func (s *PaymentMethodService) GetOne(ctx context.Context, id int) (*domain.PaymentMethod, error) {
	return s.store.FindPaymentMethod(ctx, id)
}

func (s *PaymentMethodService) Create(ctx context.Context, in domain.PaymentMethodCreate) (*domain.PaymentMethod, error) {
	return s.store.CreatePaymentMethod(ctx, in)
}

func (s *PaymentMethodService) Update(ctx context.Context, id int, in domain.PaymentMethodUpdate) (*domain.PaymentMethod, error) {
	return s.store.UpdatePaymentMethod(ctx, id, in)
}

func (s *PaymentMethodService) Delete(ctx context.Context, id int) (bool, error) {
	return s.store.DeletePaymentMethod(ctx, id)
}

type PurchaseLocationService struct {
	store storage.PurchaseLocationStorage
}

func NewPurchaseLocationService(store storage.PurchaseLocationStorage) *PurchaseLocationService {
	return &PurchaseLocationService{store: store}
}

func (s *PurchaseLocationService) GetAll(ctx context.Context) ([]domain.PurchaseLocation, error) {
	return s.store.ListPurchaseLocations(ctx)
}

func (s *PurchaseLocationService) GetOne(ctx context.Context, id int) (*domain.PurchaseLocation, error) {
	return s.store.FindPurchaseLocation(ctx, id)
}

func (s *PurchaseLocationService) Create(ctx context.Context, in domain.PurchaseLocationCreate) (*domain.PurchaseLocation, error) {
	return s.store.CreatePurchaseLocation(ctx, in)
}

func (s *PurchaseLocationService) Update(ctx context.Context, id int, in domain.PurchaseLocationUpdate) (*domain.PurchaseLocation, error) {
	return s.store.UpdatePurchaseLocation(ctx, id, in)
}

func (s *PurchaseLocationService) Delete(ctx context.Context, id int) (bool, error) {
	return s.store.DeletePurchaseLocation(ctx, id)
}
