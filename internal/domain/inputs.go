// internal/domain/inputs.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Входные модели для записи. Указатель = поле не передано, его не трогаем.

type UserCreate struct {
	Name         string
	Email        string
	PasswordHash string
}

type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

type CategoryCreate struct {
	CategoryName string
	Description  *string
}

type CategoryUpdate struct {
	CategoryName *string
	Description  *string
}

type PaymentMethodCreate struct {
	PaymentMethodName string
	PaymentMethodType string
}

type PaymentMethodUpdate struct {
	PaymentMethodName *string
	PaymentMethodType *string
}

type PurchaseLocationCreate struct {
	LocationName string
	LocationType string
	Address      *string
}

type PurchaseLocationUpdate struct {
	LocationName *string
	LocationType *string
	Address      *string
}

type ExpenseInput struct {
	Value       decimal.Decimal
	ExpenseDate time.Time
	Description *string
	ExpenseType string
	CategoryID  int
	UserID      int
}

type PaymentAllocationInput struct {
	PaidValue       decimal.Decimal
	PaymentMethodID int
}

type PurchaseCreate struct {
	PurchaseDate           time.Time
	TotalValue             decimal.Decimal
	Description            *string
	UserID                 int
	PurchaseLocationID     int
	Expenses               []ExpenseInput
	PurchasePaymentMethods []PaymentAllocationInput
}

// PurchaseUpdate: если Replace* == false, дочерние строки не трогаем.
// Replace* == true с пустым списком удаляет все дочерние строки.
type PurchaseUpdate struct {
	PurchaseDate           *time.Time
	TotalValue             *decimal.Decimal
	Description            *string
	UserID                 *int
	PurchaseLocationID     *int
	Expenses               []ExpenseInput
	PurchasePaymentMethods []PaymentAllocationInput
	ReplaceExpenses        bool
	ReplacePaymentMethods  bool
}
