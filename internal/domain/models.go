// internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Деньги отдаём числами, как и исходный API: 150.75, а не "150.75".
	decimal.MarshalJSONWithoutQuotes = true
}

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Category struct {
	ID           int       `json:"id"`
	CategoryName string    `json:"categoryName"`
	Description  *string   `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type PaymentMethod struct {
	ID                int       `json:"id"`
	PaymentMethodName string    `json:"paymentMethodName"`
	PaymentMethodType string    `json:"paymentMethodType"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type PurchaseLocation struct {
	ID           int       `json:"id"`
	LocationName string    `json:"locationName"`
	LocationType string    `json:"locationType"`
	Address      *string   `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Expense: строка расхода внутри покупки.
type Expense struct {
	ID          int             `json:"id"`
	Value       decimal.Decimal `json:"value"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Description *string         `json:"description"`
	ExpenseType string          `json:"expenseType"`
	PurchaseID  int             `json:"purchaseId"`
	CategoryID  int             `json:"categoryId"`
	UserID      int             `json:"userId"`
}

// PurchasePaymentMethod: сколько было оплачено конкретным способом оплаты.
type PurchasePaymentMethod struct {
	ID              int             `json:"id"`
	PaidValue       decimal.Decimal `json:"paidValue"`
	PurchaseID      int             `json:"purchaseId"`
	PaymentMethodID int             `json:"paymentMethodId"`
	PaymentMethod   *PaymentMethod  `json:"paymentMethod,omitempty"`
}

// Purchase: агрегат: шапка покупки + её расходы + её оплаты.
// Дочерние строки живут и умирают только вместе с покупкой.
type Purchase struct {
	ID                     int                     `json:"id"`
	PurchaseDate           time.Time               `json:"purchaseDate"`
	TotalValue             decimal.Decimal         `json:"totalValue"`
	Description            *string                 `json:"description"`
	UserID                 int                     `json:"userId"`
	PurchaseLocationID     int                     `json:"purchaseLocationId"`
	CreatedAt              time.Time               `json:"createdAt"`
	UpdatedAt              time.Time               `json:"updatedAt"`
	Expenses               []Expense               `json:"expenses"`
	PurchasePaymentMethods []PurchasePaymentMethod `json:"purchasePaymentMethods"`
	PurchaseLocation       *PurchaseLocation       `json:"purchaseLocation,omitempty"`
	User                   *User                   `json:"user,omitempty"`
}
