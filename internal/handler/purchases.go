// internal/handler/purchases.go
package handler

import (
	"log/slog"
	"net/http"
	"purchase-tracker/internal/domain"
	"purchase-tracker/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PurchaseHandler struct {
	purchases *service.PurchaseService
}

func NewPurchaseHandler(purchases *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

func (h *PurchaseHandler) GetAll(c *gin.Context) {
	list, err := h.purchases.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, "retrieve purchases", "Purchase", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PurchaseHandler) GetOne(c *gin.Context) {
	id, ok := parseID(c, "purchase")
	if !ok {
		return
	}

	purchase, err := h.purchases.GetOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, "retrieve purchase", "Purchase", err)
		return
	}
	if purchase == nil {
		notFound(c, "Purchase")
		return
	}
	c.JSON(http.StatusOK, purchase)
}

func (h *PurchaseHandler) Create(c *gin.Context) {
	var req createPurchaseRequest
	if !bindJSON(c, &req) {
		return
	}

	purchase, err := h.purchases.Create(c.Request.Context(), domain.PurchaseCreate{
		PurchaseDate:           req.PurchaseDate,
		TotalValue:             *req.TotalValue,
		Description:            req.Description,
		UserID:                 req.UserID,
		PurchaseLocationID:     req.PurchaseLocationID,
		Expenses:               toExpenseInputs(req.Expenses),
		PurchasePaymentMethods: toAllocationInputs(req.PurchasePaymentMethods),
	})
	if err != nil {
		respondError(c, "create purchase", "Purchase", err)
		return
	}

	slog.Info("Purchase created",
		"purchase_id", purchase.ID,
		"expenses", len(purchase.Expenses),
		"payments", len(purchase.PurchasePaymentMethods),
	)
	c.JSON(http.StatusCreated, purchase)
}

// Update: ключ expenses / purchasePaymentMethods в теле заменяет список целиком,
// отсутствие ключа оставляет дочерние строки как есть.
func (h *PurchaseHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "purchase")
	if !ok {
		return
	}

	var req updatePurchaseRequest
	if !bindJSON(c, &req) || emptyUpdate(c, req.empty()) {
		return
	}

	upd := domain.PurchaseUpdate{
		PurchaseDate:       req.PurchaseDate,
		TotalValue:         req.TotalValue,
		Description:        req.Description,
		UserID:             req.UserID,
		PurchaseLocationID: req.PurchaseLocationID,
	}
	if req.Expenses != nil {
		upd.ReplaceExpenses = true
		upd.Expenses = toExpenseInputs(*req.Expenses)
	}
	if req.PurchasePaymentMethods != nil {
		upd.ReplacePaymentMethods = true
		upd.PurchasePaymentMethods = toAllocationInputs(*req.PurchasePaymentMethods)
	}

	purchase, err := h.purchases.Update(c.Request.Context(), id, upd)
	if err != nil {
		respondError(c, "update purchase", "Purchase", err)
		return
	}
	c.JSON(http.StatusOK, purchase)
}

func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "purchase")
	if !ok {
		return
	}

	deleted, err := h.purchases.Delete(c.Request.Context(), id)
	respondDeleted(c, "delete purchase", "Purchase", deleted, err)
}

func toExpenseInputs(reqs []expenseRequest) []domain.ExpenseInput {
	out := make([]domain.ExpenseInput, len(reqs))
	for i, r := range reqs {
		out[i] = domain.ExpenseInput{
			Value:       *r.Value,
			ExpenseDate: r.ExpenseDate,
			Description: r.Description,
			ExpenseType: r.ExpenseType,
			CategoryID:  r.CategoryID,
			UserID:      r.UserID,
		}
	}
	return out
}

func toAllocationInputs(reqs []allocationRequest) []domain.PaymentAllocationInput {
	out := make([]domain.PaymentAllocationInput, len(reqs))
	for i, r := range reqs {
		out[i] = domain.PaymentAllocationInput{
			PaidValue:       *r.PaidValue,
			PaymentMethodID: r.PaymentMethodID,
		}
	}
	return out
}

// === DTO ===

type expenseRequest struct {
	Value       *decimal.Decimal `json:"value" validate:"required,money"`
	ExpenseDate time.Time        `json:"expenseDate" validate:"required"`
	Description *string          `json:"description"`
	ExpenseType string           `json:"expenseType" validate:"required,notblank"`
	CategoryID  int              `json:"categoryId" validate:"required,gt=0"`
	UserID      int              `json:"userId" validate:"required,gt=0"`
}

type allocationRequest struct {
	PaidValue       *decimal.Decimal `json:"paidValue" validate:"required,money"`
	PaymentMethodID int              `json:"paymentMethodId" validate:"required,gt=0"`
}

type createPurchaseRequest struct {
	PurchaseDate           time.Time           `json:"purchaseDate" validate:"required"`
	TotalValue             *decimal.Decimal    `json:"totalValue" validate:"required,money"`
	Description            *string             `json:"description"`
	UserID                 int                 `json:"userId" validate:"required,gt=0"`
	PurchaseLocationID     int                 `json:"purchaseLocationId" validate:"required,gt=0"`
	Expenses               []expenseRequest    `json:"expenses" validate:"required,dive"`
	PurchasePaymentMethods []allocationRequest `json:"purchasePaymentMethods" validate:"required,dive"`
}

type updatePurchaseRequest struct {
	PurchaseDate           *time.Time           `json:"purchaseDate"`
	TotalValue             *decimal.Decimal     `json:"totalValue" validate:"omitempty,money"`
	Description            *string              `json:"description"`
	UserID                 *int                 `json:"userId" validate:"omitempty,gt=0"`
	PurchaseLocationID     *int                 `json:"purchaseLocationId" validate:"omitempty,gt=0"`
	Expenses               *[]expenseRequest    `json:"expenses" validate:"omitempty,dive"`
	PurchasePaymentMethods *[]allocationRequest `json:"purchasePaymentMethods" validate:"omitempty,dive"`
}

func (r updatePurchaseRequest) empty() bool {
	return r.PurchaseDate == nil && r.TotalValue == nil && r.Description == nil &&
		r.UserID == nil && r.PurchaseLocationID == nil &&
		r.Expenses == nil && r.PurchasePaymentMethods == nil
}
