// internal/handler/catalog.go
package handler

import (
	"net/http"
	"purchase-tracker/internal/domain"
	"purchase-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// --- Категории ---

type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) GetAll(c *gin.Context) {
	list, err := h.categories.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, "retrieve categories", "Category", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CategoryHandler) GetOne(c *gin.Context) {
	id, ok := parseID(c, "category")
	if !ok {
		return
	}

	category, err := h.categories.GetOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, "retrieve category", "Category", err)
		return
	}
	if category == nil {
		notFound(c, "Category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categories.Create(c.Request.Context(), domain.CategoryCreate{
		CategoryName: req.CategoryName,
		Description:  req.Description,
	})
	if err != nil {
		respondError(c, "create category", "Category", err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "category")
	if !ok {
		return
	}

	var req updateCategoryRequest
	if !bindJSON(c, &req) || emptyUpdate(c, req.CategoryName == nil && req.Description == nil) {
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, domain.CategoryUpdate{
		CategoryName: req.CategoryName,
		Description:  req.Description,
	})
	if err != nil {
		respondError(c, "update category", "Category", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "category")
	if !ok {
		return
	}

	deleted, err := h.categories.Delete(c.Request.Context(), id)
	respondDeleted(c, "delete category", "Category", deleted, err)
}

// --- Способы оплаты ---

type PaymentMethodHandler struct {
	methods *service.PaymentMethodService
}

func NewPaymentMethodHandler(methods *service.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{methods: methods}
}

func (h *PaymentMethodHandler) GetAll(c *gin.Context) {
	list, err := h.methods.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, "retrieve payment methods", "Payment method", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PaymentMethodHandler) GetOne(c *gin.Context) {
	id, ok := parseID(c, "payment method")
	if !ok {
		return
	}

	method, err := h.methods.GetOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, "retrieve payment method", "Payment method", err)
		return
	}
	if method == nil {
		notFound(c, "Payment method")
		return
	}
	c.JSON(http.StatusOK, method)
}

func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var req paymentMethodRequest
	if !bindJSON(c, &req) {
		return
	}

	method, err := h.methods.Create(c.Request.Context(), domain.PaymentMethodCreate{
		PaymentMethodName: req.PaymentMethodName,
		PaymentMethodType: req.PaymentMethodType,
	})
	if err != nil {
		respondError(c, "create payment method", "Payment method", err)
		return
	}
	c.JSON(http.StatusCreated, method)
}

// Update требует оба поля, как и создание.
func (h *PaymentMethodHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "payment method")
	if !ok {
		return
	}

	var req paymentMethodRequest
	if !bindJSON(c, &req) {
		return
	}

	method, err := h.methods.Update(c.Request.Context(), id, domain.PaymentMethodUpdate{
		PaymentMethodName: &req.PaymentMethodName,
		PaymentMethodType: &req.PaymentMethodType,
	})
	if err != nil {
		respondError(c, "update payment method", "Payment method", err)
		return
	}
	c.JSON(http.StatusOK, method)
}

func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "payment method")
	if !ok {
		return
	}

	deleted, err := h.methods.Delete(c.Request.Context(), id)
	respondDeleted(c, "delete payment method", "Payment method", deleted, err)
}

// --- Места покупок ---

type PurchaseLocationHandler struct {
	locations *service.PurchaseLocationService
}

func NewPurchaseLocationHandler(locations *service.PurchaseLocationService) *PurchaseLocationHandler {
	return &PurchaseLocationHandler{locations: locations}
}

func (h *PurchaseLocationHandler) GetAll(c *gin.Context) {
	list, err := h.locations.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, "retrieve purchase locations", "Purchase location", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PurchaseLocationHandler) GetOne(c *gin.Context) {
	id, ok := parseID(c, "purchase location")
	if !ok {
		return
	}

	location, err := h.locations.GetOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, "retrieve purchase location", "Purchase location", err)
		return
	}
	if location == nil {
		notFound(c, "Purchase location")
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *PurchaseLocationHandler) Create(c *gin.Context) {
	var req createLocationRequest
	if !bindJSON(c, &req) {
		return
	}

	location, err := h.locations.Create(c.Request.Context(), domain.PurchaseLocationCreate{
		LocationName: req.LocationName,
		LocationType: req.LocationType,
		Address:      req.Address,
	})
	if err != nil {
		respondError(c, "create purchase location", "Purchase location", err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

func (h *PurchaseLocationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "purchase location")
	if !ok {
		return
	}

	var req updateLocationRequest
	if !bindJSON(c, &req) || emptyUpdate(c, req.LocationName == nil && req.LocationType == nil && req.Address == nil) {
		return
	}

	location, err := h.locations.Update(c.Request.Context(), id, domain.PurchaseLocationUpdate{
		LocationName: req.LocationName,
		LocationType: req.LocationType,
		Address:      req.Address,
	})
	if err != nil {
		respondError(c, "update purchase location", "Purchase location", err)
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *PurchaseLocationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "purchase location")
	if !ok {
		return
	}

	deleted, err := h.locations.Delete(c.Request.Context(), id)
	respondDeleted(c, "delete purchase location", "Purchase location", deleted, err)
}

// === DTO ===

type createCategoryRequest struct {
	CategoryName string  `json:"categoryName" validate:"required,notblank"`
	Description  *string `json:"description"`
}

type updateCategoryRequest struct {
	CategoryName *string `json:"categoryName" validate:"omitempty,notblank"`
	Description  *string `json:"description"`
}

type paymentMethodRequest struct {
	PaymentMethodName string `json:"paymentMethodName" validate:"required,notblank"`
	PaymentMethodType string `json:"paymentMethodType" validate:"required,notblank"`
}

type createLocationRequest struct {
	LocationName string  `json:"locationName" validate:"required,notblank"`
	LocationType string  `json:"locationType" validate:"required,notblank"`
	Address      *string `json:"address"`
}

type updateLocationRequest struct {
	LocationName *string `json:"locationName" validate:"omitempty,notblank"`
	LocationType *string `json:"locationType" validate:"omitempty,notblank"`
	Address      *string `json:"address"`
}
