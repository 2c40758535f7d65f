// internal/handler/handler.go
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"purchase-tracker/internal/domain"
	"purchase-tracker/internal/middleware"
	"strconv"
	"strings"

	val "purchase-tracker/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Тело ошибки: {"message": ...}; для 500 добавляется "error" с текстом причины.

func parseID(c *gin.Context, what string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Invalid %s ID provided.", what)})
		return 0, false
	}
	return id, true
}

// bindJSON разбирает тело и прогоняет его через валидатор. При ошибке ответ уже отправлен.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body."})
		return false
	}
	if err := validateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return false
	}
	return true
}

// emptyUpdate отвечает 400, если в PUT не пришло ни одного поля.
func emptyUpdate(c *gin.Context, empty bool) bool {
	if empty {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No data provided for update."})
	}
	return empty
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("%s not found.", what)})
}

// respondError переводит доменные ошибки в HTTP-статус.
func respondError(c *gin.Context, action string, what string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		notFound(c, what)
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("%s already exists.", what)})
	case errors.Is(err, domain.ErrInUse):
		c.JSON(http.StatusConflict, gin.H{"message": fmt.Sprintf("%s is still referenced by other records.", what)})
	case errors.Is(err, domain.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Referenced record does not exist."})
	default:
		slog.Error("Request failed",
			"action", action,
			"path", c.FullPath(),
			"request_id", c.GetString(middleware.RequestIDKey),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("Failed to %s.", action),
			"error":   err.Error(),
		})
	}
}

func respondDeleted(c *gin.Context, action string, what string, deleted bool, err error) {
	if err != nil {
		respondError(c, action, what, err)
		return
	}
	if !deleted {
		notFound(c, what)
		return
	}
	c.Status(http.StatusNoContent)
}

func validateStruct(v any) error {
	if err := val.Validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("invalid input: %w", err)
		}
		errs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			errs = append(errs, fieldErrorToString(e))
		}
		return fmt.Errorf("invalid input: %s", strings.Join(errs, "; "))
	}
	return nil
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", e.Field())
	case "money":
		return fmt.Sprintf("%s must be an amount with at most 2 decimal places", e.Field())
	case "gt":
		return fmt.Sprintf("%s must be a positive number", e.Field())
	case "min":
		return fmt.Sprintf("%s is too short", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
