// internal/handler/users.go
package handler

import (
	"log/slog"
	"net/http"
	"purchase-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.users.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, "retrieve users", "User", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetOne(c *gin.Context) {
	id, ok := parseID(c, "user")
	if !ok {
		return
	}

	user, err := h.users.GetOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, "retrieve user", "User", err)
		return
	}
	if user == nil {
		notFound(c, "User")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.Create(c.Request.Context(), service.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, "create user", "User with this email", err)
		return
	}

	slog.Info("User created", "user_id", user.ID)
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "user")
	if !ok {
		return
	}

	var req updateUserRequest
	if !bindJSON(c, &req) || emptyUpdate(c, req.Name == nil && req.Email == nil && req.Password == nil) {
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, service.UserChanges{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, "update user", "User", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "user")
	if !ok {
		return
	}

	deleted, err := h.users.Delete(c.Request.Context(), id)
	respondDeleted(c, "delete user", "User", deleted, err)
}

// === DTO ===

type createUserRequest struct {
	Name     string `json:"name" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,notblank"`
}

type updateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,notblank"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,notblank"`
}
