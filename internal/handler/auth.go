// internal/handler/auth.go
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"purchase-tracker/internal/auth"
	"purchase-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users  *service.UserService
	tokens *auth.TokenService
}

func NewAuthHandler(users *service.UserService, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
		return
	}
	if err != nil {
		respondError(c, "log in", "User", err)
		return
	}

	token, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		respondError(c, "log in", "User", err)
		return
	}

	slog.Info("User logged in", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
