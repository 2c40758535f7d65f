// internal/handler/router.go
package handler

import (
	"net/http"
	"purchase-tracker/internal/auth"
	"purchase-tracker/internal/middleware"
	"purchase-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// NewRouter собирает gin-движок со всеми маршрутами /api.
// При requireAuth всё, кроме регистрации и логина, закрыто bearer-токеном.
func NewRouter(svc service.Services, tokens *auth.TokenService, requireAuth bool) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), gin.Logger(), gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := NewUserHandler(svc.Users)
	api := router.Group("/api")

	// Открытые маршруты
	api.POST("/auth/login", NewAuthHandler(svc.Users, tokens).Login)
	api.POST("/users", users.Create)

	protected := api.Group("")
	if requireAuth {
		protected.Use(middleware.NewAuthMiddleware(tokens).RequireAuth())
	}

	{
		g := protected.Group("/users")
		g.GET("", users.GetAll)
		g.GET("/:id", users.GetOne)
		g.PUT("/:id", users.Update)
		g.DELETE("/:id", users.Delete)
	}
	{
		h := NewCategoryHandler(svc.Categories)
		g := protected.Group("/categories")
		g.GET("", h.GetAll)
		g.GET("/:id", h.GetOne)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
	{
		h := NewPaymentMethodHandler(svc.PaymentMethods)
		g := protected.Group("/payment-methods")
		g.GET("", h.GetAll)
		g.GET("/:id", h.GetOne)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
	{
		h := NewPurchaseLocationHandler(svc.Locations)
		g := protected.Group("/purchase-locations")
		g.GET("", h.GetAll)
		g.GET("/:id", h.GetOne)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
	{
		h := NewPurchaseHandler(svc.Purchases)
		g := protected.Group("/purchases")
		g.GET("", h.GetAll)
		g.GET("/:id", h.GetOne)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	return router
}
