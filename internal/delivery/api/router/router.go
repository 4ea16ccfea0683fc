// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler *handler.AuthHandler
	SkuHandler  *handler.SkuHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler *handler.AuthHandler
	skuHandler  *handler.SkuHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler: params.AuthHandler,
		skuHandler:  params.SkuHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Catalog routes
	skusGroup := api.Group("/skus")
	{
		// Legacy auth paths kept for existing clients
		skusGroup.POST("/user", r.authHandler.Register)
		skusGroup.POST("/auth/login", r.authHandler.Login)

		skusGroup.GET("", r.skuHandler.ListSkus)
		skusGroup.POST("", r.skuHandler.CreateSku)
		skusGroup.GET("/search", r.skuHandler.SearchSkus)
		skusGroup.GET("/categories", r.skuHandler.ListCategories)
		skusGroup.GET("/category/:category", r.skuHandler.ListSkusByCategory)
		skusGroup.GET("/code/:skuCode", r.skuHandler.GetSkuByCode)
		skusGroup.GET("/:id", r.skuHandler.GetSku)
		skusGroup.PUT("/:id", r.skuHandler.UpdateSku)
		skusGroup.DELETE("/:id", r.skuHandler.DeleteSku)
		skusGroup.GET("/:id/label", r.skuHandler.GetSkuLabel)
		skusGroup.GET("/:id/history", r.skuHandler.GetSkuHistory)
	}
}
