// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wholesale/internal/delivery/http/middleware"
	"wholesale/internal/delivery/http/router/handler"
	"wholesale/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	ProcurementHandler *handler.ProcurementHandler
	SaleHandler        *handler.SaleHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	procurementHandler *handler.ProcurementHandler
	saleHandler        *handler.SaleHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		procurementHandler: params.ProcurementHandler,
		saleHandler:        params.SaleHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Procurement: reads for any authenticated user, writes for Managers only.
	procurementGroup := e.Group("/procurement")
	procurementGroup.Use(r.authMiddleware.Authenticate)
	{
		procurementGroup.POST("", r.procurementHandler.Create, r.authMiddleware.RequireRole(entity.RoleManager))
		procurementGroup.GET("", r.procurementHandler.List)
		procurementGroup.GET("/:id", r.procurementHandler.Get)
	}

	// Sales: writes for SalesAgents and Managers; reads and the payment
	// transition for any authenticated user.
	salesGroup := e.Group("/sales")
	salesGroup.Use(r.authMiddleware.Authenticate)
	{
		recordRoles := r.authMiddleware.RequireRole(entity.RoleSalesAgent, entity.RoleManager)
		salesGroup.POST("/cash", r.saleHandler.RecordCash, recordRoles)
		salesGroup.POST("/credit", r.saleHandler.RecordCredit, recordRoles)
		salesGroup.GET("", r.saleHandler.List)
		salesGroup.GET("/:id", r.saleHandler.Get)
		salesGroup.PATCH("/credit/:id/payment", r.saleHandler.MarkPaid)
	}
}
