// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"registry/internal/delivery/api/middleware"
	"registry/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	FactoryHandler *handler.FactoryHandler
	UserHandler    *handler.UserHandler
	VendorHandler  *handler.VendorHandler
	AccountHandler *handler.AccountHandler
	EventHandler   *handler.EventHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	factoryHandler *handler.FactoryHandler
	userHandler    *handler.UserHandler
	vendorHandler  *handler.VendorHandler
	accountHandler *handler.AccountHandler
	eventHandler   *handler.EventHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		factoryHandler: params.FactoryHandler,
		userHandler:    params.UserHandler,
		vendorHandler:  params.VendorHandler,
		accountHandler: params.AccountHandler,
		eventHandler:   params.EventHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/challenge", r.sessionHandler.Challenge)
		authGroup.POST("/login", r.sessionHandler.Login)
	}

	apiV1 := e.Group("/api/v1")
	authenticated := r.authMiddleware.Authenticate

	factoriesGroup := apiV1.Group("/factories")
	{
		factoriesGroup.GET("/:kind", r.factoryHandler.GetFactory)
		factoriesGroup.POST("/:kind", r.factoryHandler.Initialize, authenticated)
		factoriesGroup.PUT("/:kind/fee", r.factoryHandler.SetFee, authenticated)
		factoriesGroup.POST("/:kind/withdrawals", r.factoryHandler.Withdraw, authenticated)
		factoriesGroup.PUT("/:kind/pause", r.factoryHandler.Pause, authenticated)
	}

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:name", r.userHandler.GetUser)
		usersGroup.GET("/:name/available", r.userHandler.CheckUsername)
		usersGroup.POST("", r.userHandler.RegisterUser, authenticated)
		usersGroup.PUT("/:name/bio", r.userHandler.UpdateBio, authenticated)
		usersGroup.PUT("/:name/username", r.userHandler.ChangeUsername, authenticated)
		usersGroup.PUT("/:name/owner", r.userHandler.TransferOwnership, authenticated)
	}

	vendorsGroup := apiV1.Group("/vendors")
	{
		vendorsGroup.GET("", r.vendorHandler.ListVendors)
		vendorsGroup.GET("/:name", r.vendorHandler.GetVendor)
		vendorsGroup.GET("/:name/available", r.vendorHandler.CheckVendorName)
		vendorsGroup.GET("/:name/qr", r.vendorHandler.QRCode)
		vendorsGroup.POST("", r.vendorHandler.RegisterVendor, authenticated)
		vendorsGroup.PUT("/:name/description", r.vendorHandler.UpdateDescription, authenticated)
		vendorsGroup.POST("/:name/products", r.vendorHandler.AddProduct, authenticated)
		vendorsGroup.DELETE("/:name/products/:productId", r.vendorHandler.RemoveProduct, authenticated)
		vendorsGroup.PUT("/:name/owner", r.vendorHandler.TransferOwnership, authenticated)
	}

	accountsGroup := apiV1.Group("/accounts")
	{
		accountsGroup.GET("/:address", r.accountHandler.GetAccount)
		accountsGroup.POST("/:address/airdrop", r.accountHandler.Airdrop, authenticated)
	}

	apiV1.GET("/events", r.eventHandler.ListEvents)
}
