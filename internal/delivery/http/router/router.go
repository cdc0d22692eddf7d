// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"truefind/internal/delivery/http/middleware"
	"truefind/internal/delivery/http/router/handler"
	"truefind/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CollectionHandler *handler.CollectionHandler
	CatalogHandler    *handler.CatalogHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	collectionHandler *handler.CollectionHandler
	catalogHandler    *handler.CatalogHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		collectionHandler: params.CollectionHandler,
		catalogHandler:    params.CatalogHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Token exchange; the token itself is the credential.
	e.POST("/auth/google/", r.authHandler.GoogleSignIn)

	// Unauthenticated diagnostic view over the catalog.
	e.GET("/firebase/", r.catalogHandler.Summary)

	// Per-user collections; every route re-verifies the bearer token.
	verifiedGroup := e.Group("/verified")
	verifiedGroup.Use(r.authMiddleware.Authenticate)
	{
		verifiedGroup.GET("/", r.collectionHandler.List(entity.CollectionVerified))
		verifiedGroup.POST("/", r.collectionHandler.Add(entity.CollectionVerified))
	}

	watchlistGroup := e.Group("/watchlist")
	watchlistGroup.Use(r.authMiddleware.Authenticate)
	{
		watchlistGroup.GET("/", r.collectionHandler.List(entity.CollectionWatchlist))
		watchlistGroup.POST("/", r.collectionHandler.Add(entity.CollectionWatchlist))
	}
}
