package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SandMart23/Aplikasi-Bawang/internal/handlers"
	"github.com/SandMart23/Aplikasi-Bawang/internal/middleware"
	"github.com/SandMart23/Aplikasi-Bawang/internal/repositories"
	"github.com/SandMart23/Aplikasi-Bawang/internal/services"
	"github.com/SandMart23/Aplikasi-Bawang/internal/storage"
)

// Config carries the operator credentials the auth service is built with.
type Config struct {
	AdminUsername     string
	AdminPasswordHash []byte
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, store storage.Store, cfg Config) {
	// Initialize Repositories
	catalogRepo := repositories.NewCatalogRepository(store)
	incomingRepo := repositories.NewIncomingRepository(store)
	sessionRepo := repositories.NewSessionRepository(store)

	// Initialize Services
	inventoryService := services.NewInventoryService(catalogRepo, incomingRepo)
	authService := services.NewAuthService(sessionRepo, cfg.AdminUsername, cfg.AdminPasswordHash)

	// Initialize Handlers
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	authHandler := handlers.NewAuthHandler(authService)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	// Authenticated routes
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupReceiptRoutes(authenticated, inventoryHandler)
		SetupStockItemRoutes(authenticated, inventoryHandler)
		SetupIncomingGoodsRoutes(authenticated, inventoryHandler)
		SetupReportRoutes(authenticated, inventoryHandler)
	}
}
