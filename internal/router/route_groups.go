package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SandMart23/Aplikasi-Bawang/internal/handlers"
)

func SetupPublicAuthRoutes(group *gin.RouterGroup, handler *handlers.AuthHandler) {
	group.POST("/login", handler.LoginUser)
}

func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, handler *handlers.AuthHandler) {
	group.POST("/logout", handler.LogoutUser)
	group.GET("/me", handler.GetCurrentUser)
}

func SetupReceiptRoutes(group *gin.RouterGroup, handler *handlers.InventoryHandler) {
	receipts := group.Group("/receipts")
	{
		receipts.POST("", handler.ReceiveStock)
		receipts.POST("/preview", handler.PreviewReceipt)
	}
}

func SetupStockItemRoutes(group *gin.RouterGroup, handler *handlers.InventoryHandler) {
	stockItems := group.Group("/stock-items")
	{
		stockItems.GET("", handler.GetStockItems)
		stockItems.POST("", handler.CreateStockItem)
		stockItems.PUT("/:index", handler.UpdateStockItem)
		stockItems.DELETE("/:index", handler.DeleteStockItem)
	}
}

func SetupIncomingGoodsRoutes(group *gin.RouterGroup, handler *handlers.InventoryHandler) {
	group.GET("/incoming-goods", handler.GetIncomingGoods)
}

func SetupReportRoutes(group *gin.RouterGroup, handler *handlers.InventoryHandler) {
	reports := group.Group("/reports")
	{
		reports.GET("/inventory", handler.GetInventorySummary)
	}
}
