package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SandMart23/Aplikasi-Bawang/internal/models"
	"github.com/SandMart23/Aplikasi-Bawang/internal/repositories"
	"github.com/SandMart23/Aplikasi-Bawang/internal/services"
	"github.com/SandMart23/Aplikasi-Bawang/pkg/utils"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

// invalidReceiptMessage picks the operator-facing toast for a rejected
// receipt from the wrapped cause.
func invalidReceiptMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrQuantityOutOfRange):
		return "Jumlah produk harus antara 1-10000"
	case errors.Is(err, services.ErrNegativePrice):
		return "Harga tidak boleh negatif"
	case errors.Is(err, services.ErrNegativeShelfLife):
		return "Masa simpan tidak boleh negatif"
	case errors.Is(err, services.ErrInvalidProductionDate):
		return "Tanggal produksi tidak valid"
	default:
		return "Data penerimaan tidak valid"
	}
}

// respondInventoryError maps service and persistence errors onto the API
// error envelope.
func respondInventoryError(c *gin.Context, err error, operation string) {
	utils.LogError(err, operation)
	switch {
	case errors.Is(err, services.ErrInvalidReceipt):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeInvalidReceipt, invalidReceiptMessage(err), err.Error()))
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Input validation failed.", err.Error()))
	case errors.Is(err, services.ErrItemNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Barang tidak ditemukan.", err.Error()))
	case errors.Is(err, repositories.ErrPersistence), errors.Is(err, repositories.ErrCorruptData):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodePersistenceFailed, "Gagal menyimpan data. Silakan coba lagi.", "Storage failure"))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Unexpected error.", "Internal error"))
	}
}

// ReceiveStock handles one receiving event from the barcode form.
func (h *InventoryHandler) ReceiveStock(c *gin.Context) {
	var req services.ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "ReceiveStock: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	result, err := h.inventoryService.ReceiveStock(c.Request.Context(), req)
	if err != nil {
		respondInventoryError(c, err, "ReceiveStock: Error from inventoryService.ReceiveStock")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Barcode berhasil di-generate! %d unit ditambahkan ke stok", result.Entry.Quantity),
		"item":    result.Item,
		"entry":   result.Entry,
		"catalog": result.Catalog,
		"log":     result.Log,
	})
}

// PreviewReceipt returns the barcode and formatted fields a receipt would
// produce, without mutating stored state.
func (h *InventoryHandler) PreviewReceipt(c *gin.Context) {
	var req services.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "PreviewReceipt: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	preview, err := h.inventoryService.PreviewReceipt(req)
	if err != nil {
		respondInventoryError(c, err, "PreviewReceipt: Error from inventoryService.PreviewReceipt")
		return
	}
	c.JSON(http.StatusOK, preview)
}

// GetStockItems returns the catalog along with its display projection.
func (h *InventoryHandler) GetStockItems(c *gin.Context) {
	catalog, err := h.inventoryService.GetCatalog(c.Request.Context())
	if err != nil {
		respondInventoryError(c, err, "GetStockItems: Error from inventoryService.GetCatalog")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": catalog,
		"view":  services.BuildCatalogView(catalog),
	})
}

// CreateStockItem appends a row through the admin table's edit path.
func (h *InventoryHandler) CreateStockItem(c *gin.Context) {
	var item models.StockItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.LogError(err, "CreateStockItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	catalog, err := h.inventoryService.UpsertItem(c.Request.Context(), nil, item)
	if err != nil {
		respondInventoryError(c, err, "CreateStockItem: Error from inventoryService.UpsertItem")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Barang berhasil ditambahkan!",
		"items":   catalog,
		"view":    services.BuildCatalogView(catalog),
	})
}

// UpdateStockItem replaces the row at a display index.
func (h *InventoryHandler) UpdateStockItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid item index.", err.Error()))
		return
	}

	var item models.StockItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.LogError(err, "UpdateStockItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	catalog, err := h.inventoryService.UpsertItem(c.Request.Context(), &index, item)
	if err != nil {
		respondInventoryError(c, err, "UpdateStockItem: Error from inventoryService.UpsertItem")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Barang berhasil diupdate!",
		"items":   catalog,
		"view":    services.BuildCatalogView(catalog),
	})
}

// DeleteStockItem removes the row at a display index.
func (h *InventoryHandler) DeleteStockItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid item index.", err.Error()))
		return
	}

	catalog, err := h.inventoryService.RemoveItem(c.Request.Context(), index)
	if err != nil {
		respondInventoryError(c, err, "DeleteStockItem: Error from inventoryService.RemoveItem")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Barang berhasil dihapus!",
		"items":   catalog,
		"view":    services.BuildCatalogView(catalog),
	})
}

// GetIncomingGoods returns the incoming-goods log, newest first.
func (h *InventoryHandler) GetIncomingGoods(c *gin.Context) {
	log, err := h.inventoryService.GetIncoming(c.Request.Context())
	if err != nil {
		respondInventoryError(c, err, "GetIncomingGoods: Error from inventoryService.GetIncoming")
		return
	}
	c.JSON(http.StatusOK, log)
}

// GetInventorySummary returns the aggregated inventory report.
func (h *InventoryHandler) GetInventorySummary(c *gin.Context) {
	summary, err := h.inventoryService.Summary(c.Request.Context())
	if err != nil {
		respondInventoryError(c, err, "GetInventorySummary: Error from inventoryService.Summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
