package models

import "time"

// EntryStatusActive is the only status an incoming-goods entry can carry.
const EntryStatusActive = "active"

// StockItem represents one row of the stock catalog, keyed by barcode.
// JSON field names match the blobs the storefront already persists, so a
// catalog written by the browser app deserializes unchanged.
type StockItem struct {
	Name        string `json:"name" binding:"required"`
	Barcode     string `json:"barcode" binding:"required"`
	Description string `json:"description"`
	Stock       int    `json:"stock"`
}

// DisplayDescription returns the description with its defined default: a
// lone dash when the field was left empty, as the stock table renders it.
func (s StockItem) DisplayDescription() string {
	if s.Description == "" {
		return "-"
	}
	return s.Description
}

// IncomingGoodsEntry records one receiving event in the append-only
// incoming-goods log. The log is ordered newest first and capped at 100
// entries. Weight is stored in the original wire form, grams plus a "g"
// suffix (e.g. "1000g").
type IncomingGoodsEntry struct {
	ID             int64     `json:"id"`
	ProductName    string    `json:"productName"`
	Variant        string    `json:"variant"`
	Weight         string    `json:"weight"`
	Quantity       int       `json:"quantity"`
	Price          float64   `json:"price"`
	TotalValue     float64   `json:"totalValue"`
	Barcode        string    `json:"barcode"`
	ProductionDate string    `json:"productionDate"`
	ExpiryDate     string    `json:"expiryDate"`
	EntryDate      time.Time `json:"entryDate"`
	Status         string    `json:"status"`
}
