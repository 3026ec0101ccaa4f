package models

// CatalogRow is one rendered line of the stock table. The renderer consumes
// these verbatim; no markup concerns live on this side.
type CatalogRow struct {
	No          int    `json:"no"`
	Name        string `json:"name"`
	Barcode     string `json:"barcode"`
	Description string `json:"description"`
	Stock       int    `json:"stock"`
}

// CatalogView is the pure projection of a stock catalog for display.
type CatalogView struct {
	Rows  []CatalogRow `json:"rows"`
	Empty bool         `json:"empty"`
}

// ReceiptPreview is what the barcode form shows before the operator commits
// a receipt: the generated code plus formatted price and dates.
type ReceiptPreview struct {
	ProductName    string  `json:"product_name"`
	Barcode        string  `json:"barcode"`
	Price          float64 `json:"price"`
	PriceDisplay   string  `json:"price_display"`
	ProductionDate string  `json:"production_date"`
	ExpiryDate     string  `json:"expiry_date"`
}

// InventorySummary aggregates the catalog and incoming-goods log for the
// reports endpoint.
type InventorySummary struct {
	DistinctItems      int     `json:"distinct_items"`
	TotalUnits         int     `json:"total_units"`
	TotalIncomingValue float64 `json:"total_incoming_value"`
	ExpiringSoon       int     `json:"expiring_soon"`
	LogEntries         int     `json:"log_entries"`
}
