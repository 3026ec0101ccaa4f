package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/SandMart23/Aplikasi-Bawang/internal/barcode"
	"github.com/SandMart23/Aplikasi-Bawang/internal/models"
	"github.com/SandMart23/Aplikasi-Bawang/internal/repositories"
)

// --- Custom Service Errors ---
var (
	// ErrInvalidReceipt rejects a receiving event. The finer sentinels
	// below wrap it so handlers can pick a user-facing message per cause.
	ErrInvalidReceipt        = errors.New("invalid receipt")
	ErrQuantityOutOfRange    = fmt.Errorf("%w: quantity out of range", ErrInvalidReceipt)
	ErrNegativePrice         = fmt.Errorf("%w: negative price", ErrInvalidReceipt)
	ErrNegativeShelfLife     = fmt.Errorf("%w: negative shelf life", ErrInvalidReceipt)
	ErrInvalidProductionDate = fmt.Errorf("%w: invalid production date", ErrInvalidReceipt)

	ErrItemNotFound = errors.New("stock item not found")
	ErrValidation   = errors.New("validation error")
)

const (
	// maxIncomingEntries caps the incoming-goods log; the oldest entries
	// beyond it are dropped silently (retention policy, not an error).
	maxIncomingEntries = 100

	// maxReceiptQuantity bounds a single receiving event.
	maxReceiptQuantity = 10000

	// expiringSoonWindow is the report horizon for near-expiry entries.
	expiringSoonWindow = 30 * 24 * time.Hour
)

// --- DTOs ---

// ReceiveStockRequest carries one receiving event from the barcode form.
type ReceiveStockRequest struct {
	Variant        string  `json:"variant" binding:"required"`
	Weight         int     `json:"weight" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required"`
	Price          float64 `json:"price"`
	ProductionDate string  `json:"production_date" binding:"required"`
	ShelfLifeDays  int     `json:"shelf_life_days"`
}

// PreviewRequest asks for the barcode and formatted fields a receipt would
// produce, without mutating anything.
type PreviewRequest struct {
	Variant        string  `json:"variant" binding:"required"`
	Weight         int     `json:"weight" binding:"required"`
	Price          float64 `json:"price"`
	ProductionDate string  `json:"production_date" binding:"required"`
	ShelfLifeDays  int     `json:"shelf_life_days"`
}

// ReceiveStockResult is what a successful receipt returns: the touched
// catalog row, the new log entry, and both updated collections for the
// renderer to redraw from.
type ReceiveStockResult struct {
	Item    models.StockItem            `json:"item"`
	Entry   models.IncomingGoodsEntry   `json:"entry"`
	Catalog []models.StockItem          `json:"catalog"`
	Log     []models.IncomingGoodsEntry `json:"log"`
}

// --- InventoryService Interface ---
type InventoryService interface {
	ReceiveStock(ctx context.Context, req ReceiveStockRequest) (*ReceiveStockResult, error)
	PreviewReceipt(req PreviewRequest) (*models.ReceiptPreview, error)
	GetCatalog(ctx context.Context) ([]models.StockItem, error)
	UpsertItem(ctx context.Context, index *int, item models.StockItem) ([]models.StockItem, error)
	RemoveItem(ctx context.Context, index int) ([]models.StockItem, error)
	GetIncoming(ctx context.Context) ([]models.IncomingGoodsEntry, error)
	Summary(ctx context.Context) (*models.InventorySummary, error)
}

// --- inventoryService Implementation ---
type inventoryService struct {
	catalogRepo  repositories.CatalogRepository
	incomingRepo repositories.IncomingRepository

	// mu serializes read-modify-write cycles against the blob store within
	// this process. Concurrent writers from other processes remain
	// last-writer-wins, which is acceptable for a single-operator shop.
	mu          sync.Mutex
	now         func() time.Time
	lastEntryID int64
}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService(catalogRepo repositories.CatalogRepository, incomingRepo repositories.IncomingRepository) InventoryService {
	return &inventoryService{
		catalogRepo:  catalogRepo,
		incomingRepo: incomingRepo,
		now:          time.Now,
	}
}

// nextEntryID hands out unix-millisecond entry IDs, bumped past the previous
// one so two receipts inside the same millisecond stay strictly ordered.
func (s *inventoryService) nextEntryID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastEntryID {
		id = s.lastEntryID + 1
	}
	s.lastEntryID = id
	return id
}

func validateReceipt(quantity int, price float64) error {
	if quantity < 1 || quantity > maxReceiptQuantity {
		return fmt.Errorf("%w: got %d, allowed 1..%d", ErrQuantityOutOfRange, quantity, maxReceiptQuantity)
	}
	if price < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativePrice, price)
	}
	return nil
}

// applyReceipt is the pure ledger core: given the current collections and
// one receiving event it returns the updated collections and the new entry.
// The inputs are never mutated; on error both are returned untouched, so a
// rejected receipt can never partially apply.
func applyReceipt(catalog []models.StockItem, log []models.IncomingGoodsEntry, req ReceiveStockRequest, entryID int64, now time.Time) ([]models.StockItem, []models.IncomingGoodsEntry, models.IncomingGoodsEntry, error) {
	if err := validateReceipt(req.Quantity, req.Price); err != nil {
		return catalog, log, models.IncomingGoodsEntry{}, err
	}
	if req.ShelfLifeDays < 0 {
		return catalog, log, models.IncomingGoodsEntry{}, fmt.Errorf("%w: got %d", ErrNegativeShelfLife, req.ShelfLifeDays)
	}

	expiry, err := barcode.ExpiryDate(req.ProductionDate, req.ShelfLifeDays)
	if err != nil {
		return catalog, log, models.IncomingGoodsEntry{}, fmt.Errorf("%w: %v", ErrInvalidProductionDate, err)
	}

	variant := barcode.Variant(req.Variant)
	weight := barcode.Weight(req.Weight)
	code := barcode.Generate(variant, weight)
	displayName := barcode.DisplayName(variant)

	nextCatalog := make([]models.StockItem, len(catalog))
	copy(nextCatalog, catalog)

	updatedIdx := -1
	for i := range nextCatalog {
		if nextCatalog[i].Barcode == code {
			nextCatalog[i].Stock += req.Quantity
			updatedIdx = i
			break
		}
	}
	if updatedIdx == -1 {
		nextCatalog = append(nextCatalog, models.StockItem{
			Name:        displayName + " " + barcode.FormatWeight(weight),
			Barcode:     code,
			Description: displayName + " - Berat " + barcode.FormatWeight(weight),
			Stock:       req.Quantity,
		})
		updatedIdx = len(nextCatalog) - 1
	}

	entry := models.IncomingGoodsEntry{
		ID:             entryID,
		ProductName:    displayName,
		Variant:        req.Variant,
		Weight:         strconv.Itoa(req.Weight) + "g",
		Quantity:       req.Quantity,
		Price:          req.Price,
		TotalValue:     req.Price * float64(req.Quantity),
		Barcode:        code,
		ProductionDate: req.ProductionDate,
		ExpiryDate:     expiry,
		EntryDate:      now.UTC(),
		Status:         models.EntryStatusActive,
	}

	nextLog := make([]models.IncomingGoodsEntry, 0, len(log)+1)
	nextLog = append(nextLog, entry)
	nextLog = append(nextLog, log...)
	if len(nextLog) > maxIncomingEntries {
		nextLog = nextLog[:maxIncomingEntries]
	}

	return nextCatalog, nextLog, entry, nil
}

// ReceiveStock applies one receiving event: generates the barcode, upserts
// the catalog row and prepends the log entry as one unit, then persists
// both collections.
func (s *inventoryService) ReceiveStock(ctx context.Context, req ReceiveStockRequest) (*ReceiveStockResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.catalogRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	log, err := s.incomingRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	nextCatalog, nextLog, entry, err := applyReceipt(catalog, log, req, s.nextEntryID(now), now)
	if err != nil {
		return nil, err
	}

	if err := s.catalogRepo.Save(ctx, nextCatalog); err != nil {
		return nil, err
	}
	if err := s.incomingRepo.Save(ctx, nextLog); err != nil {
		return nil, err
	}

	var item models.StockItem
	for _, it := range nextCatalog {
		if it.Barcode == entry.Barcode {
			item = it
			break
		}
	}

	return &ReceiveStockResult{Item: item, Entry: entry, Catalog: nextCatalog, Log: nextLog}, nil
}

// PreviewReceipt computes everything the form's preview card shows without
// touching stored state.
func (s *inventoryService) PreviewReceipt(req PreviewRequest) (*models.ReceiptPreview, error) {
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativePrice, req.Price)
	}
	if req.ShelfLifeDays < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeShelfLife, req.ShelfLifeDays)
	}
	expiry, err := barcode.ExpiryDate(req.ProductionDate, req.ShelfLifeDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProductionDate, err)
	}

	variant := barcode.Variant(req.Variant)
	weight := barcode.Weight(req.Weight)

	price := req.Price
	if price == 0 {
		// The form suggests a default price per weight when none was typed.
		price = barcode.SuggestedPrices[weight]
	}

	return &models.ReceiptPreview{
		ProductName:    barcode.DisplayName(variant) + " " + barcode.FormatWeight(weight),
		Barcode:        barcode.Generate(variant, weight),
		Price:          price,
		PriceDisplay:   barcode.FormatRupiah(price),
		ProductionDate: req.ProductionDate,
		ExpiryDate:     expiry,
	}, nil
}

func (s *inventoryService) GetCatalog(ctx context.Context) ([]models.StockItem, error) {
	return s.catalogRepo.Load(ctx)
}

// UpsertItem is the admin table's edit path: index-addressed, and it does
// NOT enforce barcode uniqueness, unlike ReceiveStock. The asymmetry is
// deliberate, matching the behavior operators already rely on.
func (s *inventoryService) UpsertItem(ctx context.Context, index *int, item models.StockItem) ([]models.StockItem, error) {
	if item.Name == "" || item.Barcode == "" {
		return nil, fmt.Errorf("%w: name and barcode are required", ErrValidation)
	}
	if item.Stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.catalogRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if index == nil {
		catalog = append(catalog, item)
	} else {
		if *index < 0 || *index >= len(catalog) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrItemNotFound, *index)
		}
		catalog[*index] = item
	}

	if err := s.catalogRepo.Save(ctx, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (s *inventoryService) RemoveItem(ctx context.Context, index int) ([]models.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.catalogRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(catalog) {
		return nil, fmt.Errorf("%w: index %d out of range", ErrItemNotFound, index)
	}

	catalog = append(catalog[:index], catalog[index+1:]...)

	if err := s.catalogRepo.Save(ctx, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (s *inventoryService) GetIncoming(ctx context.Context) ([]models.IncomingGoodsEntry, error) {
	return s.incomingRepo.Load(ctx)
}

// Summary aggregates both collections for the reports endpoint.
func (s *inventoryService) Summary(ctx context.Context) (*models.InventorySummary, error) {
	catalog, err := s.catalogRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	log, err := s.incomingRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.InventorySummary{
		DistinctItems: len(catalog),
		LogEntries:    len(log),
	}
	for _, item := range catalog {
		summary.TotalUnits += item.Stock
	}

	now := s.now()
	horizon := now.Add(expiringSoonWindow)
	for _, entry := range log {
		summary.TotalIncomingValue += entry.TotalValue
		expiry, err := time.Parse(barcode.DateLayout, entry.ExpiryDate)
		if err != nil {
			continue
		}
		if !expiry.Before(now.Truncate(24*time.Hour)) && expiry.Before(horizon) {
			summary.ExpiringSoon++
		}
	}
	return summary, nil
}

// BuildCatalogView is the pure projection the renderer redraws from; all
// markup stays on the renderer's side.
func BuildCatalogView(catalog []models.StockItem) models.CatalogView {
	view := models.CatalogView{Rows: []models.CatalogRow{}, Empty: len(catalog) == 0}
	for i, item := range catalog {
		view.Rows = append(view.Rows, models.CatalogRow{
			No:          i + 1,
			Name:        item.Name,
			Barcode:     item.Barcode,
			Description: item.DisplayDescription(),
			Stock:       item.Stock,
		})
	}
	return view
}
