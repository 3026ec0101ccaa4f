package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SandMart23/Aplikasi-Bawang/internal/models"
	"github.com/SandMart23/Aplikasi-Bawang/internal/storage"
)

// CatalogRepository persists the stock catalog as one JSON blob under the
// storefront's catalog key.
type CatalogRepository interface {
	Load(ctx context.Context) ([]models.StockItem, error)
	Save(ctx context.Context, catalog []models.StockItem) error
}

type catalogRepository struct {
	store storage.Store
}

// NewCatalogRepository creates a new instance of CatalogRepository.
func NewCatalogRepository(store storage.Store) CatalogRepository {
	return &catalogRepository{store: store}
}

// seedCatalog is the demo data the storefront writes on first run. Loading
// an empty store installs it so a fresh deployment shows the same table the
// browser app did.
func seedCatalog() []models.StockItem {
	return []models.StockItem{
		{Name: "Bawang Goreng Original", Barcode: "BG001", Description: "Bawang goreng kualitas premium", Stock: 150},
		{Name: "Bawang Goreng Pedas", Barcode: "BG002", Description: "Bawang goreng dengan rasa pedas", Stock: 85},
		{Name: "Bawang Goreng Balado", Barcode: "BG003", Description: "Bawang goreng rasa balado", Stock: 120},
	}
}

func (r *catalogRepository) Load(ctx context.Context) ([]models.StockItem, error) {
	raw, err := r.store.Get(ctx, storage.KeyStockCatalog)
	if errors.Is(err, storage.ErrKeyNotFound) {
		catalog := seedCatalog()
		if err := r.Save(ctx, catalog); err != nil {
			return nil, err
		}
		return catalog, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading stock catalog: %v", ErrPersistence, err)
	}

	var catalog []models.StockItem
	if err := json.Unmarshal([]byte(raw), &catalog); err != nil {
		return nil, fmt.Errorf("%w: stock catalog blob: %v", ErrCorruptData, err)
	}
	return catalog, nil
}

func (r *catalogRepository) Save(ctx context.Context, catalog []models.StockItem) error {
	if catalog == nil {
		catalog = []models.StockItem{}
	}
	raw, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("%w: encoding stock catalog: %v", ErrCorruptData, err)
	}
	if err := r.store.Set(ctx, storage.KeyStockCatalog, string(raw)); err != nil {
		return fmt.Errorf("%w: saving stock catalog: %v", ErrPersistence, err)
	}
	return nil
}
