package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SandMart23/Aplikasi-Bawang/internal/models"
	"github.com/SandMart23/Aplikasi-Bawang/internal/storage"
)

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstLoadSeedsDemoCatalog", func(t *testing.T) {
		repo := NewCatalogRepository(storage.NewMemoryStore())
		catalog, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, catalog, 3)
		require.Equal(t, "BG001", catalog[0].Barcode)

		// A second load must come from the stored blob, not reseed.
		again, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, catalog, again)
	})

	t.Run("RoundTripIsFieldForField", func(t *testing.T) {
		repo := NewCatalogRepository(storage.NewMemoryStore())
		catalog := []models.StockItem{
			{Name: "Bawang Goreng Manis 250g", Barcode: "1202500247060", Description: "Bawang Goreng Manis - Berat 250g", Stock: 40},
			{Name: "Bawang Goreng Asin 1kg", Barcode: "1310000247060", Description: "", Stock: 3},
		}
		require.NoError(t, repo.Save(ctx, catalog))

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, catalog, got)
	})

	t.Run("StoredFieldNamesMatchOriginalBlobs", func(t *testing.T) {
		store := storage.NewMemoryStore()
		repo := NewCatalogRepository(store)
		require.NoError(t, repo.Save(ctx, []models.StockItem{
			{Name: "Bawang Goreng Original 500g", Barcode: "1005000247065", Description: "x", Stock: 5},
		}))

		raw, err := store.Get(ctx, storage.KeyStockCatalog)
		require.NoError(t, err)
		require.JSONEq(t, `[{"name":"Bawang Goreng Original 500g","barcode":"1005000247065","description":"x","stock":5}]`, raw)
	})

	t.Run("CorruptBlobReportsCorruptData", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, storage.KeyStockCatalog, "{not json"))

		_, err := NewCatalogRepository(store).Load(ctx)
		require.ErrorIs(t, err, ErrCorruptData)
	})
}

func TestIncomingRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("AbsentKeyIsEmptyLog", func(t *testing.T) {
		repo := NewIncomingRepository(storage.NewMemoryStore())
		log, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Empty(t, log)
	})

	t.Run("RoundTripIsFieldForField", func(t *testing.T) {
		repo := NewIncomingRepository(storage.NewMemoryStore())
		entry := models.IncomingGoodsEntry{
			ID:             1717000000123,
			ProductName:    "Bawang Goreng Pedas",
			Variant:        "pedas",
			Weight:         "250g",
			Quantity:       7,
			Price:          25000,
			TotalValue:     175000,
			Barcode:        "1102500247066",
			ProductionDate: "2024-05-29",
			ExpiryDate:     "2024-08-27",
			EntryDate:      time.Date(2024, 5, 29, 10, 0, 0, 0, time.UTC),
			Status:         models.EntryStatusActive,
		}
		require.NoError(t, repo.Save(ctx, []models.IncomingGoodsEntry{entry}))

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, entry, got[0])
	})
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(storage.NewMemoryStore())

	loggedIn, _, err := repo.Current(ctx)
	require.NoError(t, err)
	require.False(t, loggedIn)

	require.NoError(t, repo.SetLoggedIn(ctx, "admin"))
	loggedIn, username, err := repo.Current(ctx)
	require.NoError(t, err)
	require.True(t, loggedIn)
	require.Equal(t, "admin", username)

	require.NoError(t, repo.Clear(ctx))
	loggedIn, _, err = repo.Current(ctx)
	require.NoError(t, err)
	require.False(t, loggedIn)
}
