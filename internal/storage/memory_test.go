package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, KeyStockCatalog)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, KeyStockCatalog, "[]"))
	value, err := store.Get(ctx, KeyStockCatalog)
	require.NoError(t, err)
	require.Equal(t, "[]", value)

	require.NoError(t, store.Set(ctx, KeyIsLoggedIn, "true"))
	require.NoError(t, store.Delete(ctx, KeyStockCatalog, KeyIsLoggedIn))

	_, err = store.Get(ctx, KeyIsLoggedIn)
	require.ErrorIs(t, err, ErrKeyNotFound)
}
