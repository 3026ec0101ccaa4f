package storage

import (
	"context"
	"errors"
)

// Storage keys. The names are carried over verbatim from the storefront's
// localStorage so existing persisted data keeps working against any driver
// that was seeded from it.
const (
	KeyStockCatalog = "bawangGorenStoreItems"
	KeyIncomingLog  = "bawangGorenStoreIncoming"
	KeyIsLoggedIn   = "isLoggedIn"
	KeyUsername     = "username"
)

// ErrKeyNotFound is returned by Get when no value is stored under the key.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is the generic key-value persistence collaborator. Values are opaque
// serialized strings; the repositories layer owns the wire format.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
