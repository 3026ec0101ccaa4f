package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SandMart23/Aplikasi-Bawang/internal/models"
	"github.com/SandMart23/Aplikasi-Bawang/internal/storage"
)

// IncomingRepository persists the incoming-goods log as one JSON blob,
// newest entry first. An absent key is an empty log, not an error.
type IncomingRepository interface {
	Load(ctx context.Context) ([]models.IncomingGoodsEntry, error)
	Save(ctx context.Context, log []models.IncomingGoodsEntry) error
}

type incomingRepository struct {
	store storage.Store
}

// NewIncomingRepository creates a new instance of IncomingRepository.
func NewIncomingRepository(store storage.Store) IncomingRepository {
	return &incomingRepository{store: store}
}

func (r *incomingRepository) Load(ctx context.Context) ([]models.IncomingGoodsEntry, error) {
	raw, err := r.store.Get(ctx, storage.KeyIncomingLog)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []models.IncomingGoodsEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading incoming-goods log: %v", ErrPersistence, err)
	}

	var log []models.IncomingGoodsEntry
	if err := json.Unmarshal([]byte(raw), &log); err != nil {
		return nil, fmt.Errorf("%w: incoming-goods blob: %v", ErrCorruptData, err)
	}
	return log, nil
}

func (r *incomingRepository) Save(ctx context.Context, log []models.IncomingGoodsEntry) error {
	if log == nil {
		log = []models.IncomingGoodsEntry{}
	}
	raw, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("%w: encoding incoming-goods log: %v", ErrCorruptData, err)
	}
	if err := r.store.Set(ctx, storage.KeyIncomingLog, string(raw)); err != nil {
		return fmt.Errorf("%w: saving incoming-goods log: %v", ErrPersistence, err)
	}
	return nil
}
