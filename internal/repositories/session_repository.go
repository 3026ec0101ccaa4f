package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/SandMart23/Aplikasi-Bawang/internal/storage"
)

// SessionRepository keeps the storefront's login flag and username keys.
// The JWT is what actually authenticates requests; these keys exist for
// interop with renderers that still read the original storage contract.
type SessionRepository interface {
	SetLoggedIn(ctx context.Context, username string) error
	Clear(ctx context.Context) error
	Current(ctx context.Context) (loggedIn bool, username string, err error)
}

type sessionRepository struct {
	store storage.Store
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(store storage.Store) SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) SetLoggedIn(ctx context.Context, username string) error {
	if err := r.store.Set(ctx, storage.KeyIsLoggedIn, "true"); err != nil {
		return fmt.Errorf("%w: setting login flag: %v", ErrPersistence, err)
	}
	if err := r.store.Set(ctx, storage.KeyUsername, username); err != nil {
		return fmt.Errorf("%w: setting username: %v", ErrPersistence, err)
	}
	return nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, storage.KeyIsLoggedIn, storage.KeyUsername); err != nil {
		return fmt.Errorf("%w: clearing session: %v", ErrPersistence, err)
	}
	return nil
}

func (r *sessionRepository) Current(ctx context.Context) (bool, string, error) {
	flag, err := r.store.Get(ctx, storage.KeyIsLoggedIn)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return false, "", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("%w: reading login flag: %v", ErrPersistence, err)
	}
	if flag != "true" {
		return false, "", nil
	}

	username, err := r.store.Get(ctx, storage.KeyUsername)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return true, "", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("%w: reading username: %v", ErrPersistence, err)
	}
	return true, username, nil
}
