package repositories

import "errors"

var (
	// ErrPersistence is returned when the key-value store fails to read or
	// write a blob. It wraps the driver error; callers surface a generic
	// failure and do not retry.
	ErrPersistence = errors.New("persistence error")

	// ErrCorruptData is returned when a stored blob cannot be deserialized.
	ErrCorruptData = errors.New("stored data is corrupt")
)
