package port

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

type KeyValueStore interface {
	// Get returns the raw value stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key
	Set(ctx context.Context, key string, value []byte) error
}
