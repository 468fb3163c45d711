// Package repository persists the studio state as string values under fixed
// keys, the same shape a browser's local storage gives a single device.
package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for a key that was never written.
var ErrNotFound = errors.New("not found")

// Storage is a flat key-value store. Writes replace the whole value.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Clear drops every key owned by the store.
	Clear(ctx context.Context) error
	Close() error
}
