// Package storage provides the local key-value persistence the session
// uses to survive process restarts. The backing store is a small sqlite
// database; the schema lives in internal/client/migrations.
package storage

import "context"

// Repository is a byte-oriented key-value store.
//
// Get returns (nil, nil) for a missing key: absence is a normal state for
// this store (first run, after logout), not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
