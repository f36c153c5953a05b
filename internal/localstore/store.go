// Package localstore provides the client's key-value persistence surface:
// small string payloads (the guest cart, the access token) kept across runs.
package localstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("localstore: key not found")

// Store is a string-valued key-value store. Values are opaque to the store;
// callers serialize their own payloads (JSON for the guest cart).
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
