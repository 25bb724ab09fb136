// Package kv provides the opaque durable key-value primitive the session
// store is built on: string keys, opaque byte values, no transactions.
package kv

import "context"

// Store is a small durable key-value slot collection.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent; absence is not an error.
//   - Set overwrites any prior value.
//   - Delete of an absent key is a no-op, not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
