package kv

import (
	"context"
	"fmt"

	"github.com/avasiljevs/learnkeeper/internal/common"
	"github.com/avasiljevs/learnkeeper/internal/cryptox"
)

// saltKey is a reserved plaintext key holding the per-store key derivation
// salt. It is never visible through the SecureStore interface.
const saltKey = "~salt"

// SecureStore wraps another Store and encrypts every value at rest with
// AES-GCM under a key derived from a caller-supplied secret. It stands in
// for the platform secure-storage primitive the application was designed
// around.
type SecureStore struct {
	inner Store
	key   []byte
}

// OpenSecure derives the encryption key for inner from secret, creating and
// persisting a random salt on first use.
func OpenSecure(ctx context.Context, inner Store, secret []byte) (*SecureStore, error) {
	salt, err := inner.Get(ctx, saltKey)
	if err != nil {
		return nil, fmt.Errorf("load store salt: %w", err)
	}
	if salt == nil {
		salt = common.GenerateRandByteArray(32)
		if err := inner.Set(ctx, saltKey, salt); err != nil {
			return nil, fmt.Errorf("persist store salt: %w", err)
		}
	}

	return &SecureStore{inner: inner, key: cryptox.DeriveKey(secret, salt)}, nil
}

func (s *SecureStore) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil || sealed == nil {
		return nil, err
	}
	value, err := cryptox.Open(s.key, sealed)
	if err != nil {
		return nil, fmt.Errorf("decrypt kv[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SecureStore) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := cryptox.Seal(s.key, value)
	if err != nil {
		return fmt.Errorf("encrypt kv[%s]: %w", key, err)
	}
	return s.inner.Set(ctx, key, sealed)
}

func (s *SecureStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
