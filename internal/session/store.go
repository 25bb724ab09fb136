package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avasiljevs/learnkeeper/internal/kv"
	"github.com/avasiljevs/learnkeeper/internal/logging"
)

// userKey is the fixed key the serialized user record lives under.
const userKey = "user"

// Store persists the single user record that defines the authenticated
// session. It is the source of truth: a user that could not be saved is not
// logged in.
type Store struct {
	kv  kv.Store
	log logging.Logger
}

func NewStore(kv kv.Store, log logging.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Save serializes the user and writes it to the slot, overwriting any prior
// record.
func (s *Store) Save(ctx context.Context, u *User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user record: %w", err)
	}
	if err := s.kv.Set(ctx, userKey, data); err != nil {
		return fmt.Errorf("save user record: %w", err)
	}
	return nil
}

// Load reads the persisted user record. An absent record is a normal
// logged-out state and yields (nil, nil). A record that cannot be parsed is
// corrupt state: it is logged and reported as absent rather than crashing
// the caller. Only a failing read of the underlying store is an error.
func (s *Store) Load(ctx context.Context) (*User, error) {
	data, err := s.kv.Get(ctx, userKey)
	if err != nil {
		return nil, fmt.Errorf("load user record: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		s.log.Warn(ctx, "discarding corrupt user record", "error", err)
		return nil, nil
	}
	return &u, nil
}

// Clear removes the user record. Clearing an already-empty slot succeeds.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, userKey); err != nil {
		return fmt.Errorf("clear user record: %w", err)
	}
	return nil
}
