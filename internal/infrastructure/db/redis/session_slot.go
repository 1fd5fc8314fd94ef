package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/northbound/studio-api/internal/core/domain"
)

// SlotStore implements the persisted session slot on Redis: one key per
// session id holding the serialized Principal as UTF-8 JSON.
type SlotStore struct {
	client *redis.Client
}

// NewSlotStore creates a SlotStore wrapping the given Redis client.
func NewSlotStore(client *redis.Client) *SlotStore {
	return &SlotStore{client: client}
}

// Load reads the slot for sid. An absent slot yields (nil, nil); a slot that
// cannot be decoded into a valid Principal yields domain.ErrSessionCorrupt.
func (s *SlotStore) Load(ctx context.Context, sid string) (*domain.Principal, error) {
	raw, err := s.client.Get(ctx, s.key(sid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("session slot read: %w", err)
	}

	var p domain.Principal
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, domain.ErrSessionCorrupt
	}
	if p.ID == "" || !p.Role.Valid() {
		return nil, domain.ErrSessionCorrupt
	}
	return &p, nil
}

// Save overwrites the slot for sid. Last write wins.
func (s *SlotStore) Save(ctx context.Context, sid string, p *domain.Principal, ttl time.Duration) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("session slot encode: %w", err)
	}
	return s.client.Set(ctx, s.key(sid), raw, ttl).Err()
}

// Delete removes the slot for sid. Deleting an absent slot is not an error.
func (s *SlotStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, s.key(sid)).Err()
}

func (s *SlotStore) key(sid string) string {
	return "session:" + sid
}
