package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const intakeSessionKeyPrefix = "intake:session:"

// IntakeSessionMemoryStore keeps snapshots in their serialized form, so a
// reload goes through the same JSON codec as the Redis store.
type IntakeSessionMemoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

var _ interfaces.IIntakeSessionStore = (*IntakeSessionMemoryStore)(nil)

func NewIntakeSessionMemoryStore() *IntakeSessionMemoryStore {
	return &IntakeSessionMemoryStore{items: make(map[string][]byte)}
}

func (s *IntakeSessionMemoryStore) Load(_ context.Context, sessionID string) (entities.IntakeSnapshot, bool, error) {
	s.mu.RLock()
	raw, ok := s.items[sessionID]
	s.mu.RUnlock()
	if !ok {
		return entities.IntakeSnapshot{}, false, nil
	}
	var snap entities.IntakeSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return entities.IntakeSnapshot{}, false, err
	}
	return snap, true, nil
}

func (s *IntakeSessionMemoryStore) Save(_ context.Context, sessionID string, snapshot entities.IntakeSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items[sessionID] = raw
	s.mu.Unlock()
	return nil
}

func (s *IntakeSessionMemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.items, sessionID)
	s.mu.Unlock()
	return nil
}

// IntakeSessionRedisStore persists snapshots as JSON strings under
// "intake:session:<id>". Every save refreshes the TTL, so an abandoned
// session expires after ttl of inactivity.
type IntakeSessionRedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ interfaces.IIntakeSessionStore = (*IntakeSessionRedisStore)(nil)

func NewIntakeSessionRedisStore(rdb redis.Cmdable, ttl time.Duration) *IntakeSessionRedisStore {
	return &IntakeSessionRedisStore{rdb: rdb, ttl: ttl}
}

func (s *IntakeSessionRedisStore) Load(ctx context.Context, sessionID string) (entities.IntakeSnapshot, bool, error) {
	raw, err := s.rdb.Get(ctx, intakeSessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.IntakeSnapshot{}, false, nil
	}
	if err != nil {
		return entities.IntakeSnapshot{}, false, err
	}
	var snap entities.IntakeSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return entities.IntakeSnapshot{}, false, err
	}
	return snap, true, nil
}

func (s *IntakeSessionRedisStore) Save(ctx context.Context, sessionID string, snapshot entities.IntakeSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, intakeSessionKey(sessionID), raw, s.ttl).Err()
}

func (s *IntakeSessionRedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, intakeSessionKey(sessionID)).Err()
}

func intakeSessionKey(sessionID string) string {
	return intakeSessionKeyPrefix + sessionID
}
