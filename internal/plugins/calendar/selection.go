package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// selectionKeyPrefix namespaces selection keys in Redis.
const selectionKeyPrefix = "priority_selection:"

// SelectionStore keeps one Selection per browser session.
type SelectionStore interface {
	// Get returns the stored selection, or nil if the session has none.
	Get(ctx context.Context, sessionKey string) (*Selection, error)
	// Put replaces the session's selection and refreshes its TTL.
	Put(ctx context.Context, sessionKey string, sel Selection) error
}

// redisSelectionStore stores selections as JSON strings with a TTL.
type redisSelectionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSelectionStore creates a SelectionStore backed by Redis.
func NewRedisSelectionStore(client *redis.Client, ttl time.Duration) SelectionStore {
	return &redisSelectionStore{client: client, ttl: ttl}
}

func (s *redisSelectionStore) Get(ctx context.Context, sessionKey string) (*Selection, error) {
	data, err := s.client.Get(ctx, selectionKeyPrefix+sessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading selection: %w", err)
	}

	var sel Selection
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil, fmt.Errorf("decoding selection: %w", err)
	}
	return &sel, nil
}

func (s *redisSelectionStore) Put(ctx context.Context, sessionKey string, sel Selection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("encoding selection: %w", err)
	}
	if err := s.client.Set(ctx, selectionKeyPrefix+sessionKey, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("storing selection: %w", err)
	}
	return nil
}
