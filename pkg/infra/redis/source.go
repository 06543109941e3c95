package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sokoide/workshop/software/lru_cache/pkg/domain"
)

// Source loads JSON-encoded items stored under prefix+ID.
type Source[T domain.Cacheable] struct {
	client *redis.Client
	prefix string // e.g. "product:"
}

func NewSource[T domain.Cacheable](client *redis.Client, prefix string) *Source[T] {
	return &Source[T]{
		client: client,
		prefix: prefix,
	}
}

func (s *Source[T]) key(id string) string {
	return s.prefix + id
}

// Fetch implements domain.DataSource.
func (s *Source[T]) Fetch(ctx context.Context, id string) (T, bool, error) {
	var item T

	value, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return item, false, nil // Not found
	}
	if err != nil {
		return item, false, domain.NewRetrievalError(id, err)
	}

	if err := json.Unmarshal(value, &item); err != nil {
		return item, false, domain.NewRetrievalError(id, fmt.Errorf("could not decode %s: %w", s.key(id), err))
	}
	return item, true, nil
}

// Put stores item under its own ID. ttl <= 0 keeps the key forever.
func (s *Source[T]) Put(ctx context.Context, item T, ttl time.Duration) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", item.ID(), err)
	}
	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, s.key(item.ID()), payload, ttl).Err()
}
