package usecase

import (
	"context"

	"github.com/sokoide/workshop/software/lru_cache/pkg/domain"
	"golang.org/x/sync/singleflight"
)

type fetchResult[T domain.Cacheable] struct {
	item  T
	found bool
}

// CoalescingSource collapses concurrent fetches of the same ID into one call
// to the wrapped source. It is useful when several caches share a slow
// upstream; a single cache already serializes its own misses.
type CoalescingSource[T domain.Cacheable] struct {
	source domain.DataSource[T]
	group  singleflight.Group
}

func NewCoalescingSource[T domain.Cacheable](source domain.DataSource[T]) *CoalescingSource[T] {
	return &CoalescingSource[T]{source: source}
}

// Fetch implements domain.DataSource. Callers joining an in-flight fetch
// share its result, including its error, and the context of the caller that
// started it.
func (c *CoalescingSource[T]) Fetch(ctx context.Context, id string) (T, bool, error) {
	v, err, _ := c.group.Do(id, func() (interface{}, error) {
		item, found, err := c.source.Fetch(ctx, id)
		return fetchResult[T]{item: item, found: found}, err
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	r := v.(fetchResult[T])
	return r.item, r.found, nil
}
