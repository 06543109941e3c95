package usecase

import (
	"context"
	"sync/atomic"

	"github.com/sokoide/workshop/software/lru_cache/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// Loader is the read side of lru.LRUCache.
type Loader[T domain.Cacheable] interface {
	GetFromCache(ctx context.Context, key string) (T, bool, error)
}

type WarmResult struct {
	Loaded  int
	Missing []string
}

// Warm looks up every id through cache with at most concurrency lookups in
// flight. The first retrieval error cancels the remaining lookups and is
// returned. IDs unknown upstream are reported in Missing, in input order.
func Warm[T domain.Cacheable](ctx context.Context, cache Loader[T], ids []string, concurrency int) (WarmResult, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	found := make([]bool, len(ids))
	var loaded atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, ok, err := cache.GetFromCache(gctx, id)
			if err != nil {
				return err
			}
			if ok {
				found[i] = true
				loaded.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return WarmResult{Loaded: int(loaded.Load())}, err
	}

	res := WarmResult{Loaded: int(loaded.Load())}
	for i, id := range ids {
		if !found[i] {
			res.Missing = append(res.Missing, id)
		}
	}
	return res, nil
}
