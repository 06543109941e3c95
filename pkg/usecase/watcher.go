package usecase

import (
	"context"

	"github.com/sokoide/workshop/software/lru_cache/pkg/domain"
)

// EvictionWatcher follows the eviction events of one cache.
type EvictionWatcher struct {
	sub domain.EvictionSubscriber
}

func NewEvictionWatcher(sub domain.EvictionSubscriber) *EvictionWatcher {
	return &EvictionWatcher{sub: sub}
}

// Start subscribes handler to events matching routingKey, skipping events
// whose Cache label differs from cacheName. An empty cacheName accepts all.
func (w *EvictionWatcher) Start(ctx context.Context, routingKey, cacheName string, handler func(domain.EvictionEvent) error) error {
	return w.sub.Subscribe(ctx, routingKey, func(event domain.EvictionEvent) error {
		if cacheName != "" && event.Cache != cacheName {
			return nil
		}
		return handler(event)
	})
}
