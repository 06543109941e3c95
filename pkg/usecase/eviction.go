package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sokoide/workshop/software/lru_cache/pkg/domain"
)

const defaultPublishTimeout = 2 * time.Second

// EvictionNotifier publishes an EvictionEvent for every item the cache evicts.
type EvictionNotifier struct {
	pub     domain.EvictionPublisher
	cache   string
	timeout time.Duration
}

// NewEvictionNotifier creates a notifier for the cache called cacheName.
func NewEvictionNotifier(pub domain.EvictionPublisher, cacheName string) *EvictionNotifier {
	return &EvictionNotifier{
		pub:     pub,
		cache:   cacheName,
		timeout: defaultPublishTimeout,
	}
}

// OnEvict is meant to be registered with lru.WithEvictionListener. Publish
// failures are logged; the eviction itself has already happened.
func (n *EvictionNotifier) OnEvict(item domain.Cacheable) {
	event := domain.EvictionEvent{
		EventID:   uuid.New().String(),
		ItemID:    item.ID(),
		Cache:     n.cache,
		EvictedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	if err := n.pub.Publish(ctx, event); err != nil {
		log.Printf("Error publishing eviction of %s: %v", item.ID(), err)
	}
}
