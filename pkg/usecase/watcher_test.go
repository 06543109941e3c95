package usecase

import (
	"context"
	"testing"

	"github.com/sokoide/workshop/software/lru_cache/pkg/domain"
)

type mockSubscriber struct {
	routingKey string
	handler    func(domain.EvictionEvent) error
}

func (m *mockSubscriber) Subscribe(ctx context.Context, routingKey string, handler func(domain.EvictionEvent) error) error {
	m.routingKey = routingKey
	m.handler = handler
	return nil
}

func TestEvictionWatcher_Start(t *testing.T) {
	mock := &mockSubscriber{}
	w := NewEvictionWatcher(mock)

	var got []string
	err := w.Start(context.Background(), "cache.products.evicted", "products", func(e domain.EvictionEvent) error {
		got = append(got, e.ItemID)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}

	if mock.routingKey != "cache.products.evicted" {
		t.Errorf("expected routing key cache.products.evicted, got %s", mock.routingKey)
	}
	if mock.handler == nil {
		t.Fatal("expected handler to be set")
	}

	_ = mock.handler(domain.EvictionEvent{ItemID: "a", Cache: "products"})
	_ = mock.handler(domain.EvictionEvent{ItemID: "b", Cache: "sessions"})

	if len(got) != 1 || got[0] != "a" {
		t.Errorf("expected only events of products, got %v", got)
	}
}
