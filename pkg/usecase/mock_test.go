package usecase

import (
	"context"
	"sync"

	"github.com/sokoide/workshop/software/lru_cache/pkg/domain"
)

type mockSource struct {
	mu       sync.Mutex
	products map[string]domain.Product
	calls    int
	err      error

	started chan struct{} // receives once per call when non-nil
	release chan struct{} // calls block until closed when non-nil
}

func newMockSource(skus ...string) *mockSource {
	m := &mockSource{products: make(map[string]domain.Product)}
	for _, sku := range skus {
		m.products[sku] = domain.Product{SKU: sku, Name: "product " + sku}
	}
	return m
}

func (m *mockSource) Fetch(ctx context.Context, id string) (domain.Product, bool, error) {
	m.mu.Lock()
	m.calls++
	started, release, err := m.started, m.release, m.err
	p, ok := m.products[id]
	m.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return domain.Product{}, false, domain.NewRetrievalError(id, ctx.Err())
		}
	}
	if err != nil {
		return domain.Product{}, false, domain.NewRetrievalError(id, err)
	}
	return p, ok, nil
}

func (m *mockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockPublisher struct {
	mu     sync.Mutex
	events []domain.EvictionEvent
	err    error
}

func (m *mockPublisher) Publish(ctx context.Context, event domain.EvictionEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}
