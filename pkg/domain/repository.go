package domain

import "context"

// DataSource is the second-level store consulted on a cache miss.
//
// Fetch returns (item, true, nil) when the item exists, (zero, false, nil)
// when the ID is unknown upstream, and a non-nil error (normally a
// *RetrievalError) when the lookup could not be completed.
type DataSource[T Cacheable] interface {
	Fetch(ctx context.Context, id string) (T, bool, error)
}

// EvictionPublisher defines the interface for publishing eviction events.
type EvictionPublisher interface {
	Publish(ctx context.Context, event EvictionEvent) error
}

// EvictionSubscriber defines the interface for subscribing to eviction events.
type EvictionSubscriber interface {
	Subscribe(ctx context.Context, routingKey string, handler func(EvictionEvent) error) error
}
