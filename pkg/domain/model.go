package domain

import "time"

// Cacheable is implemented by every item stored in the cache.
// ID must be stable and unique among live entries; the cache uses it as the
// removal key when the item is evicted.
type Cacheable interface {
	ID() string
}

// Product is the catalog item served by the demo binary.
type Product struct {
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Product) ID() string { return p.SKU }

// EvictionEvent is emitted when an entry leaves the cache to make room.
type EvictionEvent struct {
	EventID   string    `json:"event_id"`
	ItemID    string    `json:"item_id"`
	Cache     string    `json:"cache"`
	EvictedAt time.Time `json:"evicted_at"`
}
