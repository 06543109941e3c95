package lru

import (
	"context"
	"errors"
	"sync"

	"github.com/sokoide/workshop/software/lru_cache/pkg/domain"
)

// DefaultCapacity is used by New.
const DefaultCapacity = 1000

var (
	ErrInvalidCapacity = errors.New("cache capacity must be positive")
	ErrNilSource       = errors.New("data source cannot be nil")
)

// Stats counts lookup outcomes since the cache was created.
type Stats struct {
	Hits      uint64 // served from the index
	Misses    uint64 // forwarded to the data source, whatever the outcome
	NotFound  uint64 // misses the data source reported as absent
	Evictions uint64
}

type Option func(*options)

type options struct {
	name    string
	onEvict func(domain.Cacheable)
}

// WithName labels the cache; the label is informational only.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithEvictionListener registers fn to be called with every evicted item.
// fn runs after the cache lock is released, so it may call back into the
// cache, but it delays the GetFromCache call that caused the eviction.
func WithEvictionListener(fn func(domain.Cacheable)) Option {
	return func(o *options) { o.onEvict = fn }
}

// LRUCache is a read-through cache of fixed capacity. Misses are loaded from
// a DataSource and the least recently used entry is evicted when full.
//
// Every GetFromCache call runs as one critical section, including the
// data source round trip on a miss.
//
// Items must be stored under their own ID: on eviction the entry is removed
// from the index by the evicted item's ID(), not by the key it was loaded
// with. Data sources returning an item whose ID differs from the requested
// key leave a stale index entry behind once that item is evicted.
type LRUCache[T domain.Cacheable] struct {
	mu sync.Mutex

	items       map[string]*Node[T] // locator only; order owns the nodes
	order       *List[T]
	source      domain.DataSource[T]
	maxCapacity int

	stats   Stats
	name    string
	onEvict func(domain.Cacheable)
}

// New returns a cache holding up to DefaultCapacity items.
func New[T domain.Cacheable](source domain.DataSource[T], opts ...Option) (*LRUCache[T], error) {
	return NewWithCapacity(source, DefaultCapacity, opts...)
}

func NewWithCapacity[T domain.Cacheable](source domain.DataSource[T], capacity int, opts ...Option) (*LRUCache[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if source == nil {
		return nil, ErrNilSource
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &LRUCache[T]{
		items:       make(map[string]*Node[T], capacity),
		order:       NewList[T](),
		source:      source,
		maxCapacity: capacity,
		name:        o.name,
		onEvict:     o.onEvict,
	}, nil
}

// GetFromCache returns the item stored under key, loading it from the data
// source on a miss. The boolean is false when the data source does not know
// the key. Data source errors are returned unchanged and leave the cache
// untouched.
func (c *LRUCache[T]) GetFromCache(ctx context.Context, key string) (T, bool, error) {
	v, ok, evicted, err := c.lookup(ctx, key)
	if evicted != nil && c.onEvict != nil {
		c.onEvict(*evicted)
	}
	return v, ok, err
}

func (c *LRUCache[T]) lookup(ctx context.Context, key string) (T, bool, *T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		zero    T
		evicted *T
	)

	node, ok := c.items[key]
	if ok {
		c.stats.Hits++
		if c.order.Head() != node {
			c.order.Remove(node)
		}
	} else {
		c.stats.Misses++
		item, found, err := c.source.Fetch(ctx, key)
		if err != nil {
			return zero, false, nil, err
		}
		if !found {
			c.stats.NotFound++
			return zero, false, nil, nil
		}

		node = NewNode(item)
		if len(c.items) == c.maxCapacity {
			old, err := c.order.RemoveTail()
			if err != nil {
				return zero, false, nil, err
			}
			delete(c.items, old.ID())
			c.stats.Evictions++
			evicted = &old
		}
		c.items[key] = node
	}

	if c.order.Head() != node {
		if err := c.order.InsertAsHead(node); err != nil {
			return zero, false, evicted, err
		}
	}
	return node.Value(), true, evicted, nil
}

// Len returns the number of cached items.
func (c *LRUCache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *LRUCache[T]) Capacity() int { return c.maxCapacity }

func (c *LRUCache[T]) Name() string { return c.name }

// Keys returns the IDs of the cached items from most to least recently used.
// It does not change recency.
func (c *LRUCache[T]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, c.order.Len())
	for n := c.order.Head(); n != nil; n = n.Next() {
		out = append(out, n.Value().ID())
	}
	return out
}

func (c *LRUCache[T]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
