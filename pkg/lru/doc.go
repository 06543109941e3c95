// Package lru implements a fixed-capacity, read-through LRU cache.
//
// The cache pairs a map index with a recency List. The map locates the node
// for a key in O(1); the list owns the nodes and keeps them ordered from most
// to least recently used, so promotion and eviction are O(1) relinks given
// the node the index already holds.
//
// Entries are only ever added by GetFromCache: a miss is loaded from the
// injected domain.DataSource, and when the cache is full the list tail is
// evicted first.
package lru
