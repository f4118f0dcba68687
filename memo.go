package aoc

import (
	"sync"

	"tailscale.com/util/deephash"
)

// Memo caches the results of a function by a deep hash of its argument.
// It is safe for concurrent use.
type Memo[K, V any] struct {
	fn func(K) V

	mu    sync.Mutex
	cache map[deephash.Sum]V
	hits  int
}

// Memoize returns a Memo wrapping fn.
func Memoize[K, V any](fn func(K) V) *Memo[K, V] {
	return &Memo[K, V]{
		fn:    fn,
		cache: make(map[deephash.Sum]V),
	}
}

// Get returns fn(k), computing it at most once per distinct k.
func (m *Memo[K, V]) Get(k K) V {
	h := deephash.Hash(&k)
	m.mu.Lock()
	if v, ok := m.cache[h]; ok {
		m.hits++
		m.mu.Unlock()
		return v
	}
	m.mu.Unlock()

	v := m.fn(k)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[h] = v
	return v
}

// Hits reports how many calls to Get were served from the cache.
func (m *Memo[K, V]) Hits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits
}
