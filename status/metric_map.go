package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap holds one lazily allocated value per metric key
// Pointers are stable for the life of the map, so scrollers and drawers look
// their metrics up once and then update them without the lock
type MetricMap[T any] struct {
	mu    sync.Mutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the value registered under key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		v = new(T)
		m.items[key] = v
	}
	return v
}

// Range calls fn for each metric by key order
// fn runs outside the lock and may register further keys
func (m *MetricMap[T]) Range(fn func(key string, v *T)) {
	m.mu.Lock()
	keys := slices.Sorted(maps.Keys(m.items))
	vals := make([]*T, len(keys))
	for i, k := range keys {
		vals[i] = m.items[k]
	}
	m.mu.Unlock()

	for i, k := range keys {
		fn(k, vals[i])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
