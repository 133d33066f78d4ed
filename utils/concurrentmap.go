package utils

import (
	"sync"

	"go.uber.org/atomic"
)

type ConcurrentMap[K comparable, V any] struct {
	inner sync.Map
	// Self-managed Len(), see: https://github.com/golang/go/issues/20680.
	len atomic.Uint64
}

func NewConcurrentMap[K comparable, V any]() *ConcurrentMap[K, V] {
	return &ConcurrentMap[K, V]{}
}

// Insert inserts the key-value pair to the concurrent map
func (m *ConcurrentMap[K, V]) Insert(key K, value V) {
	_, loaded := m.inner.LoadOrStore(key, value)
	if !loaded {
		m.len.Inc()
	} else {
		m.inner.Store(key, value)
	}
}

// Get returns the value bound to key, reporting whether the key was present.
func (m *ConcurrentMap[K, V]) Get(key K) (V, bool) {
	var zero V
	value, ok := m.inner.Load(key)
	if !ok {
		return zero, false
	}
	return value.(V), true
}

// GetOrInsert returns the value bound to key if present, otherwise binds
// the given value and returns it. The bool result reports whether the key
// was already present.
func (m *ConcurrentMap[K, V]) GetOrInsert(key K, value V) (V, bool) {
	stored, loaded := m.inner.LoadOrStore(key, value)
	if !loaded {
		m.len.Inc()
	}
	return stored.(V), loaded
}

// GetAndRemove removes key, returning the value it was bound to.
func (m *ConcurrentMap[K, V]) GetAndRemove(key K) (V, bool) {
	var zero V
	value, loaded := m.inner.LoadAndDelete(key)
	if !loaded {
		return zero, false
	}
	m.len.Dec()
	return value.(V), true
}

func (m *ConcurrentMap[K, V]) Range(f func(key K, value V) bool) {
	m.inner.Range(func(key, value any) bool {
		return f(key.(K), value.(V))
	})
}

func (m *ConcurrentMap[K, V]) Len() int {
	return int(m.len.Load())
}
