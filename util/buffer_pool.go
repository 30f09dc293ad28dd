package util

import (
	"sync"
	"sync/atomic"
)

// SlicePool provides pooling for flat buffers keyed by length to reduce allocations
// when the same raster shape is filtered repeatedly.
type SlicePool[T any] struct {
	pools map[int]*sync.Pool
	mu    sync.RWMutex

	// Metrics
	hits   atomic.Int64
	misses atomic.Int64
}

var float32Pool = NewSlicePool[float32]()

func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{pools: make(map[int]*sync.Pool)}
}

// Get retrieves a zeroed slice of the given length from the pool or creates a new one
func (p *SlicePool[T]) Get(length int) []T {
	if length == 0 {
		return []T{}
	}

	// Fast path: read lock
	p.mu.RLock()
	pool, exists := p.pools[length]
	p.mu.RUnlock()

	if exists {
		if buf := pool.Get(); buf != nil {
			p.hits.Add(1)
			return *(buf.(*[]T))
		}
	} else {
		// Slow path: create new pool
		p.mu.Lock()
		// Double-check after acquiring write lock
		if _, exists = p.pools[length]; !exists {
			p.pools[length] = &sync.Pool{}
		}
		p.mu.Unlock()
	}

	p.misses.Add(1)
	return make([]T, length)
}

// Put returns a slice to the pool after clearing it
func (p *SlicePool[T]) Put(buf []T) {
	if len(buf) == 0 {
		return
	}

	p.mu.RLock()
	pool, exists := p.pools[len(buf)]
	p.mu.RUnlock()

	if exists {
		clear(buf)
		pool.Put(&buf)
	}
}

// GetMetrics returns pool usage statistics
func (p *SlicePool[T]) GetMetrics() (hits, misses int64) {
	return p.hits.Load(), p.misses.Load()
}

// GetFloat32Slice creates or retrieves a zeroed float32 slice from the shared pool
func GetFloat32Slice(length int) []float32 {
	return float32Pool.Get(length)
}

// ReturnFloat32Slice returns a float32 slice to the shared pool
func ReturnFloat32Slice(buf []float32) {
	float32Pool.Put(buf)
}

// GetPoolMetrics returns metrics for the shared pool
func GetPoolMetrics() map[string]int64 {
	hits, misses := float32Pool.GetMetrics()
	return map[string]int64{
		"hits":   hits,
		"misses": misses,
	}
}
