package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlicePoolGetPut(t *testing.T) {
	p := NewSlicePool[float32]()

	buf := p.Get(16)
	assert.Len(t, buf, 16)
	buf[0] = 42.0
	p.Put(buf)

	// Get again - should be cleared whether or not the pooled slice came back
	buf2 := p.Get(16)
	assert.Len(t, buf2, 16)
	assert.Equal(t, float32(0), buf2[0])
	p.Put(buf2)

	hits, misses := p.GetMetrics()
	assert.Equal(t, int64(2), hits+misses)
	assert.GreaterOrEqual(t, misses, int64(1))
}

func TestSlicePoolDifferentSizes(t *testing.T) {
	p := NewSlicePool[float32]()

	for _, size := range []int{1, 7, 3 * 256 * 256, 100} {
		buf := p.Get(size)
		assert.Len(t, buf, size)
		p.Put(buf)
	}
}

func TestSlicePoolZeroSize(t *testing.T) {
	p := NewSlicePool[int32]()

	// Should not panic
	buf := p.Get(0)
	assert.Empty(t, buf)
	p.Put(buf)
}

func TestSlicePoolPutUnknownLength(t *testing.T) {
	p := NewSlicePool[float32]()

	// never requested, so it's dropped rather than pooled
	p.Put(make([]float32, 5))
	hits, misses := p.GetMetrics()
	assert.Equal(t, int64(0), hits)
	assert.Equal(t, int64(0), misses)
}

func TestSharedFloat32Pool(t *testing.T) {
	buf := GetFloat32Slice(64)
	assert.Len(t, buf, 64)
	ReturnFloat32Slice(buf)

	metrics := GetPoolMetrics()
	assert.GreaterOrEqual(t, metrics["hits"]+metrics["misses"], int64(1))
}

func TestConcurrentAccess(t *testing.T) {
	const goroutines = 10
	const iterations = 100

	done := make(chan bool, goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			for i := 0; i < iterations; i++ {
				buf := GetFloat32Slice(3 * 64 * 64)
				buf[0] = float32(i)
				ReturnFloat32Slice(buf)
			}
			done <- true
		}()
	}

	for g := 0; g < goroutines; g++ {
		<-done
	}
}

func BenchmarkFloat32Pooled(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf := GetFloat32Slice(3 * 256 * 256)
		ReturnFloat32Slice(buf)
	}
}

func BenchmarkFloat32Direct(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = make([]float32, 3*256*256)
	}
}
