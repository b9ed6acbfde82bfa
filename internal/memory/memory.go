// Package memory hands out the flat byte regions backing unsafe column
// pages. Regions are pooled by size bucket and released explicitly, with a
// configurable budget standing in for off-heap capacity: acquisitions beyond
// the budget fail with AllocError rather than growing without bound.
package memory

import (
	"fmt"
	"math/bits"
	"sync"
	"sync/atomic"

	"github.com/columnar-go/columnar/internal/unsafecast"
)

// AllocError reports a failed region acquisition. It is returned, never
// panicked, so page construction can surface it to the caller untouched.
type AllocError struct {
	Size  int64
	Limit int64
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("memory: cannot allocate %d bytes, %d byte budget exhausted", e.Size, e.Limit)
}

const (
	minBucketBits = 10 // 1 KiB
	maxBucketBits = 26 // 64 MiB
	numBuckets    = maxBucketBits - minBucketBits + 1
)

// Allocator acquires and tracks flat byte regions. The zero value is not
// usable; construct with NewAllocator. Safe for concurrent use across pages.
type Allocator struct {
	limit int64
	used  atomic.Int64
	pools [numBuckets]sync.Pool
}

// NewAllocator returns an allocator with the given byte budget. A limit of
// zero or less means unbounded.
func NewAllocator(limit int64) *Allocator {
	return &Allocator{limit: limit}
}

// Used returns the number of bytes currently acquired and not yet freed.
func (a *Allocator) Used() int64 { return a.used.Load() }

// Allocate acquires a zeroed region of at least size bytes.
func (a *Allocator) Allocate(size int64) (*Region, error) {
	capacity, bucket := capacityOf(size)
	for {
		used := a.used.Load()
		if a.limit > 0 && used+capacity > a.limit {
			return nil, &AllocError{Size: size, Limit: a.limit}
		}
		if a.used.CompareAndSwap(used, used+capacity) {
			break
		}
	}
	var buf []byte
	if bucket >= 0 {
		if v := a.pools[bucket].Get(); v != nil {
			buf = v.([]byte)
			clear(buf)
		}
	}
	if buf == nil {
		// Backed by []uint64 so reinterpreted typed views stay aligned.
		buf = unsafecast.Slice[byte](make([]uint64, capacity/8))
	}
	return &Region{alloc: a, buf: buf[:size], capacity: capacity, bucket: bucket}, nil
}

// capacityOf rounds size up to its pool bucket capacity. Regions above the
// largest bucket are allocated exactly and never pooled (bucket -1).
func capacityOf(size int64) (int64, int) {
	if size > 1<<maxBucketBits {
		return (size + 7) &^ 7, -1
	}
	if size <= 1<<minBucketBits {
		return 1 << minBucketBits, 0
	}
	b := bits.Len64(uint64(size-1)) - minBucketBits
	return int64(1) << (b + minBucketBits), b
}

// Region is one acquired byte range. Free must be called exactly once; the
// caller must not touch Bytes afterwards.
type Region struct {
	alloc    *Allocator
	buf      []byte
	capacity int64
	bucket   int
	freed    bool
}

// Bytes returns the backing bytes of the region.
func (r *Region) Bytes() []byte { return r.buf }

// Resize grows the region to a new size, preserving its contents. The
// returned region may be the same object or a freshly acquired one.
func (r *Region) Resize(size int64) (*Region, error) {
	if size <= r.capacity {
		r.buf = r.buf[:size]
		return r, nil
	}
	grown, err := r.alloc.Allocate(size)
	if err != nil {
		return nil, err
	}
	copy(grown.buf, r.buf)
	r.Free()
	return grown, nil
}

// Free releases the region back to its allocator's pool.
func (r *Region) Free() {
	if r.freed {
		return
	}
	r.freed = true
	r.alloc.used.Add(-r.capacity)
	if r.bucket >= 0 {
		r.alloc.pools[r.bucket].Put(r.buf[:r.capacity])
	}
	r.buf = nil
}
