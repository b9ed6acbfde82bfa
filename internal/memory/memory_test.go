package memory

import (
	"errors"
	"testing"
)

func TestAllocateAndFreeAccounting(t *testing.T) {
	alloc := NewAllocator(1 << 20)

	region, err := alloc.Allocate(100)
	if err != nil {
		t.Fatal(err)
	}
	if len(region.Bytes()) != 100 {
		t.Errorf("region length = %d, want 100", len(region.Bytes()))
	}
	if used := alloc.Used(); used < 100 {
		t.Errorf("used = %d, want at least 100", used)
	}

	region.Free()
	if used := alloc.Used(); used != 0 {
		t.Errorf("used after free = %d, want 0", used)
	}

	// a second free is a no-op
	region.Free()
	if used := alloc.Used(); used != 0 {
		t.Errorf("used after double free = %d, want 0", used)
	}
}

func TestAllocateZeroed(t *testing.T) {
	alloc := NewAllocator(0)

	region, err := alloc.Allocate(512)
	if err != nil {
		t.Fatal(err)
	}
	for i := range region.Bytes() {
		region.Bytes()[i] = 0xFF
	}
	region.Free()

	// The pool hands the dirty buffer back; it must come out zeroed.
	region, err = alloc.Allocate(512)
	if err != nil {
		t.Fatal(err)
	}
	defer region.Free()
	for i, b := range region.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, b)
		}
	}
}

func TestBudgetExhausted(t *testing.T) {
	alloc := NewAllocator(4096)

	region, err := alloc.Allocate(4096)
	if err != nil {
		t.Fatal(err)
	}

	_, err = alloc.Allocate(1)
	var allocErr *AllocError
	if !errors.As(err, &allocErr) {
		t.Fatalf("got %v, want AllocError", err)
	}
	if allocErr.Limit != 4096 {
		t.Errorf("AllocError.Limit = %d, want 4096", allocErr.Limit)
	}

	region.Free()
	if _, err := alloc.Allocate(1); err != nil {
		t.Errorf("allocation after free failed: %v", err)
	}
}

func TestResizePreservesContents(t *testing.T) {
	alloc := NewAllocator(0)

	region, err := alloc.Allocate(16)
	if err != nil {
		t.Fatal(err)
	}
	for i := range region.Bytes() {
		region.Bytes()[i] = byte(i)
	}

	grown, err := region.Resize(1 << 12)
	if err != nil {
		t.Fatal(err)
	}
	defer grown.Free()

	if len(grown.Bytes()) != 1<<12 {
		t.Fatalf("resized length = %d, want %d", len(grown.Bytes()), 1<<12)
	}
	for i := 0; i < 16; i++ {
		if grown.Bytes()[i] != byte(i) {
			t.Errorf("byte %d = %d, want %d", i, grown.Bytes()[i], i)
		}
	}
}

func TestCapacityOf(t *testing.T) {
	tests := []struct {
		size     int64
		capacity int64
		bucket   int
	}{
		{1, 1 << 10, 0},
		{1 << 10, 1 << 10, 0},
		{1<<10 + 1, 1 << 11, 1},
		{1 << 26, 1 << 26, 16},
		{1<<26 + 1, 1<<26 + 8, -1},
		{1<<26 + 9, 1<<26 + 16, -1},
	}
	for _, test := range tests {
		capacity, bucket := capacityOf(test.size)
		if capacity != test.capacity || bucket != test.bucket {
			t.Errorf("capacityOf(%d) = (%d, %d), want (%d, %d)",
				test.size, capacity, bucket, test.capacity, test.bucket)
		}
	}
}
