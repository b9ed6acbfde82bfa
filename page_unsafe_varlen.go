package columnar

import (
	"fmt"

	"github.com/columnar-go/columnar/internal/memory"
)

// unsafeVarLenStore backs a variable-length page with one flat region plus a
// per-row offset table. Rows must be written in rowID order; the region grows
// as values arrive and is released as a whole by freeMemory.
type unsafeVarLenStore struct {
	noStore
	pageSize int
	region   *memory.Region
	offsets  []int32
	filled   int
}

func newUnsafeVarLenStore(alloc *memory.Allocator, pageSize int) (*unsafeVarLenStore, error) {
	size := int64(pageSize) * 8
	if size == 0 {
		size = 8
	}
	region, err := alloc.Allocate(size)
	if err != nil {
		return nil, err
	}
	return &unsafeVarLenStore{
		noStore:  noStore{kind: "unsafe variable length"},
		pageSize: pageSize,
		region:   region,
		offsets:  make([]int32, pageSize+1),
	}, nil
}

func (s *unsafeVarLenStore) putBytes(rowID int, v []byte) {
	if rowID != s.filled {
		panic(fmt.Sprintf("columnar: unsafe variable length store requires sequential writes, got row %d after %d", rowID, s.filled))
	}
	start := int(s.offsets[rowID])
	end := start + len(v)
	if end > len(s.region.Bytes()) {
		grown, err := s.region.Resize(max(int64(end), int64(len(s.region.Bytes()))*2))
		if err != nil {
			// Growth failures carry the allocator's error; puts have no
			// error return, matching the page contract.
			panic(err)
		}
		s.region = grown
	}
	copy(s.region.Bytes()[start:end], v)
	s.offsets[rowID+1] = int32(end)
	s.filled++
}

func (s *unsafeVarLenStore) getBytes(rowID int) []byte {
	return s.region.Bytes()[s.offsets[rowID]:s.offsets[rowID+1]]
}

func (s *unsafeVarLenStore) setByteArrayPage(v [][]byte) {
	for i, row := range v {
		s.putBytes(i, row)
	}
}

func (s *unsafeVarLenStore) byteArrayPage() [][]byte {
	rows := make([][]byte, s.pageSize)
	for i := range rows {
		rows[i] = s.getBytes(i)
	}
	return rows
}

func (s *unsafeVarLenStore) lvFlattenedBytePage() []byte {
	flat := make([]byte, 0, int(s.offsets[s.pageSize])+4*s.pageSize)
	for i := 0; i < s.pageSize; i++ {
		flat = appendLV(flat, s.getBytes(i))
	}
	return flat
}

func (s *unsafeVarLenStore) directFlattenedBytePage() []byte {
	flat := make([]byte, s.offsets[s.pageSize])
	copy(flat, s.region.Bytes())
	return flat
}

func (s *unsafeVarLenStore) freeMemory() {
	s.region.Free()
}
