// Package measure carries the legacy value-compression path for numeric
// measure columns: per-type holders that adapt a raw typed array into a
// row-id-indexed chunk store and expose widened read accessors independent of
// the stored width.
package measure

import "github.com/columnar-go/columnar"

// ValueHolder is one decoded measure chunk. Lifecycle: SetValue or
// Uncompress populates it, reads go through the widened accessors, and
// FreeMemory releases the backing store, after which the holder is terminal.
type ValueHolder interface {
	// Compress encodes the raw values loaded by SetValue.
	Compress() error

	// CompressedBytes returns the buffer produced by Compress.
	CompressedBytes() []byte

	// Uncompress repopulates the holder from a compressed byte window.
	Uncompress(dataType columnar.DataType, data []byte, offset, length, decimalPlaces int, maxValue any, numberOfRows int) error

	// GetLong and GetDouble read the native-width value at rowID and widen.
	GetLong(rowID int) int64
	GetDouble(rowID int) float64

	// GetDecimal panics on non-decimal holders; numeric and decimal measure
	// storage never mix silently.
	GetDecimal(rowID int) columnar.Decimal

	FreeMemory()
}

// Datum constrains the primitive widths a chunk store can hold.
type Datum interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// ChunkStore is the row-id-indexed bulk storage behind a holder.
type ChunkStore[T Datum] struct {
	data  []T
	freed bool
}

// NewChunkStore allocates storage for numberOfRows values.
func NewChunkStore[T Datum](numberOfRows int) *ChunkStore[T] {
	return &ChunkStore[T]{data: make([]T, numberOfRows)}
}

// PutData bulk-loads vals starting at row 0.
func (s *ChunkStore[T]) PutData(vals []T) {
	copy(s.data, vals)
}

// Get returns the value at rowID.
func (s *ChunkStore[T]) Get(rowID int) T {
	if s.freed {
		panic("measure: read after FreeMemory")
	}
	return s.data[rowID]
}

// FreeMemory releases the backing slice; the store is terminal afterwards.
func (s *ChunkStore[T]) FreeMemory() {
	s.data = nil
	s.freed = true
}

func unsupportedDecimal(holder string) columnar.Decimal {
	panic("measure: decimal read on " + holder + " holder")
}
