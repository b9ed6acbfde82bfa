package measure

import (
	"github.com/columnar-go/columnar"
	"github.com/columnar-go/columnar/internal/unsafecast"
)

// NoneByte holds byte-width measure values with no value transformation.
type NoneByte struct {
	actualType columnar.DataType
	compressor *columnar.Compressor
	values     []int8
	compressed []byte
	store      *ChunkStore[int8]
}

func NewNoneByte(actualType columnar.DataType, compressor *columnar.Compressor) *NoneByte {
	return &NoneByte{actualType: actualType, compressor: compressor}
}

func (h *NoneByte) SetValue(data []int8, numberOfRows int, maxValue any, decimalPlaces int) {
	h.values = data
	h.store = NewChunkStore[int8](numberOfRows)
	h.store.PutData(data)
}

func (h *NoneByte) Compress() error {
	compressed, err := h.compressor.CompressBytes(unsafecast.Slice[byte](h.values))
	if err != nil {
		return err
	}
	h.compressed = compressed
	return nil
}

func (h *NoneByte) CompressedBytes() []byte { return h.compressed }

func (h *NoneByte) Uncompress(dataType columnar.DataType, data []byte, offset, length, decimalPlaces int, maxValue any, numberOfRows int) error {
	raw, err := h.compressor.DecompressBytes(data, offset, length)
	if err != nil {
		return err
	}
	values := make([]int8, len(raw))
	copy(values, unsafecast.Slice[int8](raw))
	h.SetValue(values, numberOfRows, maxValue, decimalPlaces)
	return nil
}

func (h *NoneByte) GetLong(rowID int) int64 { return int64(h.store.Get(rowID)) }

func (h *NoneByte) GetDouble(rowID int) float64 { return float64(h.store.Get(rowID)) }

func (h *NoneByte) GetDecimal(int) columnar.Decimal { return unsupportedDecimal("byte") }

func (h *NoneByte) FreeMemory() { h.store.FreeMemory() }
