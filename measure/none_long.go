package measure

import "github.com/columnar-go/columnar"

// NoneLong holds long-width measure values with no value transformation.
type NoneLong struct {
	actualType columnar.DataType
	compressor *columnar.Compressor
	values     []int64
	compressed []byte
	store      *ChunkStore[int64]
}

func NewNoneLong(actualType columnar.DataType, compressor *columnar.Compressor) *NoneLong {
	return &NoneLong{actualType: actualType, compressor: compressor}
}

func (h *NoneLong) SetValue(data []int64, numberOfRows int, maxValue any, decimalPlaces int) {
	h.values = data
	h.store = NewChunkStore[int64](numberOfRows)
	h.store.PutData(data)
}

func (h *NoneLong) Compress() error {
	compressed, err := h.compressor.CompressLongs(h.values)
	if err != nil {
		return err
	}
	h.compressed = compressed
	return nil
}

func (h *NoneLong) CompressedBytes() []byte { return h.compressed }

func (h *NoneLong) Uncompress(dataType columnar.DataType, data []byte, offset, length, decimalPlaces int, maxValue any, numberOfRows int) error {
	values, err := h.compressor.DecompressLongs(data, offset, length)
	if err != nil {
		return err
	}
	h.SetValue(values, numberOfRows, maxValue, decimalPlaces)
	return nil
}

func (h *NoneLong) GetLong(rowID int) int64 { return h.store.Get(rowID) }

func (h *NoneLong) GetDouble(rowID int) float64 { return float64(h.store.Get(rowID)) }

func (h *NoneLong) GetDecimal(int) columnar.Decimal { return unsupportedDecimal("long") }

func (h *NoneLong) FreeMemory() { h.store.FreeMemory() }
