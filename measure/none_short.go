package measure

import "github.com/columnar-go/columnar"

// NoneShort holds short-width measure values with no value transformation.
type NoneShort struct {
	actualType columnar.DataType
	compressor *columnar.Compressor
	values     []int16
	compressed []byte
	store      *ChunkStore[int16]
}

func NewNoneShort(actualType columnar.DataType, compressor *columnar.Compressor) *NoneShort {
	return &NoneShort{actualType: actualType, compressor: compressor}
}

func (h *NoneShort) SetValue(data []int16, numberOfRows int, maxValue any, decimalPlaces int) {
	h.values = data
	h.store = NewChunkStore[int16](numberOfRows)
	h.store.PutData(data)
}

func (h *NoneShort) Compress() error {
	compressed, err := h.compressor.CompressShorts(h.values)
	if err != nil {
		return err
	}
	h.compressed = compressed
	return nil
}

func (h *NoneShort) CompressedBytes() []byte { return h.compressed }

func (h *NoneShort) Uncompress(dataType columnar.DataType, data []byte, offset, length, decimalPlaces int, maxValue any, numberOfRows int) error {
	values, err := h.compressor.DecompressShorts(data, offset, length)
	if err != nil {
		return err
	}
	h.SetValue(values, numberOfRows, maxValue, decimalPlaces)
	return nil
}

func (h *NoneShort) GetLong(rowID int) int64 { return int64(h.store.Get(rowID)) }

func (h *NoneShort) GetDouble(rowID int) float64 { return float64(h.store.Get(rowID)) }

func (h *NoneShort) GetDecimal(int) columnar.Decimal { return unsupportedDecimal("short") }

func (h *NoneShort) FreeMemory() { h.store.FreeMemory() }
