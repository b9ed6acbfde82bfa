package measure

import "github.com/columnar-go/columnar"

// NoneInt holds int-width measure values with no value transformation
// applied before byte compression.
type NoneInt struct {
	actualType columnar.DataType
	compressor *columnar.Compressor
	values     []int32
	compressed []byte
	store      *ChunkStore[int32]
}

func NewNoneInt(actualType columnar.DataType, compressor *columnar.Compressor) *NoneInt {
	return &NoneInt{actualType: actualType, compressor: compressor}
}

// SetValue bulk-loads the raw decoded array into a freshly sized chunk
// store. maxValue and decimalPlaces travel with the chunk metadata but are
// not used by the untransformed kind.
func (h *NoneInt) SetValue(data []int32, numberOfRows int, maxValue any, decimalPlaces int) {
	h.values = data
	h.store = NewChunkStore[int32](numberOfRows)
	h.store.PutData(data)
}

func (h *NoneInt) Compress() error {
	compressed, err := h.compressor.CompressInts(h.values)
	if err != nil {
		return err
	}
	h.compressed = compressed
	return nil
}

func (h *NoneInt) CompressedBytes() []byte { return h.compressed }

func (h *NoneInt) Uncompress(dataType columnar.DataType, data []byte, offset, length, decimalPlaces int, maxValue any, numberOfRows int) error {
	values, err := h.compressor.DecompressInts(data, offset, length)
	if err != nil {
		return err
	}
	h.SetValue(values, numberOfRows, maxValue, decimalPlaces)
	return nil
}

func (h *NoneInt) GetLong(rowID int) int64 { return int64(h.store.Get(rowID)) }

func (h *NoneInt) GetDouble(rowID int) float64 { return float64(h.store.Get(rowID)) }

func (h *NoneInt) GetDecimal(int) columnar.Decimal { return unsupportedDecimal("int") }

func (h *NoneInt) FreeMemory() { h.store.FreeMemory() }
