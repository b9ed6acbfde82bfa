package measure

import "github.com/columnar-go/columnar"

// NoneFloat holds float-width measure values with no value transformation.
type NoneFloat struct {
	actualType columnar.DataType
	compressor *columnar.Compressor
	values     []float32
	compressed []byte
	store      *ChunkStore[float32]
}

func NewNoneFloat(actualType columnar.DataType, compressor *columnar.Compressor) *NoneFloat {
	return &NoneFloat{actualType: actualType, compressor: compressor}
}

func (h *NoneFloat) SetValue(data []float32, numberOfRows int, maxValue any, decimalPlaces int) {
	h.values = data
	h.store = NewChunkStore[float32](numberOfRows)
	h.store.PutData(data)
}

func (h *NoneFloat) Compress() error {
	compressed, err := h.compressor.CompressFloats(h.values)
	if err != nil {
		return err
	}
	h.compressed = compressed
	return nil
}

func (h *NoneFloat) CompressedBytes() []byte { return h.compressed }

func (h *NoneFloat) Uncompress(dataType columnar.DataType, data []byte, offset, length, decimalPlaces int, maxValue any, numberOfRows int) error {
	values, err := h.compressor.DecompressFloats(data, offset, length)
	if err != nil {
		return err
	}
	h.SetValue(values, numberOfRows, maxValue, decimalPlaces)
	return nil
}

// GetLong truncates toward zero, matching the widened numeric contract.
func (h *NoneFloat) GetLong(rowID int) int64 { return int64(h.store.Get(rowID)) }

func (h *NoneFloat) GetDouble(rowID int) float64 { return float64(h.store.Get(rowID)) }

func (h *NoneFloat) GetDecimal(int) columnar.Decimal { return unsupportedDecimal("float") }

func (h *NoneFloat) FreeMemory() { h.store.FreeMemory() }
