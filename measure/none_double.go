package measure

import "github.com/columnar-go/columnar"

// NoneDouble holds double-width measure values with no value transformation.
type NoneDouble struct {
	actualType columnar.DataType
	compressor *columnar.Compressor
	values     []float64
	compressed []byte
	store      *ChunkStore[float64]
}

func NewNoneDouble(actualType columnar.DataType, compressor *columnar.Compressor) *NoneDouble {
	return &NoneDouble{actualType: actualType, compressor: compressor}
}

func (h *NoneDouble) SetValue(data []float64, numberOfRows int, maxValue any, decimalPlaces int) {
	h.values = data
	h.store = NewChunkStore[float64](numberOfRows)
	h.store.PutData(data)
}

func (h *NoneDouble) Compress() error {
	compressed, err := h.compressor.CompressDoubles(h.values)
	if err != nil {
		return err
	}
	h.compressed = compressed
	return nil
}

func (h *NoneDouble) CompressedBytes() []byte { return h.compressed }

func (h *NoneDouble) Uncompress(dataType columnar.DataType, data []byte, offset, length, decimalPlaces int, maxValue any, numberOfRows int) error {
	values, err := h.compressor.DecompressDoubles(data, offset, length)
	if err != nil {
		return err
	}
	h.SetValue(values, numberOfRows, maxValue, decimalPlaces)
	return nil
}

func (h *NoneDouble) GetLong(rowID int) int64 { return int64(h.store.Get(rowID)) }

func (h *NoneDouble) GetDouble(rowID int) float64 { return h.store.Get(rowID) }

func (h *NoneDouble) GetDecimal(int) columnar.Decimal { return unsupportedDecimal("double") }

func (h *NoneDouble) FreeMemory() { h.store.FreeMemory() }
