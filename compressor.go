package columnar

import (
	"github.com/columnar-go/columnar/compress"
	"github.com/columnar-go/columnar/internal/unsafecast"
)

// Compressor adapts a byte codec into the typed bulk entry points the page
// and measure layers compress through: one compress/decompress pair per
// primitive array type, operating over a (data, offset, length) byte window.
// Safe for repeated and concurrent use across independent pages.
type Compressor struct {
	codec compress.Codec
}

func NewCompressor(codec compress.Codec) *Compressor {
	return &Compressor{codec: codec}
}

func (c *Compressor) Name() string { return c.codec.String() }

func (c *Compressor) CompressBytes(v []byte) ([]byte, error) {
	return c.codec.Encode(nil, v)
}

func (c *Compressor) CompressShorts(v []int16) ([]byte, error) {
	return c.codec.Encode(nil, unsafecast.Slice[byte](v))
}

func (c *Compressor) CompressInts(v []int32) ([]byte, error) {
	return c.codec.Encode(nil, unsafecast.Slice[byte](v))
}

func (c *Compressor) CompressLongs(v []int64) ([]byte, error) {
	return c.codec.Encode(nil, unsafecast.Slice[byte](v))
}

func (c *Compressor) CompressFloats(v []float32) ([]byte, error) {
	return c.codec.Encode(nil, unsafecast.Slice[byte](v))
}

func (c *Compressor) CompressDoubles(v []float64) ([]byte, error) {
	return c.codec.Encode(nil, unsafecast.Slice[byte](v))
}

func (c *Compressor) DecompressBytes(data []byte, offset, length int) ([]byte, error) {
	return c.codec.Decode(nil, data[offset:offset+length])
}

func (c *Compressor) DecompressShorts(data []byte, offset, length int) ([]int16, error) {
	return decompressAs[int16](c, data, offset, length)
}

func (c *Compressor) DecompressInts(data []byte, offset, length int) ([]int32, error) {
	return decompressAs[int32](c, data, offset, length)
}

func (c *Compressor) DecompressLongs(data []byte, offset, length int) ([]int64, error) {
	return decompressAs[int64](c, data, offset, length)
}

func (c *Compressor) DecompressFloats(data []byte, offset, length int) ([]float32, error) {
	return decompressAs[float32](c, data, offset, length)
}

func (c *Compressor) DecompressDoubles(data []byte, offset, length int) ([]float64, error) {
	return decompressAs[float64](c, data, offset, length)
}

func decompressAs[T int8 | int16 | int32 | int64 | float32 | float64](c *Compressor, data []byte, offset, length int) ([]T, error) {
	raw, err := c.codec.Decode(nil, data[offset:offset+length])
	if err != nil {
		return nil, err
	}
	return copySlice[T](raw), nil
}
