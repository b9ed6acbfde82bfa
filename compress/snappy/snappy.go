// Package snappy implements the snappy codec.
package snappy

import "github.com/klauspost/compress/snappy"

// Codec is the snappy block-format codec, the default page compressor.
type Codec struct{}

func (c *Codec) String() string { return "SNAPPY" }

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	return snappy.Encode(dst, src), nil
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return snappy.Decode(dst, src)
}
