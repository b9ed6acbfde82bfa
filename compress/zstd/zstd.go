// Package zstd implements the zstd codec.
package zstd

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

const (
	SpeedFastest           = zstd.SpeedFastest
	SpeedDefault           = zstd.SpeedDefault
	SpeedBetterCompression = zstd.SpeedBetterCompression
	SpeedBestCompression   = zstd.SpeedBestCompression
)

// Codec is the zstd codec. One encoder/decoder pair is shared; both are safe
// for concurrent EncodeAll/DecodeAll use across pages.
type Codec struct {
	// Level selects the compression speed/ratio trade-off. The zero value
	// means SpeedDefault.
	Level zstd.EncoderLevel

	once    sync.Once
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	err     error
}

func (c *Codec) String() string { return "ZSTD" }

func (c *Codec) init() {
	level := c.Level
	if level == 0 {
		level = SpeedDefault
	}
	// Zero frames keep empty pages round-trippable through DecodeAll.
	c.encoder, c.err = zstd.NewWriter(nil, zstd.WithEncoderLevel(level), zstd.WithZeroFrames(true))
	if c.err != nil {
		return
	}
	c.decoder, c.err = zstd.NewReader(nil)
}

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	c.once.Do(c.init)
	if c.err != nil {
		return dst, c.err
	}
	return c.encoder.EncodeAll(src, dst[:0]), nil
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	c.once.Do(c.init)
	if c.err != nil {
		return dst, c.err
	}
	return c.decoder.DecodeAll(src, dst[:0])
}
