// Package brotli implements the brotli codec.
package brotli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

const (
	DefaultQuality = brotli.DefaultCompression
	BestSpeed      = brotli.BestSpeed
	BestQuality    = brotli.BestCompression
)

// Codec is the brotli codec. The zero value compresses at the default
// quality.
type Codec struct {
	Quality int
}

func (c *Codec) String() string { return "BROTLI" }

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	quality := c.Quality
	if quality == 0 {
		quality = DefaultQuality
	}
	buf := bytes.NewBuffer(dst[:0])
	w := brotli.NewWriterLevel(buf, quality)
	if _, err := w.Write(src); err != nil {
		return dst, fmt.Errorf("brotli: %w", err)
	}
	if err := w.Close(); err != nil {
		return dst, fmt.Errorf("brotli: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst[:0])
	if _, err := io.Copy(buf, brotli.NewReader(bytes.NewReader(src))); err != nil {
		return dst, fmt.Errorf("brotli: %w", err)
	}
	return buf.Bytes(), nil
}
