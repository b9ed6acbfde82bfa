// Package lz4 implements the lz4 frame codec.
package lz4

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// Level selects the lz4 compression level.
type Level = lz4.CompressionLevel

const (
	Fastest = lz4.Fast
	Level1  = lz4.Level1
	Level5  = lz4.Level5
	Level9  = lz4.Level9
)

// Codec is the lz4 frame-format codec. The zero value compresses at the
// fastest level.
type Codec struct {
	Level Level
}

func (c *Codec) String() string { return "LZ4" }

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst[:0])
	w := lz4.NewWriter(buf)
	if err := w.Apply(lz4.CompressionLevelOption(c.Level)); err != nil {
		return dst, fmt.Errorf("lz4: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return dst, fmt.Errorf("lz4: %w", err)
	}
	if err := w.Close(); err != nil {
		return dst, fmt.Errorf("lz4: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(src))
	buf := bytes.NewBuffer(dst[:0])
	if _, err := io.Copy(buf, r); err != nil {
		return dst, fmt.Errorf("lz4: %w", err)
	}
	return buf.Bytes(), nil
}
