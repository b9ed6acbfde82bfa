// Package gzip implements the gzip codec.
package gzip

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
)

const (
	BestSpeed          = gzip.BestSpeed
	BestCompression    = gzip.BestCompression
	DefaultCompression = gzip.DefaultCompression
)

// Codec is the gzip codec. The zero value compresses at the default level.
type Codec struct {
	Level int

	writers sync.Pool // *gzip.Writer
	readers sync.Pool // *gzip.Reader
}

func (c *Codec) String() string { return "GZIP" }

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst[:0])
	w, _ := c.writers.Get().(*gzip.Writer)
	if w == nil {
		level := c.Level
		if level == 0 {
			level = DefaultCompression
		}
		var err error
		w, err = gzip.NewWriterLevel(buf, level)
		if err != nil {
			return dst, fmt.Errorf("gzip: %w", err)
		}
	} else {
		w.Reset(buf)
	}
	defer c.writers.Put(w)
	if _, err := w.Write(src); err != nil {
		return dst, fmt.Errorf("gzip: %w", err)
	}
	if err := w.Close(); err != nil {
		return dst, fmt.Errorf("gzip: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	r, _ := c.readers.Get().(*gzip.Reader)
	if r == nil {
		r = new(gzip.Reader)
	}
	defer c.readers.Put(r)
	if err := r.Reset(bytes.NewReader(src)); err != nil {
		return dst, fmt.Errorf("gzip: %w", err)
	}
	buf := bytes.NewBuffer(dst[:0])
	if _, err := io.Copy(buf, r); err != nil {
		return dst, fmt.Errorf("gzip: %w", err)
	}
	if err := r.Close(); err != nil {
		return dst, fmt.Errorf("gzip: %w", err)
	}
	return buf.Bytes(), nil
}
