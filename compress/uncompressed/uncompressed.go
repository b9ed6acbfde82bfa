// Package uncompressed provides the identity codec.
package uncompressed

// Codec passes bytes through unchanged.
type Codec struct{}

func (c *Codec) String() string { return "UNCOMPRESSED" }

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	return append(dst[:0], src...), nil
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return append(dst[:0], src...), nil
}
