// Package compress provides the byte compression codecs that column pages
// are encoded with. Codecs use an append-style API: encoded or decoded output
// is appended to dst, which may be nil or a reused buffer.
package compress

// Codec is an opaque general-purpose byte compressor. Implementations are
// safe for repeated and concurrent use across independent pages.
type Codec interface {
	// String returns the codec name, usable as a registry key.
	String() string

	// Encode appends the compressed form of src to dst.
	Encode(dst, src []byte) ([]byte, error)

	// Decode appends the uncompressed form of src to dst.
	Decode(dst, src []byte) ([]byte, error)
}
