package compress_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/columnar-go/columnar/compress"
	"github.com/columnar-go/columnar/compress/brotli"
	"github.com/columnar-go/columnar/compress/gzip"
	"github.com/columnar-go/columnar/compress/lz4"
	"github.com/columnar-go/columnar/compress/snappy"
	"github.com/columnar-go/columnar/compress/uncompressed"
	"github.com/columnar-go/columnar/compress/zstd"
)

var tests = [...]struct {
	scenario string
	codec    compress.Codec
}{
	{
		scenario: "uncompressed",
		codec:    new(uncompressed.Codec),
	},

	{
		scenario: "snappy",
		codec:    new(snappy.Codec),
	},

	{
		scenario: "gzip",
		codec:    new(gzip.Codec),
	},

	{
		scenario: "brotli",
		codec:    new(brotli.Codec),
	},

	{
		scenario: "zstd",
		codec:    new(zstd.Codec),
	},

	{
		scenario: "lz4",
		codec:    new(lz4.Codec),
	},
}

// testPayload is built once so every codec sees the same bytes: a mix of
// repetitive runs, which compress well, and pseudo-random spans, which do
// not. Page payloads look like both.
func testPayload() []byte {
	prng := rand.New(rand.NewSource(1))
	data := make([]byte, 0, 1<<16)
	for len(data) < 1<<16 {
		run := make([]byte, 256)
		if prng.Intn(2) == 0 {
			for i := range run {
				run[i] = byte(prng.Intn(4))
			}
		} else {
			prng.Read(run)
		}
		data = append(data, run...)
	}
	return data
}

func TestCompressionCodec(t *testing.T) {
	payload := testPayload()

	buffer := make([]byte, 0, len(payload))
	output := make([]byte, 0, len(payload))

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			const N = 10
			// Run the test multiple times to exercise codecs that maintain
			// state across compression and decompression calls.
			for i := 0; i < N; i++ {
				var err error

				buffer, err = test.codec.Encode(buffer[:0], payload)
				if err != nil {
					t.Fatal(err)
				}

				output, err = test.codec.Decode(output[:0], buffer)
				if err != nil {
					t.Fatal(err)
				}

				if !bytes.Equal(payload, output) {
					t.Error("decompressed output does not match the original payload")
					return
				}
			}
		})
	}
}

func TestCompressionCodecEmptyInput(t *testing.T) {
	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			encoded, err := test.codec.Encode(nil, nil)
			if err != nil {
				t.Fatal(err)
			}
			decoded, err := test.codec.Decode(nil, encoded)
			if err != nil {
				t.Fatal(err)
			}
			if len(decoded) != 0 {
				t.Errorf("decoding an empty payload produced %d bytes", len(decoded))
			}
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	payload := testPayload()
	buffer := make([]byte, 0, len(payload))

	for _, test := range tests {
		b.Run(test.scenario, func(b *testing.B) {
			var err error
			for i := 0; i < b.N; i++ {
				buffer, err = test.codec.Encode(buffer[:0], payload)
				if err != nil {
					b.Fatal(err)
				}
			}
			b.SetBytes(int64(len(payload)))
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	payload := testPayload()
	buffer, err := new(snappy.Codec).Encode(nil, payload)
	if err != nil {
		b.Fatal(err)
	}
	output := make([]byte, 0, len(payload))

	b.Run("snappy", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			output, err = new(snappy.Codec).Decode(output[:0], buffer)
			if err != nil {
				b.Fatal(err)
			}
		}
		b.SetBytes(int64(len(payload)))
	})
}
