package encoding_test

import (
	"testing"

	"github.com/columnar-go/columnar"
	"github.com/columnar-go/columnar/compress/snappy"
	"github.com/columnar-go/columnar/encoding"
	"github.com/columnar-go/columnar/internal/memory"
)

func TestAdaptiveIntegerNarrowToByte(t *testing.T) {
	configs := map[string]columnar.PageConfig{
		"safe":   {},
		"unsafe": {UseUnsafe: true, Allocator: memory.NewAllocator(0)},
	}
	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			page, err := columnar.NewPage(cfg, columnar.Int, 201)
			if err != nil {
				t.Fatal(err)
			}
			want := make([]int32, 201)
			for i := range want {
				want[i] = int32(i - 100) // values in [-100, 100] fit in a byte
				if err := page.PutData(i, want[i]); err != nil {
					t.Fatal(err)
				}
			}

			stats := page.Statistics()
			target, err := encoding.TargetTypeOf(stats)
			if err != nil {
				t.Fatal(err)
			}
			if target != columnar.Byte {
				t.Fatalf("target type = %s, want BYTE", target)
			}

			codec, err := encoding.NewAdaptiveInteger(cfg, columnar.Int, target, stats, new(snappy.Codec))
			if err != nil {
				t.Fatal(err)
			}
			data, err := codec.Encode(page)
			if err != nil {
				t.Fatal(err)
			}
			page.FreeMemory()

			decoded, err := codec.Decode(data, 0, len(data))
			if err != nil {
				t.Fatal(err)
			}
			if decoded.DataType() != columnar.Int {
				t.Errorf("decoded page type = %s, want INT", decoded.DataType())
			}
			for i, v := range want {
				if got := decoded.GetInt(i); got != v {
					t.Fatalf("row %d: got %d, want %d", i, got, v)
				}
				if got := decoded.GetLong(i); got != int64(v) {
					t.Fatalf("row %d widened: got %d, want %d", i, got, v)
				}
			}
			if got, want := decoded.Statistics().NullCount(), stats.NullCount(); got != want {
				t.Errorf("decoded stats null count = %d, want %d", got, want)
			}
		})
	}
}

func TestTargetTypeOf(t *testing.T) {
	tests := []struct {
		min, max int64
		want     columnar.DataType
	}{
		{-100, 100, columnar.Byte},
		{-128, 127, columnar.Byte},
		{-129, 0, columnar.Short},
		{0, 32768, columnar.ShortInt},
		{columnar.MinShortInt, columnar.MaxShortInt, columnar.ShortInt},
		{0, columnar.MaxShortInt + 1, columnar.Int},
		{0, 1 << 40, columnar.Long},
	}
	for _, test := range tests {
		page, err := columnar.NewPage(columnar.PageConfig{}, columnar.Long, 2)
		if err != nil {
			t.Fatal(err)
		}
		if err := page.PutData(0, test.min); err != nil {
			t.Fatal(err)
		}
		if err := page.PutData(1, test.max); err != nil {
			t.Fatal(err)
		}
		got, err := encoding.TargetTypeOf(page.Statistics())
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want {
			t.Errorf("[%d, %d]: target %s, want %s", test.min, test.max, got, test.want)
		}
	}
}

func TestAdaptiveIntegerMaxDeltaTransform(t *testing.T) {
	// The max-delta transform stores distance below the page maximum; the
	// lazy view must revert it exactly.
	page, err := columnar.NewPage(columnar.PageConfig{}, columnar.Long, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{1000000, 1000050, 1000100}
	for i, v := range want {
		if err := page.PutData(i, v); err != nil {
			t.Fatal(err)
		}
	}
	const max = 1000100

	if err := page.TransformAndCastTo(columnar.TransformMaxDelta, max, columnar.Byte); err != nil {
		t.Fatal(err)
	}
	data, err := page.Compress(new(snappy.Codec))
	if err != nil {
		t.Fatal(err)
	}

	narrow, err := columnar.Decompress(columnar.PageConfig{}, new(snappy.Codec), columnar.Byte, data, 0, len(data))
	if err != nil {
		t.Fatal(err)
	}
	wide := columnar.NewLazyPage(narrow, columnar.TransformMaxDelta, max, columnar.Long, columnar.NoStats)
	for i, v := range want {
		if got := wide.GetLong(i); got != v {
			t.Errorf("row %d: got %d, want %d", i, got, v)
		}
	}
}
