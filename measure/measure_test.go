package measure_test

import (
	"testing"

	"github.com/columnar-go/columnar"
	"github.com/columnar-go/columnar/compress/snappy"
	"github.com/columnar-go/columnar/measure"
)

func TestNoneIntRoundTrip(t *testing.T) {
	compressor := columnar.NewCompressor(new(snappy.Codec))

	values := []int32{0, -1, 42, 1 << 20, -(1 << 20)}
	holder := measure.NewNoneInt(columnar.Int, compressor)
	holder.SetValue(values, len(values), nil, 0)
	if err := holder.Compress(); err != nil {
		t.Fatal(err)
	}
	data := holder.CompressedBytes()
	if len(data) == 0 {
		t.Fatal("Compress produced no bytes")
	}

	decoded := measure.NewNoneInt(columnar.Int, compressor)
	if err := decoded.Uncompress(columnar.Int, data, 0, len(data), 0, nil, len(values)); err != nil {
		t.Fatal(err)
	}
	for i, v := range values {
		if got := decoded.GetLong(i); got != int64(v) {
			t.Errorf("row %d: GetLong = %d, want %d", i, got, v)
		}
		if got := decoded.GetDouble(i); got != float64(v) {
			t.Errorf("row %d: GetDouble = %g, want %d", i, got, v)
		}
	}
}

func TestHoldersWidenReads(t *testing.T) {
	compressor := columnar.NewCompressor(new(snappy.Codec))

	byteHolder := measure.NewNoneByte(columnar.Byte, compressor)
	byteHolder.SetValue([]int8{-5}, 1, nil, 0)
	if got := byteHolder.GetLong(0); got != -5 {
		t.Errorf("byte GetLong = %d, want -5", got)
	}

	shortHolder := measure.NewNoneShort(columnar.Short, compressor)
	shortHolder.SetValue([]int16{300}, 1, nil, 0)
	if got := shortHolder.GetDouble(0); got != 300 {
		t.Errorf("short GetDouble = %g, want 300", got)
	}

	longHolder := measure.NewNoneLong(columnar.Long, compressor)
	longHolder.SetValue([]int64{1 << 40}, 1, nil, 0)
	if got := longHolder.GetLong(0); got != 1<<40 {
		t.Errorf("long GetLong = %d, want %d", got, int64(1)<<40)
	}

	doubleHolder := measure.NewNoneDouble(columnar.Double, compressor)
	doubleHolder.SetValue([]float64{2.5}, 1, nil, 0)
	if got := doubleHolder.GetDouble(0); got != 2.5 {
		t.Errorf("double GetDouble = %g, want 2.5", got)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	compressor := columnar.NewCompressor(new(snappy.Codec))

	values := []float32{0, 1.5, -3.25}
	holder := measure.NewNoneFloat(columnar.Float, compressor)
	holder.SetValue(values, len(values), nil, 0)
	if err := holder.Compress(); err != nil {
		t.Fatal(err)
	}

	decoded := measure.NewNoneFloat(columnar.Float, compressor)
	if err := decoded.Uncompress(columnar.Float, holder.CompressedBytes(), 0, len(holder.CompressedBytes()), 0, nil, len(values)); err != nil {
		t.Fatal(err)
	}
	for i, v := range values {
		if got := decoded.GetDouble(i); got != float64(v) {
			t.Errorf("row %d: GetDouble = %g, want %g", i, got, v)
		}
	}
}

func TestGetDecimalPanics(t *testing.T) {
	holder := measure.NewNoneInt(columnar.Int, columnar.NewCompressor(new(snappy.Codec)))
	holder.SetValue([]int32{1}, 1, nil, 0)

	defer func() {
		if recover() == nil {
			t.Error("GetDecimal on an int holder did not panic")
		}
	}()
	holder.GetDecimal(0)
}

func TestReadAfterFreePanics(t *testing.T) {
	holder := measure.NewNoneInt(columnar.Int, columnar.NewCompressor(new(snappy.Codec)))
	holder.SetValue([]int32{1}, 1, nil, 0)
	holder.FreeMemory()

	defer func() {
		if recover() == nil {
			t.Error("read after FreeMemory did not panic")
		}
	}()
	holder.GetLong(0)
}
