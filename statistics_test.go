package columnar

import (
	"bytes"
	"math/rand"
	"testing"
	"testing/quick"
)

func TestPrimitiveStatsCommutative(t *testing.T) {
	err := quick.Check(func(values []int64) bool {
		if len(values) == 0 {
			return true
		}
		forward := newPrimitiveStats(Long, -1, -1)
		for _, v := range values {
			forward.UpdateLong(v)
		}

		shuffled := append([]int64(nil), values...)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		backward := newPrimitiveStats(Long, -1, -1)
		for _, v := range shuffled {
			backward.UpdateLong(v)
		}

		return forward.Min() == backward.Min() && forward.Max() == backward.Max()
	}, nil)
	if err != nil {
		t.Error(err)
	}
}

func TestPrimitiveStatsNullsIgnoreMinMax(t *testing.T) {
	s := newPrimitiveStats(Int, -1, -1)
	s.UpdateInt(5)
	s.UpdateNull(0)
	s.UpdateNull(1)
	s.UpdateInt(-3)

	if got := s.Min(); got != int32(-3) {
		t.Errorf("min = %v, want -3", got)
	}
	if got := s.Max(); got != int32(5) {
		t.Errorf("max = %v, want 5", got)
	}
	if got := s.NullCount(); got != 2 {
		t.Errorf("null count = %d, want 2", got)
	}
}

func TestDoubleStatsDecimalCount(t *testing.T) {
	s := newPrimitiveStats(Double, -1, -1)
	s.UpdateDouble(1)
	s.UpdateDouble(2.5)
	s.UpdateDouble(-3.125)

	if got := s.DecimalCount(); got != 3 {
		t.Errorf("decimal count = %d, want 3", got)
	}
	if got := s.Min(); got != -3.125 {
		t.Errorf("min = %v, want -3.125", got)
	}
}

func TestByteStatsBounds(t *testing.T) {
	s := &byteStats{dataType: String}
	for _, v := range [][]byte{
		[]byte("pear"),
		[]byte("apple"),
		[]byte("zucchini"),
		[]byte("apple"),
	} {
		s.UpdateBytes(v)
	}
	if got := s.Min().([]byte); !bytes.Equal(got, []byte("apple")) {
		t.Errorf("min = %q, want apple", got)
	}
	if got := s.Max().([]byte); !bytes.Equal(got, []byte("zucchini")) {
		t.Errorf("max = %q, want zucchini", got)
	}
}

func TestByteStatsDoNotAliasPutBuffer(t *testing.T) {
	s := &byteStats{dataType: String}
	buf := []byte("mango")
	s.UpdateBytes(buf)
	copy(buf, "aaaaa")
	s.UpdateBytes(buf)

	if got := s.Min().([]byte); !bytes.Equal(got, []byte("aaaaa")) {
		t.Errorf("min = %q, want aaaaa", got)
	}
	if got := s.Max().([]byte); !bytes.Equal(got, []byte("mango")) {
		t.Errorf("max = %q, want mango", got)
	}
}

func TestDecimalStatsBounds(t *testing.T) {
	s := newPrimitiveStats(DecimalType, 2, 10)
	for _, v := range []Decimal{
		DecimalFromInt64(100, 2),
		DecimalFromInt64(-250, 2),
		DecimalFromInt64(99999, 2),
	} {
		s.UpdateDecimal(v)
	}
	if got := s.Min().(Decimal); got.Cmp(DecimalFromInt64(-250, 2)) != 0 {
		t.Errorf("min = %s, want -2.50", got)
	}
	if got := s.Max().(Decimal); got.Cmp(DecimalFromInt64(99999, 2)) != 0 {
		t.Errorf("max = %s, want 999.99", got)
	}
}
