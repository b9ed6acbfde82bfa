package columnar

import (
	"bytes"
	"strconv"
	"strings"
)

// StatsResult is the finalized view of the statistics collected while a page
// was populated.
type StatsResult interface {
	Min() any
	Max() any
	// DecimalCount is the maximum number of fraction digits observed, only
	// meaningful for floating point and decimal pages.
	DecimalCount() int
	DataType() DataType
	Scale() int
	Precision() int
	NullCount() int
}

// StatsCollector accumulates per-page statistics. One Update call is made per
// non-null put and one UpdateNull per null put; updates are commutative, so
// the result does not depend on row order.
type StatsCollector interface {
	UpdateByte(v int8)
	UpdateShort(v int16)
	UpdateInt(v int32)
	UpdateLong(v int64)
	UpdateFloat(v float32)
	UpdateDouble(v float64)
	UpdateDecimal(v Decimal)
	UpdateBytes(v []byte)
	UpdateNull(rowID int)
	Result() StatsResult
}

// NoStats is the placeholder result for pages that carry no statistics, such
// as sub-columns of complex types. It is a shared instance so callers can
// compare results cheaply.
var NoStats StatsResult = &noStats{}

type noStats struct{}

func (*noStats) Min() any           { return []byte{} }
func (*noStats) Max() any           { return []byte{} }
func (*noStats) DecimalCount() int  { return 0 }
func (*noStats) DataType() DataType { return ByteArray }
func (*noStats) Scale() int         { return 0 }
func (*noStats) Precision() int     { return 0 }
func (*noStats) NullCount() int     { return 0 }

// nopStats backs pages that collect no statistics; every update is discarded
// and Result is the shared NoStats placeholder.
type nopStats struct{}

func (nopStats) UpdateByte(int8)       {}
func (nopStats) UpdateShort(int16)     {}
func (nopStats) UpdateInt(int32)       {}
func (nopStats) UpdateLong(int64)      {}
func (nopStats) UpdateFloat(float32)   {}
func (nopStats) UpdateDouble(float64)  {}
func (nopStats) UpdateDecimal(Decimal) {}
func (nopStats) UpdateBytes([]byte)    {}
func (nopStats) UpdateNull(int)        {}
func (nopStats) Result() StatsResult   { return NoStats }

func newStatsCollector(dataType DataType, scale, precision int) StatsCollector {
	switch dataType {
	case Byte, Short, ShortInt, Int, Long, Float, Double, Timestamp, Date:
		return newPrimitiveStats(dataType, -1, -1)
	case DecimalType:
		return newPrimitiveStats(dataType, scale, precision)
	case String:
		return &byteStats{dataType: String}
	case ByteArray:
		return &byteStats{dataType: ByteArray}
	default:
		panic("columnar: no stats collector for " + dataType.String())
	}
}

// primitiveStats tracks min/max by natural ordering for the numeric types,
// plus the fraction-digit count for doubles and decimals.
type primitiveStats struct {
	dataType   DataType
	scale      int
	precision  int
	seen       bool
	minLong    int64
	maxLong    int64
	minDouble  float64
	maxDouble  float64
	minDecimal Decimal
	maxDecimal Decimal
	decimals   int
	nulls      int
}

func newPrimitiveStats(dataType DataType, scale, precision int) *primitiveStats {
	s := &primitiveStats{dataType: dataType, scale: scale, precision: precision}
	if dataType == DecimalType {
		s.decimals = scale
	}
	return s
}

func (s *primitiveStats) UpdateByte(v int8)   { s.updateLong(int64(v)) }
func (s *primitiveStats) UpdateShort(v int16) { s.updateLong(int64(v)) }
func (s *primitiveStats) UpdateInt(v int32)   { s.updateLong(int64(v)) }
func (s *primitiveStats) UpdateLong(v int64)  { s.updateLong(v) }

func (s *primitiveStats) updateLong(v int64) {
	if !s.seen {
		s.minLong, s.maxLong = v, v
		s.seen = true
		return
	}
	if v < s.minLong {
		s.minLong = v
	}
	if v > s.maxLong {
		s.maxLong = v
	}
}

func (s *primitiveStats) UpdateFloat(v float32) { s.UpdateDouble(float64(v)) }

func (s *primitiveStats) UpdateDouble(v float64) {
	if !s.seen {
		s.minDouble, s.maxDouble = v, v
		s.seen = true
	} else {
		if v < s.minDouble {
			s.minDouble = v
		}
		if v > s.maxDouble {
			s.maxDouble = v
		}
	}
	if d := fractionDigits(v); d > s.decimals {
		s.decimals = d
	}
}

func (s *primitiveStats) UpdateDecimal(v Decimal) {
	if !s.seen {
		s.minDecimal, s.maxDecimal = v, v
		s.seen = true
		return
	}
	if v.Cmp(s.minDecimal) < 0 {
		s.minDecimal = v
	}
	if v.Cmp(s.maxDecimal) > 0 {
		s.maxDecimal = v
	}
}

func (s *primitiveStats) UpdateBytes([]byte) {
	panic("columnar: byte stats update on " + s.dataType.String() + " collector")
}

func (s *primitiveStats) UpdateNull(int) { s.nulls++ }

func (s *primitiveStats) Result() StatsResult { return s }

func (s *primitiveStats) Min() any { return s.value(true) }
func (s *primitiveStats) Max() any { return s.value(false) }

func (s *primitiveStats) value(min bool) any {
	switch s.dataType {
	case Byte:
		return int8(s.pick(min))
	case Short:
		return int16(s.pick(min))
	case ShortInt, Int, Timestamp, Date:
		return int32(s.pick(min))
	case Long:
		return s.pick(min)
	case Float:
		if min {
			return float32(s.minDouble)
		}
		return float32(s.maxDouble)
	case Double:
		if min {
			return s.minDouble
		}
		return s.maxDouble
	case DecimalType:
		if min {
			return s.minDecimal
		}
		return s.maxDecimal
	default:
		panic("columnar: no stats value for " + s.dataType.String())
	}
}

func (s *primitiveStats) pick(min bool) int64 {
	if min {
		return s.minLong
	}
	return s.maxLong
}

func (s *primitiveStats) DecimalCount() int  { return s.decimals }
func (s *primitiveStats) DataType() DataType { return s.dataType }
func (s *primitiveStats) Scale() int         { return s.scale }
func (s *primitiveStats) Precision() int     { return s.precision }
func (s *primitiveStats) NullCount() int     { return s.nulls }

// fractionDigits returns the number of digits after the decimal point in the
// shortest decimal rendering of v.
func fractionDigits(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// byteStats tracks lexicographic min/max for string and byte-array pages.
// The first value seen is retained when comparisons tie.
type byteStats struct {
	dataType DataType
	seen     bool
	min      []byte
	max      []byte
	nulls    int
}

func (s *byteStats) UpdateByte(int8)       { s.badUpdate() }
func (s *byteStats) UpdateShort(int16)     { s.badUpdate() }
func (s *byteStats) UpdateInt(int32)       { s.badUpdate() }
func (s *byteStats) UpdateLong(int64)      { s.badUpdate() }
func (s *byteStats) UpdateFloat(float32)   { s.badUpdate() }
func (s *byteStats) UpdateDouble(float64)  { s.badUpdate() }
func (s *byteStats) UpdateDecimal(Decimal) { s.badUpdate() }

func (s *byteStats) badUpdate() {
	panic("columnar: numeric stats update on " + s.dataType.String() + " collector")
}

// UpdateBytes clones retained candidates; producers may reuse the put buffer.
func (s *byteStats) UpdateBytes(v []byte) {
	if !s.seen {
		s.min = bytes.Clone(v)
		s.max = bytes.Clone(v)
		s.seen = true
		return
	}
	switch {
	case bytes.Compare(v, s.min) < 0:
		s.min = bytes.Clone(v)
	case bytes.Compare(v, s.max) > 0:
		s.max = bytes.Clone(v)
	}
}

func (s *byteStats) UpdateNull(int) { s.nulls++ }

func (s *byteStats) Result() StatsResult { return s }

func (s *byteStats) Min() any {
	if s.min == nil {
		return []byte{}
	}
	return s.min
}

func (s *byteStats) Max() any {
	if s.max == nil {
		return []byte{}
	}
	return s.max
}

func (s *byteStats) DecimalCount() int  { return 0 }
func (s *byteStats) DataType() DataType { return s.dataType }
func (s *byteStats) Scale() int         { return -1 }
func (s *byteStats) Precision() int     { return -1 }
func (s *byteStats) NullCount() int     { return s.nulls }
