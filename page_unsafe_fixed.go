package columnar

import (
	"github.com/columnar-go/columnar/internal/memory"
	"github.com/columnar-go/columnar/internal/unsafecast"
)

// unsafeFixedStore backs a fixed-width page with one flat region acquired
// from the allocator, addressed through reinterpreted typed views.
type unsafeFixedStore struct {
	noStore
	dataType DataType
	pageSize int
	region   *memory.Region
}

func newUnsafeFixedStore(alloc *memory.Allocator, dataType DataType, pageSize int) (*unsafeFixedStore, error) {
	region, err := alloc.Allocate(int64(pageSize) * int64(dataType.Size()))
	if err != nil {
		return nil, err
	}
	return &unsafeFixedStore{
		noStore:  noStore{kind: "unsafe fixed " + dataType.String()},
		dataType: dataType,
		pageSize: pageSize,
		region:   region,
	}, nil
}

func (s *unsafeFixedStore) check(t DataType, op string) {
	if s.dataType != t {
		s.fail(op)
	}
}

func view[T int8 | int16 | int32 | int64 | float32 | float64](s *unsafeFixedStore) []T {
	return unsafecast.Slice[T](s.region.Bytes())
}

func (s *unsafeFixedStore) putByte(rowID int, v int8) {
	s.check(Byte, "putByte")
	view[int8](s)[rowID] = v
}

func (s *unsafeFixedStore) putShort(rowID int, v int16) {
	s.check(Short, "putShort")
	view[int16](s)[rowID] = v
}

func (s *unsafeFixedStore) putShortInt(rowID int, v int32) {
	s.check(ShortInt, "putShortInt")
	packShortInt(s.region.Bytes()[rowID*3:], v)
}

func (s *unsafeFixedStore) putInt(rowID int, v int32) {
	if s.dataType != Int && s.dataType != Timestamp && s.dataType != Date {
		s.fail("putInt")
	}
	view[int32](s)[rowID] = v
}

func (s *unsafeFixedStore) putLong(rowID int, v int64) {
	s.check(Long, "putLong")
	view[int64](s)[rowID] = v
}

func (s *unsafeFixedStore) putFloat(rowID int, v float32) {
	s.check(Float, "putFloat")
	view[float32](s)[rowID] = v
}

func (s *unsafeFixedStore) putDouble(rowID int, v float64) {
	s.check(Double, "putDouble")
	view[float64](s)[rowID] = v
}

func (s *unsafeFixedStore) getByte(rowID int) int8 {
	s.check(Byte, "getByte")
	return view[int8](s)[rowID]
}

func (s *unsafeFixedStore) getShort(rowID int) int16 {
	s.check(Short, "getShort")
	return view[int16](s)[rowID]
}

func (s *unsafeFixedStore) getShortInt(rowID int) int32 {
	s.check(ShortInt, "getShortInt")
	return unpackShortInt(s.region.Bytes()[rowID*3:])
}

func (s *unsafeFixedStore) getInt(rowID int) int32 {
	if s.dataType != Int && s.dataType != Timestamp && s.dataType != Date {
		s.fail("getInt")
	}
	return view[int32](s)[rowID]
}

func (s *unsafeFixedStore) getLong(rowID int) int64 {
	s.check(Long, "getLong")
	return view[int64](s)[rowID]
}

func (s *unsafeFixedStore) getFloat(rowID int) float32 {
	s.check(Float, "getFloat")
	return view[float32](s)[rowID]
}

func (s *unsafeFixedStore) getDouble(rowID int) float64 {
	s.check(Double, "getDouble")
	return view[float64](s)[rowID]
}

func (s *unsafeFixedStore) setBytePage(v []int8) {
	s.check(Byte, "setBytePage")
	copy(view[int8](s), v)
}

func (s *unsafeFixedStore) setShortPage(v []int16) {
	s.check(Short, "setShortPage")
	copy(view[int16](s), v)
}

func (s *unsafeFixedStore) setShortIntPage(v []byte) {
	s.check(ShortInt, "setShortIntPage")
	copy(s.region.Bytes(), v)
}

func (s *unsafeFixedStore) setIntPage(v []int32) {
	if s.dataType != Int && s.dataType != Timestamp && s.dataType != Date {
		s.fail("setIntPage")
	}
	copy(view[int32](s), v)
}

func (s *unsafeFixedStore) setLongPage(v []int64) {
	s.check(Long, "setLongPage")
	copy(view[int64](s), v)
}

func (s *unsafeFixedStore) setFloatPage(v []float32) {
	s.check(Float, "setFloatPage")
	copy(view[float32](s), v)
}

func (s *unsafeFixedStore) setDoublePage(v []float64) {
	s.check(Double, "setDoublePage")
	copy(view[float64](s), v)
}

func (s *unsafeFixedStore) bytePage() []int8 {
	s.check(Byte, "bytePage")
	return view[int8](s)
}

func (s *unsafeFixedStore) shortPage() []int16 {
	s.check(Short, "shortPage")
	return view[int16](s)
}

func (s *unsafeFixedStore) shortIntPage() []byte {
	s.check(ShortInt, "shortIntPage")
	return s.region.Bytes()
}

func (s *unsafeFixedStore) intPage() []int32 {
	if s.dataType != Int && s.dataType != Timestamp && s.dataType != Date {
		s.fail("intPage")
	}
	return view[int32](s)
}

func (s *unsafeFixedStore) longPage() []int64 {
	s.check(Long, "longPage")
	return view[int64](s)
}

func (s *unsafeFixedStore) floatPage() []float32 {
	s.check(Float, "floatPage")
	return view[float32](s)
}

func (s *unsafeFixedStore) doublePage() []float64 {
	s.check(Double, "doublePage")
	return view[float64](s)
}

func (s *unsafeFixedStore) freeMemory() {
	s.region.Free()
}
