package columnar

// safeFixedStore backs a fixed-width page with one managed typed slice.
// Exactly one of the slices is non-nil for the page's lifetime.
type safeFixedStore struct {
	noStore
	byteData     []int8
	shortData    []int16
	shortIntData []byte
	intData      []int32
	longData     []int64
	floatData    []float32
	doubleData   []float64
}

func newSafeFixedStore(dataType DataType, pageSize int) *safeFixedStore {
	s := &safeFixedStore{noStore: noStore{kind: "safe fixed " + dataType.String()}}
	switch dataType {
	case Byte:
		s.byteData = make([]int8, pageSize)
	case Short:
		s.shortData = make([]int16, pageSize)
	case ShortInt:
		s.shortIntData = make([]byte, pageSize*3)
	case Int, Timestamp, Date:
		s.intData = make([]int32, pageSize)
	case Long:
		s.longData = make([]int64, pageSize)
	case Float:
		s.floatData = make([]float32, pageSize)
	case Double:
		s.doubleData = make([]float64, pageSize)
	default:
		panic("columnar: safe fixed store for " + dataType.String())
	}
	return s
}

func (s *safeFixedStore) putByte(rowID int, v int8)   { s.byteData[rowID] = v }
func (s *safeFixedStore) putShort(rowID int, v int16) { s.shortData[rowID] = v }
func (s *safeFixedStore) putShortInt(rowID int, v int32) {
	packShortInt(s.shortIntData[rowID*3:], v)
}
func (s *safeFixedStore) putInt(rowID int, v int32)      { s.intData[rowID] = v }
func (s *safeFixedStore) putLong(rowID int, v int64)     { s.longData[rowID] = v }
func (s *safeFixedStore) putFloat(rowID int, v float32)  { s.floatData[rowID] = v }
func (s *safeFixedStore) putDouble(rowID int, v float64) { s.doubleData[rowID] = v }

func (s *safeFixedStore) getByte(rowID int) int8   { return s.byteData[rowID] }
func (s *safeFixedStore) getShort(rowID int) int16 { return s.shortData[rowID] }
func (s *safeFixedStore) getShortInt(rowID int) int32 {
	return unpackShortInt(s.shortIntData[rowID*3:])
}
func (s *safeFixedStore) getInt(rowID int) int32      { return s.intData[rowID] }
func (s *safeFixedStore) getLong(rowID int) int64     { return s.longData[rowID] }
func (s *safeFixedStore) getFloat(rowID int) float32  { return s.floatData[rowID] }
func (s *safeFixedStore) getDouble(rowID int) float64 { return s.doubleData[rowID] }

func (s *safeFixedStore) setBytePage(v []int8)      { s.byteData = v }
func (s *safeFixedStore) setShortPage(v []int16)    { s.shortData = v }
func (s *safeFixedStore) setShortIntPage(v []byte)  { s.shortIntData = v }
func (s *safeFixedStore) setIntPage(v []int32)      { s.intData = v }
func (s *safeFixedStore) setLongPage(v []int64)     { s.longData = v }
func (s *safeFixedStore) setFloatPage(v []float32)  { s.floatData = v }
func (s *safeFixedStore) setDoublePage(v []float64) { s.doubleData = v }

func (s *safeFixedStore) bytePage() []int8      { return s.byteData }
func (s *safeFixedStore) shortPage() []int16    { return s.shortData }
func (s *safeFixedStore) shortIntPage() []byte  { return s.shortIntData }
func (s *safeFixedStore) intPage() []int32      { return s.intData }
func (s *safeFixedStore) longPage() []int64     { return s.longData }
func (s *safeFixedStore) floatPage() []float32  { return s.floatData }
func (s *safeFixedStore) doublePage() []float64 { return s.doubleData }

func (s *safeFixedStore) freeMemory() {}
