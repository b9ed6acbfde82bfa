package columnar

import "fmt"

// pageStore is the raw storage behind a ColumnPage: typed row put/get
// primitives, bulk load/view, and memory release. All shared semantics
// (null tracking, statistics, dispatch, compression) live on ColumnPage;
// stores only know how bytes are laid out.
type pageStore interface {
	putByte(rowID int, v int8)
	putShort(rowID int, v int16)
	putShortInt(rowID int, v int32)
	putInt(rowID int, v int32)
	putLong(rowID int, v int64)
	putFloat(rowID int, v float32)
	putDouble(rowID int, v float64)
	putBytes(rowID int, v []byte)

	getByte(rowID int) int8
	getShort(rowID int) int16
	getShortInt(rowID int) int32
	getInt(rowID int) int32
	getLong(rowID int) int64
	getFloat(rowID int) float32
	getDouble(rowID int) float64
	getBytes(rowID int) []byte

	setBytePage(v []int8)
	setShortPage(v []int16)
	setShortIntPage(v []byte)
	setIntPage(v []int32)
	setLongPage(v []int64)
	setFloatPage(v []float32)
	setDoublePage(v []float64)
	setByteArrayPage(v [][]byte)

	bytePage() []int8
	shortPage() []int16
	shortIntPage() []byte
	intPage() []int32
	longPage() []int64
	floatPage() []float32
	doublePage() []float64
	byteArrayPage() [][]byte
	lvFlattenedBytePage() []byte
	directFlattenedBytePage() []byte

	freeMemory()
}

// noStore panics on every operation; the concrete stores embed it and
// override only what their representation can serve, so a getter against a
// mismatched width fails fast instead of silently truncating.
type noStore struct {
	kind string
}

func (s noStore) fail(op string) {
	panic(fmt.Sprintf("columnar: %s store cannot serve %s", s.kind, op))
}

func (s noStore) putByte(int, int8)      { s.fail("putByte") }
func (s noStore) putShort(int, int16)    { s.fail("putShort") }
func (s noStore) putShortInt(int, int32) { s.fail("putShortInt") }
func (s noStore) putInt(int, int32)      { s.fail("putInt") }
func (s noStore) putLong(int, int64)     { s.fail("putLong") }
func (s noStore) putFloat(int, float32)  { s.fail("putFloat") }
func (s noStore) putDouble(int, float64) { s.fail("putDouble") }
func (s noStore) putBytes(int, []byte)   { s.fail("putBytes") }

func (s noStore) getByte(int) int8      { s.fail("getByte"); return 0 }
func (s noStore) getShort(int) int16    { s.fail("getShort"); return 0 }
func (s noStore) getShortInt(int) int32 { s.fail("getShortInt"); return 0 }
func (s noStore) getInt(int) int32      { s.fail("getInt"); return 0 }
func (s noStore) getLong(int) int64     { s.fail("getLong"); return 0 }
func (s noStore) getFloat(int) float32  { s.fail("getFloat"); return 0 }
func (s noStore) getDouble(int) float64 { s.fail("getDouble"); return 0 }
func (s noStore) getBytes(int) []byte   { s.fail("getBytes"); return nil }

func (s noStore) setBytePage([]int8)        { s.fail("setBytePage") }
func (s noStore) setShortPage([]int16)      { s.fail("setShortPage") }
func (s noStore) setShortIntPage([]byte)    { s.fail("setShortIntPage") }
func (s noStore) setIntPage([]int32)        { s.fail("setIntPage") }
func (s noStore) setLongPage([]int64)       { s.fail("setLongPage") }
func (s noStore) setFloatPage([]float32)    { s.fail("setFloatPage") }
func (s noStore) setDoublePage([]float64)   { s.fail("setDoublePage") }
func (s noStore) setByteArrayPage([][]byte) { s.fail("setByteArrayPage") }

func (s noStore) bytePage() []int8            { s.fail("bytePage"); return nil }
func (s noStore) shortPage() []int16          { s.fail("shortPage"); return nil }
func (s noStore) shortIntPage() []byte        { s.fail("shortIntPage"); return nil }
func (s noStore) intPage() []int32            { s.fail("intPage"); return nil }
func (s noStore) longPage() []int64           { s.fail("longPage"); return nil }
func (s noStore) floatPage() []float32        { s.fail("floatPage"); return nil }
func (s noStore) doublePage() []float64       { s.fail("doublePage"); return nil }
func (s noStore) byteArrayPage() [][]byte     { s.fail("byteArrayPage"); return nil }
func (s noStore) lvFlattenedBytePage() []byte { s.fail("lvFlattenedBytePage"); return nil }
func (s noStore) directFlattenedBytePage() []byte {
	s.fail("directFlattenedBytePage")
	return nil
}

func (s noStore) freeMemory() {}
