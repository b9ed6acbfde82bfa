// Package columnar implements the in-memory page layer of a columnar table
// store: typed fixed-capacity column pages with null tracking and running
// statistics, adaptive narrowing transforms, and a compress/decompress
// contract over pluggable byte codecs.
package columnar

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/columnar-go/columnar/compress"
	"github.com/columnar-go/columnar/internal/memory"
	"github.com/columnar-go/columnar/internal/unsafecast"
)

// MemberDefaultValue is the reserved byte sequence that string columns use as
// a null surrogate. Putting these exact bytes into a string page stores a
// zero-length value and marks the row null; the convention predates explicit
// null bits and callers still depend on it byte for byte.
const MemberDefaultValue = "@NU#LL$!"

var memberDefaultBytes = []byte(MemberDefaultValue)

// PageConfig selects the backing store for new pages. It is threaded
// explicitly into the page factory so tests can pin either backend.
type PageConfig struct {
	// UseUnsafe selects the flat-buffer backend acquired from Allocator
	// instead of managed typed slices.
	UseUnsafe bool
	// Allocator backs unsafe pages. Required when UseUnsafe is set.
	Allocator *memory.Allocator
}

// ColumnPage holds up to pageSize values of one logical data type for one
// column of a row block. The concrete backing store is chosen once at
// construction and never changes; nulls and statistics are tracked as a side
// effect of every put.
//
// A page is written by a single producer and becomes read-only once handed to
// Compress. Pages do no internal locking.
type ColumnPage struct {
	dataType  DataType
	pageSize  int
	scale     int
	precision int

	cfg       PageConfig
	nullBits  *Bitset
	stats     StatsCollector
	statsView StatsResult
	converter DecimalConverter
	store     pageStore
}

// NewPage allocates a page of the given type and row capacity. Unsafe-backend
// acquisition failures surface as *memory.AllocError without retry; the
// factory never falls back to the safe backend on its own.
func NewPage(cfg PageConfig, dataType DataType, pageSize int) (*ColumnPage, error) {
	return newPage(cfg, dataType, pageSize, -1, -1, true)
}

// NewDecimalPage allocates a decimal page carrying scale and precision.
func NewDecimalPage(cfg PageConfig, pageSize, scale, precision int) (*ColumnPage, error) {
	return newPage(cfg, DecimalType, pageSize, scale, precision, true)
}

func newPage(cfg PageConfig, dataType DataType, pageSize, scale, precision int, withStats bool) (*ColumnPage, error) {
	var store pageStore
	var err error
	switch dataType {
	case Byte, Short, ShortInt, Int, Long, Float, Double, Timestamp, Date:
		store, err = newFixedStore(cfg, dataType, pageSize)
	case DecimalType, String, ByteArray:
		store, err = newVarLenStore(cfg, pageSize)
	default:
		return nil, unsupportedType("new page", dataType)
	}
	if err != nil {
		return nil, err
	}
	page := &ColumnPage{
		dataType:  dataType,
		pageSize:  pageSize,
		scale:     scale,
		precision: precision,
		cfg:       cfg,
		nullBits:  NewBitset(pageSize),
		store:     store,
	}
	if dataType == DecimalType {
		page.converter = NewDecimalConverter(scale, precision)
	}
	if withStats {
		page.stats = newStatsCollector(dataType, scale, precision)
	} else {
		page.stats = nopStats{}
	}
	return page, nil
}

func newFixedStore(cfg PageConfig, dataType DataType, pageSize int) (pageStore, error) {
	if cfg.UseUnsafe {
		return newUnsafeFixedStore(cfg.Allocator, dataType, pageSize)
	}
	return newSafeFixedStore(dataType, pageSize), nil
}

func newVarLenStore(cfg PageConfig, pageSize int) (pageStore, error) {
	if cfg.UseUnsafe {
		return newUnsafeVarLenStore(cfg.Allocator, pageSize)
	}
	return newSafeVarLenStore(pageSize), nil
}

// WrapByteArrayPage adapts already materialized rows into a read-mostly
// byte-array page. Such pages carry no statistics; Statistics returns the
// shared placeholder.
func WrapByteArrayPage(cfg PageConfig, rows [][]byte) (*ColumnPage, error) {
	page, err := newPage(cfg, ByteArray, len(rows), -1, -1, false)
	if err != nil {
		return nil, err
	}
	page.store.setByteArrayPage(rows)
	return page, nil
}

func (p *ColumnPage) DataType() DataType { return p.dataType }
func (p *ColumnPage) PageSize() int      { return p.pageSize }
func (p *ColumnPage) Scale() int         { return p.scale }
func (p *ColumnPage) Precision() int     { return p.precision }

// Statistics returns the finalized statistics view, or the shared NoStats
// placeholder for pages that collect none.
func (p *ColumnPage) Statistics() StatsResult {
	if p.statsView != nil {
		return p.statsView
	}
	if p.stats != nil {
		return p.stats.Result()
	}
	return NoStats
}

// NullBits returns the page's null bitset; bit i is set when row i holds a
// logical null.
func (p *ColumnPage) NullBits() *Bitset { return p.nullBits }

// SetNullBits replaces the null bitset, used when reconstructing a page from
// decoded data plus externally stored null bits.
func (p *ColumnPage) SetNullBits(bits *Bitset) { p.nullBits = bits }

// PutData stores one row value, dispatching on the page's data type. A nil
// value stores the type's zero default, sets the row's null bit and counts a
// null in the statistics. The dynamic type of value must match the page type;
// a mismatch fails before any state is touched.
func (p *ColumnPage) PutData(rowID int, value any) error {
	if value == nil {
		if err := p.putNull(rowID); err != nil {
			return err
		}
		p.stats.UpdateNull(rowID)
		p.nullBits.Set(rowID)
		return nil
	}
	switch p.dataType {
	case Byte:
		v, ok := value.(int8)
		if !ok {
			return p.putMismatch(value)
		}
		p.store.putByte(rowID, v)
		p.stats.UpdateByte(v)
	case Short:
		v, ok := value.(int16)
		if !ok {
			return p.putMismatch(value)
		}
		p.store.putShort(rowID, v)
		p.stats.UpdateShort(v)
	case ShortInt:
		v, ok := value.(int32)
		if !ok {
			return p.putMismatch(value)
		}
		p.store.putShortInt(rowID, v)
		p.stats.UpdateInt(v)
	case Int, Timestamp, Date:
		v, ok := value.(int32)
		if !ok {
			return p.putMismatch(value)
		}
		p.store.putInt(rowID, v)
		p.stats.UpdateInt(v)
	case Long:
		v, ok := value.(int64)
		if !ok {
			return p.putMismatch(value)
		}
		p.store.putLong(rowID, v)
		p.stats.UpdateLong(v)
	case Float:
		v, ok := value.(float32)
		if !ok {
			return p.putMismatch(value)
		}
		p.store.putFloat(rowID, v)
		p.stats.UpdateFloat(v)
	case Double:
		v, ok := value.(float64)
		if !ok {
			return p.putMismatch(value)
		}
		p.store.putDouble(rowID, v)
		p.stats.UpdateDouble(v)
	case DecimalType:
		v, ok := value.(Decimal)
		if !ok {
			return p.putMismatch(value)
		}
		p.PutDecimal(rowID, v)
		p.stats.UpdateDecimal(v)
	case String:
		v, ok := value.([]byte)
		if !ok {
			return p.putMismatch(value)
		}
		if bytes.Equal(v, memberDefaultBytes) {
			p.store.putBytes(rowID, nil)
			p.stats.UpdateNull(rowID)
			p.nullBits.Set(rowID)
			return nil
		}
		p.store.putBytes(rowID, v)
		p.stats.UpdateBytes(v)
	case ByteArray:
		v, ok := value.([]byte)
		if !ok {
			return p.putMismatch(value)
		}
		p.store.putBytes(rowID, v)
		p.stats.UpdateBytes(v)
	default:
		return unsupportedType("put", p.dataType)
	}
	return nil
}

func (p *ColumnPage) putMismatch(value any) error {
	return fmt.Errorf("%w: %T value on %s page", ErrUnsupportedType, value, p.dataType)
}

// putNull writes the type's zero default so bulk accessors stay rectangular;
// the null bit is the authoritative marker.
func (p *ColumnPage) putNull(rowID int) error {
	switch p.dataType {
	case Byte:
		p.store.putByte(rowID, 0)
	case Short:
		p.store.putShort(rowID, 0)
	case ShortInt:
		p.store.putShortInt(rowID, 0)
	case Int, Timestamp, Date:
		p.store.putInt(rowID, 0)
	case Long:
		p.store.putLong(rowID, 0)
	case Float:
		p.store.putFloat(rowID, 0)
	case Double:
		p.store.putDouble(rowID, 0)
	case DecimalType:
		p.PutDecimal(rowID, DecimalZero(int32(p.scale)))
	case String, ByteArray:
		p.store.putBytes(rowID, nil)
	default:
		return unsupportedType("put null", p.dataType)
	}
	return nil
}

// Typed puts. The value must match the page's storage width; the stores fail
// fast on representations they cannot serve.

func (p *ColumnPage) PutByte(rowID int, v int8)      { p.store.putByte(rowID, v) }
func (p *ColumnPage) PutShort(rowID int, v int16)    { p.store.putShort(rowID, v) }
func (p *ColumnPage) PutShortInt(rowID int, v int32) { p.store.putShortInt(rowID, v) }
func (p *ColumnPage) PutInt(rowID int, v int32)      { p.store.putInt(rowID, v) }
func (p *ColumnPage) PutLong(rowID int, v int64)     { p.store.putLong(rowID, v) }
func (p *ColumnPage) PutFloat(rowID int, v float32)  { p.store.putFloat(rowID, v) }
func (p *ColumnPage) PutDouble(rowID int, v float64) { p.store.putDouble(rowID, v) }
func (p *ColumnPage) PutBytes(rowID int, v []byte)   { p.store.putBytes(rowID, v) }

// PutDecimal stores the converter's compact encoding of d.
func (p *ColumnPage) PutDecimal(rowID int, d Decimal) {
	if p.converter == nil {
		panic("columnar: decimal put on " + p.dataType.String() + " page")
	}
	p.store.putBytes(rowID, p.converter.Encode(d))
}

// Typed getters return the stored representation at rowID.

func (p *ColumnPage) GetByte(rowID int) int8      { return p.store.getByte(rowID) }
func (p *ColumnPage) GetShort(rowID int) int16    { return p.store.getShort(rowID) }
func (p *ColumnPage) GetShortInt(rowID int) int32 { return p.store.getShortInt(rowID) }
func (p *ColumnPage) GetInt(rowID int) int32      { return p.store.getInt(rowID) }
func (p *ColumnPage) GetLong(rowID int) int64     { return p.store.getLong(rowID) }
func (p *ColumnPage) GetFloat(rowID int) float32  { return p.store.getFloat(rowID) }
func (p *ColumnPage) GetDouble(rowID int) float64 { return p.store.getDouble(rowID) }
func (p *ColumnPage) GetBytes(rowID int) []byte   { return p.store.getBytes(rowID) }

// PutString stores s without forcing the caller to allocate a byte slice;
// the store copies the value.
func (p *ColumnPage) PutString(rowID int, s string) {
	p.store.putBytes(rowID, unsafecast.StringToBytes(s))
}

// GetString returns the stored value at rowID as a string sharing the store's
// bytes; it is only valid while the page is alive.
func (p *ColumnPage) GetString(rowID int) string {
	return unsafecast.BytesToString(p.store.getBytes(rowID))
}

// GetDecimal decodes the stored compact bytes back into a decimal value.
func (p *ColumnPage) GetDecimal(rowID int) Decimal {
	if p.converter == nil {
		panic("columnar: decimal get on " + p.dataType.String() + " page")
	}
	return p.converter.Decode(p.store.getBytes(rowID))
}

// Bulk setters load a whole page worth of values at once.

func (p *ColumnPage) SetBytePage(v []int8)        { p.store.setBytePage(v) }
func (p *ColumnPage) SetShortPage(v []int16)      { p.store.setShortPage(v) }
func (p *ColumnPage) SetShortIntPage(v []byte)    { p.store.setShortIntPage(v) }
func (p *ColumnPage) SetIntPage(v []int32)        { p.store.setIntPage(v) }
func (p *ColumnPage) SetLongPage(v []int64)       { p.store.setLongPage(v) }
func (p *ColumnPage) SetFloatPage(v []float32)    { p.store.setFloatPage(v) }
func (p *ColumnPage) SetDoublePage(v []float64)   { p.store.setDoublePage(v) }
func (p *ColumnPage) SetByteArrayPage(v [][]byte) { p.store.setByteArrayPage(v) }

// Bulk accessors expose the whole page in its storage representation.

func (p *ColumnPage) BytePage() []int8        { return p.store.bytePage() }
func (p *ColumnPage) ShortPage() []int16      { return p.store.shortPage() }
func (p *ColumnPage) ShortIntPage() []byte    { return p.store.shortIntPage() }
func (p *ColumnPage) IntPage() []int32        { return p.store.intPage() }
func (p *ColumnPage) LongPage() []int64       { return p.store.longPage() }
func (p *ColumnPage) FloatPage() []float32    { return p.store.floatPage() }
func (p *ColumnPage) DoublePage() []float64   { return p.store.doublePage() }
func (p *ColumnPage) ByteArrayPage() [][]byte { return p.store.byteArrayPage() }

// LVFlattenedBytePage returns the rows of a variable-length page as one
// contiguous buffer of big-endian int32 length prefixes followed by value
// bytes.
func (p *ColumnPage) LVFlattenedBytePage() []byte { return p.store.lvFlattenedBytePage() }

// DirectFlattenedBytePage returns the concatenated value bytes with no
// prefixes; lengths travel in an external side channel.
func (p *ColumnPage) DirectFlattenedBytePage() []byte { return p.store.directFlattenedBytePage() }

// DecimalPage returns the stored decimal rows in LV-flattened form.
func (p *ColumnPage) DecimalPage() []byte { return p.store.lvFlattenedBytePage() }

// FreeMemory releases the backing store. Required exactly once for unsafe
// pages; harmless for managed ones. The page must not be read afterwards.
func (p *ColumnPage) FreeMemory() { p.store.freeMemory() }

// Compress encodes the page's storage representation with the given codec,
// choosing the bulk accessor matching the page type. Variable-length pages
// are LV-flattened first; decimal pages compress their compact unscaled rows.
func (p *ColumnPage) Compress(codec compress.Codec) ([]byte, error) {
	switch p.dataType {
	case Byte:
		return codec.Encode(nil, unsafecast.Slice[byte](p.store.bytePage()))
	case Short:
		return codec.Encode(nil, unsafecast.Slice[byte](p.store.shortPage()))
	case ShortInt:
		return codec.Encode(nil, p.store.shortIntPage())
	case Int, Timestamp, Date:
		return codec.Encode(nil, unsafecast.Slice[byte](p.store.intPage()))
	case Long:
		return codec.Encode(nil, unsafecast.Slice[byte](p.store.longPage()))
	case Float:
		return codec.Encode(nil, unsafecast.Slice[byte](p.store.floatPage()))
	case Double:
		return codec.Encode(nil, unsafecast.Slice[byte](p.store.doublePage()))
	case DecimalType, String, ByteArray:
		return codec.Encode(nil, p.store.lvFlattenedBytePage())
	default:
		return nil, unsupportedType("compress", p.dataType)
	}
}

// Decompress decodes raw bytes with the codec and builds a page of the given
// type from the recovered values. Decimal pages go through DecompressDecimal
// so scale and precision can be re-applied.
func Decompress(cfg PageConfig, codec compress.Codec, dataType DataType, data []byte, offset, length int) (*ColumnPage, error) {
	raw, err := codec.Decode(nil, data[offset:offset+length])
	if err != nil {
		return nil, err
	}
	switch dataType {
	case Byte:
		return pageFromSlice(cfg, dataType, copySlice[int8](raw))
	case Short:
		return pageFromSlice(cfg, dataType, copySlice[int16](raw))
	case ShortInt:
		if len(raw)%3 != 0 {
			return nil, fmt.Errorf("columnar: short-int page of %d bytes is not a whole number of rows", len(raw))
		}
		page, err := newPage(cfg, dataType, len(raw)/3, -1, -1, true)
		if err != nil {
			return nil, err
		}
		page.store.setShortIntPage(append([]byte(nil), raw...))
		return page, nil
	case Int, Timestamp, Date:
		return pageFromSlice(cfg, dataType, copySlice[int32](raw))
	case Long:
		return pageFromSlice(cfg, dataType, copySlice[int64](raw))
	case Float:
		return pageFromSlice(cfg, dataType, copySlice[float32](raw))
	case Double:
		return pageFromSlice(cfg, dataType, copySlice[float64](raw))
	case String, ByteArray:
		rows, err := splitLV(raw)
		if err != nil {
			return nil, err
		}
		page, err := newPage(cfg, dataType, len(rows), -1, -1, true)
		if err != nil {
			return nil, err
		}
		page.store.setByteArrayPage(rows)
		return page, nil
	default:
		return nil, unsupportedType("decompress", dataType)
	}
}

// DecompressDecimal rebuilds a decimal page from compressed LV-flattened
// unscaled rows, reattaching the converter for the given scale and precision.
func DecompressDecimal(cfg PageConfig, codec compress.Codec, data []byte, offset, length, scale, precision int) (*ColumnPage, error) {
	raw, err := codec.Decode(nil, data[offset:offset+length])
	if err != nil {
		return nil, err
	}
	rows, err := splitLV(raw)
	if err != nil {
		return nil, err
	}
	page, err := newPage(cfg, DecimalType, len(rows), scale, precision, true)
	if err != nil {
		return nil, err
	}
	page.store.setByteArrayPage(rows)
	return page, nil
}

// DecompressString rebuilds a string page from a compressed direct-flattened
// buffer plus the per-row lengths side channel.
func DecompressString(cfg PageConfig, codec compress.Codec, data []byte, offset, length int, lengths []int32) (*ColumnPage, error) {
	raw, err := codec.Decode(nil, data[offset:offset+length])
	if err != nil {
		return nil, err
	}
	rows := make([][]byte, len(lengths))
	pos := 0
	for i, n := range lengths {
		end := pos + int(n)
		if end > len(raw) {
			return nil, fmt.Errorf("columnar: string page lengths overrun flattened data (%d > %d)", end, len(raw))
		}
		rows[i] = raw[pos:end:end]
		pos = end
	}
	if pos != len(raw) {
		return nil, fmt.Errorf("columnar: string page lengths cover %d of %d flattened bytes", pos, len(raw))
	}
	page, err := newPage(cfg, String, len(rows), -1, -1, true)
	if err != nil {
		return nil, err
	}
	page.store.setByteArrayPage(rows)
	return page, nil
}

// copySlice reinterprets raw bytes as values of T in their own allocation, so
// the page does not alias a codec-owned buffer.
func copySlice[T int8 | int16 | int32 | int64 | float32 | float64](raw []byte) []T {
	view := unsafecast.Slice[T](raw)
	vals := make([]T, len(view))
	copy(vals, view)
	return vals
}

func pageFromSlice[T int8 | int16 | int32 | int64 | float32 | float64](cfg PageConfig, dataType DataType, vals []T) (*ColumnPage, error) {
	page, err := newPage(cfg, dataType, len(vals), -1, -1, true)
	if err != nil {
		return nil, err
	}
	switch v := any(vals).(type) {
	case []int8:
		page.store.setBytePage(v)
	case []int16:
		page.store.setShortPage(v)
	case []int32:
		page.store.setIntPage(v)
	case []int64:
		page.store.setLongPage(v)
	case []float32:
		page.store.setFloatPage(v)
	case []float64:
		page.store.setDoublePage(v)
	}
	return page, nil
}

// appendLV appends one LV-encoded row to dst.
func appendLV(dst, row []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(int32(len(row))))
	return append(dst, row...)
}

// splitLV slices an LV-flattened buffer back into rows. The rows alias the
// input buffer.
func splitLV(raw []byte) ([][]byte, error) {
	var rows [][]byte
	pos := 0
	for pos < len(raw) {
		if pos+4 > len(raw) {
			return nil, fmt.Errorf("columnar: truncated LV length prefix at offset %d", pos)
		}
		n := int(int32(binary.BigEndian.Uint32(raw[pos:])))
		pos += 4
		if n < 0 || pos+n > len(raw) {
			return nil, fmt.Errorf("columnar: LV value of %d bytes overruns buffer at offset %d", n, pos)
		}
		rows = append(rows, raw[pos:pos+n:pos+n])
		pos += n
	}
	return rows, nil
}
