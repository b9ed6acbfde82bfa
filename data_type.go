package columnar

import "fmt"

// DataType is the logical type of the values held by a column page.
type DataType int

const (
	Byte DataType = iota
	Short
	// ShortInt is a 3-byte packed integer covering [-8388608, 8388607].
	ShortInt
	Int
	Long
	Float
	Double
	// DecimalType is named apart from the Decimal value type it stores.
	DecimalType
	String
	ByteArray
	// Timestamp and Date are stored with Int width.
	Timestamp
	Date
)

func (t DataType) String() string {
	switch t {
	case Byte:
		return "BYTE"
	case Short:
		return "SHORT"
	case ShortInt:
		return "SHORT_INT"
	case Int:
		return "INT"
	case Long:
		return "LONG"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case DecimalType:
		return "DECIMAL"
	case String:
		return "STRING"
	case ByteArray:
		return "BYTE_ARRAY"
	case Timestamp:
		return "TIMESTAMP"
	case Date:
		return "DATE"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// Size returns the storage width in bytes of a fixed-width type, or -1 for
// variable-width types.
func (t DataType) Size() int {
	switch t {
	case Byte:
		return 1
	case Short:
		return 2
	case ShortInt:
		return 3
	case Int, Timestamp, Date:
		return 4
	case Long:
		return 8
	case Float:
		return 4
	case Double:
		return 8
	default:
		return -1
	}
}

// IsFixed reports whether values of this type occupy a fixed number of bytes.
func (t DataType) IsFixed() bool { return t.Size() > 0 }

// IsInteger reports whether the type is one of the integral widths handled by
// the adaptive integer codec.
func (t DataType) IsInteger() bool {
	switch t {
	case Byte, Short, ShortInt, Int, Long, Timestamp, Date:
		return true
	default:
		return false
	}
}

const (
	// MaxShortInt and MinShortInt bound the 3-byte packed integer type.
	MaxShortInt = 1<<23 - 1
	MinShortInt = -1 << 23
)

// packShortInt writes v as 3 big-endian bytes of two's complement.
func packShortInt(b []byte, v int32) {
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

// unpackShortInt reads a sign-extended value written by packShortInt.
func unpackShortInt(b []byte) int32 {
	v := int32(b[0])<<16 | int32(b[1])<<8 | int32(b[2])
	return v << 8 >> 8
}
