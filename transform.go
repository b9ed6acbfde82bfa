package columnar

// Transform is the lossless value transform a codec applies before narrowing
// page values, and reverts on read through the lazy widening view.
type Transform int

const (
	// TransformNone stores values as-is; narrowing is a plain cast.
	TransformNone Transform = iota
	// TransformMaxDelta stores the distance below the page maximum, which
	// keeps non-negative values small when the range is tight.
	TransformMaxDelta
)

// Apply maps a wide value to its stored form. The caller guarantees the
// result fits in the chosen target width.
func (t Transform) Apply(wide, param int64) int64 {
	if t == TransformMaxDelta {
		return param - wide
	}
	return wide
}

// Revert is the exact inverse of Apply.
func (t Transform) Revert(narrow, param int64) int64 {
	if t == TransformMaxDelta {
		return param - narrow
	}
	return narrow
}

// ValueConverter rewrites page values in place, one row at a time. Integral
// widths funnel through ConvertLong, floating widths through ConvertDouble.
type ValueConverter interface {
	ConvertLong(rowID int, v int64) int64
	ConvertDouble(rowID int, v float64) float64
}

// ConvertValue applies the converter over every row in place without
// changing the page's length or null bits.
func (p *ColumnPage) ConvertValue(conv ValueConverter) error {
	switch p.dataType {
	case Byte, Short, ShortInt, Int, Long, Timestamp, Date:
		for i := 0; i < p.pageSize; i++ {
			p.writeLongValue(i, conv.ConvertLong(i, p.readLongValue(i)))
		}
	case Float:
		for i := 0; i < p.pageSize; i++ {
			p.store.putFloat(i, float32(conv.ConvertDouble(i, float64(p.store.getFloat(i)))))
		}
	case Double:
		for i := 0; i < p.pageSize; i++ {
			p.store.putDouble(i, conv.ConvertDouble(i, p.store.getDouble(i)))
		}
	default:
		return unsupportedType("convert", p.dataType)
	}
	return nil
}

// TransformAndCastTo rewrites the page in place into the target integral
// width, applying the transform to every value. The caller selects a target
// the transformed values fit in; out-of-range selections are a caller bug and
// values are truncated, not checked.
func (p *ColumnPage) TransformAndCastTo(t Transform, param int64, target DataType) error {
	if !p.dataType.IsInteger() || !target.IsInteger() {
		return unsupportedType("transform "+p.dataType.String()+" to", target)
	}
	store, err := newFixedStore(p.cfg, target, p.pageSize)
	if err != nil {
		return err
	}
	for i := 0; i < p.pageSize; i++ {
		writeLongTo(store, target, i, t.Apply(p.readLongValue(i), param))
	}
	p.store.freeMemory()
	p.store = store
	p.dataType = target
	return nil
}

// readLongValue widens the stored integral value at rowID.
func (p *ColumnPage) readLongValue(rowID int) int64 {
	switch p.dataType {
	case Byte:
		return int64(p.store.getByte(rowID))
	case Short:
		return int64(p.store.getShort(rowID))
	case ShortInt:
		return int64(p.store.getShortInt(rowID))
	case Int, Timestamp, Date:
		return int64(p.store.getInt(rowID))
	case Long:
		return p.store.getLong(rowID)
	default:
		panic("columnar: integral read on " + p.dataType.String() + " page")
	}
}

func (p *ColumnPage) writeLongValue(rowID int, v int64) {
	writeLongTo(p.store, p.dataType, rowID, v)
}

func writeLongTo(store pageStore, dataType DataType, rowID int, v int64) {
	switch dataType {
	case Byte:
		store.putByte(rowID, int8(v))
	case Short:
		store.putShort(rowID, int16(v))
	case ShortInt:
		store.putShortInt(rowID, int32(v))
	case Int, Timestamp, Date:
		store.putInt(rowID, int32(v))
	case Long:
		store.putLong(rowID, v)
	default:
		panic("columnar: integral write on " + dataType.String() + " page")
	}
}
