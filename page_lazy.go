package columnar

// NewLazyPage wraps a decoded narrow page in a view typed at the original
// logical data type. Widened values are re-derived on every read by reverting
// the codec's transform; nothing is materialized or cached, so the view is
// indistinguishable from a materialized page except by performance.
func NewLazyPage(inner *ColumnPage, t Transform, param int64, dataType DataType, stats StatsResult) *ColumnPage {
	return &ColumnPage{
		dataType:  dataType,
		pageSize:  inner.pageSize,
		scale:     inner.scale,
		precision: inner.precision,
		cfg:       inner.cfg,
		nullBits:  inner.nullBits,
		statsView: stats,
		store: &lazyStore{
			noStore:   noStore{kind: "lazy " + dataType.String()},
			inner:     inner,
			transform: t,
			param:     param,
		},
	}
}

// lazyStore serves widened reads over the narrow page. Writes are not
// supported; the view is a decode-side artifact.
type lazyStore struct {
	noStore
	inner     *ColumnPage
	transform Transform
	param     int64
}

func (s *lazyStore) wide(rowID int) int64 {
	return s.transform.Revert(s.inner.readLongValue(rowID), s.param)
}

func (s *lazyStore) getByte(rowID int) int8      { return int8(s.wide(rowID)) }
func (s *lazyStore) getShort(rowID int) int16    { return int16(s.wide(rowID)) }
func (s *lazyStore) getShortInt(rowID int) int32 { return int32(s.wide(rowID)) }
func (s *lazyStore) getInt(rowID int) int32      { return int32(s.wide(rowID)) }
func (s *lazyStore) getLong(rowID int) int64     { return s.wide(rowID) }
func (s *lazyStore) getDouble(rowID int) float64 { return float64(s.wide(rowID)) }

func (s *lazyStore) freeMemory() { s.inner.FreeMemory() }
