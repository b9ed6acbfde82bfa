// Package encoding implements the page codec layer: stateless
// transform-and-compress / decompress-and-widen pairs that narrow a page's
// storage width based on its collected statistics before handing the bytes
// to a general-purpose compressor.
package encoding

import (
	"fmt"
	"math"

	"github.com/columnar-go/columnar"
	"github.com/columnar-go/columnar/compress"
)

// PageCodec encodes a populated column page into one compressed buffer and
// decodes it back into a readable page. Implementations hold configuration
// only; encode and decode are safe to invoke repeatedly.
type PageCodec interface {
	Name() string

	// Encode transforms the page in place to the codec's target
	// representation and compresses it.
	Encode(page *columnar.ColumnPage) ([]byte, error)

	// Decode decompresses the window data[offset:offset+length] and returns
	// a page typed at the original logical data type.
	Decode(data []byte, offset, length int) (*columnar.ColumnPage, error)
}

// AdaptiveInteger narrows integral pages to the target width chosen by the
// caller from the page's statistics, e.g. an int column whose observed range
// fits in a byte. It trusts the caller's width selection; values outside the
// target range are a selection bug, not a handled condition.
type AdaptiveInteger struct {
	cfg        columnar.PageConfig
	srcType    columnar.DataType
	targetType columnar.DataType
	stats      columnar.StatsResult
	codec      compress.Codec
}

// NewAdaptiveInteger builds the codec for one (source, target, statistics)
// triple. The statistics are the ones captured while the page was populated
// and are carried to the decode side verbatim.
func NewAdaptiveInteger(cfg columnar.PageConfig, srcType, targetType columnar.DataType, stats columnar.StatsResult, codec compress.Codec) (*AdaptiveInteger, error) {
	if !srcType.IsInteger() || !targetType.IsInteger() {
		return nil, fmt.Errorf("encoding: adaptive integer codec over %s to %s", srcType, targetType)
	}
	return &AdaptiveInteger{
		cfg:        cfg,
		srcType:    srcType,
		targetType: targetType,
		stats:      stats,
		codec:      codec,
	}, nil
}

func (c *AdaptiveInteger) Name() string { return "AdaptiveIntegerCodec" }

func (c *AdaptiveInteger) Encode(page *columnar.ColumnPage) ([]byte, error) {
	if err := page.TransformAndCastTo(columnar.TransformNone, 0, c.targetType); err != nil {
		return nil, err
	}
	return page.Compress(c.codec)
}

func (c *AdaptiveInteger) Decode(data []byte, offset, length int) (*columnar.ColumnPage, error) {
	page, err := columnar.Decompress(c.cfg, c.codec, c.targetType, data, offset, length)
	if err != nil {
		return nil, err
	}
	return columnar.NewLazyPage(page, columnar.TransformNone, 0, c.srcType, c.stats), nil
}

// TargetTypeOf returns the narrowest integral width that holds every value
// of an integral page's observed [min, max] range.
func TargetTypeOf(stats columnar.StatsResult) (columnar.DataType, error) {
	min, err := statLong(stats.Min())
	if err != nil {
		return 0, err
	}
	max, err := statLong(stats.Max())
	if err != nil {
		return 0, err
	}
	switch {
	case min >= math.MinInt8 && max <= math.MaxInt8:
		return columnar.Byte, nil
	case min >= math.MinInt16 && max <= math.MaxInt16:
		return columnar.Short, nil
	case min >= columnar.MinShortInt && max <= columnar.MaxShortInt:
		return columnar.ShortInt, nil
	case min >= math.MinInt32 && max <= math.MaxInt32:
		return columnar.Int, nil
	default:
		return columnar.Long, nil
	}
}

func statLong(v any) (int64, error) {
	switch v := v.(type) {
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf("encoding: non-integral statistics value %T", v)
	}
}
