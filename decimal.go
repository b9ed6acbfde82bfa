package columnar

import (
	"fmt"
	"math/big"
	"strings"
)

// Decimal is a fixed-scale decimal value: unscaled integer times 10^-scale.
// Within one page all values carry the page's scale.
type Decimal struct {
	unscaled *big.Int
	scale    int32
}

// NewDecimal returns a decimal from an arbitrary-precision unscaled value.
// The unscaled integer is not copied.
func NewDecimal(unscaled *big.Int, scale int32) Decimal {
	return Decimal{unscaled: unscaled, scale: scale}
}

// DecimalFromInt64 returns a decimal from an int64 unscaled value.
func DecimalFromInt64(unscaled int64, scale int32) Decimal {
	return Decimal{unscaled: big.NewInt(unscaled), scale: scale}
}

// DecimalZero returns the zero decimal at the given scale, used as the stored
// default for null decimal rows.
func DecimalZero(scale int32) Decimal {
	return Decimal{unscaled: new(big.Int), scale: scale}
}

// Unscaled returns the unscaled integer; the value is shared, not copied.
func (d Decimal) Unscaled() *big.Int { return d.unscaled }

func (d Decimal) Scale() int32 { return d.scale }

// Int64 returns the unscaled value as int64 when it fits.
func (d Decimal) Int64() (int64, bool) {
	if d.unscaled == nil {
		return 0, true
	}
	return d.unscaled.Int64(), d.unscaled.IsInt64()
}

// Cmp compares two decimals of the same scale by their unscaled values.
// Decimals of different scales are aligned before comparing.
func (d Decimal) Cmp(other Decimal) int {
	if d.scale == other.scale {
		return d.big().Cmp(other.big())
	}
	a, b := d.big(), other.big()
	if d.scale < other.scale {
		a = new(big.Int).Mul(a, pow10(other.scale-d.scale))
	} else {
		b = new(big.Int).Mul(b, pow10(d.scale-other.scale))
	}
	return a.Cmp(b)
}

func (d Decimal) big() *big.Int {
	if d.unscaled == nil {
		return new(big.Int)
	}
	return d.unscaled
}

func (d Decimal) String() string {
	u := d.big()
	if d.scale <= 0 {
		return u.String()
	}
	s := new(big.Int).Abs(u).String()
	if n := int(d.scale) + 1 - len(s); n > 0 {
		s = strings.Repeat("0", n) + s
	}
	dot := len(s) - int(d.scale)
	s = s[:dot] + "." + s[dot:]
	if u.Sign() < 0 {
		s = "-" + s
	}
	return s
}

func pow10(n int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// DecimalConverter converts between a decimal value and the compact unscaled
// byte representation stored in decimal pages. The representation for a given
// (scale, precision) pair is fixed, so encode and decode are exact inverses.
type DecimalConverter interface {
	// Encode returns the stored bytes for d.
	Encode(d Decimal) []byte
	// Decode rebuilds the decimal from stored bytes.
	Decode(b []byte) Decimal
}

// NewDecimalConverter selects the converter for the given scale and
// precision: a fixed-width int64-backed form for precisions that fit in 18
// digits, an arbitrary-length two's complement form above that.
func NewDecimalConverter(scale, precision int) DecimalConverter {
	if precision <= 18 {
		return &compactDecimalConverter{
			scale: int32(scale),
			width: minBytesForPrecision(precision),
		}
	}
	return &bytesDecimalConverter{scale: int32(scale)}
}

// minBytesForPrecision returns the smallest byte width whose signed range
// covers every value of the given decimal precision.
func minBytesForPrecision(precision int) int {
	bound := new(big.Int).Sub(pow10(int32(precision)), big.NewInt(1))
	for width := 1; ; width++ {
		max := new(big.Int).Lsh(big.NewInt(1), uint(8*width-1))
		max.Sub(max, big.NewInt(1))
		if bound.Cmp(max) <= 0 {
			return width
		}
	}
}

// compactDecimalConverter stores the unscaled value as a fixed number of
// big-endian two's complement bytes.
type compactDecimalConverter struct {
	scale int32
	width int
}

func (c *compactDecimalConverter) Encode(d Decimal) []byte {
	v, ok := d.Int64()
	if !ok {
		panic(fmt.Sprintf("columnar: decimal %s exceeds compact converter range", d))
	}
	b := make([]byte, c.width)
	for i := c.width - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

func (c *compactDecimalConverter) Decode(b []byte) Decimal {
	var v int64
	if len(b) > 0 && b[0]&0x80 != 0 {
		v = -1
	}
	for _, x := range b {
		v = v<<8 | int64(x)
	}
	return DecimalFromInt64(v, c.scale)
}

// bytesDecimalConverter stores the unscaled value as minimal-length
// big-endian two's complement bytes.
type bytesDecimalConverter struct {
	scale int32
}

func (c *bytesDecimalConverter) Encode(d Decimal) []byte {
	return bigToTwosComplement(d.big())
}

func (c *bytesDecimalConverter) Decode(b []byte) Decimal {
	return NewDecimal(twosComplementToBig(b), c.scale)
}

func bigToTwosComplement(v *big.Int) []byte {
	if v.Sign() >= 0 {
		b := v.Bytes()
		if len(b) == 0 || b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	}
	// Negative values need bitlen(-v-1)+1 bits.
	w := new(big.Int).Neg(v)
	w.Sub(w, big.NewInt(1))
	width := (w.BitLen() + 1 + 7) / 8
	if width == 0 {
		width = 1
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*width))
	mod.Add(mod, v)
	b := make([]byte, width)
	mod.FillBytes(b)
	return b
}

func twosComplementToBig(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	if len(b) > 0 && b[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(b)))
		v.Sub(v, mod)
	}
	return v
}
