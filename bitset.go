package columnar

import "math/bits"

// Bitset records which rows of a page hold a logical null. Bits are stored in
// 64-bit words, least significant bit first within each word.
type Bitset struct {
	words []uint64
	size  int
}

// NewBitset returns a bitset able to hold n bits, all clear.
func NewBitset(n int) *Bitset {
	return &Bitset{
		words: make([]uint64, (n+63)/64),
		size:  n,
	}
}

func (b *Bitset) Set(i int)      { b.words[i>>6] |= 1 << (i & 63) }
func (b *Bitset) Get(i int) bool { return b.words[i>>6]&(1<<(i&63)) != 0 }

// Len returns the number of bits the set was created for.
func (b *Bitset) Len() int { return b.size }

// Cardinality returns the number of set bits.
func (b *Bitset) Cardinality() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Words exposes the backing words; the slice is shared, not copied.
func (b *Bitset) Words() []uint64 { return b.words }
