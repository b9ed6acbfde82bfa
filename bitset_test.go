package columnar

import "testing"

func TestBitset(t *testing.T) {
	b := NewBitset(200)
	if b.Len() != 200 {
		t.Fatalf("Len = %d, want 200", b.Len())
	}
	for _, i := range []int{0, 63, 64, 127, 199} {
		b.Set(i)
	}
	if got := b.Cardinality(); got != 5 {
		t.Errorf("Cardinality = %d, want 5", got)
	}
	for _, i := range []int{0, 63, 64, 127, 199} {
		if !b.Get(i) {
			t.Errorf("bit %d not set", i)
		}
	}
	for _, i := range []int{1, 62, 65, 128, 198} {
		if b.Get(i) {
			t.Errorf("bit %d unexpectedly set", i)
		}
	}
}
