package columnar

import "testing"

func TestShortIntPacking(t *testing.T) {
	values := []int32{0, 1, -1, 127, -128, 8388607, -8388608, 42424, -42424}
	buf := make([]byte, 3)
	for _, v := range values {
		packShortInt(buf, v)
		if got := unpackShortInt(buf); got != v {
			t.Errorf("pack/unpack %d: got %d", v, got)
		}
	}
}

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dataType DataType
		size     int
	}{
		{Byte, 1},
		{Short, 2},
		{ShortInt, 3},
		{Int, 4},
		{Long, 8},
		{Float, 4},
		{Double, 8},
		{Timestamp, 4},
		{Date, 4},
		{DecimalType, -1},
		{String, -1},
		{ByteArray, -1},
	}
	for _, test := range tests {
		if got := test.dataType.Size(); got != test.size {
			t.Errorf("%s size = %d, want %d", test.dataType, got, test.size)
		}
		if got, want := test.dataType.IsFixed(), test.size > 0; got != want {
			t.Errorf("%s IsFixed = %v, want %v", test.dataType, got, want)
		}
	}
}

// The decimal data type and the Decimal value it stores are distinct names;
// a page typed DecimalType must accept Decimal values.
func TestDecimalTypeNaming(t *testing.T) {
	if got := DecimalType.String(); got != "DECIMAL" {
		t.Errorf("DecimalType.String() = %q, want DECIMAL", got)
	}
	page, err := NewDecimalPage(PageConfig{}, 1, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if page.DataType() != DecimalType {
		t.Errorf("decimal page type = %s, want DECIMAL", page.DataType())
	}
	if err := page.PutData(0, DecimalFromInt64(123, 2)); err != nil {
		t.Fatal(err)
	}
	if got := page.GetDecimal(0); got.Cmp(DecimalFromInt64(123, 2)) != 0 {
		t.Errorf("round trip = %s, want 1.23", got)
	}
}
