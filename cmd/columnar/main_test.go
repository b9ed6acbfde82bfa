package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/columnar-go/columnar"
)

// The report is built from fixed sample data, so two runs must print the
// same bytes. A diff here means a codec or the page layer is producing
// non-deterministic output.
func TestRunIsDeterministic(t *testing.T) {
	var first, second strings.Builder
	if err := run(&first); err != nil {
		t.Fatal(err)
	}
	if err := run(&second); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		edits := myers.ComputeEdits(span.URIFromPath("first.txt"), first.String(), second.String())
		diff := fmt.Sprint(gotextdiff.ToUnified("first.txt", "second.txt", first.String(), edits))
		t.Errorf("\n%s", diff)
	}
}

func TestRunCoversAllTypesAndCodecs(t *testing.T) {
	var out strings.Builder
	if err := run(&out); err != nil {
		t.Fatal(err)
	}
	report := out.String()
	for _, want := range []string{
		"BYTE", "SHORT", "SHORT_INT", "INT", "LONG", "FLOAT", "DOUBLE", "STRING",
		"UNCOMPRESSED", "SNAPPY", "GZIP", "ZSTD", "LZ4", "BROTLI",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report is missing %q", want)
		}
	}
}

func TestSamplePageRawSize(t *testing.T) {
	page, raw, err := samplePage(columnar.Int)
	if err != nil {
		t.Fatal(err)
	}
	if want := sampleRows * columnar.Int.Size(); raw != want {
		t.Errorf("raw size = %d, want %d", raw, want)
	}
	if got := page.GetInt(1); got != 37 {
		t.Errorf("sample row 1 = %d, want 37", got)
	}
}
