// Command columnar inspects the page encode pipeline: it builds one sample
// page per data type, runs it through every registered byte codec, and
// prints the resulting sizes and compression ratios.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/columnar-go/columnar"
	"github.com/columnar-go/columnar/compress"
	"github.com/columnar-go/columnar/compress/brotli"
	"github.com/columnar-go/columnar/compress/gzip"
	"github.com/columnar-go/columnar/compress/lz4"
	"github.com/columnar-go/columnar/compress/snappy"
	"github.com/columnar-go/columnar/compress/uncompressed"
	"github.com/columnar-go/columnar/compress/zstd"
)

const sampleRows = 1024

var codecs = []compress.Codec{
	new(uncompressed.Codec),
	new(snappy.Codec),
	new(gzip.Codec),
	new(zstd.Codec),
	new(lz4.Codec),
	new(brotli.Codec),
}

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "columnar:", err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("TYPE", "CODEC", "RAW", "ENCODED", "RATIO")

	for _, dataType := range []columnar.DataType{
		columnar.Byte,
		columnar.Short,
		columnar.ShortInt,
		columnar.Int,
		columnar.Long,
		columnar.Float,
		columnar.Double,
		columnar.String,
	} {
		page, raw, err := samplePage(dataType)
		if err != nil {
			return err
		}
		for _, codec := range codecs {
			encoded, err := page.Compress(codec)
			if err != nil {
				return err
			}
			err = table.Append([]string{
				dataType.String(),
				codec.String(),
				fmt.Sprintf("%d", raw),
				fmt.Sprintf("%d", len(encoded)),
				fmt.Sprintf("%.2f%%", float64(len(encoded))/float64(raw)*100),
			})
			if err != nil {
				return err
			}
		}
	}

	return table.Render()
}

// samplePage fills a page with a deterministic low-entropy value pattern and
// returns it with its raw storage size.
func samplePage(dataType columnar.DataType) (*columnar.ColumnPage, int, error) {
	page, err := columnar.NewPage(columnar.PageConfig{}, dataType, sampleRows)
	if err != nil {
		return nil, 0, err
	}
	for i := 0; i < sampleRows; i++ {
		var value any
		switch dataType {
		case columnar.Byte:
			value = int8(i % 100)
		case columnar.Short:
			value = int16(i % 1000)
		case columnar.ShortInt, columnar.Int:
			value = int32(i * 37 % 100000)
		case columnar.Long:
			value = int64(i) * 1000003
		case columnar.Float:
			value = float32(i) / 4
		case columnar.Double:
			value = float64(i) / 8
		case columnar.String:
			value = []byte(fmt.Sprintf("row-%04d", i%64))
		}
		if err := page.PutData(i, value); err != nil {
			return nil, 0, err
		}
	}
	raw := sampleRows * dataType.Size()
	if !dataType.IsFixed() {
		raw = len(page.LVFlattenedBytePage())
	}
	return page, raw, nil
}
