// Package labelcsv reads label data from CSV files, optionally
// gzip-compressed, and computes the schema seed while reading.
//
// The CSV header row is the label schema: column position defines the
// implicit column-id-to-name mapping. Every data row carries one value per
// label.
package labelcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/arloliu/tsid"
	"github.com/arloliu/tsid/encoding"
	"github.com/arloliu/tsid/hash"
)

// Labels holds a complete label data set: the schema, its seed under the
// algorithm used while reading, and the per-row value lists.
type Labels struct {
	Names    []string
	NameHash uint64
	Values   [][]string
}

// RowAt converts row idx into an encoding.Row with positional column ids.
func (l *Labels) RowAt(idx int) encoding.Row {
	values := l.Values[idx]
	row := make(encoding.Row, len(values))
	for i, value := range values {
		row[i] = encoding.Field{ColumnID: uint32(i), Value: value} //nolint:gosec
	}

	return row
}

// Read parses CSV label data from r and hashes the header into the schema
// seed using alg.
//
// The encoding/csv reader enforces that every row has the header's field
// count, so Values rows always align positionally with Names.
func Read(r io.Reader, alg hash.Algorithm) (*Labels, error) {
	reader := csv.NewReader(r)

	names, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("label csv: missing header row")
		}

		return nil, fmt.Errorf("label csv: read header: %w", err)
	}

	labels := &Labels{
		Names:    names,
		NameHash: tsid.SchemaSeed(alg, names),
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("label csv: read row %d: %w", len(labels.Values)+1, err)
		}

		labels.Values = append(labels.Values, record)
	}

	return labels, nil
}

// ReadFile reads label data from path, transparently decompressing files
// with a .gz suffix.
func ReadFile(path string, alg hash.Algorithm) (*Labels, error) {
	reader, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return Read(reader, alg)
}

// Open opens path for reading, wrapping it in a gzip decompressor when the
// name ends in .gz. The returned ReadCloser closes both layers.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, ".gz") {
		return file, nil
	}

	gz, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("label csv: open gzip %s: %w", path, err)
	}

	return &gzipReadCloser{gz: gz, file: file}, nil
}

type gzipReadCloser struct {
	gz   *gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) {
	return g.gz.Read(p)
}

func (g *gzipReadCloser) Close() error {
	gzErr := g.gz.Close()
	fileErr := g.file.Close()
	if gzErr != nil {
		return gzErr
	}

	return fileErr
}
