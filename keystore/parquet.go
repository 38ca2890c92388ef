// Package keystore persists encoded row keys and label rows into parquet,
// the columnar storage side of the pipeline.
//
// Two layouts are supported: a single binary column of codec-encoded primary
// keys, and a map<string,string> column of raw label pairs for systems that
// prefer to defer encoding.
package keystore

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/arloliu/tsid/encoding"
	"github.com/arloliu/tsid/errs"
)

// KeyRecord is one parquet row holding a codec-encoded primary key.
type KeyRecord struct {
	PrimaryKey []byte `parquet:"primary_key"`
}

// LabelRecord is one parquet row holding the raw label name/value pairs.
type LabelRecord struct {
	Labels map[string]string `parquet:"labels"`
}

// WriteKeys encodes every row with codec and writes the resulting keys as a
// single binary parquet column to w.
func WriteKeys(w io.Writer, codec encoding.RowCodec, rows []encoding.Row) error {
	records := make([]KeyRecord, len(rows))
	for i, row := range rows {
		key, err := encoding.EncodeToBytes(codec, row)
		if err != nil {
			return fmt.Errorf("keystore: encode row %d with %s: %w", i, codec.Name(), err)
		}
		records[i] = KeyRecord{PrimaryKey: key}
	}

	writer := parquet.NewGenericWriter[KeyRecord](w)
	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("keystore: write keys: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("keystore: close writer: %w", err)
	}

	return nil
}

// ReadKeys reads back the primary keys written by WriteKeys.
func ReadKeys(r io.ReaderAt, size int64) ([][]byte, error) {
	records, err := parquet.Read[KeyRecord](r, size)
	if err != nil {
		return nil, fmt.Errorf("keystore: read keys: %w", err)
	}

	keys := make([][]byte, len(records))
	for i, record := range records {
		keys[i] = record.PrimaryKey
	}

	return keys, nil
}

// WriteLabelMap writes each row's labels as a map column keyed by label
// name. Every value row must have exactly one value per name.
func WriteLabelMap(w io.Writer, names []string, values [][]string) error {
	records := make([]LabelRecord, len(values))
	for i, row := range values {
		if len(row) != len(names) {
			return fmt.Errorf("%w: row %d has %d values for %d names",
				errs.ErrInvalidLabelCount, i, len(row), len(names))
		}

		labels := make(map[string]string, len(names))
		for j, name := range names {
			labels[name] = row[j]
		}
		records[i] = LabelRecord{Labels: labels}
	}

	writer := parquet.NewGenericWriter[LabelRecord](w)
	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("keystore: write label map: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("keystore: close writer: %w", err)
	}

	return nil
}
