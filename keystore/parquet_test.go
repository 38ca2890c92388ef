package keystore

import (
	"bytes"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsid/encoding"
	"github.com/arloliu/tsid/errs"
)

func testRows() []encoding.Row {
	return []encoding.Row{
		{
			{ColumnID: 0, Value: "web-01"},
			{ColumnID: 1, Value: "us-east"},
		},
		{
			{ColumnID: 0, Value: "db-01"},
			{ColumnID: 1, Value: "eu-west"},
		},
	}
}

func TestWriteReadKeys(t *testing.T) {
	codec := encoding.NewLengthPrefixedCodec()
	rows := testRows()

	var buf bytes.Buffer
	require.NoError(t, WriteKeys(&buf, codec, rows))

	keys, err := ReadKeys(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, keys, len(rows))

	for i, key := range keys {
		decoded, err := codec.Decode(key)
		require.NoError(t, err)
		require.Equal(t, rows[i], decoded)
	}
}

func TestWriteKeys_MemcomparableKeysStaySorted(t *testing.T) {
	codec := encoding.NewMemcomparableCodec()
	rows := testRows()

	var buf bytes.Buffer
	require.NoError(t, WriteKeys(&buf, codec, rows))

	keys, err := ReadKeys(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, keys, len(rows))

	// Row order is preserved through the parquet roundtrip.
	for i, row := range rows {
		want, err := codec.Encode(nil, row)
		require.NoError(t, err)
		require.Equal(t, want, keys[i])
	}
}

func TestWriteLabelMap(t *testing.T) {
	names := []string{"host", "region"}
	values := [][]string{
		{"web-01", "us-east"},
		{"db-01", "eu-west"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLabelMap(&buf, names, values))

	records, err := parquet.Read[LabelRecord](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, map[string]string{"host": "web-01", "region": "us-east"}, records[0].Labels)
	require.Equal(t, map[string]string{"host": "db-01", "region": "eu-west"}, records[1].Labels)
}

func TestWriteLabelMap_ArityMismatch(t *testing.T) {
	names := []string{"host", "region"}
	values := [][]string{
		{"web-01", "us-east"},
		{"db-01"},
	}

	var buf bytes.Buffer
	err := WriteLabelMap(&buf, names, values)
	require.ErrorIs(t, err, errs.ErrInvalidLabelCount)
}
