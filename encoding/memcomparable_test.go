package encoding

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsid/errs"
)

func TestMemcomparableCodec_WireFormat(t *testing.T) {
	codec := NewMemcomparableCodec()

	tests := []struct {
		name     string
		row      Row
		expected []byte
	}{
		{
			name: "short value",
			row:  Row{{ColumnID: 0, Value: "ab"}},
			expected: []byte{
				0x00, 0x00, 0x00, 0x00, // col 0, big-endian
				'a', 'b', 0, 0, 0, 0, 0, 0, 2, // padded group, 2 meaningful bytes
			},
		},
		{
			name: "empty value",
			row:  Row{{ColumnID: 1, Value: ""}},
			expected: []byte{
				0x00, 0x00, 0x00, 0x01,
				0, 0, 0, 0, 0, 0, 0, 0, 0, // all-zero group, marker 0
			},
		},
		{
			name: "exactly one group",
			row:  Row{{ColumnID: 2, Value: "12345678"}},
			expected: []byte{
				0x00, 0x00, 0x00, 0x02,
				'1', '2', '3', '4', '5', '6', '7', '8', 9, // full group continues
				0, 0, 0, 0, 0, 0, 0, 0, 0, // terminal empty group
			},
		},
		{
			name: "spanning groups",
			row:  Row{{ColumnID: 3, Value: "123456789"}},
			expected: []byte{
				0x00, 0x00, 0x00, 0x03,
				'1', '2', '3', '4', '5', '6', '7', '8', 9,
				'9', 0, 0, 0, 0, 0, 0, 0, 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := codec.Encode(nil, tt.row)
			require.NoError(t, err)
			require.Equal(t, tt.expected, encoded)
		})
	}
}

func TestMemcomparableCodec_Decode_Unsupported(t *testing.T) {
	codec := NewMemcomparableCodec()

	encoded, err := codec.Encode(nil, Row{{ColumnID: 0, Value: "x"}})
	require.NoError(t, err)

	_, err = codec.Decode(encoded)
	require.ErrorIs(t, err, errs.ErrUnsupportedOperation)
}

// For equal-arity rows with matching column ids, byte order of encodings
// must match pairwise column-ordered comparison of values.
func TestMemcomparableCodec_OrderPreservation(t *testing.T) {
	codec := NewMemcomparableCodec()

	makeRow := func(values ...string) Row {
		row := make(Row, len(values))
		for i, v := range values {
			row[i] = Field{ColumnID: uint32(i), Value: v}
		}

		return row
	}

	// Already sorted by pairwise value comparison.
	rows := []Row{
		makeRow("", ""),
		makeRow("", "a"),
		makeRow("a", ""),
		makeRow("a", "b"),
		makeRow("a", "ba"),
		makeRow("aa", "a"),
		makeRow("ab", ""),
		makeRow("abcdefgh", ""),
		makeRow("abcdefgha", ""),
		makeRow("abcdefghb", ""),
		makeRow("b", ""),
		makeRow("你", "好"),
	}

	encoded := make([][]byte, len(rows))
	for i, row := range rows {
		var err error
		encoded[i], err = codec.Encode(nil, row)
		require.NoError(t, err)
	}

	for i := 0; i < len(encoded)-1; i++ {
		require.Negative(t, bytes.Compare(encoded[i], encoded[i+1]),
			"encode(%v) should sort before encode(%v)", rows[i], rows[i+1])
	}
}

func TestMemcomparableCodec_SortMatchesValueSort(t *testing.T) {
	codec := NewMemcomparableCodec()

	values := []string{
		"zebra", "", "alpha", "alphabet", "alpha0", "12345678", "123456789",
		"\x00", "\x00\x01", "same-prefix-aaaaaaaa", "same-prefix-aaaaaaab",
	}

	type pair struct {
		value string
		key   []byte
	}

	pairs := make([]pair, len(values))
	for i, v := range values {
		key, err := codec.Encode(nil, Row{{ColumnID: 9, Value: v}})
		require.NoError(t, err)
		pairs[i] = pair{value: v, key: key}
	}

	byValue := append([]pair(nil), pairs...)
	sort.Slice(byValue, func(i, j int) bool { return byValue[i].value < byValue[j].value })

	byKey := append([]pair(nil), pairs...)
	sort.Slice(byKey, func(i, j int) bool { return bytes.Compare(byKey[i].key, byKey[j].key) < 0 })

	for i := range byValue {
		require.Equal(t, byValue[i].value, byKey[i].value, "rank %d", i)
	}
}
