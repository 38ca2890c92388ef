package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsid/errs"
)

func TestUvarint32_Boundaries(t *testing.T) {
	tests := []struct {
		value uint32
		size  int
	}{
		{0, 1},
		{1, 1},
		{127, 1},
		{128, 2},
		{255, 2},
		{256, 2},
		{16383, 2},
		{16384, 3},
		{math.MaxUint32, 5},
	}

	for _, tt := range tests {
		encoded := AppendUvarint32(nil, tt.value)
		require.Len(t, encoded, tt.size, "value %d", tt.value)

		decoded, n, err := Uvarint32(encoded)
		require.NoError(t, err, "value %d", tt.value)
		require.Equal(t, tt.value, decoded)
		require.Equal(t, tt.size, n)
	}
}

func TestUvarint32_ContinuationBits(t *testing.T) {
	// 300 = 0b10_0101100: low 7 bits with continuation, then the rest.
	encoded := AppendUvarint32(nil, 300)
	require.Equal(t, []byte{0xac, 0x02}, encoded)

	// Every byte except the terminal one carries the continuation bit.
	encoded = AppendUvarint32(nil, math.MaxUint32)
	for i, b := range encoded[:len(encoded)-1] {
		require.NotZero(t, b&0x80, "byte %d should continue", i)
	}
	require.Zero(t, encoded[len(encoded)-1]&0x80)
}

func TestUvarint32_DecodeConsumesExactBytes(t *testing.T) {
	// Decoding stops at the first terminal byte even with trailing data.
	buf := AppendUvarint32(nil, 16384)
	buf = append(buf, 0xde, 0xad)

	value, n, err := Uvarint32(buf)
	require.NoError(t, err)
	require.Equal(t, uint32(16384), value)
	require.Equal(t, 3, n)
}

func TestUvarint32_Truncated(t *testing.T) {
	_, _, err := Uvarint32(nil)
	require.ErrorIs(t, err, errs.ErrBufferTooShort)

	_, _, err = Uvarint32([]byte{0x80, 0x80})
	require.ErrorIs(t, err, errs.ErrBufferTooShort)
}

func TestUvarint32_Overflow(t *testing.T) {
	// Terminal fifth byte above 0x0f exceeds 32 bits.
	_, _, err := Uvarint32([]byte{0xff, 0xff, 0xff, 0xff, 0x10})
	require.ErrorIs(t, err, errs.ErrVarintOverflow)

	// No terminal byte within five bytes.
	_, _, err = Uvarint32([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	require.ErrorIs(t, err, errs.ErrVarintOverflow)
}

func TestVarintCodec_WireFormat(t *testing.T) {
	codec := NewVarintCodec()
	row := Row{
		{ColumnID: 0, Value: "a"},
		{ColumnID: 300, Value: "bc"},
	}

	encoded, err := codec.Encode(nil, row)
	require.NoError(t, err)

	expected := []byte{
		0x02,             // count = 2
		0x00, 0x01, 'a', // col 0, len 1
		0xac, 0x02, 0x02, 'b', 'c', // col 300, len 2
	}
	require.Equal(t, expected, encoded)
}

func TestVarintCodec_SmallerThanLengthPrefixed(t *testing.T) {
	row := Row{
		{ColumnID: 0, Value: "host"},
		{ColumnID: 1, Value: "region"},
	}

	varintKey, err := NewVarintCodec().Encode(nil, row)
	require.NoError(t, err)

	fixedKey, err := NewLengthPrefixedCodec().Encode(nil, row)
	require.NoError(t, err)

	require.Less(t, len(varintKey), len(fixedKey))
}

func TestVarintCodec_Decode_Truncated(t *testing.T) {
	codec := NewVarintCodec()

	valid, err := codec.Encode(nil, Row{{ColumnID: 200, Value: "hello"}})
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty buffer", nil},
		{"missing entry", valid[:1]},
		{"partial column id", valid[:2]},
		{"missing value bytes", valid[:len(valid)-3]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.data)
			require.ErrorIs(t, err, errs.ErrBufferTooShort)
		})
	}
}

func TestVarintCodec_Decode_InvalidUTF8(t *testing.T) {
	codec := NewVarintCodec()

	data := []byte{
		0x01,       // count = 1
		0x00, 0x02, // col 0, len 2
		0xc3, 0x28, // invalid UTF-8 sequence
	}

	_, err := codec.Decode(data)
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestVarintCodec_Decode_OverflowingColumnID(t *testing.T) {
	codec := NewVarintCodec()

	data := []byte{
		0x01,                         // count = 1
		0xff, 0xff, 0xff, 0xff, 0x7f, // column id varint exceeding 32 bits
	}

	_, err := codec.Decode(data)
	require.ErrorIs(t, err, errs.ErrVarintOverflow)
}
