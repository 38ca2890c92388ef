package encoding

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/tsid/errs"
)

// maxUvarint32Len is the largest LEB128 encoding of a 32-bit value: five
// bytes of seven payload bits each.
const maxUvarint32Len = 5

// AppendUvarint32 appends v to dst in LEB128 form and returns the extended
// buffer.
//
// Each byte carries the low seven bits of the remaining value; the high bit
// is the continuation flag, set on every byte except the last. The encoding
// round-trips the full unsigned 32-bit range: 0 costs one byte, 2^32-1 costs
// five.
func AppendUvarint32(dst []byte, v uint32) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// Uvarint32 decodes a LEB128 value from the start of data.
//
// Returns the value and the number of bytes consumed. Fails with
// errs.ErrBufferTooShort when the buffer ends before a terminal byte, and
// with errs.ErrVarintOverflow when the encoding does not fit in 32 bits.
func Uvarint32(data []byte) (uint32, int, error) {
	var v uint32
	var shift uint

	for i, b := range data {
		if b < 0x80 {
			// The fifth byte contributes bits 28..34; anything above 0x0f
			// overflows uint32.
			if i == maxUvarint32Len-1 && b > 0x0f {
				return 0, 0, fmt.Errorf("%w: terminal byte 0x%02x at position %d",
					errs.ErrVarintOverflow, b, i)
			}

			return v | uint32(b)<<shift, i + 1, nil
		}

		if i == maxUvarint32Len-1 {
			return 0, 0, fmt.Errorf("%w: no terminal byte within %d bytes",
				errs.ErrVarintOverflow, maxUvarint32Len)
		}

		v |= uint32(b&0x7f) << shift
		shift += 7
	}

	return 0, 0, fmt.Errorf("%w: truncated varint", errs.ErrBufferTooShort)
}

// VarintCodec encodes rows with LEB128 variable-length integers.
//
// Wire format:
//
//	[count:varint][ {col_id:varint}{len:varint}{bytes} ]*
//
// Compact when column ids and value lengths are small: values below 128 cost
// a single byte instead of the four a fixed-width encoding spends.
type VarintCodec struct{}

var _ RowCodec = VarintCodec{}

// NewVarintCodec creates a varint codec.
func NewVarintCodec() VarintCodec {
	return VarintCodec{}
}

func (c VarintCodec) Name() string {
	return "varint"
}

// Encode appends the encoded row to dst.
func (c VarintCodec) Encode(dst []byte, row Row) ([]byte, error) {
	dst = AppendUvarint32(dst, uint32(len(row))) //nolint:gosec

	for i := range row {
		field := &row[i]
		if uint64(len(field.Value)) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: value for column %d is %d bytes",
				errs.ErrValueTooLarge, field.ColumnID, len(field.Value))
		}

		dst = AppendUvarint32(dst, field.ColumnID)
		dst = AppendUvarint32(dst, uint32(len(field.Value)))
		dst = append(dst, field.Value...)
	}

	return dst, nil
}

// Decode parses a complete varint-encoded buffer back into a row.
func (c VarintCodec) Decode(data []byte) (Row, error) {
	count, n, err := Uvarint32(data)
	if err != nil {
		return nil, fmt.Errorf("entry count: %w", err)
	}
	offset := n

	// Smallest possible entry is one byte of column id, one of length.
	capHint := min(int(count), (len(data)-offset)/2)
	row := make(Row, 0, capHint)

	for i := range int(count) {
		colID, n, err := Uvarint32(data[offset:])
		if err != nil {
			return nil, fmt.Errorf("entry %d column id: %w", i, err)
		}
		offset += n

		length64, n, err := Uvarint32(data[offset:])
		if err != nil {
			return nil, fmt.Errorf("entry %d length: %w", i, err)
		}
		offset += n

		length := int(length64)
		if len(data)-offset < length {
			return nil, fmt.Errorf("%w: entry %d declares %d value bytes, %d remain",
				errs.ErrBufferTooShort, i, length, len(data)-offset)
		}

		value := data[offset : offset+length]
		if !utf8.Valid(value) {
			return nil, fmt.Errorf("%w: entry %d", errs.ErrInvalidUTF8, i)
		}
		offset += length

		row = append(row, Field{ColumnID: colID, Value: string(value)})
	}

	return row, nil
}
