package encoding

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/tsid/endian"
	"github.com/arloliu/tsid/errs"
)

// LengthPrefixedCodec encodes rows with fixed 4-byte little-endian integers.
//
// Wire format:
//
//	[count:u32][ {col_id:u32}{len:u32}{bytes} ]*
//
// This is the simplest and largest of the row encodings: every integer costs
// four bytes regardless of magnitude.
type LengthPrefixedCodec struct {
	engine endian.EndianEngine
}

var _ RowCodec = LengthPrefixedCodec{}

// NewLengthPrefixedCodec creates a length-prefixed codec.
func NewLengthPrefixedCodec() LengthPrefixedCodec {
	return LengthPrefixedCodec{engine: endian.GetLittleEndianEngine()}
}

func (c LengthPrefixedCodec) Name() string {
	return "length_prefixed"
}

// Encode appends the encoded row to dst.
func (c LengthPrefixedCodec) Encode(dst []byte, row Row) ([]byte, error) {
	dst = c.engine.AppendUint32(dst, uint32(len(row))) //nolint:gosec

	for i := range row {
		field := &row[i]
		if uint64(len(field.Value)) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: value for column %d is %d bytes",
				errs.ErrValueTooLarge, field.ColumnID, len(field.Value))
		}

		dst = c.engine.AppendUint32(dst, field.ColumnID)
		dst = c.engine.AppendUint32(dst, uint32(len(field.Value)))
		dst = append(dst, field.Value...)
	}

	return dst, nil
}

// Decode parses a complete length-prefixed buffer back into a row.
func (c LengthPrefixedCodec) Decode(data []byte) (Row, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: missing entry count", errs.ErrBufferTooShort)
	}

	count := int(c.engine.Uint32(data))
	offset := 4

	// Cap the initial allocation by the smallest possible entry size so a
	// corrupted count cannot trigger a huge allocation.
	capHint := min(count, (len(data)-offset)/8)
	row := make(Row, 0, capHint)

	for i := range count {
		if len(data)-offset < 8 {
			return nil, fmt.Errorf("%w: entry %d header", errs.ErrBufferTooShort, i)
		}

		colID := c.engine.Uint32(data[offset:])
		length := int(c.engine.Uint32(data[offset+4:]))
		offset += 8

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
