package encoding

import (
	"fmt"

	"github.com/arloliu/tsid/errs"
	"github.com/arloliu/tsid/format"
)

// Field is a single (column id, value) pair within a row.
//
// Column ids are caller-assigned and need not be contiguous or sorted.
// Values may be empty and may contain arbitrary UTF-8 bytes, including
// control characters and multi-byte sequences.
type Field struct {
	ColumnID uint32
	Value    string
}

// Row is an ordered sequence of fields representing one record's label
// key-value data. Codecs preserve field order on decode.
type Row []Field

// RowCodec encodes and decodes rows of (column id, value) pairs.
//
// Implementations are stateless; a single codec value may be shared across
// goroutines as long as each call operates on its own buffers.
type RowCodec interface {
	// Name returns the stable identifier of the encoding scheme, used for
	// reporting only.
	Name() string

	// Encode appends the encoded representation of row to dst and returns
	// the extended buffer. Prior content of dst is never cleared.
	//
	// Returns errs.ErrValueTooLarge if a value length exceeds the encoding's
	// integer range; the codec never truncates.
	Encode(dst []byte, row Row) ([]byte, error)

	// Decode parses a complete buffer previously produced by Encode of the
	// same variant.
	//
	// Truncated or corrupted input surfaces as an error wrapping one of the
	// errs malformed-input sentinels; it is never silently misparsed.
	// Variants without decode support return errs.ErrUnsupportedOperation.
	Decode(data []byte) (Row, error)
}

// NewRowCodec creates the codec for the given encoding type.
//
// Returns errs.ErrInvalidEncodingType for unknown types.
func NewRowCodec(encodingType format.EncodingType) (RowCodec, error) {
	switch encodingType {
	case format.TypeLengthPrefixed:
		return NewLengthPrefixedCodec(), nil
	case format.TypeVarint:
		return NewVarintCodec(), nil
	case format.TypeMemcomparable:
		return NewMemcomparableCodec(), nil
	case format.TypeFlatBuffer:
		return NewFlatBufferCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEncodingType, encodingType)
	}
}

// EncodeToBytes encodes row into a freshly allocated buffer.
func EncodeToBytes(codec RowCodec, row Row) ([]byte, error) {
	return codec.Encode(nil, row)
}
