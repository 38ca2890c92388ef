package encoding

import (
	"fmt"

	"github.com/arloliu/tsid/endian"
	"github.com/arloliu/tsid/errs"
)

const (
	// comparableGroupSize is the number of payload bytes per group in the
	// order-preserving byte serialization.
	comparableGroupSize = 8
	// comparableGroupCont marks a full group with more groups following.
	comparableGroupCont = 9
)

// MemcomparableCodec encodes rows so byte-lexicographic comparison of two
// encoded buffers matches pairwise column-ordered comparison of their values.
//
// Wire format, per field, concatenated without any count prefix:
//
//	col_id as 4 bytes big-endian, then the value bytes split into groups of
//	eight. Every full group with more data following is terminated by the
//	marker byte 9; the final group is zero-padded to eight bytes and
//	terminated by the count of meaningful bytes (0-7).
//
// Field boundaries are self-delimiting: a reader consumes nine-byte groups
// until it sees a marker below 9.
//
// The codec is built for comparison, not reconstruction: Decode reports
// errs.ErrUnsupportedOperation. Sorting and range scans over encoded keys
// never need to decode them.
type MemcomparableCodec struct {
	engine endian.EndianEngine
}

var _ RowCodec = MemcomparableCodec{}

// NewMemcomparableCodec creates a memcomparable codec.
func NewMemcomparableCodec() MemcomparableCodec {
	return MemcomparableCodec{engine: endian.GetBigEndianEngine()}
}

func (c MemcomparableCodec) Name() string {
	return "memcomparable"
}

// Encode appends the order-preserving encoding of row to dst.
func (c MemcomparableCodec) Encode(dst []byte, row Row) ([]byte, error) {
	for i := range row {
		field := &row[i]
		dst = c.engine.AppendUint32(dst, field.ColumnID)
		dst = appendComparableBytes(dst, field.Value)
	}

	return dst, nil
}

// Decode is not supported: the encoding exists for ordered comparison only.
func (c MemcomparableCodec) Decode(_ []byte) (Row, error) {
	return nil, fmt.Errorf("%w: memcomparable encoding supports comparison only", errs.ErrUnsupportedOperation)
}

// appendComparableBytes serializes s in zero-padded eight-byte groups with
// trailing marker bytes. The empty string encodes as one all-zero group with
// marker 0, keeping it strictly smaller than any non-empty value.
func appendComparableBytes(dst []byte, s string) []byte {
	for len(s) >= comparableGroupSize {
		dst = append(dst, s[:comparableGroupSize]...)
		dst = append(dst, comparableGroupCont)
		s = s[comparableGroupSize:]
	}

	dst = append(dst, s...)
	for i := len(s); i < comparableGroupSize; i++ {
		dst = append(dst, 0)
	}

	return append(dst, byte(len(s)))
}
