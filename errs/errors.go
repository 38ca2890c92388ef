// Package errs defines the sentinel errors shared across tsid packages.
//
// Call sites wrap these with fmt.Errorf("%w: detail", ...) so callers can
// match on the class with errors.Is while still seeing the specifics.
package errs

import "errors"

// Decode-time malformed input errors. A decode that hits one of these aborts
// for that row only; it never silently skips or auto-corrects.
var (
	// ErrBufferTooShort indicates the buffer ends before the header-declared
	// count or length is satisfied.
	ErrBufferTooShort = errors.New("buffer too short for declared length")

	// ErrInvalidUTF8 indicates a decoded value is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("decoded value is not valid UTF-8")

	// ErrVarintOverflow indicates a varint does not fit in 32 bits or has no
	// terminal byte.
	ErrVarintOverflow = errors.New("varint exceeds 32-bit range")

	// ErrMalformedFieldTag indicates a memcomparable group marker outside the
	// valid range.
	ErrMalformedFieldTag = errors.New("malformed memcomparable field tag")

	// ErrInvalidRootTable indicates the FlatBuffer root table cannot be
	// located within the buffer.
	ErrInvalidRootTable = errors.New("flatbuffer root table validation failed")
)

// Capability and precondition errors.
var (
	// ErrUnsupportedOperation indicates the codec variant does not implement
	// the requested operation (e.g. decoding an order-preserving encoding
	// built only for comparison).
	ErrUnsupportedOperation = errors.New("operation not supported by this codec")

	// ErrValueTooLarge indicates a value length exceeds the encoding's
	// representable integer range. Callers must validate in advance; the
	// codecs never truncate.
	ErrValueTooLarge = errors.New("value length exceeds encodable range")

	// ErrInvalidEncodingType indicates an unknown format.EncodingType was
	// passed to the codec factory.
	ErrInvalidEncodingType = errors.New("invalid encoding type")
)

// Identity hashing errors.
var (
	// ErrHashCollision indicates two distinct label rows produced the same
	// 64-bit time-series identifier.
	ErrHashCollision = errors.New("ts id hash collision detected")

	// ErrInvalidLabelCount indicates a row's value count does not match the
	// schema's label-name count.
	ErrInvalidLabelCount = errors.New("label value count does not match schema")
)
