package format

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeLengthPrefixed EncodingType = 0x1 // TypeLengthPrefixed represents fixed 4-byte little-endian row encoding.
	TypeVarint         EncodingType = 0x2 // TypeVarint represents LEB128 variable-length row encoding.
	TypeMemcomparable  EncodingType = 0x3 // TypeMemcomparable represents order-preserving row encoding.
	TypeFlatBuffer     EncodingType = 0x4 // TypeFlatBuffer represents zero-copy FlatBuffers row encoding.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeLengthPrefixed:
		return "LengthPrefixed"
	case TypeVarint:
		return "Varint"
	case TypeMemcomparable:
		return "Memcomparable"
	case TypeFlatBuffer:
		return "FlatBuffer"
	default:
		return "Unknown"
	}
}

// ParseEncoding maps a codec name, as returned by RowCodec.Name or
// EncodingType.String, back to its EncodingType. Returns false for unknown
// names.
func ParseEncoding(name string) (EncodingType, bool) {
	switch name {
	case "length_prefixed", "LengthPrefixed":
		return TypeLengthPrefixed, true
	case "varint", "Varint":
		return TypeVarint, true
	case "memcomparable", "Memcomparable":
		return TypeMemcomparable, true
	case "flatbuffer", "FlatBuffer":
		return TypeFlatBuffer, true
	default:
		return 0, false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
