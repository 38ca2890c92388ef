// Package encoding provides binary row codecs for label primary keys.
//
// A row is an ordered sequence of (column id, value) pairs. Each codec turns
// a row into an opaque byte string usable as a storage primary key, and, for
// the variants that support it, turns those bytes back into the identical
// row. The four variants are a closed set selected via format.EncodingType:
//
//   - LengthPrefixed: fixed 4-byte little-endian integers, simplest and largest
//   - Varint: LEB128 integers, compact for small column ids and lengths
//   - Memcomparable: order-preserving bytes, lexicographic comparison matches
//     pairwise value comparison (encode only)
//   - FlatBuffer: schema-typed table with zero-copy lazy decoding
//
// Encoded buffers are only decodable by the variant that produced them, and
// each variant's byte layout is stable across versions: systems persisting
// encoded rows as storage keys depend on it.
//
// All codecs are stateless and safe for concurrent use. Encode appends to the
// caller's buffer and never clears prior content.
package encoding
