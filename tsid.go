// Package tsid derives stable 64-bit time-series identifiers from label rows
// and provides binary row codecs for storage primary keys.
//
// The two subsystems are independent and combined only by the caller:
//
//   - TsIdGenerator hashes a row's label names and values into a 64-bit
//     identifier, amortizing the schema cost with a two-phase protocol.
//   - The encoding package turns ordered (column id, value) pairs into byte
//     strings usable as storage keys; see encoding.RowCodec.
//
// # Two-phase identity hashing
//
// Hash the label names once per schema, then reuse the resulting seed for
// every row so only the values are hashed per row:
//
//	seed := tsid.SchemaSeed(hash.XXHash64, []string{"host", "region"})
//	for _, values := range rows {
//	    id := tsid.RowTsID(hash.XXHash64, seed, values)
//	    // ...
//	}
//
// Identifiers are deterministic, not globally unique: collision probability
// is bounded by the 64-bit output space of the chosen algorithm.
package tsid

import (
	"github.com/arloliu/tsid/encoding"
	"github.com/arloliu/tsid/format"
	"github.com/arloliu/tsid/hash"
)

// labelSep terminates every hashed field. It keeps adjacent fields of
// different lengths from concatenating to the same byte stream (["ab","c"]
// vs ["a","bc"]). It is not an escaping scheme: a value that itself contains
// 0xFF followed by boundary-shaped bytes can still collide, an accepted
// trade-off.
const labelSep = '\xff'

// TsIdGenerator accumulates label names and values into a 64-bit time-series
// identifier.
//
// A generator is single-use: build it, feed it writes, then call BuildTsID
// exactly once. Further use after BuildTsID panics. Generators are not safe
// for concurrent use; create one per row.
type TsIdGenerator struct {
	hasher   hash.Hasher64
	consumed bool
}

// NewTsIdGenerator creates a generator starting from the algorithm's default
// state. Used once per schema to compute the schema seed.
func NewTsIdGenerator(alg hash.Algorithm) *TsIdGenerator {
	return &TsIdGenerator{hasher: alg.New()}
}

// TsIdGeneratorFromSeed creates a generator whose hash state is initialized
// from a 64-bit seed, typically the schema seed returned by hashing the
// label names. This skips re-hashing the name list for every row.
func TsIdGeneratorFromSeed(alg hash.Algorithm, seed uint64) *TsIdGenerator {
	return &TsIdGenerator{hasher: alg.NewWithSeed(seed)}
}

// WriteLabelNames absorbs each name's raw bytes followed by the field
// separator, in order. Called once per schema.
func (g *TsIdGenerator) WriteLabelNames(names []string) {
	g.writeFields(names)
}

// WriteLabelValues absorbs each value's raw bytes followed by the field
// separator, in order. Called once per row.
func (g *TsIdGenerator) WriteLabelValues(values []string) {
	g.writeFields(values)
}

// BuildTsID consumes the generator and returns the accumulated 64-bit
// identifier. The generator cannot be used again afterwards.
func (g *TsIdGenerator) BuildTsID() uint64 {
	g.ensureLive()
	g.consumed = true

	return g.hasher.Sum64()
}

func (g *TsIdGenerator) writeFields(fields []string) {
	g.ensureLive()

	var sep = [1]byte{labelSep}
	for _, field := range fields {
		_, _ = g.hasher.Write([]byte(field))
		_, _ = g.hasher.Write(sep[:])
	}
}

func (g *TsIdGenerator) ensureLive() {
	if g.consumed {
		panic("tsid: generator used after BuildTsID")
	}
}

// SchemaSeed hashes the ordered label-name list into the schema seed used to
// start every per-row identifier computation.
func SchemaSeed(alg hash.Algorithm, names []string) uint64 {
	gen := NewTsIdGenerator(alg)
	gen.WriteLabelNames(names)

	return gen.BuildTsID()
}

// RowTsID computes the identifier of one row's ordered values under the
// given schema seed.
func RowTsID(alg hash.Algorithm, seed uint64, values []string) uint64 {
	gen := TsIdGeneratorFromSeed(alg, seed)
	gen.WriteLabelValues(values)

	return gen.BuildTsID()
}

// NewRowCodec creates the row codec for the given encoding type. It is a
// convenience wrapper around encoding.NewRowCodec.
func NewRowCodec(encodingType format.EncodingType) (encoding.RowCodec, error) {
	return encoding.NewRowCodec(encodingType)
}
