// Package hash defines the streaming 64-bit hash capability used for
// time-series identity hashing, plus the built-in algorithms.
//
// Every algorithm must support deterministic seeded construction so a
// schema-level digest can become the starting state for per-row hashing.
// Algorithms without native seed support (like FNV) absorb the seed bytes
// into a default-state hasher, which is equally deterministic.
package hash

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
)

// Hasher64 is a streaming hash accumulating bytes into a 64-bit digest.
//
// Write never fails; the error return exists for io.Writer compatibility.
// Sum64 does not alter state, but identity-hashing callers treat the hasher
// as consumed after extracting the digest.
type Hasher64 interface {
	Write(p []byte) (int, error)
	Sum64() uint64
}

// Algorithm constructs Hasher64 instances, either from the algorithm's
// default state or from a 64-bit seed.
//
// Implementations must be deterministic across processes and platforms: two
// hashers built the same way and fed the same bytes always produce the same
// digest.
type Algorithm interface {
	// Name returns the stable identifier of the algorithm, for reporting.
	Name() string

	// New returns a hasher in the algorithm's default state.
	New() Hasher64

	// NewWithSeed returns a hasher whose state is deterministically derived
	// from seed.
	NewWithSeed(seed uint64) Hasher64
}

// XXHash64 is the default identity-hash algorithm: fast, good avalanche
// behavior, and native 64-bit seed support.
var XXHash64 Algorithm = xxh64{}

// FNV64a hashes with FNV-1a from the standard library. It has no native seed
// parameter, so seeding absorbs the eight little-endian seed bytes first.
var FNV64a Algorithm = fnv64a{}

type xxh64 struct{}

func (xxh64) Name() string { return "xxhash64" }

func (xxh64) New() Hasher64 {
	return xxhash.New()
}

func (xxh64) NewWithSeed(seed uint64) Hasher64 {
	return xxhash.NewWithSeed(seed)
}

type fnv64a struct{}

func (fnv64a) Name() string { return "fnv64a" }

func (fnv64a) New() Hasher64 {
	return fnv.New64a()
}

func (fnv64a) NewWithSeed(seed uint64) Hasher64 {
	h := fnv.New64a()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	_, _ = h.Write(buf[:])

	return h
}
