package enclosure

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/blake3"
)

// rawBytes returns the fixed 24-byte little-endian representation, in the
// field order lower bound, upper bound, nominal value.
func (f Enclosure) rawBytes() [24]byte {
	var p [24]byte
	binary.LittleEndian.PutUint64(p[0:], math.Float64bits(f.Lo))
	binary.LittleEndian.PutUint64(p[8:], math.Float64bits(f.Hi))
	binary.LittleEndian.PutUint64(p[16:], math.Float64bits(f.Val))
	return p
}

// Hash returns a one-at-a-time hash of the raw byte representation, for
// host hash-table integration.
//
// The hash is consistent with byte identity only. Overlap equality (see
// [Enclosure.Equal]) is not an equivalence relation, so no hash function
// can satisfy a hash/equality consistency law against it: two enclosures
// that compare Equal by overlap may hash differently.
func (f Enclosure) Hash() uint64 {
	p := f.rawBytes()
	var h uint64
	for _, c := range p {
		h += uint64(c)
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// Digest returns the blake3 digest of the raw byte representation, for
// content addressing across processes.
func (f Enclosure) Digest() [32]byte {
	p := f.rawBytes()
	return blake3.Sum256(p[:])
}
