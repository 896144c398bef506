package sampling

import (
	"encoding/binary"
	"io"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF,
// read from r.
func RandUint64(r io.Reader) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(r, b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float between min and max, read from r.
func RandFloat64(r io.Reader, min, max float64) float64 {
	f := float64(RandUint64(r)) / 1.8446744073709552e+19
	return min + f*(max-min)
}
