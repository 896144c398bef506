package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Read reads len(c) bytes from r into c.
func Read(r Reader, c []byte) (n int, err error) {
	return r.Read(c)
}

// ReadUint8 reads a byte from r into c.
func ReadUint8(r Reader, c *uint8) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint8: c is nil")
	}

	var bb = [1]byte{}

	if n, err = r.Read(bb[:]); err != nil {
		return
	}

	*c = bb[0]

	return n, nil
}

// ReadUint64 reads a uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	if n, err = r.Read(bb[:]); err != nil {
		return
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return n, nil
}

// ReadFloat64 reads the IEEE-754 bit pattern of a float64 from r into c.
func ReadFloat64(r Reader, c *float64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadFloat64: c is nil")
	}

	var bits uint64
	if n, err = ReadUint64(r, &bits); err != nil {
		return
	}

	*c = math.Float64frombits(bits)

	return n, nil
}

// ReadFloat64Slice reads a slice of float64 from r into c, filling all of
// len(c).
func ReadFloat64Slice(r Reader, c []float64) (n int, err error) {

	// c is empty, return
	if len(c) == 0 {
		return
	}

	var slice []byte
	if slice, err = r.Peek(len(c) << 3); err != nil {
		return len(slice), fmt.Errorf("cannot ReadFloat64Slice: %w", err)
	}

	for i := range c {
		c[i] = math.Float64frombits(binary.LittleEndian.Uint64(slice[i<<3:]))
	}

	return r.Discard(len(c) << 3)
}
