package enclosure

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/google/go-cmp/cmp"
	"github.com/roundedfp/rounded/utils/buffer"
)

// BinarySize returns the size in bytes of the object once marshalled into
// a binary form: three float64 bit patterns in the order lower bound,
// upper bound, nominal value.
func (f Enclosure) BinarySize() int {
	return 24
}

// WriteTo writes the object on an [io.Writer]. It implements the
// [io.WriterTo] interface, and will write exactly f.BinarySize() bytes.
//
// Unless w implements the [buffer.Writer] interface (see
// utils/buffer/writer.go), it will be wrapped into a [bufio.Writer].
// Since this requires allocations, it is preferable to pass a
// [buffer.Writer] directly, e.g. a buffer.NewBuffer(b) around a
// pre-allocated slice.
func (f Enclosure) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteFloat64(w, f.Lo); err != nil {
			return n + inc, err
		}
		n += inc

		if inc, err = buffer.WriteFloat64(w, f.Hi); err != nil {
			return n + inc, err
		}
		n += inc

		if inc, err = buffer.WriteFloat64(w, f.Val); err != nil {
			return n + inc, err
		}
		n += inc

		return n, w.Flush()
	default:
		return f.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an [io.Reader]. It implements the
// [io.ReaderFrom] interface.
//
// Unless r implements the [buffer.Reader] interface (see
// utils/buffer/reader.go), it will be wrapped into a [bufio.Reader].
// Since this requires allocation, it is preferable to pass a
// [buffer.Reader] directly.
func (f *Enclosure) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int
		if inc, err = buffer.ReadFloat64(r, &f.Lo); err != nil {
			return n + int64(inc), err
		}
		n += int64(inc)

		if inc, err = buffer.ReadFloat64(r, &f.Hi); err != nil {
			return n + int64(inc), err
		}
		n += int64(inc)

		if inc, err = buffer.ReadFloat64(r, &f.Val); err != nil {
			return n + int64(inc), err
		}
		n += int64(inc)

		return n, nil
	default:
		return f.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly
// allocated slice of bytes. The encoding is bit-exact, NaN and infinite
// fields included.
func (f Enclosure) MarshalBinary() (p []byte, err error) {
	p = make([]byte, f.BinarySize())
	_, err = f.WriteTo(buffer.NewBuffer(p))
	return
}

// UnmarshalBinary decodes a slice of bytes generated by
// [Enclosure.MarshalBinary] or [Enclosure.WriteTo] on the object.
func (f *Enclosure) UnmarshalBinary(p []byte) (err error) {
	_, err = f.ReadFrom(buffer.NewBuffer(p))
	return
}

// MarshalJSON encodes the three fields as hexadecimal float64 bit
// patterns, which survive NaN and infinite values that the JSON number
// syntax cannot carry.
func (f Enclosure) MarshalJSON() (p []byte, err error) {
	aux := &struct {
		Lo  string
		Hi  string
		Val string
	}{
		Lo:  fmt.Sprintf("0x%016x", math.Float64bits(f.Lo)),
		Hi:  fmt.Sprintf("0x%016x", math.Float64bits(f.Hi)),
		Val: fmt.Sprintf("0x%016x", math.Float64bits(f.Val)),
	}
	return json.Marshal(aux)
}

// UnmarshalJSON decodes a slice of bytes generated by
// [Enclosure.MarshalJSON] on the object.
func (f *Enclosure) UnmarshalJSON(p []byte) (err error) {
	aux := &struct {
		Lo  string
		Hi  string
		Val string
	}{}

	if err = json.Unmarshal(p, aux); err != nil {
		return
	}

	if f.Lo, err = hexbits(aux.Lo); err != nil {
		return
	}
	if f.Hi, err = hexbits(aux.Hi); err != nil {
		return
	}
	f.Val, err = hexbits(aux.Val)
	return
}

func hexbits(x string) (float64, error) {
	bits, err := strconv.ParseUint(x, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("hexbits: %w", err)
	}
	return math.Float64frombits(bits), nil
}

// Vector is a slice of enclosures with bulk serialization, for exchanging
// whole columns with a host framework in one call.
type Vector []Enclosure

// Equal reports whether v and other hold identical elements. This is
// field identity, not overlap equality.
func (v Vector) Equal(other Vector) bool {
	return cmp.Equal(v, other)
}

// BinarySize returns the size in bytes of the object once marshalled into
// a binary form: an 8-byte length followed by the elements.
func (v Vector) BinarySize() int {
	return 8 + 24*len(v)
}

// WriteTo writes the object on an [io.Writer]. It implements the
// [io.WriterTo] interface.
func (v Vector) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(v))); err != nil {
			return n + inc, err
		}
		n += inc

		for i := range v {
			if inc, err = v[i].WriteTo(w); err != nil {
				return n + inc, err
			}
			n += inc
		}

		return n, w.Flush()
	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an [io.Reader]. It implements the
// [io.ReaderFrom] interface, resizing v as needed.
func (v *Vector) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var size uint64
		var inc int
		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return n + int64(inc), err
		}
		n += int64(inc)

		// The count comes from the wire, so the slice grows with the
		// elements actually decoded rather than trusting the prefix with
		// one large allocation.
		*v = (*v)[:0]
		for i := uint64(0); i < size; i++ {
			var f Enclosure
			var inc64 int64
			if inc64, err = f.ReadFrom(r); err != nil {
				return n + inc64, fmt.Errorf("element %d of %d: %w", i, size, err)
			}
			n += inc64
			*v = append(*v, f)
		}

		return n, nil
	default:
		return v.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly
// allocated slice of bytes.
func (v Vector) MarshalBinary() (p []byte, err error) {
	p = make([]byte, v.BinarySize())
	_, err = v.WriteTo(buffer.NewBuffer(p))
	return
}

// UnmarshalBinary decodes a slice of bytes generated by
// [Vector.MarshalBinary] or [Vector.WriteTo] on the object.
func (v *Vector) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(p))
	return
}
