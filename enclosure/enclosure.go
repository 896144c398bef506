// Package enclosure implements a rounded floating point interval type: a
// float64 lower bound, upper bound and nominal value, where every
// operation widens the computed bounds outward so that the true
// mathematical result is always contained in [Lo, Hi]. The nominal value
// is the best-estimate scalar result and is carried through every
// operation without widening.
//
// Rounding policy: bounds produced by the arithmetic layer and by the
// conversions are widened by one representable step per bound; bounds
// produced by the elementary-function layer are widened by two steps per
// bound, to absorb the unbounded rounding error of the underlying math
// kernels. Each layer applies its policy uniformly.
//
// All operations are total: domain violations return the NaN triple
// (Lo = Hi = Val = NaN) instead of an error. Divisors with a zero bound
// follow IEEE semantics, and a divisor straddling zero yields the full
// unbounded interval. Callers must check IsNaN explicitly.
package enclosure

import (
	"fmt"
	"math"
)

// Enclosure is a rounded floating point interval with a tracked nominal
// value. The layout is fixed: three consecutive float64 in the order
// lower bound, upper bound, nominal value, suitable for raw memory copy
// and per-field byte swaps by a host framework.
type Enclosure struct {
	Lo, Hi, Val float64
}

// stepDown moves x one representable step toward -Inf.
func stepDown(x float64) float64 {
	return math.Nextafter(x, math.Inf(-1))
}

// stepUp moves x one representable step toward +Inf.
func stepUp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1))
}

// stepDown2 and stepUp2 move two steps. Used on bounds computed from math
// kernels whose own rounding error is not bounded by the last bit.
func stepDown2(x float64) float64 {
	return stepDown(stepDown(x))
}

func stepUp2(x float64) float64 {
	return stepUp(stepUp(x))
}

// nanTriple is the result of every domain violation.
func nanTriple() Enclosure {
	nan := math.NaN()
	return Enclosure{nan, nan, nan}
}

// maxExactInt is the largest integer magnitude exactly representable as a
// float64 (2^53 - 1).
const maxExactInt = 9007199254740991

// FromInt64 converts an integer to an enclosure. Integers of magnitude at
// most 2^53-1 convert exactly to a degenerate interval; larger ones are
// widened by one step around the rounded double.
func FromInt64(n int64) Enclosure {
	d := float64(n)
	f := Enclosure{d, d, d}
	if d > maxExactInt || d < -maxExactInt {
		f.Lo = stepDown(d)
		f.Hi = stepUp(d)
	}
	return f
}

// FromFloat64 converts a float64 to the tightest enclosure expressible
// with adjacent representable values: [pred(x), succ(x)] with nominal
// value x.
func FromFloat64(x float64) Enclosure {
	return Enclosure{stepDown(x), stepUp(x), x}
}

// FromFloat32 converts a float32 to an enclosure bounded by the
// single-precision neighbors of x, widened to float64.
func FromFloat32(x float32) Enclosure {
	lo := float64(math.Nextafter32(x, float32(math.Inf(-1))))
	hi := float64(math.Nextafter32(x, float32(math.Inf(1))))
	return Enclosure{lo, hi, float64(x)}
}

// Float64 returns the nominal value.
func (f Enclosure) Float64() float64 {
	return f.Val
}

// Float32 returns the nominal value truncated to single precision.
func (f Enclosure) Float32() float32 {
	return float32(f.Val)
}

// Width returns the distance between the two bounds.
func (f Enclosure) Width() float64 {
	return f.Hi - f.Lo
}

func (f Enclosure) String() string {
	return fmt.Sprintf("%g:[%g, %g]", f.Val, f.Lo, f.Hi)
}
