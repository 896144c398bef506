package enclosure

import (
	"math"

	"github.com/roundedfp/rounded/utils"
)

// The value-returning forms below are the single source of truth; every
// *Assign variant overwrites the receiver with the value form's result,
// so the two are bit-identical. Scalar forms promote the scalar with
// FromFloat64 and delegate; ScalarSub and ScalarDiv exist separately
// because subtraction and division are not commutative in their interval
// arguments.

// Pos returns f unchanged.
func (f Enclosure) Pos() Enclosure {
	return f
}

// Neg returns -f. The bounds swap because negation reverses order; no
// widening is needed since negation is exact.
func (f Enclosure) Neg() Enclosure {
	return Enclosure{-f.Hi, -f.Lo, -f.Val}
}

// NegAssign sets f to -f.
func (f *Enclosure) NegAssign() {
	*f = f.Neg()
}

// Add returns f + g.
func (f Enclosure) Add(g Enclosure) Enclosure {
	return Enclosure{
		stepDown(f.Lo + g.Lo),
		stepUp(f.Hi + g.Hi),
		f.Val + g.Val,
	}
}

// AddAssign sets f to f + g.
func (f *Enclosure) AddAssign(g Enclosure) {
	*f = f.Add(g)
}

// AddScalar returns f + s.
func (f Enclosure) AddScalar(s float64) Enclosure {
	return f.Add(FromFloat64(s))
}

// AddScalarAssign sets f to f + s.
func (f *Enclosure) AddScalarAssign(s float64) {
	*f = f.AddScalar(s)
}

// ScalarAdd returns s + f.
func ScalarAdd(s float64, f Enclosure) Enclosure {
	return FromFloat64(s).Add(f)
}

// Sub returns f - g. The bounds of g swap roles under subtraction.
func (f Enclosure) Sub(g Enclosure) Enclosure {
	return Enclosure{
		stepDown(f.Lo - g.Hi),
		stepUp(f.Hi - g.Lo),
		f.Val - g.Val,
	}
}

// SubAssign sets f to f - g.
func (f *Enclosure) SubAssign(g Enclosure) {
	*f = f.Sub(g)
}

// SubScalar returns f - s.
func (f Enclosure) SubScalar(s float64) Enclosure {
	return f.Sub(FromFloat64(s))
}

// SubScalarAssign sets f to f - s.
func (f *Enclosure) SubScalarAssign(s float64) {
	*f = f.SubScalar(s)
}

// ScalarSub returns s - f.
func ScalarSub(s float64, f Enclosure) Enclosure {
	return FromFloat64(s).Sub(f)
}

// Mul returns f * g. All four products of the operands' bounds are
// candidates for the extrema, so the new bounds are their min and max.
func (f Enclosure) Mul(g Enclosure) Enclosure {
	lo := utils.Min4(f.Lo*g.Lo, f.Lo*g.Hi, f.Hi*g.Lo, f.Hi*g.Hi)
	hi := utils.Max4(f.Lo*g.Lo, f.Lo*g.Hi, f.Hi*g.Lo, f.Hi*g.Hi)
	return Enclosure{
		stepDown(lo),
		stepUp(hi),
		f.Val * g.Val,
	}
}

// MulAssign sets f to f * g.
func (f *Enclosure) MulAssign(g Enclosure) {
	*f = f.Mul(g)
}

// MulScalar returns f * s.
func (f Enclosure) MulScalar(s float64) Enclosure {
	return f.Mul(FromFloat64(s))
}

// MulScalarAssign sets f to f * s.
func (f *Enclosure) MulScalarAssign(s float64) {
	*f = f.MulScalar(s)
}

// ScalarMul returns s * f.
func ScalarMul(s float64, f Enclosure) Enclosure {
	return FromFloat64(s).Mul(f)
}

// Div returns f / g, evaluating all four quotients of the operands'
// bounds. A divisor with a bound of exactly zero divides to a signed
// infinity per IEEE semantics. A divisor strictly straddling zero admits
// quotients of arbitrary magnitude that no corner attains, so the result
// is the full unbounded interval.
func (f Enclosure) Div(g Enclosure) Enclosure {
	if !f.IsNaN() && g.Lo < 0 && g.Hi > 0 {
		return Enclosure{math.Inf(-1), math.Inf(1), f.Val / g.Val}
	}
	lo := utils.Min4(f.Lo/g.Lo, f.Lo/g.Hi, f.Hi/g.Lo, f.Hi/g.Hi)
	hi := utils.Max4(f.Lo/g.Lo, f.Lo/g.Hi, f.Hi/g.Lo, f.Hi/g.Hi)
	return Enclosure{
		stepDown(lo),
		stepUp(hi),
		f.Val / g.Val,
	}
}

// DivAssign sets f to f / g.
func (f *Enclosure) DivAssign(g Enclosure) {
	*f = f.Div(g)
}

// DivScalar returns f / s.
func (f Enclosure) DivScalar(s float64) Enclosure {
	return f.Div(FromFloat64(s))
}

// DivScalarAssign sets f to f / s.
func (f *Enclosure) DivScalarAssign(s float64) {
	*f = f.DivScalar(s)
}

// ScalarDiv returns s / f.
func ScalarDiv(s float64, f Enclosure) Enclosure {
	return FromFloat64(s).Div(f)
}
