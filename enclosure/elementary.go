package enclosure

import (
	"math"

	"github.com/roundedfp/rounded/utils"
)

// monotonicUp evaluates a monotonically increasing, full-domain kernel at
// both bounds and widens outward. The shared strategy for every
// elementary function without domain or extremum case analysis.
func monotonicUp(f Enclosure, fn func(float64) float64) Enclosure {
	return Enclosure{
		stepDown2(fn(f.Lo)),
		stepUp2(fn(f.Hi)),
		fn(f.Val),
	}
}

// monotonicDown is the decreasing counterpart: the bound roles swap.
func monotonicDown(f Enclosure, fn func(float64) float64) Enclosure {
	return Enclosure{
		stepDown2(fn(f.Hi)),
		stepUp2(fn(f.Lo)),
		fn(f.Val),
	}
}

// logLike evaluates a monotonically increasing kernel whose domain is
// bounded below by floor with a singularity there (log family): an
// interval entirely below the floor is a domain violation, one straddling
// the floor keeps -Inf as lower bound.
func logLike(f Enclosure, fn func(float64) float64, floor float64) Enclosure {
	switch {
	case f.Hi < floor:
		return nanTriple()
	case f.Lo < floor:
		v := math.Inf(-1)
		if f.Val > floor {
			v = fn(f.Val)
		}
		return Enclosure{math.Inf(-1), stepUp2(fn(f.Hi)), v}
	default:
		return Enclosure{stepDown2(fn(f.Lo)), stepUp2(fn(f.Hi)), fn(f.Val)}
	}
}

// Exp returns e**f.
func (f Enclosure) Exp() Enclosure {
	return monotonicUp(f, math.Exp)
}

// Exp2 returns 2**f.
func (f Enclosure) Exp2() Enclosure {
	return monotonicUp(f, math.Exp2)
}

// Expm1 returns e**f - 1, accurate near zero.
func (f Enclosure) Expm1() Enclosure {
	return monotonicUp(f, math.Expm1)
}

// Cbrt returns the cube root of f.
func (f Enclosure) Cbrt() Enclosure {
	return monotonicUp(f, math.Cbrt)
}

// Erf returns the error function of f.
func (f Enclosure) Erf() Enclosure {
	return monotonicUp(f, math.Erf)
}

// Erfc returns the complementary error function of f.
func (f Enclosure) Erfc() Enclosure {
	return monotonicDown(f, math.Erfc)
}

// Log returns the natural logarithm of f, or the NaN triple if f lies
// entirely below zero.
func (f Enclosure) Log() Enclosure {
	return logLike(f, math.Log, 0)
}

// Log2 returns the base-2 logarithm of f.
func (f Enclosure) Log2() Enclosure {
	return logLike(f, math.Log2, 0)
}

// Log10 returns the base-10 logarithm of f.
func (f Enclosure) Log10() Enclosure {
	return logLike(f, math.Log10, 0)
}

// Log1p returns log(1 + f); its domain floor is -1.
func (f Enclosure) Log1p() Enclosure {
	return logLike(f, math.Log1p, -1)
}

// Sqrt returns the square root of f. An interval entirely below zero is a
// domain violation; one straddling zero keeps 0 as lower bound since the
// range floor is finite.
func (f Enclosure) Sqrt() Enclosure {
	switch {
	case f.Hi < 0:
		return nanTriple()
	case f.Lo < 0:
		v := 0.0
		if f.Val > 0 {
			v = math.Sqrt(f.Val)
		}
		return Enclosure{0, stepUp2(math.Sqrt(f.Hi)), v}
	default:
		return Enclosure{stepDown2(math.Sqrt(f.Lo)), stepUp2(math.Sqrt(f.Hi)), math.Sqrt(f.Val)}
	}
}

// Pow returns f**g, evaluating the scalar power at all four corner
// combinations of the operands' bounds. If any corner or the nominal
// power is NaN the whole result is the NaN triple.
func (f Enclosure) Pow(g Enclosure) Enclosure {
	ll := math.Pow(f.Lo, g.Lo)
	lh := math.Pow(f.Lo, g.Hi)
	hl := math.Pow(f.Hi, g.Lo)
	hh := math.Pow(f.Hi, g.Hi)
	v := math.Pow(f.Val, g.Val)
	if math.IsNaN(ll) || math.IsNaN(lh) || math.IsNaN(hl) || math.IsNaN(hh) || math.IsNaN(v) {
		return nanTriple()
	}
	return Enclosure{
		stepDown2(utils.Min4(ll, lh, hl, hh)),
		stepUp2(utils.Max4(ll, lh, hl, hh)),
		v,
	}
}

// PowAssign sets f to f**g.
func (f *Enclosure) PowAssign(g Enclosure) {
	*f = f.Pow(g)
}

// Abs returns the absolute value of f, folding the interval at zero when
// it straddles it. No widening is needed since negation is exact.
func (f Enclosure) Abs() Enclosure {
	switch {
	case f.Hi < 0:
		return f.Neg()
	case f.Lo < 0:
		return Enclosure{0, math.Max(-f.Lo, f.Hi), math.Abs(f.Val)}
	default:
		return f
	}
}

// absArgs maps an operand interval to the pair of arguments producing its
// minimal and maximal contribution to an even function of |x|: an
// interval straddling zero contributes its minimum at 0, not at a bound.
func absArgs(f Enclosure) (min, max float64) {
	if f.Lo < 0 {
		if f.Hi < 0 {
			return f.Hi, f.Lo
		}
		return 0, math.Max(-f.Lo, f.Hi)
	}
	return f.Lo, f.Hi
}

// Hypot returns sqrt(f**2 + g**2). A lower corner of exactly zero is kept
// at zero rather than stepped below it.
func (f Enclosure) Hypot(g Enclosure) Enclosure {
	fmin, fmax := absArgs(f)
	gmin, gmax := absArgs(g)
	lo := math.Hypot(fmin, gmin)
	if lo != 0 {
		lo = stepDown2(lo)
	}
	return Enclosure{
		lo,
		stepUp2(math.Hypot(fmax, gmax)),
		math.Hypot(f.Val, g.Val),
	}
}
