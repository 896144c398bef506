package enclosure

import "math"

// Pre-widened enclosures of the trigonometric constants. The bounds are
// the adjacent float64 values surrounding the true constant, so period
// and quadrant arithmetic on them stays sound.
var (
	TwoPi  = Enclosure{6.283185307179586, 6.283185307179587, 6.283185307179586}
	Pi     = Enclosure{3.141592653589793, 3.1415926535897936, 3.141592653589793}
	HalfPi = Enclosure{1.5707963267948966, 1.5707963267948968, 1.5707963267948966}
)

// Sin returns the sine of f. Sine is not monotonic, so boundary
// evaluation alone would understate the range whenever an extremum lies
// inside the interval: the bounds are clamped to exactly -1 or +1 when a
// minimum or maximum of the function falls inside [Lo, Hi]. The interval
// is located within its period by subtracting the multiple of 2pi below
// Lo, then the half-pi quadrant boundaries crossed by the interval decide
// which extrema are interior.
func (f Enclosure) Sin() Enclosure {
	n := math.Floor(f.Lo / TwoPi.Lo)
	da := f.Lo - n*TwoPi.Lo
	db := f.Hi - n*TwoPi.Lo
	sa := math.Sin(f.Lo)
	sb := math.Sin(f.Hi)
	out := Enclosure{
		stepDown2(math.Min(sa, sb)),
		stepUp2(math.Max(sa, sb)),
		math.Sin(f.Val),
	}
	// da lies in [0, 2pi): the only maxima reachable by db are at pi/2
	// and 5pi/2, the only minima at 3pi/2 and 7pi/2
	if (da <= HalfPi.Lo && db > HalfPi.Lo) || db > 5*HalfPi.Lo {
		out.Hi = 1
	}
	if (da <= 3*HalfPi.Lo && db > 3*HalfPi.Lo) || db > 7*HalfPi.Lo {
		out.Lo = -1
	}
	return out
}

// Cos returns the cosine of f, with the same extremum capture as Sin but
// with minima at odd multiples of pi and maxima at even ones.
func (f Enclosure) Cos() Enclosure {
	n := math.Floor(f.Lo / TwoPi.Lo)
	da := f.Lo - n*TwoPi.Lo
	db := f.Hi - n*TwoPi.Lo
	ca := math.Cos(f.Lo)
	cb := math.Cos(f.Hi)
	out := Enclosure{
		stepDown2(math.Min(ca, cb)),
		stepUp2(math.Max(ca, cb)),
		math.Cos(f.Val),
	}
	// da lies in [0, 2pi): the only maximum reachable by db is at 2pi,
	// the only minima at pi and 3pi
	if db > TwoPi.Lo {
		out.Hi = 1
	}
	if (da <= Pi.Lo && db > Pi.Lo) || db > 3*Pi.Lo {
		out.Lo = -1
	}
	return out
}

// Tan returns the tangent of f. If the interval is wider than a period or
// the boundary evaluations decrease from Lo to Hi, a branch discontinuity
// was crossed and the result is unbounded.
func (f Enclosure) Tan() Enclosure {
	ta := math.Tan(f.Lo)
	tb := math.Tan(f.Hi)
	if ta > tb || f.Hi-f.Lo > Pi.Lo {
		return Enclosure{math.Inf(-1), math.Inf(1), math.Tan(f.Val)}
	}
	return Enclosure{stepDown2(ta), stepUp2(tb), math.Tan(f.Val)}
}

// Asin returns the arcsine of f. Bounds beyond [-1, 1] clamp to the
// function's extreme outputs (the pre-widened +-pi/2); an interval
// entirely outside the domain is a violation.
func (f Enclosure) Asin() Enclosure {
	if f.Hi < -1 || f.Lo > 1 {
		return nanTriple()
	}
	var out Enclosure
	if f.Lo < -1 {
		out.Lo = -HalfPi.Hi
	} else {
		out.Lo = stepDown2(math.Asin(f.Lo))
	}
	if f.Hi > 1 {
		out.Hi = HalfPi.Hi
	} else {
		out.Hi = stepUp2(math.Asin(f.Hi))
	}
	switch {
	case f.Val < -1:
		out.Val = -HalfPi.Val
	case f.Val > 1:
		out.Val = HalfPi.Val
	default:
		out.Val = math.Asin(f.Val)
	}
	return out
}

// Acos returns the arccosine of f. Decreasing, so the input bounds swap
// roles; clamps map to pi and 0.
func (f Enclosure) Acos() Enclosure {
	if f.Hi < -1 || f.Lo > 1 {
		return nanTriple()
	}
	var out Enclosure
	if f.Lo < -1 {
		out.Hi = Pi.Hi
	} else {
		out.Hi = stepUp2(math.Acos(f.Lo))
	}
	if f.Hi > 1 {
		out.Lo = 0
	} else {
		out.Lo = stepDown2(math.Acos(f.Hi))
	}
	switch {
	case f.Val < -1:
		out.Val = Pi.Val
	case f.Val > 1:
		out.Val = 0
	default:
		out.Val = math.Acos(f.Val)
	}
	return out
}

// Atan returns the arctangent of f.
func (f Enclosure) Atan() Enclosure {
	return monotonicUp(f, math.Atan)
}

// Atan2 returns the two-argument arctangent with f as the y coordinate
// and x as the x coordinate. The extremal outputs depend on which
// quadrants and axes the rectangle [x.Lo,x.Hi]x[f.Lo,f.Hi] spans, so the
// bounds come from a nine-region split on the signs of the four interval
// bounds. A rectangle containing the origin spans the full output range;
// one straddling the negative-x branch cut is unwrapped toward the branch
// holding the nominal y value.
func (f Enclosure) Atan2(x Enclosure) Enclosure {
	var out Enclosure
	switch {
	case f.Lo > 0:
		// monotonically decreasing in x
		switch {
		case x.Lo > 0:
			out.Lo = math.Atan2(f.Lo, x.Hi)
			out.Hi = math.Atan2(f.Hi, x.Lo)
		case x.Hi > 0:
			// spans the positive y axis
			out.Lo = math.Atan2(f.Lo, x.Hi)
			out.Hi = math.Atan2(f.Lo, x.Lo)
		default:
			out.Lo = math.Atan2(f.Hi, x.Hi)
			out.Hi = math.Atan2(f.Lo, x.Lo)
		}
	case f.Hi > 0:
		// spans the x axis
		switch {
		case x.Lo > 0:
			out.Lo = math.Atan2(f.Lo, x.Lo)
			out.Hi = math.Atan2(f.Hi, x.Lo)
		case x.Hi > 0:
			// contains the origin: full output range
			out.Lo = -Pi.Lo
			out.Hi = Pi.Lo
		default:
			// straddles the branch cut
			out.Lo = math.Atan2(f.Hi, x.Hi) // between pi/2 and pi
			out.Hi = math.Atan2(f.Lo, x.Hi) // between -pi and -pi/2
			if f.Val > 0 {
				out.Hi += TwoPi.Lo
			} else {
				out.Lo -= TwoPi.Lo
			}
		}
	default:
		// monotonically increasing in x
		switch {
		case x.Lo > 0:
			out.Lo = math.Atan2(f.Lo, x.Lo)
			out.Hi = math.Atan2(f.Hi, x.Hi)
		case x.Hi > 0:
			// spans the negative y axis
			out.Lo = math.Atan2(f.Hi, x.Lo)
			out.Hi = math.Atan2(f.Hi, x.Hi)
		default:
			out.Lo = math.Atan2(f.Hi, x.Lo)
			out.Hi = math.Atan2(f.Lo, x.Hi)
		}
	}
	out.Lo = stepDown2(out.Lo)
	out.Hi = stepUp2(out.Hi)
	out.Val = math.Atan2(f.Val, x.Val)
	return out
}

// Sinh returns the hyperbolic sine of f.
func (f Enclosure) Sinh() Enclosure {
	return monotonicUp(f, math.Sinh)
}

// Cosh returns the hyperbolic cosine of f. Even with a minimum of 1 at
// zero, so an interval straddling zero takes 1 as lower bound. The
// straddle test is written to be false on NaN bounds, so a NaN operand
// propagates through both bounds instead of picking up the clamp.
func (f Enclosure) Cosh() Enclosure {
	a := math.Cosh(f.Lo)
	b := math.Cosh(f.Hi)
	out := Enclosure{
		Hi:  stepUp2(math.Max(a, b)),
		Val: math.Cosh(f.Val),
	}
	if f.Lo <= 0 && f.Hi >= 0 {
		out.Lo = 1
	} else {
		out.Lo = stepDown2(math.Min(a, b))
	}
	return out
}

// Tanh returns the hyperbolic tangent of f.
func (f Enclosure) Tanh() Enclosure {
	return monotonicUp(f, math.Tanh)
}

// Asinh returns the inverse hyperbolic sine of f.
func (f Enclosure) Asinh() Enclosure {
	return monotonicUp(f, math.Asinh)
}

// Acosh returns the inverse hyperbolic cosine of f. Same three-way domain
// split as the log family but with floor 1 and a finite range floor of 0.
func (f Enclosure) Acosh() Enclosure {
	switch {
	case f.Hi < 1:
		return nanTriple()
	case f.Lo < 1:
		v := 0.0
		if f.Val > 1 {
			v = math.Acosh(f.Val)
		}
		return Enclosure{0, stepUp2(math.Acosh(f.Hi)), v}
	default:
		return Enclosure{stepDown2(math.Acosh(f.Lo)), stepUp2(math.Acosh(f.Hi)), math.Acosh(f.Val)}
	}
}

// Atanh returns the inverse hyperbolic tangent of f. Same clamping
// pattern as Asin, but the extrema at +-1 are infinite.
func (f Enclosure) Atanh() Enclosure {
	if f.Hi < -1 || f.Lo > 1 {
		return nanTriple()
	}
	var out Enclosure
	if f.Lo < -1 {
		out.Lo = math.Inf(-1)
	} else {
		out.Lo = stepDown2(math.Atanh(f.Lo))
	}
	if f.Hi > 1 {
		out.Hi = math.Inf(1)
	} else {
		out.Hi = stepUp2(math.Atanh(f.Hi))
	}
	switch {
	case f.Val < -1:
		out.Val = math.Inf(-1)
	case f.Val > 1:
		out.Val = math.Inf(1)
	default:
		out.Val = math.Atanh(f.Val)
	}
	return out
}
