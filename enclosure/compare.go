package enclosure

import "math"

// The six comparisons below treat an enclosure as the set of values
// between its bounds: two enclosures are equal as soon as they overlap,
// and strictly ordered only when they are disjoint. They do not form a
// total order: Equal is reflexive but not transitive, and for two
// overlapping, non-degenerate intervals neither Less nor Greater holds.
// Every comparison except NotEqual is false when either operand is NaN.

// Equal reports whether f and g overlap.
func (f Enclosure) Equal(g Enclosure) bool {
	return !f.IsNaN() && !g.IsNaN() &&
		f.Lo <= g.Hi && f.Hi >= g.Lo
}

// NotEqual reports whether f and g are disjoint, or either is NaN.
func (f Enclosure) NotEqual(g Enclosure) bool {
	return f.IsNaN() || g.IsNaN() ||
		f.Lo > g.Hi || f.Hi < g.Lo
}

// LessOrEqual reports whether any value of f is at most some value of g.
func (f Enclosure) LessOrEqual(g Enclosure) bool {
	return !f.IsNaN() && !g.IsNaN() &&
		f.Lo <= g.Hi
}

// Less reports whether f lies entirely below g, with no overlap.
func (f Enclosure) Less(g Enclosure) bool {
	return !f.IsNaN() && !g.IsNaN() &&
		f.Hi < g.Lo
}

// GreaterOrEqual reports whether any value of f is at least some value of g.
func (f Enclosure) GreaterOrEqual(g Enclosure) bool {
	return !f.IsNaN() && !g.IsNaN() &&
		f.Hi >= g.Lo
}

// Greater reports whether f lies entirely above g, with no overlap.
func (f Enclosure) Greater(g Enclosure) bool {
	return !f.IsNaN() && !g.IsNaN() &&
		f.Lo > g.Hi
}

// IsNonzero reports whether the interval excludes zero.
func (f Enclosure) IsNonzero() bool {
	return f.Lo > 0 || f.Hi < 0
}

// IsNaN reports whether any field is NaN.
func (f Enclosure) IsNaN() bool {
	return math.IsNaN(f.Lo) || math.IsNaN(f.Hi) || math.IsNaN(f.Val)
}

// IsInf reports whether either bound or the nominal value is infinite.
func (f Enclosure) IsInf() bool {
	return math.IsInf(f.Lo, 0) || math.IsInf(f.Hi, 0) || math.IsInf(f.Val, 0)
}

// IsFinite reports whether both bounds are finite.
func (f Enclosure) IsFinite() bool {
	return !math.IsInf(f.Lo, 0) && !math.IsNaN(f.Lo) &&
		!math.IsInf(f.Hi, 0) && !math.IsNaN(f.Hi)
}
