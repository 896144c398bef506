package enclosure

import (
	"math"
	"testing"

	"github.com/roundedfp/rounded/utils/sampling"
	"github.com/stretchr/testify/require"
)

func testPRNG(t *testing.T) *sampling.KeyedPRNG {
	prng, err := sampling.NewKeyedPRNG(sampling.KeyFromSeed([]byte("rounded-test-vectors")))
	require.NoError(t, err)
	return prng
}

// randEnclosure returns an interval of random center and width together
// with a scalar sampled inside it.
func randEnclosure(prng *sampling.KeyedPRNG, min, max float64) (Enclosure, float64) {
	center := sampling.RandFloat64(prng, min, max)
	width := math.Abs(sampling.RandFloat64(prng, 0, (max-min)/8))
	f := Enclosure{center - width, center + width, center}
	s := sampling.RandFloat64(prng, f.Lo, f.Hi)
	return f, s
}

// requireNaNTriple asserts full propagation: all three fields NaN, not
// just one.
func requireNaNTriple(t *testing.T, f Enclosure) {
	t.Helper()
	require.True(t, math.IsNaN(f.Lo))
	require.True(t, math.IsNaN(f.Hi))
	require.True(t, math.IsNaN(f.Val))
}

func requireSameBits(t *testing.T, want, got Enclosure) {
	require.Equal(t, math.Float64bits(want.Lo), math.Float64bits(got.Lo))
	require.Equal(t, math.Float64bits(want.Hi), math.Float64bits(got.Hi))
	require.Equal(t, math.Float64bits(want.Val), math.Float64bits(got.Val))
}

func TestNegInvolution(t *testing.T) {
	prng := testPRNG(t)
	for i := 0; i < 256; i++ {
		f, _ := randEnclosure(prng, -1e6, 1e6)
		requireSameBits(t, f, f.Neg().Neg())
	}
	require.True(t, nanTriple().Neg().IsNaN())

	f := Enclosure{-2, 3, 1}
	require.Equal(t, Enclosure{-3, 2, -1}, f.Neg())
	require.Equal(t, f, f.Pos())
}

func TestAddSub(t *testing.T) {
	f := Enclosure{1, 2, 1.5}
	g := Enclosure{10, 20, 15}

	sum := f.Add(g)
	require.Equal(t, stepDown(11.0), sum.Lo)
	require.Equal(t, stepUp(22.0), sum.Hi)
	require.Equal(t, 16.5, sum.Val)

	diff := f.Sub(g)
	require.Equal(t, stepDown(1-20.0), diff.Lo)
	require.Equal(t, stepUp(2-10.0), diff.Hi)
	require.Equal(t, 1.5-15, diff.Val)

	t.Run("Containment", func(t *testing.T) {
		prng := testPRNG(t)
		for i := 0; i < 512; i++ {
			f, fs := randEnclosure(prng, -1e3, 1e3)
			g, gs := randEnclosure(prng, -1e3, 1e3)
			sum := f.Add(g)
			require.LessOrEqual(t, sum.Lo, fs+gs)
			require.GreaterOrEqual(t, sum.Hi, fs+gs)
			diff := f.Sub(g)
			require.LessOrEqual(t, diff.Lo, fs-gs)
			require.GreaterOrEqual(t, diff.Hi, fs-gs)
		}
	})
}

func TestMulCorners(t *testing.T) {
	// corner products {8, -2, -12, 3}: extrema are attained at mixed
	// corners, not at (lo,lo)/(hi,hi)
	f := Enclosure{-2, 3, 0}
	g := Enclosure{-4, 1, 0}
	prod := f.Mul(g)
	require.Equal(t, stepDown(-12.0), prod.Lo)
	require.Equal(t, stepUp(8.0), prod.Hi)

	t.Run("Containment", func(t *testing.T) {
		prng := testPRNG(t)
		for i := 0; i < 512; i++ {
			f, fs := randEnclosure(prng, -100, 100)
			g, gs := randEnclosure(prng, -100, 100)
			prod := f.Mul(g)
			require.LessOrEqual(t, prod.Lo, fs*gs)
			require.GreaterOrEqual(t, prod.Hi, fs*gs)
		}
	})
}

func TestDiv(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		f := Enclosure{1, 2, 1.5}
		g := Enclosure{4, 5, 4.5}
		q := f.Div(g)
		require.Equal(t, stepDown(1.0/5.0), q.Lo)
		require.Equal(t, stepUp(2.0/4.0), q.Hi)
		require.Equal(t, 1.5/4.5, q.Val)
	})

	t.Run("ZeroLowerBound", func(t *testing.T) {
		// a divisor bound of exactly zero divides to a signed infinity
		q := Enclosure{1, 2, 1.5}.Div(Enclosure{0, 1, 0.5})
		require.True(t, math.IsInf(q.Hi, 1))
		require.Equal(t, stepDown(1.0), q.Lo)
		require.True(t, q.IsInf())
	})

	t.Run("ZeroUpperBound", func(t *testing.T) {
		q := Enclosure{1, 2, 1.5}.Div(Enclosure{-1, 0, -0.5})
		require.True(t, math.IsInf(q.Hi, 1))
		require.Equal(t, stepDown(-2.0), q.Lo)
	})

	t.Run("StraddlingDivisor", func(t *testing.T) {
		// quotients like 1/0.25 = 4 lie outside every corner quotient, so
		// the result must be unbounded rather than corner-bounded
		q := Enclosure{1, 2, 1.5}.Div(Enclosure{-1, 1, 0.5})
		require.True(t, math.IsInf(q.Lo, -1))
		require.True(t, math.IsInf(q.Hi, 1))
		require.Equal(t, 3.0, q.Val)
		require.LessOrEqual(t, q.Lo, 4.0)
		require.GreaterOrEqual(t, q.Hi, 4.0)
	})

	t.Run("ZeroOverZero", func(t *testing.T) {
		q := Enclosure{0, 1, 0.5}.Div(Enclosure{0, 1, 0.5})
		require.True(t, q.IsNaN())
	})

	t.Run("Containment", func(t *testing.T) {
		prng := testPRNG(t)
		for i := 0; i < 512; i++ {
			f, fs := randEnclosure(prng, -100, 100)
			g, gs := randEnclosure(prng, 1, 100) // divisor bounded away from zero
			q := f.Div(g)
			require.LessOrEqual(t, q.Lo, fs/gs)
			require.GreaterOrEqual(t, q.Hi, fs/gs)
		}
	})
}

func TestInPlaceMatchesValueForm(t *testing.T) {
	f := Enclosure{-2, 3, 1}
	g := Enclosure{-4, 1, -1}

	h := f
	h.AddAssign(g)
	requireSameBits(t, f.Add(g), h)

	h = f
	h.SubAssign(g)
	requireSameBits(t, f.Sub(g), h)

	h = f
	h.MulAssign(g)
	requireSameBits(t, f.Mul(g), h)

	h = f
	h.DivAssign(Enclosure{1, 2, 1.5})
	requireSameBits(t, f.Div(Enclosure{1, 2, 1.5}), h)

	h = f
	h.NegAssign()
	requireSameBits(t, f.Neg(), h)

	h = f
	h.PowAssign(Enclosure{2, 2, 2})
	requireSameBits(t, f.Pow(Enclosure{2, 2, 2}), h)

	h = f
	h.AddScalarAssign(2.5)
	requireSameBits(t, f.AddScalar(2.5), h)

	h = f
	h.SubScalarAssign(2.5)
	requireSameBits(t, f.SubScalar(2.5), h)

	h = f
	h.MulScalarAssign(2.5)
	requireSameBits(t, f.MulScalar(2.5), h)

	h = f
	h.DivScalarAssign(2.5)
	requireSameBits(t, f.DivScalar(2.5), h)
}

func TestScalarForms(t *testing.T) {
	f := Enclosure{1, 2, 1.5}

	requireSameBits(t, f.Add(FromFloat64(3)), f.AddScalar(3))
	requireSameBits(t, FromFloat64(3).Add(f), ScalarAdd(3, f))
	requireSameBits(t, f.Sub(FromFloat64(3)), f.SubScalar(3))
	requireSameBits(t, FromFloat64(3).Sub(f), ScalarSub(3, f))
	requireSameBits(t, f.Mul(FromFloat64(3)), f.MulScalar(3))
	requireSameBits(t, FromFloat64(3).Mul(f), ScalarMul(3, f))
	requireSameBits(t, f.Div(FromFloat64(3)), f.DivScalar(3))
	requireSameBits(t, FromFloat64(3).Div(f), ScalarDiv(3, f))

	// order matters for the non-commutative operations
	require.NotEqual(t, f.SubScalar(3), ScalarSub(3, f))
	require.NotEqual(t, f.DivScalar(3), ScalarDiv(3, f))
}

func TestArithNaNPropagation(t *testing.T) {
	n := nanTriple()
	f := FromFloat64(1.5)

	requireNaNTriple(t, n.Add(f))
	requireNaNTriple(t, f.Add(n))
	requireNaNTriple(t, n.Sub(f))
	requireNaNTriple(t, n.Mul(f))
	requireNaNTriple(t, n.Div(f))
	requireNaNTriple(t, f.Div(n))
	requireNaNTriple(t, n.Div(Enclosure{-1, 1, 0.5}))
	requireNaNTriple(t, n.Neg())
}
