package cplx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosimd/go-lanes/lanes"
)

// loadPattern builds a complex vector whose first two elements are the
// given values, repeating the pattern across the full width.
func loadPattern(re0, im0, re1, im1 float64) Complex[float64] {
	n := lanes.MaxLanes[float64]()
	re := make([]float64, n)
	im := make([]float64, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			re[i], im[i] = re0, im0
		} else {
			re[i], im[i] = re1, im1
		}
	}
	return Load(re, im)
}

func TestSetZero(t *testing.T) {
	c := Set[float32](1.5, -2.5)
	for i := 0; i < c.NumLanes(); i++ {
		require.Equal(t, float32(1.5), lanes.GetLane(c.Re, i))
		require.Equal(t, float32(-2.5), lanes.GetLane(c.Im, i))
	}

	z := Zero[float32]()
	for i := 0; i < z.NumLanes(); i++ {
		require.Zero(t, lanes.GetLane(z.Re, i))
		require.Zero(t, lanes.GetLane(z.Im, i))
	}
}

func TestLoadStoreRoundTrip(t *testing.T) {
	n := lanes.MaxLanes[float64]()
	re := make([]float64, n)
	im := make([]float64, n)
	for i := range re {
		re[i] = float64(i)
		im[i] = float64(-i)
	}

	c := Load(re, im)
	reOut := make([]float64, n)
	imOut := make([]float64, n)
	Store(c, reOut, imOut)

	assert.Equal(t, re, reOut)
	assert.Equal(t, im, imOut)
}

func TestAddSub(t *testing.T) {
	a := Set[float64](1, 2)
	b := Set[float64](10, 20)

	sum := Add(a, b)
	diff := Sub(b, a)
	for i := 0; i < sum.NumLanes(); i++ {
		require.Equal(t, 11.0, lanes.GetLane(sum.Re, i))
		require.Equal(t, 22.0, lanes.GetLane(sum.Im, i))
		require.Equal(t, 9.0, lanes.GetLane(diff.Re, i))
		require.Equal(t, 18.0, lanes.GetLane(diff.Im, i))
	}
}

func TestMul(t *testing.T) {
	// (1+3i)(5+7i) = 5 - 21 + (7+15)i = -16 + 22i
	// (2+4i)(6+8i) = 12 - 32 + (16+24)i = -20 + 40i
	a := loadPattern(1, 3, 2, 4)
	b := loadPattern(5, 7, 6, 8)
	p := Mul(a, b)

	for i := 0; i < p.NumLanes(); i++ {
		if i%2 == 0 {
			require.Equal(t, -16.0, lanes.GetLane(p.Re, i), "lane %d", i)
			require.Equal(t, 22.0, lanes.GetLane(p.Im, i), "lane %d", i)
		} else {
			require.Equal(t, -20.0, lanes.GetLane(p.Re, i), "lane %d", i)
			require.Equal(t, 40.0, lanes.GetLane(p.Im, i), "lane %d", i)
		}
	}
}

func TestMulMatchesComplex128(t *testing.T) {
	a := Set[float64](1.25, -0.5)
	b := Set[float64](-3.0, 2.75)
	p := Mul(a, b)

	want := complex(1.25, -0.5) * complex(-3.0, 2.75)
	for i := 0; i < p.NumLanes(); i++ {
		require.InDelta(t, real(want), lanes.GetLane(p.Re, i), 1e-12)
		require.InDelta(t, imag(want), lanes.GetLane(p.Im, i), 1e-12)
	}
}

func TestConj(t *testing.T) {
	c := Set[float64](3, 4)
	conj := Conj(c)

	for i := 0; i < conj.NumLanes(); i++ {
		require.Equal(t, 3.0, lanes.GetLane(conj.Re, i))
		require.Equal(t, -4.0, lanes.GetLane(conj.Im, i))
	}

	// z * conj(z) is |z|^2, purely real.
	p := Mul(c, conj)
	for i := 0; i < p.NumLanes(); i++ {
		require.Equal(t, 25.0, lanes.GetLane(p.Re, i))
		require.Zero(t, lanes.GetLane(p.Im, i))
	}
}

func TestMulI(t *testing.T) {
	c := Set[float64](3, 4)

	// (3+4i)*i = -4+3i
	ci := MulI(c)
	for i := 0; i < ci.NumLanes(); i++ {
		require.Equal(t, -4.0, lanes.GetLane(ci.Re, i))
		require.Equal(t, 3.0, lanes.GetLane(ci.Im, i))
	}

	// MulI must agree with a full multiplication by 0+1i.
	full := Mul(c, Set[float64](0, 1))
	for i := 0; i < full.NumLanes(); i++ {
		require.Equal(t, lanes.GetLane(full.Re, i), lanes.GetLane(ci.Re, i))
		require.Equal(t, lanes.GetLane(full.Im, i), lanes.GetLane(ci.Im, i))
	}
}

func TestMulNegI(t *testing.T) {
	c := Set[float64](3, 4)

	// (3+4i)*-i = 4-3i
	cn := MulNegI(c)
	for i := 0; i < cn.NumLanes(); i++ {
		require.Equal(t, 4.0, lanes.GetLane(cn.Re, i))
		require.Equal(t, -3.0, lanes.GetLane(cn.Im, i))
	}

	// Applying i then -i is the identity.
	back := MulNegI(MulI(c))
	for i := 0; i < back.NumLanes(); i++ {
		require.Equal(t, 3.0, lanes.GetLane(back.Re, i))
		require.Equal(t, 4.0, lanes.GetLane(back.Im, i))
	}
}

func TestMulIFourTimesIsIdentity(t *testing.T) {
	c := Set[float32](1.5, -2.5)
	r := MulI(MulI(MulI(MulI(c))))

	for i := 0; i < r.NumLanes(); i++ {
		require.Equal(t, float32(1.5), lanes.GetLane(r.Re, i))
		require.Equal(t, float32(-2.5), lanes.GetLane(r.Im, i))
	}
}

func TestNeg(t *testing.T) {
	c := Set[float64](3, -4)
	n := Neg(c)

	for i := 0; i < n.NumLanes(); i++ {
		require.Equal(t, -3.0, lanes.GetLane(n.Re, i))
		require.Equal(t, 4.0, lanes.GetLane(n.Im, i))
	}
}

func TestScale(t *testing.T) {
	c := Set[float64](2, -3)
	s := Scale(c, 1.5)

	for i := 0; i < s.NumLanes(); i++ {
		require.Equal(t, 3.0, lanes.GetLane(s.Re, i))
		require.Equal(t, -4.5, lanes.GetLane(s.Im, i))
	}
}

func TestNormSqrAbs(t *testing.T) {
	c := Set[float64](3, 4)

	norm := NormSqr(c)
	abs := Abs(c)
	for i := 0; i < c.NumLanes(); i++ {
		require.Equal(t, 25.0, lanes.GetLane(norm, i))
		require.Equal(t, 5.0, lanes.GetLane(abs, i))
	}
}

func TestInterleavedRoundTrip(t *testing.T) {
	n := lanes.MaxLanes[float32]()
	src := make([]float32, 2*n)
	for i := range src {
		src[i] = float32(i) + 0.5
	}

	c := FromInterleaved(src)
	for i := 0; i < n; i++ {
		require.Equal(t, src[2*i], lanes.GetLane(c.Re, i), "re lane %d", i)
		require.Equal(t, src[2*i+1], lanes.GetLane(c.Im, i), "im lane %d", i)
	}

	out := make([]float32, 2*n)
	ToInterleaved(c, out)
	assert.Equal(t, src, out)
}
