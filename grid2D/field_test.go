package grid2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenteredGridOps(t *testing.T) {
	a := ConstantCentered(4, 4, 1, 2)
	b := ConstantCentered(4, 4, 1, 3)
	assert.True(t, near(a.Add(b).At(1, 2), 5))
	assert.True(t, near(a.Sub(b).At(0, 0), -1))
	assert.True(t, near(a.MulElem(b).At(3, 3), 6))
	assert.True(t, near(b.DivElem(a).At(2, 1), 1.5))
	assert.True(t, near(a.Scale(-2).Min(), -4))
	assert.True(t, near(a.Scale(-2).MaxAbs(), 4))
	// Operands untouched
	assert.True(t, near(a.At(0, 0), 2))
	assert.True(t, near(b.At(0, 0), 3))
}

func TestSampleBilinear(t *testing.T) {
	// Linear field f(x, y) = x + 2y is reproduced exactly by bilinear
	// interpolation away from the clamped edges.
	f := NewCenteredGrid(8, 8, 1)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			x := float64(j) + 0.5
			y := float64(i) + 0.5
			f.Set(i, j, x+2*y)
		}
	}
	assert.True(t, near(f.Sample(3.1, 4.7), 3.1+2*4.7))
	assert.True(t, near(f.Sample(2.5, 2.5), 2.5+2*2.5))
}

func TestAtFaces(t *testing.T) {
	c := NewCenteredGrid(3, 3, 1)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c.Set(i, j, float64(j))
		}
	}
	s := c.AtFaces()
	// Interior x face averages its neighbors, edge faces clamp.
	assert.True(t, near(s.U.At(1, 1), 0.5))
	assert.True(t, near(s.U.At(1, 0), 0))
	assert.True(t, near(s.U.At(1, 3), 2))
	// y faces average vertically; field is constant in y.
	assert.True(t, near(s.V.At(1, 2), 2))
}

func TestStaggeredVelocityAt(t *testing.T) {
	v := NewStaggeredGrid(4, 4, 1)
	for i := 0; i < 4; i++ {
		for j := 0; j <= 4; j++ {
			v.U.Set(i, j, 3)
		}
	}
	u, w := v.VelocityAt(2, 2)
	assert.True(t, near(u, 3))
	assert.True(t, near(w, 0))
}

func TestDivergenceOfGradient(t *testing.T) {
	// div(grad(p)) must match the 5-point Laplacian with zero ghosts.
	p := NewCenteredGrid(4, 4, 1)
	p.Set(1, 1, 1)
	lap := Divergence(Gradient(p))
	assert.True(t, near(lap.At(1, 1), -4))
	assert.True(t, near(lap.At(1, 2), 1))
	assert.True(t, near(lap.At(0, 1), 1))
	// Corner cell: two ghost faces, both zero outside.
	assert.True(t, near(lap.At(0, 0), 0))
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1.e-8*(1+math.Abs(a))
}
