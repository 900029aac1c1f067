package grid2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func constantVelocity(ny, nx int, u, v float64) (s *StaggeredGrid) {
	s = NewStaggeredGrid(ny, nx, 1)
	for i := 0; i < ny; i++ {
		for j := 0; j <= nx; j++ {
			s.U.Set(i, j, u)
		}
	}
	for i := 0; i <= ny; i++ {
		for j := 0; j < nx; j++ {
			s.V.Set(i, j, v)
		}
	}
	return
}

func TestAdvectUniformFieldIsInvariant(t *testing.T) {
	f := ConstantCentered(8, 8, 1, 7)
	vel := constantVelocity(8, 8, 1.3, -0.4)
	o := AdvectCentered(f, vel, 0.5)
	for _, v := range o.Data() {
		assert.True(t, near(v, 7))
	}
}

func TestAdvectTranslatesLinearField(t *testing.T) {
	// f(x) = x advected by u = 1 for dt = 1 becomes f(x) = x - 1 away from
	// the clamped inflow edge.
	f := NewCenteredGrid(8, 8, 1)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			f.Set(i, j, float64(j)+0.5)
		}
	}
	vel := constantVelocity(8, 8, 1, 0)
	o := AdvectCentered(f, vel, 1)
	for i := 0; i < 8; i++ {
		for j := 2; j < 8; j++ {
			assert.True(t, near(o.At(i, j), float64(j)-0.5))
		}
	}
}

func TestAdvectStaggeredSelfUniform(t *testing.T) {
	vel := constantVelocity(8, 8, 2, 1)
	o := AdvectStaggered(vel, vel, 0.3)
	assert.True(t, near(o.U.At(4, 4), 2))
	assert.True(t, near(o.V.At(4, 4), 1))
}

func TestDiffusePreservesUniformField(t *testing.T) {
	f := ConstantCentered(6, 6, 1, 300)
	o := DiffuseCentered(f, 0.1, 2)
	for _, v := range o.Data() {
		assert.True(t, near(v, 300))
	}
}

func TestDiffuseSmoothsPeak(t *testing.T) {
	f := NewCenteredGrid(5, 5, 1)
	f.Set(2, 2, 1)
	o := DiffuseCentered(f, 0.1, 1)
	assert.True(t, o.At(2, 2) < 1)
	assert.True(t, o.At(2, 1) > 0)
	assert.True(t, o.At(1, 2) > 0)
	// Neumann edges conserve the total.
	var sum float64
	for _, v := range o.Data() {
		sum += v
	}
	assert.True(t, near(sum, 1))
}
