package Flame2D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/combustsim/gobunsen/grid2D"
)

func TestFuelByName(t *testing.T) {
	m, err := FuelByName("methane")
	assert.NoError(t, err)
	assert.Equal(t, 0.016, m.Wf)
	p, err := FuelByName("propane")
	assert.NoError(t, err)
	assert.Equal(t, 0.044, p.Wf)
	_, err = FuelByName("kerosene")
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestDensityValue(t *testing.T) {
	// Air-like mixture: Yo = 0.23, rest product.
	fp := Methane()
	pr := grid2D.ConstantCentered(2, 2, 1, 101325)
	te := grid2D.ConstantCentered(2, 2, 1, 300)
	yf := grid2D.NewCenteredGrid(2, 2, 1)
	yo := grid2D.ConstantCentered(2, 2, 1, 0.23)
	rho, err := fp.Density(pr, te, yf, yo)
	assert.NoError(t, err)
	mix := 0.23/fp.Wo + 0.77/fp.Wp
	assert.InDelta(t, 101325/(RGas*mix*300), rho.At(1, 1), 1.e-9)
}

func TestDensityPositivity(t *testing.T) {
	fp := Methane()
	for _, tc := range []struct{ p, T, yf, yo float64 }{
		{101325, 300, 0, 0},
		{101325, 800, 1, 0},
		{101325, 2000, 0, 1},
		{5000, 350, 0.3, 0.5},
		{2.e5, 1500, 0.055, 0.2},
	} {
		pr := grid2D.ConstantCentered(2, 2, 1, tc.p)
		te := grid2D.ConstantCentered(2, 2, 1, tc.T)
		yf := grid2D.ConstantCentered(2, 2, 1, tc.yf)
		yo := grid2D.ConstantCentered(2, 2, 1, tc.yo)
		rho, err := fp.Density(pr, te, yf, yo)
		assert.NoError(t, err)
		for _, v := range rho.Data() {
			assert.True(t, v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v))
		}
	}
}

func TestDensityDegenerateTemperature(t *testing.T) {
	fp := Methane()
	pr := grid2D.ConstantCentered(2, 2, 1, 101325)
	te := grid2D.NewCenteredGrid(2, 2, 1) // zero temperature
	yf := grid2D.NewCenteredGrid(2, 2, 1)
	yo := grid2D.NewCenteredGrid(2, 2, 1)
	_, err := fp.Density(pr, te, yf, yo)
	assert.True(t, errors.Is(err, ErrDegenerateInput))
}
