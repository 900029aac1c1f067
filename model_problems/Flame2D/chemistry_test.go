package Flame2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/combustsim/gobunsen/grid2D"
)

func TestReactionSourceSigns(t *testing.T) {
	fp := Methane()
	rho := grid2D.ConstantCentered(2, 2, 1, 0.2)
	te := grid2D.ConstantCentered(2, 2, 1, 1500)
	yf := grid2D.ConstantCentered(2, 2, 1, 0.05)
	yo := grid2D.ConstantCentered(2, 2, 1, 0.2)
	wt, wkf, wko := fp.ReactionSource(rho, te, yf, yo)
	// Fuel and oxidizer are consumed, heat is released (negative Wt feeds
	// the step's T -= Wt*dt/(rho*cp)).
	assert.True(t, wkf.At(0, 0) < 0)
	assert.True(t, wko.At(0, 0) < 0)
	assert.True(t, wt.At(0, 0) < 0)
	// Stoichiometry: oxidizer consumption is Vo*Wo/(Vf*Wf) times fuel's.
	ratio := wko.At(0, 0) / wkf.At(0, 0)
	assert.InDelta(t, fp.Vo*fp.Wo/(fp.Vf*fp.Wf), ratio, 1.e-9)
}

func TestReactionSourceValue(t *testing.T) {
	fp := Methane()
	rho := grid2D.ConstantCentered(1, 1, 1, 0.2)
	te := grid2D.ConstantCentered(1, 1, 1, 1500)
	yf := grid2D.ConstantCentered(1, 1, 1, 0.05)
	yo := grid2D.ConstantCentered(1, 1, 1, 0.2)
	_, wkf, _ := fp.ReactionSource(rho, te, yf, yo)
	w := fp.A * (0.2 * 0.05 / fp.Wf) * (0.2 * 0.2 / fp.Wo) * math.Exp(-fp.E/(RGas*1500))
	assert.InDelta(t, fp.Vf*fp.Wf*w, wkf.At(0, 0), math.Abs(w)*1.e-9)
}

func TestReactionSourceVanishesWithoutReactants(t *testing.T) {
	fp := Methane()
	rho := grid2D.ConstantCentered(2, 2, 1, 0.2)
	te := grid2D.ConstantCentered(2, 2, 1, 1500)
	yf := grid2D.NewCenteredGrid(2, 2, 1) // no fuel
	yo := grid2D.ConstantCentered(2, 2, 1, 0.2)
	wt, wkf, wko := fp.ReactionSource(rho, te, yf, yo)
	assert.True(t, wt.MaxAbs() == 0)
	assert.True(t, wkf.MaxAbs() == 0)
	assert.True(t, wko.MaxAbs() == 0)
}
