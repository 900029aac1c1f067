package Flame2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMixtureBoundsMonotonic(t *testing.T) {
	b := NewMixtureBounds(1.0)
	assert.True(t, b.ZfMin < b.ZfMax)
	assert.True(t, b.ZoMin < b.ZoMax)
	assert.InDelta(t, 1/(1+4*4.29/0.8), b.ZfMin, 1.e-12)
	assert.InDelta(t, 1/(1+4*4.29/1.0), b.ZfMax, 1.e-12)
	assert.InDelta(t, 1-b.ZfMax, b.ZoMin, 1.e-12)
	assert.InDelta(t, 1-b.ZfMin, b.ZoMax, 1.e-12)
}

func TestMixtureBoundsIgnoreEq(t *testing.T) {
	// The original model derives the bounds from a fixed reference range, so
	// the equivalence ratio must have no influence here.
	assert.Equal(t, NewMixtureBounds(0.5), NewMixtureBounds(2.0))
}

func TestMixtureBoundsCorrected(t *testing.T) {
	// The corrected variant honors eq and reduces to the default at eq = 1.
	assert.Equal(t, NewMixtureBounds(1.0), NewMixtureBoundsCorrected(1.0))
	rich := NewMixtureBoundsCorrected(1.5)
	lean := NewMixtureBoundsCorrected(0.5)
	assert.True(t, rich.ZfMax > lean.ZfMax)
	assert.True(t, rich.ZfMin < rich.ZfMax)
	assert.True(t, lean.ZoMin < lean.ZoMax)
}
