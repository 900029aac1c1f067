package Flame2D

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/combustsim/gobunsen/grid2D"
)

func TestCopiedWithOverrides(t *testing.T) {
	s := NewUniformState(8, 1, 800, 101325, 1, 0, 1.0, 0.1)
	temp := grid2D.ConstantCentered(8, 8, 1, 1200)
	o := s.CopiedWith(WithTemperature(temp), WithAge(0.5))

	assert.True(t, near(o.Temperature.At(3, 3), 1200))
	assert.True(t, near(o.Age, 0.5))
	// Untouched fields are shared, constants carried over.
	assert.Equal(t, s.Pressure, o.Pressure)
	assert.Equal(t, s.Eq, o.Eq)
	assert.Equal(t, s.BuoyancyFactor, o.BuoyancyFactor)
	// The source state is unchanged.
	assert.True(t, near(s.Temperature.At(3, 3), 800))
	assert.True(t, near(s.Age, 0))
}

func TestValidateShapeMismatch(t *testing.T) {
	s := NewUniformState(8, 1, 800, 101325, 1, 0, 1.0, 0.1)
	assert.NoError(t, s.Validate(8))
	err := s.Validate(16)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestValidatePhysicalRanges(t *testing.T) {
	s := NewUniformState(8, 1, 800, 101325, 1, 0, 1.0, 0.1)

	cold := s.CopiedWith(WithTemperature(grid2D.NewCenteredGrid(8, 8, 1)))
	assert.True(t, errors.Is(cold.Validate(8), ErrInvalidParameter))

	vacuum := s.CopiedWith(WithPressure(grid2D.NewCenteredGrid(8, 8, 1)))
	assert.True(t, errors.Is(vacuum.Validate(8), ErrInvalidParameter))

	negative := s.CopiedWith(WithYo(grid2D.ConstantCentered(8, 8, 1, -0.2)))
	assert.True(t, errors.Is(negative.Validate(8), ErrInvalidParameter))
}
