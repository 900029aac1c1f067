package Flame2D

import (
	"errors"
	"fmt"

	"github.com/combustsim/gobunsen/grid2D"
)

var (
	// ErrDegenerateInput marks numerical degeneracy: a zero-range roughness
	// slice, a vanishing mixing term in the state equation, or NaN/Inf
	// appearing in a freshly computed field.
	ErrDegenerateInput = errors.New("degenerate input")
	// ErrShapeMismatch marks roughness or obstacle geometry incompatible
	// with the state resolution. Raised before any field is touched.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInvalidParameter marks physically invalid step inputs such as a
	// non-positive dt or mass fractions outside [0,1].
	ErrInvalidParameter = errors.New("invalid parameter")
)

// SolveInfo carries diagnostics from the most recent pressure projection.
type SolveInfo struct {
	PressureIncrement *grid2D.CenteredGrid
	Divergence        *grid2D.CenteredGrid // pre-projection momentum divergence
	Iterations        int
}

/*
	FluidState is one immutable snapshot of the simulation. A step never
	mutates the state it was given: every update constructs new field values
	and a new snapshot via CopiedWith. Callers may therefore keep references
	to earlier states, and concurrent readers of a state are safe, but a
	single state must not be advanced by two steps concurrently.

	Yf and Yo are the fuel and oxidizer mass fractions; the product fraction
	is implicitly 1 - Yf - Yo. Wt, Wkf and Wko are the volumetric source
	rates for energy and species, refreshed from chemistry between steps and
	consumed one step lagged.
*/
type FluidState struct {
	Velocity                       *grid2D.StaggeredGrid
	Temperature, Pressure, Density *grid2D.CenteredGrid
	Yf, Yo                         *grid2D.CenteredGrid
	Wt, Wkf, Wko                   *grid2D.CenteredGrid

	Amp, Eq, BuoyancyFactor float64
	Age                     float64

	Info SolveInfo
}

// StateOption overrides one field when copying a state.
type StateOption func(*FluidState)

func WithVelocity(v *grid2D.StaggeredGrid) StateOption {
	return func(s *FluidState) { s.Velocity = v }
}
func WithTemperature(t *grid2D.CenteredGrid) StateOption {
	return func(s *FluidState) { s.Temperature = t }
}
func WithPressure(p *grid2D.CenteredGrid) StateOption {
	return func(s *FluidState) { s.Pressure = p }
}
func WithDensity(d *grid2D.CenteredGrid) StateOption {
	return func(s *FluidState) { s.Density = d }
}
func WithYf(y *grid2D.CenteredGrid) StateOption {
	return func(s *FluidState) { s.Yf = y }
}
func WithYo(y *grid2D.CenteredGrid) StateOption {
	return func(s *FluidState) { s.Yo = y }
}
func WithSources(wt, wkf, wko *grid2D.CenteredGrid) StateOption {
	return func(s *FluidState) { s.Wt, s.Wkf, s.Wko = wt, wkf, wko }
}
func WithAge(age float64) StateOption {
	return func(s *FluidState) { s.Age = age }
}
func WithInfo(info SolveInfo) StateOption {
	return func(s *FluidState) { s.Info = info }
}

// CopiedWith returns a new snapshot equal to s except for the given
// overrides. Fields not overridden are shared with s; they are never
// mutated, so sharing is safe.
func (s *FluidState) CopiedWith(opts ...StateOption) *FluidState {
	o := *s
	for _, opt := range opts {
		opt(&o)
	}
	return &o
}

// NewUniformState builds a res x res state with uniform temperature,
// pressure and composition, zero velocity and zero source rates.
func NewUniformState(res int, dx, temperature, pressure, yf, yo, eq, buoyancyFactor float64) *FluidState {
	return &FluidState{
		Velocity:       grid2D.NewStaggeredGrid(res, res, dx),
		Temperature:    grid2D.ConstantCentered(res, res, dx, temperature),
		Pressure:       grid2D.ConstantCentered(res, res, dx, pressure),
		Density:        grid2D.NewCenteredGrid(res, res, dx),
		Yf:             grid2D.ConstantCentered(res, res, dx, yf),
		Yo:             grid2D.ConstantCentered(res, res, dx, yo),
		Wt:             grid2D.NewCenteredGrid(res, res, dx),
		Wkf:            grid2D.NewCenteredGrid(res, res, dx),
		Wko:            grid2D.NewCenteredGrid(res, res, dx),
		Amp:            1,
		Eq:             eq,
		BuoyancyFactor: buoyancyFactor,
	}
}

// Validate checks the state against the expected resolution and the physical
// parameter ranges required at step entry.
func (s *FluidState) Validate(res int) error {
	for name, f := range map[string]*grid2D.CenteredGrid{
		"temperature": s.Temperature, "pressure": s.Pressure,
		"Yf": s.Yf, "Yo": s.Yo, "Wt": s.Wt, "Wkf": s.Wkf, "Wko": s.Wko,
	} {
		ny, nx := f.Dims()
		if ny != res || nx != res {
			return fmt.Errorf("%w: %s field is %dx%d, expected %dx%d", ErrShapeMismatch, name, ny, nx, res, res)
		}
	}
	ny, nx := s.Velocity.Dims()
	if ny != res || nx != res {
		return fmt.Errorf("%w: velocity grid is %dx%d cells, expected %dx%d", ErrShapeMismatch, ny, nx, res, res)
	}
	if s.Temperature.Min() <= 0 {
		return fmt.Errorf("%w: non-positive temperature %g", ErrInvalidParameter, s.Temperature.Min())
	}
	if s.Pressure.Min() <= 0 {
		return fmt.Errorf("%w: non-positive pressure %g", ErrInvalidParameter, s.Pressure.Min())
	}
	const tol = 1.e-9
	for name, f := range map[string]*grid2D.CenteredGrid{"Yf": s.Yf, "Yo": s.Yo} {
		if f.Min() < -tol || f.Max() > 1+tol {
			return fmt.Errorf("%w: %s outside [0,1], range [%g, %g]", ErrInvalidParameter, name, f.Min(), f.Max())
		}
	}
	return nil
}
