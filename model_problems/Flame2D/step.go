package Flame2D

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"

	"github.com/combustsim/gobunsen/geometry2D"
	"github.com/combustsim/gobunsen/grid2D"
	"github.com/combustsim/gobunsen/poisson"
)

// Diffusivity shared by velocity, temperature and species transport.
const Diffusivity = 0.1

/*
	Flame models a reacting, buoyant, incompressible flow on a 2D staggered
	grid: momentum, energy and two species mass fractions coupled through the
	reaction source rates carried on the state, with a pressure projection
	enforcing incompressibility and roughness-driven Dirichlet boundaries.
*/
type Flame struct {
	Fuel       FuelParameters
	Resolution int
	Gravity    [2]float64 // (gx, gy)

	Obstacles       []geometry2D.Obstacle
	DensityEffects  []DensityEffect
	VelocityEffects []VelocityEffect

	PressureSolver        *poisson.Solver
	CorrectedMixtureRange bool
	DiffusionSubsteps     int
}

func NewFlame(fuel FuelParameters, resolution int, gravity [2]float64) (f *Flame) {
	return &Flame{
		Fuel:              fuel,
		Resolution:        resolution,
		Gravity:           gravity,
		PressureSolver:    poisson.NewSolver(),
		DiffusionSubsteps: 1,
	}
}

func (f *Flame) mixtureBounds(eq float64) MixtureBounds {
	if f.CorrectedMixtureRange {
		return NewMixtureBoundsCorrected(eq)
	}
	return NewMixtureBounds(eq)
}

/*
	Step advances the state by one time step:

	 1. mixture bounds from the state's equivalence ratio
	 2. normalize the designated roughness slice
	 3. density from the state equation
	 4. self-advect and diffuse velocity
	 5. buoyancy body force
	 6. density effects, then velocity effects, in list order
	 7. pressure projection
	 8. velocity boundary conditions (may reintroduce local divergence at
	    the inflow; accepted, not re-projected)
	 9. accumulate the pressure increment
	10. advect/diffuse temperature, subtract heat loss Wt*dt/(rho*cp)
	11. advect/diffuse species, add Wk*dt/rho
	12. species and temperature boundary conditions
	13. assemble the new state

	The source fields Wt, Wkf, Wko are read from the incoming state (one step
	lagged), never recomputed here. Species are not renormalized after the
	source update, matching the original model; a source strong enough to
	leave [0,1] fails entry validation on the following step. Any failure
	leaves the input state untouched and returns no partial result.
*/
func (f *Flame) Step(state *FluidState, roughness *sparse.DenseArray, dt float64) (next *FluidState, err error) {
	if dt <= 0 {
		return nil, fmt.Errorf("%w: dt = %g, must be positive", ErrInvalidParameter, dt)
	}
	if err = state.Validate(f.Resolution); err != nil {
		return nil, err
	}

	bounds := f.mixtureBounds(state.Eq)
	dx := state.Temperature.Dx
	rd, err := NormalizeRoughness(roughness, f.Resolution, dx)
	if err != nil {
		return nil, err
	}

	density, err := f.Fuel.Density(state.Pressure, state.Temperature, state.Yf, state.Yo)
	if err != nil {
		return nil, err
	}

	// Momentum: advection, diffusion, buoyancy.
	velocity := grid2D.AdvectStaggered(state.Velocity, state.Velocity, dt)
	velocity = grid2D.DiffuseStaggered(velocity, Diffusivity*dt, f.DiffusionSubsteps)
	buoyancy := density.AtFaces().ScaleComponents(
		f.Gravity[0]*state.BuoyancyFactor*dt,
		f.Gravity[1]*state.BuoyancyFactor*dt)
	velocity = velocity.Add(buoyancy)

	for _, effect := range f.DensityEffects {
		density = effect(density, dt)
	}
	for _, effect := range f.VelocityEffects {
		velocity = effect(velocity, dt)
	}

	velocity, info, err := Project(velocity, density, f.Obstacles, f.PressureSolver)
	if err != nil {
		return nil, fmt.Errorf("projection at age %g: %w", state.Age, err)
	}

	velocity = NewVelocityBoundary(rd, f.Resolution).Apply(velocity)
	pressure := state.Pressure.Add(info.PressureIncrement)

	// Energy: transport with the boundary-corrected velocity, then heat loss.
	temperature := grid2D.AdvectCentered(state.Temperature, velocity, dt)
	temperature = grid2D.DiffuseCentered(temperature, Diffusivity*dt, f.DiffusionSubsteps)
	temperature = temperature.Sub(state.Wt.Scale(dt).DivElem(density.Scale(f.Fuel.Cp)))

	// Species transport and source update.
	yf := grid2D.AdvectCentered(state.Yf, velocity, dt)
	yf = grid2D.DiffuseCentered(yf, Diffusivity*dt, f.DiffusionSubsteps)
	yf = yf.Add(state.Wkf.Scale(dt).DivElem(density))

	yo := grid2D.AdvectCentered(state.Yo, velocity, dt)
	yo = grid2D.DiffuseCentered(yo, Diffusivity*dt, f.DiffusionSubsteps)
	yo = yo.Add(state.Wko.Scale(dt).DivElem(density))

	yfBC, yoBC := NewSpeciesBoundary(f.Resolution, dx, bounds)
	yf = yfBC.Apply(yf)
	yo = yoBC.Apply(yo)
	temperature = NewTemperatureBoundary(f.Resolution, dx).Apply(temperature)

	if err = checkFinite(map[string]*grid2D.CenteredGrid{
		"temperature": temperature, "pressure": pressure, "density": density,
		"Yf": yf, "Yo": yo,
	}, velocity); err != nil {
		return nil, err
	}

	next = state.CopiedWith(
		WithVelocity(velocity),
		WithTemperature(temperature),
		WithPressure(pressure),
		WithDensity(density),
		WithYf(yf),
		WithYo(yo),
		WithInfo(info),
		WithAge(state.Age+dt),
	)
	return
}

// checkFinite guards the atomic-step contract: a state containing NaN or Inf
// is never returned.
func checkFinite(fields map[string]*grid2D.CenteredGrid, velocity *grid2D.StaggeredGrid) error {
	for name, f := range fields {
		for _, v := range f.Data() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite value in %s field", ErrDegenerateInput, name)
			}
		}
	}
	for _, d := range [][]float64{velocity.U.RawMatrix().Data, velocity.V.RawMatrix().Data} {
		for _, v := range d {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite value in velocity field", ErrDegenerateInput)
			}
		}
	}
	return nil
}
