package Flame2D

import (
	"github.com/combustsim/gobunsen/geometry2D"
	"github.com/combustsim/gobunsen/grid2D"
	"github.com/combustsim/gobunsen/poisson"
)

/*
	Pressure projection: advance the velocity without the incompressibility
	constraint, then subtract the gradient of a pressure solved from the
	Poisson equation on the momentum divergence:

		div(rho*u) = lap(p)      u' = u - mask(grad(p) / rho)

	The correction is masked to zero on faces adjacent to solid cells so no
	flux is pushed into obstacles; the outer domain is open.
*/

// Project returns a near-divergence-free copy of velocity together with the
// solve diagnostics. On solver non-convergence the partial correction is
// still applied and returned alongside poisson.ErrNotConverged; the caller
// decides whether to accept or abort.
func Project(velocity *grid2D.StaggeredGrid, density *grid2D.CenteredGrid,
	obstacles []geometry2D.Obstacle, solver *poisson.Solver) (projected *grid2D.StaggeredGrid, info SolveInfo, err error) {

	ny, nx := velocity.Dims()
	accessible := geometry2D.AccessibleMask(ny, nx, velocity.Dx, obstacles)

	rhoFaces := density.AtFaces()
	rhoU := grid2D.MulElemStaggered(velocity, rhoFaces)
	div := grid2D.Divergence(rhoU)

	pressure, iterations, err := solver.Solve(div, accessible)
	if pressure == nil {
		return velocity, SolveInfo{Divergence: div, Iterations: iterations}, err
	}
	pressure = pressure.Scale(velocity.Dx)

	grad := grid2D.Gradient(pressure)
	correction := maskFaces(grid2D.DivElemStaggered(grad, rhoFaces), accessible)
	projected = velocity.Sub(correction)

	info = SolveInfo{
		PressureIncrement: pressure,
		Divergence:        div,
		Iterations:        iterations,
	}
	return
}

// maskFaces zeroes the staggered field on faces touching a solid cell. Faces
// on the outer boundary stay open.
func maskFaces(s *grid2D.StaggeredGrid, accessible *grid2D.CenteredGrid) (o *grid2D.StaggeredGrid) {
	o = s.Copy()
	ny, nx := accessible.Dims()
	open := func(i, j int) bool {
		if i < 0 || i >= ny || j < 0 || j >= nx {
			return true
		}
		return accessible.At(i, j) != 0
	}
	for i := 0; i < ny; i++ {
		for j := 0; j <= nx; j++ {
			if !open(i, j-1) || !open(i, j) {
				o.U.Set(i, j, 0)
			}
		}
	}
	for i := 0; i <= ny; i++ {
		for j := 0; j < nx; j++ {
			if !open(i-1, j) || !open(i, j) {
				o.V.Set(i, j, 0)
			}
		}
	}
	return
}
