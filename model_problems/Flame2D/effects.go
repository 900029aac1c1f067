package Flame2D

import "github.com/combustsim/gobunsen/grid2D"

// DensityEffect transforms the density field for one time step. Effects are
// pure: they return a new field and leave their input untouched.
type DensityEffect func(density *grid2D.CenteredGrid, dt float64) *grid2D.CenteredGrid

// VelocityEffect transforms the velocity field for one time step.
type VelocityEffect func(velocity *grid2D.StaggeredGrid, dt float64) *grid2D.StaggeredGrid
