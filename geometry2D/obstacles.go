package geometry2D

import "github.com/combustsim/gobunsen/grid2D"

// Obstacle is an immutable solid region inside the flow domain. Contains
// reports whether the physical point (x, y) lies inside the solid.
type Obstacle interface {
	Contains(x, y float64) bool
}

// Rectangle is an axis-aligned solid block.
type Rectangle struct {
	X0, Y0, X1, Y1 float64
}

func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Circle is a solid disk of radius R centered at (Cx, Cy).
type Circle struct {
	Cx, Cy, R float64
}

func (c Circle) Contains(x, y float64) bool {
	dx, dy := x-c.Cx, y-c.Cy
	return dx*dx+dy*dy <= c.R*c.R
}

// AccessibleMask rasterizes the union of the obstacles onto a centered grid:
// 1 where the cell center is in open fluid, 0 where it falls inside a solid.
// An empty obstacle list yields an all-ones mask (fully open domain).
func AccessibleMask(ny, nx int, dx float64, obstacles []Obstacle) (mask *grid2D.CenteredGrid) {
	mask = grid2D.ConstantCentered(ny, nx, dx, 1)
	if len(obstacles) == 0 {
		return
	}
	for i := 0; i < ny; i++ {
		y := (float64(i) + 0.5) * dx
		for j := 0; j < nx; j++ {
			x := (float64(j) + 0.5) * dx
			for _, ob := range obstacles {
				if ob.Contains(x, y) {
					mask.Set(i, j, 0)
					break
				}
			}
		}
	}
	return
}
