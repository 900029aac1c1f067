package grid2D

/*
	Semi-Lagrangian advection: each sample point is traced backward along the
	carrier velocity for one time step and the advected field is interpolated
	at the departure point. Unconditionally stable for any dt; departure
	points are clamped to the domain.
*/

// AdvectCentered advects a centered scalar field through vel for time dt.
func AdvectCentered(f *CenteredGrid, vel *StaggeredGrid, dt float64) (o *CenteredGrid) {
	ny, nx := f.Dims()
	o = NewCenteredGrid(ny, nx, f.Dx)
	for i := 0; i < ny; i++ {
		y := (float64(i) + 0.5) * f.Dx
		for j := 0; j < nx; j++ {
			x := (float64(j) + 0.5) * f.Dx
			u, v := vel.VelocityAt(x, y)
			o.Set(i, j, f.Sample(x-u*dt, y-v*dt))
		}
	}
	return
}

// AdvectStaggered advects the staggered field s through the carrier velocity,
// component by component, each at its own face sample locations. Self
// advection passes s as its own carrier.
func AdvectStaggered(s, carrier *StaggeredGrid, dt float64) (o *StaggeredGrid) {
	ny, nx := s.Dims()
	o = NewStaggeredGrid(ny, nx, s.Dx)
	for i := 0; i < ny; i++ {
		y := (float64(i) + 0.5) * s.Dx
		for j := 0; j <= nx; j++ {
			x := float64(j) * s.Dx
			u, v := carrier.VelocityAt(x, y)
			xd, yd := x-u*dt, y-v*dt
			o.U.Set(i, j, sampleBilinear(s.U, xd/s.Dx, yd/s.Dx-0.5))
		}
	}
	for i := 0; i <= ny; i++ {
		y := float64(i) * s.Dx
		for j := 0; j < nx; j++ {
			x := (float64(j) + 0.5) * s.Dx
			u, v := carrier.VelocityAt(x, y)
			xd, yd := x-u*dt, y-v*dt
			o.V.Set(i, j, sampleBilinear(s.V, xd/s.Dx-0.5, yd/s.Dx))
		}
	}
	return
}
