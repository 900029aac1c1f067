package grid2D

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*
	Fields live on a regular Cartesian grid of Ny x Nx cells with spacing Dx.

	CenteredGrid samples scalars at cell centers: position of sample (i,j) is
	((j+0.5)*Dx, (i+0.5)*Dx) with i the row (y) index and j the column (x) index.

	StaggeredGrid samples each velocity component at the center of the
	corresponding cell face:
		U (x component) on vertical faces,   Ny   x (Nx+1) samples
		V (y component) on horizontal faces, (Ny+1) x  Nx  samples
*/

type CenteredGrid struct {
	M  *mat.Dense
	Dx float64
}

func NewCenteredGrid(ny, nx int, dx float64) *CenteredGrid {
	return &CenteredGrid{M: mat.NewDense(ny, nx, nil), Dx: dx}
}

// ConstantCentered returns a centered grid filled with value v.
func ConstantCentered(ny, nx int, dx, v float64) (c *CenteredGrid) {
	c = NewCenteredGrid(ny, nx, dx)
	d := c.M.RawMatrix().Data
	for i := range d {
		d[i] = v
	}
	return
}

func (c *CenteredGrid) Dims() (ny, nx int)    { return c.M.Dims() }
func (c *CenteredGrid) At(i, j int) float64   { return c.M.At(i, j) }
func (c *CenteredGrid) Set(i, j int, v float64) { c.M.Set(i, j, v) }
func (c *CenteredGrid) Data() []float64       { return c.M.RawMatrix().Data }

func (c *CenteredGrid) Copy() (o *CenteredGrid) {
	ny, nx := c.Dims()
	o = NewCenteredGrid(ny, nx, c.Dx)
	o.M.CloneFrom(c.M)
	return
}

// Apply returns a new grid with f applied elementwise.
func (c *CenteredGrid) Apply(f func(v float64) float64) (o *CenteredGrid) {
	o = c.Copy()
	d := o.Data()
	for i := range d {
		d[i] = f(d[i])
	}
	return
}

// Add returns c + b elementwise.
func (c *CenteredGrid) Add(b *CenteredGrid) (o *CenteredGrid) {
	o = c.Copy()
	bd := b.Data()
	d := o.Data()
	checkSameLen(d, bd)
	for i := range d {
		d[i] += bd[i]
	}
	return
}

// Sub returns c - b elementwise.
func (c *CenteredGrid) Sub(b *CenteredGrid) (o *CenteredGrid) {
	o = c.Copy()
	bd := b.Data()
	d := o.Data()
	checkSameLen(d, bd)
	for i := range d {
		d[i] -= bd[i]
	}
	return
}

// MulElem returns c * b elementwise.
func (c *CenteredGrid) MulElem(b *CenteredGrid) (o *CenteredGrid) {
	o = c.Copy()
	bd := b.Data()
	d := o.Data()
	checkSameLen(d, bd)
	for i := range d {
		d[i] *= bd[i]
	}
	return
}

// DivElem returns c / b elementwise.
func (c *CenteredGrid) DivElem(b *CenteredGrid) (o *CenteredGrid) {
	o = c.Copy()
	bd := b.Data()
	d := o.Data()
	checkSameLen(d, bd)
	for i := range d {
		d[i] /= bd[i]
	}
	return
}

// Scale returns s * c.
func (c *CenteredGrid) Scale(s float64) (o *CenteredGrid) {
	o = c.Copy()
	d := o.Data()
	for i := range d {
		d[i] *= s
	}
	return
}

func (c *CenteredGrid) Min() (min float64) {
	d := c.Data()
	min = d[0]
	for _, v := range d {
		if v < min {
			min = v
		}
	}
	return
}

func (c *CenteredGrid) Max() (max float64) {
	d := c.Data()
	max = d[0]
	for _, v := range d {
		if v > max {
			max = v
		}
	}
	return
}

// MaxAbs returns the largest absolute value in the grid.
func (c *CenteredGrid) MaxAbs() (max float64) {
	for _, v := range c.Data() {
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return
}

// Sample returns the bilinearly interpolated value at physical position (x, y),
// clamped to the grid interior.
func (c *CenteredGrid) Sample(x, y float64) float64 {
	return sampleBilinear(c.M, x/c.Dx-0.5, y/c.Dx-0.5)
}

type StaggeredGrid struct {
	U  *mat.Dense // Ny x (Nx+1)
	V  *mat.Dense // (Ny+1) x Nx
	Dx float64
}

func NewStaggeredGrid(ny, nx int, dx float64) *StaggeredGrid {
	return &StaggeredGrid{
		U:  mat.NewDense(ny, nx+1, nil),
		V:  mat.NewDense(ny+1, nx, nil),
		Dx: dx,
	}
}

// Dims returns the dimensions of the underlying cell grid.
func (s *StaggeredGrid) Dims() (ny, nx int) {
	ny, _ = s.U.Dims()
	_, nx = s.V.Dims()
	return
}

func (s *StaggeredGrid) Copy() (o *StaggeredGrid) {
	ny, nx := s.Dims()
	o = NewStaggeredGrid(ny, nx, s.Dx)
	o.U.CloneFrom(s.U)
	o.V.CloneFrom(s.V)
	return
}

// Add returns s + b componentwise.
func (s *StaggeredGrid) Add(b *StaggeredGrid) (o *StaggeredGrid) {
	o = s.Copy()
	addInto(o.U, b.U)
	addInto(o.V, b.V)
	return
}

// Sub returns s - b componentwise.
func (s *StaggeredGrid) Sub(b *StaggeredGrid) (o *StaggeredGrid) {
	o = s.Copy()
	subInto(o.U, b.U)
	subInto(o.V, b.V)
	return
}

// Scale returns f * s.
func (s *StaggeredGrid) Scale(f float64) (o *StaggeredGrid) {
	o = s.Copy()
	scaleInto(o.U, f)
	scaleInto(o.V, f)
	return
}

// ScaleComponents returns s with the U component scaled by fu and the V
// component scaled by fv. Used to apply per-axis body forces.
func (s *StaggeredGrid) ScaleComponents(fu, fv float64) (o *StaggeredGrid) {
	o = s.Copy()
	scaleInto(o.U, fu)
	scaleInto(o.V, fv)
	return
}

// MaxAbs returns the largest absolute component value.
func (s *StaggeredGrid) MaxAbs() (max float64) {
	for _, m := range []*mat.Dense{s.U, s.V} {
		for _, v := range m.RawMatrix().Data {
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
	}
	return
}

// VelocityAt returns the interpolated (u, v) velocity at physical position (x, y).
func (s *StaggeredGrid) VelocityAt(x, y float64) (u, v float64) {
	u = sampleBilinear(s.U, x/s.Dx, y/s.Dx-0.5)
	v = sampleBilinear(s.V, x/s.Dx-0.5, y/s.Dx)
	return
}

// AtFaces interpolates a centered scalar onto the staggered sample locations,
// clamping at the domain edges. Used to move densities onto velocity storage.
func (c *CenteredGrid) AtFaces() (s *StaggeredGrid) {
	ny, nx := c.Dims()
	s = NewStaggeredGrid(ny, nx, c.Dx)
	for i := 0; i < ny; i++ {
		for j := 0; j <= nx; j++ {
			jl, jr := j-1, j
			if jl < 0 {
				jl = 0
			}
			if jr > nx-1 {
				jr = nx - 1
			}
			s.U.Set(i, j, 0.5*(c.At(i, jl)+c.At(i, jr)))
		}
	}
	for i := 0; i <= ny; i++ {
		for j := 0; j < nx; j++ {
			il, iu := i-1, i
			if il < 0 {
				il = 0
			}
			if iu > ny-1 {
				iu = ny - 1
			}
			s.V.Set(i, j, 0.5*(c.At(il, j)+c.At(iu, j)))
		}
	}
	return
}

// sampleBilinear interpolates m at fractional index coordinates (gx, gy),
// gx along columns and gy along rows, clamped to the sample lattice.
func sampleBilinear(m *mat.Dense, gx, gy float64) float64 {
	nr, nc := m.Dims()
	gx = clamp(gx, 0, float64(nc-1))
	gy = clamp(gy, 0, float64(nr-1))
	j0 := int(gx)
	i0 := int(gy)
	if j0 > nc-2 {
		j0 = nc - 2
	}
	if i0 > nr-2 {
		i0 = nr - 2
	}
	if nc == 1 {
		j0 = 0
	}
	if nr == 1 {
		i0 = 0
	}
	j1, i1 := j0+1, i0+1
	if j1 > nc-1 {
		j1 = nc - 1
	}
	if i1 > nr-1 {
		i1 = nr - 1
	}
	fx := gx - float64(j0)
	fy := gy - float64(i0)
	return (1-fy)*((1-fx)*m.At(i0, j0)+fx*m.At(i0, j1)) +
		fy*((1-fx)*m.At(i1, j0)+fx*m.At(i1, j1))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func addInto(a, b *mat.Dense) {
	ad, bd := a.RawMatrix().Data, b.RawMatrix().Data
	checkSameLen(ad, bd)
	for i := range ad {
		ad[i] += bd[i]
	}
}

func subInto(a, b *mat.Dense) {
	ad, bd := a.RawMatrix().Data, b.RawMatrix().Data
	checkSameLen(ad, bd)
	for i := range ad {
		ad[i] -= bd[i]
	}
}

func scaleInto(a *mat.Dense, f float64) {
	ad := a.RawMatrix().Data
	for i := range ad {
		ad[i] *= f
	}
}

func checkSameLen(a, b []float64) {
	if len(a) != len(b) {
		panic(fmt.Errorf("grid dimension mismatch: %d vs %d elements", len(a), len(b)))
	}
}
