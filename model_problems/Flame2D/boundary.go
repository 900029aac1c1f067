package Flame2D

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/combustsim/gobunsen/grid2D"
)

// RoughnessLayer is the slice of the 3D roughness array that drives the
// boundary computation.
const RoughnessLayer = 20

// Fixed Dirichlet values of the scalar boundary conditions.
const (
	bottomTemperature = 800
	topTemperature    = 2000
	inflowGain        = 4
	inflowBase        = 6
)

/*
	Boundary conditions are value/mask pairs applied as

		new = old*mask + value*(1-mask)

	The masks are 0/1 projections, so a second application is a no-op. They
	are re-applied after every transport sub-step; for velocity this happens
	after the projection and may reintroduce local divergence at the inflow,
	which is accepted as a modeling approximation.
*/

// NormalizeRoughness extracts layer RoughnessLayer of the roughness array and
// rescales it to [0,1]. A uniform slice has zero range and is rejected as
// degenerate input.
func NormalizeRoughness(rough *sparse.DenseArray, res int, dx float64) (rd *grid2D.CenteredGrid, err error) {
	if len(rough.Shape) != 3 {
		return nil, fmt.Errorf("%w: roughness array has %d dimensions, expected 3", ErrShapeMismatch, len(rough.Shape))
	}
	if rough.Shape[0] <= RoughnessLayer {
		return nil, fmt.Errorf("%w: roughness array has %d layers, layer %d is read", ErrShapeMismatch, rough.Shape[0], RoughnessLayer)
	}
	if rough.Shape[1] != res || rough.Shape[2] != res {
		return nil, fmt.Errorf("%w: roughness slice is %dx%d, state resolution is %d", ErrShapeMismatch, rough.Shape[1], rough.Shape[2], res)
	}
	rd = grid2D.NewCenteredGrid(res, res, dx)
	min, max := math.Inf(1), math.Inf(-1)
	for i := 0; i < res; i++ {
		for j := 0; j < res; j++ {
			v := rough.Get(RoughnessLayer, i, j)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			rd.Set(i, j, v)
		}
	}
	if max == min {
		return nil, fmt.Errorf("%w: uniform roughness slice, normalization range is zero", ErrDegenerateInput)
	}
	d := rd.Data()
	for i := range d {
		d[i] = (d[i] - min) / (max - min)
	}
	return
}

// ScalarBoundary holds a Dirichlet value field and its inclusion mask for a
// centered scalar.
type ScalarBoundary struct {
	Value, Mask *grid2D.CenteredGrid
}

// Apply enforces the boundary on f, leaving cells with mask 1 untouched.
func (b ScalarBoundary) Apply(f *grid2D.CenteredGrid) (o *grid2D.CenteredGrid) {
	o = f.Copy()
	od, vd, md := o.Data(), b.Value.Data(), b.Mask.Data()
	for i := range od {
		od[i] = od[i]*md[i] + vd[i]*(1-md[i])
	}
	return
}

// NewTemperatureBoundary pins the bottom row to 800 and the top row to 2000,
// leaving the interior free.
func NewTemperatureBoundary(res int, dx float64) (b ScalarBoundary) {
	b.Value = grid2D.NewCenteredGrid(res, res, dx)
	b.Mask = grid2D.ConstantCentered(res, res, dx, 1)
	for j := 0; j < res; j++ {
		b.Value.Set(0, j, bottomTemperature)
		b.Mask.Set(0, j, 0)
		b.Value.Set(res-1, j, topTemperature)
		b.Mask.Set(res-1, j, 0)
	}
	return
}

// NewSpeciesBoundary pins the fuel fraction to ZfMax and the oxidizer
// fraction to ZoMin along the bottom (inflow) row.
func NewSpeciesBoundary(res int, dx float64, bounds MixtureBounds) (yf, yo ScalarBoundary) {
	yf.Value = grid2D.NewCenteredGrid(res, res, dx)
	yf.Mask = grid2D.ConstantCentered(res, res, dx, 1)
	yo.Value = grid2D.NewCenteredGrid(res, res, dx)
	yo.Mask = grid2D.ConstantCentered(res, res, dx, 1)
	for j := 0; j < res; j++ {
		yf.Value.Set(0, j, bounds.ZfMax)
		yf.Mask.Set(0, j, 0)
		yo.Value.Set(0, j, bounds.ZoMin)
		yo.Mask.Set(0, j, 0)
	}
	return
}

// VelocityBoundary holds value/mask lattices for both staggered components.
type VelocityBoundary struct {
	UValue, UMask *mat.Dense // Ny x (Nx+1)
	VValue, VMask *mat.Dense // (Ny+1) x Nx
}

// NewVelocityBoundary builds the inflow and wall conditions from the
// normalized roughness slice:
//
//   - V (y component): the bottom face row carries an inflow speed
//     |rd|*4 + 6 shaped by the roughness, while the side-wall face columns
//     above res/4 are closed (no penetration).
//   - U (x component): the bottom face row is closed (no slip), no spatial
//     variation from roughness.
func NewVelocityBoundary(rd *grid2D.CenteredGrid, res int) (b VelocityBoundary) {
	b.UValue = mat.NewDense(res, res+1, nil)
	b.UMask = mat.NewDense(res, res+1, nil)
	b.VValue = mat.NewDense(res+1, res, nil)
	b.VMask = mat.NewDense(res+1, res, nil)

	ones(b.UMask)
	ones(b.VMask)
	for j := 0; j <= res; j++ {
		b.UMask.Set(0, j, 0) // bottom ux
	}
	for j := 0; j < res; j++ {
		b.VMask.Set(0, j, 0)
		b.VValue.Set(0, j, math.Abs(rd.At(0, j))*inflowGain+inflowBase)
	}
	for i := res / 4; i <= res; i++ { // upper side walls
		b.VMask.Set(i, 0, 0)
		b.VMask.Set(i, res-1, 0)
	}
	return
}

// Apply enforces the velocity boundary on v.
func (b VelocityBoundary) Apply(v *grid2D.StaggeredGrid) (o *grid2D.StaggeredGrid) {
	o = v.Copy()
	applyLattice(o.U, b.UValue, b.UMask)
	applyLattice(o.V, b.VValue, b.VMask)
	return
}

func applyLattice(f, value, mask *mat.Dense) {
	fd := f.RawMatrix().Data
	vd := value.RawMatrix().Data
	md := mask.RawMatrix().Data
	for i := range fd {
		fd[i] = fd[i]*md[i] + vd[i]*(1-md[i])
	}
}

func ones(m *mat.Dense) {
	d := m.RawMatrix().Data
	for i := range d {
		d[i] = 1
	}
}
