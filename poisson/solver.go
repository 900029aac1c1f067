package poisson

import (
	"errors"
	"fmt"
	"math"

	"github.com/james-bowman/sparse"

	"github.com/combustsim/gobunsen/grid2D"
)

// ErrNotConverged reports that the conjugate-gradient iteration ran out of
// budget before reaching tolerance. The partial pressure field and the
// iteration count are still returned alongside it; the caller decides
// whether to accept, relax or abort.
var ErrNotConverged = errors.New("pressure solve did not converge")

// Solver solves the discrete Poisson equation lap(p) = div on a 2D cell grid.
//
// Boundary treatment: cells outside the domain are open (Dirichlet p = 0
// ghost), faces into solid cells are closed (Neumann). Solid cells, marked 0
// in the accessibility mask, carry p = 0.
type Solver struct {
	Tolerance     float64 // relative residual target, default 1e-5
	MaxIterations int     // iteration budget, default = number of cells
}

func NewSolver() *Solver {
	return &Solver{Tolerance: 1.e-5}
}

// Solve returns the pressure field satisfying lap(p) = div in accessible
// cells, together with the number of CG iterations used.
func (s *Solver) Solve(div, accessible *grid2D.CenteredGrid) (p *grid2D.CenteredGrid, iterations int, err error) {
	ny, nx := div.Dims()
	my, mx := accessible.Dims()
	if my != ny || mx != nx {
		err = fmt.Errorf("divergence %dx%d and mask %dx%d differ in shape", ny, nx, my, mx)
		return
	}
	n := ny * nx
	A := assemble(div, accessible)

	// Right hand side: CG needs the positive-definite form -lap(p) = -div.
	b := make([]float64, n)
	dd, md := div.Data(), accessible.Data()
	for i := range b {
		if md[i] != 0 {
			b[i] = -dd[i]
		}
	}

	x := make([]float64, n)
	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = n
	}
	tol := s.Tolerance
	if tol <= 0 {
		tol = 1.e-5
	}
	iterations, converged := conjugateGradient(A, b, x, tol, maxIter)

	p = grid2D.NewCenteredGrid(ny, nx, div.Dx)
	copy(p.Data(), x)
	if !converged {
		err = fmt.Errorf("%w after %d iterations", ErrNotConverged, iterations)
	}
	return
}

// assemble builds the negated 5-point Laplacian as CSR. Row ordering matches
// the row-major layout of the centered grid data.
func assemble(div, accessible *grid2D.CenteredGrid) *sparse.CSR {
	ny, nx := div.Dims()
	n := ny * nx
	dok := sparse.NewDOK(n, n)
	idx := func(i, j int) int { return i*nx + j }
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			row := idx(i, j)
			if accessible.At(i, j) == 0 {
				dok.Set(row, row, 1) // solid cell, pinned to zero
				continue
			}
			var diag float64
			for _, nb := range [4][2]int{{i - 1, j}, {i + 1, j}, {i, j - 1}, {i, j + 1}} {
				ni, nj := nb[0], nb[1]
				if ni < 0 || ni >= ny || nj < 0 || nj >= nx {
					diag++ // open boundary, zero ghost pressure
					continue
				}
				if accessible.At(ni, nj) == 0 {
					continue // closed face into a solid
				}
				diag++
				dok.Set(row, idx(ni, nj), -1)
			}
			if diag == 0 {
				diag = 1 // accessible cell fully enclosed by solids
			}
			dok.Set(row, row, diag)
		}
	}
	return dok.ToCSR()
}

// conjugateGradient iterates x toward A x = b, returning the iteration count
// and whether the relative residual reached tol.
func conjugateGradient(A *sparse.CSR, b, x []float64, tol float64, maxIter int) (iterations int, converged bool) {
	n := len(b)
	r := make([]float64, n)
	ap := make([]float64, n)
	sparse.MulMatRawVec(A, x, ap)
	for i := range r {
		r[i] = b[i] - ap[i]
	}
	d := make([]float64, n)
	copy(d, r)
	bNorm := norm2(b)
	if bNorm == 0 {
		// Zero divergence everywhere: x = 0 is exact.
		return 0, true
	}
	rsOld := dot(r, r)
	for iterations = 0; iterations < maxIter; iterations++ {
		if math.Sqrt(rsOld) <= tol*bNorm {
			converged = true
			return
		}
		sparse.MulMatRawVec(A, d, ap)
		alpha := rsOld / dot(d, ap)
		for i := range x {
			x[i] += alpha * d[i]
			r[i] -= alpha * ap[i]
		}
		rsNew := dot(r, r)
		beta := rsNew / rsOld
		for i := range d {
			d[i] = r[i] + beta*d[i]
		}
		rsOld = rsNew
	}
	converged = math.Sqrt(rsOld) <= tol*bNorm
	return
}

func dot(a, b []float64) (s float64) {
	for i := range a {
		s += a[i] * b[i]
	}
	return
}

func norm2(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}
