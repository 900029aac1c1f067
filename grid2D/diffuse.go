package grid2D

import "gonum.org/v1/gonum/mat"

/*
	Explicit diffusion, operator-split from advection. amount is the product
	of diffusivity and dt in grid units; substeps > 1 splits the update for
	stability at larger amounts. Zero-gradient (Neumann) edges: the missing
	neighbor outside the domain takes the edge value.
*/

// DiffuseCentered diffuses a centered field by amount over the given substeps.
func DiffuseCentered(f *CenteredGrid, amount float64, substeps int) (o *CenteredGrid) {
	o = f.Copy()
	o.M = diffuseLattice(o.M, amount, substeps)
	return
}

// DiffuseStaggered diffuses each velocity component on its own face lattice.
func DiffuseStaggered(s *StaggeredGrid, amount float64, substeps int) (o *StaggeredGrid) {
	o = s.Copy()
	o.U = diffuseLattice(o.U, amount, substeps)
	o.V = diffuseLattice(o.V, amount, substeps)
	return
}

func diffuseLattice(m *mat.Dense, amount float64, substeps int) *mat.Dense {
	if substeps < 1 {
		substeps = 1
	}
	a := amount / float64(substeps)
	nr, nc := m.Dims()
	cur := m
	for s := 0; s < substeps; s++ {
		next := mat.NewDense(nr, nc, nil)
		for i := 0; i < nr; i++ {
			for j := 0; j < nc; j++ {
				c := cur.At(i, j)
				lap := edgeAt(cur, i-1, j) + edgeAt(cur, i+1, j) +
					edgeAt(cur, i, j-1) + edgeAt(cur, i, j+1) - 4*c
				next.Set(i, j, c+a*lap)
			}
		}
		cur = next
	}
	return cur
}

// edgeAt reads m with edge-clamped indices.
func edgeAt(m *mat.Dense, i, j int) float64 {
	nr, nc := m.Dims()
	if i < 0 {
		i = 0
	}
	if i > nr-1 {
		i = nr - 1
	}
	if j < 0 {
		j = 0
	}
	if j > nc-1 {
		j = nc - 1
	}
	return m.At(i, j)
}
