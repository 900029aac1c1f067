package grid2D

/*
	Discrete staggered-grid operators in grid units (no Dx scaling); the
	projection layer applies physical scaling where the model requires it.
	The domain boundary is treated as open: values outside carry a zero
	ghost, matching the Dirichlet-0 extrapolation of the pressure solve.
*/

// Divergence computes the cell-centered discrete divergence of a staggered field.
func Divergence(s *StaggeredGrid) (d *CenteredGrid) {
	ny, nx := s.Dims()
	d = NewCenteredGrid(ny, nx, s.Dx)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			d.Set(i, j, s.U.At(i, j+1)-s.U.At(i, j)+s.V.At(i+1, j)-s.V.At(i, j))
		}
	}
	return
}

// Gradient computes the staggered gradient of a centered field with zero
// ghost values outside the domain.
func Gradient(p *CenteredGrid) (g *StaggeredGrid) {
	ny, nx := p.Dims()
	g = NewStaggeredGrid(ny, nx, p.Dx)
	for i := 0; i < ny; i++ {
		for j := 0; j <= nx; j++ {
			var left, right float64
			if j > 0 {
				left = p.At(i, j-1)
			}
			if j < nx {
				right = p.At(i, j)
			}
			g.U.Set(i, j, right-left)
		}
	}
	for i := 0; i <= ny; i++ {
		for j := 0; j < nx; j++ {
			var below, above float64
			if i > 0 {
				below = p.At(i-1, j)
			}
			if i < ny {
				above = p.At(i, j)
			}
			g.V.Set(i, j, above-below)
		}
	}
	return
}

// DivElemStaggered divides each component of a by the matching component of b.
func DivElemStaggered(a, b *StaggeredGrid) (o *StaggeredGrid) {
	o = a.Copy()
	ad, bd := o.U.RawMatrix().Data, b.U.RawMatrix().Data
	checkSameLen(ad, bd)
	for i := range ad {
		ad[i] /= bd[i]
	}
	ad, bd = o.V.RawMatrix().Data, b.V.RawMatrix().Data
	checkSameLen(ad, bd)
	for i := range ad {
		ad[i] /= bd[i]
	}
	return
}

// MulElemStaggered multiplies each component of a by the matching component of b.
func MulElemStaggered(a, b *StaggeredGrid) (o *StaggeredGrid) {
	o = a.Copy()
	ad, bd := o.U.RawMatrix().Data, b.U.RawMatrix().Data
	checkSameLen(ad, bd)
	for i := range ad {
		ad[i] *= bd[i]
	}
	ad, bd = o.V.RawMatrix().Data, b.V.RawMatrix().Data
	checkSameLen(ad, bd)
	for i := range ad {
		ad[i] *= bd[i]
	}
	return
}
