package Flame2D

import (
	"math"

	"github.com/combustsim/gobunsen/grid2D"
)

/*
	One-step Arrhenius chemistry. The molar reaction rate per unit volume is

		w = A * T^n * (rho*Yf/Wf) * (rho*Yo/Wo) * exp(-E/(R*T))

	Sign convention matches the transport step, which applies
	T -= Wt*dt/(rho*cp) and Yk += Wk*dt/rho: consumption and heat release
	come out negative.

		Wkf = Vf*Wf*w      Wko = Vo*Wo*w      Wt = Vf*Wf*w*hk
*/

// ReactionSource evaluates the volumetric source rates for energy and
// species from the current density, temperature and composition. The
// orchestrator consumes these one step lagged: the driver refreshes them on
// the state between steps, never inside a step.
func (fp FuelParameters) ReactionSource(density, temperature, yf, yo *grid2D.CenteredGrid) (wt, wkf, wko *grid2D.CenteredGrid) {
	ny, nx := density.Dims()
	wt = grid2D.NewCenteredGrid(ny, nx, density.Dx)
	wkf = grid2D.NewCenteredGrid(ny, nx, density.Dx)
	wko = grid2D.NewCenteredGrid(ny, nx, density.Dx)
	dd, td := density.Data(), temperature.Data()
	fd, od := yf.Data(), yo.Data()
	wtd, wfd, wod := wt.Data(), wkf.Data(), wko.Data()
	for i := range dd {
		t := td[i]
		if t <= 0 {
			continue
		}
		cf := dd[i] * fd[i] / fp.Wf
		co := dd[i] * od[i] / fp.Wo
		if cf <= 0 || co <= 0 {
			continue
		}
		w := fp.A * math.Pow(t, fp.N) * cf * co * math.Exp(-fp.E/(RGas*t))
		wfd[i] = fp.Vf * fp.Wf * w
		wod[i] = fp.Vo * fp.Wo * w
		wtd[i] = fp.Vf * fp.Wf * w * fp.Hk
	}
	return
}
