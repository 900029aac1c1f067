package Flame2D

import (
	"fmt"

	"github.com/combustsim/gobunsen/grid2D"
)

// RGas is the universal gas constant [J/(mol K)].
const RGas = 8.314

/*
	FuelParameters collects the one-step reaction and mixture constants for a
	fuel. They are fixed at simulation setup and threaded explicitly into the
	state equation and the chemistry source.

	A, N, E     Arrhenius pre-exponential factor, temperature exponent and
	            activation energy [J/mol]
	Hk          heat of combustion per kg of fuel [J/kg]
	Cp          mixture heat capacity [J/(kg K)]
	Wf, Wo, Wp  molar masses of fuel, oxidizer and product [kg/mol]
	Vf, Vo      stoichiometric coefficients of fuel and oxidizer
	            (negative: consumed by the reaction)
*/
type FuelParameters struct {
	Name       string
	A, N, E    float64
	Hk, Cp     float64
	Wf, Wo, Wp float64
	Vf, Vo     float64
}

func Methane() FuelParameters {
	return FuelParameters{
		Name: "methane",
		A:    5.1e4, N: 0, E: 93600,
		Hk: 5.01e7, Cp: 1450,
		Wf: 0.016, Wo: 0.032, Wp: 0.062,
		Vf: -1, Vo: -2,
	}
}

func Propane() FuelParameters {
	return FuelParameters{
		Name: "propane",
		A:    2.75e8, N: 0, E: 130317,
		Hk: 4.66e7, Cp: 1300,
		Wf: 0.044, Wo: 0.032, Wp: 0.062,
		Vf: -1, Vo: -5,
	}
}

func FuelByName(name string) (FuelParameters, error) {
	switch name {
	case "methane":
		return Methane(), nil
	case "propane":
		return Propane(), nil
	}
	return FuelParameters{}, fmt.Errorf("%w: unknown fuel type %q", ErrInvalidParameter, name)
}

// Density evaluates the ideal-gas mixing law
//
//	rho = (1/R) * p / ((Yf/Wf + Yo/Wo + (1-Yf-Yo)/Wp) * T)
//
// elementwise. A non-positive temperature or mixing term makes the relation
// degenerate and fails the call rather than producing Inf/NaN.
func (fp FuelParameters) Density(pressure, temperature, yf, yo *grid2D.CenteredGrid) (density *grid2D.CenteredGrid, err error) {
	ny, nx := pressure.Dims()
	density = grid2D.NewCenteredGrid(ny, nx, pressure.Dx)
	pd, td := pressure.Data(), temperature.Data()
	fd, od := yf.Data(), yo.Data()
	dd := density.Data()
	for i := range dd {
		t := td[i]
		if t <= 0 {
			return nil, fmt.Errorf("%w: non-positive temperature %g in state equation", ErrDegenerateInput, t)
		}
		mix := fd[i]/fp.Wf + od[i]/fp.Wo + (1-fd[i]-od[i])/fp.Wp
		if mix <= 0 {
			return nil, fmt.Errorf("%w: non-positive mixture term %g in state equation", ErrDegenerateInput, mix)
		}
		dd[i] = pd[i] / (RGas * mix * t)
	}
	return
}
