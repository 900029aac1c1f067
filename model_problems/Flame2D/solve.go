package Flame2D

import (
	"fmt"
	"math"
	"time"

	"github.com/ctessum/sparse"
)

// Solve advances the state until finalTime or maxSteps, whichever comes
// first, refreshing the chemistry source rates between steps. It returns the
// final state and the number of steps taken.
func (f *Flame) Solve(state *FluidState, roughness *sparse.DenseArray, dt, finalTime float64, maxSteps int, verbose bool) (*FluidState, int, error) {
	if verbose {
		f.PrintInitialization(finalTime)
	}
	var (
		steps   int
		elapsed time.Duration
	)
	for state.Age < finalTime && steps < maxSteps {
		start := time.Now()
		next, err := f.Step(state, roughness, dt)
		if err != nil {
			return state, steps, err
		}
		// One-step-lagged chemistry coupling: rates computed from the state
		// just produced feed the next step's source terms.
		wt, wkf, wko := f.Fuel.ReactionSource(next.Density, next.Temperature, next.Yf, next.Yo)
		state = next.CopiedWith(WithSources(wt, wkf, wko))
		elapsed += time.Since(start)
		steps++
		if verbose {
			f.PrintUpdate(state, steps)
		}
	}
	if verbose {
		f.PrintFinal(elapsed, steps)
	}
	return state, steps, nil
}

func (f *Flame) PrintInitialization(finalTime float64) {
	fmt.Printf("Reacting flow on a %dx%d staggered grid, fuel = %s\n", f.Resolution, f.Resolution, f.Fuel.Name)
	fmt.Printf("Solving until finaltime = %8.5f\n", finalTime)
	fmt.Printf("    step     age   iters    maxdiv       Tmax     Yf_max\n")
}

func (f *Flame) PrintUpdate(state *FluidState, steps int) {
	var maxDiv float64
	if state.Info.Divergence != nil {
		maxDiv = state.Info.Divergence.MaxAbs()
	}
	fmt.Printf("%8d%8.3f%8d%10.3e%11.3f%11.5f\n",
		steps, state.Age, state.Info.Iterations, maxDiv,
		state.Temperature.Max(), state.Yf.Max())
}

func (f *Flame) PrintFinal(elapsed time.Duration, steps int) {
	if steps == 0 {
		return
	}
	n := float64(f.Resolution * f.Resolution * steps)
	rate := float64(elapsed.Microseconds()) / n
	fmt.Printf("\nRate of execution = %8.5f us/(cell*step) over %d steps\n", rate, steps)
}

// SyntheticRoughness builds a smoothly varying roughness array for runs that
// have no measured porosity data, shaped [RoughnessLayer+1, res, res].
func SyntheticRoughness(res int, amp float64) *sparse.DenseArray {
	r := sparse.ZerosDense(RoughnessLayer+1, res, res)
	for k := 0; k <= RoughnessLayer; k++ {
		for i := 0; i < res; i++ {
			for j := 0; j < res; j++ {
				v := amp * (math.Sin(2*math.Pi*float64(j)/float64(res)) +
					0.5*math.Cos(4*math.Pi*float64(i+k)/float64(res)))
				r.Set(v, k, i, j)
			}
		}
	}
	return r
}
