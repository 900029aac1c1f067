package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type FlameParameters struct {
	Title                 string  `yaml:"Title"`
	FuelType              string  `yaml:"FuelType"`
	Resolution            int     `yaml:"Resolution"`
	Dt                    float64 `yaml:"Dt"`
	FinalTime             float64 `yaml:"FinalTime"`
	MaxSteps              int     `yaml:"MaxSteps"`
	EquivalenceRatio      float64 `yaml:"EquivalenceRatio"`
	BuoyancyFactor        float64 `yaml:"BuoyancyFactor"`
	Gravity               float64 `yaml:"Gravity"` // y component, negative is downward
	InitialTemperature    float64 `yaml:"InitialTemperature"`
	InitialPressure       float64 `yaml:"InitialPressure"`
	InitialYf             float64 `yaml:"InitialYf"`
	InitialYo             float64 `yaml:"InitialYo"`
	RoughnessAmplitude    float64 `yaml:"RoughnessAmplitude"`
	SolverTolerance       float64 `yaml:"SolverTolerance"`
	SolverMaxIterations   int     `yaml:"SolverMaxIterations"`
	CorrectedMixtureRange bool    `yaml:"CorrectedMixtureRange"`
}

// DefaultFlameParameters mirrors the reference Bunsen configuration.
func DefaultFlameParameters() FlameParameters {
	return FlameParameters{
		Title:              "bunsen",
		FuelType:           "methane",
		Resolution:         100,
		Dt:                 0.01,
		FinalTime:          1,
		MaxSteps:           10000,
		EquivalenceRatio:   1.0,
		BuoyancyFactor:     0.1,
		Gravity:            -9.81,
		InitialTemperature: 800,
		InitialPressure:    101325,
		InitialYf:          0,
		InitialYo:          0.23,
		RoughnessAmplitude: 1.0,
		SolverTolerance:    1.e-5,
	}
}

func (fp *FlameParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, fp)
}

func (fp *FlameParameters) Validate() error {
	if fp.Resolution < 4 {
		return fmt.Errorf("resolution %d is too small, need at least 4", fp.Resolution)
	}
	if fp.Dt <= 0 {
		return fmt.Errorf("dt must be positive, have %g", fp.Dt)
	}
	if fp.EquivalenceRatio <= 0 {
		return fmt.Errorf("equivalence ratio must be positive, have %g", fp.EquivalenceRatio)
	}
	return nil
}

func (fp *FlameParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", fp.Title)
	fmt.Printf("[%s]\t\t= Fuel Type\n", fp.FuelType)
	fmt.Printf("[%d]\t\t\t= Resolution\n", fp.Resolution)
	fmt.Printf("%8.5f\t\t= Dt\n", fp.Dt)
	fmt.Printf("%8.5f\t\t= FinalTime\n", fp.FinalTime)
	fmt.Printf("%8.5f\t\t= EquivalenceRatio\n", fp.EquivalenceRatio)
	fmt.Printf("%8.5f\t\t= BuoyancyFactor\n", fp.BuoyancyFactor)
	fmt.Printf("%8.5f\t\t= Gravity\n", fp.Gravity)
}
