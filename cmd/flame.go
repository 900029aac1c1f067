/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"io/ioutil"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/combustsim/gobunsen/InputParameters"
	"github.com/combustsim/gobunsen/model_problems/Flame2D"
)

// FlameCmd represents the flame command
var FlameCmd = &cobra.Command{
	Use:   "flame",
	Short: "Run the 2D combustion model",
	Long: `
Advances the reacting-flow model from a uniform initial state, printing
per-step solve diagnostics.

gobunsen flame -i bunsen.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		fp := InputParameters.DefaultFlameParameters()
		if icFile, _ := cmd.Flags().GetString("inputConditionsFile"); len(icFile) > 0 {
			data, err := ioutil.ReadFile(icFile)
			if err != nil {
				log.WithError(err).Fatalf("unable to read input conditions file %s", icFile)
			}
			if err = fp.Parse(data); err != nil {
				log.WithError(err).Fatalf("unable to parse input conditions file %s", icFile)
			}
		}
		if res, _ := cmd.Flags().GetInt("resolution"); res > 0 {
			fp.Resolution = res
		}
		if ft, _ := cmd.Flags().GetFloat64("finalTime"); ft > 0 {
			fp.FinalTime = ft
		}
		if cpuProfile, _ := cmd.Flags().GetBool("cpuProfile"); cpuProfile {
			defer profile.Start().Stop()
		}
		RunFlame(&fp)
	},
}

func init() {
	rootCmd.AddCommand(FlameCmd)
	FlameCmd.Flags().StringP("inputConditionsFile", "i", "", "yaml file with run parameters")
	FlameCmd.Flags().IntP("resolution", "r", 0, "override the grid resolution")
	FlameCmd.Flags().Float64("finalTime", 0, "override the target end time")
	FlameCmd.Flags().Bool("cpuProfile", false, "write a CPU profile for this run")
}

func RunFlame(fp *InputParameters.FlameParameters) {
	if err := fp.Validate(); err != nil {
		log.WithError(err).Fatal("invalid run parameters")
	}
	fp.Print()

	fuel, err := Flame2D.FuelByName(fp.FuelType)
	if err != nil {
		log.WithError(err).Fatal("unknown fuel")
	}
	flame := Flame2D.NewFlame(fuel, fp.Resolution, [2]float64{0, fp.Gravity})
	flame.CorrectedMixtureRange = fp.CorrectedMixtureRange
	if fp.SolverTolerance > 0 {
		flame.PressureSolver.Tolerance = fp.SolverTolerance
	}
	flame.PressureSolver.MaxIterations = fp.SolverMaxIterations

	state := Flame2D.NewUniformState(fp.Resolution, 1,
		fp.InitialTemperature, fp.InitialPressure,
		fp.InitialYf, fp.InitialYo,
		fp.EquivalenceRatio, fp.BuoyancyFactor)
	roughness := Flame2D.SyntheticRoughness(fp.Resolution, fp.RoughnessAmplitude)

	log.WithFields(log.Fields{
		"fuel":       fuel.Name,
		"resolution": fp.Resolution,
		"dt":         fp.Dt,
	}).Info("starting run")

	final, steps, err := flame.Solve(state, roughness, fp.Dt, fp.FinalTime, fp.MaxSteps, true)
	if err != nil {
		log.WithError(err).WithField("steps", steps).Fatal("run aborted")
	}
	log.WithFields(log.Fields{
		"steps": steps,
		"age":   final.Age,
		"Tmax":  final.Temperature.Max(),
	}).Info("run finished")
}
