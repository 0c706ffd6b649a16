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
	"fmt"
	"io"
	"os"

	"github.com/notargets/highorder/InputParameters"
	"github.com/notargets/highorder/cells"
	"github.com/notargets/highorder/mesh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type EvalModel struct {
	JobFile        string
	Gradients      bool
	Operator       bool
	ParallelDegree int
}

// EvalCmd represents the eval command
var EvalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a field and its gradient at parametric sample locations",
	Long: `
Reads an evaluation job in YAML, builds the cells it describes and probes the
named point data field at every sample,

highorder eval -I job.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		em, ej := processEvalInput(cmd)
		if err = RunEval(os.Stdout, em, ej); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func processEvalInput(cmd *cobra.Command) (em *EvalModel, ej *InputParameters.EvaluationJob) {
	var (
		err      error
		willExit = false
	)
	em = &EvalModel{}
	if em.JobFile, err = cmd.Flags().GetString("inputJobFile"); err != nil {
		panic(err)
	}
	em.Gradients, _ = cmd.Flags().GetBool("gradients")
	em.Operator, _ = cmd.Flags().GetBool("operator")
	em.ParallelDegree = viper.GetInt("parallel")
	if len(em.JobFile) == 0 {
		err := fmt.Errorf("must supply an evaluation job file (-I, --inputJobFile)")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Quarter circle, rational quadratic Bezier"
Points:
  - [1, 0, 0]
  - [0, 1, 0]
  - [1, 1, 0]
Cells:
  - Family: bezier # Can be "lagrange"
    Shape: curve   # quad, hex, tri, tet, wedge
    Order: [2]
    PointIDs: [0, 1, 2]
PointData:
  RationalWeights:
    Components: 1
    Values: [1, 1, 0.7071067811865476]
  Temperature:
    Components: 1
    Values: [300, 400, 350]
Field: Temperature
Samples:
  - Cell: 0
    PCoords: [0.5, 0, 0]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(em.JobFile); err != nil {
		panic(err)
	}
	ej = &InputParameters.EvaluationJob{}
	if err = ej.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(EvalCmd)
	EvalCmd.Flags().StringP("inputJobFile", "I", "", "YAML file describing points, cells, point data and samples")
	EvalCmd.Flags().BoolP("gradients", "g", false, "also print physical gradients of the field for 3D cells")
	EvalCmd.Flags().BoolP("operator", "o", false, "print the sparse interpolation operator")
}

func RunEval(w io.Writer, em *EvalModel, ej *InputParameters.EvaluationJob) (err error) {
	var (
		m       *mesh.Mesh
		samples = ej.MeshSamples()
		np      = em.ParallelDegree
	)
	if ej.ParallelDegree > 0 {
		np = ej.ParallelDegree
	}
	if m, err = ej.Mesh(); err != nil {
		return
	}
	x, err := m.Locations(samples)
	if err != nil {
		return
	}
	a, ok := m.PointData.GetArray(ej.Field)
	if !ok {
		return fmt.Errorf("field %q not found in point data", ej.Field)
	}
	values, err := m.Probe(samples, ej.Field, np)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "%s\n", ej.Title)
	for k, s := range samples {
		fmt.Fprintf(w, "[%d] cell %d pcoords %8.5f -> x = (%8.5f, %8.5f, %8.5f), %s = %v\n",
			k, s.Cell, s.PCoords, x[k].X, x[k].Y, x[k].Z, ej.Field, values[k*a.Components:(k+1)*a.Components])
	}
	if em.Gradients {
		if err = printGradients(w, m, samples, a.Components, a.Values, ej.Field); err != nil {
			return
		}
	}
	if em.Operator {
		var op mesh.Operator
		if op, err = m.InterpolationOperator(samples, np); err != nil {
			return
		}
		r, c := op.Dims()
		fmt.Fprintf(w, "Operator %d x %d, %d non zeros\n", r, c, op.NNZ())
		raw := op.RawMatrix()
		for i := 0; i < r; i++ {
			for jj := raw.Indptr[i]; jj < raw.Indptr[i+1]; jj++ {
				fmt.Fprintf(w, "\t(%d,%d) %8.5f\n", i, raw.Ind[jj], raw.Data[jj])
			}
		}
	}
	return
}

func printGradients(w io.Writer, m *mesh.Mesh, samples []mesh.Sample, comps int, field []float64, name string) (err error) {
	var c cells.Cell
	for k, s := range samples {
		if c, err = m.Cell(s.Cell); err != nil {
			return
		}
		if c.Dimension() != 3 {
			fmt.Fprintf(w, "[%d] cell %d is %dD, no gradient\n", k, s.Cell, c.Dimension())
			continue
		}
		vals := make([]float64, 0, comps*c.NumberOfPoints())
		for _, pid := range c.PointIDs() {
			vals = append(vals, field[pid*comps:(pid+1)*comps]...)
		}
		grad := make([]float64, 3*comps)
		if err = c.EvaluateDerivative(s.PCoords, vals, comps, grad); err != nil {
			return
		}
		for comp := 0; comp < comps; comp++ {
			fmt.Fprintf(w, "[%d] grad %s[%d] = (%8.5f, %8.5f, %8.5f)\n",
				k, name, comp, grad[3*comp], grad[3*comp+1], grad[3*comp+2])
		}
	}
	return
}
