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
	"math/rand"
	"os"
	"time"

	"github.com/notargets/highorder/cells"
	"github.com/notargets/highorder/topology"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type BenchModel struct {
	N, Iterations int
	Family        string
	Profile       string
	ProfilePath   string
}

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time shape function and derivative evaluation for every cell shape",
	Long: `
Evaluates shape functions and their parametric derivatives at random points in
every cell shape, optionally under the CPU or memory profiler,

highorder bench -n 4 -f lagrange --profile cpu`,
	Run: func(cmd *cobra.Command, args []string) {
		bm := &BenchModel{}
		bm.N, _ = cmd.Flags().GetInt("n")
		bm.Iterations, _ = cmd.Flags().GetInt("iterations")
		bm.Family, _ = cmd.Flags().GetString("family")
		bm.Profile, _ = cmd.Flags().GetString("profile")
		bm.ProfilePath, _ = cmd.Flags().GetString("profilePath")
		switch bm.Profile {
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(bm.ProfilePath)).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(bm.ProfilePath)).Stop()
		case "", "none":
		default:
			fmt.Printf("unknown profile type %q, use cpu, mem or none\n", bm.Profile)
			os.Exit(1)
		}
		if err := RunBench(os.Stdout, bm); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().IntP("n", "n", 3, "polynomial order")
	BenchCmd.Flags().IntP("iterations", "i", 100000, "evaluations per cell shape")
	BenchCmd.Flags().StringP("family", "f", "bezier", "basis family, bezier or lagrange")
	BenchCmd.Flags().String("profile", "none", "profiler to run: cpu, mem or none")
	BenchCmd.Flags().String("profilePath", ".", "directory for profile output")
}

func RunBench(w io.Writer, bm *BenchModel) (err error) {
	var (
		rng    = rand.New(rand.NewSource(1))
		shapes = []topology.CellShape{
			topology.Curve, topology.Quadrilateral, topology.Hexahedron,
			topology.Triangle, topology.Tetrahedron, topology.Wedge,
		}
	)
	fmt.Fprintf(w, "%-14s %6s %12s %12s\n", "Shape", "DOFs", "Shape ns", "Deriv ns")
	for _, s := range shapes {
		var c cells.Cell
		order := [3]int{bm.N, bm.N, bm.N}
		if c, err = cells.New(bm.Family, s, order, 0); err != nil {
			return
		}
		var (
			np     = c.NumberOfPoints()
			shape  = make([]float64, np)
			derivs = make([]float64, 3*np)
			pts    = make([][3]float64, 64)
		)
		for i := range pts {
			pts[i] = randomPCoords(rng, s)
		}
		start := time.Now()
		for i := 0; i < bm.Iterations; i++ {
			if err = c.InterpolateFunctions(pts[i%len(pts)], shape); err != nil {
				return
			}
		}
		tShape := time.Since(start)
		start = time.Now()
		for i := 0; i < bm.Iterations; i++ {
			if err = c.InterpolateDerivs(pts[i%len(pts)], derivs); err != nil {
				return
			}
		}
		tDeriv := time.Since(start)
		iters := float64(max(bm.Iterations, 1))
		fmt.Fprintf(w, "%-14s %6d %12.1f %12.1f\n", s, np,
			float64(tShape.Nanoseconds())/iters, float64(tDeriv.Nanoseconds())/iters)
	}
	return
}

// randomPCoords draws a point inside the reference cell of shape s
func randomPCoords(rng *rand.Rand, s topology.CellShape) (pc [3]float64) {
	for i := 0; i < s.Dimension(); i++ {
		pc[i] = rng.Float64()
	}
	switch s {
	case topology.Triangle, topology.Wedge:
		if pc[0]+pc[1] > 1 {
			pc[0], pc[1] = 1-pc[0], 1-pc[1]
		}
	case topology.Tetrahedron:
		for pc[0]+pc[1]+pc[2] > 1 {
			pc = [3]float64{rng.Float64(), rng.Float64(), rng.Float64()}
		}
	}
	return
}
