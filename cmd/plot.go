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
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/notargets/highorder/basis"
	"github.com/spf13/cobra"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the one dimensional Bezier and Lagrange bases",
	Long: `
Writes an HTML page with the Bernstein and equispaced Lagrange shape functions
of the requested order, and their derivatives,

highorder plot -n 3 -O basis.html`,
	Run: func(cmd *cobra.Command, args []string) {
		order, _ := cmd.Flags().GetInt("n")
		samples, _ := cmd.Flags().GetInt("samples")
		outFile, _ := cmd.Flags().GetString("output")
		page, err := BasisPage(order, samples)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		f, err := os.Create(outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err = page.Render(f); err != nil {
			fmt.Fprintf(os.Stderr, "render error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", outFile)
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().IntP("n", "n", 3, "polynomial order")
	PlotCmd.Flags().IntP("samples", "s", 101, "number of sample points along [0,1]")
	PlotCmd.Flags().StringP("output", "O", "basis.html", "HTML output file")
}

// BasisPage builds one chart of shape functions and one of derivatives per family
func BasisPage(order, samples int) (page *components.Page, err error) {
	if order < 1 || order > 10 {
		return nil, fmt.Errorf("order %d outside [1,10]", order)
	}
	if samples < 2 {
		return nil, fmt.Errorf("need at least 2 samples, have %d", samples)
	}
	page = components.NewPage().SetPageTitle(fmt.Sprintf("Order %d bases", order))
	for _, fam := range []basis.Family{basis.Bezier{}, basis.Lagrange{}} {
		page.AddCharts(basisCharts(fam, order, samples)...)
	}
	return
}

func basisCharts(fam basis.Family, order, samples int) []components.Charter {
	var (
		xs     = make([]string, samples)
		vals   = make([][]opts.LineData, order+1)
		ders   = make([][]opts.LineData, order+1)
		shape  = make([]float64, order+1)
		deriv  = make([]float64, order+1)
		values = charts.NewLine()
		grads  = charts.NewLine()
	)
	for k := 0; k < samples; k++ {
		x := float64(k) / float64(samples-1)
		xs[k] = fmt.Sprintf("%.3f", x)
		fam.EvaluateShapeAndGradient(order, x, shape, deriv)
		for i := range shape {
			vals[i] = append(vals[i], opts.LineData{Value: shape[i]})
			ders[i] = append(ders[i], opts.LineData{Value: deriv[i]})
		}
	}
	for _, c := range []struct {
		line  *charts.Line
		title string
		data  [][]opts.LineData
	}{
		{values, fmt.Sprintf("%s shape functions, order %d", fam.Name(), order), vals},
		{grads, fmt.Sprintf("%s derivatives, order %d", fam.Name(), order), ders},
	} {
		c.line.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: c.title}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
			charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		)
		c.line.SetXAxis(xs)
		for i, d := range c.data {
			c.line.AddSeries(fmt.Sprintf("N%d", i), d)
		}
		c.line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	}
	return []components.Charter{values, grads}
}
