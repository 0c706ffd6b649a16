package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
	"github.com/notargets/highorder/mesh"
	"github.com/notargets/highorder/topology"
	"gonum.org/v1/gonum/spatial/r3"
)

type CellInput struct {
	Family         string `yaml:"Family"`
	Shape          string `yaml:"Shape"`
	Order          [3]int `yaml:"Order"`
	NumberOfPoints int    `yaml:"NumberOfPoints"` // Only needed for enriched wedges
	PointIDs       []int  `yaml:"PointIDs"`
}

type ArrayInput struct {
	Components int       `yaml:"Components"`
	Values     []float64 `yaml:"Values"`
}

type SampleInput struct {
	Cell    int        `yaml:"Cell"`
	PCoords [3]float64 `yaml:"PCoords"`
}

// Parameters obtained from the YAML evaluation job file
type EvaluationJob struct {
	Title           string                `yaml:"Title"`
	Points          [][3]float64          `yaml:"Points"`
	Cells           []CellInput           `yaml:"Cells"`
	PointData       map[string]ArrayInput `yaml:"PointData"` // Keyed by array name
	RationalWeights string                `yaml:"RationalWeights"`
	Field           string                `yaml:"Field"`
	Samples         []SampleInput         `yaml:"Samples"`
	ParallelDegree  int                   `yaml:"ParallelDegree"`
}

func (ej *EvaluationJob) Parse(data []byte) error {
	return yaml.Unmarshal(data, ej)
}

func (ej *EvaluationJob) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ej.Title)
	fmt.Printf("[%d]\t\t\t\t= Number of Points\n", len(ej.Points))
	fmt.Printf("[%d]\t\t\t\t= Number of Cells\n", len(ej.Cells))
	for i, c := range ej.Cells {
		fmt.Printf("Cells[%d] = %s %s of order %v, %d point ids\n", i, c.Family, c.Shape, c.Order, len(c.PointIDs))
	}
	keys := make([]string, len(ej.PointData))
	i := 0
	for k := range ej.PointData {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("PointData[%s] = %d components, %d values\n",
			key, ej.PointData[key].Components, len(ej.PointData[key].Values))
	}
	if len(ej.RationalWeights) != 0 {
		fmt.Printf("[%s]\t\t= Rational Weights\n", ej.RationalWeights)
	}
	fmt.Printf("[%s]\t\t\t= Field\n", ej.Field)
	fmt.Printf("[%d]\t\t\t\t= Number of Samples\n", len(ej.Samples))
}

// Mesh builds the mesh described by the job, including its point data arrays
func (ej *EvaluationJob) Mesh() (m *mesh.Mesh, err error) {
	points := make([]r3.Vec, len(ej.Points))
	for i, p := range ej.Points {
		points[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}
	m = mesh.NewMesh(points)
	for i, c := range ej.Cells {
		var shape topology.CellShape
		if shape, err = topology.NewCellShape(c.Shape); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		if _, err = m.AddCell(mesh.CellRecord{
			Family:         c.Family,
			Shape:          shape,
			Order:          c.Order,
			NumberOfPoints: c.NumberOfPoints,
			PointIDs:       c.PointIDs,
		}); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
	}
	for name, a := range ej.PointData {
		if a.Components == 0 {
			a.Components = 1
		}
		if err = m.PointData.AddArray(name, a.Components, a.Values); err != nil {
			return nil, fmt.Errorf("point data %q: %w", name, err)
		}
	}
	if len(ej.RationalWeights) != 0 {
		if _, ok := m.PointData.GetArray(ej.RationalWeights); !ok {
			return nil, fmt.Errorf("rational weights array %q not found in point data", ej.RationalWeights)
		}
		m.PointData.SetActiveRationalWeights(ej.RationalWeights)
	}
	return
}

func (ej *EvaluationJob) MeshSamples() (samples []mesh.Sample) {
	samples = make([]mesh.Sample, len(ej.Samples))
	for i, s := range ej.Samples {
		samples[i] = mesh.Sample{Cell: s.Cell, PCoords: s.PCoords}
	}
	return
}
