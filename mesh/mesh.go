// Package mesh is an unstructured collection of higher-order cells sharing a
// global point list and point data. It materialises cells on demand and
// builds sparse interpolation operators for sampling point fields.
package mesh

import (
	"errors"
	"fmt"
	"sync"

	"github.com/james-bowman/sparse"
	"github.com/notargets/highorder/cells"
	"github.com/notargets/highorder/pointdata"
	"github.com/notargets/highorder/topology"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/spatial/r3"
)

var ErrInvalidCell = errors.New("invalid cell id")

func tracer() tracing.Trace {
	return tracing.Select("highorder")
}

// CellRecord is the connectivity of one cell
type CellRecord struct {
	Family         string
	Shape          topology.CellShape
	Order          [3]int
	NumberOfPoints int
	PointIDs       []int
}

// Sample is a parametric location inside one cell
type Sample struct {
	Cell    int
	PCoords [3]float64
}

type Mesh struct {
	Points    []r3.Vec
	Cells     []CellRecord
	PointData *pointdata.PointData
}

func NewMesh(points []r3.Vec) *Mesh {
	return &Mesh{
		Points:    points,
		PointData: pointdata.NewPointData(),
	}
}

// AddCell validates a cell against the point list and appends it
func (m *Mesh) AddCell(rec CellRecord) (id int, err error) {
	var c cells.Cell
	if c, err = cells.New(rec.Family, rec.Shape, rec.Order, rec.NumberOfPoints); err != nil {
		return -1, err
	}
	if len(rec.PointIDs) != c.NumberOfPoints() {
		return -1, fmt.Errorf("%s %s of order %v needs %d point ids, have %d",
			rec.Family, rec.Shape, rec.Order, c.NumberOfPoints(), len(rec.PointIDs))
	}
	for _, pid := range rec.PointIDs {
		if pid < 0 || pid >= len(m.Points) {
			return -1, fmt.Errorf("point id %d outside mesh of %d points", pid, len(m.Points))
		}
	}
	rec.NumberOfPoints = c.NumberOfPoints()
	m.Cells = append(m.Cells, rec)
	return len(m.Cells) - 1, nil
}

// Cell materialises cell id with its points, point ids and rational weights
func (m *Mesh) Cell(id int) (c cells.Cell, err error) {
	if id < 0 || id >= len(m.Cells) {
		tracer().Errorf("cell id %d outside mesh of %d cells", id, len(m.Cells))
		return nil, fmt.Errorf("cell %d of %d: %w", id, len(m.Cells), ErrInvalidCell)
	}
	rec := m.Cells[id]
	if c, err = cells.New(rec.Family, rec.Shape, rec.Order, rec.NumberOfPoints); err != nil {
		return nil, err
	}
	points := make([]r3.Vec, len(rec.PointIDs))
	for i, pid := range rec.PointIDs {
		points[i] = m.Points[pid]
	}
	if err = c.SetPoints(points); err != nil {
		return nil, err
	}
	if err = c.SetPointIDs(rec.PointIDs); err != nil {
		return nil, err
	}
	if err = c.SetRationalWeightsFromPointData(m.PointData); err != nil {
		return nil, err
	}
	return
}

type triplet struct {
	row, col int
	val      float64
}

// InterpolationOperator builds the sparse matrix taking mesh point values to
// sample values. Samples are split across parallelDegree goroutines, each
// with its own cells.
func (m *Mesh) InterpolationOperator(samples []Sample, parallelDegree int) (op Operator, err error) {
	var (
		pm      = NewPartitionMap(parallelDegree, len(samples))
		NP      = pm.ParallelDegree
		parts   = make([][]triplet, NP)
		errs    = make([]error, NP)
		wg      = sync.WaitGroup{}
		nPoints = len(m.Points)
	)
	if len(samples) == 0 {
		err = fmt.Errorf("interpolation operator needs at least one sample")
		return
	}
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			parts[np], errs[np] = m.sampleWeights(samples, pm, np)
		}(np)
	}
	wg.Wait()
	if err = errors.Join(errs...); err != nil {
		return
	}
	dok := sparse.NewDOK(len(samples), nPoints)
	for _, part := range parts {
		for _, tr := range part {
			dok.Set(tr.row, tr.col, dok.At(tr.row, tr.col)+tr.val)
		}
	}
	op = newOperator(dok, fmt.Sprintf("interpolation %dx%d", len(samples), nPoints))
	return
}

// sampleWeights evaluates the shape functions of the samples in bucket np
func (m *Mesh) sampleWeights(samples []Sample, pm *PartitionMap, np int) (trs []triplet, err error) {
	var (
		kMin, kMax = pm.GetBucketRange(np)
		cache      = make(map[int]cells.Cell)
		weights    []float64
	)
	for k := kMin; k < kMax; k++ {
		s := samples[k]
		c, ok := cache[s.Cell]
		if !ok {
			if c, err = m.Cell(s.Cell); err != nil {
				return nil, fmt.Errorf("sample %d: %w", k, err)
			}
			cache[s.Cell] = c
		}
		if cap(weights) < c.NumberOfPoints() {
			weights = make([]float64, c.NumberOfPoints())
		}
		weights = weights[:c.NumberOfPoints()]
		if err = c.InterpolateFunctions(s.PCoords, weights); err != nil {
			return nil, fmt.Errorf("sample %d: %w", k, err)
		}
		for i, pid := range c.PointIDs() {
			trs = append(trs, triplet{k, pid, weights[i]})
		}
	}
	return
}

// Probe interpolates a named point data array at the samples, returning the
// values sample major with the array's number of components
func (m *Mesh) Probe(samples []Sample, arrayName string, parallelDegree int) (values []float64, err error) {
	a, ok := m.PointData.GetArray(arrayName)
	if !ok {
		return nil, fmt.Errorf("no point data array %q", arrayName)
	}
	if a.NumberOfTuples() != len(m.Points) {
		return nil, fmt.Errorf("array %q has %d tuples for %d points", arrayName, a.NumberOfTuples(), len(m.Points))
	}
	var op Operator
	if op, err = m.InterpolationOperator(samples, parallelDegree); err != nil {
		return
	}
	values = make([]float64, len(samples)*a.Components)
	for comp := 0; comp < a.Components; comp++ {
		var y []float64
		if y, err = op.Apply(a.Values, a.Components, comp); err != nil {
			return nil, err
		}
		for i, v := range y {
			values[i*a.Components+comp] = v
		}
	}
	return
}

// Locations maps every sample to physical space
func (m *Mesh) Locations(samples []Sample) (x []r3.Vec, err error) {
	var (
		cache = make(map[int]cells.Cell)
		c     cells.Cell
		ok    bool
	)
	x = make([]r3.Vec, len(samples))
	for k, s := range samples {
		if c, ok = cache[s.Cell]; !ok {
			if c, err = m.Cell(s.Cell); err != nil {
				return nil, err
			}
			cache[s.Cell] = c
		}
		if x[k], err = c.EvaluateLocation(s.PCoords); err != nil {
			return nil, err
		}
	}
	return
}
