package mesh

import (
	"errors"
	"testing"

	"github.com/notargets/highorder/cells"
	"github.com/notargets/highorder/pointdata"
	"github.com/notargets/highorder/topology"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPartitionMap(t *testing.T) {
	for _, tc := range []struct{ np, max int }{{1, 10}, {3, 10}, {4, 4}, {8, 3}, {5, 101}} {
		pm := NewPartitionMap(tc.np, tc.max)
		var (
			next     int
			min, max = tc.max, 0
		)
		for bn := 0; bn < pm.ParallelDegree; bn++ {
			k1, k2 := pm.GetBucketRange(bn)
			assert.Equal(t, next, k1)
			next = k2
			if k2-k1 < min {
				min = k2 - k1
			}
			if k2-k1 > max {
				max = k2 - k1
			}
			for k := k1; k < k2; k++ {
				assert.Equal(t, bn, pm.GetBucket(k))
			}
		}
		assert.Equal(t, tc.max, next)
		assert.LessOrEqual(t, max-min, 1)
	}
	assert.Equal(t, -1, NewPartitionMap(2, 5).GetBucket(5))
}

// twoCellMesh holds a quadratic Lagrange hexahedron on [0,1]^3 and a
// quadratic Bezier tetrahedron shifted by 2 in x, with disjoint points
func twoCellMesh(t *testing.T) *Mesh {
	var (
		hexPC = topology.TensorParametricCoords(topology.Hexahedron, [3]int{2, 2, 2})
		tetPC = topology.TetraParametricCoords(2)
		pts   []r3.Vec
		ids   []int
	)
	for _, pc := range hexPC {
		ids = append(ids, len(pts))
		pts = append(pts, r3.Vec{X: pc[0], Y: pc[1], Z: pc[2]})
	}
	m := NewMesh(nil)
	hexIDs := ids
	ids = nil
	for _, pc := range tetPC {
		ids = append(ids, len(pts))
		pts = append(pts, r3.Vec{X: 2 + pc[0], Y: pc[1], Z: pc[2]})
	}
	m.Points = pts
	_, err := m.AddCell(CellRecord{Family: "lagrange", Shape: topology.Hexahedron, Order: [3]int{2, 2, 2}, PointIDs: hexIDs})
	require.NoError(t, err)
	_, err = m.AddCell(CellRecord{Family: "bezier", Shape: topology.Tetrahedron, Order: [3]int{2}, PointIDs: ids})
	require.NoError(t, err)
	return m
}

var samples = []Sample{
	{0, [3]float64{0.5, 0.5, 0.5}},
	{1, [3]float64{0.2, 0.2, 0.2}},
	{0, [3]float64{0.1, 0.9, 0.3}},
	{1, [3]float64{0, 0, 0}},
	{0, [3]float64{1, 1, 1}},
}

func TestProbeLinearField(t *testing.T) {
	m := twoCellMesh(t)
	field := make([]float64, 2*len(m.Points))
	for i, p := range m.Points {
		field[2*i], field[2*i+1] = 3*p.X-p.Y+2, p.Z
	}
	require.NoError(t, m.PointData.AddArray("f", 2, field))

	x, err := m.Locations(samples)
	require.NoError(t, err)
	for _, np := range []int{1, 2, 4} {
		values, err := m.Probe(samples, "f", np)
		require.NoError(t, err)
		for k, p := range x {
			assert.InDelta(t, 3*p.X-p.Y+2, values[2*k], 1.e-12)
			assert.InDelta(t, p.Z, values[2*k+1], 1.e-12)
		}
	}
	_, err = m.Probe(samples, "missing", 1)
	assert.Error(t, err)
}

func TestOperatorRowsSumToOne(t *testing.T) {
	m := twoCellMesh(t)
	w := make([]float64, len(m.Points))
	for i := range w {
		w[i] = 1 + 0.05*float64(i)
	}
	require.NoError(t, m.PointData.AddArray(pointdata.RationalWeightsName, 1, w))
	op, err := m.InterpolationOperator(samples, 3)
	require.NoError(t, err)
	r, c := op.Dims()
	assert.Equal(t, len(samples), r)
	assert.Equal(t, len(m.Points), c)
	for _, s := range op.RowSums() {
		assert.InDelta(t, 1, s, 1.e-12)
	}
	// the hex corner sample is interpolatory
	assert.InDelta(t, 1, op.At(4, 6), 1.e-12)
	assert.LessOrEqual(t, op.NNZ(), 3*27+2*10)

	_, err = op.Apply(w, 2, 0)
	assert.Error(t, err)
}

func TestMeshErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := twoCellMesh(t)
	_, err := m.Cell(2)
	assert.True(t, errors.Is(err, ErrInvalidCell))
	_, err = m.InterpolationOperator([]Sample{{Cell: 7}}, 1)
	assert.True(t, errors.Is(err, ErrInvalidCell))
	_, err = m.InterpolationOperator(nil, 1)
	assert.Error(t, err)

	_, err = m.AddCell(CellRecord{Family: "lagrange", Shape: topology.Curve, Order: [3]int{2}, PointIDs: []int{0, 1}})
	assert.Error(t, err)
	_, err = m.AddCell(CellRecord{Family: "lagrange", Shape: topology.Curve, Order: [3]int{1}, PointIDs: []int{0, 1000}})
	assert.Error(t, err)

	c, err := m.Cell(1)
	require.NoError(t, err)
	_, ok := c.(*cells.BezierTetrahedron)
	assert.True(t, ok)
}
