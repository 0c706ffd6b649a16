package basis

import (
	"errors"
	"math"
	"testing"

	"github.com/notargets/highorder/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var tensorOrders = [][3]int{{1, 1, 1}, {2, 2, 2}, {2, 3, 4}, {4, 1, 3}, {3, 3, 1}}

func TestVisitOrderMatchesPointIndex(t *testing.T) {
	for _, order := range tensorOrders {
		var count int
		visitCurve(order, func(n, i int) {
			assert.Equal(t, topology.CurvePointIndexFromIJK(i, order), n)
			count++
		})
		assert.Equal(t, topology.NumberOfPoints(topology.Curve, order), count)
		count = 0
		visitQuad(order, func(n, i, j int) {
			assert.Equal(t, topology.QuadPointIndexFromIJK(i, j, order), n, "order %v (%d,%d)", order, i, j)
			count++
		})
		assert.Equal(t, topology.NumberOfPoints(topology.Quadrilateral, order), count)
		count = 0
		visitHex(order, func(n, i, j, k int) {
			assert.Equal(t, topology.HexPointIndexFromIJK(i, j, k, order), n, "order %v (%d,%d,%d)", order, i, j, k)
			count++
		})
		assert.Equal(t, topology.NumberOfPoints(topology.Hexahedron, order), count)
	}
}

func TestTensorPartitionOfUnity(t *testing.T) {
	pcs := [][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}, {0.13, 0.77, 0.41}, {1, 0.2, 0.9}}
	for _, order := range tensorOrders {
		for _, f := range []interface {
			Tensor2ShapeFunctions([3]int, [3]float64, []float64) int
			Tensor3ShapeFunctions([3]int, [3]float64, []float64) int
		}{NewBezierInterpolation(), NewLagrangeInterpolation()} {
			shape := make([]float64, topology.NumberOfPoints(topology.Hexahedron, order))
			for _, pc := range pcs {
				n := f.Tensor3ShapeFunctions(order, pc, shape)
				assert.InDelta(t, 1, sum(shape[:n]), 1.e-12)
				n = f.Tensor2ShapeFunctions(order, pc, shape)
				assert.InDelta(t, 1, sum(shape[:n]), 1.e-12)
			}
		}
	}
}

func TestLagrangeHexKronecker(t *testing.T) {
	ip := NewLagrangeInterpolation()
	for _, order := range tensorOrders {
		var (
			pcs   = topology.TensorParametricCoords(topology.Hexahedron, order)
			shape = make([]float64, len(pcs))
		)
		for dof, pc := range pcs {
			ip.Tensor3ShapeFunctions(order, pc, shape)
			for i, s := range shape {
				want := 0.
				if i == dof {
					want = 1
				}
				assert.InDelta(t, want, s, 1.e-12, "order %v dof %d function %d", order, dof, i)
			}
		}
	}
}

func TestTensorDerivatives(t *testing.T) {
	const h = 1.e-6
	var (
		order = [3]int{2, 3, 2}
		pc    = [3]float64{0.3, 0.6, 0.45}
		np    = topology.NumberOfPoints(topology.Hexahedron, order)
	)
	for _, ip := range []interface {
		Tensor2ShapeFunctions([3]int, [3]float64, []float64) int
		Tensor2ShapeDerivatives([3]int, [3]float64, []float64) int
		Tensor3ShapeFunctions([3]int, [3]float64, []float64) int
		Tensor3ShapeDerivatives([3]int, [3]float64, []float64) int
	}{NewBezierInterpolation(), NewLagrangeInterpolation()} {
		var (
			derivs      = make([]float64, 3*np)
			plus, minus = make([]float64, np), make([]float64, np)
		)
		assert.Equal(t, np, ip.Tensor3ShapeDerivatives(order, pc, derivs))
		for a := 0; a < 3; a++ {
			pp, pm := pc, pc
			pp[a] += h
			pm[a] -= h
			ip.Tensor3ShapeFunctions(order, pp, plus)
			ip.Tensor3ShapeFunctions(order, pm, minus)
			for i := 0; i < np; i++ {
				fd := (plus[i] - minus[i]) / (2 * h)
				assert.InDelta(t, fd, derivs[3*i+a], 1.e-6*math.Max(1, math.Abs(fd)))
			}
		}
		nq := ip.Tensor2ShapeDerivatives(order, pc, derivs)
		for a := 0; a < 2; a++ {
			pp, pm := pc, pc
			pp[a] += h
			pm[a] -= h
			ip.Tensor2ShapeFunctions(order, pp, plus)
			ip.Tensor2ShapeFunctions(order, pm, minus)
			for i := 0; i < nq; i++ {
				fd := (plus[i] - minus[i]) / (2 * h)
				assert.InDelta(t, fd, derivs[2*i+a], 1.e-6*math.Max(1, math.Abs(fd)))
			}
		}
	}
}

// affine maps reference points into a sheared, scaled, translated cell
var affine = [3][4]float64{
	{2, 0.3, 0, 1},
	{0.1, 1.5, 0.2, -2},
	{0, 0.4, 3, 0.5},
}

func mapAffine(pc [3]float64) r3.Vec {
	var x [3]float64
	for i := range x {
		x[i] = affine[i][0]*pc[0] + affine[i][1]*pc[1] + affine[i][2]*pc[2] + affine[i][3]
	}
	return r3.Vec{X: x[0], Y: x[1], Z: x[2]}
}

// linearField has gradients (1,-2,0.5) and (0,3,-1)
func linearField(p r3.Vec) [2]float64 {
	return [2]float64{p.X - 2*p.Y + 0.5*p.Z + 4, 3*p.Y - p.Z}
}

func TestTensor3EvaluateDerivative(t *testing.T) {
	var (
		order  = [3]int{2, 2, 3}
		pcs    = topology.TensorParametricCoords(topology.Hexahedron, order)
		points = make([]r3.Vec, len(pcs))
		field  = make([]float64, 2*len(pcs))
	)
	for i, pc := range pcs {
		points[i] = mapAffine(pc)
		f := linearField(points[i])
		field[2*i], field[2*i+1] = f[0], f[1]
	}
	want := []float64{1, -2, 0.5, 0, 3, -1}
	for _, ip := range []interface {
		Tensor3Evaluate([3]int, [3]float64, []float64, int, []float64) error
		Tensor3EvaluateDerivative([3]int, [3]float64, []r3.Vec, []float64, int, []float64) error
	}{NewBezierInterpolation(), NewLagrangeInterpolation()} {
		for _, pc := range [][3]float64{{0.5, 0.5, 0.5}, {0.1, 0.8, 0.3}} {
			grad := make([]float64, 6)
			require.NoError(t, ip.Tensor3EvaluateDerivative(order, pc, points, field, 2, grad))
			assert.InDeltaSlice(t, want, grad, 1.e-10)

			out := make([]float64, 2)
			require.NoError(t, ip.Tensor3Evaluate(order, pc, field, 2, out))
			f := linearField(mapAffine(pc))
			assert.InDeltaSlice(t, f[:], out, 1.e-12)
		}
	}
}

func TestTensor3EvaluateDerivativeSingular(t *testing.T) {
	ResetJacobianWarnings()
	defer ResetJacobianWarnings()
	var (
		ip     = NewLagrangeInterpolation()
		order  = [3]int{1, 1, 1}
		points = make([]r3.Vec, 8) // all at the origin
		field  = make([]float64, 8)
		grad   = []float64{42, 42, 42}
	)
	err := ip.Tensor3EvaluateDerivative(order, [3]float64{0.5, 0.5, 0.5}, points, field, 1, grad)
	assert.True(t, errors.Is(err, ErrSingularJacobian))
	assert.Equal(t, []float64{42, 42, 42}, grad)

	err = ip.Tensor3EvaluateDerivative(order, [3]float64{}, points[:4], field, 1, grad)
	assert.True(t, errors.Is(err, ErrPointCount))
}

func TestReserve(t *testing.T) {
	ip := NewBezierInterpolation()
	ip.Reserve(27)
	assert.GreaterOrEqual(t, len(ip.ShapeSpace), 27)
	assert.GreaterOrEqual(t, len(ip.DerivSpace), 81)
	before := &ip.ShapeSpace[0]
	ip.Tensor3Evaluate([3]int{2, 2, 2}, [3]float64{}, make([]float64, 27), 1, make([]float64, 1))
	assert.Same(t, before, &ip.ShapeSpace[0])
}
