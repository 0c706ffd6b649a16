package basis

import (
	"errors"
	"testing"

	"github.com/notargets/highorder/topology"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestJacobianRoundTrip(t *testing.T) {
	var (
		ip     = NewBezierInterpolation()
		order  = [3]int{2, 1, 3}
		pcs    = topology.TensorParametricCoords(topology.Hexahedron, order)
		points = make([]r3.Vec, len(pcs))
		derivs = make([]float64, 3*len(pcs))
		jI     [3][3]float64
	)
	for i, pc := range pcs {
		points[i] = mapAffine(pc)
	}
	ip.Tensor3ShapeDerivatives(order, [3]float64{0.4, 0.3, 0.8}, derivs)
	require.NoError(t, JacobianInverse(points, derivs, &jI))
	jac := Jacobian(points, derivs)
	// J[a][i] = dx_i/dxi_a is the transpose of the affine matrix
	for a := 0; a < 3; a++ {
		for i := 0; i < 3; i++ {
			assert.InDelta(t, affine[i][a], jac[a][i], 1.e-12)
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var v float64
			for k := 0; k < 3; k++ {
				v += jac[i][k] * jI[k][j]
			}
			want := 0.
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, v, 1.e-12)
		}
	}
}

func TestJacobianLayoutsAgree(t *testing.T) {
	var (
		ip          = NewLagrangeInterpolation()
		order       = [3]int{2, 2, 2}
		pcs         = topology.TensorParametricCoords(topology.Hexahedron, order)
		np          = len(pcs)
		points      = make([]r3.Vec, np)
		interleaved = make([]float64, 3*np)
		blocked     = make([]float64, 3*np)
	)
	for i, pc := range pcs {
		points[i] = mapAffine(pc)
	}
	ip.Tensor3ShapeDerivatives(order, [3]float64{0.1, 0.2, 0.3}, interleaved)
	for i := 0; i < np; i++ {
		for a := 0; a < 3; a++ {
			blocked[a*np+i] = interleaved[3*i+a]
		}
	}
	var a, b [3][3]float64
	require.NoError(t, JacobianInverse(points, interleaved, &a))
	require.NoError(t, JacobianInverseWedge(points, blocked, &b))
	assert.Equal(t, Jacobian(points, interleaved), JacobianBlocked(points, blocked))
	for i := range a {
		assert.InDeltaSlice(t, a[i][:], b[i][:], 1.e-15)
	}
}

func TestSingularJacobianWarningsAreLimited(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ResetJacobianWarnings()
	defer ResetJacobianWarnings()

	var (
		points = []r3.Vec{{X: 1}, {X: 2}, {X: 3}}
		derivs = make([]float64, 9)
		jI     = [3][3]float64{{7, 7, 7}}
	)
	for i := 0; i < 2*MaxJacobianWarnings; i++ {
		err := JacobianInverse(points, derivs, &jI)
		assert.True(t, errors.Is(err, ErrSingularJacobian))
	}
	assert.Equal(t, 2*MaxJacobianWarnings, JacobianWarnings())
	assert.Equal(t, [3][3]float64{{7, 7, 7}}, jI)
	ResetJacobianWarnings()
	assert.Equal(t, 0, JacobianWarnings())
}
