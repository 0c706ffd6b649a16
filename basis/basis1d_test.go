package basis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var families = []Family{Bezier{}, Lagrange{}}

func TestCurveScenarios(t *testing.T) {
	shape := make([]float64, 3)
	Bezier{}.EvaluateShapeFunctions(1, 0.5, shape)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, shape[:2], 1.e-15)

	ip := NewLagrangeInterpolation()
	n := ip.Tensor1ShapeFunctions([3]int{2}, [3]float64{0.5}, shape)
	assert.Equal(t, 3, n)
	assert.InDeltaSlice(t, []float64{0, 0, 1}, shape, 1.e-15)
}

func TestBernsteinValues(t *testing.T) {
	var (
		x     = 0.3
		shape = make([]float64, 4)
	)
	BernsteinShapeFunctions(3, x, shape)
	want := []float64{
		math.Pow(1-x, 3), 3 * x * math.Pow(1-x, 2), 3 * x * x * (1 - x), x * x * x,
	}
	assert.InDeltaSlice(t, want, shape, 1.e-14)
}

func TestBasis1DPartitionOfUnity(t *testing.T) {
	for _, f := range families {
		for order := 1; order <= 8; order++ {
			shape := make([]float64, order+1)
			for _, x := range []float64{0, 0.17, 0.5, 0.91, 1} {
				f.EvaluateShapeFunctions(order, x, shape)
				var sum float64
				for _, s := range shape {
					sum += s
				}
				assert.InDelta(t, 1, sum, 1.e-12, "%s order %d x=%v", f.Name(), order, x)
			}
		}
	}
}

func TestLagrange1DKronecker(t *testing.T) {
	for order := 1; order <= 6; order++ {
		shape := make([]float64, order+1)
		for j := 0; j <= order; j++ {
			LagrangeShapeFunctions(order, float64(j)/float64(order), shape)
			for i, s := range shape {
				want := 0.
				if i == j {
					want = 1
				}
				assert.InDelta(t, want, s, 1.e-12)
			}
		}
	}
}

func TestBasis1DDerivatives(t *testing.T) {
	const h = 1.e-6
	for _, f := range families {
		for order := 1; order <= 6; order++ {
			var (
				shape = make([]float64, order+1)
				deriv = make([]float64, order+1)
				plus  = make([]float64, order+1)
				minus = make([]float64, order+1)
			)
			for _, x := range []float64{0.13, 0.5, 0.77} {
				f.EvaluateShapeAndGradient(order, x, shape, deriv)
				f.EvaluateShapeFunctions(order, x+h, plus)
				f.EvaluateShapeFunctions(order, x-h, minus)
				for i := range deriv {
					fd := (plus[i] - minus[i]) / (2 * h)
					assert.InDelta(t, fd, deriv[i], 1.e-6*math.Max(1, math.Abs(fd)),
						"%s order %d function %d at %v", f.Name(), order, i, x)
				}
				direct := make([]float64, order+1)
				f.EvaluateShapeFunctions(order, x, direct)
				assert.InDeltaSlice(t, direct, shape, 1.e-14)
			}
		}
	}
}

func TestOrderZero(t *testing.T) {
	shape, deriv := []float64{7}, []float64{7}
	BernsteinShapeAndGradient(0, 0.4, shape, deriv)
	assert.Equal(t, []float64{1}, shape)
	assert.Equal(t, []float64{0}, deriv)
}
