package basis

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quarterCircle is the rational quadratic Bezier arc from (1,0) to (0,1)
var quarterCircle = struct {
	x, y, w []float64
}{
	x: []float64{1, 1, 0},
	y: []float64{0, 1, 1},
	w: []float64{1, math.Sqrt2 / 2, 1},
}

func TestRationalQuarterCircle(t *testing.T) {
	shape := make([]float64, 3)
	for _, u := range []float64{0, 0.2, 0.5, 0.8, 1} {
		BernsteinShapeFunctions(2, u, shape)
		require.NoError(t, ApplyRationalWeights(quarterCircle.w, shape))
		assert.InDelta(t, 1, sum(shape), 1.e-14)
		var x, y float64
		for i, s := range shape {
			x += s * quarterCircle.x[i]
			y += s * quarterCircle.y[i]
		}
		assert.InDelta(t, 1, x*x+y*y, 1.e-14, "u=%v", u)
	}
}

func TestRationalEmptyWeights(t *testing.T) {
	shape := []float64{0.25, 0.5, 0.25}
	require.NoError(t, ApplyRationalWeights(nil, shape))
	assert.Equal(t, []float64{0.25, 0.5, 0.25}, shape)
}

func TestRationalDegenerate(t *testing.T) {
	shape := []float64{0.5, 0.5}
	err := ApplyRationalWeights([]float64{1, -1}, shape)
	assert.True(t, errors.Is(err, ErrDegenerateWeights))
	assert.Equal(t, []float64{0.5, -0.5}, shape)

	err = ApplyRationalWeights([]float64{1}, shape)
	assert.True(t, errors.Is(err, ErrPointCount))

	derivs := []float64{-1, 1}
	err = ApplyRationalDerivatives([]float64{1, -1}, []float64{0.5, 0.5}, derivs, 1)
	assert.True(t, errors.Is(err, ErrDegenerateWeights))
	assert.Equal(t, []float64{-1, 1}, derivs)
}

func TestRationalDerivatives(t *testing.T) {
	const h = 1.e-6
	var (
		w            = []float64{1, 0.6, 1.7, 0.9}
		shape, deriv = make([]float64, 4), make([]float64, 4)
		plus, minus  = make([]float64, 4), make([]float64, 4)
		u            = 0.37
	)
	BernsteinShapeAndGradient(3, u, shape, deriv)
	require.NoError(t, ApplyRationalDerivatives(w, shape, deriv, 1))
	BernsteinShapeFunctions(3, u+h, plus)
	BernsteinShapeFunctions(3, u-h, minus)
	require.NoError(t, ApplyRationalWeights(w, plus))
	require.NoError(t, ApplyRationalWeights(w, minus))
	for i := range deriv {
		assert.InDelta(t, (plus[i]-minus[i])/(2*h), deriv[i], 1.e-7)
	}
	assert.InDelta(t, 0, sum(deriv), 1.e-12)
}
