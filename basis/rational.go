package basis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// degenerateSum is the relative size below which a rational denominator is
// treated as zero
const degenerateSum = 1.e-14

func degenerate(sum, scale float64) bool {
	return sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) || math.Abs(sum) < degenerateSum*scale
}

// ApplyRationalWeights turns polynomial shape values into rational ones,
// shape[i] = w_i N_i / sum_j w_j N_j. An empty weights slice leaves shape
// unchanged. When the denominator is degenerate shape is left holding
// w_i N_i and ErrDegenerateWeights is returned.
func ApplyRationalWeights(weights, shape []float64) (err error) {
	if len(weights) == 0 {
		return
	}
	if len(weights) != len(shape) {
		return fmt.Errorf("ApplyRationalWeights: %d weights for %d functions: %w", len(weights), len(shape), ErrPointCount)
	}
	floats.Mul(shape, weights)
	var (
		sum   = floats.Sum(shape)
		scale = floats.Norm(shape, 1)
	)
	if degenerate(sum, scale) {
		return fmt.Errorf("ApplyRationalWeights: denominator %g: %w", sum, ErrDegenerateWeights)
	}
	floats.Scale(1/sum, shape)
	return
}

// ApplyRationalDerivatives turns polynomial derivatives, blocked as
// derivs[a*N+i], into derivatives of the rational functions by the quotient
// rule. shape holds the polynomial values and is not modified.
func ApplyRationalDerivatives(weights, shape, derivs []float64, dim int) (err error) {
	if len(weights) == 0 {
		return
	}
	n := len(shape)
	if len(weights) != n || len(derivs) < dim*n {
		return fmt.Errorf("ApplyRationalDerivatives: %d weights, %d functions, %d derivatives: %w",
			len(weights), n, len(derivs), ErrPointCount)
	}
	var (
		sum   = floats.Dot(weights, shape)
		scale float64
	)
	for i := range shape {
		scale += math.Abs(weights[i] * shape[i])
	}
	if degenerate(sum, scale) {
		return fmt.Errorf("ApplyRationalDerivatives: denominator %g: %w", sum, ErrDegenerateWeights)
	}
	for a := 0; a < dim; a++ {
		da := derivs[a*n : (a+1)*n]
		dSum := floats.Dot(weights, da)
		for i := range da {
			da[i] = weights[i] * (da[i]*sum - shape[i]*dSum) / (sum * sum)
		}
	}
	return
}
