package basis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinomialCoefficient(t *testing.T) {
	tests := []struct {
		n, k, want int
	}{
		{0, 0, 1},
		{5, 2, 10},
		{10, 5, 252},
		{12, 4, 495},
		{20, 10, 184756},
		{20, 17, 1140},
		{4, -1, 0},
		{4, 5, 0},
		{15, 16, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BinomialCoefficient(tt.n, tt.k), "C(%d,%d)", tt.n, tt.k)
	}
	// the table and the iterative path agree at the boundary
	for k := 0; k <= 11; k++ {
		assert.Equal(t, BinomialCoefficient(10, k)+BinomialCoefficient(10, k-1), BinomialCoefficient(11, k))
	}
}

func TestNumberOfSimplexFunctions(t *testing.T) {
	assert.Equal(t, 1, NumberOfSimplexFunctions(2, 0))
	assert.Equal(t, 6, NumberOfSimplexFunctions(2, 2))
	assert.Equal(t, 10, NumberOfSimplexFunctions(3, 2))
	assert.Equal(t, 20, NumberOfSimplexFunctions(3, 3))
}

func TestFlattenUnflattenInverse(t *testing.T) {
	for _, dim := range []int{2, 3} {
		for deg := 0; deg <= 8; deg++ {
			seen := make(map[[3]int]bool)
			for flat := 0; flat < NumberOfSimplexFunctions(dim, deg); flat++ {
				c, err := UnflattenSimplex(dim, deg, flat)
				require.NoError(t, err)
				assert.LessOrEqual(t, c[0]+c[1]+c[2], deg)
				assert.False(t, seen[c], "dim=%d deg=%d coordinate %v repeated", dim, deg, c)
				seen[c] = true
				back, err := FlattenSimplex(dim, deg, c)
				require.NoError(t, err)
				assert.Equal(t, flat, back, "dim=%d deg=%d", dim, deg)
			}
		}
	}
}

func TestFlattenUnsupportedDimension(t *testing.T) {
	_, err := FlattenSimplex(4, 2, [3]int{})
	assert.True(t, errors.Is(err, ErrUnsupportedDimension))
	_, err = UnflattenSimplex(1, 2, 0)
	assert.True(t, errors.Is(err, ErrUnsupportedDimension))
	_, err = UnflattenSimplex(2, 2, 6)
	assert.Error(t, err)
}

func TestFlattenOutsideSimplex(t *testing.T) {
	tests := []struct {
		dim, deg int
		coord    [3]int
	}{
		{2, 2, [3]int{-1, 1}},
		{2, 2, [3]int{2, 1}},
		{2, 3, [3]int{0, 4}},
		{3, 2, [3]int{0, 0, 3}},
		{3, 3, [3]int{1, -1, 1}},
		{3, 3, [3]int{1, 1, 2}},
	}
	for _, tt := range tests {
		_, err := FlattenSimplex(tt.dim, tt.deg, tt.coord)
		assert.Error(t, err, "dim=%d deg=%d %v", tt.dim, tt.deg, tt.coord)
	}
	// the unused third entry of a triangle coordinate is ignored
	flat, err := FlattenSimplex(2, 2, [3]int{0, 2, 7})
	require.NoError(t, err)
	assert.Equal(t, 5, flat)
}
