package pointdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointData(t *testing.T) {
	pd := NewPointData()
	_, ok := pd.GetRationalWeights()
	assert.False(t, ok)

	require.NoError(t, pd.AddArray("velocity", 3, []float64{1, 2, 3, 4, 5, 6}))
	require.NoError(t, pd.AddArray(RationalWeightsName, 1, []float64{1, 0.5}))
	assert.Error(t, pd.AddArray("bad", 2, []float64{1, 2, 3}))
	assert.Error(t, pd.AddArray("bad", 0, nil))
	assert.Equal(t, []string{RationalWeightsName, "velocity"}, pd.ArrayNames())

	v, ok := pd.GetArray("velocity")
	require.True(t, ok)
	assert.Equal(t, 2, v.NumberOfTuples())
	assert.Equal(t, []float64{4, 5, 6}, v.Tuple(1))
	assert.Equal(t, 4., v.Value(1))

	w, ok := pd.GetRationalWeights()
	require.True(t, ok)
	assert.Equal(t, 0.5, w.Value(1))

	pd.SetActiveRationalWeights("velocity")
	assert.Equal(t, "velocity", pd.ActiveRationalWeights())
	w, ok = pd.GetRationalWeights()
	require.True(t, ok)
	assert.Equal(t, "velocity", w.Name)

	pd.RemoveArray("velocity")
	_, ok = pd.GetRationalWeights()
	assert.False(t, ok)

	var none *PointData
	_, ok = none.GetRationalWeights()
	assert.False(t, ok)
}
