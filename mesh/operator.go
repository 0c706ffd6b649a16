package mesh

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

// Operator is a sparse matrix with one row per sample and one column per
// mesh point. Row i holds the shape function weights of sample i.
type Operator struct {
	M    *sparse.CSR
	name string
}

func newOperator(dok *sparse.DOK, name string) Operator {
	return Operator{
		M:    dok.ToCSR(),
		name: name,
	}
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (op Operator) Dims() (r, c int)              { return op.M.Dims() }
func (op Operator) At(i, j int) float64           { return op.M.At(i, j) }
func (op Operator) T() mat.Matrix                 { return op.M.T() }
func (op Operator) RawMatrix() *blas.SparseMatrix { return op.M.RawMatrix() }
func (op Operator) Name() string                  { return op.name }

// NNZ is the number of stored weights
func (op Operator) NNZ() int {
	return op.M.NNZ()
}

// Apply interpolates one component of a point major array with the given
// number of components, returning one value per sample
func (op Operator) Apply(values []float64, components, component int) (y []float64, err error) {
	var (
		nr, nc = op.Dims()
		raw    = op.RawMatrix()
	)
	if len(values) != nc*components || component < 0 || component >= components {
		err = fmt.Errorf("operator %s: cannot apply to %d values with %d components (component %d) over %d points",
			op.name, len(values), components, component, nc)
		return
	}
	y = make([]float64, nr)
	for i := 0; i < nr; i++ {
		for p := raw.Indptr[i]; p < raw.Indptr[i+1]; p++ {
			y[i] += raw.Data[p] * values[raw.Ind[p]*components+component]
		}
	}
	return
}

// RowSums returns the sum of the weights of every sample
func (op Operator) RowSums() (sums []float64) {
	var (
		nr, _ = op.Dims()
		raw   = op.RawMatrix()
	)
	sums = make([]float64, nr)
	for i := range sums {
		for p := raw.Indptr[i]; p < raw.Indptr[i+1]; p++ {
			sums[i] += raw.Data[p]
		}
	}
	return
}
