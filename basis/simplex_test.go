package basis

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/notargets/highorder/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var simplexSamples = [][3]float64{
	{0, 0, 0}, {1. / 3, 1. / 3, 0}, {0.1, 0.7, 0.1}, {0.25, 0.2, 0.3}, {0.05, 0.05, 0.85},
}

func sum(s []float64) (total float64) {
	for _, v := range s {
		total += v
	}
	return
}

func TestBezierTriangleCentroid(t *testing.T) {
	ip := NewBezierInterpolation()
	shape := make([]float64, 6)
	n, err := ip.TriangleShapeFunctions(2, [3]float64{1. / 3, 1. / 3}, shape)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.InDelta(t, 1, sum(shape), 1.e-14)
	// vertices are lambda^2, edges 2 lambda_a lambda_b
	want := []float64{1. / 9, 1. / 9, 1. / 9, 2. / 9, 2. / 9, 2. / 9}
	assert.InDeltaSlice(t, want, shape, 1.e-14)
}

func TestSimplexPartitionOfUnity(t *testing.T) {
	for _, f := range families {
		for _, dim := range []int{2, 3} {
			for deg := 0; deg <= 5; deg++ {
				weights := make([]float64, NumberOfSimplexFunctions(dim, deg))
				for _, pc := range simplexSamples {
					if dim == 2 {
						pc[2] = 0
					}
					require.NoError(t, f.SimplexShapeFunctions(dim, deg, pc, weights))
					assert.InDelta(t, 1, sum(weights), 1.e-10, "%s dim=%d deg=%d", f.Name(), dim, deg)
				}
			}
		}
	}
}

func TestSimplexUnsupportedDimension(t *testing.T) {
	w := make([]float64, 10)
	for _, f := range families {
		assert.True(t, errors.Is(f.SimplexShapeFunctions(4, 1, [3]float64{}, w), ErrUnsupportedDimension))
		assert.True(t, errors.Is(f.SimplexShapeDerivatives(1, 1, [3]float64{}, w), ErrUnsupportedDimension))
	}
}

func TestLagrangeTriangleKronecker(t *testing.T) {
	ip := NewLagrangeInterpolation()
	for order := 1; order <= 5; order++ {
		var (
			pcs   = topology.TriangleParametricCoords(order)
			shape = make([]float64, len(pcs))
		)
		for dof, pc := range pcs {
			_, err := ip.TriangleShapeFunctions(order, pc, shape)
			require.NoError(t, err)
			for i, s := range shape {
				want := 0.
				if i == dof {
					want = 1
				}
				assert.InDelta(t, want, s, 1.e-10, "order %d dof %d function %d", order, dof, i)
			}
		}
	}
}

func TestLagrangeTetraKronecker(t *testing.T) {
	ip := NewLagrangeInterpolation()
	for order := 1; order <= 4; order++ {
		var (
			pcs   = topology.TetraParametricCoords(order)
			shape = make([]float64, len(pcs))
		)
		for dof, pc := range pcs {
			_, err := ip.TetraShapeFunctions(order, pc, shape)
			require.NoError(t, err)
			for i, s := range shape {
				want := 0.
				if i == dof {
					want = 1
				}
				assert.InDelta(t, want, s, 1.e-10, "order %d dof %d function %d", order, dof, i)
			}
		}
	}
}

func TestBezierSimplexVertices(t *testing.T) {
	ip := NewBezierInterpolation()
	shape := make([]float64, 20)
	for v, pc := range topology.TetraCorners {
		_, err := ip.TetraShapeFunctions(3, pc, shape)
		require.NoError(t, err)
		assert.InDelta(t, 1, shape[v], 1.e-14)
		assert.InDelta(t, 1, sum(shape), 1.e-14)
	}
}

func TestSimplexDerivatives(t *testing.T) {
	const h = 1.e-6
	for _, f := range families {
		for _, dim := range []int{2, 3} {
			for deg := 1; deg <= 4; deg++ {
				var (
					n      = NumberOfSimplexFunctions(dim, deg)
					derivs = make([]float64, dim*n)
					plus   = make([]float64, n)
					minus  = make([]float64, n)
					pc     = [3]float64{0.21, 0.33, 0.17}
				)
				if dim == 2 {
					pc[2] = 0
				}
				require.NoError(t, f.SimplexShapeDerivatives(dim, deg, pc, derivs))
				for a := 0; a < dim; a++ {
					pp, pm := pc, pc
					pp[a] += h
					pm[a] -= h
					require.NoError(t, f.SimplexShapeFunctions(dim, deg, pp, plus))
					require.NoError(t, f.SimplexShapeFunctions(dim, deg, pm, minus))
					for i := 0; i < n; i++ {
						fd := (plus[i] - minus[i]) / (2 * h)
						assert.InDelta(t, fd, derivs[a*n+i], 1.e-6*math.Max(1, math.Abs(fd)),
							"%s dim=%d deg=%d axis %d function %d", f.Name(), dim, deg, a, i)
					}
				}
				// derivatives of a partition of unity sum to zero
				for a := 0; a < dim; a++ {
					assert.InDelta(t, 0, sum(derivs[a*n:(a+1)*n]), 1.e-9)
				}
			}
		}
	}
}

func TestTetraEvaluateDerivative(t *testing.T) {
	var (
		order  = 3
		pcs    = topology.TetraParametricCoords(order)
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
		TetraEvaluateDerivative(int, [3]float64, []r3.Vec, []float64, int, []float64) error
	}{NewBezierInterpolation(), NewLagrangeInterpolation()} {
		for _, pc := range simplexSamples {
			grad := make([]float64, 6)
			require.NoError(t, ip.TetraEvaluateDerivative(order, pc, points, field, 2, grad))
			assert.InDeltaSlice(t, want, grad, 1.e-10, "pcoords %v", pc)
		}
		err := ip.TetraEvaluateDerivative(order, simplexSamples[1], points[:10], field, 2, make([]float64, 6))
		assert.True(t, errors.Is(err, ErrPointCount))
	}
}

// bernstein is the closed form multinomial Bernstein polynomial at lattice
// coordinate c of a degree deg simplex
func bernstein(dim, deg int, c [3]int, pc [3]float64) float64 {
	var (
		lam      = linearSimplex(dim, pc)
		implicit = deg
		rest     = deg
		v        = 1.
	)
	for a := 0; a < dim; a++ {
		v *= float64(BinomialCoefficient(rest, c[a])) * math.Pow(lam[a], float64(c[a]))
		rest -= c[a]
		implicit -= c[a]
	}
	return v * math.Pow(lam[dim], float64(implicit))
}

func TestDeCasteljauReusedScratch(t *testing.T) {
	type job struct {
		dim, deg int
		pc       [3]float64
	}
	var jobs []job
	for _, deg := range []int{5, 1, 3, 6, 2} {
		for _, dim := range []int{2, 3} {
			for _, pc := range simplexSamples {
				jobs = append(jobs, job{dim, deg, pc})
			}
		}
	}
	var (
		results = make([][]float64, len(jobs))
		derivs  = make([][]float64, len(jobs))
		errs    = make([]error, len(jobs))
		wg      = sync.WaitGroup{}
	)
	for n := range jobs {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			jb := jobs[n]
			nf := NumberOfSimplexFunctions(jb.dim, jb.deg)
			results[n] = make([]float64, nf)
			derivs[n] = make([]float64, jb.dim*nf)
			if errs[n] = DeCasteljauSimplex(jb.dim, jb.deg, jb.pc, results[n]); errs[n] != nil {
				return
			}
			errs[n] = DeCasteljauSimplexDeriv(jb.dim, jb.deg, jb.pc, derivs[n])
		}(n)
	}
	wg.Wait()
	for n, jb := range jobs {
		require.NoError(t, errs[n])
		nf := NumberOfSimplexFunctions(jb.dim, jb.deg)
		for fn := 0; fn < nf; fn++ {
			c := unflattenSimplex(jb.dim, jb.deg, fn)
			assert.InDelta(t, bernstein(jb.dim, jb.deg, c, jb.pc), results[n][fn], 1.e-12,
				"dim=%d deg=%d %v", jb.dim, jb.deg, c)
		}
		// serial calls after the pool has seen larger degrees agree with the concurrent ones
		again := make([]float64, jb.dim*nf)
		require.NoError(t, DeCasteljauSimplexDeriv(jb.dim, jb.deg, jb.pc, again))
		assert.Equal(t, derivs[n], again)
	}
}
