package basis

import (
	"fmt"
	"sync"
)

// BernsteinShapeFunctions fills shape[0:order+1] with the Bernstein
// polynomials B_i^order(x) = C(order,i) x^i (1-x)^(order-i), built with the
// de Casteljau triangle so no binomials or powers are formed.
func BernsteinShapeFunctions(order int, x float64, shape []float64) {
	var (
		u1 = 1 - x
		u2 = x
	)
	shape[0] = 1
	for k := 1; k <= order; k++ {
		shape[k] = 0
		for j := k; j >= 1; j-- {
			shape[j] = u1*shape[j] + u2*shape[j-1]
		}
		shape[0] *= u1
	}
}

// BernsteinShapeAndGradient fills the Bernstein values and their derivatives
// d/dx B_i^n = n (B_{i-1}^{n-1} - B_i^{n-1})
func BernsteinShapeAndGradient(order int, x float64, shape, deriv []float64) {
	if order == 0 {
		shape[0], deriv[0] = 1, 0
		return
	}
	BernsteinShapeFunctions(order-1, x, deriv)
	n := float64(order)
	deriv[order] = n * deriv[order-1]
	for i := order - 1; i >= 1; i-- {
		deriv[i] = n * (deriv[i-1] - deriv[i])
	}
	deriv[0] = -n * deriv[0]
	BernsteinShapeFunctions(order, x, shape)
}

// linearSimplex returns the linear barycentric basis (r, s, [t,] 1-sum)
func linearSimplex(dim int, pcoords [3]float64) (lam [4]float64) {
	var sum float64
	for a := 0; a < dim; a++ {
		lam[a] = pcoords[a]
		sum += pcoords[a]
	}
	lam[dim] = 1 - sum
	return
}

// casteljauScratch holds the work arrays of the simplex de Casteljau
// contraction; instances are recycled through casteljauPool
type casteljauScratch struct {
	tmp, next, lower []float64
}

var casteljauPool = sync.Pool{
	New: func() interface{} { return &casteljauScratch{} },
}

// DeCasteljauSimplex fills weights with the Bernstein polynomials of degree
// deg on a triangle or tetrahedron, in flat simplex order.
func DeCasteljauSimplex(dim, deg int, pcoords [3]float64, weights []float64) (err error) {
	if dim != 2 && dim != 3 {
		return fmt.Errorf("DeCasteljauSimplex(dim=%d): %w", dim, ErrUnsupportedDimension)
	}
	var (
		nf  = NumberOfSimplexFunctions(dim, deg)
		lam = linearSimplex(dim, pcoords)
	)
	if deg == 0 {
		weights[0] = 1
		return
	}
	sc := casteljauPool.Get().(*casteljauScratch)
	defer casteljauPool.Put(sc)
	sc.tmp, sc.next = grow(sc.tmp, nf), grow(sc.next, nf)
	tmp, next := sc.tmp[:nf], sc.next[:nf]
	for fn := 0; fn < nf; fn++ {
		for i := range tmp {
			tmp[i] = 0
		}
		tmp[fn] = 1
		// contract one degree at a time until one coefficient remains
		for d := deg; d > 0; d-- {
			nLow := NumberOfSimplexFunctions(dim, d-1)
			for lo := 0; lo < nLow; lo++ {
				c := unflattenSimplex(dim, d-1, lo)
				v := lam[dim] * tmp[flattenSimplex(dim, d, c)]
				for b := 0; b < dim; b++ {
					cb := c
					cb[b]++
					v += lam[b] * tmp[flattenSimplex(dim, d, cb)]
				}
				next[lo] = v
			}
			tmp, next = next, tmp
		}
		weights[fn] = tmp[0]
	}
	return
}

// DeCasteljauSimplexDeriv fills derivs with the parametric derivatives of the
// simplex Bernstein polynomials, derivs[axis*N+i]
func DeCasteljauSimplexDeriv(dim, deg int, pcoords [3]float64, derivs []float64) (err error) {
	if dim != 2 && dim != 3 {
		return fmt.Errorf("DeCasteljauSimplexDeriv(dim=%d): %w", dim, ErrUnsupportedDimension)
	}
	nf := NumberOfSimplexFunctions(dim, deg)
	if deg == 0 {
		for i := 0; i < dim*nf; i++ {
			derivs[i] = 0
		}
		return
	}
	sc := casteljauPool.Get().(*casteljauScratch)
	defer casteljauPool.Put(sc)
	nLow := NumberOfSimplexFunctions(dim, deg-1)
	sc.lower = grow(sc.lower, nLow)
	lower := sc.lower[:nLow]
	if err = DeCasteljauSimplex(dim, deg-1, pcoords, lower); err != nil {
		return
	}
	n := float64(deg)
	for fn := 0; fn < nf; fn++ {
		c := unflattenSimplex(dim, deg, fn)
		implicit := deg
		for a := 0; a < dim; a++ {
			implicit -= c[a]
		}
		var dImplicit float64
		if implicit > 0 {
			dImplicit = lower[flattenSimplex(dim, deg-1, c)]
		}
		for a := 0; a < dim; a++ {
			var dA float64
			if c[a] > 0 {
				ca := c
				ca[a]--
				dA = lower[flattenSimplex(dim, deg-1, ca)]
			}
			derivs[a*nf+fn] = n * (dA - dImplicit)
		}
	}
	return
}
