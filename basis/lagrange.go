package basis

import "fmt"

// LagrangeShapeFunctions fills shape[0:order+1] with the Lagrange
// polynomials on equispaced nodes j/order in [0,1]
func LagrangeShapeFunctions(order int, x float64, shape []float64) {
	v := float64(order) * x
	for j := 0; j <= order; j++ {
		shape[j] = 1
		for k := 0; k <= order; k++ {
			if k != j {
				shape[j] *= (v - float64(k)) / float64(j-k)
			}
		}
	}
}

// LagrangeShapeAndGradient fills the Lagrange values and their derivatives
// with respect to x
func LagrangeShapeAndGradient(order int, x float64, shape, deriv []float64) {
	var (
		v  = float64(order) * x
		fo = float64(order)
	)
	for j := 0; j <= order; j++ {
		s, d := 1., 0.
		for k := 0; k <= order; k++ {
			if k == j {
				continue
			}
			g := (v - float64(k)) / float64(j-k)
			d = d*g + s*fo/float64(j-k)
			s *= g
		}
		shape[j], deriv[j] = s, d
	}
}

// simplexFactor evaluates prod_{q<m} (v-q)/(q+1) and its derivative in v
func simplexFactor(m int, v float64) (val, der float64) {
	val = 1
	for q := 0; q < m; q++ {
		den := float64(q + 1)
		g := (v - float64(q)) / den
		der = der*g + val/den
		val *= g
	}
	return
}

// LagrangeSimplex fills weights with the equispaced Lagrange polynomials of
// degree deg on a triangle or tetrahedron, in flat simplex order
func LagrangeSimplex(dim, deg int, pcoords [3]float64, weights []float64) (err error) {
	if dim != 2 && dim != 3 {
		return fmt.Errorf("LagrangeSimplex(dim=%d): %w", dim, ErrUnsupportedDimension)
	}
	var (
		nf  = NumberOfSimplexFunctions(dim, deg)
		lam = linearSimplex(dim, pcoords)
		fd  = float64(deg)
	)
	for fn := 0; fn < nf; fn++ {
		var (
			c        = unflattenSimplex(dim, deg, fn)
			implicit = deg
			w        = 1.
		)
		for a := 0; a < dim; a++ {
			implicit -= c[a]
			v, _ := simplexFactor(c[a], fd*lam[a])
			w *= v
		}
		v, _ := simplexFactor(implicit, fd*lam[dim])
		weights[fn] = w * v
	}
	return
}

// LagrangeSimplexDeriv fills derivs with the parametric derivatives of the
// simplex Lagrange polynomials, derivs[axis*N+i]
func LagrangeSimplexDeriv(dim, deg int, pcoords [3]float64, derivs []float64) (err error) {
	if dim != 2 && dim != 3 {
		return fmt.Errorf("LagrangeSimplexDeriv(dim=%d): %w", dim, ErrUnsupportedDimension)
	}
	var (
		nf  = NumberOfSimplexFunctions(dim, deg)
		lam = linearSimplex(dim, pcoords)
		fd  = float64(deg)
	)
	for fn := 0; fn < nf; fn++ {
		var (
			c        = unflattenSimplex(dim, deg, fn)
			implicit = deg
			val, der [4]float64
		)
		for a := 0; a < dim; a++ {
			implicit -= c[a]
		}
		for a := 0; a <= dim; a++ {
			m := implicit
			if a < dim {
				m = c[a]
			}
			val[a], der[a] = simplexFactor(m, fd*lam[a])
		}
		// dPhi/dLambda_a for every barycentric, chained through lambda_dim = 1 - sum
		var dLam [4]float64
		for a := 0; a <= dim; a++ {
			d := fd * der[a]
			for b := 0; b <= dim; b++ {
				if b != a {
					d *= val[b]
				}
			}
			dLam[a] = d
		}
		for a := 0; a < dim; a++ {
			derivs[a*nf+fn] = dLam[a] - dLam[dim]
		}
	}
	return
}
