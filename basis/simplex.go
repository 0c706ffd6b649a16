package basis

import (
	"fmt"

	"github.com/notargets/highorder/topology"
	"gonum.org/v1/gonum/spatial/r3"
)

// simplexPermutation maps flat simplex order to cell DOF order
func (ip *Interpolation[F]) simplexPermutation(dim, deg int) (perm []int) {
	key := [2]int{dim, deg}
	if perm = ip.perm[key]; perm != nil {
		return
	}
	nf := NumberOfSimplexFunctions(dim, deg)
	perm = make([]int, nf)
	for fn := range perm {
		c := unflattenSimplex(dim, deg, fn)
		if dim == 2 {
			perm[fn] = topology.TriangleIndex([3]int{deg - c[0] - c[1], c[0], c[1]}, deg)
		} else {
			perm[fn] = topology.TetraIndex([4]int{deg - c[0] - c[1] - c[2], c[0], c[1], c[2]}, deg)
		}
	}
	if ip.perm == nil {
		ip.perm = make(map[[2]int][]int)
	}
	ip.perm[key] = perm
	return
}

func (ip *Interpolation[F]) simplexShape(dim, deg int, pcoords [3]float64, shape []float64) (n int, err error) {
	n = NumberOfSimplexFunctions(dim, deg)
	ip.triShape = grow(ip.triShape, n)
	flat := ip.triShape[:n]
	if err = ip.Family.SimplexShapeFunctions(dim, deg, pcoords, flat); err != nil {
		return
	}
	for fn, dof := range ip.simplexPermutation(dim, deg) {
		shape[dof] = flat[fn]
	}
	return
}

func (ip *Interpolation[F]) simplexDerivs(dim, deg int, pcoords [3]float64, derivs []float64) (n int, err error) {
	n = NumberOfSimplexFunctions(dim, deg)
	ip.triDeriv = grow(ip.triDeriv, dim*n)
	flat := ip.triDeriv[:dim*n]
	if err = ip.Family.SimplexShapeDerivatives(dim, deg, pcoords, flat); err != nil {
		return
	}
	for fn, dof := range ip.simplexPermutation(dim, deg) {
		for a := 0; a < dim; a++ {
			derivs[a*n+dof] = flat[a*n+fn]
		}
	}
	return
}

// TriangleShapeFunctions fills shape in triangle DOF order and returns the DOF count
func (ip *Interpolation[F]) TriangleShapeFunctions(order int, pcoords [3]float64, shape []float64) (int, error) {
	return ip.simplexShape(2, order, pcoords, shape)
}

// TriangleShapeDerivatives fills blocked derivs[axis*N+dof] for a triangle
func (ip *Interpolation[F]) TriangleShapeDerivatives(order int, pcoords [3]float64, derivs []float64) (int, error) {
	return ip.simplexDerivs(2, order, pcoords, derivs)
}

// TetraShapeFunctions fills shape in tetrahedron DOF order and returns the DOF count
func (ip *Interpolation[F]) TetraShapeFunctions(order int, pcoords [3]float64, shape []float64) (int, error) {
	return ip.simplexShape(3, order, pcoords, shape)
}

// TetraShapeDerivatives fills blocked derivs[axis*N+dof] for a tetrahedron
func (ip *Interpolation[F]) TetraShapeDerivatives(order int, pcoords [3]float64, derivs []float64) (int, error) {
	return ip.simplexDerivs(3, order, pcoords, derivs)
}

// TetraEvaluateDerivative computes the physical gradient of a point field on
// a tetrahedron, fieldDerivs[3*c+j]
func (ip *Interpolation[F]) TetraEvaluateDerivative(order int, pcoords [3]float64, points []r3.Vec,
	fieldVals []float64, fieldDim int, fieldDerivs []float64) (err error) {
	np := NumberOfSimplexFunctions(3, order)
	if len(points) < np || len(fieldVals) < np*fieldDim {
		return fmt.Errorf("TetraEvaluateDerivative: %d points and %d values for order %d: %w",
			len(points), len(fieldVals), order, ErrPointCount)
	}
	derivs := ip.derivSpace(3 * np)
	if _, err = ip.TetraShapeDerivatives(order, pcoords, derivs); err != nil {
		return
	}
	return BlockedGradient(points[:np], derivs, fieldVals, fieldDim, fieldDerivs)
}

// BubbleTriangleShapeFunctions fills the seven functions of the quadratic
// triangle enriched with a centroid node. Only the Lagrange family has this
// node set.
func BubbleTriangleShapeFunctions(pcoords [3]float64, shape []float64) {
	n := bubbleTriangle(pcoords[0], pcoords[1])
	copy(shape[:topology.BubbleTrianglePoints], n[:])
}

// BubbleTriangleShapeDerivatives fills blocked derivs[axis*7+dof]
func BubbleTriangleShapeDerivatives(pcoords [3]float64, derivs []float64) {
	var (
		np     = topology.BubbleTrianglePoints
		nr, ns = bubbleTriangleDerivs(pcoords[0], pcoords[1])
	)
	copy(derivs[:np], nr[:])
	copy(derivs[np:2*np], ns[:])
}
