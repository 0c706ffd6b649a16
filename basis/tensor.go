package basis

import (
	"fmt"

	"github.com/notargets/highorder/topology"
	"gonum.org/v1/gonum/spatial/r3"
)

// The tensor assemblers walk the lattice in DOF order: corners, edges
// (parameter increasing from the first edge corner), faces and then the
// interior with i fastest. The visit functions are shared by the value and
// derivative assemblers.

func visitCurve(order [3]int, fn func(n, i int)) {
	var n int
	for _, c := range topology.CurveCorners {
		fn(n, c[0]*order[0])
		n++
	}
	for i := 1; i < order[0]; i++ {
		fn(n, i)
		n++
	}
}

func visitQuad(order [3]int, fn func(n, i, j int)) {
	var n int
	for _, c := range topology.QuadCorners {
		fn(n, c[0]*order[0], c[1]*order[1])
		n++
	}
	for _, e := range topology.QuadEdgeCorners {
		var (
			a    = topology.QuadCorners[e[0]]
			axis = topology.CornerAxis(a[:], topology.QuadCorners[e[1]][:])
			ij   = [2]int{a[0] * order[0], a[1] * order[1]}
		)
		for s := 1; s < order[axis]; s++ {
			ij[axis] = s
			fn(n, ij[0], ij[1])
			n++
		}
	}
	for j := 1; j < order[1]; j++ {
		for i := 1; i < order[0]; i++ {
			fn(n, i, j)
			n++
		}
	}
}

func visitHex(order [3]int, fn func(n, i, j, k int)) {
	var n int
	for _, c := range topology.HexCorners {
		fn(n, c[0]*order[0], c[1]*order[1], c[2]*order[2])
		n++
	}
	for _, e := range topology.HexEdgeCorners {
		var (
			a    = topology.HexCorners[e[0]]
			axis = topology.CornerAxis(a[:], topology.HexCorners[e[1]][:])
			ijk  = [3]int{a[0] * order[0], a[1] * order[1], a[2] * order[2]}
		)
		for s := 1; s < order[axis]; s++ {
			ijk[axis] = s
			fn(n, ijk[0], ijk[1], ijk[2])
			n++
		}
	}
	for f, axes := range topology.HexFaceAxes {
		var (
			normal, fast, slow = axes[0], axes[1], axes[2]
			ijk                [3]int
		)
		ijk[normal] = topology.HexFaceSide[f] * order[normal]
		for b := 1; b < order[slow]; b++ {
			for a := 1; a < order[fast]; a++ {
				ijk[fast], ijk[slow] = a, b
				fn(n, ijk[0], ijk[1], ijk[2])
				n++
			}
		}
	}
	for k := 1; k < order[2]; k++ {
		for j := 1; j < order[1]; j++ {
			for i := 1; i < order[0]; i++ {
				fn(n, i, j, k)
				n++
			}
		}
	}
}

// Tensor1ShapeFunctions fills shape for a curve and returns the DOF count
func (ip *Interpolation[F]) Tensor1ShapeFunctions(order [3]int, pcoords [3]float64, shape []float64) (n int) {
	l0 := ip.axis(0, order[0], pcoords[0])
	visitCurve(order, func(dof, i int) {
		shape[dof] = l0[i]
		n++
	})
	return
}

// Tensor1ShapeDerivatives fills derivs[dof] for a curve and returns the DOF count
func (ip *Interpolation[F]) Tensor1ShapeDerivatives(order [3]int, pcoords [3]float64, derivs []float64) (n int) {
	_, d0 := ip.axisGradient(0, order[0], pcoords[0])
	visitCurve(order, func(dof, i int) {
		derivs[dof] = d0[i]
		n++
	})
	return
}

// Tensor2ShapeFunctions fills shape for a quadrilateral and returns the DOF count
func (ip *Interpolation[F]) Tensor2ShapeFunctions(order [3]int, pcoords [3]float64, shape []float64) (n int) {
	var (
		l0 = ip.axis(0, order[0], pcoords[0])
		l1 = ip.axis(1, order[1], pcoords[1])
	)
	visitQuad(order, func(dof, i, j int) {
		shape[dof] = l0[i] * l1[j]
		n++
	})
	return
}

// Tensor2ShapeDerivatives fills interleaved derivs[2*dof+axis] for a
// quadrilateral and returns the DOF count
func (ip *Interpolation[F]) Tensor2ShapeDerivatives(order [3]int, pcoords [3]float64, derivs []float64) (n int) {
	var (
		l0, d0 = ip.axisGradient(0, order[0], pcoords[0])
		l1, d1 = ip.axisGradient(1, order[1], pcoords[1])
	)
	visitQuad(order, func(dof, i, j int) {
		derivs[2*dof] = d0[i] * l1[j]
		derivs[2*dof+1] = l0[i] * d1[j]
		n++
	})
	return
}

// Tensor3ShapeFunctions fills shape for a hexahedron and returns the DOF count
func (ip *Interpolation[F]) Tensor3ShapeFunctions(order [3]int, pcoords [3]float64, shape []float64) (n int) {
	var (
		l0 = ip.axis(0, order[0], pcoords[0])
		l1 = ip.axis(1, order[1], pcoords[1])
		l2 = ip.axis(2, order[2], pcoords[2])
	)
	visitHex(order, func(dof, i, j, k int) {
		shape[dof] = l0[i] * l1[j] * l2[k]
		n++
	})
	return
}

// Tensor3ShapeDerivatives fills interleaved derivs[3*dof+axis] for a
// hexahedron and returns the DOF count
func (ip *Interpolation[F]) Tensor3ShapeDerivatives(order [3]int, pcoords [3]float64, derivs []float64) (n int) {
	var (
		l0, d0 = ip.axisGradient(0, order[0], pcoords[0])
		l1, d1 = ip.axisGradient(1, order[1], pcoords[1])
		l2, d2 = ip.axisGradient(2, order[2], pcoords[2])
	)
	visitHex(order, func(dof, i, j, k int) {
		derivs[3*dof] = d0[i] * l1[j] * l2[k]
		derivs[3*dof+1] = l0[i] * d1[j] * l2[k]
		derivs[3*dof+2] = l0[i] * l1[j] * d2[k]
		n++
	})
	return
}

// Tensor3Evaluate interpolates a point field on a hexahedron
func (ip *Interpolation[F]) Tensor3Evaluate(order [3]int, pcoords [3]float64, fieldVals []float64, fieldDim int, out []float64) (err error) {
	np := topology.NumberOfPoints(topology.Hexahedron, order)
	if len(fieldVals) < np*fieldDim {
		return fmt.Errorf("Tensor3Evaluate: %d values for %d points of dimension %d: %w",
			len(fieldVals), np, fieldDim, ErrPointCount)
	}
	shape := ip.shapeSpace(np)
	ip.Tensor3ShapeFunctions(order, pcoords, shape)
	Evaluate(shape, fieldVals[:np*fieldDim], fieldDim, out)
	return
}

// Tensor3EvaluateDerivative computes the physical gradient of a point field
// on a hexahedron, fieldDerivs[3*c+j] = d field_c / d x_j. fieldDerivs is
// left untouched when the Jacobian is singular.
func (ip *Interpolation[F]) Tensor3EvaluateDerivative(order [3]int, pcoords [3]float64, points []r3.Vec,
	fieldVals []float64, fieldDim int, fieldDerivs []float64) (err error) {
	np := topology.NumberOfPoints(topology.Hexahedron, order)
	if len(points) < np || len(fieldVals) < np*fieldDim {
		return fmt.Errorf("Tensor3EvaluateDerivative: %d points and %d values for order %v: %w",
			len(points), len(fieldVals), order, ErrPointCount)
	}
	derivs := ip.derivSpace(3 * np)
	ip.Tensor3ShapeDerivatives(order, pcoords, derivs)
	var jI [3][3]float64
	if err = JacobianInverse(points[:np], derivs, &jI); err != nil {
		return
	}
	for c := 0; c < fieldDim; c++ {
		var sum [3]float64
		for i := 0; i < np; i++ {
			f := fieldVals[i*fieldDim+c]
			sum[0] += derivs[3*i] * f
			sum[1] += derivs[3*i+1] * f
			sum[2] += derivs[3*i+2] * f
		}
		physicalGradient(&jI, sum, fieldDerivs[3*c:3*c+3])
	}
	return
}
