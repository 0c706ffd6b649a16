package basis

import (
	"errors"
	"fmt"

	"go.uber.org/atomic"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// MaxJacobianWarnings bounds how many singular Jacobian messages are traced
// per process, across all goroutines.
const MaxJacobianWarnings = 6

var jacobianWarnings = atomic.NewInt32(0)

// ResetJacobianWarnings re-arms the singular Jacobian message limit
func ResetJacobianWarnings() {
	jacobianWarnings.Store(0)
}

// JacobianWarnings returns the number of singular Jacobians seen since the
// last reset, including those not traced
func JacobianWarnings() int {
	return int(jacobianWarnings.Load())
}

func warnSingular(jac [3][3]float64, err error) {
	n := jacobianWarnings.Inc()
	if n > MaxJacobianWarnings {
		return
	}
	var cond mat.Condition
	if errors.As(err, &cond) {
		tracer().Errorf("jacobian %v is ill conditioned, condition number %g", jac, float64(cond))
	} else {
		tracer().Errorf("jacobian %v could not be inverted: %v", jac, err)
	}
	if n == MaxJacobianWarnings {
		tracer().Infof("further singular jacobian messages suppressed")
	}
}

// Jacobian assembles J[a][i] = sum_dof x_dof[i] * dN_dof/dxi_a from
// interleaved derivs[3*dof+a]
func Jacobian(points []r3.Vec, derivs []float64) (jac [3][3]float64) {
	for j, p := range points {
		for a := 0; a < 3; a++ {
			d := derivs[3*j+a]
			jac[a][0] += p.X * d
			jac[a][1] += p.Y * d
			jac[a][2] += p.Z * d
		}
	}
	return
}

// JacobianBlocked assembles the Jacobian from blocked derivs[a*N+dof], the
// layout of the wedge and simplex evaluators
func JacobianBlocked(points []r3.Vec, derivs []float64) (jac [3][3]float64) {
	np := len(points)
	for j, p := range points {
		for a := 0; a < 3; a++ {
			d := derivs[a*np+j]
			jac[a][0] += p.X * d
			jac[a][1] += p.Y * d
			jac[a][2] += p.Z * d
		}
	}
	return
}

// JacobianInverse inverts the Jacobian built from interleaved derivatives.
// inverse is unchanged on error.
func JacobianInverse(points []r3.Vec, derivs []float64, inverse *[3][3]float64) error {
	return invert3(Jacobian(points, derivs), inverse)
}

// JacobianInverseWedge inverts the Jacobian built from blocked derivatives
func JacobianInverseWedge(points []r3.Vec, derivs []float64, inverse *[3][3]float64) error {
	return invert3(JacobianBlocked(points, derivs), inverse)
}

func invert3(jac [3][3]float64, inverse *[3][3]float64) (err error) {
	var (
		a = mat.NewDense(3, 3, []float64{
			jac[0][0], jac[0][1], jac[0][2],
			jac[1][0], jac[1][1], jac[1][2],
			jac[2][0], jac[2][1], jac[2][2],
		})
		inv mat.Dense
	)
	if err = inv.Inverse(a); err != nil {
		warnSingular(jac, err)
		return fmt.Errorf("%w: %v", ErrSingularJacobian, err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inverse[i][j] = inv.At(i, j)
		}
	}
	return
}

// physicalGradient maps a parametric gradient through the inverse Jacobian
func physicalGradient(jI *[3][3]float64, sum [3]float64, out []float64) {
	for j := 0; j < 3; j++ {
		out[j] = jI[j][0]*sum[0] + jI[j][1]*sum[1] + jI[j][2]*sum[2]
	}
}

// BlockedGradient computes the physical gradient of a point field from
// blocked shape derivatives, fieldDerivs[3*c+j]. fieldDerivs is unchanged
// when the Jacobian is singular.
func BlockedGradient(points []r3.Vec, derivs, fieldVals []float64, fieldDim int, fieldDerivs []float64) (err error) {
	var (
		np = len(points)
		jI [3][3]float64
	)
	if err = JacobianInverseWedge(points, derivs, &jI); err != nil {
		return
	}
	for c := 0; c < fieldDim; c++ {
		var sum [3]float64
		for i := 0; i < np; i++ {
			f := fieldVals[i*fieldDim+c]
			for a := 0; a < 3; a++ {
				sum[a] += derivs[a*np+i] * f
			}
		}
		physicalGradient(&jI, sum, fieldDerivs[3*c:3*c+3])
	}
	return
}
