package basis

import "errors"

var (
	// ErrUnsupportedDimension indicates a simplex dimension other than 2 or 3,
	// or a physical operation requested on a cell with fewer than 3 axes.
	ErrUnsupportedDimension = errors.New("unsupported dimension")
	// ErrOrderMismatch indicates a wedge whose r and s orders differ.
	ErrOrderMismatch = errors.New("wedge r and s orders differ")
	// ErrUnsupportedConfiguration indicates a point count with no known basis.
	ErrUnsupportedConfiguration = errors.New("unsupported cell configuration")
	// ErrSingularJacobian indicates the geometric Jacobian could not be inverted.
	ErrSingularJacobian = errors.New("singular jacobian")
	// ErrDegenerateWeights indicates a rational denominator that is zero or not finite.
	ErrDegenerateWeights = errors.New("degenerate rational weights")
	// ErrPointCount indicates fewer points or values than the order requires.
	ErrPointCount = errors.New("point count does not match order")
)
