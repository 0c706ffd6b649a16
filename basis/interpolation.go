package basis

// Interpolation evaluates shape functions of one family on every cell shape.
// ShapeSpace and DerivSpace are scratch buffers reused across calls, so an
// Interpolation must not be shared between goroutines.
type Interpolation[F Family] struct {
	Family     F
	ShapeSpace []float64
	DerivSpace []float64
	axisShape  [3][]float64
	axisDeriv  [3][]float64
	triShape   []float64
	triDeriv   []float64
	perm       map[[2]int][]int
}

type (
	BezierInterpolation   = Interpolation[Bezier]
	LagrangeInterpolation = Interpolation[Lagrange]
)

func NewInterpolation[F Family]() *Interpolation[F] {
	return &Interpolation[F]{}
}

func NewBezierInterpolation() *BezierInterpolation {
	return NewInterpolation[Bezier]()
}

func NewLagrangeInterpolation() *LagrangeInterpolation {
	return NewInterpolation[Lagrange]()
}

// Reserve grows the scratch space so that cells with up to numberOfPoints
// points evaluate without allocating
func (ip *Interpolation[F]) Reserve(numberOfPoints int) {
	ip.ShapeSpace = grow(ip.ShapeSpace, numberOfPoints)
	ip.DerivSpace = grow(ip.DerivSpace, 3*numberOfPoints)
}

func (ip *Interpolation[F]) shapeSpace(n int) []float64 {
	ip.ShapeSpace = grow(ip.ShapeSpace, n)
	return ip.ShapeSpace[:n]
}

func (ip *Interpolation[F]) derivSpace(n int) []float64 {
	ip.DerivSpace = grow(ip.DerivSpace, n)
	return ip.DerivSpace[:n]
}

// axis returns the 1-D basis values along one axis at x
func (ip *Interpolation[F]) axis(a, order int, x float64) (shape []float64) {
	ip.axisShape[a] = grow(ip.axisShape[a], order+1)
	shape = ip.axisShape[a][:order+1]
	ip.Family.EvaluateShapeFunctions(order, x, shape)
	return
}

// axisGradient returns the 1-D basis values and derivatives along one axis
func (ip *Interpolation[F]) axisGradient(a, order int, x float64) (shape, deriv []float64) {
	ip.axisShape[a] = grow(ip.axisShape[a], order+1)
	ip.axisDeriv[a] = grow(ip.axisDeriv[a], order+1)
	shape, deriv = ip.axisShape[a][:order+1], ip.axisDeriv[a][:order+1]
	ip.Family.EvaluateShapeAndGradient(order, x, shape, deriv)
	return
}

func grow(buf []float64, n int) []float64 {
	if cap(buf) >= n {
		return buf[:cap(buf)]
	}
	return make([]float64, n)
}

// Evaluate interpolates a point field, out[c] = sum_i shape[i]*fieldVals[i*fieldDim+c]
func Evaluate(shape, fieldVals []float64, fieldDim int, out []float64) {
	for c := 0; c < fieldDim; c++ {
		out[c] = 0
	}
	for i, s := range shape {
		for c := 0; c < fieldDim; c++ {
			out[c] += s * fieldVals[i*fieldDim+c]
		}
	}
}
