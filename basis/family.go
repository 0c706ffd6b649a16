package basis

// Family is a polynomial basis usable on every cell shape. Bezier and
// Lagrange are the two implementations. Interpolation is generic over
// Family so the cell assemblers are written once.
type Family interface {
	// Name is the lower case family label used in configuration files
	Name() string
	// Interpolatory is true when the basis is nodal at the lattice points
	Interpolatory() bool
	// EvaluateShapeFunctions fills shape[0:order+1] with the 1-D basis at x in [0,1]
	EvaluateShapeFunctions(order int, x float64, shape []float64)
	// EvaluateShapeAndGradient fills the 1-D basis and its derivative at x
	EvaluateShapeAndGradient(order int, x float64, shape, deriv []float64)
	// SimplexShapeFunctions fills the basis on a triangle (dim=2) or
	// tetrahedron (dim=3) in flat simplex order
	SimplexShapeFunctions(dim, deg int, pcoords [3]float64, shape []float64) error
	// SimplexShapeDerivatives fills the parametric derivatives in blocked
	// layout, derivs[axis*N+i]
	SimplexShapeDerivatives(dim, deg int, pcoords [3]float64, derivs []float64) error
}

// Bezier is the Bernstein polynomial family
type Bezier struct{}

func (Bezier) Name() string        { return "bezier" }
func (Bezier) Interpolatory() bool { return false }

func (Bezier) EvaluateShapeFunctions(order int, x float64, shape []float64) {
	BernsteinShapeFunctions(order, x, shape)
}

func (Bezier) EvaluateShapeAndGradient(order int, x float64, shape, deriv []float64) {
	BernsteinShapeAndGradient(order, x, shape, deriv)
}

func (Bezier) SimplexShapeFunctions(dim, deg int, pcoords [3]float64, shape []float64) error {
	return DeCasteljauSimplex(dim, deg, pcoords, shape)
}

func (Bezier) SimplexShapeDerivatives(dim, deg int, pcoords [3]float64, derivs []float64) error {
	return DeCasteljauSimplexDeriv(dim, deg, pcoords, derivs)
}

// Lagrange is the equispaced nodal family
type Lagrange struct{}

func (Lagrange) Name() string        { return "lagrange" }
func (Lagrange) Interpolatory() bool { return true }

func (Lagrange) EvaluateShapeFunctions(order int, x float64, shape []float64) {
	LagrangeShapeFunctions(order, x, shape)
}

func (Lagrange) EvaluateShapeAndGradient(order int, x float64, shape, deriv []float64) {
	LagrangeShapeAndGradient(order, x, shape, deriv)
}

func (Lagrange) SimplexShapeFunctions(dim, deg int, pcoords [3]float64, shape []float64) error {
	return LagrangeSimplex(dim, deg, pcoords, shape)
}

func (Lagrange) SimplexShapeDerivatives(dim, deg int, pcoords [3]float64, derivs []float64) error {
	return LagrangeSimplexDeriv(dim, deg, pcoords, derivs)
}
