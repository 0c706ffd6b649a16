package basis

import (
	"fmt"

	"github.com/notargets/highorder/topology"
	"gonum.org/v1/gonum/spatial/r3"
)

func (ip *Interpolation[F]) checkWedge(order [3]int, numberOfPoints int) error {
	if order[0] != order[1] {
		tracer().Errorf("wedge orders differ in r and s: %v", order)
		return fmt.Errorf("wedge order %v: %w", order, ErrOrderMismatch)
	}
	switch {
	case topology.IsWedge21(order, numberOfPoints):
		if !ip.Family.Interpolatory() {
			return fmt.Errorf("%s wedge with %d points: %w", ip.Family.Name(), numberOfPoints, ErrUnsupportedConfiguration)
		}
	case numberOfPoints != topology.NumberOfPoints(topology.Wedge, order):
		return fmt.Errorf("%s wedge of order %v with %d points: %w",
			ip.Family.Name(), order, numberOfPoints, ErrUnsupportedConfiguration)
	}
	return nil
}

// WedgeShapeFunctions fills shape for a wedge. The 21 point quadratic wedge
// uses closed form polynomials; every other wedge is the product of a
// triangle basis in (r,s) and a line basis in t.
func (ip *Interpolation[F]) WedgeShapeFunctions(order [3]int, numberOfPoints int, pcoords [3]float64, shape []float64) (err error) {
	if err = ip.checkWedge(order, numberOfPoints); err != nil {
		return
	}
	if topology.IsWedge21(order, numberOfPoints) {
		Wedge21ShapeFunctions(pcoords, shape)
		return
	}
	return ip.wedgeGeneric(order, numberOfPoints, pcoords, shape)
}

// WedgeShapeDerivatives fills blocked derivs[axis*N+dof] for a wedge
func (ip *Interpolation[F]) WedgeShapeDerivatives(order [3]int, numberOfPoints int, pcoords [3]float64, derivs []float64) (err error) {
	if err = ip.checkWedge(order, numberOfPoints); err != nil {
		return
	}
	if topology.IsWedge21(order, numberOfPoints) {
		Wedge21ShapeDerivatives(pcoords, derivs)
		return
	}
	return ip.wedgeGenericDerivs(order, numberOfPoints, pcoords, derivs)
}

// WedgeShapeFunctionsGeneric always takes the tensor product path, adding the
// face and body bubbles when the wedge has 21 points
func (ip *Interpolation[F]) WedgeShapeFunctionsGeneric(order [3]int, numberOfPoints int, pcoords [3]float64, shape []float64) (err error) {
	if err = ip.checkWedge(order, numberOfPoints); err != nil {
		return
	}
	return ip.wedgeGeneric(order, numberOfPoints, pcoords, shape)
}

// WedgeShapeDerivativesGeneric is the tensor product path for derivatives
func (ip *Interpolation[F]) WedgeShapeDerivativesGeneric(order [3]int, numberOfPoints int, pcoords [3]float64, derivs []float64) (err error) {
	if err = ip.checkWedge(order, numberOfPoints); err != nil {
		return
	}
	return ip.wedgeGenericDerivs(order, numberOfPoints, pcoords, derivs)
}

// bubble is the cubic 27 r s (1-r-s) that vanishes on the triangle edges
func bubble(r, s float64) (b, dbr, dbs float64) {
	u := 1 - r - s
	b = 27 * r * s * u
	dbr = 27 * s * (u - r)
	dbs = 27 * r * (u - s)
	return
}

// bubbleCorrection is the weight of the bubble subtracted from a quadratic
// triangle node so the enriched basis stays nodal: +1/9 at the vertices and
// -4/9 at the edge midpoints
func bubbleCorrection(c [3]int) float64 {
	if c[0] == 2 || c[1] == 2 || 2-c[0]-c[1] == 2 {
		return 1. / 9
	}
	return -4. / 9
}

func (ip *Interpolation[F]) triangleFlat(deg int, pcoords [3]float64) (tri []float64, err error) {
	nt := NumberOfSimplexFunctions(2, deg)
	ip.triShape = grow(ip.triShape, nt)
	tri = ip.triShape[:nt]
	err = ip.Family.SimplexShapeFunctions(2, deg, [3]float64{pcoords[0], pcoords[1]}, tri)
	return
}

func (ip *Interpolation[F]) wedgeGeneric(order [3]int, numberOfPoints int, pcoords [3]float64, shape []float64) (err error) {
	var (
		np   = topology.WedgeNumberOfPoints(order, numberOfPoints)
		is21 = topology.IsWedge21(order, numberOfPoints)
		tri  []float64
		b    float64
	)
	if tri, err = ip.triangleFlat(order[0], pcoords); err != nil {
		return
	}
	line := ip.axis(2, order[2], pcoords[2])
	if is21 {
		b, _, _ = bubble(pcoords[0], pcoords[1])
	}
	for i := 0; i < np; i++ {
		shape[i] = 0
	}
	for k := 0; k <= order[2]; k++ {
		for fn, tv := range tri {
			c := unflattenSimplex(2, order[0], fn)
			idx := topology.WedgePointIndexFromIJK(c[0], c[1], k, order, numberOfPoints)
			if idx < 0 {
				continue
			}
			if is21 {
				tv += bubbleCorrection(c) * b
			}
			shape[idx] = tv * line[k]
		}
		if idx := topology.WedgeBubbleIndex(k, order, numberOfPoints); idx >= 0 {
			shape[idx] = b * line[k]
		}
	}
	return
}

func (ip *Interpolation[F]) wedgeGenericDerivs(order [3]int, numberOfPoints int, pcoords [3]float64, derivs []float64) (err error) {
	var (
		np          = topology.WedgeNumberOfPoints(order, numberOfPoints)
		is21        = topology.IsWedge21(order, numberOfPoints)
		nt          = NumberOfSimplexFunctions(2, order[0])
		pc2         = [3]float64{pcoords[0], pcoords[1]}
		line, dline = ip.axisGradient(2, order[2], pcoords[2])
	)
	var (
		tri, triDr, triDs []float64
		b, dbr, dbs       float64
		dr, ds, value     float64
	)
	if tri, err = ip.triangleFlat(order[0], pcoords); err != nil {
		return
	}
	ip.triDeriv = grow(ip.triDeriv, 2*nt)
	td := ip.triDeriv[:2*nt]
	if err = ip.Family.SimplexShapeDerivatives(2, order[0], pc2, td); err != nil {
		return
	}
	triDr, triDs = td[:nt], td[nt:]
	if is21 {
		b, dbr, dbs = bubble(pcoords[0], pcoords[1])
	}
	for i := 0; i < 3*np; i++ {
		derivs[i] = 0
	}
	for k := 0; k <= order[2]; k++ {
		for fn := range tri {
			c := unflattenSimplex(2, order[0], fn)
			idx := topology.WedgePointIndexFromIJK(c[0], c[1], k, order, numberOfPoints)
			if idx < 0 {
				continue
			}
			value, dr, ds = tri[fn], triDr[fn], triDs[fn]
			if is21 {
				w := bubbleCorrection(c)
				value += w * b
				dr += w * dbr
				ds += w * dbs
			}
			derivs[idx] = dr * line[k]
			derivs[np+idx] = ds * line[k]
			derivs[2*np+idx] = value * dline[k]
		}
		if idx := topology.WedgeBubbleIndex(k, order, numberOfPoints); idx >= 0 {
			derivs[idx] = dbr * line[k]
			derivs[np+idx] = dbs * line[k]
			derivs[2*np+idx] = b * dline[k]
		}
	}
	return
}

// bubbleTriangle returns the seven enriched quadratic triangle functions:
// three vertices, three edge midpoints (01, 12, 20) and the centroid
func bubbleTriangle(r, s float64) (n [7]float64) {
	var (
		u = 1 - r - s
		b = 27 * r * s * u
	)
	n[0] = u*(2*u-1) + b/9
	n[1] = r*(2*r-1) + b/9
	n[2] = s*(2*s-1) + b/9
	n[3] = 4*u*r - 4*b/9
	n[4] = 4*r*s - 4*b/9
	n[5] = 4*s*u - 4*b/9
	n[6] = b
	return
}

func bubbleTriangleDerivs(r, s float64) (nr, ns [7]float64) {
	var (
		u           = 1 - r - s
		_, dbr, dbs = bubble(r, s)
	)
	nr[0], ns[0] = 1-4*u+dbr/9, 1-4*u+dbs/9
	nr[1], ns[1] = 4*r-1+dbr/9, dbs/9
	nr[2], ns[2] = dbr/9, 4*s-1+dbs/9
	nr[3], ns[3] = 4*(u-r)-4*dbr/9, -4*r-4*dbs/9
	nr[4], ns[4] = 4*s-4*dbr/9, 4*r-4*dbs/9
	nr[5], ns[5] = -4*s-4*dbr/9, 4*(u-s)-4*dbs/9
	nr[6], ns[6] = dbr, dbs
	return
}

// wedge21Line is the quadratic line basis for the bottom, top and middle layers
func wedge21Line(t float64) [3]float64 {
	return [3]float64{(1 - t) * (1 - 2*t), t * (2*t - 1), 4 * t * (1 - t)}
}

func wedge21LineDerivs(t float64) [3]float64 {
	return [3]float64{4*t - 3, 4*t - 1, 4 - 8*t}
}

// wedge21Nodes pairs each of the 21 DOFs with its triangle and line function
var wedge21Nodes = [21][2]int{
	{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}, // corners
	{3, 0}, {4, 0}, {5, 0}, {3, 1}, {4, 1}, {5, 1}, // triangle edges
	{0, 2}, {1, 2}, {2, 2}, // vertical edges
	{6, 0}, {6, 1}, // triangle face centres
	{3, 2}, {4, 2}, {5, 2}, // quad face centres
	{6, 2}, // body
}

// Wedge21ShapeFunctions fills the 21 shape functions of the enriched
// quadratic wedge
func Wedge21ShapeFunctions(pcoords [3]float64, shape []float64) {
	var (
		tri  = bubbleTriangle(pcoords[0], pcoords[1])
		line = wedge21Line(pcoords[2])
	)
	for i, nd := range wedge21Nodes {
		shape[i] = tri[nd[0]] * line[nd[1]]
	}
}

// Wedge21ShapeDerivatives fills blocked derivs[axis*21+dof]
func Wedge21ShapeDerivatives(pcoords [3]float64, derivs []float64) {
	var (
		tri    = bubbleTriangle(pcoords[0], pcoords[1])
		nr, ns = bubbleTriangleDerivs(pcoords[0], pcoords[1])
		line   = wedge21Line(pcoords[2])
		dline  = wedge21LineDerivs(pcoords[2])
		np     = topology.Wedge21Points
	)
	for i, nd := range wedge21Nodes {
		derivs[i] = nr[nd[0]] * line[nd[1]]
		derivs[np+i] = ns[nd[0]] * line[nd[1]]
		derivs[2*np+i] = tri[nd[0]] * dline[nd[1]]
	}
}

// WedgeEvaluate interpolates a point field on a wedge
func (ip *Interpolation[F]) WedgeEvaluate(order [3]int, numberOfPoints int, pcoords [3]float64,
	fieldVals []float64, fieldDim int, out []float64) (err error) {
	np := topology.WedgeNumberOfPoints(order, numberOfPoints)
	if len(fieldVals) < np*fieldDim {
		return fmt.Errorf("WedgeEvaluate: %d values for %d points: %w", len(fieldVals), np, ErrPointCount)
	}
	shape := ip.shapeSpace(np)
	if err = ip.WedgeShapeFunctions(order, numberOfPoints, pcoords, shape); err != nil {
		return
	}
	Evaluate(shape, fieldVals[:np*fieldDim], fieldDim, out)
	return
}

// WedgeEvaluateDerivative computes the physical gradient of a point field on a
// wedge, fieldDerivs[3*c+j]
func (ip *Interpolation[F]) WedgeEvaluateDerivative(order [3]int, numberOfPoints int, pcoords [3]float64,
	points []r3.Vec, fieldVals []float64, fieldDim int, fieldDerivs []float64) (err error) {
	np := topology.WedgeNumberOfPoints(order, numberOfPoints)
	if len(points) < np || len(fieldVals) < np*fieldDim {
		return fmt.Errorf("WedgeEvaluateDerivative: %d points and %d values for %d points: %w",
			len(points), len(fieldVals), np, ErrPointCount)
	}
	derivs := ip.derivSpace(3 * np)
	if err = ip.WedgeShapeDerivatives(order, numberOfPoints, pcoords, derivs); err != nil {
		return
	}
	return BlockedGradient(points[:np], derivs, fieldVals, fieldDim, fieldDerivs)
}
