// Package cells provides higher-order mesh cells of every shape and basis
// family. A cell owns its points, point ids and rational weights, maps the
// basis onto its own DOF ordering and extracts lower dimensional edge and
// face cells.
package cells

import (
	"errors"
	"fmt"

	"github.com/notargets/highorder/basis"
	"github.com/notargets/highorder/pointdata"
	"github.com/notargets/highorder/topology"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	ErrInvalidSubCell = errors.New("invalid sub-cell id")
	ErrPointCount     = errors.New("wrong number of points for cell")
	ErrUnknownFamily  = errors.New("unknown basis family")
)

func tracer() tracing.Trace {
	return tracing.Select("highorder")
}

type Cell interface {
	Shape() topology.CellShape
	Family() string
	Order() [3]int
	NumberOfPoints() int
	Dimension() int
	Points() []r3.Vec
	SetPoints(points []r3.Vec) error
	PointIDs() []int
	SetPointIDs(ids []int) error
	// ParametricCoords is the reference location of every DOF, in DOF order
	ParametricCoords() [][3]float64
	// InterpolateFunctions fills weights[0:N] with the (rational when weighted) shape functions
	InterpolateFunctions(pcoords [3]float64, weights []float64) error
	// InterpolateDerivs fills derivs[axis*N+dof] for axis < Dimension()
	InterpolateDerivs(pcoords [3]float64, derivs []float64) error
	EvaluateLocation(pcoords [3]float64) (r3.Vec, error)
	Evaluate(pcoords [3]float64, fieldVals []float64, fieldDim int, out []float64) error
	// EvaluateDerivative fills fieldDerivs[3*c+j] with physical gradients
	EvaluateDerivative(pcoords [3]float64, fieldVals []float64, fieldDim int, fieldDerivs []float64) error
	SetRationalWeightsFromPointData(pd *pointdata.PointData) error
	SetRationalWeights(weights []float64) error
	RationalWeights() []float64
	NumberOfEdges() int
	GetEdge(id int) (Cell, error)
	NumberOfFaces() int
	GetFace(id int) (Cell, error)
}

// kernel evaluates the polynomial basis of one shape in the cell's DOF order.
// Derivatives are blocked, derivs[axis*N+dof].
type kernel interface {
	shapeFunctions(pcoords [3]float64, shape []float64) error
	shapeDerivatives(pcoords [3]float64, derivs []float64) error
}

// gradientKernel is a kernel with its own physical gradient path for
// polynomial (unweighted) fields
type gradientKernel interface {
	fieldGradient(pcoords [3]float64, fieldVals []float64, fieldDim int, fieldDerivs []float64) error
}

// cell holds the state shared by every shape
type cell[F basis.Family] struct {
	kernel  kernel
	shape   topology.CellShape
	order   [3]int
	np      int
	points  []r3.Vec
	ids     []int
	weights []float64
	interp  *basis.Interpolation[F]
	// scratch
	shapeBuf, derivBuf, tmp []float64
}

func (c *cell[F]) init(k kernel, shape topology.CellShape, order [3]int, np int) {
	c.kernel = k
	c.shape = shape
	c.order = order
	c.np = np
	c.interp = basis.NewInterpolation[F]()
	c.interp.Reserve(np)
	c.shapeBuf = make([]float64, np)
	c.derivBuf = make([]float64, 3*np)
	c.tmp = make([]float64, 3*np)
}

func (c *cell[F]) Shape() topology.CellShape { return c.shape }
func (c *cell[F]) Family() string            { return c.interp.Family.Name() }
func (c *cell[F]) Order() [3]int             { return c.order }
func (c *cell[F]) NumberOfPoints() int       { return c.np }
func (c *cell[F]) Dimension() int            { return c.shape.Dimension() }
func (c *cell[F]) Points() []r3.Vec          { return c.points }
func (c *cell[F]) PointIDs() []int           { return c.ids }
func (c *cell[F]) RationalWeights() []float64 {
	return c.weights
}

func (c *cell[F]) SetPoints(points []r3.Vec) error {
	if len(points) != c.np {
		return fmt.Errorf("%s: %d points for %d DOFs: %w", c.shape, len(points), c.np, ErrPointCount)
	}
	c.points = append(c.points[:0], points...)
	return nil
}

func (c *cell[F]) SetPointIDs(ids []int) error {
	if len(ids) != c.np {
		return fmt.Errorf("%s: %d point ids for %d DOFs: %w", c.shape, len(ids), c.np, ErrPointCount)
	}
	c.ids = append(c.ids[:0], ids...)
	return nil
}

// SetRationalWeights sets the weights directly, an empty slice disables them
func (c *cell[F]) SetRationalWeights(weights []float64) error {
	if len(weights) != 0 && len(weights) != c.np {
		return fmt.Errorf("%s: %d rational weights for %d DOFs: %w", c.shape, len(weights), c.np, ErrPointCount)
	}
	c.weights = append(c.weights[:0], weights...)
	return nil
}

// SetRationalWeightsFromPointData copies the active rational weight array of
// pd through the cell's point ids. The weights are cleared when the array is
// absent, and on error.
func (c *cell[F]) SetRationalWeightsFromPointData(pd *pointdata.PointData) error {
	c.weights = c.weights[:0]
	a, ok := pd.GetRationalWeights()
	if !ok {
		return nil
	}
	if len(c.ids) != c.np {
		return fmt.Errorf("%s: rational weights need point ids: %w", c.shape, ErrPointCount)
	}
	for _, id := range c.ids {
		if id < 0 || id >= a.NumberOfTuples() {
			c.weights = c.weights[:0]
			return fmt.Errorf("%s: point id %d outside rational weight array %q of %d tuples",
				c.shape, id, a.Name, a.NumberOfTuples())
		}
		c.weights = append(c.weights, a.Value(id))
	}
	return nil
}

func (c *cell[F]) ParametricCoords() [][3]float64 {
	switch c.shape {
	case topology.Triangle:
		if topology.IsBubbleTriangle(c.order, c.np) {
			return topology.BubbleTriangleParametricCoords()
		}
		return topology.TriangleParametricCoords(c.order[0])
	case topology.Tetrahedron:
		return topology.TetraParametricCoords(c.order[0])
	case topology.Wedge:
		return topology.WedgeParametricCoords(c.order, c.np)
	}
	return topology.TensorParametricCoords(c.shape, c.order)
}

func (c *cell[F]) InterpolateFunctions(pcoords [3]float64, weights []float64) (err error) {
	if err = c.kernel.shapeFunctions(pcoords, weights[:c.np]); err != nil {
		return
	}
	return basis.ApplyRationalWeights(c.weights, weights[:c.np])
}

func (c *cell[F]) InterpolateDerivs(pcoords [3]float64, derivs []float64) (err error) {
	dim := c.Dimension()
	if err = c.kernel.shapeDerivatives(pcoords, derivs[:dim*c.np]); err != nil {
		return
	}
	if len(c.weights) == 0 {
		return
	}
	if err = c.kernel.shapeFunctions(pcoords, c.shapeBuf); err != nil {
		return
	}
	return basis.ApplyRationalDerivatives(c.weights, c.shapeBuf, derivs[:dim*c.np], dim)
}

// EvaluateLocation maps a parametric coordinate to physical space
func (c *cell[F]) EvaluateLocation(pcoords [3]float64) (x r3.Vec, err error) {
	if len(c.points) != c.np {
		err = fmt.Errorf("%s: points not set: %w", c.shape, ErrPointCount)
		return
	}
	if err = c.InterpolateFunctions(pcoords, c.shapeBuf); err != nil {
		return
	}
	for i, p := range c.points {
		x = r3.Add(x, r3.Scale(c.shapeBuf[i], p))
	}
	return
}

func (c *cell[F]) Evaluate(pcoords [3]float64, fieldVals []float64, fieldDim int, out []float64) (err error) {
	if len(fieldVals) < c.np*fieldDim {
		return fmt.Errorf("%s: %d values for %d points of dimension %d: %w",
			c.shape, len(fieldVals), c.np, fieldDim, ErrPointCount)
	}
	if err = c.InterpolateFunctions(pcoords, c.shapeBuf); err != nil {
		return
	}
	basis.Evaluate(c.shapeBuf, fieldVals[:c.np*fieldDim], fieldDim, out)
	return
}

func (c *cell[F]) EvaluateDerivative(pcoords [3]float64, fieldVals []float64, fieldDim int, fieldDerivs []float64) (err error) {
	if c.Dimension() != 3 {
		return fmt.Errorf("%s has %d parametric axes: %w", c.shape, c.Dimension(), basis.ErrUnsupportedDimension)
	}
	if len(c.points) != c.np || len(fieldVals) < c.np*fieldDim {
		return fmt.Errorf("%s: %d points and %d values for %d DOFs: %w",
			c.shape, len(c.points), len(fieldVals), c.np, ErrPointCount)
	}
	if g, ok := c.kernel.(gradientKernel); ok && len(c.weights) == 0 {
		return g.fieldGradient(pcoords, fieldVals, fieldDim, fieldDerivs)
	}
	if err = c.InterpolateDerivs(pcoords, c.derivBuf); err != nil {
		return
	}
	return basis.BlockedGradient(c.points, c.derivBuf, fieldVals, fieldDim, fieldDerivs)
}

// transposeDerivs converts interleaved derivatives in c.tmp to blocked layout
func (c *cell[F]) transposeDerivs(dim int, derivs []float64) {
	for i := 0; i < c.np; i++ {
		for a := 0; a < dim; a++ {
			derivs[a*c.np+i] = c.tmp[dim*i+a]
		}
	}
}

// extract copies the points, ids and weights at parent DOFs idx into sub
func (c *cell[F]) extract(sub Cell, idx []int) (Cell, error) {
	var (
		points  []r3.Vec
		ids     []int
		weights []float64
	)
	for _, i := range idx {
		if len(c.points) == c.np {
			points = append(points, c.points[i])
		}
		if len(c.ids) == c.np {
			ids = append(ids, c.ids[i])
		}
		if len(c.weights) == c.np {
			weights = append(weights, c.weights[i])
		}
	}
	if points != nil {
		if err := sub.SetPoints(points); err != nil {
			return nil, err
		}
	}
	if ids != nil {
		if err := sub.SetPointIDs(ids); err != nil {
			return nil, err
		}
	}
	if err := sub.SetRationalWeights(weights); err != nil {
		return nil, err
	}
	return sub, nil
}

func invalidSubCell(shape topology.CellShape, kind string, id, count int) error {
	tracer().Errorf("%s %s id %d out of range [0,%d)", shape, kind, id, count)
	return fmt.Errorf("%s %s %d of %d: %w", shape, kind, id, count, ErrInvalidSubCell)
}

// lerp is the lattice point s/n of the way from a to b
func lerp(a, b [3]int, s, n int) (p [3]int) {
	for i := range p {
		p[i] = a[i] + (b[i]-a[i])*s/n
	}
	return
}

// scale multiplies unit corner coordinates by the per axis order
func scale(corner [3]int, order [3]int) (p [3]int) {
	for i := range p {
		p[i] = corner[i] * order[i]
	}
	return
}
