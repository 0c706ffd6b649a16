package cells

import (
	"fmt"

	"github.com/notargets/highorder/basis"
	"github.com/notargets/highorder/topology"
)

type Curve[F basis.Family] struct {
	cell[F]
}

type Quadrilateral[F basis.Family] struct {
	cell[F]
}

type Hexahedron[F basis.Family] struct {
	cell[F]
}

type (
	BezierCurve           = Curve[basis.Bezier]
	LagrangeCurve         = Curve[basis.Lagrange]
	BezierQuadrilateral   = Quadrilateral[basis.Bezier]
	LagrangeQuadrilateral = Quadrilateral[basis.Lagrange]
	BezierHexahedron      = Hexahedron[basis.Bezier]
	LagrangeHexahedron    = Hexahedron[basis.Lagrange]
)

func NewCurve[F basis.Family](order [3]int) (c *Curve[F], err error) {
	if err = topology.ValidateOrder(topology.Curve, order); err != nil {
		return
	}
	order[1], order[2] = 0, 0
	c = &Curve[F]{}
	c.init(c, topology.Curve, order, topology.NumberOfPoints(topology.Curve, order))
	return
}

func (c *Curve[F]) shapeFunctions(pcoords [3]float64, shape []float64) error {
	c.interp.Tensor1ShapeFunctions(c.order, pcoords, shape)
	return nil
}

func (c *Curve[F]) shapeDerivatives(pcoords [3]float64, derivs []float64) error {
	c.interp.Tensor1ShapeDerivatives(c.order, pcoords, derivs)
	return nil
}

func (c *Curve[F]) NumberOfEdges() int { return 0 }
func (c *Curve[F]) NumberOfFaces() int { return 0 }

func (c *Curve[F]) GetEdge(id int) (Cell, error) {
	return nil, invalidSubCell(c.shape, "edge", id, 0)
}

func (c *Curve[F]) GetFace(id int) (Cell, error) {
	return nil, invalidSubCell(c.shape, "face", id, 0)
}

func NewQuadrilateral[F basis.Family](order [3]int) (q *Quadrilateral[F], err error) {
	if err = topology.ValidateOrder(topology.Quadrilateral, order); err != nil {
		return
	}
	order[2] = 0
	q = &Quadrilateral[F]{}
	q.init(q, topology.Quadrilateral, order, topology.NumberOfPoints(topology.Quadrilateral, order))
	return
}

func (q *Quadrilateral[F]) shapeFunctions(pcoords [3]float64, shape []float64) error {
	q.interp.Tensor2ShapeFunctions(q.order, pcoords, shape)
	return nil
}

func (q *Quadrilateral[F]) shapeDerivatives(pcoords [3]float64, derivs []float64) error {
	q.interp.Tensor2ShapeDerivatives(q.order, pcoords, q.tmp)
	q.transposeDerivs(2, derivs)
	return nil
}

func (q *Quadrilateral[F]) NumberOfEdges() int { return len(topology.QuadEdgeCorners) }
func (q *Quadrilateral[F]) NumberOfFaces() int { return 0 }

func (q *Quadrilateral[F]) GetEdge(id int) (Cell, error) {
	if id < 0 || id >= len(topology.QuadEdgeCorners) {
		return nil, invalidSubCell(q.shape, "edge", id, len(topology.QuadEdgeCorners))
	}
	var (
		ec   = topology.QuadEdgeCorners[id]
		a, b = quadCorner(ec[0], q.order), quadCorner(ec[1], q.order)
	)
	return edgeOf[F](&q.cell, a, b, func(p [3]int) int {
		return topology.QuadPointIndexFromIJK(p[0], p[1], q.order)
	})
}

func (q *Quadrilateral[F]) GetFace(id int) (Cell, error) {
	return nil, invalidSubCell(q.shape, "face", id, 0)
}

func quadCorner(c int, order [3]int) [3]int {
	qc := topology.QuadCorners[c]
	return scale([3]int{qc[0], qc[1]}, order)
}

func NewHexahedron[F basis.Family](order [3]int) (h *Hexahedron[F], err error) {
	if err = topology.ValidateOrder(topology.Hexahedron, order); err != nil {
		return
	}
	h = &Hexahedron[F]{}
	h.init(h, topology.Hexahedron, order, topology.NumberOfPoints(topology.Hexahedron, order))
	return
}

func (h *Hexahedron[F]) shapeFunctions(pcoords [3]float64, shape []float64) error {
	h.interp.Tensor3ShapeFunctions(h.order, pcoords, shape)
	return nil
}

func (h *Hexahedron[F]) shapeDerivatives(pcoords [3]float64, derivs []float64) error {
	h.interp.Tensor3ShapeDerivatives(h.order, pcoords, h.tmp)
	h.transposeDerivs(3, derivs)
	return nil
}

func (h *Hexahedron[F]) fieldGradient(pcoords [3]float64, fieldVals []float64, fieldDim int, fieldDerivs []float64) error {
	return h.interp.Tensor3EvaluateDerivative(h.order, pcoords, h.points, fieldVals, fieldDim, fieldDerivs)
}

func (h *Hexahedron[F]) NumberOfEdges() int { return len(topology.HexEdgeCorners) }
func (h *Hexahedron[F]) NumberOfFaces() int { return len(topology.HexFaceCorners) }

func (h *Hexahedron[F]) hexIndex(p [3]int) int {
	return topology.HexPointIndexFromIJK(p[0], p[1], p[2], h.order)
}

func (h *Hexahedron[F]) GetEdge(id int) (Cell, error) {
	if id < 0 || id >= len(topology.HexEdgeCorners) {
		return nil, invalidSubCell(h.shape, "edge", id, len(topology.HexEdgeCorners))
	}
	ec := topology.HexEdgeCorners[id]
	return edgeOf[F](&h.cell,
		scale(topology.HexCorners[ec[0]], h.order), scale(topology.HexCorners[ec[1]], h.order), h.hexIndex)
}

// GetFace returns a quadrilateral whose corners are the face corners in
// table order
func (h *Hexahedron[F]) GetFace(id int) (Cell, error) {
	if id < 0 || id >= len(topology.HexFaceCorners) {
		return nil, invalidSubCell(h.shape, "face", id, len(topology.HexFaceCorners))
	}
	fc := topology.HexFaceCorners[id]
	return quadFaceOf[F](&h.cell,
		scale(topology.HexCorners[fc[0]], h.order),
		scale(topology.HexCorners[fc[1]], h.order),
		scale(topology.HexCorners[fc[3]], h.order),
		h.hexIndex)
}

// edgeOf builds the curve running from lattice corner a to b of a parent
func edgeOf[F basis.Family](parent *cell[F], a, b [3]int, index func([3]int) int) (Cell, error) {
	n := latticeSpan(a, b)
	edge, err := NewCurve[F]([3]int{n})
	if err != nil {
		return nil, err
	}
	idx := make([]int, edge.np)
	for s := 0; s <= n; s++ {
		idx[topology.CurvePointIndexFromIJK(s, edge.order)] = index(lerp(a, b, s, n))
	}
	return parent.extract(edge, idx)
}

// quadFaceOf builds the quadrilateral with corner 0 at lattice point c0, the
// first axis toward c1 and the second toward c3
func quadFaceOf[F basis.Family](parent *cell[F], c0, c1, c3 [3]int, index func([3]int) int) (Cell, error) {
	var (
		nu = latticeSpan(c0, c1)
		nv = latticeSpan(c0, c3)
	)
	face, err := NewQuadrilateral[F]([3]int{nu, nv})
	if err != nil {
		return nil, err
	}
	idx := make([]int, face.np)
	for v := 0; v <= nv; v++ {
		for u := 0; u <= nu; u++ {
			var (
				pu = lerp(c0, c1, u, nu)
				pv = lerp(c0, c3, v, nv)
				p  [3]int
			)
			for i := range p {
				p[i] = pu[i] + pv[i] - c0[i]
			}
			idx[topology.QuadPointIndexFromIJK(u, v, face.order)] = index(p)
		}
	}
	return parent.extract(face, idx)
}

// latticeSpan is the number of lattice steps between two corners, the largest
// coordinate difference
func latticeSpan(a, b [3]int) (n int) {
	for i := range a {
		d := b[i] - a[i]
		if d < 0 {
			d = -d
		}
		if d > n {
			n = d
		}
	}
	if n == 0 {
		panic(fmt.Errorf("degenerate lattice span between %v and %v", a, b))
	}
	return
}
