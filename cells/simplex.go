package cells

import (
	"fmt"

	"github.com/notargets/highorder/basis"
	"github.com/notargets/highorder/topology"
)

type Triangle[F basis.Family] struct {
	cell[F]
}

type Tetrahedron[F basis.Family] struct {
	cell[F]
}

type (
	BezierTriangle      = Triangle[basis.Bezier]
	LagrangeTriangle    = Triangle[basis.Lagrange]
	BezierTetrahedron   = Tetrahedron[basis.Bezier]
	LagrangeTetrahedron = Tetrahedron[basis.Lagrange]
)

// NewTriangle builds a triangle of degree order[0]
func NewTriangle[F basis.Family](order [3]int) (tri *Triangle[F], err error) {
	if err = topology.ValidateOrder(topology.Triangle, order); err != nil {
		return
	}
	order = [3]int{order[0]}
	tri = &Triangle[F]{}
	tri.init(tri, topology.Triangle, order, topology.NumberOfPoints(topology.Triangle, order))
	return
}

// NewBubbleTriangle builds the seven point quadratic triangle with a centroid
// node. It is interpolatory only, so the Bezier family is rejected.
func NewBubbleTriangle[F basis.Family]() (tri *Triangle[F], err error) {
	var f F
	if !f.Interpolatory() {
		return nil, fmt.Errorf("%s triangle with %d points: %w",
			f.Name(), topology.BubbleTrianglePoints, basis.ErrUnsupportedConfiguration)
	}
	tri = &Triangle[F]{}
	tri.init(tri, topology.Triangle, [3]int{2}, topology.BubbleTrianglePoints)
	return
}

func (tri *Triangle[F]) bubble() bool {
	return topology.IsBubbleTriangle(tri.order, tri.np)
}

func (tri *Triangle[F]) shapeFunctions(pcoords [3]float64, shape []float64) (err error) {
	if tri.bubble() {
		basis.BubbleTriangleShapeFunctions(pcoords, shape)
		return
	}
	_, err = tri.interp.TriangleShapeFunctions(tri.order[0], pcoords, shape)
	return
}

func (tri *Triangle[F]) shapeDerivatives(pcoords [3]float64, derivs []float64) (err error) {
	if tri.bubble() {
		basis.BubbleTriangleShapeDerivatives(pcoords, derivs)
		return
	}
	_, err = tri.interp.TriangleShapeDerivatives(tri.order[0], pcoords, derivs)
	return
}

func (tri *Triangle[F]) NumberOfEdges() int { return len(topology.TriangleEdges) }
func (tri *Triangle[F]) NumberOfFaces() int { return 0 }

// GetEdge returns the edge running from its first to its second vertex
func (tri *Triangle[F]) GetEdge(id int) (Cell, error) {
	if id < 0 || id >= len(topology.TriangleEdges) {
		return nil, invalidSubCell(tri.shape, "edge", id, len(topology.TriangleEdges))
	}
	var (
		n  = tri.order[0]
		ev = topology.TriangleEdges[id]
	)
	return simplexEdgeOf[F](&tri.cell, n, func(s int) int {
		var b [3]int
		b[ev[0]], b[ev[1]] = n-s, s
		return topology.TriangleIndex(b, n)
	})
}

func (tri *Triangle[F]) GetFace(id int) (Cell, error) {
	return nil, invalidSubCell(tri.shape, "face", id, 0)
}

// NewTetrahedron builds a tetrahedron of degree order[0]
func NewTetrahedron[F basis.Family](order [3]int) (tet *Tetrahedron[F], err error) {
	if err = topology.ValidateOrder(topology.Tetrahedron, order); err != nil {
		return
	}
	order = [3]int{order[0]}
	tet = &Tetrahedron[F]{}
	tet.init(tet, topology.Tetrahedron, order, topology.NumberOfPoints(topology.Tetrahedron, order))
	return
}

func (tet *Tetrahedron[F]) shapeFunctions(pcoords [3]float64, shape []float64) (err error) {
	_, err = tet.interp.TetraShapeFunctions(tet.order[0], pcoords, shape)
	return
}

func (tet *Tetrahedron[F]) shapeDerivatives(pcoords [3]float64, derivs []float64) (err error) {
	_, err = tet.interp.TetraShapeDerivatives(tet.order[0], pcoords, derivs)
	return
}

func (tet *Tetrahedron[F]) fieldGradient(pcoords [3]float64, fieldVals []float64, fieldDim int, fieldDerivs []float64) error {
	return tet.interp.TetraEvaluateDerivative(tet.order[0], pcoords, tet.points, fieldVals, fieldDim, fieldDerivs)
}

func (tet *Tetrahedron[F]) NumberOfEdges() int { return len(topology.TetraEdges) }
func (tet *Tetrahedron[F]) NumberOfFaces() int { return len(topology.TetraFaces) }

func (tet *Tetrahedron[F]) GetEdge(id int) (Cell, error) {
	if id < 0 || id >= len(topology.TetraEdges) {
		return nil, invalidSubCell(tet.shape, "edge", id, len(topology.TetraEdges))
	}
	var (
		n  = tet.order[0]
		ev = topology.TetraEdges[id]
	)
	return simplexEdgeOf[F](&tet.cell, n, func(s int) int {
		var b [4]int
		b[ev[0]], b[ev[1]] = n-s, s
		return topology.TetraIndex(b, n)
	})
}

// GetFace returns the triangle whose vertices are the face vertices in
// table order
func (tet *Tetrahedron[F]) GetFace(id int) (Cell, error) {
	if id < 0 || id >= len(topology.TetraFaces) {
		return nil, invalidSubCell(tet.shape, "face", id, len(topology.TetraFaces))
	}
	var (
		n  = tet.order[0]
		fv = topology.TetraFaces[id]
	)
	return triangleFaceOf[F](&tet.cell, n, func(b [3]int) int {
		var p [4]int
		for m, v := range fv {
			p[v] = b[m]
		}
		return topology.TetraIndex(p, n)
	})
}

// simplexEdgeOf builds a curve of order n, index maps the lattice step s from
// the first vertex to the parent DOF
func simplexEdgeOf[F basis.Family](parent *cell[F], n int, index func(s int) int) (Cell, error) {
	edge, err := NewCurve[F]([3]int{n})
	if err != nil {
		return nil, err
	}
	idx := make([]int, edge.np)
	for s := 0; s <= n; s++ {
		idx[topology.CurvePointIndexFromIJK(s, edge.order)] = index(s)
	}
	return parent.extract(edge, idx)
}

// triangleFaceOf builds a triangle of degree n, index maps a face barycentric
// lattice point to the parent DOF
func triangleFaceOf[F basis.Family](parent *cell[F], n int, index func(b [3]int) int) (Cell, error) {
	face, err := NewTriangle[F]([3]int{n})
	if err != nil {
		return nil, err
	}
	return parent.extract(face, triangleFaceIndex(face.np, n, index))
}

// bubbleTriangleFaceOf builds the seven point triangle face whose centroid is
// parent DOF centre
func bubbleTriangleFaceOf[F basis.Family](parent *cell[F], centre int, index func(b [3]int) int) (Cell, error) {
	face, err := NewBubbleTriangle[F]()
	if err != nil {
		return nil, err
	}
	idx := triangleFaceIndex(face.np, 2, index)
	idx[topology.BubbleTrianglePoints-1] = centre
	return parent.extract(face, idx)
}

func triangleFaceIndex(np, n int, index func(b [3]int) int) (idx []int) {
	idx = make([]int, np)
	for j := 0; j <= n; j++ {
		for i := 0; i+j <= n; i++ {
			b := [3]int{n - i - j, i, j}
			idx[topology.TriangleIndex(b, n)] = index(b)
		}
	}
	return
}
