package cells

import (
	"github.com/notargets/highorder/basis"
	"github.com/notargets/highorder/topology"
)

type Wedge[F basis.Family] struct {
	cell[F]
}

type (
	BezierWedge   = Wedge[basis.Bezier]
	LagrangeWedge = Wedge[basis.Lagrange]
)

// NewWedge builds a wedge. numberOfPoints selects the 21 point quadratic
// wedge; zero means the full lattice.
func NewWedge[F basis.Family](order [3]int, numberOfPoints int) (w *Wedge[F], err error) {
	if err = topology.ValidateOrder(topology.Wedge, order); err != nil {
		return
	}
	if numberOfPoints == 0 {
		numberOfPoints = topology.NumberOfPoints(topology.Wedge, order)
	}
	w = &Wedge[F]{}
	w.init(w, topology.Wedge, order, numberOfPoints)
	// reject point counts the basis cannot serve
	if err = w.interp.WedgeShapeFunctions(order, numberOfPoints, [3]float64{}, w.shapeBuf); err != nil {
		w = nil
	}
	return
}

func (w *Wedge[F]) shapeFunctions(pcoords [3]float64, shape []float64) error {
	return w.interp.WedgeShapeFunctions(w.order, w.np, pcoords, shape)
}

func (w *Wedge[F]) shapeDerivatives(pcoords [3]float64, derivs []float64) error {
	return w.interp.WedgeShapeDerivatives(w.order, w.np, pcoords, derivs)
}

func (w *Wedge[F]) fieldGradient(pcoords [3]float64, fieldVals []float64, fieldDim int, fieldDerivs []float64) error {
	return w.interp.WedgeEvaluateDerivative(w.order, w.np, pcoords, w.points, fieldVals, fieldDim, fieldDerivs)
}

func (w *Wedge[F]) NumberOfEdges() int { return len(topology.WedgeEdgeCorners) }

// NumberOfFaces counts the two triangles first, then the three quadrilaterals
func (w *Wedge[F]) NumberOfFaces() int {
	return len(topology.WedgeTriFaces) + len(topology.WedgeQuadFaces)
}

func (w *Wedge[F]) wedgeIndex(p [3]int) int {
	return topology.WedgePointIndexFromIJK(p[0], p[1], p[2], w.order, w.np)
}

func (w *Wedge[F]) corner(c int) [3]int {
	return scale(topology.WedgeCorners[c], w.order)
}

func (w *Wedge[F]) GetEdge(id int) (Cell, error) {
	if id < 0 || id >= len(topology.WedgeEdgeCorners) {
		return nil, invalidSubCell(w.shape, "edge", id, len(topology.WedgeEdgeCorners))
	}
	ec := topology.WedgeEdgeCorners[id]
	return edgeOf[F](&w.cell, w.corner(ec[0]), w.corner(ec[1]), w.wedgeIndex)
}

// GetFace returns faces 0 and 1 as triangles and 2 to 4 as quadrilaterals.
// The triangle faces of the 21 point wedge keep their centre node and come
// back as seven point bubble triangles.
func (w *Wedge[F]) GetFace(id int) (Cell, error) {
	nt := len(topology.WedgeTriFaces)
	if id < 0 || id >= w.NumberOfFaces() {
		return nil, invalidSubCell(w.shape, "face", id, w.NumberOfFaces())
	}
	if id < nt {
		var (
			fv = topology.WedgeTriFaces[id]
			n  = w.order[0]
			k  = topology.WedgeCorners[fv[0]][2] * w.order[2]
		)
		index := func(b [3]int) int {
			var p [3]int
			for m, v := range fv {
				p[0] += b[m] * topology.WedgeCorners[v][0]
				p[1] += b[m] * topology.WedgeCorners[v][1]
			}
			p[2] = k
			return w.wedgeIndex(p)
		}
		if topology.IsWedge21(w.order, w.np) {
			return bubbleTriangleFaceOf[F](&w.cell, topology.WedgeBubbleIndex(k, w.order, w.np), index)
		}
		return triangleFaceOf[F](&w.cell, n, index)
	}
	fc := topology.WedgeQuadFaces[id-nt]
	return quadFaceOf[F](&w.cell, w.corner(fc[0]), w.corner(fc[1]), w.corner(fc[3]), w.wedgeIndex)
}
