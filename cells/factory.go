package cells

import (
	"fmt"
	"strings"

	"github.com/notargets/highorder/basis"
	"github.com/notargets/highorder/topology"
)

// New builds a cell of the named basis family ("bezier" or "lagrange").
// numberOfPoints may be zero for the full lattice; any other value must
// match a point count the shape supports.
func New(family string, shape topology.CellShape, order [3]int, numberOfPoints int) (c Cell, err error) {
	switch strings.ToLower(strings.TrimSpace(family)) {
	case basis.Bezier{}.Name():
		return newCell[basis.Bezier](shape, order, numberOfPoints)
	case basis.Lagrange{}.Name():
		return newCell[basis.Lagrange](shape, order, numberOfPoints)
	}
	return nil, fmt.Errorf("%q: %w", family, ErrUnknownFamily)
}

func newCell[F basis.Family](shape topology.CellShape, order [3]int, numberOfPoints int) (c Cell, err error) {
	if shape == topology.Wedge {
		var w *Wedge[F]
		if w, err = NewWedge[F](order, numberOfPoints); err != nil {
			return
		}
		return w, nil
	}
	switch shape {
	case topology.Curve:
		c, err = wrap[*Curve[F]](NewCurve[F](order))
	case topology.Quadrilateral:
		c, err = wrap[*Quadrilateral[F]](NewQuadrilateral[F](order))
	case topology.Hexahedron:
		c, err = wrap[*Hexahedron[F]](NewHexahedron[F](order))
	case topology.Triangle:
		if topology.IsBubbleTriangle(order, numberOfPoints) {
			c, err = wrap[*Triangle[F]](NewBubbleTriangle[F]())
			break
		}
		c, err = wrap[*Triangle[F]](NewTriangle[F](order))
	case topology.Tetrahedron:
		c, err = wrap[*Tetrahedron[F]](NewTetrahedron[F](order))
	default:
		return nil, fmt.Errorf("cell shape %v: %w", shape, basis.ErrUnsupportedConfiguration)
	}
	if err != nil {
		return nil, err
	}
	if numberOfPoints != 0 && numberOfPoints != c.NumberOfPoints() {
		return nil, fmt.Errorf("%s of order %v has %d points, not %d: %w",
			shape, c.Order(), c.NumberOfPoints(), numberOfPoints, basis.ErrUnsupportedConfiguration)
	}
	return
}

// wrap keeps a typed nil pointer out of the Cell interface
func wrap[C Cell](c C, err error) (Cell, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
