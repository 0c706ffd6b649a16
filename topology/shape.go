// Package topology holds the fixed lookup tables that define how the degrees of
// freedom of each higher-order cell shape are numbered: corners first, then
// edge-interior points edge by edge, then face-interior points face by face,
// then body-interior points.
//
// Every table here is part of the contract between the interpolation engine
// and the cells that own the points. Changing any entry renumbers the DOFs.
package topology

import (
	"fmt"
	"strings"
)

type CellShape uint8

const (
	Curve CellShape = iota
	Quadrilateral
	Hexahedron
	Triangle
	Tetrahedron
	Wedge
)

func (s CellShape) String() string {
	return [...]string{"Curve", "Quadrilateral", "Hexahedron", "Triangle", "Tetrahedron", "Wedge"}[s]
}

// Dimension is the number of parametric axes of the shape
func (s CellShape) Dimension() int {
	switch s {
	case Curve:
		return 1
	case Quadrilateral, Triangle:
		return 2
	default:
		return 3
	}
}

// IsSimplex is true for triangles and tetrahedra, whose order is a single degree
func (s CellShape) IsSimplex() bool {
	return s == Triangle || s == Tetrahedron
}

var shapeNameMap = map[string]CellShape{
	"curve":         Curve,
	"line":          Curve,
	"quadrilateral": Quadrilateral,
	"quad":          Quadrilateral,
	"hexahedron":    Hexahedron,
	"hex":           Hexahedron,
	"triangle":      Triangle,
	"tri":           Triangle,
	"tetrahedron":   Tetrahedron,
	"tetra":         Tetrahedron,
	"tet":           Tetrahedron,
	"wedge":         Wedge,
	"prism":         Wedge,
}

func NewCellShape(label string) (s CellShape, err error) {
	var (
		ok bool
	)
	if s, ok = shapeNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown cell shape %q", label)
	}
	return
}

// NumberOfPoints returns the size of the full point lattice for a shape and order.
// Wedges with enriched node sets (21 points) are counted by the caller.
func NumberOfPoints(s CellShape, order [3]int) (np int) {
	switch s {
	case Curve:
		np = order[0] + 1
	case Quadrilateral:
		np = (order[0] + 1) * (order[1] + 1)
	case Hexahedron:
		np = (order[0] + 1) * (order[1] + 1) * (order[2] + 1)
	case Triangle:
		np = (order[0] + 1) * (order[0] + 2) / 2
	case Tetrahedron:
		np = (order[0] + 1) * (order[0] + 2) * (order[0] + 3) / 6
	case Wedge:
		np = (order[0] + 1) * (order[0] + 2) / 2 * (order[2] + 1)
	}
	return
}

// ValidateOrder checks the entries of order used by the shape
func ValidateOrder(s CellShape, order [3]int) error {
	var (
		used = s.Dimension()
	)
	if s.IsSimplex() {
		used = 1
	}
	for i := 0; i < used; i++ {
		if order[i] < 1 {
			return fmt.Errorf("%s order[%d] must be >= 1, have %d", s, i, order[i])
		}
	}
	if s == Wedge && order[0] != order[1] {
		return fmt.Errorf("wedge requires order[0] == order[1], have %v", order)
	}
	return nil
}

// CornerAxis returns the single lattice axis along which two corners differ, or -1
func CornerAxis(a, b []int) (axis int) {
	axis = -1
	for i := range a {
		if a[i] != b[i] {
			if axis >= 0 {
				return -1
			}
			axis = i
		}
	}
	return
}
