package topology

// Simplex points are addressed by barycentric lattice indices b that sum to the
// order. b[0] belongs to vertex 0 at the parametric origin, b[1] to the vertex
// on the r axis, b[2] to the vertex on the s axis and, for tetrahedra, b[3] to
// the vertex on the t axis.

var TriangleCorners = [3][2]float64{{0, 0}, {1, 0}, {0, 1}}

var TriangleEdges = [3][2]int{{0, 1}, {1, 2}, {2, 0}}

var TetraCorners = [4][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

var TetraEdges = [6][2]int{
	{0, 1}, {1, 2}, {2, 0},
	{0, 3}, {1, 3}, {2, 3},
}

var TetraFaces = [4][3]int{
	{0, 1, 3}, {1, 2, 3}, {2, 0, 3}, {0, 2, 1},
}

// TetraFaceOpposite is the vertex not on each face
var TetraFaceOpposite = [4]int{2, 0, 1, 3}

// TetraFaceEdges lists the edges bounding each face, in face vertex order
var TetraFaceEdges = [4][3]int{
	{0, 4, 3}, {1, 5, 4}, {2, 3, 5}, {2, 1, 0},
}

// TriangleIndex maps a barycentric lattice index to the DOF number of a
// triangle of the given order. Interior points are numbered recursively as a
// triangle of order-3. Returns -1 for an index not on the lattice.
func TriangleIndex(b [3]int, order int) (index int) {
	if !validBarycentric(b[:], order) {
		return -1
	}
	for {
		if order == 0 {
			return
		}
		for v := 0; v < 3; v++ {
			if b[v] == order {
				return index + v
			}
		}
		for e := 0; e < 3; e++ {
			if b[(e+2)%3] == 0 {
				return index + 3 + e*(order-1) + (order - b[e] - 1)
			}
		}
		index += 3 * order
		b = [3]int{b[0] - 1, b[1] - 1, b[2] - 1}
		order -= 3
	}
}

// TetraIndex maps a barycentric lattice index to the DOF number of a
// tetrahedron: vertices, edges, faces (each face numbered as a triangle in
// TetraFaces vertex order), then the interior as a tetrahedron of order-4.
func TetraIndex(b [4]int, order int) (index int) {
	if !validBarycentric(b[:], order) {
		return -1
	}
	for {
		if order == 0 {
			return
		}
		for v := 0; v < 4; v++ {
			if b[v] == order {
				return index + v
			}
		}
		for e, ev := range TetraEdges {
			if b[ev[0]]+b[ev[1]] == order {
				return index + 4 + e*(order-1) + (order - b[ev[0]] - 1)
			}
		}
		nfp := (order - 1) * (order - 2) / 2
		for f, fv := range TetraFaces {
			if b[TetraFaceOpposite[f]] == 0 {
				local := [3]int{b[fv[0]] - 1, b[fv[1]] - 1, b[fv[2]] - 1}
				return index + 4 + 6*(order-1) + f*nfp + TriangleIndex(local, order-3)
			}
		}
		index += 4 + 6*(order-1) + 4*nfp
		b = [4]int{b[0] - 1, b[1] - 1, b[2] - 1, b[3] - 1}
		order -= 4
	}
}

func validBarycentric(b []int, order int) bool {
	var sum int
	for _, v := range b {
		if v < 0 {
			return false
		}
		sum += v
	}
	return sum == order
}

// TriangleParametricCoords returns the equispaced node location of every DOF
func TriangleParametricCoords(order int) (pc [][3]float64) {
	pc = make([][3]float64, NumberOfPoints(Triangle, [3]int{order}))
	for j := 0; j <= order; j++ {
		for i := 0; i <= order-j; i++ {
			idx := TriangleIndex([3]int{order - i - j, i, j}, order)
			pc[idx] = [3]float64{frac(i, order), frac(j, order), 0}
		}
	}
	return
}

// BubbleTrianglePoints is the quadratic triangle enriched with a node at its
// centroid, numbered after the six quadratic nodes. It is the triangle face
// of the 21 point wedge.
const BubbleTrianglePoints = 7

// IsBubbleTriangle reports whether an order and point count select the
// enriched quadratic triangle
func IsBubbleTriangle(order [3]int, numberOfPoints int) bool {
	return numberOfPoints == BubbleTrianglePoints && order[0] == 2
}

func BubbleTriangleParametricCoords() (pc [][3]float64) {
	pc = append(TriangleParametricCoords(2), [3]float64{1. / 3, 1. / 3, 0})
	return
}

func TetraParametricCoords(order int) (pc [][3]float64) {
	pc = make([][3]float64, NumberOfPoints(Tetrahedron, [3]int{order}))
	for k := 0; k <= order; k++ {
		for j := 0; j <= order-k; j++ {
			for i := 0; i <= order-j-k; i++ {
				idx := TetraIndex([4]int{order - i - j - k, i, j, k}, order)
				pc[idx] = [3]float64{frac(i, order), frac(j, order), frac(k, order)}
			}
		}
	}
	return
}
