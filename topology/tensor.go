package topology

// Corner tables give lattice positions as multiples of the order along each axis.

var CurveCorners = [2][1]int{{0}, {1}}

var QuadCorners = [4][2]int{
	{0, 0}, {1, 0}, {1, 1}, {0, 1},
}

// QuadEdgeCorners lists each edge from the corner with the lower value of the
// varying axis to the corner with the higher value.
var QuadEdgeCorners = [4][2]int{
	{0, 1}, {1, 2}, {3, 2}, {0, 3},
}

var HexCorners = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// HexEdgeCorners runs i-axis and j-axis edges of the k=0 face, then of the k=1
// face, then the four k-axis edges. Edge 10 joins corners 3-7 and edge 11
// joins corners 2-6, matching the (i,j) order of PointIndexFromIJK.
var HexEdgeCorners = [12][2]int{
	{0, 1}, {1, 2}, {3, 2}, {0, 3},
	{4, 5}, {5, 6}, {7, 6}, {4, 7},
	{0, 4}, {1, 5}, {3, 7}, {2, 6},
}

// HexFaceCorners are ordered i=0, i=1, j=0, j=1, k=0, k=1
var HexFaceCorners = [6][4]int{
	{0, 4, 7, 3}, {1, 2, 6, 5},
	{0, 1, 5, 4}, {3, 7, 6, 2},
	{0, 3, 2, 1}, {4, 5, 6, 7},
}

var HexFaceEdges = [6][4]int{
	{8, 7, 10, 3}, {1, 11, 5, 9},
	{0, 9, 4, 8}, {10, 6, 11, 2},
	{3, 2, 1, 0}, {4, 5, 6, 7},
}

// HexFaceAxes is {normal, fast, slow} for each face; face-interior points are
// enumerated with the fast axis varying first.
var HexFaceAxes = [6][3]int{
	{0, 1, 2}, {0, 1, 2},
	{1, 0, 2}, {1, 0, 2},
	{2, 0, 1}, {2, 0, 1},
}

// HexFaceSide is 0 for the face at the lattice minimum and 1 for the maximum
var HexFaceSide = [6]int{0, 1, 0, 1, 0, 1}

func CurvePointIndexFromIJK(i int, order [3]int) int {
	switch {
	case i < 0 || i > order[0]:
		return -1
	case i == 0:
		return 0
	case i == order[0]:
		return 1
	}
	return i + 1
}

func QuadPointIndexFromIJK(i, j int, order [3]int) int {
	if i < 0 || i > order[0] || j < 0 || j > order[1] {
		return -1
	}
	var (
		ibdy = i == 0 || i == order[0]
		jbdy = j == 0 || j == order[1]
	)
	if ibdy && jbdy {
		return quadCorner(i != 0, j != 0)
	}
	offset := 4
	if ibdy || jbdy {
		if !ibdy { // i axis edge
			if j != 0 {
				offset += order[0] - 1 + order[1] - 1
			}
			return offset + i - 1
		}
		// j axis edge
		if i != 0 {
			offset += order[0] - 1
		} else {
			offset += 2*(order[0]-1) + order[1] - 1
		}
		return offset + j - 1
	}
	offset += 2 * (order[0] - 1 + order[1] - 1)
	return offset + (i - 1) + (order[0]-1)*(j-1)
}

func quadCorner(iMax, jMax bool) int {
	switch {
	case iMax && jMax:
		return 2
	case iMax:
		return 1
	case jMax:
		return 3
	}
	return 0
}

func HexPointIndexFromIJK(i, j, k int, order [3]int) int {
	if i < 0 || i > order[0] || j < 0 || j > order[1] || k < 0 || k > order[2] {
		return -1
	}
	var (
		ibdy = i == 0 || i == order[0]
		jbdy = j == 0 || j == order[1]
		kbdy = k == 0 || k == order[2]
		nbdy int
	)
	for _, b := range []bool{ibdy, jbdy, kbdy} {
		if b {
			nbdy++
		}
	}
	if nbdy == 3 {
		idx := quadCorner(i != 0, j != 0)
		if k != 0 {
			idx += 4
		}
		return idx
	}
	offset := 8
	if nbdy == 2 {
		kShift := 0
		if k != 0 {
			kShift = 2 * (order[0] - 1 + order[1] - 1)
		}
		switch {
		case !ibdy:
			if j != 0 {
				offset += order[0] - 1 + order[1] - 1
			}
			return offset + kShift + i - 1
		case !jbdy:
			if i != 0 {
				offset += order[0] - 1
			} else {
				offset += 2*(order[0]-1) + order[1] - 1
			}
			return offset + kShift + j - 1
		}
		offset += 4 * (order[0] - 1 + order[1] - 1)
		var slot int
		switch {
		case i != 0 && j != 0:
			slot = 3
		case i != 0:
			slot = 1
		case j != 0:
			slot = 2
		}
		return offset + (k - 1) + (order[2]-1)*slot
	}
	offset += 4 * (order[0] - 1 + order[1] - 1 + order[2] - 1)
	if nbdy == 1 {
		switch {
		case ibdy:
			if i != 0 {
				offset += (order[1] - 1) * (order[2] - 1)
			}
			return offset + (j - 1) + (order[1]-1)*(k-1)
		case jbdy:
			offset += 2 * (order[1] - 1) * (order[2] - 1)
			if j != 0 {
				offset += (order[2] - 1) * (order[0] - 1)
			}
			return offset + (i - 1) + (order[0]-1)*(k-1)
		}
		offset += 2 * ((order[1]-1)*(order[2]-1) + (order[2]-1)*(order[0]-1))
		if k != 0 {
			offset += (order[0] - 1) * (order[1] - 1)
		}
		return offset + (i - 1) + (order[0]-1)*(j-1)
	}
	offset += 2 * ((order[1]-1)*(order[2]-1) + (order[2]-1)*(order[0]-1) + (order[0]-1)*(order[1]-1))
	return offset + (i - 1) + (order[0]-1)*((j-1)+(order[1]-1)*(k-1))
}

// TensorParametricCoords returns the [0,1] parametric location of every DOF of
// a curve, quadrilateral or hexahedron, in DOF order.
func TensorParametricCoords(s CellShape, order [3]int) (pc [][3]float64) {
	var (
		np = NumberOfPoints(s, order)
		nk = 0
		nj = 0
	)
	pc = make([][3]float64, np)
	switch s {
	case Quadrilateral:
		nj = order[1]
	case Hexahedron:
		nj, nk = order[1], order[2]
	}
	for k := 0; k <= nk; k++ {
		for j := 0; j <= nj; j++ {
			for i := 0; i <= order[0]; i++ {
				var idx int
				switch s {
				case Curve:
					idx = CurvePointIndexFromIJK(i, order)
				case Quadrilateral:
					idx = QuadPointIndexFromIJK(i, j, order)
				default:
					idx = HexPointIndexFromIJK(i, j, k, order)
				}
				pc[idx] = [3]float64{frac(i, order[0]), frac(j, nj), frac(k, nk)}
			}
		}
	}
	return
}

func frac(i, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(i) / float64(n)
}
