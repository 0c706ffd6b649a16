package topology

// Wedge lattice indices are (i, j, k) with i+j <= order[0] in the triangle
// cross-section and 0 <= k <= order[2] along t.

var WedgeCorners = [6][3]int{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {0, 1, 1},
}

var WedgeEdgeCorners = [9][2]int{
	{0, 1}, {1, 2}, {2, 0},
	{3, 4}, {4, 5}, {5, 3},
	{0, 3}, {1, 4}, {2, 5},
}

// WedgeTriFaces are the k=0 and k=1 faces, both listed outward
var WedgeTriFaces = [2][3]int{{0, 2, 1}, {3, 4, 5}}

// WedgeQuadFaces are the j=0, i+j=order and i=0 faces
var WedgeQuadFaces = [3][4]int{{0, 1, 4, 3}, {1, 2, 5, 4}, {2, 0, 3, 5}}

// Wedge21Points is the quadratic wedge enriched with a node at the centre of
// each triangular face and one at the body centre.
const Wedge21Points = 21

// IsWedge21 reports whether an order and point count select the enriched
// quadratic wedge.
func IsWedge21(order [3]int, numberOfPoints int) bool {
	return numberOfPoints == Wedge21Points && order[0] == 2 && order[1] == 2 && order[2] == 2
}

// WedgeNumberOfPoints is the DOF count of a wedge, counting the bubble nodes of
// the 21 point variant.
func WedgeNumberOfPoints(order [3]int, numberOfPoints int) int {
	if IsWedge21(order, numberOfPoints) {
		return Wedge21Points
	}
	return NumberOfPoints(Wedge, order)
}

// WedgePointIndexFromIJK returns the DOF number of a lattice point, or -1 when
// the wedge has no such point.
func WedgePointIndexFromIJK(i, j, k int, order [3]int, numberOfPoints int) int {
	var (
		rsOrder = order[0]
		tOrder  = order[2]
		rm1     = rsOrder - 1
		tm1     = tOrder - 1
	)
	if i < 0 || j < 0 || i+j > rsOrder || k < 0 || k > tOrder {
		return -1
	}
	var (
		ibdy  = i == 0
		jbdy  = j == 0
		ijbdy = i+j == rsOrder
		kbdy  = k == 0 || k == tOrder
		nbdy  int
	)
	for _, b := range []bool{ibdy, jbdy, ijbdy, kbdy} {
		if b {
			nbdy++
		}
	}
	if nbdy == 3 {
		idx := 2
		switch {
		case ibdy && jbdy:
			idx = 0
		case jbdy && ijbdy:
			idx = 1
		}
		if k != 0 {
			idx += 3
		}
		return idx
	}
	offset := 6
	if nbdy == 2 {
		if !kbdy { // vertical edge
			offset += 6 * rm1
			slot := 2
			switch {
			case ibdy && jbdy:
				slot = 0
			case jbdy && ijbdy:
				slot = 1
			}
			return offset + (k - 1) + slot*tm1
		}
		if k == tOrder {
			offset += 3 * rm1
		}
		switch {
		case jbdy:
			return offset + i - 1
		case ijbdy:
			return offset + rm1 + j - 1
		}
		return offset + 2*rm1 + (rsOrder - j - 1)
	}
	offset += 6*rm1 + 3*tm1
	var (
		ntfdof = (rm1 - 1) * rm1 / 2
		nqfdof = rm1 * tm1
	)
	if nbdy == 1 {
		if kbdy {
			if k != 0 {
				offset += ntfdof
			}
			return offset + wedgeTriInterior(i, j, rsOrder)
		}
		offset += 2 * ntfdof
		if IsWedge21(order, numberOfPoints) {
			offset += 2
		}
		switch {
		case jbdy:
			return offset + (i - 1) + rm1*(k-1)
		case ijbdy:
			return offset + nqfdof + (j - 1) + rm1*(k-1)
		}
		return offset + 2*nqfdof + (rsOrder - j - 1) + rm1*(k-1)
	}
	offset += 2*ntfdof + 3*nqfdof
	return offset + ntfdof*(k-1) + wedgeTriInterior(i, j, rsOrder)
}

// WedgeBubbleIndex returns the DOF number of the cross-section centre node at
// layer k of the 21 point wedge, or -1 for any other wedge.
func WedgeBubbleIndex(k int, order [3]int, numberOfPoints int) int {
	if !IsWedge21(order, numberOfPoints) || k < 0 || k > order[2] {
		return -1
	}
	switch k {
	case 0:
		return 15
	case order[2]:
		return 16
	}
	return 20
}

// wedgeTriInterior numbers the points with i,j >= 1 and i+j < n row by row
func wedgeTriInterior(i, j, n int) int {
	var (
		jj  = j - 1
		row = n - 2
	)
	return jj*row - jj*(jj-1)/2 + (i - 1)
}

func WedgeParametricCoords(order [3]int, numberOfPoints int) (pc [][3]float64) {
	pc = make([][3]float64, WedgeNumberOfPoints(order, numberOfPoints))
	for k := 0; k <= order[2]; k++ {
		for j := 0; j <= order[0]; j++ {
			for i := 0; i+j <= order[0]; i++ {
				if idx := WedgePointIndexFromIJK(i, j, k, order, numberOfPoints); idx >= 0 {
					pc[idx] = [3]float64{frac(i, order[0]), frac(j, order[0]), frac(k, order[2])}
				}
			}
		}
		if idx := WedgeBubbleIndex(k, order, numberOfPoints); idx >= 0 {
			pc[idx] = [3]float64{1. / 3, 1. / 3, frac(k, order[2])}
		}
	}
	return
}
