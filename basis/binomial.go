package basis

import "fmt"

var binomials = [11][11]int{
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 3, 3, 1, 0, 0, 0, 0, 0, 0, 0},
	{1, 4, 6, 4, 1, 0, 0, 0, 0, 0, 0},
	{1, 5, 10, 10, 5, 1, 0, 0, 0, 0, 0},
	{1, 6, 15, 20, 15, 6, 1, 0, 0, 0, 0},
	{1, 7, 21, 35, 35, 21, 7, 1, 0, 0, 0},
	{1, 8, 28, 56, 70, 56, 28, 8, 1, 0, 0},
	{1, 9, 36, 84, 126, 126, 84, 36, 9, 1, 0},
	{1, 10, 45, 120, 210, 252, 210, 120, 45, 10, 1},
}

// BinomialCoefficient returns C(n,k), or 0 when k is outside [0,n]
func BinomialCoefficient(n, k int) (c int) {
	if k < 0 || k > n || n < 0 {
		return 0
	}
	if n < len(binomials) {
		return binomials[n][k]
	}
	if k > n-k {
		k = n - k
	}
	c = 1
	for i := 1; i <= k; i++ {
		c = c * (n - k + i) / i
	}
	return
}

// NumberOfSimplexFunctions is the number of degree deg polynomials on a
// simplex of dimension dim
func NumberOfSimplexFunctions(dim, deg int) int {
	return BinomialCoefficient(dim+deg, dim)
}

// FlattenSimplex maps lattice coordinates on a triangle (i,j) or tetrahedron
// (i,j,k) of degree deg to a linear index. The barycentric coordinate not
// stored is deg minus the sum of the others.
func FlattenSimplex(dim, deg int, coord [3]int) (flat int, err error) {
	if dim != 2 && dim != 3 {
		err = fmt.Errorf("FlattenSimplex(dim=%d): %w", dim, ErrUnsupportedDimension)
		return
	}
	var sum int
	for a := 0; a < dim; a++ {
		if coord[a] < 0 {
			err = fmt.Errorf("FlattenSimplex: negative coordinate %v for dim=%d", coord, dim)
			return
		}
		sum += coord[a]
	}
	if sum > deg {
		err = fmt.Errorf("FlattenSimplex: coordinate %v outside simplex of degree %d", coord, deg)
		return
	}
	flat = flattenSimplex(dim, deg, coord)
	return
}

// UnflattenSimplex is the inverse of FlattenSimplex
func UnflattenSimplex(dim, deg, flat int) (coord [3]int, err error) {
	if dim != 2 && dim != 3 {
		err = fmt.Errorf("UnflattenSimplex(dim=%d): %w", dim, ErrUnsupportedDimension)
		return
	}
	if flat < 0 || flat >= NumberOfSimplexFunctions(dim, deg) {
		err = fmt.Errorf("UnflattenSimplex: index %d out of range for dim=%d deg=%d", flat, dim, deg)
		return
	}
	coord = unflattenSimplex(dim, deg, flat)
	return
}

func flattenSimplex(dim, deg int, coord [3]int) int {
	if dim == 2 {
		i, j := coord[0], coord[1]
		return j*(deg+1) - j*(j-1)/2 + i
	}
	var offset int
	for level := 0; level < coord[2]; level++ {
		offset += NumberOfSimplexFunctions(2, deg-level)
	}
	return offset + flattenSimplex(2, deg-coord[2], coord)
}

func unflattenSimplex(dim, deg, flat int) (coord [3]int) {
	if dim == 3 {
		for level := 0; level <= deg; level++ {
			n := NumberOfSimplexFunctions(2, deg-level)
			if flat < n {
				coord = unflattenSimplex(2, deg-level, flat)
				coord[2] = level
				return
			}
			flat -= n
		}
		return
	}
	for row := 0; row <= deg; row++ {
		n := deg - row + 1
		if flat < n {
			coord[0], coord[1] = flat, row
			return
		}
		flat -= n
	}
	return
}
