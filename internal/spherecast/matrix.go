package spherecast

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is an immutable N×N row-major grid. Every operation returns a
// fresh copy, so sharing a Matrix value between goroutines is safe.
type Matrix struct {
	m    [][]Real
	size int
}

func newGrid(n int) [][]Real {
	flat := make([]Real, n*n)
	g := make([][]Real, n)
	for i := range g {
		g[i] = flat[i*n : (i+1)*n : (i+1)*n]
	}
	return g
}

// NewMatrix copies grid into a new matrix. The size is the row count; every
// row must have exactly that many entries.
func NewMatrix(grid [][]Real) (Matrix, error) {
	n := len(grid)
	if n == 0 {
		return Matrix{}, opErrorf(opNewMatrix, ErrBadShape)
	}
	m := newGrid(n)
	for y, row := range grid {
		if len(row) != n {
			return Matrix{}, opErrorf(opNewMatrix, fmt.Errorf("row %d has %d entries, want %d: %w", y, len(row), n, ErrNonSquare))
		}
		copy(m[y], row)
	}
	return Matrix{m: m, size: n}, nil
}

// Identity returns the n×n identity matrix. n must be positive.
func Identity(n int) Matrix {
	if n < 1 {
		panic("identity size must be positive")
	}
	m := newGrid(n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return Matrix{m: m, size: n}
}

// Size returns N for an N×N matrix.
func (A Matrix) Size() int { return A.size }

// At returns the entry at row y, column x.
func (A Matrix) At(y, x int) (Real, error) {
	if y < 0 || y >= A.size || x < 0 || x >= A.size {
		return 0, opErrorf(opAt, ErrOutOfRange)
	}
	return A.m[y][x], nil
}

// Rows returns a deep copy of the grid.
func (A Matrix) Rows() [][]Real {
	g := newGrid(A.size)
	for y := range A.m {
		copy(g[y], A.m[y])
	}
	return g
}

// Mul returns the product A*B; both matrices must have the same size.
func (A Matrix) Mul(B Matrix) (Matrix, error) {
	if A.size != B.size {
		return Matrix{}, opErrorf(opMul, fmt.Errorf("%dx%d * %dx%d: %w", A.size, A.size, B.size, B.size, ErrDimensionMismatch))
	}
	n := A.size
	R := newGrid(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += A.m[r][k] * B.m[k][c]
			}
			R[r][c] = sum
		}
	}
	return Matrix{m: R, size: n}, nil
}

// MulVec applies a 4×4 matrix to v.
func (A Matrix) MulVec(v Vector) (Vector, error) {
	if A.size != 4 {
		return Vector{}, opErrorf(opMulVec, fmt.Errorf("%dx%d * 4-vector: %w", A.size, A.size, ErrDimensionMismatch))
	}
	in := v.array()
	var out [4]Real
	for r := 0; r < 4; r++ {
		sum := 0.0
		for k := 0; k < 4; k++ {
			sum += A.m[r][k] * in[k]
		}
		out[r] = sum
	}
	return Vector{out[0], out[1], out[2], out[3]}, nil
}

// Scale returns a copy with every entry multiplied by k.
func (A Matrix) Scale(k Real) Matrix {
	R := newGrid(A.size)
	for r := range A.m {
		for c, v := range A.m[r] {
			R[r][c] = v * k
		}
	}
	return Matrix{m: R, size: A.size}
}

// Transposed returns a copy with rows and columns swapped.
func (A Matrix) Transposed() Matrix {
	R := newGrid(A.size)
	for r := 0; r < A.size; r++ {
		for c := 0; c < A.size; c++ {
			R[c][r] = A.m[r][c]
		}
	}
	return Matrix{m: R, size: A.size}
}

// Determinant uses cofactor expansion along row 0. The cost is O(n!), which
// is fine for the 4×4 matrices used here.
func (A Matrix) Determinant() Real {
	switch A.size {
	case 0:
		return 0
	case 1:
		return A.m[0][0]
	case 2:
		return A.m[0][0]*A.m[1][1] - A.m[0][1]*A.m[1][0]
	}
	det := 0.0
	for x := 0; x < A.size; x++ {
		det += A.m[0][x] * A.cofactor(0, x)
	}
	return det
}

// Submatrix drops row y and column x.
func (A Matrix) Submatrix(y, x int) (Matrix, error) {
	if A.size < 2 {
		return Matrix{}, opErrorf(opSubmatrix, ErrBadShape)
	}
	if y < 0 || y >= A.size || x < 0 || x >= A.size {
		return Matrix{}, opErrorf(opSubmatrix, ErrOutOfRange)
	}
	return A.submatrix(y, x), nil
}

func (A Matrix) submatrix(y, x int) Matrix {
	n := A.size - 1
	R := newGrid(n)
	for i := 0; i < A.size; i++ {
		if i == y {
			continue
		}
		ri := i
		if i > y {
			ri--
		}
		for j := 0; j < A.size; j++ {
			if j == x {
				continue
			}
			rj := j
			if j > x {
				rj--
			}
			R[ri][rj] = A.m[i][j]
		}
	}
	return Matrix{m: R, size: n}
}

// Cofactor returns the signed minor at (y, x); the sign starts at +1 for (0, 0).
func (A Matrix) Cofactor(y, x int) (Real, error) {
	if A.size < 2 {
		return 0, opErrorf(opCofactor, ErrBadShape)
	}
	if y < 0 || y >= A.size || x < 0 || x >= A.size {
		return 0, opErrorf(opCofactor, ErrOutOfRange)
	}
	return A.cofactor(y, x), nil
}

func (A Matrix) cofactor(y, x int) Real {
	sign := Real(1 - 2*((x+y)%2))
	return sign * A.submatrix(y, x).Determinant()
}

// Inverse returns the adjugate divided by the determinant. Only an exactly
// zero determinant is rejected; near-singular input is inverted as is.
func (A Matrix) Inverse() (Matrix, error) {
	return A.inverse(0)
}

// InverseTol is Inverse with |det| <= tol treated as singular.
// A NaN tol rejects every matrix.
func (A Matrix) InverseTol(tol Real) (Matrix, error) {
	return A.inverse(math.Abs(tol))
}

// inverse rejects a non-finite determinant too, so the result is never
// silently NaN or Inf because of it.
func (A Matrix) inverse(tol Real) (Matrix, error) {
	det := A.Determinant()
	if !isFinite(det) || math.IsNaN(tol) || math.Abs(det) <= tol {
		return Matrix{}, opErrorf(opInverse, fmt.Errorf("determinant %g: %w", det, ErrSingular))
	}
	if A.size == 1 {
		return Matrix{m: [][]Real{{1 / det}}, size: 1}, nil
	}
	R := newGrid(A.size)
	for y := 0; y < A.size; y++ {
		for x := 0; x < A.size; x++ {
			R[y][x] = A.cofactor(x, y) / det
		}
	}
	return Matrix{m: R, size: A.size}, nil
}

// Equal compares entry-wise with absolute tolerance Epsilon.
func (A Matrix) Equal(B Matrix) bool {
	if A.size != B.size {
		return false
	}
	for r := range A.m {
		for c := range A.m[r] {
			if !ApproxEqual(A.m[r][c], B.m[r][c]) {
				return false
			}
		}
	}
	return true
}

func (A Matrix) IsFinite() bool {
	for r := range A.m {
		for _, v := range A.m[r] {
			if !isFinite(v) {
				return false
			}
		}
	}
	return true
}

// String renders the matrix as a boxed table, two decimals per cell.
func (A Matrix) String() string {
	if A.size == 0 {
		return "[]"
	}
	n := A.size
	var sb strings.Builder
	sb.WriteString("┌────" + strings.Repeat("────┬────", n-1) + "────┐\n")
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			sb.WriteString("│" + center(fmt.Sprintf("%.2f", A.m[y][x]), 8))
		}
		sb.WriteString("│\n")
		if y != n-1 {
			sb.WriteString("├────" + strings.Repeat("────┼────", n-1) + "────┤\n")
		}
	}
	sb.WriteString("└────" + strings.Repeat("────┴────", n-1) + "────┘")
	return sb.String()
}
