package qsim

import (
	"fmt"
	"math"
	"strings"
)

/*
Matrix is a dense, row-major matrix of real numbers. A Matrix always has at
least one row and one column, and every row has the same length. Values are
immutable once constructed; every operation on a Matrix returns a new one.
*/
type Matrix struct {
	m [][]float64
}

/*
NewMatrix validates rows and returns a Matrix holding a copy of them.
It fails with ErrInvalidShape when rows is empty, the first row is empty,
or any row differs in length from the first.
*/
func NewMatrix(rows [][]float64) (*Matrix, error) {
	if err := checkShape(rows); err != nil {
		return nil, opErrorf("NewMatrix", err, "")
	}

	m := make([][]float64, len(rows))
	for i, row := range rows {
		m[i] = append([]float64(nil), row...)
	}

	return &Matrix{m: m}, nil
}

// newMatrix wraps rows the caller already owns and has shaped correctly.
func newMatrix(rows [][]float64) *Matrix {
	return &Matrix{m: rows}
}

func checkShape(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrInvalidShape
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidShape, i, len(row), width)
		}
	}

	return nil
}

// zeros allocates a rows x cols matrix buffer.
func zeros(rows, cols int) [][]float64 {
	backing := make([]float64, rows*cols)
	m := make([][]float64, rows)
	for i := range m {
		m[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}

/*
Identity returns the size x size identity matrix.
*/
func Identity(size int) (*Matrix, error) {
	if size < 1 {
		return nil, opErrorf("Identity", ErrInvalidShape, "size %d", size)
	}

	m := zeros(size, size)
	for i := 0; i < size; i++ {
		m[i][i] = 1
	}

	return newMatrix(m), nil
}

/*
Hadamard returns the single-qubit Hadamard operator

	H = 1/√2 * [1  1]
	           [1 -1]
*/
func Hadamard() *Matrix {
	x := 1 / math.Sqrt2
	return newMatrix([][]float64{
		{x, x},
		{x, -x},
	})
}

// Rows returns the number of rows.
func (mat *Matrix) Rows() int { return len(mat.m) }

// Cols returns the number of columns.
func (mat *Matrix) Cols() int { return len(mat.m[0]) }

// At returns the element at row i, column j. It panics when either index is
// out of range, like a slice index would.
func (mat *Matrix) At(i, j int) float64 { return mat.m[i][j] }

// Row returns a copy of row i.
func (mat *Matrix) Row(i int) []float64 {
	return append([]float64(nil), mat.m[i]...)
}

/*
ApproxEqual reports whether mat and other have the same shape and every pair
of elements differs by less than tol.
*/
func (mat *Matrix) ApproxEqual(other *Matrix, tol float64) bool {
	if mat.Rows() != other.Rows() || mat.Cols() != other.Cols() {
		return false
	}

	for i, row := range mat.m {
		for j, v := range row {
			if math.Abs(v-other.m[i][j]) >= tol {
				return false
			}
		}
	}

	return true
}

func (mat *Matrix) String() string {
	var sb strings.Builder
	for _, row := range mat.m {
		for _, v := range row {
			fmt.Fprintf(&sb, "%.2f ", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
