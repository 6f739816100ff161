package qsim

/*
TensorProduct computes the Kronecker product of a (r1 x c1) and b (r2 x c2).
The result is (r1*r2) x (c1*c2) with a[i][j]*b[k][l] placed at row i*r2+k,
column j*c2+l. Folding single-qubit operators through TensorProduct from the
most significant qubit down makes the result's index bits line up with the
little-endian basis index of a StateVector.
*/
func TensorProduct(a, b *Matrix) *Matrix {
	rows1, cols1 := a.Rows(), a.Cols()
	rows2, cols2 := b.Rows(), b.Cols()

	m := zeros(rows1*rows2, cols1*cols2)

	for i := 0; i < rows1; i++ {
		for j := 0; j < cols1; j++ {
			for k := 0; k < rows2; k++ {
				for l := 0; l < cols2; l++ {
					m[i*rows2+k][j*cols2+l] = a.m[i][j] * b.m[k][l]
				}
			}
		}
	}

	return newMatrix(m)
}

/*
DotProduct returns the matrix product a·b. It fails with ErrDimensionMismatch
when the number of columns in a differs from the number of rows in b.
*/
func DotProduct(a, b *Matrix) (*Matrix, error) {
	rows1, cols1 := a.Rows(), a.Cols()
	rows2, cols2 := b.Rows(), b.Cols()

	if cols1 != rows2 {
		return nil, opErrorf(
			"DotProduct", ErrDimensionMismatch,
			"columns in a (%d) must match rows in b (%d)", cols1, rows2,
		)
	}

	m := zeros(rows1, cols2)

	for i := 0; i < rows1; i++ {
		for j := 0; j < cols2; j++ {
			var sum float64
			for k := 0; k < cols1; k++ {
				sum += a.m[i][k] * b.m[k][j]
			}
			m[i][j] = sum
		}
	}

	return newMatrix(m), nil
}

// Transpose returns the transpose of mat.
func Transpose(mat *Matrix) *Matrix {
	rows, cols := mat.Rows(), mat.Cols()
	t := zeros(cols, rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t[j][i] = mat.m[i][j]
		}
	}

	return newMatrix(t)
}
