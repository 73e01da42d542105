// Package matrix implements the square-matrix arithmetic modulo an integer used by the Hill cipher.
package matrix

import (
	"errors"
	"fmt"
)

// ErrSingular is returned when a matrix has no inverse for the requested modulus.
var ErrSingular = errors.New("matrix is not invertible")

// Matrix is a square matrix stored row-major.
type Matrix [][]int

// FromSlice fills an n×n matrix row by row from values, which must hold n*n entries.
func FromSlice(values []int, n int) (Matrix, error) {
	if n <= 0 || len(values) != n*n {
		return nil, fmt.Errorf("cannot build %dx%d matrix from %d values", n, n, len(values))
	}
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]int, n)
		copy(m[i], values[i*n:(i+1)*n])
	}
	return m, nil
}

// Size returns the dimension of the matrix.
func (m Matrix) Size() int { return len(m) }

// MulVector multiplies the row vector v by m: out[j] = Σ v[i]*m[i][j] mod modulus.
// A vector shorter than the matrix only contributes its own entries.
func MulVector(v []int, m Matrix, modulus int) []int {
	out := make([]int, m.Size())
	for j := range out {
		sum := 0
		for i := 0; i < len(v) && i < m.Size(); i++ {
			sum += v[i] * m[i][j]
		}
		out[j] = Mod(sum, modulus)
	}
	return out
}

// Determinant computes det(m) mod modulus by cofactor expansion along the first row.
func Determinant(m Matrix, modulus int) int {
	switch m.Size() {
	case 0:
		return Mod(1, modulus)
	case 1:
		return Mod(m[0][0], modulus)
	case 2:
		return Mod(m[0][0]*m[1][1]-m[0][1]*m[1][0], modulus)
	}

	det := 0
	for j := range m[0] {
		cofactor := m[0][j] * Determinant(minor(m, 0, j), modulus)
		if j%2 == 1 {
			cofactor = -cofactor
		}
		det = Mod(det+cofactor, modulus)
	}
	return det
}

// Inverse returns the matrix inverse modulo modulus, or ErrSingular when the determinant
// shares a factor with modulus.
func Inverse(m Matrix, modulus int) (Matrix, error) {
	n := m.Size()
	if n == 0 {
		return nil, ErrSingular
	}
	det := Determinant(m, modulus)
	detInv, ok := ModInverse(det, modulus)
	if !ok {
		return nil, fmt.Errorf("%w: determinant %d has no inverse modulo %d", ErrSingular, det, modulus)
	}

	inv := make(Matrix, n)
	for i := range inv {
		inv[i] = make([]int, n)
	}
	if n == 1 {
		inv[0][0] = detInv
		return inv, nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cofactor := Determinant(minor(m, i, j), modulus)
			if (i+j)%2 == 1 {
				cofactor = -cofactor
			}
			// adjugate is the transposed cofactor matrix
			inv[j][i] = Mod(cofactor*detInv, modulus)
		}
	}
	return inv, nil
}

// ModInverse returns x such that a*x ≡ 1 (mod m).
func ModInverse(a, m int) (int, bool) {
	a = Mod(a, m)
	oldR, r := a, m
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, false
	}
	return Mod(oldS, m), true
}

// Mod returns the non-negative remainder of a divided by m.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func minor(m Matrix, row, col int) Matrix {
	out := make(Matrix, 0, m.Size()-1)
	for i := range m {
		if i == row {
			continue
		}
		r := make([]int, 0, m.Size()-1)
		for j := range m[i] {
			if j != col {
				r = append(r, m[i][j])
			}
		}
		out = append(out, r)
	}
	return out
}
