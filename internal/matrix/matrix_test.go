package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	m, err := FromSlice([]int{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	assert.Equal(t, Matrix{{1, 2}, {3, 4}}, m)
	assert.Equal(t, 2, m.Size())

	_, err = FromSlice([]int{1, 2, 3}, 2)
	assert.Error(t, err)

	_, err = FromSlice(nil, 0)
	assert.Error(t, err)
}

func TestMulVector(t *testing.T) {
	m := Matrix{{3, 2}, {5, 7}}

	assert.Equal(t, []int{14, 15}, MulVector([]int{7, 4}, m, 27))
	assert.Equal(t, []int{0, 19}, MulVector([]int{11, 15}, m, 27))

	// a short vector only uses the rows it covers
	assert.Equal(t, []int{3, 2}, MulVector([]int{1}, m, 27))
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name     string
		m        Matrix
		modulus  int
		expected int
	}{
		{name: "1x1", m: Matrix{{30}}, modulus: 27, expected: 3},
		{name: "2x2", m: Matrix{{3, 2}, {5, 7}}, modulus: 27, expected: 11},
		{name: "2x2 negative", m: Matrix{{0, 1}, {1, 0}}, modulus: 27, expected: 26},
		{name: "3x3", m: Matrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}, modulus: 27, expected: 441 % 27},
		{name: "4x4 identity", m: Matrix{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}, modulus: 34, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Determinant(tt.m, tt.modulus))
		})
	}
}

func TestInverse(t *testing.T) {
	for _, tt := range []struct {
		m       Matrix
		modulus int
	}{
		{Matrix{{3, 2}, {5, 7}}, 27},
		{Matrix{{1, 2, 0}, {0, 1, 3}, {0, 0, 1}}, 27},
		{Matrix{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}, 34},
		{Matrix{{5}}, 34},
	} {
		inv, err := Inverse(tt.m, tt.modulus)
		require.NoError(t, err)

		n := tt.m.Size()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				sum := 0
				for k := 0; k < n; k++ {
					sum += tt.m[i][k] * inv[k][j]
				}
				want := 0
				if i == j {
					want = 1
				}
				assert.Equal(t, want, Mod(sum, tt.modulus), "entry (%d,%d) of %v", i, j, tt.m)
			}
		}
	}

	inv, err := Inverse(Matrix{{3, 2}, {5, 7}}, 27)
	require.NoError(t, err)
	assert.Equal(t, Matrix{{8, 17}, {2, 15}}, inv)
}

func TestInverseSingular(t *testing.T) {
	_, err := Inverse(Matrix{{3, 3}, {2, 5}}, 27)
	assert.ErrorIs(t, err, ErrSingular)

	_, err = Inverse(Matrix{{2, 0}, {0, 1}}, 34)
	assert.ErrorIs(t, err, ErrSingular)

	_, err = Inverse(Matrix{}, 27)
	assert.ErrorIs(t, err, ErrSingular)
}

func TestModInverse(t *testing.T) {
	x, ok := ModInverse(11, 27)
	require.True(t, ok)
	assert.Equal(t, 5, x)

	x, ok = ModInverse(-1, 34)
	require.True(t, ok)
	assert.Equal(t, 33, x)

	_, ok = ModInverse(17, 34)
	assert.False(t, ok)

	_, ok = ModInverse(0, 27)
	assert.False(t, ok)
}
