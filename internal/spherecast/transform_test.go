package spherecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslation(t *testing.T) {
	T := Translation(5, -3, 2)
	p, err := T.MulVec(Vector{-3, 4, 5, 1})
	require.NoError(t, err)
	assert.Equal(t, Vector{2, 1, 7, 1}, p)

	// directions are not moved
	d, err := T.MulVec(Vector{-3, 4, 5, 0})
	require.NoError(t, err)
	assert.Equal(t, Vector{-3, 4, 5, 0}, d)

	inv, err := T.Inverse()
	require.NoError(t, err)
	back, err := inv.MulVec(p)
	require.NoError(t, err)
	assert.True(t, back.Equal(Vector{-3, 4, 5, 1}))
}

func TestScaling(t *testing.T) {
	p, err := Scaling(2, 3, 4).MulVec(Vector{-4, 6, 8, 1})
	require.NoError(t, err)
	assert.Equal(t, Vector{-8, 18, 32, 1}, p)
}

func TestRotations(t *testing.T) {
	cases := []struct {
		name string
		M    Matrix
		in   Vector
		want Vector
	}{
		{"x", RotationX(math.Pi / 2), Vector{0, 1, 0, 1}, Vector{0, 0, 1, 1}},
		{"y", RotationY(math.Pi / 2), Vector{0, 0, 1, 1}, Vector{1, 0, 0, 1}},
		{"z", RotationZ(math.Pi / 2), Vector{0, 1, 0, 1}, Vector{-1, 0, 0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.M.MulVec(tc.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v", got)

			// rotations are orthogonal: inverse == transpose
			inv, err := tc.M.Inverse()
			require.NoError(t, err)
			assert.True(t, inv.Equal(tc.M.Transposed()))
			assert.InDelta(t, 1.0, tc.M.Determinant(), Epsilon)
		})
	}
}
