package spherecast

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randVector(rng *rand.Rand) Vector {
	return Vector{rng.Float64()*20 - 10, rng.Float64()*20 - 10, rng.Float64()*20 - 10, rng.Float64()*20 - 10}
}

func TestNewVectorPadding(t *testing.T) {
	assert.Equal(t, Vector{}, NewVector())
	assert.Equal(t, Vector{1, 0, 0, 0}, NewVector(1))
	assert.Equal(t, Vector{1, 2, 3, 0}, NewVector(1, 2, 3))
	assert.Equal(t, Vector{1, 2, 3, 4}, NewVector(1, 2, 3, 4))
	// extra components are dropped
	assert.Equal(t, Vector{1, 2, 3, 4}, NewVector(1, 2, 3, 4, 5))
}

func TestVectorOps(t *testing.T) {
	v := Vector{1, 2, 3, 4}
	w := Vector{-1, 0.5, 2, -2}

	assert.Equal(t, Vector{0, 2.5, 5, 2}, v.Add(w))
	assert.Equal(t, Vector{2, 1.5, 1, 6}, v.Sub(w))
	assert.Equal(t, Vector{-1, -2, -3, -4}, v.Neg())
	assert.Equal(t, Vector{3, 6, 9, 12}, v.Scale(3))
	assert.Equal(t, Real(1*(-1)+2*0.5+3*2+4*(-2)), v.Dot(w))
	assert.InDelta(t, math.Sqrt(30), v.Magnitude(), 1e-12)
}

func TestVectorAlgebraProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		a, b := randVector(rng), randVector(rng)
		require.True(t, a.Add(b).Equal(b.Add(a)), "add not commutative for %v %v", a, b)
		require.Equal(t, Vector{}, a.Sub(a))

		a3, b3 := a, b
		a3.W, b3.W = 0, 0
		require.True(t, a3.Cross(b3).Equal(b3.Cross(a3).Neg()), "cross not anticommutative")

		if a.Magnitude() > 0 {
			require.InDelta(t, 1.0, a.Normalized().Magnitude(), Epsilon)
		}
	}
}

func TestVectorCross(t *testing.T) {
	x := Vector{1, 0, 0, 0}
	y := Vector{0, 1, 0, 0}
	assert.Equal(t, Vector{0, 0, 1, 0}, x.Cross(y))
	assert.Equal(t, Vector{0, 0, -1, 0}, y.Cross(x))

	// W never leaks into the result
	c := Vector{1, 2, 3, 7}.Cross(Vector{2, 3, 4, 9})
	assert.Equal(t, Vector{-1, 2, -1, 0}, c)
}

func TestVectorNormalizeZero(t *testing.T) {
	n := Vector{}.Normalized()
	assert.True(t, math.IsNaN(n.X) && math.IsNaN(n.W))
	assert.False(t, n.IsFinite())

	_, err := Vector{}.SafeNormalized()
	require.ErrorIs(t, err, ErrZeroMagnitude)

	u, err := Vector{0, 3, 4, 0}.SafeNormalized()
	require.NoError(t, err)
	assert.True(t, u.Equal(Vector{0, 0.6, 0.8, 0}))
}

func TestVectorEqualTolerance(t *testing.T) {
	v := Vector{1, 2, 3, 4}
	assert.True(t, v.Equal(Vector{1 + 5e-5, 2, 3, 4 - 5e-5}))
	assert.False(t, v.Equal(Vector{1 + 2e-4, 2, 3, 4}))
}

func TestVectorString(t *testing.T) {
	lines := strings.Split(Vector{1, 2, 3, 4}.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "│  1.00  │  2.00  │  3.00  │  4.00  │", lines[1])
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.True(t, strings.HasSuffix(lines[2], "┘"))
}
