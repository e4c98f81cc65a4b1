package spherecast

import (
	"fmt"
	"math"
	"strings"
)

// Vector is a homogeneous 4D vector. W is 0 for directions by convention.
type Vector struct {
	X, Y, Z, W Real
}

// NewVector builds a vector from up to four components.
// Missing trailing components are zero; anything past the fourth is ignored.
func NewVector(c ...Real) Vector {
	var v [4]Real
	copy(v[:], c)
	return Vector{v[0], v[1], v[2], v[3]}
}

// Vector functions
func (a Vector) Add(b Vector) Vector { return Vector{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vector) Sub(b Vector) Vector { return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (v Vector) Neg() Vector         { return Vector{-v.X, -v.Y, -v.Z, -v.W} }
func (v Vector) Scale(k Real) Vector { return Vector{v.X * k, v.Y * k, v.Z * k, v.W * k} }

// Dot returns the dot product over all four components, W included.
func (a Vector) Dot(b Vector) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross is the 3D cross product of the XYZ parts; W of the result is always 0.
func (a Vector) Cross(b Vector) Vector {
	return Vector{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
		0,
	}
}

// Magnitude returns the Euclidean length over all four components.
func (v Vector) Magnitude() Real { return math.Sqrt(v.Dot(v)) }

// Normalized returns v scaled to unit length.
// v must be non-zero, otherwise every component is NaN.
func (v Vector) Normalized() Vector {
	m := v.Magnitude()
	return Vector{v.X / m, v.Y / m, v.Z / m, v.W / m}
}

// SafeNormalized is Normalized with the zero vector reported as ErrZeroMagnitude.
func (v Vector) SafeNormalized() (Vector, error) {
	if v.Magnitude() == 0 {
		return Vector{}, opErrorf(opNormalize, ErrZeroMagnitude)
	}
	return v.Normalized(), nil
}

// Equal compares component-wise with absolute tolerance Epsilon.
func (a Vector) Equal(b Vector) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y) && ApproxEqual(a.Z, b.Z) && ApproxEqual(a.W, b.W)
}

func (v Vector) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) && isFinite(v.W)
}

func (v Vector) array() [4]Real { return [4]Real{v.X, v.Y, v.Z, v.W} }

// String renders the vector as a one-row table.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("┌────" + strings.Repeat("────┬────", 3) + "────┐\n")
	for _, c := range v.array() {
		sb.WriteString("│" + center(fmt.Sprintf("%.2f", c), 8))
	}
	sb.WriteString("│\n")
	sb.WriteString("└────" + strings.Repeat("────┴────", 3) + "────┘")
	return sb.String()
}
