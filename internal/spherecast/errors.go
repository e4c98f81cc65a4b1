package spherecast

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message carries the "spherecast:" prefix; callers
// match them with errors.Is, wrapped values keep the "Op: cause" shape.
var (
	// ErrBadShape is returned for an empty grid or a matrix too small for
	// the requested operation (e.g. a submatrix of a 1x1 matrix).
	ErrBadShape = errors.New("spherecast: invalid matrix shape")

	// ErrNonSquare is returned when a row length differs from the row count.
	ErrNonSquare = errors.New("spherecast: matrix is not square")

	// ErrDimensionMismatch is returned when operand sizes are incompatible.
	ErrDimensionMismatch = errors.New("spherecast: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("spherecast: index out of range")

	// ErrSingular is returned when inverting a matrix whose determinant is zero.
	ErrSingular = errors.New("spherecast: singular matrix")

	// ErrZeroMagnitude is returned when normalizing a zero-length vector.
	ErrZeroMagnitude = errors.New("spherecast: zero magnitude vector")

	ErrBadResolution = errors.New("spherecast: resolution must be > 0")
	ErrBadFOV        = errors.New("spherecast: field of view must be in (0, 180] degrees")
	ErrBadRadius     = errors.New("spherecast: sphere radius must be > 0")
	ErrUnknownFormat = errors.New("spherecast: unknown image format")
)

const (
	opNewMatrix = "NewMatrix"
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opSubmatrix = "Submatrix"
	opCofactor  = "Cofactor"
	opAt        = "At"
	opInverse   = "Inverse"
	opNormalize = "Normalize"
	opCamera    = "NewCamera"
	opSphere    = "Sphere"
	opSave      = "SaveImage"
)

// opErrorf wraps err with an operation tag. Call only with a non-nil err.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
