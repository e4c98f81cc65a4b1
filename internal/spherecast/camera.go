package spherecast

import (
	"fmt"
	"math"
)

// Camera is a fixed pinhole at the origin looking down +Z.
type Camera struct {
	Width, Height int
	FOV           Real // degrees

	// cached
	scale  Real
	aspect Real
}

func NewCamera(width, height int, fovDeg Real) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, opErrorf(opCamera, fmt.Errorf("%dx%d: %w", width, height, ErrBadResolution))
	}
	if !(fovDeg > 0 && fovDeg <= 180) {
		return nil, opErrorf(opCamera, fmt.Errorf("fov %g: %w", fovDeg, ErrBadFOV))
	}
	c := &Camera{
		Width:  width,
		Height: height,
		FOV:    fovDeg,
		scale:  math.Cos((90 - fovDeg/2) * math.Pi / 180),
		aspect: Real(height) / Real(width),
	}
	DebugLog("Created camera %dx%d fov=%.2f scale=%.6f aspect=%.6f", width, height, fovDeg, c.scale, c.aspect)
	return c, nil
}

// RayFor returns the primary ray through pixel (px, py).
func (c *Camera) RayFor(px, py int) Ray {
	return Ray{
		Origin: Vector{},
		Direction: Vector{
			X: (2*(Real(px)/Real(c.Width)) - 1) * c.scale,
			Y: (2*(Real(py)/Real(c.Height)) - 1) * c.aspect * c.scale,
			Z: 1,
			W: 0,
		},
	}
}
