package spherecast

type Real = float64

const (
	// Epsilon is the absolute tolerance used by the approximate comparators.
	Epsilon = 1e-4

	Width      = 1000
	Height     = 600
	FOV        = 90.0 // degrees
	Output     = "result.png"
	Format     = "png"
	ProbeEvery = 100 // progress lines per render (~1% steps)
)

// Default scene: unit sphere three units in front of the camera.
var (
	DefaultSpherePosition = Vector{0, 0, 3, 0}
	DefaultSphereRadius   = Real(1)
	HitColor              = RGB8{255, 255, 255}
	MissColor             = RGB8{50, 50, 50}
)
