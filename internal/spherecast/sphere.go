package spherecast

import "math"

// Sphere is a static sphere; Radius is expected to be > 0 but not checked here.
type Sphere struct {
	Position Vector
	Radius   Real
}

// Intersection holds both roots of the ray/sphere quadratic, T1 >= T2.
type Intersection struct {
	T1, T2 Real
}

// Hit reports whether at least one root lies strictly in front of the ray origin.
func (i Intersection) Hit() bool { return i.T1 > 0 || i.T2 > 0 }

// Intersect solves |O + tD - C|^2 = r^2 for t.
// ok is false when the discriminant is negative (the ray misses).
// A zero-length direction divides by zero and yields non-finite roots.
func (s Sphere) Intersect(r Ray) (Intersection, bool) {
	sphereToRay := r.Origin.Sub(s.Position)

	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return Intersection{}, false
	}
	sqrtD := math.Sqrt(disc)
	return Intersection{
		T1: (-b + sqrtD) / (2 * a),
		T2: (-b - sqrtD) / (2 * a),
	}, true
}

// Hit combines Intersect with the in-front rule; tangent rays count.
func (s Sphere) Hit(r Ray) bool {
	in, ok := s.Intersect(r)
	return ok && in.Hit()
}
