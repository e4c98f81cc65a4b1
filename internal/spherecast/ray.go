package spherecast

// Ray is the parametric line Origin + t*Direction. Direction need not be unit length.
type Ray struct {
	Origin    Vector
	Direction Vector
}

// Position returns the point at parameter t.
func (r Ray) Position(t Real) Vector {
	return r.Origin.Add(r.Direction.Scale(t))
}
