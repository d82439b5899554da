package core

// Ray is a parametric line: origin + t*direction. Direction need not be
// unit length; rotation and scale transforms act on it directly, so the
// integrator must not normalize it away before a transform has been applied.
// Time supports motion blur sampling (never realized by any shipped
// material, but plumbed through every transform for forward compatibility).
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// NewRay creates a ray with the given origin, direction, and time.
func NewRay(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// WithOrigin returns a copy of the ray with a different origin.
func (r Ray) WithOrigin(origin Vec3) Ray {
	return Ray{Origin: origin, Direction: r.Direction, Time: r.Time}
}

// WithDirection returns a copy of the ray with a different direction.
func (r Ray) WithDirection(direction Vec3) Ray {
	return Ray{Origin: r.Origin, Direction: direction, Time: r.Time}
}
