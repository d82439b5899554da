package geometry

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Sphere is the unit sphere centered at the local origin. Every other
// sphere placement, size, or orientation in a scene is a Sphere wrapped in a
// pkg/transform.Transformation, never a distinct geometry.
type Sphere struct{}

// NewSphere returns the unit sphere.
func NewSphere() Sphere {
	return Sphere{}
}

// Shoot implements Geometry. The normal returned on a hit is not unit
// length: its magnitude carries an importance weight used by the path
// tracer's MIS sampler. For an outside hit, the weight is the solid angle
// the sphere subtends as seen from the ray origin; for an inside hit, it is
// the constant -4π (the sphere's total solid angle as seen from within,
// negated to mark "inside").
func (Sphere) Shoot(ray core.Ray, min, max float64) (core.Hit, bool) {
	directionLengthSquared := ray.Direction.LengthSquared()
	halfB := ray.Direction.Dot(ray.Origin) / directionLengthSquared
	c := (ray.Origin.LengthSquared() - 1.0) / directionLengthSquared

	if c == 0 {
		return possibleHit(false, ray, -2.0*halfB, min, max)
	}

	discriminant := halfB*halfB - c
	if discriminant <= 0 {
		return core.Hit{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	if hit, ok := possibleHit(true, ray, -halfB-sqrtD, min, max); ok {
		return hit, true
	}
	return possibleHit(false, ray, -halfB+sqrtD, min, max)
}

func possibleHit(outside bool, ray core.Ray, distance, min, max float64) (core.Hit, bool) {
	if min < distance && distance < max {
		return sphereHit(outside, ray, distance), true
	}
	return core.Hit{}, false
}

func sphereHit(outside bool, ray core.Ray, distance float64) core.Hit {
	point := ray.At(distance)
	distanceToCenter := ray.Origin.Length()

	var area float64
	if outside {
		area = 2.0 * math.Pi * (1.0 - 1.0/distanceToCenter)
	} else {
		area = -4.0 * math.Pi
	}

	return core.NewHit(outside, point.Multiply(area), core.NewRay(point, ray.Direction, ray.Time), distance)
}

// SurfaceCoordinates implements Geometry.
func (Sphere) SurfaceCoordinates(point core.Vec3) core.Vec2 {
	a := math.Atan2(point.X, point.Z) / math.Pi
	b := math.Atan2(point.Y, math.Sqrt(point.X*point.X+point.Z*point.Z)) / math.Pi
	return core.NewVec2(a, b)
}
