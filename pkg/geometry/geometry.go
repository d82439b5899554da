// Package geometry implements the ray-primitive intersection tests the
// scene graph builds on. Arbitrary placement, scale, and rotation are the
// job of pkg/transform, not of additional primitive shapes: the renderer
// has exactly one analytic primitive, the unit sphere at the origin.
package geometry

import "github.com/df07/go-progressive-raytracer/pkg/core"

// Geometry is something a ray can hit in its own local coordinate space.
type Geometry interface {
	// Shoot returns the nearest hit with t strictly between min and max, or
	// false if the ray misses.
	Shoot(ray core.Ray, min, max float64) (core.Hit, bool)

	// SurfaceCoordinates maps a local surface point to a 2D parameterization
	// usable by textures.
	SurfaceCoordinates(point core.Vec3) core.Vec2
}
