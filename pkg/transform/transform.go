// Package transform places geometry in the scene. The renderer has exactly
// one primitive (the unit sphere in pkg/geometry), so every other size,
// position, and orientation a scene needs comes from wrapping that
// primitive in a Transformation.
package transform

import "github.com/df07/go-progressive-raytracer/pkg/core"

// Transformation maps rays into a local coordinate space and hits back out
// of it.
type Transformation interface {
	ToLocal(ray core.Ray) core.Ray
	ToGlobal(hit core.Hit) core.Hit
}

// Builder is the fluent interface for composing transformations, mirroring
// the order operations are applied: each call returns a transform that
// first performs the receiver's mapping, then the new one.
type Builder interface {
	Transformation

	ThenLinear(matrix core.Matrix3) Builder
	ThenTranslation(displacement core.Vec3) Builder
	ThenScaling(x, y, z float64) Builder
	ThenOmniScaling(f float64) Builder
	ThenRotation(axis core.Vec3, angle float64) Builder
	ThenDisplacementOf(x, y, z float64) Builder
}
