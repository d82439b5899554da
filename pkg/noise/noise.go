// Package noise implements the procedural value-generators that drive
// procedural textures: a lattice-based smoothstep noise, fractal (FBM)
// composition of it, and a Perlin noise field backed by an external
// generator for comparison.
package noise

import "github.com/df07/go-progressive-raytracer/pkg/core"

// Field produces a scalar noise value for any point in space.
type Field interface {
	ValueAt(point core.Vec3) float64
}
