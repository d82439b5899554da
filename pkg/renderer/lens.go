// Package renderer turns a scene into pixels: the Camera samples a ray per
// pixel per sample through a thin-lens model, traces it, and the resulting
// per-goroutine stacks are averaged, bloomed, and gamma-corrected into a
// final Image.
package renderer

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Lens is a thin-lens model: a nonzero Aperture spreads ray origins over a
// disc to produce depth-of-field blur away from FocalPlaneRatio*FocalLength;
// an Aperture of 0 collapses to an ideal pinhole.
type Lens struct {
	Aperture        float64
	FocalLength     float64
	FocalPlaneRatio float64
}

// NewIdealLens returns a pinhole lens (zero aperture, everything in focus)
// with the given focal length.
func NewIdealLens(focalLength float64) Lens {
	return NewLens(0, focalLength, focalLength)
}

// NewLens returns a thin lens with the given aperture, focal length, and
// distance to the focal plane.
func NewLens(aperture, focalLength, focalPlaneDistance float64) Lens {
	return Lens{Aperture: aperture, FocalLength: focalLength, FocalPlaneRatio: focalPlaneDistance / focalLength}
}

// Sample draws a ray origin on the lens: the coordinate center when the
// lens is a pinhole, otherwise a uniformly random point on the aperture disc.
func (l Lens) Sample(rng *rand.Rand) core.Vec3 {
	if l.Aperture == 0 {
		return core.Black
	}
	disc := core.UniformSolidUnitDisc{}.Sample(rng)
	return disc.Multiply(l.Aperture)
}
