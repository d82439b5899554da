package noise

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Simple is a lattice noise that needs no table: each axis is folded into a
// triangle wave and smoothed with a cubic Hermite curve, then the three
// components are multiplied together. Cheap, periodic, and band-limited
// enough to drive marble- and wood-style textures.
type Simple struct{}

func (Simple) ValueAt(point core.Vec3) float64 {
	x := componentAlias(point.X)
	y := componentAlias(point.Y)
	z := componentAlias(point.Z)
	return x * y * z
}

func componentAlias(v float64) float64 {
	d := math.Abs((v-math.Floor(v))*2.0 - 1.0)
	return d * d * (3.0 - 2.0*d)
}
