package noise

import (
	"github.com/aquilax/go-perlin"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// PerlinField adapts github.com/aquilax/go-perlin to the Field interface, as
// an alternative to the hand-rolled Simple lattice noise when a smoother,
// gradient-based texture is wanted.
type PerlinField struct {
	p *perlin.Perlin
}

// NewPerlinField builds a Perlin noise field. alpha and beta control
// amplitude and frequency falloff per octave, n is the octave count, and
// seed makes the field reproducible.
func NewPerlinField(alpha, beta float64, n int32, seed int64) PerlinField {
	return PerlinField{p: perlin.NewPerlin(alpha, beta, n, seed)}
}

func (f PerlinField) ValueAt(point core.Vec3) float64 {
	return f.p.Noise3D(point.X, point.Y, point.Z)
}
