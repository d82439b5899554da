package material

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Diffusive scatters incoming light over the hemisphere above the surface
// normal with a Lambertian (cosine-weighted) BRDF.
type Diffusive struct {
	Color core.Vec3
}

// NewDiffusive returns a Diffusive material of the given color.
func NewDiffusive(color core.Vec3) Diffusive {
	return Diffusive{Color: color}
}

func (m Diffusive) EffectOf(hit core.Hit, rng *rand.Rand) Effect {
	return ScatteringEffect(m.Color, core.NewLambertian(hit.Normal))
}
