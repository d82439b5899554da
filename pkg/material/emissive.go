package material

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Emissive is a light source: it contributes Color regardless of the
// incoming ray and does not continue the path.
type Emissive struct {
	Color core.Vec3
}

// NewEmissive returns an Emissive material of the given color.
func NewEmissive(color core.Vec3) Emissive {
	return Emissive{Color: color}
}

func (m Emissive) EffectOf(core.Hit, *rand.Rand) Effect {
	return EmissionEffect(m.Color)
}
