package material

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// weightedMaterial pairs a Material with its normalized selection weight.
type weightedMaterial struct {
	material Material
	weight   float64
}

// Composite picks one of several materials at random each time EffectOf is
// called, weighted by their relative contribution. Weights need not sum to
// 1; NewComposite normalizes them.
type Composite struct {
	materials []weightedMaterial
}

// NewComposite builds a Composite from materials paired with their relative
// weights, normalizing the weights to sum to 1.
func NewComposite(materials []Material, weights []float64) Composite {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	normalized := make([]weightedMaterial, len(materials))
	for i, m := range materials {
		normalized[i] = weightedMaterial{material: m, weight: weights[i] / sum}
	}
	return Composite{materials: normalized}
}

func (c Composite) EffectOf(hit core.Hit, rng *rand.Rand) Effect {
	choice := rng.Float64()
	var sum float64
	for _, wm := range c.materials {
		sum += wm.weight
		if sum >= choice {
			return wm.material.EffectOf(hit, rng)
		}
	}
	return AbsorptionEffect()
}
