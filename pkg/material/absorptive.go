package material

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Absorptive terminates every ray that reaches it. It doubles as the
// implicit material behind the Black texture.
type Absorptive struct{}

func (Absorptive) EffectOf(core.Hit, *rand.Rand) Effect {
	return AbsorptionEffect()
}
