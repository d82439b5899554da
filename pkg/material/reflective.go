package material

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Reflective is a perfect mirror: the outgoing direction is the incoming
// direction reflected about the surface normal.
type Reflective struct {
	Color core.Vec3
}

// NewReflective returns a Reflective material of the given color.
func NewReflective(color core.Vec3) Reflective {
	return Reflective{Color: color}
}

func (m Reflective) EffectOf(hit core.Hit, rng *rand.Rand) Effect {
	incident := hit.Ray.Direction
	direction := incident.Subtract(incident.ProjectOn(hit.Normal, false).Multiply(2.0))
	return RedirectionEffect(m.Color, direction)
}
