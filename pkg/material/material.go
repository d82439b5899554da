// Package material implements the surface response model: what a ray does
// when it meets a Thing, expressed as an Effect the path tracer can
// interpret, and the Texture indirection that lets a single geometry carry
// different materials on its two sides (and procedurally vary across its
// surface).
package material

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Material decides what happens to a ray that reaches a hit point. EffectOf
// takes an explicit RNG rather than a shared global one so that rendering
// many pixels concurrently needs no locking: every goroutine owns its own
// *rand.Rand.
type Material interface {
	EffectOf(hit core.Hit, rng *rand.Rand) Effect
}
