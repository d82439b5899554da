package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/thing"
)

// minIntersectionDistance keeps a continuation ray from immediately
// re-hitting the surface it just left because of floating point error.
const minIntersectionDistance = 1e-4

var maxDistance = math.Inf(1)

// PathTracer is the recursive Monte-Carlo integrator. It holds no
// per-render state, so a single PathTracer is shared read-only across every
// worker goroutine; randomness is threaded through explicitly via the
// *rand.Rand each call receives.
type PathTracer struct {
	Environment       World
	Subject           thing.Thing
	Depth             int
	DirectionsSampler DirectionSampler
}

// NewPathTracer builds a path tracer over subject, falling back to
// environment when a ray escapes the scene, bouncing at most depth times.
func NewPathTracer(environment World, subject thing.Thing, depth int, sampler DirectionSampler) PathTracer {
	return PathTracer{Environment: environment, Subject: subject, Depth: depth, DirectionsSampler: sampler}
}

// Trace returns the color seen along ray.
func (pt PathTracer) Trace(ray core.Ray, rng *rand.Rand) core.Vec3 {
	return pt.doTrace(ray, pt.Depth, rng)
}

func (pt PathTracer) doTrace(ray core.Ray, depth int, rng *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Black
	}
	hit, ok := pt.Subject.Shoot(ray, minIntersectionDistance, maxDistance)
	if !ok {
		return pt.Environment.Trace(ray.WithOrigin(core.Black))
	}
	return pt.colorOf(hit, depth, rng)
}

func (pt PathTracer) colorOf(hit *thing.MaterialHit, depth int, rng *rand.Rand) core.Vec3 {
	m := hit.Texture.Material(hit.Hit, hit.Geometry, hit.OtherSideTexture)
	effect := m.EffectOf(hit.Hit, rng)
	switch effect.Kind {
	case material.Absorption:
		return core.Black
	case material.Emission:
		return effect.Color
	case material.Scattering:
		return effect.Color.MultiplyVec(pt.scatter(hit, effect.BRDF, depth, rng))
	case material.Redirection:
		return effect.Color.MultiplyVec(pt.redirect(hit, effect.Direction, depth, rng))
	default:
		return core.Black
	}
}

func (pt PathTracer) scatter(hit *thing.MaterialHit, brdf core.BRDF, depth int, rng *rand.Rand) core.Vec3 {
	position := hit.Hit.Ray.Origin
	direction, weight := pt.DirectionsSampler.SampleDirectionFrom(position, brdf, rng)
	if weight == 0 {
		return core.Black
	}
	color := pt.doTrace(hit.Hit.Ray.WithDirection(direction), depth-1, rng)
	pt.DirectionsSampler.Feedback(position, direction, color)
	return color.Multiply(weight)
}

func (pt PathTracer) redirect(hit *thing.MaterialHit, direction core.Vec3, depth int, rng *rand.Rand) core.Vec3 {
	return pt.doTrace(hit.Hit.Ray.WithDirection(direction), depth-1, rng)
}
