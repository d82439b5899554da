package integrator

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// DirectionSampler picks the next bounce direction during scattering,
// optionally steering samples toward directions likely to matter (a light
// source, say) via multiple importance sampling against the surface's own
// BRDF.
type DirectionSampler interface {
	// SampleDirectionFrom returns a direction and the weight to multiply
	// the traced color by (the MIS weight divided into the BRDF's own
	// sampling probability). A weight of 0 means the caller can skip
	// tracing the recursive ray entirely.
	SampleDirectionFrom(position core.Vec3, brdf core.BRDF, rng *rand.Rand) (core.Vec3, float64)

	// ImportantDirectionsAt returns the distribution of directions this
	// sampler considers worth steering toward from position.
	ImportantDirectionsAt(position core.Vec3) core.Space[core.Vec3]

	// Feedback lets an adaptive sampler learn from the color a sampled
	// direction produced. Stateless samplers no-op.
	Feedback(position, direction, color core.Vec3)
}

// MixSampleDirection implements the MIS mixing rule shared by every
// DirectionSampler that actually steers samples (as opposed to
// Omnidirectional, which has nothing to steer toward and overrides this
// entirely): with probability equal to the BRDF's narrowness, sample the
// BRDF itself; otherwise sample the important-direction distribution. Either
// way, weight the result by the BRDF's own sampling probability over the
// mixed PDF, so the estimator stays unbiased regardless of which branch fired.
func MixSampleDirection(directions core.Space[core.Vec3], brdf core.BRDF, rng *rand.Rand) (core.Vec3, float64) {
	narrowness := brdf.Narrowness()
	dice := rng.Float64()

	var direction core.Vec3
	var dirPDF, brdfPDF float64
	if dice < narrowness {
		direction, brdfPDF = brdf.SampleAndPDF(rng)
		dirPDF = directions.PDF(direction)
	} else {
		direction, dirPDF = directions.SampleAndPDF(rng)
		brdfPDF = brdf.PDF(direction)
	}

	pdf := narrowness*brdfPDF + (1.0-narrowness)*dirPDF
	if pdf == 0 {
		return direction, 0
	}
	return direction, brdfPDF / pdf
}

// Omnidirectional is the default DirectionSampler: it has no particular
// direction to steer toward, so it samples the BRDF directly with weight 1
// and never needs to mix.
type Omnidirectional struct{}

func (Omnidirectional) SampleDirectionFrom(_ core.Vec3, brdf core.BRDF, rng *rand.Rand) (core.Vec3, float64) {
	direction, _ := brdf.SampleAndPDF(rng)
	return direction, 1.0
}

func (Omnidirectional) ImportantDirectionsAt(core.Vec3) core.Space[core.Vec3] {
	return core.UniformUnitSphere{}
}

func (Omnidirectional) Feedback(core.Vec3, core.Vec3, core.Vec3) {}
