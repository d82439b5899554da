package material

import "github.com/df07/go-progressive-raytracer/pkg/core"

// EffectKind tags which variant of Effect is populated.
type EffectKind int

const (
	// Absorption means the ray terminates here; nothing scatters or emits.
	Absorption EffectKind = iota
	// Emission means the surface is a light source contributing Color.
	Emission
	// Scattering means the ray continues in a direction drawn from BRDF,
	// attenuated by Color.
	Scattering
	// Redirection means the ray continues in the fixed Direction,
	// attenuated by Color (mirrors and dielectrics: no sampling needed).
	Redirection
)

// Effect is what a Material does with a ray at a hit point.
type Effect struct {
	Kind      EffectKind
	Color     core.Vec3
	BRDF      core.BRDF
	Direction core.Vec3
}

// AbsorptionEffect returns an Effect that terminates the path.
func AbsorptionEffect() Effect {
	return Effect{Kind: Absorption}
}

// EmissionEffect returns an Effect contributing color as emitted light.
func EmissionEffect(color core.Vec3) Effect {
	return Effect{Kind: Emission, Color: color}
}

// ScatteringEffect returns an Effect that continues the path in a direction
// sampled from brdf, attenuated by color.
func ScatteringEffect(color core.Vec3, brdf core.BRDF) Effect {
	return Effect{Kind: Scattering, Color: color, BRDF: brdf}
}

// RedirectionEffect returns an Effect that continues the path in a fixed
// direction, attenuated by color.
func RedirectionEffect(color core.Vec3, direction core.Vec3) Effect {
	return Effect{Kind: Redirection, Color: color, Direction: direction}
}
