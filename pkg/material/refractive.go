package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// RefractionIndex precomputes the Schlick reflectance coefficients for a
// dielectric index of refraction so EffectOf never repeats the division.
type RefractionIndex struct {
	Index float64
	c1    float64
	c2    float64
}

// NewRefractionIndex precomputes the Schlick approximation coefficients
// r0 = ((index-1)/(index+1))^2 for a dielectric of the given index.
func NewRefractionIndex(index float64) RefractionIndex {
	r0 := (index - 1.0) / (index + 1.0)
	r0Sq := r0 * r0
	return RefractionIndex{Index: index, c1: r0Sq, c2: 1.0 - r0Sq}
}

func (i RefractionIndex) schlickReflectance(cosAngle float64) float64 {
	return i.c1 + i.c2*math.Pow(1.0-cosAngle, 5.0)
}

// Refractive is a dielectric (glass, water) that refracts or, with
// probability given by the Schlick approximation, reflects.
type Refractive struct {
	Color core.Vec3
	Index RefractionIndex
}

// NewRefractive returns a Refractive material of the given color and index
// of refraction.
func NewRefractive(color core.Vec3, index float64) Refractive {
	return Refractive{Color: color, Index: NewRefractionIndex(index)}
}

func (m Refractive) EffectOf(hit core.Hit, rng *rand.Rand) Effect {
	direction := refractiveRedirection(hit.Ray.Direction, hit.Normal.Unit(), m.Index, hit.Outside, rng)
	return RedirectionEffect(m.Color, direction)
}

func refractiveRedirection(incident, normal core.Vec3, index RefractionIndex, outside bool, rng *rand.Rand) core.Vec3 {
	reciprocatedIndex := index.Index
	if outside {
		reciprocatedIndex = 1.0 / index.Index
	}

	incidentPerpendicular := incident.ProjectOn(normal, true)
	incidentTangent := incident.Subtract(incidentPerpendicular)
	refractionTangent := incidentTangent.Multiply(reciprocatedIndex)

	refractionPerpendicularLengthSq := refractionPerpendicularComponentLengthSquared(refractionTangent, incidentPerpendicular, incident, index, rng)
	if refractionPerpendicularLengthSq >= 0 {
		refractionPerpendicular := normal.Multiply(math.Sqrt(refractionPerpendicularLengthSq))
		return refractionTangent.Subtract(refractionPerpendicular)
	}
	return incidentTangent.Subtract(incidentPerpendicular)
}

func refractionPerpendicularComponentLengthSquared(refractionTangent, incidentPerpendicular, incidentOrRefraction core.Vec3, index RefractionIndex, rng *rand.Rand) float64 {
	incidentOrRefractionLengthSq := incidentOrRefraction.LengthSquared()
	lengthSq := incidentOrRefractionLengthSq - refractionTangent.LengthSquared()
	if lengthSq < 0 {
		return lengthSq
	}

	cosAngle := math.Sqrt(incidentPerpendicular.LengthSquared() / incidentOrRefractionLengthSq)
	if rng.Float64() >= index.schlickReflectance(cosAngle) {
		return lengthSq
	}
	return -1.0
}
