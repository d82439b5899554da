package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestAbsorptive_AlwaysAbsorbs(t *testing.T) {
	m := Absorptive{}
	effect := m.EffectOf(core.Hit{}, rand.New(rand.NewSource(1)))
	assert.Equal(t, Absorption, effect.Kind)
}

func TestEmissive_EmitsItsColor(t *testing.T) {
	color := core.NewVec3(1, 0.5, 0.2)
	m := NewEmissive(color)
	effect := m.EffectOf(core.Hit{}, rand.New(rand.NewSource(1)))
	assert.Equal(t, Emission, effect.Kind)
	assert.Equal(t, color, effect.Color)
}

func TestDiffusive_ScattersWithLambertianAboveNormal(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)
	hit := core.NewHit(true, normal, core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0), 1)
	m := NewDiffusive(core.White)
	effect := m.EffectOf(hit, rand.New(rand.NewSource(2)))
	assert.Equal(t, Scattering, effect.Kind)
	assert.NotNil(t, effect.BRDF)
}

func TestReflective_ReflectsAboutNormal(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	incident := core.NewVec3(1, -1, 0)
	hit := core.NewHit(true, normal, core.NewRay(core.NewVec3(0, 0, 0), incident, 0), 1)
	m := NewReflective(core.White)
	effect := m.EffectOf(hit, rand.New(rand.NewSource(3)))
	assert.Equal(t, Redirection, effect.Kind)
	assert.InDelta(t, 1.0, effect.Direction.X, 1e-9)
	assert.InDelta(t, 1.0, effect.Direction.Y, 1e-9)
}

func TestRefractionIndex_SchlickReflectanceAtZeroAngleMatchesR0(t *testing.T) {
	idx := NewRefractionIndex(1.5)
	r0 := math.Pow((1.5-1.0)/(1.5+1.0), 2)
	assert.InDelta(t, r0, idx.schlickReflectance(1.0), 1e-9)
}

func TestComposite_WeightsNormalize(t *testing.T) {
	c := NewComposite([]Material{NewEmissive(core.White), Absorptive{}}, []float64{3, 1})
	assert.InDelta(t, 0.75, c.materials[0].weight, 1e-9)
	assert.InDelta(t, 0.25, c.materials[1].weight, 1e-9)
}

func TestSameTexture_SubstitutesBlackAsOtherSide(t *testing.T) {
	s := SameTexture{}
	hit := core.NewHit(true, core.NewVec3(0, 0, 1), core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0), 1)
	called := recordingTexture{}
	s.Material(hit, geometry.NewSphere(), &called)
	_, isBlack := called.received.(BlackTexture)
	assert.True(t, isBlack)
}

type recordingTexture struct {
	received Texture
}

func (r *recordingTexture) Material(hit core.Hit, geom geometry.Geometry, otherSide Texture) Material {
	r.received = otherSide
	return Absorptive{}
}
