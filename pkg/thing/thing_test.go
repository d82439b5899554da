package thing

import (
	"math"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/transform"
	"github.com/stretchr/testify/assert"
)

func TestAtomic_OutsideHitUsesOuterTexture(t *testing.T) {
	outer := material.NewConstantTexture(material.NewEmissive(core.White))
	inner := material.NewConstantTexture(material.Absorptive{})
	a := NewAtomic(geometry.NewSphere(), outer, inner)

	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1), 0)
	hit, ok := a.Shoot(ray, 0, math.Inf(1))
	assert.True(t, ok)
	assert.Equal(t, outer, hit.Texture)
	assert.Equal(t, inner, hit.OtherSideTexture)
}

func TestAtomic_InsideHitUsesInnerTexture(t *testing.T) {
	outer := material.NewConstantTexture(material.Absorptive{})
	inner := material.NewConstantTexture(material.NewEmissive(core.White))
	a := NewAtomic(geometry.NewSphere(), outer, inner)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0)
	hit, ok := a.Shoot(ray, 0, math.Inf(1))
	assert.True(t, ok)
	assert.Equal(t, inner, hit.Texture)
}

func TestThings_ReturnsClosestHitAcrossMembers(t *testing.T) {
	near := NewAtomic(geometry.NewSphere(), material.NewConstantTexture(material.NewEmissive(core.White)), material.NewConstantTexture(material.Absorptive{}))
	far := NewTransformed(
		NewAtomic(geometry.NewSphere(), material.NewConstantTexture(material.NewEmissive(core.NewVec3(0, 1, 0))), material.NewConstantTexture(material.Absorptive{})),
		transform.NewTranslation(0, 0, -10),
	)
	list := Things{far, near}

	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1), 0)
	hit, ok := list.Shoot(ray, 0, math.Inf(1))
	assert.True(t, ok)
	assert.InDelta(t, 2.0, hit.Hit.Distance, 1e-9)
}

func TestTransformed_MapsHitBackToGlobalSpace(t *testing.T) {
	tr := transform.NewTranslation(5, 0, 0)
	sphere := NewAtomic(geometry.NewSphere(), material.NewConstantTexture(material.NewEmissive(core.White)), material.NewConstantTexture(material.Absorptive{}))
	wrapped := NewTransformed(sphere, tr)

	ray := core.NewRay(core.NewVec3(5, 0, 3), core.NewVec3(0, 0, -1), 0)
	hit, ok := wrapped.Shoot(ray, 0, math.Inf(1))
	assert.True(t, ok)
	assert.InDelta(t, 5, hit.Hit.Ray.Origin.X, 1e-9)
	assert.InDelta(t, 0, hit.Hit.Ray.Origin.Y, 1e-9)
	assert.InDelta(t, 1, hit.Hit.Ray.Origin.Z, 1e-9)
}
