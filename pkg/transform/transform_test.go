package transform

import (
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func roundTrip(t *testing.T, tr Transformation, ray core.Ray) {
	t.Helper()
	local := tr.ToLocal(ray)
	rayAtHit := local.WithOrigin(local.At(3.7))
	hit := core.NewHit(true, core.NewVec3(0, 1, 0), rayAtHit, 3.7)
	global := tr.ToGlobal(hit)

	expectedPoint := ray.At(3.7)
	assert.InDelta(t, expectedPoint.X, global.Ray.Origin.X, 1e-9)
	assert.InDelta(t, expectedPoint.Y, global.Ray.Origin.Y, 1e-9)
	assert.InDelta(t, expectedPoint.Z, global.Ray.Origin.Z, 1e-9)
	assert.NotNil(t, global.LocalHit)
	assert.Equal(t, rayAtHit.Origin, global.LocalHit.Ray.Origin)
}

func TestTranslation_RoundTrip(t *testing.T) {
	tr := NewTranslation(1, 2, 3)
	ray := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, 0, -1), 0)
	roundTrip(t, tr, ray)
}

func TestLinear_RoundTrip(t *testing.T) {
	tr := Scaling(2, 3, 4)
	ray := core.NewRay(core.NewVec3(10, 0, 0), core.NewVec3(-1, 0, 0), 0)
	roundTrip(t, tr, ray)
}

func TestAffine_RoundTrip(t *testing.T) {
	tr := NewTranslation(1, -2, 0.5).ThenRotation(core.NewVec3(0, 1, 0), 0.4).ThenOmniScaling(2.5)
	ray := core.NewRay(core.NewVec3(3, 4, 5), core.NewVec3(1, -1, 1), 0)
	roundTrip(t, tr, ray)
}

func TestLinear_AntiMatrixTransformsNormalCorrectly(t *testing.T) {
	scale := Scaling(2, 1, 1)
	local := core.NewHit(true, core.NewVec3(1, 0, 0), core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(1, 0, 0), 0), 1)
	global := scale.ToGlobal(local)
	assert.InDelta(t, 1.0, global.Normal.X, 1e-9)
}

func TestBuilder_PromotesTranslationToAffine(t *testing.T) {
	var b Builder = NewTranslation(1, 0, 0)
	b = b.ThenScaling(2, 2, 2)
	_, ok := b.(Affine)
	assert.True(t, ok)
}
