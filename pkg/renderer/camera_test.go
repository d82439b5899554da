package renderer

import (
	"math/rand"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

type constantScene struct {
	color core.Vec3
}

func (s constantScene) Trace(core.Ray, *rand.Rand) core.Vec3 {
	return s.color
}

func TestCamera_ShootConstantSceneProducesUniformImage(t *testing.T) {
	cam := NewCamera(NewIdealLens(1.0), NewSensor(4, 4, 1.0), Exposure(0), 4)
	img := cam.Shoot(constantScene{color: core.NewVec3(0.5, 0.5, 0.5)}, 2, 0)

	reference := img.At(0, 0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := img.At(x, y)
			assert.InDelta(t, reference.X, c.X, 0.02)
			assert.GreaterOrEqual(t, c.X, 0.0)
			assert.LessOrEqual(t, c.X, 1.0)
		}
	}
}

func TestLens_IdealIsAlwaysAtOrigin(t *testing.T) {
	l := NewIdealLens(1.0)
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, core.Black, l.Sample(rng))
}

func TestExposure_ZeroIsAlwaysZero(t *testing.T) {
	e := Exposure(0)
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 0.0, e.Sample(rng))
}

func TestSensor_PixelOriginCoversFullWidth(t *testing.T) {
	s := NewSensor(2, 2, 1.0)
	x0, y0 := s.pixelOrigin(0, 0)
	assert.InDelta(t, -1.0, x0, 1e-9)
	assert.InDelta(t, 1.0, y0, 1e-9)
}
