package scenes

import (
	"math/rand"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/integrator"
	"github.com/df07/go-progressive-raytracer/pkg/thing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTracer(t *testing.T, world thing.Thing, environment integrator.World) integrator.PathTracer {
	t.Helper()
	return integrator.NewPathTracer(environment, world, 4, integrator.Omnidirectional{})
}

func TestBuild_KnownScenesSucceed(t *testing.T) {
	for _, name := range []string{"empty", "emissive-sphere", "reflective-floor", "refractive-sphere", "checker-sphere"} {
		tracer, camera, ok := Build(name, 4)
		require.True(t, ok, name)
		assert.Equal(t, 4, tracer.Depth)
		assert.Greater(t, camera.SamplesPerPixel, 0)
	}
}

func TestBuild_UnknownSceneFails(t *testing.T) {
	_, _, ok := Build("nonexistent", 4)
	assert.False(t, ok)
}

func TestEmissiveSphere_CentralRayHitsEmissiveColor(t *testing.T) {
	world, environment, _ := EmissiveSphere()
	tracer := mustTracer(t, world, environment)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	rng := rand.New(rand.NewSource(1))
	color := tracer.Trace(ray, rng)

	assert.Greater(t, color.X, 0.0)
}

func TestEmpty_MissRayReturnsConstantEnvironment(t *testing.T) {
	world, environment, _ := Empty()
	tracer := mustTracer(t, world, environment)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)
	rng := rand.New(rand.NewSource(1))
	color := tracer.Trace(ray, rng)

	assert.Equal(t, core.NewVec3(0.5, 0.5, 0.5), color)
}
