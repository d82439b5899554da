// Package scenes holds hand-built example scenes in the style of
// photon.rs's examples: a handful of spheres assembled through
// pkg/transform's Builder chains and textured through pkg/material, traced
// by a pkg/integrator.PathTracer and shot through a pkg/renderer.Camera.
package scenes

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/integrator"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/noise"
	"github.com/df07/go-progressive-raytracer/pkg/renderer"
	"github.com/df07/go-progressive-raytracer/pkg/thing"
	"github.com/df07/go-progressive-raytracer/pkg/transform"
)

const (
	defaultWidth   = 640
	defaultHeight  = 480
	defaultSamples = 32
	defaultDepth   = 8
)

func defaultCamera() renderer.Camera {
	return renderer.NewCamera(renderer.NewIdealLens(1.0), renderer.NewSensor(defaultWidth, defaultHeight, 1.0), renderer.Exposure(0), defaultSamples)
}

// sphereAt returns a unit sphere scaled to radius and displaced to center,
// textured with outer and opaque black on the inside (every example scene
// here only cares about outward-facing surfaces).
func sphereAt(center core.Vec3, radius float64, outer material.Texture) thing.Thing {
	return thing.NewTransformed(
		thing.NewAtomic(geometry.NewSphere(), outer, material.BlackTexture{}),
		transform.OmniScaling(radius).ThenTranslation(center),
	)
}

// Empty is the simplest possible scene: nothing to hit, a camera looking
// into a flat grey environment.
func Empty() (thing.Thing, integrator.World, renderer.Camera) {
	world := thing.Things{}
	environment := integrator.NewConstantWorld(core.NewVec3(0.5, 0.5, 0.5))
	return world, environment, defaultCamera()
}

// EmissiveSphere places a single glowing sphere three units in front of the
// camera against a black environment, so the only light in the image comes
// from the sphere itself.
func EmissiveSphere() (thing.Thing, integrator.World, renderer.Camera) {
	sphere := sphereAt(core.NewVec3(0, 0, -3), 1.0, material.NewConstantTexture(material.NewEmissive(core.NewVec3(4, 3, 2))))
	world := thing.Things{sphere}
	environment := integrator.PitchBlack{}
	return world, environment, defaultCamera()
}

// ReflectiveOnDiffuseFloor sits a mirrored sphere above a huge, barely
// curved sphere standing in for a diffuse floor, lit entirely by a gradient
// sky environment (no emissive geometry in the scene).
func ReflectiveOnDiffuseFloor() (thing.Thing, integrator.World, renderer.Camera) {
	floor := sphereAt(core.NewVec3(0, -1001, -5), 1000.0, material.NewConstantTexture(material.NewDiffusive(core.NewVec3(0.6, 0.6, 0.6))))
	ball := sphereAt(core.NewVec3(0, 0, -5), 1.0, material.NewConstantTexture(material.NewReflective(core.NewVec3(0.9, 0.9, 0.9))))
	world := thing.Things{floor, ball}
	environment := integrator.NewGradientWorld(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0))
	return world, environment, defaultCamera()
}

// RefractiveSphere places a glass sphere (index 1.5, the textbook value for
// crown glass) over the same diffuse floor as ReflectiveOnDiffuseFloor, so
// refraction, total internal reflection, and Schlick reflectance all show
// up against a lit background.
func RefractiveSphere() (thing.Thing, integrator.World, renderer.Camera) {
	floor := sphereAt(core.NewVec3(0, -1001, -5), 1000.0, material.NewConstantTexture(material.NewDiffusive(core.NewVec3(0.6, 0.6, 0.6))))
	glass := sphereAt(core.NewVec3(0, 0, -5), 1.0, material.NewConstantTexture(material.NewRefractive(core.White, 1.5)))
	world := thing.Things{floor, glass}
	environment := integrator.NewGradientWorld(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0))
	return world, environment, defaultCamera()
}

// CheckerSphere exercises the procedural CheckerTexture and MarbleTexture:
// a checkered floor under a marbled sphere, lit by a gradient sky.
func CheckerSphere() (thing.Thing, integrator.World, renderer.Camera) {
	checker := material.NewCheckerTexture(
		material.NewDiffusive(core.NewVec3(0.9, 0.9, 0.9)),
		material.NewDiffusive(core.NewVec3(0.1, 0.1, 0.1)),
		4.0,
	)
	floor := thing.NewTransformed(
		thing.NewAtomic(geometry.NewSphere(), checker, material.BlackTexture{}),
		transform.Scaling(1000.0, 1.0, 1000.0).ThenDisplacementOf(0, -1001, -5),
	)

	marbleField := noise.NewFractal(noise.Simple{}, core.Identity(), core.NewVec3(0.4, 0.5, 0.6), 1.0/math.Sqrt2, 6)
	marble := material.NewMarbleTexture(marbleField, core.NewVec3(0.9, 0.85, 0.8), 4.0)
	ball := sphereAt(core.NewVec3(0, 0, -5), 1.0, marble)

	world := thing.Things{floor, ball}
	environment := integrator.NewGradientWorld(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0))
	return world, environment, defaultCamera()
}

// Build assembles a named scene's world, environment, and camera into a
// ready-to-shoot PathTracer and Camera pair.
func Build(name string, depth int) (integrator.PathTracer, renderer.Camera, bool) {
	var world thing.Thing
	var environment integrator.World
	var camera renderer.Camera

	switch name {
	case "empty":
		world, environment, camera = Empty()
	case "emissive-sphere":
		world, environment, camera = EmissiveSphere()
	case "reflective-floor":
		world, environment, camera = ReflectiveOnDiffuseFloor()
	case "refractive-sphere":
		world, environment, camera = RefractiveSphere()
	case "checker-sphere":
		world, environment, camera = CheckerSphere()
	default:
		return integrator.PathTracer{}, renderer.Camera{}, false
	}

	if depth <= 0 {
		depth = defaultDepth
	}
	tracer := integrator.NewPathTracer(environment, world, depth, integrator.Omnidirectional{})
	return tracer, camera, true
}
