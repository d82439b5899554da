// Package integrator implements the recursive Monte-Carlo path tracer:
// given a ray, it queries the scene for a hit, dispatches on the struck
// material's Effect, and recurses or terminates, falling back to an
// Environment when the ray escapes the scene.
package integrator

import "github.com/df07/go-progressive-raytracer/pkg/core"

// World returns a color for a ray that never hits anything in the scene
// (the background / sky).
type World interface {
	Trace(ray core.Ray) core.Vec3
}

// ConstantWorld returns the same color regardless of ray direction.
type ConstantWorld struct {
	Color core.Vec3
}

// NewConstantWorld returns a uniformly colored environment.
func NewConstantWorld(color core.Vec3) ConstantWorld {
	return ConstantWorld{Color: color}
}

func (w ConstantWorld) Trace(core.Ray) core.Vec3 {
	return w.Color
}

// PitchBlack is an environment contributing nothing.
type PitchBlack struct{}

func (PitchBlack) Trace(core.Ray) core.Vec3 {
	return core.Black
}

// GradientWorld blends between Bottom and Top based on the ray direction's
// vertical component, the familiar sky-dome backdrop.
type GradientWorld struct {
	Bottom, Top core.Vec3
}

// NewGradientWorld returns a vertical-gradient sky environment.
func NewGradientWorld(bottom, top core.Vec3) GradientWorld {
	return GradientWorld{Bottom: bottom, Top: top}
}

func (w GradientWorld) Trace(ray core.Ray) core.Vec3 {
	unit := ray.Direction.Unit()
	t := 0.5 * (unit.Y + 1.0)
	return w.Bottom.Multiply(1.0 - t).Add(w.Top.Multiply(t))
}
