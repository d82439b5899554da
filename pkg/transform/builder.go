package transform

import "github.com/df07/go-progressive-raytracer/pkg/core"

// linearThenable is implemented by every Builder whose ThenLinear composes a
// new linear map onto the front of the transform chain.
type linearThenable interface {
	ThenLinear(matrix core.Matrix3) Builder
}

// translationThenable is implemented by every Builder whose ThenTranslation
// composes a new displacement onto the front of the transform chain.
type translationThenable interface {
	ThenTranslation(displacement core.Vec3) Builder
}

func thenScaling(t linearThenable, x, y, z float64) Builder {
	return t.ThenLinear(core.Diagonal(x, y, z))
}

func thenOmniScaling(t linearThenable, f float64) Builder {
	return thenScaling(t, f, f, f)
}

func thenRotation(t linearThenable, axis core.Vec3, angle float64) Builder {
	return t.ThenLinear(core.Rotation(axis, angle))
}

func thenDisplacementOf(t translationThenable, x, y, z float64) Builder {
	return t.ThenTranslation(core.NewVec3(x, y, z))
}
