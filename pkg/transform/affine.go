package transform

import "github.com/df07/go-progressive-raytracer/pkg/core"

// Affine composes a Linear map with a Translation, linear first: to_local
// strips the translation, then the linear map; to_global applies the linear
// map, then the translation.
type Affine struct {
	Linear      Linear
	Translation Translation
}

func (a Affine) ToLocal(ray core.Ray) core.Ray {
	return a.Linear.ToLocal(a.Translation.ToLocal(ray))
}

func (a Affine) ToGlobal(hit core.Hit) core.Hit {
	return a.Translation.ToGlobal(a.Linear.ToGlobal(hit))
}

func (a Affine) ThenLinear(matrix core.Matrix3) Builder {
	return Affine{
		Linear:      NewLinear(matrix.Multiply(a.Linear.Matrix)),
		Translation: Translation{Displacement: matrix.MultiplyVec(a.Translation.Displacement)},
	}
}

func (a Affine) ThenTranslation(displacement core.Vec3) Builder {
	return Affine{
		Linear:      a.Linear,
		Translation: Translation{Displacement: displacement.Add(a.Translation.Displacement)},
	}
}

func (a Affine) ThenScaling(x, y, z float64) Builder { return thenScaling(a, x, y, z) }
func (a Affine) ThenOmniScaling(f float64) Builder   { return thenOmniScaling(a, f) }
func (a Affine) ThenRotation(axis core.Vec3, angle float64) Builder {
	return thenRotation(a, axis, angle)
}
func (a Affine) ThenDisplacementOf(x, y, z float64) Builder {
	return thenDisplacementOf(a, x, y, z)
}
