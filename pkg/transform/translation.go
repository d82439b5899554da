package transform

import "github.com/df07/go-progressive-raytracer/pkg/core"

// Translation shifts the local origin by Displacement.
type Translation struct {
	Displacement core.Vec3
}

// NewTranslation returns a translation by (x, y, z).
func NewTranslation(x, y, z float64) Translation {
	return Translation{Displacement: core.NewVec3(x, y, z)}
}

func (t Translation) ToLocal(ray core.Ray) core.Ray {
	return ray.WithOrigin(ray.Origin.Subtract(t.Displacement))
}

func (t Translation) ToGlobal(hit core.Hit) core.Hit {
	ray := hit.Ray.WithOrigin(hit.Ray.Origin.Add(t.Displacement))
	return hit.Local().TransformedAs(ray, hit.Normal)
}

func (t Translation) ThenLinear(matrix core.Matrix3) Builder {
	return Affine{
		Linear:      NewLinear(matrix),
		Translation: Translation{Displacement: matrix.MultiplyVec(t.Displacement)},
	}
}

func (t Translation) ThenTranslation(displacement core.Vec3) Builder {
	return Translation{Displacement: displacement.Add(t.Displacement)}
}

func (t Translation) ThenScaling(x, y, z float64) Builder    { return thenScaling(t, x, y, z) }
func (t Translation) ThenOmniScaling(f float64) Builder      { return thenOmniScaling(t, f) }
func (t Translation) ThenRotation(axis core.Vec3, angle float64) Builder {
	return thenRotation(t, axis, angle)
}
func (t Translation) ThenDisplacementOf(x, y, z float64) Builder {
	return thenDisplacementOf(t, x, y, z)
}
