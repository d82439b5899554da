package transform

import "github.com/df07/go-progressive-raytracer/pkg/core"

// Linear applies a 3x3 matrix about the local origin. The anti-matrix and
// inverse determinant are precomputed once so ToLocal never inverts the
// matrix directly: v*AntiMatrix*(1/Det) equals inverse(Matrix)*v.
type Linear struct {
	Matrix     core.Matrix3
	AntiMatrix core.Matrix3
	Factor     float64
}

// NewLinear precomputes the anti-matrix and determinant of matrix.
func NewLinear(matrix core.Matrix3) Linear {
	anti := matrix.AntiMatrix()
	det := matrix.X.Dot(anti.X)
	return Linear{Matrix: matrix, AntiMatrix: anti, Factor: 1.0 / det}
}

// Scaling returns a linear transform scaling each axis independently.
func Scaling(x, y, z float64) Linear {
	return NewLinear(core.Diagonal(x, y, z))
}

// OmniScaling returns a linear transform scaling all axes uniformly by f.
func OmniScaling(f float64) Linear {
	return Scaling(f, f, f)
}

// RotationLinear returns a linear transform rotating by angle around axis.
func RotationLinear(axis core.Vec3, angle float64) Linear {
	return NewLinear(core.Rotation(axis, angle))
}

func (l Linear) ToLocal(ray core.Ray) core.Ray {
	origin := l.AntiMatrix.VecMultiply(ray.Origin).Multiply(l.Factor)
	direction := l.AntiMatrix.VecMultiply(ray.Direction).Multiply(l.Factor)
	return core.NewRay(origin, direction, ray.Time)
}

func (l Linear) ToGlobal(hit core.Hit) core.Hit {
	origin := l.Matrix.MultiplyVec(hit.Ray.Origin)
	direction := l.Matrix.MultiplyVec(hit.Ray.Direction)
	ray := core.NewRay(origin, direction, hit.Ray.Time)
	return hit.Local().TransformedAs(ray, l.AntiMatrix.MultiplyVec(hit.Normal))
}

func (l Linear) ThenLinear(matrix core.Matrix3) Builder {
	return NewLinear(matrix.Multiply(l.Matrix))
}

func (l Linear) ThenTranslation(displacement core.Vec3) Builder {
	return Affine{Linear: l, Translation: Translation{Displacement: displacement}}
}

func (l Linear) ThenScaling(x, y, z float64) Builder { return thenScaling(l, x, y, z) }
func (l Linear) ThenOmniScaling(f float64) Builder   { return thenOmniScaling(l, f) }
func (l Linear) ThenRotation(axis core.Vec3, angle float64) Builder {
	return thenRotation(l, axis, angle)
}
func (l Linear) ThenDisplacementOf(x, y, z float64) Builder {
	return thenDisplacementOf(l, x, y, z)
}
