package noise

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Fractal layers a base Field at successively transformed scales (fractal
// Brownian motion). Each octave contributes Fraction times the previous
// one's weight; scalar normalizes the geometric series so the total output
// stays in roughly the same range as a single octave of Base.
type Fractal struct {
	Base           Field
	Transformation core.Matrix3
	Displacement   core.Vec3
	Fraction       float64
	Depth          int

	scalar float64
}

// NewFractal builds a Fractal noise field. Transformation and Displacement
// are applied to the sample point between octaves (typically a scale-up
// plus a fixed offset, so octaves don't share lattice alignment).
func NewFractal(base Field, transformation core.Matrix3, displacement core.Vec3, fraction float64, depth int) Fractal {
	return Fractal{
		Base:           base,
		Transformation: transformation,
		Displacement:   displacement,
		Fraction:       fraction,
		Depth:          depth,
		scalar:         (1.0 - fraction) / (1.0 - math.Pow(fraction, float64(depth+1))),
	}
}

func (f Fractal) ValueAt(point core.Vec3) float64 {
	return f.scalar * f.recursiveValueAt(point, f.Depth)
}

func (f Fractal) recursiveValueAt(point core.Vec3, depth int) float64 {
	result := f.Base.ValueAt(point)
	if depth == 0 {
		return result
	}
	next := f.Transformation.MultiplyVec(point).Add(f.Displacement)
	return result + f.Fraction*f.recursiveValueAt(next, depth-1)
}
