package material

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/noise"
)

// MarbleTexture modulates a diffusive base color with a sine-of-noise
// pattern, the classic marble/turbulence look: a Field perturbs a
// coordinate before it's fed to sin, rather than being used as the color
// directly, so the veins stay sharp instead of looking like plain noise.
type MarbleTexture struct {
	Field     noise.Field
	BaseColor core.Vec3
	Scale     float64
}

// NewMarbleTexture returns a marble-patterned texture driven by field.
func NewMarbleTexture(field noise.Field, baseColor core.Vec3, scale float64) MarbleTexture {
	return MarbleTexture{Field: field, BaseColor: baseColor, Scale: scale}
}

func (t MarbleTexture) Material(hit core.Hit, geom geometry.Geometry, otherSide Texture) Material {
	local := hit.Local()
	point := local.Ray.Origin
	turbulence := t.Field.ValueAt(point.Multiply(t.Scale))
	intensity := 0.5 * (1.0 + math.Sin(t.Scale*point.Z+10.0*turbulence))
	return NewDiffusive(t.BaseColor.Multiply(intensity))
}
