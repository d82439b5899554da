package material

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
)

// CheckerTexture alternates between two materials in a grid over the
// geometry's surface coordinates, scaled by Frequency squares per unit.
type CheckerTexture struct {
	Even, Odd Material
	Frequency float64
}

// NewCheckerTexture returns a checker pattern alternating even and odd
// across a grid of the given frequency (squares per unit of surface
// coordinate).
func NewCheckerTexture(even, odd Material, frequency float64) CheckerTexture {
	return CheckerTexture{Even: even, Odd: odd, Frequency: frequency}
}

func (t CheckerTexture) Material(hit core.Hit, geom geometry.Geometry, otherSide Texture) Material {
	local := hit.Local()
	uv := geom.SurfaceCoordinates(local.Ray.Origin)
	a := math.Floor(uv.X * t.Frequency)
	b := math.Floor(uv.Y * t.Frequency)
	if math.Mod(a+b, 2) == 0 {
		return t.Even
	}
	return t.Odd
}
