package material

import (
	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
)

// ConstantTexture always resolves to the same Material, regardless of hit
// location.
type ConstantTexture struct {
	Inner Material
}

// NewConstantTexture wraps a material as a texture that never varies.
func NewConstantTexture(m Material) ConstantTexture {
	return ConstantTexture{Inner: m}
}

func (t ConstantTexture) Material(hit core.Hit, geom geometry.Geometry, otherSide Texture) Material {
	return t.Inner
}
