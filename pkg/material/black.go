package material

import (
	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
)

// BlackTexture resolves to Absorptive. It is the sentinel substituted for
// an opposite-face texture so Same never recurses through itself.
type BlackTexture struct{}

func (BlackTexture) Material(core.Hit, geometry.Geometry, Texture) Material {
	return Absorptive{}
}
