package material

import (
	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
)

// SameTexture defers to the texture on the opposite face of the surface,
// substituting BlackTexture as that texture's own opposite-side reference
// so a pair of Same textures facing each other cannot recurse forever.
type SameTexture struct{}

func (SameTexture) Material(hit core.Hit, geom geometry.Geometry, otherSide Texture) Material {
	return otherSide.Material(hit, geom, BlackTexture{})
}
