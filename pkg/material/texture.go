package material

import (
	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
)

// Texture maps a hit to the Material that should respond to it. Passing the
// geometry lets a texture consult surface coordinates; passing the opposite
// face's texture lets Same delegate to it without the two textures needing
// to know about each other ahead of time.
type Texture interface {
	Material(hit core.Hit, geom geometry.Geometry, otherSide Texture) Material
}
