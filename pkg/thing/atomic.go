package thing

import (
	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/material"
)

// Atomic pairs a single Geometry with the two Textures on its outer and
// inner faces.
type Atomic struct {
	Geometry     geometry.Geometry
	OuterTexture material.Texture
	InnerTexture material.Texture
}

// NewAtomic returns an Atomic thing with the given geometry and face
// textures.
func NewAtomic(geom geometry.Geometry, outer, inner material.Texture) Atomic {
	return Atomic{Geometry: geom, OuterTexture: outer, InnerTexture: inner}
}

func (a Atomic) Shoot(ray core.Ray, min, max float64) (*MaterialHit, bool) {
	hit, ok := a.Geometry.Shoot(ray, min, max)
	if !ok {
		return nil, false
	}
	if hit.Outside {
		return &MaterialHit{Hit: hit, Geometry: a.Geometry, Texture: a.OuterTexture, OtherSideTexture: a.InnerTexture}, true
	}
	return &MaterialHit{Hit: hit, Geometry: a.Geometry, Texture: a.InnerTexture, OtherSideTexture: a.OuterTexture}, true
}
