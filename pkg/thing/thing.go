// Package thing assembles a Geometry with the pair of Textures on its two
// faces into something the renderer can shoot rays at, and composes many of
// them into scenes via Things (a flat list) and Transformed (arbitrary
// placement).
package thing

import (
	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/material"
)

// MaterialHit is a geometric hit paired with the texture that applies to
// the face that was struck, and the texture on the opposite face (needed by
// SameTexture to resolve itself).
type MaterialHit struct {
	Hit              core.Hit
	Geometry         geometry.Geometry
	Texture          material.Texture
	OtherSideTexture material.Texture
}

// Thing is something a ray can hit in the scene, resolving to both a
// geometric hit and the texture that should shade it.
type Thing interface {
	Shoot(ray core.Ray, min, max float64) (*MaterialHit, bool)
}
