package thing

import (
	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/transform"
)

// Transformed wraps a Thing so it is shot and hit in a different coordinate
// space: the ray is mapped to local space before the subject sees it, and
// the resulting hit is mapped back to global space before it's returned.
type Transformed struct {
	Subject        Thing
	Transformation transform.Transformation
}

// NewTransformed wraps subject so it is placed in the scene via t.
func NewTransformed(subject Thing, t transform.Transformation) Transformed {
	return Transformed{Subject: subject, Transformation: t}
}

func (t Transformed) Shoot(ray core.Ray, min, max float64) (*MaterialHit, bool) {
	localRay := t.Transformation.ToLocal(ray)
	localHit, ok := t.Subject.Shoot(localRay, min, max)
	if !ok {
		return nil, false
	}
	return &MaterialHit{
		Hit:              t.Transformation.ToGlobal(localHit.Hit),
		Geometry:         localHit.Geometry,
		Texture:          localHit.Texture,
		OtherSideTexture: localHit.OtherSideTexture,
	}, true
}
