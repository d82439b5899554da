package thing

import "github.com/df07/go-progressive-raytracer/pkg/core"

// Things is a flat, unaccelerated list of Thing: every shoot does a linear
// scan, shrinking the search interval to the closest hit found so far.
type Things []Thing

func (ts Things) Shoot(ray core.Ray, min, max float64) (*MaterialHit, bool) {
	var closest *MaterialHit
	maxDistance := max
	for _, t := range ts {
		if hit, ok := t.Shoot(ray, min, maxDistance); ok {
			closest = hit
			maxDistance = hit.Hit.Distance
		}
	}
	return closest, closest != nil
}
