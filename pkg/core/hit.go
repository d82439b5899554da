package core

// Hit records a ray-geometry intersection in whatever coordinate space it
// was produced in (local to a geometry, or global after a chain of
// transforms).
//
// Ray is not the original incoming ray: its origin has already been moved to
// the hit point, so Ray.Origin is the hit position and Ray.Direction is the
// incoming direction, ready to serve as the basis for a continuation ray.
//
// Normal need not be unit length; its magnitude can encode an
// importance-sampling weight (see the sphere geometry), and its sign encodes
// which side of the surface was struck: Outside is true when the ray struck
// the geometry's outward-facing side.
//
// LocalHit optionally points at the Hit before any world-space transform was
// applied, so that a procedural texture can sample local surface coordinates
// even after the geometry has been translated, scaled, or rotated into the
// scene. It is nil exactly for hits that are already local (no transform has
// touched them yet).
type Hit struct {
	Ray      Ray
	Normal   Vec3
	Distance float64
	Outside  bool
	LocalHit *Hit
}

// NewHit creates a Hit with no local-hit chain (i.e. one produced directly
// by a geometry, before any transform wraps it).
func NewHit(outside bool, normal Vec3, ray Ray, distance float64) Hit {
	return Hit{Ray: ray, Normal: normal, Distance: distance, Outside: outside}
}

// Local returns the local hit at the root of this hit's transform chain,
// which is the hit itself if it has none.
func (h Hit) Local() *Hit {
	if h.LocalHit != nil {
		return h.LocalHit
	}
	local := h
	local.LocalHit = nil
	return &local
}

// TransformedAs returns a copy of this hit re-expressed with a new ray and
// normal (as produced by a Transformation mapping this hit to its parent
// coordinate space), preserving distance, outside, and the local-hit chain.
func (h Hit) TransformedAs(ray Ray, normal Vec3) Hit {
	return Hit{
		Ray:      ray,
		Normal:   normal,
		Distance: h.Distance,
		Outside:  h.Outside,
		LocalHit: h.Local(),
	}
}
