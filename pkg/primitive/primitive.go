// Package primitive implements the closed set of ray-hittable shapes. Each
// shape is expressed in its own canonical local frame — a sphere is always
// centered at the origin, a cylinder is always vertical with its base at
// y=0 — and knows nothing about world position; that is the render
// object's job (see pkg/scene).
package primitive

import (
	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// MaterialHandle is a stable, opaque index into a Scene's material pool.
// The pool is append-only, so a handle captured at scene-construction time
// remains valid for the scene's entire lifetime.
type MaterialHandle int

// Hit records a ray/primitive intersection in local-frame coordinates; the
// render object that owns the primitive transforms it into world space.
type Hit struct {
	T         float64
	Point     vec.Vec3
	Normal    vec.Vec3 // points against the incoming ray (front-facing)
	FrontFace bool
	UV        vec.Vec2
	Material  MaterialHandle
}

// SetFaceNormal orients Normal to point against the ray and records
// whether the front face (the side the outward normal faces) was hit.
func (h *Hit) SetFaceNormal(r vec.Ray, outwardNormal vec.Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is the closed interface every primitive variant implements:
// Sphere, Cylinder, Cone, Disk, AARect, Box, TriangleMesh/Triangle and
// ConstantMedium.
type Shape interface {
	// Intersect tests the shape against a ray restricted to [tMin, tMax]
	// in the shape's local frame. rng is only consumed by ConstantMedium's
	// distance sampling; every other shape ignores it.
	Intersect(r vec.Ray, tMin, tMax float64, rng *rng.Stream) (Hit, bool)
	// BoundingBox returns the shape's local-frame axis-aligned bounds.
	BoundingBox() vec.AABB
}

// Aggregate is anything that can be indexed as a flat list of shapes — the
// BVH builds over this interface so it can equally accelerate a scene's
// top-level render-object list or a single mesh's triangle list.
type Aggregate interface {
	Len() int
	At(i int) Shape
}
