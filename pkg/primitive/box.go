package primitive

import (
	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Box is a logical cuboid built from six AARects, each flipped so its
// normal faces outward. Intersect keeps the closest of the six face hits.
type Box struct {
	faces [6]*AARect
	box   vec.AABB
}

// NewBox creates an axis-aligned cuboid between min and max.
func NewBox(min, max vec.Vec3, mat MaterialHandle) *Box {
	b := &Box{box: vec.AABB{Min: min, Max: max}}
	b.faces = [6]*AARect{
		NewAARect(AxisZ, min.Z, min.X, max.X, min.Y, max.Y, true, mat),
		NewAARect(AxisZ, max.Z, min.X, max.X, min.Y, max.Y, false, mat),
		NewAARect(AxisY, min.Y, min.X, max.X, min.Z, max.Z, true, mat),
		NewAARect(AxisY, max.Y, min.X, max.X, min.Z, max.Z, false, mat),
		NewAARect(AxisX, min.X, min.Y, max.Y, min.Z, max.Z, true, mat),
		NewAARect(AxisX, max.X, min.Y, max.Y, min.Z, max.Z, false, mat),
	}
	return b
}

// Intersect linearly scans the six faces, keeping the closest hit.
func (b *Box) Intersect(r vec.Ray, tMin, tMax float64, rg *rng.Stream) (Hit, bool) {
	var closest Hit
	found := false
	closestSoFar := tMax
	for _, face := range b.faces {
		if h, ok := face.Intersect(r, tMin, closestSoFar, rg); ok {
			found = true
			closestSoFar = h.T
			closest = h
		}
	}
	return closest, found
}

// BoundingBox returns the box's own bounds.
func (b *Box) BoundingBox() vec.AABB {
	return b.box
}
