package vec

import "math"

// AABB is an axis-aligned bounding box. The invariant Min <= Max
// componentwise holds for every AABB returned by a constructor in this
// package except EmptyAABB, whose Min is +Inf and Max is -Inf.
type AABB struct {
	Min, Max Vec3
}

// NewAABB builds an AABB from two arbitrary corner points, sorting each
// axis so the invariant Min <= Max holds.
func NewAABB(p, q Vec3) AABB {
	return AABB{
		Min: Vec3{math.Min(p.X, q.X), math.Min(p.Y, q.Y), math.Min(p.Z, q.Z)},
		Max: Vec3{math.Max(p.X, q.X), math.Max(p.Y, q.Y), math.Max(p.Z, q.Z)},
	}
}

// EmptyAABB returns a degenerate box suitable as the identity element for
// repeated Expand calls.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: Splat(inf), Max: Splat(-inf)}
}

// Expand returns the union of this box and another.
func (b AABB) Expand(o AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

// ExpandToPoint returns the union of this box and a single point.
func (b AABB) ExpandToPoint(p Vec3) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)},
		Max: Vec3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)},
	}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Pad returns a box expanded by delta in every direction — used to fix up
// primitives whose bounding box is degenerate (zero extent) on one axis,
// per the flat-primitive convention noted in the design notes.
func (b AABB) Pad(delta float64) AABB {
	d := Splat(delta)
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// AxisValue returns the component of v along the given axis (0=X, 1=Y, 2=Z).
func AxisValue(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hit performs the slab test, returning whether the ray intersects the box
// within [tMin, tMax]. Zero ray-direction components produce IEEE-754
// infinities through the division below, which resolve to the correct
// miss/hit behavior without a special case.
func (b AABB) Hit(r Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin := AxisValue(r.Origin, axis)
		dir := AxisValue(r.Direction, axis)
		lo := AxisValue(b.Min, axis)
		hi := AxisValue(b.Max, axis)

		invD := 1.0 / dir
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}
