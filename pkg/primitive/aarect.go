package primitive

import (
	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Axis identifies which coordinate an AARect holds constant.
type Axis int

// The three coordinate axes, named for readability at call sites that
// build AARects (e.g. the Box constructor).
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// other returns the two axes that are not a, in a fixed (a1, a2) order
// matching the X/Y/Z, X/Z/Y, Y/Z/X cyclic convention used throughout.
func (a Axis) other() (Axis, Axis) {
	switch a {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	default:
		return AxisX, AxisY
	}
}

// AARect is an axis-aligned rectangle held constant at value K along Plane,
// spanning [Min1,Max1] along the first other axis and [Min2,Max2] along the
// second. FlipNormal reverses the outward normal direction, used by Box to
// keep all six faces pointing outward.
type AARect struct {
	Plane                  Axis
	K                      float64
	Min1, Max1, Min2, Max2 float64
	FlipNormal             bool
	Material               MaterialHandle
}

// NewAARect creates a rectangle on the given plane.
func NewAARect(plane Axis, k, min1, max1, min2, max2 float64, flip bool, mat MaterialHandle) *AARect {
	return &AARect{Plane: plane, K: k, Min1: min1, Max1: max1, Min2: min2, Max2: max2, FlipNormal: flip, Material: mat}
}

// Intersect solves for the ray's parameter at the rectangle's plane, then
// rejects the hit if it falls outside the rectangle's extent.
func (q *AARect) Intersect(r vec.Ray, tMin, tMax float64, _ *rng.Stream) (Hit, bool) {
	a1, a2 := q.Plane.other()

	dPlane := vec.AxisValue(r.Direction, int(q.Plane))
	if dPlane == 0 {
		return Hit{}, false
	}
	t := (q.K - vec.AxisValue(r.Origin, int(q.Plane))) / dPlane
	if t < tMin || t > tMax {
		return Hit{}, false
	}

	p := r.At(t)
	v1 := vec.AxisValue(p, int(a1))
	v2 := vec.AxisValue(p, int(a2))
	if v1 < q.Min1 || v1 > q.Max1 || v2 < q.Min2 || v2 > q.Max2 {
		return Hit{}, false
	}

	uv := vec.NewVec2((v1-q.Min1)/(q.Max1-q.Min1), (v2-q.Min2)/(q.Max2-q.Min2))

	var outward vec.Vec3
	switch q.Plane {
	case AxisX:
		outward = vec.New(1, 0, 0)
	case AxisY:
		outward = vec.New(0, 1, 0)
	default:
		outward = vec.New(0, 0, 1)
	}
	if q.FlipNormal {
		outward = outward.Negate()
	}

	h := Hit{T: t, Point: p, UV: uv, Material: q.Material}
	h.SetFaceNormal(r, outward)
	return h, true
}

// BoundingBox returns the rectangle's box, padded on the flat plane axis.
func (q *AARect) BoundingBox() vec.AABB {
	const flatPad = 1e-4
	min := vec.Vec3{}
	max := vec.Vec3{}
	setAxis := func(v *vec.Vec3, axis Axis, val float64) {
		switch axis {
		case AxisX:
			v.X = val
		case AxisY:
			v.Y = val
		default:
			v.Z = val
		}
	}
	a1, a2 := q.Plane.other()
	setAxis(&min, q.Plane, q.K-flatPad)
	setAxis(&max, q.Plane, q.K+flatPad)
	setAxis(&min, a1, q.Min1)
	setAxis(&max, a1, q.Max1)
	setAxis(&min, a2, q.Min2)
	setAxis(&max, a2, q.Max2)
	return vec.AABB{Min: min, Max: max}
}
