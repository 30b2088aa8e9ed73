package primitive

import (
	"math"

	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Disk lies in the local XZ plane, facing +y, between InnerRadius and
// Radius, spanning angle [0, MaxPhi).
type Disk struct {
	Radius, InnerRadius, MaxPhi float64
	Material                    MaterialHandle
}

// NewDisk creates a disk; InnerRadius of 0 yields a solid disk.
func NewDisk(radius, innerRadius, maxPhi float64, mat MaterialHandle) *Disk {
	return &Disk{Radius: radius, InnerRadius: innerRadius, MaxPhi: maxPhi, Material: mat}
}

// Intersect solves t = -Oy/Dy and rejects hits outside the annulus or
// angular sector.
func (d *Disk) Intersect(r vec.Ray, tMin, tMax float64, _ *rng.Stream) (Hit, bool) {
	if r.Direction.Y == 0 {
		return Hit{}, false
	}
	t := -r.Origin.Y / r.Direction.Y
	if t < tMin || t > tMax {
		return Hit{}, false
	}

	p := r.At(t)
	dist := math.Hypot(p.X, p.Z)
	if dist < d.InnerRadius || dist > d.Radius {
		return Hit{}, false
	}
	phi := wrapPhi(math.Atan2(p.Z, p.X))
	if phi < 0 || phi >= d.MaxPhi {
		return Hit{}, false
	}

	uv := vec.NewVec2(phi/d.MaxPhi, 1-(dist-d.InnerRadius)/(d.Radius-d.InnerRadius))
	h := Hit{T: t, Point: p, UV: uv, Material: d.Material}
	h.SetFaceNormal(r, vec.New(0, 1, 0))
	return h, true
}

// BoundingBox returns a box padded on the flat Y axis by a small epsilon,
// per the design note that a zero-thickness bounding box degrades BVH
// slab tests.
func (d *Disk) BoundingBox() vec.AABB {
	const flatPad = 1e-4
	return vec.AABB{
		Min: vec.New(-d.Radius, -flatPad, -d.Radius),
		Max: vec.New(d.Radius, flatPad, d.Radius),
	}
}
