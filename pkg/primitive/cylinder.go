package primitive

import (
	"math"

	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Cylinder is vertical, base at y=0, extending to y=Height, with angular
// extent MaxPhi in (0, 2*pi].
type Cylinder struct {
	Radius, Height, MaxPhi float64
	Material               MaterialHandle
}

// NewCylinder creates a cylinder. maxPhi of 2*pi yields a full cylinder.
func NewCylinder(radius, height, maxPhi float64, mat MaterialHandle) *Cylinder {
	return &Cylinder{Radius: radius, Height: height, MaxPhi: maxPhi, Material: mat}
}

func wrapPhi(phi float64) float64 {
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return phi
}

// Intersect solves the infinite-cylinder quadratic in the XZ plane, then
// rejects roots outside the finite height or angular sector.
func (c *Cylinder) Intersect(r vec.Ray, tMin, tMax float64, _ *rng.Stream) (Hit, bool) {
	dx, dz := r.Direction.X, r.Direction.Z
	ox, oz := r.Origin.X, r.Origin.Z

	a := dx*dx + dz*dz
	b := 2 * (dx*ox + dz*oz)
	cc := ox*ox + oz*oz - c.Radius*c.Radius

	if a == 0 {
		return Hit{}, false
	}

	disc := b*b - 4*a*cc
	if disc < 0 {
		return Hit{}, false
	}
	sqrtD := math.Sqrt(disc)

	for _, root := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if root < tMin || root > tMax {
			continue
		}
		p := r.At(root)
		if p.Y <= 0 || p.Y >= c.Height {
			continue
		}
		phi := wrapPhi(math.Atan2(p.Z, p.X))
		if phi < 0 || phi >= c.MaxPhi {
			continue
		}
		uv := vec.NewVec2(phi/c.MaxPhi, p.Y/c.Height)
		outwardNormal := vec.New(p.X/c.Radius, 0, p.Z/c.Radius)
		h := Hit{T: root, Point: p, UV: uv, Material: c.Material}
		h.SetFaceNormal(r, outwardNormal)
		return h, true
	}
	return Hit{}, false
}

// BoundingBox returns the box enclosing the (possibly partial) cylinder.
func (c *Cylinder) BoundingBox() vec.AABB {
	return vec.AABB{
		Min: vec.New(-c.Radius, 0, -c.Radius),
		Max: vec.New(c.Radius, c.Height, c.Radius),
	}
}
