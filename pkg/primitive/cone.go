package primitive

import (
	"math"

	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Cone has its apex at y=Height and base radius Radius at y=0: the
// half-angle relation r*(1-y/h) = sqrt(x^2+z^2) holds at every height.
type Cone struct {
	Radius, Height float64
	Material       MaterialHandle
}

// NewCone creates a cone of the given base radius and height.
func NewCone(radius, height float64, mat MaterialHandle) *Cone {
	return &Cone{Radius: radius, Height: height, Material: mat}
}

// Intersect solves the cone quadratic derived by substituting the
// half-angle relation into x^2+z^2 = (r*(1-y/h))^2.
func (c *Cone) Intersect(r vec.Ray, tMin, tMax float64, _ *rng.Stream) (Hit, bool) {
	k := c.Radius / c.Height
	k2 := k * k

	ox, oy, oz := r.Origin.X, r.Origin.Y, r.Origin.Z
	dx, dy, dz := r.Direction.X, r.Direction.Y, r.Direction.Z

	// x^2+z^2 - k^2*(h-y)^2 = 0
	hy0 := c.Height - oy
	a := dx*dx + dz*dz - k2*dy*dy
	b := 2*(dx*ox+dz*oz) + 2*k2*dy*hy0
	cc := ox*ox + oz*oz - k2*hy0*hy0

	if math.Abs(a) < 1e-12 {
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
		dpdu := vec.New(-p.Z, 0, p.X)
		v := p.Y / c.Height
		dpdv := vec.New(-p.X/(1-v), c.Height, -p.Z/(1-v))
		outwardNormal := dpdu.Cross(dpdv).Normalize()

		phi := wrapPhi(math.Atan2(p.Z, p.X))
		uv := vec.NewVec2(phi/(2*math.Pi), v)

		h := Hit{T: root, Point: p, UV: uv, Material: c.Material}
		h.SetFaceNormal(r, outwardNormal)
		return h, true
	}
	return Hit{}, false
}

// BoundingBox returns the box enclosing the cone.
func (c *Cone) BoundingBox() vec.AABB {
	return vec.AABB{
		Min: vec.New(-c.Radius, 0, -c.Radius),
		Max: vec.New(c.Radius, c.Height, c.Radius),
	}
}
