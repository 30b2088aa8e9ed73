package primitive

import (
	"math"

	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Sphere is centered at the local-frame origin with radius Radius.
type Sphere struct {
	Radius   float64
	Material MaterialHandle
}

// NewSphere creates a sphere of the given radius.
func NewSphere(radius float64, mat MaterialHandle) *Sphere {
	return &Sphere{Radius: radius, Material: mat}
}

// Intersect solves |O+tD|^2 = r^2 as a quadratic, preferring the smaller
// root within [tMin, tMax].
func (s *Sphere) Intersect(r vec.Ray, tMin, tMax float64, _ *rng.Stream) (Hit, bool) {
	oc := r.Origin
	a := r.Direction.Dot(r.Direction)
	halfB := oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := halfB*halfB - a*c
	if disc < 0 {
		return Hit{}, false
	}
	sqrtD := math.Sqrt(disc)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return Hit{}, false
		}
	}

	point := r.At(root)
	outwardNormal := point.Scale(1 / s.Radius)

	phi := math.Atan2(point.Z, point.X)
	theta := math.Asin(clamp(point.Y/s.Radius, -1, 1))
	uv := vec.NewVec2(1-(phi+math.Pi)/(2*math.Pi), (theta+math.Pi/2)/math.Pi)

	h := Hit{T: root, Point: point, UV: uv, Material: s.Material}
	h.SetFaceNormal(r, outwardNormal)
	return h, true
}

// BoundingBox returns the axis-aligned box enclosing the sphere.
func (s *Sphere) BoundingBox() vec.AABB {
	rad := vec.Splat(s.Radius)
	return vec.AABB{Min: rad.Negate(), Max: rad}
}

// DirFromUV inverts Sphere's UV parameterization, returning the unit
// direction for a given (u,v) pair. Used by the sphere_uv round-trip test.
func DirFromUV(u, v float64) vec.Vec3 {
	theta := v*math.Pi - math.Pi/2
	phi := (1-u)*2*math.Pi - math.Pi
	y := math.Sin(theta)
	r := math.Cos(theta)
	return vec.New(r*math.Cos(phi), y, r*math.Sin(phi))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
