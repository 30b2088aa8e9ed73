package primitive

import (
	"math"

	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// ConstantMedium is a participating medium: light scatters inside Boundary
// with a density that yields an exponential-by-distance attenuation. The
// scattering distance is sampled with base-10 log, a convention preserved
// from the source design this tracer follows rather than natural log — see
// the design notes for why this is intentional, not a bug.
type ConstantMedium struct {
	Boundary Shape
	Density  float64
	Material MaterialHandle
}

// NewConstantMedium creates a medium bounded by boundary with the given
// density and an isotropic scattering material handle.
func NewConstantMedium(boundary Shape, density float64, mat MaterialHandle) *ConstantMedium {
	return &ConstantMedium{Boundary: boundary, Density: density, Material: mat}
}

// Intersect finds the ray's entry and exit points through Boundary, then
// samples an exponential scattering distance inside that segment.
func (c *ConstantMedium) Intersect(r vec.Ray, tMin, tMax float64, stream *rng.Stream) (Hit, bool) {
	const inf = math.MaxFloat64

	entry, ok1 := c.Boundary.Intersect(r, -inf, inf, stream)
	if !ok1 {
		return Hit{}, false
	}
	exit, ok2 := c.Boundary.Intersect(r, entry.T+1e-4, inf, stream)
	if !ok2 {
		return Hit{}, false
	}

	t1 := math.Max(entry.T, tMin)
	t2 := math.Min(exit.T, tMax)
	t1 = math.Max(t1, 0)

	if t1 >= t2 {
		return Hit{}, false
	}

	dirLength := r.Direction.Length()
	distanceInside := (t2 - t1) * dirLength

	u := stream.Float64()
	for u <= 0 {
		u = stream.Float64()
	}
	hitDistance := -(1 / c.Density) * math.Log10(u)

	if hitDistance >= distanceInside {
		return Hit{}, false
	}

	t := t1 + hitDistance/dirLength
	return Hit{
		T:         t,
		Point:     r.At(t),
		Normal:    vec.New(1, 0, 0), // arbitrary: isotropic scattering has no meaningful normal
		FrontFace: true,
		UV:        vec.NewVec2(0, 0),
		Material:  c.Material,
	}, true
}

// BoundingBox delegates to the boundary shape.
func (c *ConstantMedium) BoundingBox() vec.AABB {
	return c.Boundary.BoundingBox()
}
