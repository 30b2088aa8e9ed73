package primitive

import (
	"testing"

	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

func TestConstantMedium_RayThroughBoundsScattersSomewhereInside(t *testing.T) {
	boundary := NewSphere(1, 0)
	// A very high density makes the sampled scatter distance negligible
	// compared to the segment length for essentially any draw of u, so the
	// hit outcome doesn't depend on the stream's seed.
	medium := NewConstantMedium(boundary, 1e6, 0)
	r := vec.NewRay(vec.New(0, 0, -5), vec.New(0, 0, 1))
	stream := rng.New(1)

	hit, ok := medium.Intersect(r, 0.001, 1e9, stream)
	if !ok {
		t.Fatal("expected a dense medium to scatter a ray passing through its boundary")
	}
	if hit.T < 4 || hit.T > 6 {
		t.Errorf("scatter t=%v, want within the [entry,exit] segment around the sphere", hit.T)
	}
}

func TestConstantMedium_RayMissingBoundaryNeverScatters(t *testing.T) {
	boundary := NewSphere(1, 0)
	medium := NewConstantMedium(boundary, 1, 0)
	r := vec.NewRay(vec.New(5, 5, -5), vec.New(0, 0, 1))
	stream := rng.New(1)

	if _, ok := medium.Intersect(r, 0.001, 1e9, stream); ok {
		t.Error("expected ray missing the boundary entirely to never scatter")
	}
}

func TestConstantMedium_BoundingBoxDelegatesToBoundary(t *testing.T) {
	boundary := NewSphere(3, 0)
	medium := NewConstantMedium(boundary, 1, 0)
	if medium.BoundingBox() != boundary.BoundingBox() {
		t.Errorf("BoundingBox() = %v, want boundary's own box %v", medium.BoundingBox(), boundary.BoundingBox())
	}
}
