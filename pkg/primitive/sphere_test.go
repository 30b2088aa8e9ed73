package primitive

import (
	"math"
	"testing"

	"github.com/ashgrove/firetrace/pkg/vec"
)

func TestSphere_UVRoundTripsThroughDirFromUV(t *testing.T) {
	uvs := [][2]float64{
		{0.1, 0.2},
		{0.5, 0.5},
		{0.75, 0.9},
		{0.99, 0.01},
	}
	s := NewSphere(1, 0)

	for _, c := range uvs {
		dir := DirFromUV(c[0], c[1])
		r := vec.NewRay(dir.Scale(5), dir.Negate())

		hit, ok := s.Intersect(r, 0.001, 1e9, nil)
		if !ok {
			t.Fatalf("uv=%v: expected ray back along DirFromUV to hit sphere", c)
		}
		if math.Abs(hit.UV.X-c[0]) > 1e-6 || math.Abs(hit.UV.Y-c[1]) > 1e-6 {
			t.Errorf("uv=%v: round-tripped to %v", c, hit.UV)
		}
	}
}

func TestSphere_TangentRayGrazesWithoutDoubleHit(t *testing.T) {
	s := NewSphere(1, 0)
	// A ray at x=1 travelling along the Z axis is tangent: exactly one
	// root of the quadratic, not two independent intersections.
	r := vec.NewRay(vec.New(1, 0, -5), vec.New(0, 0, 1))

	hit, ok := s.Intersect(r, 0.001, 1e9, nil)
	if !ok {
		t.Fatal("expected tangent ray to register a grazing hit")
	}
	if math.Abs(hit.Point.X-1) > 1e-6 {
		t.Errorf("tangent hit point = %v, want X=1", hit.Point)
	}
}

func TestSphere_RayMissingEntirelyReportsNoHit(t *testing.T) {
	s := NewSphere(1, 0)
	r := vec.NewRay(vec.New(5, 5, -5), vec.New(0, 0, 1))

	if _, ok := s.Intersect(r, 0.001, 1e9, nil); ok {
		t.Error("expected ray well outside sphere's radius to miss")
	}
}

func TestSphere_BoundingBoxIsCenteredCube(t *testing.T) {
	s := NewSphere(2, 0)
	box := s.BoundingBox()
	want := vec.New(-2, -2, -2)
	if box.Min != want || box.Max != want.Negate() {
		t.Errorf("BoundingBox() = %v, want min=%v max=%v", box, want, want.Negate())
	}
}
