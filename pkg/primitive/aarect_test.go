package primitive

import (
	"testing"

	"github.com/ashgrove/firetrace/pkg/vec"
)

func TestAARect_RayParallelToPlaneMisses(t *testing.T) {
	rect := NewAARect(AxisZ, 0, -1, 1, -1, 1, false, 0)
	// Direction.Z == 0: the ray never reaches the rect's plane.
	r := vec.NewRay(vec.New(0, 0, 5), vec.New(1, 0, 0))

	if _, ok := rect.Intersect(r, 0.001, 1e9, nil); ok {
		t.Error("expected ray parallel to rect's plane to miss")
	}
}

func TestAARect_RayThroughCenterHits(t *testing.T) {
	rect := NewAARect(AxisZ, 0, -1, 1, -1, 1, false, 0)
	r := vec.NewRay(vec.New(0, 0, -5), vec.New(0, 0, 1))

	hit, ok := rect.Intersect(r, 0.001, 1e9, nil)
	if !ok {
		t.Fatal("expected ray through rect center to hit")
	}
	if hit.Normal != vec.New(0, 0, -1) {
		t.Errorf("front-facing normal = %v, want (0,0,-1) facing the incoming ray", hit.Normal)
	}
}

func TestAARect_RayOutsideExtentMisses(t *testing.T) {
	rect := NewAARect(AxisZ, 0, -1, 1, -1, 1, false, 0)
	r := vec.NewRay(vec.New(5, 5, -5), vec.New(0, 0, 1))

	if _, ok := rect.Intersect(r, 0.001, 1e9, nil); ok {
		t.Error("expected ray crossing the plane outside the rect's extent to miss")
	}
}

func TestAARect_FlipNormalReversesFrontFace(t *testing.T) {
	plain := NewAARect(AxisZ, 0, -1, 1, -1, 1, false, 0)
	flipped := NewAARect(AxisZ, 0, -1, 1, -1, 1, true, 0)
	r := vec.NewRay(vec.New(0, 0, -5), vec.New(0, 0, 1))

	plainHit, ok := plain.Intersect(r, 0.001, 1e9, nil)
	if !ok {
		t.Fatal("expected hit on unflipped rect")
	}
	flippedHit, ok := flipped.Intersect(r, 0.001, 1e9, nil)
	if !ok {
		t.Fatal("expected hit on flipped rect")
	}
	if plainHit.FrontFace == flippedHit.FrontFace {
		t.Error("flipping the outward normal should flip which face the ray is considered to hit")
	}
}

func TestAARect_BoundingBoxIsPaddedOnFlatAxis(t *testing.T) {
	rect := NewAARect(AxisY, 3, -2, 2, -2, 2, false, 0)
	box := rect.BoundingBox()
	if box.Min.Y >= 3 || box.Max.Y <= 3 {
		t.Errorf("BoundingBox() = %v, want a thin slab straddling Y=3", box)
	}
}
