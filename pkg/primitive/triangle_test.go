package primitive

import (
	"testing"

	"github.com/ashgrove/firetrace/pkg/vec"
)

func newMesh(t *testing.T, indices []int) *TriangleMesh {
	t.Helper()
	verts := []vec.Vec3{
		vec.New(-1, -1, 0),
		vec.New(1, -1, 0),
		vec.New(0, 1, 0),
	}
	mesh, err := NewTriangleMesh(verts, indices, nil, nil, 0)
	if err != nil {
		t.Fatalf("NewTriangleMesh() error = %v", err)
	}
	return mesh
}

func TestTriangle_CounterClockwiseWindingHits(t *testing.T) {
	mesh := newMesh(t, []int{0, 1, 2})
	tri := NewTriangle(mesh, 0)
	r := vec.NewRay(vec.New(0, 0, -5), vec.New(0, 0, 1))

	hit, ok := tri.Intersect(r, 0.001, 1e9, nil)
	if !ok {
		t.Fatal("expected ray through triangle center to hit regardless of winding")
	}
	if hit.Normal.Dot(r.Direction) >= 0 {
		t.Errorf("normal %v does not point against incoming ray %v", hit.Normal, r.Direction)
	}
}

func TestTriangle_ClockwiseWindingHits(t *testing.T) {
	mesh := newMesh(t, []int{0, 2, 1})
	tri := NewTriangle(mesh, 0)
	r := vec.NewRay(vec.New(0, 0, -5), vec.New(0, 0, 1))

	hit, ok := tri.Intersect(r, 0.001, 1e9, nil)
	if !ok {
		t.Fatal("expected ray through triangle center to hit regardless of winding")
	}
	if hit.Normal.Dot(r.Direction) >= 0 {
		t.Errorf("normal %v does not point against incoming ray %v", hit.Normal, r.Direction)
	}
}

func TestTriangle_RayMissingTriangleReportsNoHit(t *testing.T) {
	mesh := newMesh(t, []int{0, 1, 2})
	tri := NewTriangle(mesh, 0)
	r := vec.NewRay(vec.New(5, 5, -5), vec.New(0, 0, 1))

	if _, ok := tri.Intersect(r, 0.001, 1e9, nil); ok {
		t.Error("expected ray outside triangle's extent to miss")
	}
}

func TestTriangle_BoundingBoxContainsAllVertices(t *testing.T) {
	mesh := newMesh(t, []int{0, 1, 2})
	tri := NewTriangle(mesh, 0)
	box := tri.BoundingBox()

	for _, v := range mesh.Verts {
		if v.X < box.Min.X || v.X > box.Max.X || v.Y < box.Min.Y || v.Y > box.Max.Y {
			t.Errorf("bounding box %v does not contain vertex %v", box, v)
		}
	}
}
