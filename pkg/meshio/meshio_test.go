package meshio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ashgrove/firetrace/pkg/primitive"
)

// triangleGLTF is a minimal, self-contained glTF document: one mesh, one
// triangle primitive, positions and indices embedded as a base64 data URI
// buffer. No normals or UVs, exercising TriangleMesh's optional arrays.
const triangleGLTF = `{
  "asset": {"version": "2.0"},
  "buffers": [{
    "byteLength": 42,
    "uri": "data:application/octet-stream;base64,AAAAAAAAAAAAAAAAAACAPwAAAAAAAAAAAAAAAAAAgD8AAAAAAAABAAIA"
  }],
  "bufferViews": [
    {"buffer": 0, "byteOffset": 0, "byteLength": 36},
    {"buffer": 0, "byteOffset": 36, "byteLength": 6}
  ],
  "accessors": [
    {"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"},
    {"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
  ],
  "meshes": [{
    "primitives": [{
      "attributes": {"POSITION": 0},
      "indices": 1,
      "mode": 4
    }]
  }]
}`

func writeTempGLTF(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "triangle.gltf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp gltf: %v", err)
	}
	return path
}

func TestLoad_SingleTriangleHasExpectedVerticesAndIndices(t *testing.T) {
	path := writeTempGLTF(t, triangleGLTF)

	mesh, err := Load(path, primitive.MaterialHandle(3))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if mesh.NumTris() != 1 {
		t.Fatalf("NumTris() = %d, want 1", mesh.NumTris())
	}
	if len(mesh.Verts) != 3 {
		t.Fatalf("len(Verts) = %d, want 3", len(mesh.Verts))
	}
	if mesh.HasNormals || mesh.HasUVs {
		t.Error("mesh without normal/uv attributes should report HasNormals=false, HasUVs=false")
	}
	if mesh.Material != primitive.MaterialHandle(3) {
		t.Errorf("Material = %v, want 3", mesh.Material)
	}

	v0, v1, v2 := mesh.Verts[mesh.Indices[0]], mesh.Verts[mesh.Indices[1]], mesh.Verts[mesh.Indices[2]]
	if v0.X != 0 || v0.Y != 0 || v0.Z != 0 {
		t.Errorf("v0 = %v, want origin", v0)
	}
	if v1.X != 1 || v2.Y != 1 {
		t.Errorf("v1/v2 = %v/%v, want (1,0,0)/(0,1,0)", v1, v2)
	}
}

func TestLoad_MissingFileIsError(t *testing.T) {
	if _, err := Load("/nonexistent/path/to/mesh.gltf", primitive.MaterialHandle(0)); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoad_TriangleBoundingBoxContainsAllVertices(t *testing.T) {
	path := writeTempGLTF(t, triangleGLTF)

	mesh, err := Load(path, primitive.MaterialHandle(0))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	box := mesh.BoundingBox()
	for _, v := range mesh.Verts {
		if v.X < box.Min.X || v.X > box.Max.X || v.Y < box.Min.Y || v.Y > box.Max.Y {
			t.Errorf("vertex %v outside bounding box %v", v, box)
		}
	}
}
