package primitive

import (
	"fmt"

	"github.com/ashgrove/firetrace/pkg/vec"
)

// TriangleMesh owns shared vertex/index/normal/UV data for a set of
// triangles. It implements Aggregate so a BVH can be built over it alone
// (see pkg/bvh), producing a mesh-local spatial index; the scene then
// wraps that BVH in an otherwise-identity render object (see pkg/scene).
type TriangleMesh struct {
	Verts      []vec.Vec3
	Indices    []int // len % 3 == 0
	Normals    []vec.Vec3
	UVs        []vec.Vec2
	HasNormals bool
	HasUVs     bool
	Material   MaterialHandle

	bbox vec.AABB
}

// NewTriangleMesh validates the array-length invariants and precomputes
// the mesh's bounding box. normals and uvs may be nil.
func NewTriangleMesh(verts []vec.Vec3, indices []int, normals []vec.Vec3, uvs []vec.Vec2, mat MaterialHandle) (*TriangleMesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("primitive: triangle mesh index count %d is not a multiple of 3", len(indices))
	}
	if normals != nil && len(normals) != len(verts) {
		return nil, fmt.Errorf("primitive: triangle mesh has %d vertices but %d normals", len(verts), len(normals))
	}
	if uvs != nil && len(uvs) != len(verts) {
		return nil, fmt.Errorf("primitive: triangle mesh has %d vertices but %d uvs", len(verts), len(uvs))
	}

	m := &TriangleMesh{
		Verts:      verts,
		Indices:    indices,
		Normals:    normals,
		UVs:        uvs,
		HasNormals: normals != nil,
		HasUVs:     uvs != nil,
		Material:   mat,
	}

	box := vec.EmptyAABB()
	for _, v := range verts {
		box = box.ExpandToPoint(v)
	}
	m.bbox = box

	return m, nil
}

// NumTris returns the number of triangles in the mesh.
func (m *TriangleMesh) NumTris() int {
	return len(m.Indices) / 3
}

// Len implements Aggregate.
func (m *TriangleMesh) Len() int { return m.NumTris() }

// At implements Aggregate, materializing the k-th triangle.
func (m *TriangleMesh) At(k int) Shape { return NewTriangle(m, k) }

// BoundingBox returns the bounds of every vertex in the mesh.
func (m *TriangleMesh) BoundingBox() vec.AABB { return m.bbox }

func (m *TriangleMesh) triangleVerts(k int) (vec.Vec3, vec.Vec3, vec.Vec3) {
	i0, i1, i2 := m.Indices[3*k], m.Indices[3*k+1], m.Indices[3*k+2]
	return m.Verts[i0], m.Verts[i1], m.Verts[i2]
}

func (m *TriangleMesh) triangleNormals(k int) (vec.Vec3, vec.Vec3, vec.Vec3) {
	i0, i1, i2 := m.Indices[3*k], m.Indices[3*k+1], m.Indices[3*k+2]
	return m.Normals[i0], m.Normals[i1], m.Normals[i2]
}

func (m *TriangleMesh) triangleUVs(k int) (vec.Vec2, vec.Vec2, vec.Vec2) {
	i0, i1, i2 := m.Indices[3*k], m.Indices[3*k+1], m.Indices[3*k+2]
	return m.UVs[i0], m.UVs[i1], m.UVs[i2]
}
