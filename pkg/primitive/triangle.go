package primitive

import (
	"math"

	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Triangle indexes a single triangle of a shared TriangleMesh. It carries
// no vertex data of its own — meshes are usually large, and triangles need
// to stay cheap to store as BVH leaves.
type Triangle struct {
	Mesh  *TriangleMesh
	Index int // triangle index; vertex indices are Mesh.Indices[3*Index:3*Index+3]
}

// NewTriangle creates a Triangle referencing the k-th triangle of mesh.
func NewTriangle(mesh *TriangleMesh, k int) *Triangle {
	return &Triangle{Mesh: mesh, Index: k}
}

// Intersect implements the PBRT watertight ray/triangle test: translate by
// -origin, permute axes so |d| is largest along z, shear so the ray
// becomes (0,0,1), then test the sheared edge functions for a consistent
// sign. This avoids the epsilon-based edge cases that plague
// Möller–Trumbore at grazing angles.
func (t *Triangle) Intersect(r vec.Ray, tMin, tMax float64, _ *rng.Stream) (Hit, bool) {
	p0, p1, p2 := t.Mesh.triangleVerts(t.Index)

	// 1. Translate vertices relative to ray origin.
	p0t := p0.Sub(r.Origin)
	p1t := p1.Sub(r.Origin)
	p2t := p2.Sub(r.Origin)

	// 2. Permute so the largest-magnitude direction component is z.
	kz := maxDimIndex(r.Direction)
	kx := (kz + 1) % 3
	ky := (kx + 1) % 3

	d := permute(r.Direction, kx, ky, kz)
	p0t = permute(p0t, kx, ky, kz)
	p1t = permute(p1t, kx, ky, kz)
	p2t = permute(p2t, kx, ky, kz)

	// 3. Shear x,y by -d.x/d.z, -d.y/d.z and z by 1/d.z.
	if d.Z == 0 {
		return Hit{}, false
	}
	sx := -d.X / d.Z
	sy := -d.Y / d.Z
	sz := 1 / d.Z

	p0t.X += sx * p0t.Z
	p0t.Y += sy * p0t.Z
	p1t.X += sx * p1t.Z
	p1t.Y += sy * p1t.Z
	p2t.X += sx * p2t.Z
	p2t.Y += sy * p2t.Z

	// 4. Signed edge functions in sheared x,y.
	e0 := p1t.X*p2t.Y - p1t.Y*p2t.X
	e1 := p2t.X*p0t.Y - p2t.Y*p0t.X
	e2 := p0t.X*p1t.Y - p0t.Y*p1t.X

	if (e0 < 0 || e1 < 0 || e2 < 0) && (e0 > 0 || e1 > 0 || e2 > 0) {
		return Hit{}, false
	}
	det := e0 + e1 + e2
	if det == 0 {
		return Hit{}, false
	}

	// 5. Scale z by the shear factor only now, and validate t against the
	// caller's interval scaled by det (handling det's sign).
	p0t.Z *= sz
	p1t.Z *= sz
	p2t.Z *= sz
	tScaled := e0*p0t.Z + e1*p1t.Z + e2*p2t.Z

	if det < 0 && (tScaled >= tMin*det || tScaled < tMax*det) {
		return Hit{}, false
	}
	if det > 0 && (tScaled <= tMin*det || tScaled > tMax*det) {
		return Hit{}, false
	}

	invDet := 1 / det
	b0 := e0 * invDet
	b1 := e1 * invDet
	b2 := e2 * invDet
	tHit := tScaled * invDet

	point := p0.Scale(b0).Add(p1.Scale(b1)).Add(p2.Scale(b2))

	var uv vec.Vec2
	if t.Mesh.HasUVs {
		uv0, uv1, uv2 := t.Mesh.triangleUVs(t.Index)
		uv = vec.Vec2{
			X: b0*uv0.X + b1*uv1.X + b2*uv2.X,
			Y: b0*uv0.Y + b1*uv1.Y + b2*uv2.Y,
		}
	} else {
		uv = vec.NewVec2(b1, b2)
	}

	var outward vec.Vec3
	if t.Mesh.HasNormals {
		n0, n1, n2 := t.Mesh.triangleNormals(t.Index)
		outward = n0.Scale(b0).Add(n1.Scale(b1)).Add(n2.Scale(b2)).Normalize()
	} else {
		outward = p0.Sub(p2).Cross(p1.Sub(p2)).Normalize()
	}

	h := Hit{T: tHit, Point: point, UV: uv, Material: t.Mesh.Material}
	h.SetFaceNormal(r, outward)
	return h, true
}

// BoundingBox returns the triangle's own bounds in the mesh's local frame.
func (t *Triangle) BoundingBox() vec.AABB {
	p0, p1, p2 := t.Mesh.triangleVerts(t.Index)
	return vec.NewAABB(p0, p1).ExpandToPoint(p2)
}

func maxDimIndex(v vec.Vec3) int {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	if ax > ay && ax > az {
		return 0
	}
	if ay > az {
		return 1
	}
	return 2
}

func permute(v vec.Vec3, x, y, z int) vec.Vec3 {
	c := [3]float64{v.X, v.Y, v.Z}
	return vec.New(c[x], c[y], c[z])
}
