// Package scene holds the append-only scene graph: positioned render
// objects, the material and mesh pools they reference, and the
// environment background. A Scene is built sequentially by configuration
// code (see pkg/sceneio) and never mutated again once the renderer
// consumes it.
package scene

import (
	"github.com/ashgrove/firetrace/pkg/bvh"
	"github.com/ashgrove/firetrace/pkg/env"
	"github.com/ashgrove/firetrace/pkg/material"
	"github.com/ashgrove/firetrace/pkg/primitive"
	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// RenderObject wraps a local-frame primitive with a world position and
// rotation. Rotation is stored as both the forward matrix and its inverse
// (the transpose, since rotation matrices are orthonormal) so the hot path
// never inverts a matrix per ray.
type RenderObject struct {
	Inner       primitive.Shape
	Position    vec.Vec3
	Rotation    vec.Rotor
	FlipNormals bool

	rotMat    vec.Mat3
	invRotMat vec.Mat3
	worldBox  vec.AABB
}

// NewRenderObject places inner at position with the given rotation,
// computing and caching its world-space bounding box.
func NewRenderObject(inner primitive.Shape, position vec.Vec3, rotation vec.Rotor) *RenderObject {
	ro := &RenderObject{Inner: inner, Position: position, Rotation: rotation}
	ro.recompute()
	return ro
}

// SetTransform repositions and re-rotates ro, recomputing its cached
// rotation matrices and world bounding box. Used to place a mesh's
// identity-rooted RenderObject (see AddMesh) after the fact.
func (ro *RenderObject) SetTransform(position vec.Vec3, rotation vec.Rotor) {
	ro.Position = position
	ro.Rotation = rotation
	ro.recompute()
}

func (ro *RenderObject) recompute() {
	ro.rotMat = ro.Rotation.ToMat3()
	ro.invRotMat = ro.rotMat.Transpose()
	ro.worldBox = worldBoundingBox(ro.Inner.BoundingBox(), ro.Position, ro.rotMat)
}

// worldBoundingBox transforms the 8 corners of a local AABB by the given
// rotation and translation, taking the componentwise min/max of the
// results.
func worldBoundingBox(local vec.AABB, position vec.Vec3, rot vec.Mat3) vec.AABB {
	corners := [8]vec.Vec3{
		vec.New(local.Min.X, local.Min.Y, local.Min.Z),
		vec.New(local.Min.X, local.Min.Y, local.Max.Z),
		vec.New(local.Min.X, local.Max.Y, local.Min.Z),
		vec.New(local.Min.X, local.Max.Y, local.Max.Z),
		vec.New(local.Max.X, local.Min.Y, local.Min.Z),
		vec.New(local.Max.X, local.Min.Y, local.Max.Z),
		vec.New(local.Max.X, local.Max.Y, local.Min.Z),
		vec.New(local.Max.X, local.Max.Y, local.Max.Z),
	}

	box := vec.EmptyAABB()
	for _, c := range corners {
		world := rot.MulVec3(c).Add(position)
		box = box.ExpandToPoint(world)
	}
	return box
}

// BoundingBox implements primitive.Shape, returning the cached world AABB.
func (ro *RenderObject) BoundingBox() vec.AABB {
	return ro.worldBox
}

// Intersect implements primitive.Shape. A rotation is only applied when it
// is significant (its matrix trace deviates meaningfully from identity);
// otherwise only the translation is undone, skipping a matrix multiply on
// the overwhelmingly common axis-aligned case.
func (ro *RenderObject) Intersect(r vec.Ray, tMin, tMax float64, stream *rng.Stream) (primitive.Hit, bool) {
	var localRay vec.Ray
	significant := !ro.rotMat.IsNearIdentity()
	if significant {
		localRay = vec.NewRay(
			ro.invRotMat.MulVec3(r.Origin.Sub(ro.Position)),
			ro.invRotMat.MulVec3(r.Direction),
		)
	} else {
		localRay = vec.NewRay(r.Origin.Sub(ro.Position), r.Direction)
	}

	hit, ok := ro.Inner.Intersect(localRay, tMin, tMax, stream)
	if !ok {
		return primitive.Hit{}, false
	}

	if significant {
		hit.Point = ro.rotMat.MulVec3(hit.Point).Add(ro.Position)
		hit.Normal = ro.rotMat.MulVec3(hit.Normal)
	} else {
		hit.Point = hit.Point.Add(ro.Position)
	}
	if ro.FlipNormals {
		hit.Normal = hit.Normal.Negate()
	}

	return hit, true
}

// Scene is the append-only scene graph consumed by the renderer: render
// objects, the material pool they reference by handle, the mesh pool, and
// the environment background.
type Scene struct {
	Objects     []*RenderObject
	Materials   material.Pool
	Meshes      []*primitive.TriangleMesh
	Environment env.Environment
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// AddMaterial appends a material to the pool and returns its handle.
func (s *Scene) AddMaterial(m material.Material) primitive.MaterialHandle {
	return s.Materials.Add(m)
}

// AddObject appends a render object to the scene.
func (s *Scene) AddObject(ro *RenderObject) {
	s.Objects = append(s.Objects, ro)
}

// AddMesh appends a triangle mesh to the mesh pool and wraps it in an
// identity render object (position zero, no rotation) so its own BVH
// becomes a single leaf of the top-level BVH. Non-identity placement of a
// mesh is achieved by calling SetTransform on the returned RenderObject.
func (s *Scene) AddMesh(m *primitive.TriangleMesh) *RenderObject {
	s.Meshes = append(s.Meshes, m)
	meshBVH := bvh.Build(m)
	ro := NewRenderObject(meshBVH, vec.Vec3{}, vec.IdentityRotor())
	s.AddObject(ro)
	return ro
}

// SetEnvironment sets the directional background.
func (s *Scene) SetEnvironment(e env.Environment) {
	s.Environment = e
}

// shapeAdapter lets Scene.Objects, a []*RenderObject, be used as a
// primitive.Aggregate without copying into a []primitive.Shape.
type shapeAdapter struct{ objects []*RenderObject }

func (a shapeAdapter) Len() int                 { return len(a.objects) }
func (a shapeAdapter) At(i int) primitive.Shape { return a.objects[i] }

// BuildBVH constructs the top-level acceleration structure over the
// scene's render objects.
func (s *Scene) BuildBVH() *bvh.Node {
	return bvh.Build(shapeAdapter{objects: s.Objects})
}
