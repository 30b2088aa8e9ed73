// Package bvh builds a bounding volume hierarchy over any primitive.Aggregate
// (a scene's render objects, or a single mesh's triangles) using a
// depth-cycled median split: at each level the remaining shapes are sorted
// by bounding-box center along axis depth%3 and split at the midpoint, rather than searching for a
// best axis or a binned split position. This is a deliberately simple
// construction that favors build speed over tree quality.
package bvh

import (
	"sort"

	"github.com/ashgrove/firetrace/pkg/primitive"
	"github.com/ashgrove/firetrace/pkg/rng"
	"github.com/ashgrove/firetrace/pkg/vec"
)

// Node is one node of the hierarchy. Exactly one of the three shape fields
// is populated, mirroring the Leaf/DoubleLeaf/Branch union of the
// reference construction.
type Node struct {
	box vec.AABB

	leaf  primitive.Shape // Leaf: single shape
	leafA primitive.Shape // DoubleLeaf: first of two shapes
	leafB primitive.Shape // DoubleLeaf: second of two shapes
	left  *Node           // Branch: left subtree
	right *Node           // Branch: right subtree
}

// Build constructs a BVH over every shape in agg. Returns nil if agg is empty.
func Build(agg primitive.Aggregate) *Node {
	n := agg.Len()
	if n == 0 {
		return nil
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return buildHelper(agg, indices, 0)
}

func buildHelper(agg primitive.Aggregate, indices []int, depth int) *Node {
	axis := depth % 3
	sort.Slice(indices, func(i, j int) bool {
		bi := agg.At(indices[i]).BoundingBox()
		bj := agg.At(indices[j]).BoundingBox()
		return vec.AxisValue(bi.Center(), axis) < vec.AxisValue(bj.Center(), axis)
	})

	switch len(indices) {
	case 1:
		shape := agg.At(indices[0])
		return &Node{leaf: shape, box: shape.BoundingBox()}

	case 2:
		a := agg.At(indices[0])
		b := agg.At(indices[1])
		return &Node{
			leafA: a,
			leafB: b,
			box:   a.BoundingBox().Expand(b.BoundingBox()),
		}

	default:
		mid := len(indices) / 2
		left := buildHelper(agg, indices[:mid], depth+1)
		right := buildHelper(agg, indices[mid:], depth+1)
		return &Node{
			left:  left,
			right: right,
			box:   left.box.Expand(right.box),
		}
	}
}

// Intersect finds the closest hit along r within [tMin, tMax], descending
// only into subtrees whose bounding box the ray hits. Both children of a
// Branch or DoubleLeaf are always probed; there is no t_max tightening
// between sibling probes, matching the reference construction's behavior
// of never letting the first hit shrink the search window for the second.
func (n *Node) Intersect(r vec.Ray, tMin, tMax float64, stream *rng.Stream) (primitive.Hit, bool) {
	if n == nil || !n.box.Hit(r, tMin, tMax) {
		return primitive.Hit{}, false
	}

	switch {
	case n.leaf != nil:
		return n.leaf.Intersect(r, tMin, tMax, stream)

	case n.leafA != nil:
		leftHit, leftOK := n.leafA.Intersect(r, tMin, tMax, stream)
		rightHit, rightOK := n.leafB.Intersect(r, tMin, tMax, stream)
		return closer(leftHit, leftOK, rightHit, rightOK)

	default:
		leftHit, leftOK := n.left.Intersect(r, tMin, tMax, stream)
		rightHit, rightOK := n.right.Intersect(r, tMin, tMax, stream)
		return closer(leftHit, leftOK, rightHit, rightOK)
	}
}

func closer(a primitive.Hit, aOK bool, b primitive.Hit, bOK bool) (primitive.Hit, bool) {
	switch {
	case !aOK && !bOK:
		return primitive.Hit{}, false
	case aOK && !bOK:
		return a, true
	case !aOK && bOK:
		return b, true
	case a.T < b.T:
		return a, true
	default:
		return b, true
	}
}

// BoundingBox returns the node's bounding box, implementing primitive.Shape
// so a BVH over a mesh's triangles can itself be wrapped as a single Shape
// inside a scene-level BVH.
func (n *Node) BoundingBox() vec.AABB {
	if n == nil {
		return vec.EmptyAABB()
	}
	return n.box
}
