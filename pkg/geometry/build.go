package geometry

import (
	"sync/atomic"

	"github.com/elowenkirk/rayforge/pkg/core"
	"github.com/elowenkirk/rayforge/pkg/material"
)

var idCounter int64

func nextID() int {
	return int(atomic.AddInt64(&idCounter, 1))
}

// leafThreshold is the BVH split threshold from spec.md §4.C.
const leafThreshold = 8

// Build finalizes a freshly assembled shape tree before it's handed to
// the renderer: it resolves group material/shadow inheritance
// top-down, caches every node's world-space bounding box bottom-up,
// and subdivides any group with more than leafThreshold children into
// a bounding volume hierarchy. It must run exactly once, after the
// tree is fully assembled and before the first ray query; the tree is
// treated as immutable afterward.
func Build(root Shape) {
	propagateMaterial(root, nil, nil)
	computeBounds(root)
}

// propagateMaterial pushes a Group's own material/shadow override down
// into descendant primitives that have no explicit override of their
// own. It never crosses a Csg boundary: each CSG branch resolves its
// own primitives independently of whatever override is in effect
// above the Csg node.
func propagateMaterial(shape Shape, inheritedMat *material.Material, inheritedShadow *bool) {
	switch s := shape.(type) {
	case *Group:
		mat, shadow := inheritedMat, inheritedShadow
		if own, ownShadow := s.ownOverrides(); own != nil || ownShadow != nil {
			if own != nil {
				mat = own
			}
			if ownShadow != nil {
				shadow = ownShadow
			}
		}
		for _, child := range s.Children {
			propagateMaterial(child, mat, shadow)
		}
	case *Csg:
		propagateMaterial(s.Left, nil, nil)
		propagateMaterial(s.Right, nil, nil)
	default:
		resolveOwnMaterial(shape, inheritedMat, inheritedShadow)
	}
}

func resolveOwnMaterial(shape Shape, inheritedMat *material.Material, inheritedShadow *bool) {
	es, ok := shape.(effectiveSetter)
	if !ok {
		return
	}
	own, ownShadow := es.ownOverrides()

	mat := material.Default()
	switch {
	case own != nil:
		mat = *own
	case inheritedMat != nil:
		mat = *inheritedMat
	}

	shadow := true
	switch {
	case ownShadow != nil:
		shadow = *ownShadow
	case inheritedShadow != nil:
		shadow = *inheritedShadow
	}

	es.setEffective(mat, shadow)
}

// computeBounds fills in every node's cached WorldBounds bottom-up.
// WorldBounds is always expressed in the shape's own parent's frame —
// for a primitive that's LocalBounds transformed by its own transform;
// for a composite it's the union of its children's WorldBounds (already
// in the composite's frame) transformed by the composite's own
// transform. That makes the accessor compose correctly at every depth:
// the root's WorldBounds is the tree's true world-space box.
func computeBounds(shape Shape) {
	switch s := shape.(type) {
	case *Group:
		for _, child := range s.Children {
			computeBounds(child)
		}
		ownFrame := unionWorldBounds(s.Children)
		s.bounds = ownFrame.Transform(s.Transform().Forward())
		s.Children = subdivideChildren(s.Children, leafThreshold, ownFrame)
		s.bvh = &BVH{childCount: len(s.Children)}
	case *Csg:
		computeBounds(s.Left)
		computeBounds(s.Right)
		ownFrame := s.Left.WorldBounds().Combine(s.Right.WorldBounds())
		s.bounds = ownFrame.Transform(s.Transform().Forward())
	case Primitive:
		local := s.LocalBounds().Transform(s.Transform().Forward())
		if es, ok := shape.(interface{ setBounds(core.AABB) }); ok {
			es.setBounds(local)
		}
	}
}

func unionWorldBounds(children []Shape) core.AABB {
	box := core.EmptyAABB()
	for _, c := range children {
		box = box.Combine(c.WorldBounds())
	}
	return box
}
