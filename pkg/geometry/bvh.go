package geometry

import (
	"github.com/elowenkirk/rayforge/pkg/core"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// BVH is a diagnostic summary of the bounding volume hierarchy baked
// into a Group's Children by subdivideChildren at build time. The
// hierarchy itself is just nested *Group nodes — there is no separate
// traversal structure — so BVH exists only to answer "how much did
// this actually help", the way the teacher's renderer reports BVH
// stats after a scene loads.
type BVH struct {
	childCount int
}

// Stats reports the split shape at this group's top level: the number
// of direct children remaining after subdivision (subgroups plus any
// straddling shapes kept at this level).
func (b *BVH) Stats() BVHStats {
	if b == nil {
		return BVHStats{}
	}
	return BVHStats{TopLevelChildren: b.childCount}
}

// BVHStats summarizes one group's BVH split.
type BVHStats struct {
	TopLevelChildren int
}

// subdivideChildren implements spec.md §4.C: children whose bounding
// box center falls in the lower half of the parent's longest axis go
// into a left subgroup, the rest into a right subgroup, and children
// whose box straddles the split plane stay at this level as direct
// children alongside the two subgroups. It recurses into each
// subgroup, stopping when a bucket is at or below threshold or when a
// split makes no progress (the bucket's box equals the parent's).
func subdivideChildren(children []Shape, threshold int, parentBox core.AABB) []Shape {
	if len(children) <= threshold {
		return children
	}

	axis := parentBox.LongestAxis()
	splitVal := axisComponent(parentBox.Center(), axis)

	var left, right, straddlers []Shape
	for _, c := range children {
		box := c.WorldBounds()
		lo, hi := axisComponent(box.Min, axis), axisComponent(box.Max, axis)
		if lo < splitVal && hi > splitVal {
			straddlers = append(straddlers, c)
			continue
		}
		if axisComponent(box.Center(), axis) <= splitVal {
			left = append(left, c)
		} else {
			right = append(right, c)
		}
	}

	// A split that routes every child to one side makes no progress;
	// treat this level as a leaf rather than recursing forever.
	if len(straddlers) == 0 && (len(left) == 0 || len(right) == 0) {
		return children
	}

	result := make([]Shape, 0, len(children))
	if sg := buildSubgroup(left, threshold); sg != nil {
		result = append(result, sg)
	}
	if sg := buildSubgroup(right, threshold); sg != nil {
		result = append(result, sg)
	}
	return append(result, straddlers...)
}

func buildSubgroup(bucket []Shape, threshold int) Shape {
	if len(bucket) == 0 {
		return nil
	}
	if len(bucket) == 1 {
		return bucket[0]
	}

	box := unionWorldBounds(bucket)
	sg := NewGroup()
	sg.Children = subdivideChildren(bucket, threshold, box)
	sg.bounds = box
	sg.bvh = &BVH{childCount: len(sg.Children)}
	return sg
}

func axisComponent(t rtmath.Tuple, axis int) float64 {
	switch axis {
	case 0:
		return t.X
	case 1:
		return t.Y
	default:
		return t.Z
	}
}
