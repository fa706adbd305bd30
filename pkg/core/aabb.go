package core

import (
	"math"

	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// AABB is an axis-aligned bounding box, represented as a min/max point
// pair. The empty box uses +inf/-inf corners so that Combine with any
// real box acts as the identity.
type AABB struct {
	Min, Max rtmath.Tuple
}

// EmptyAABB returns the additive identity for Combine: a box with no
// volume that expands to match whatever it's combined with.
func EmptyAABB() AABB {
	return AABB{
		Min: rtmath.NewPoint(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: rtmath.NewPoint(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// NewAABB builds an AABB from explicit min/max corners.
func NewAABB(min, max rtmath.Tuple) AABB {
	return AABB{Min: min, Max: max}
}

// Combine returns the smallest AABB containing both boxes.
func (b AABB) Combine(other AABB) AABB {
	return AABB{
		Min: rtmath.NewPoint(
			math.Min(b.Min.X, other.Min.X),
			math.Min(b.Min.Y, other.Min.Y),
			math.Min(b.Min.Z, other.Min.Z),
		),
		Max: rtmath.NewPoint(
			math.Max(b.Max.X, other.Max.X),
			math.Max(b.Max.Y, other.Max.Y),
			math.Max(b.Max.Z, other.Max.Z),
		),
	}
}

// Transform returns the AABB of all eight transformed corners of b —
// the only correct way to bound a rotated box without over- or
// under-estimating its extent. An empty box is returned unchanged.
func (b AABB) Transform(m rtmath.Matrix4) AABB {
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z {
		return b
	}
	corners := [8]rtmath.Tuple{
		rtmath.NewPoint(b.Min.X, b.Min.Y, b.Min.Z),
		rtmath.NewPoint(b.Min.X, b.Min.Y, b.Max.Z),
		rtmath.NewPoint(b.Min.X, b.Max.Y, b.Min.Z),
		rtmath.NewPoint(b.Min.X, b.Max.Y, b.Max.Z),
		rtmath.NewPoint(b.Max.X, b.Min.Y, b.Min.Z),
		rtmath.NewPoint(b.Max.X, b.Min.Y, b.Max.Z),
		rtmath.NewPoint(b.Max.X, b.Max.Y, b.Min.Z),
		rtmath.NewPoint(b.Max.X, b.Max.Y, b.Max.Z),
	}

	result := EmptyAABB()
	for _, c := range corners {
		p := m.MultiplyTuple(c)
		result.Min = rtmath.NewPoint(math.Min(result.Min.X, p.X), math.Min(result.Min.Y, p.Y), math.Min(result.Min.Z, p.Z))
		result.Max = rtmath.NewPoint(math.Max(result.Max.X, p.X), math.Max(result.Max.Y, p.Y), math.Max(result.Max.Z, p.Z))
	}
	return result
}

// Intersects reports whether ray hits the box at all, using the slab
// method. An empty box (Min > Max on any axis, as EmptyAABB returns)
// is checked explicitly first: a fully oblique ray never trips the
// per-axis tMin>tMax check on ±inf bounds, since the infinities cancel
// back to [-inf, +inf] on every axis.
func (b AABB) Intersects(ray rtmath.Ray) bool {
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z {
		return false
	}

	tMin, tMax := math.Inf(-1), math.Inf(1)

	axisMin := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	axisMax := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	direction := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(direction[axis]) < 1e-12 {
			if origin[axis] < axisMin[axis] || origin[axis] > axisMax[axis] {
				return false
			}
			continue
		}
		invD := 1.0 / direction[axis]
		t1 := (axisMin[axis] - origin[axis]) * invD
		t2 := (axisMax[axis] - origin[axis]) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Center returns the midpoint of the box.
func (b AABB) Center() rtmath.Tuple {
	return rtmath.NewPoint(
		(b.Min.X+b.Max.X)/2,
		(b.Min.Y+b.Max.Y)/2,
		(b.Min.Z+b.Max.Z)/2,
	)
}

// LongestAxis returns 0, 1 or 2 for the axis (x, y, z) with the
// greatest extent.
func (b AABB) LongestAxis() int {
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	dz := b.Max.Z - b.Min.Z
	if dx > dy && dx > dz {
		return 0
	}
	if dy > dz {
		return 1
	}
	return 2
}

// Contains reports whether other is fully contained within b.
func (b AABB) Contains(other AABB) bool {
	return other.Min.X >= b.Min.X-rtmath.Epsilon && other.Min.Y >= b.Min.Y-rtmath.Epsilon && other.Min.Z >= b.Min.Z-rtmath.Epsilon &&
		other.Max.X <= b.Max.X+rtmath.Epsilon && other.Max.Y <= b.Max.Y+rtmath.Epsilon && other.Max.Z <= b.Max.Z+rtmath.Epsilon
}

// Equals compares two boxes' corners within tolerance.
func (b AABB) Equals(other AABB) bool {
	return b.Min.Equals(other.Min) && b.Max.Equals(other.Max)
}
