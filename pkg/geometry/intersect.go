package geometry

import (
	"sort"

	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// Intersect walks the shape tree with a world-space ray, transforming
// it down one level of the tree at a time, and returns every hit
// t-sorted (ties broken by Shape.ID so the order never depends on
// traversal order). A Group or Csg node is pruned by its cached
// WorldBounds before its ray is transformed into its own frame; a
// Csg's hits are the filtered merge of its two operands.
func Intersect(shape Shape, ray rtmath.Ray) Intersections {
	return intersect(shape, ray, rtmath.Identity4())
}

// accumInv is the composed world-to-local matrix for the frame `ray`
// is already expressed in — i.e. the product of every ancestor's own
// inverse transform down to (but not including) shape. It rides along
// so that, once a primitive is hit, its Intersection can convert a
// world-space point straight to that primitive's local space without
// needing parent pointers.
func intersect(shape Shape, ray rtmath.Ray, accumInv rtmath.Matrix4) Intersections {
	switch s := shape.(type) {
	case *Group:
		if !s.WorldBounds().Intersects(ray) {
			return nil
		}
		localRay := ray.Transform(s.Transform().Inverse())
		childAccum := s.Transform().Inverse().Multiply(accumInv)

		var all Intersections
		for _, child := range s.Children {
			all = append(all, intersect(child, localRay, childAccum)...)
		}
		sortIntersections(all)
		return all

	case *Csg:
		if !s.WorldBounds().Intersects(ray) {
			return nil
		}
		localRay := ray.Transform(s.Transform().Inverse())
		childAccum := s.Transform().Inverse().Multiply(accumInv)

		left := intersect(s.Left, localRay, childAccum)
		right := intersect(s.Right, localRay, childAccum)
		filtered := filterIntersections(s.Op, left, right)
		sortIntersections(filtered)
		return filtered

	case Primitive:
		localRay := ray.Transform(s.Transform().Inverse())
		childAccum := s.Transform().Inverse().Multiply(accumInv)

		hits := s.LocalIntersect(localRay)
		result := make(Intersections, 0, len(hits))
		for _, h := range hits {
			result = append(result, Intersection{
				T: h.T, Shape: shape, HasUV: h.HasUV, U: h.U, V: h.V,
				worldToLocal: childAccum,
			})
		}
		sortIntersections(result)
		return result

	default:
		return nil
	}
}

func sortIntersections(xs Intersections) {
	sort.SliceStable(xs, func(i, j int) bool {
		if xs[i].T != xs[j].T {
			return xs[i].T < xs[j].T
		}
		return xs[i].Shape.ID() < xs[j].Shape.ID()
	})
}

// ObjectPoint converts a world-space point into the local space of the
// primitive this intersection hit, threading through every enclosing
// group's transform the same way NormalAt does. Shading uses this to
// evaluate a material's pattern in the primitive's own object space.
func (x Intersection) ObjectPoint(worldPoint rtmath.Tuple) rtmath.Tuple {
	return x.worldToLocal.MultiplyTuple(worldPoint)
}

// NormalAt computes the world-space normal at worldPoint for the
// primitive this intersection hit, converting worldPoint into the
// primitive's local space, calling its LocalNormalAt, and converting
// the result back to world space with the inverse-transpose of the
// primitive's accumulated transform.
func (x Intersection) NormalAt(worldPoint rtmath.Tuple) rtmath.Tuple {
	prim, ok := x.Shape.(Primitive)
	if !ok {
		return rtmath.NewVector(0, 1, 0)
	}
	localPoint := x.worldToLocal.MultiplyTuple(worldPoint)
	localNormal := prim.LocalNormalAt(localPoint, LocalHit{T: x.T, HasUV: x.HasUV, U: x.U, V: x.V})

	worldNormal := x.worldToLocal.Transpose().MultiplyTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
