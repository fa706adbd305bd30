package geometry

import (
	"math"

	"github.com/elowenkirk/rayforge/pkg/core"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// Cube is the axis-aligned unit cube spanning [-1, 1] on every axis.
type Cube struct {
	Base
}

// NewCube builds a unit cube with an identity transform and the
// default material.
func NewCube() *Cube {
	return &Cube{Base: newBase()}
}

// LocalIntersect implements Primitive using the slab method per axis:
// tmin is the max of the per-axis mins, tmax the min of the per-axis
// maxs; a miss is tmin > tmax.
func (c *Cube) LocalIntersect(localRay rtmath.Ray) []LocalHit {
	xtmin, xtmax := checkAxis(localRay.Origin.X, localRay.Direction.X)
	ytmin, ytmax := checkAxis(localRay.Origin.Y, localRay.Direction.Y)
	ztmin, ztmax := checkAxis(localRay.Origin.Z, localRay.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))
	if tmin > tmax {
		return nil
	}
	return []LocalHit{{T: tmin}, {T: tmax}}
}

func checkAxis(origin, direction float64) (tmin, tmax float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	if math.Abs(direction) >= rtmath.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		// Ray parallel to this axis: push the bound out far enough that
		// it never constrains tmin/tmax, without risking 0*Inf = NaN.
		const huge = 1e300
		tmin = tminNumerator * huge
		tmax = tmaxNumerator * huge
	}
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// LocalNormalAt implements Primitive: the normal is the axis of the
// point's greatest-magnitude component.
func (c *Cube) LocalNormalAt(localPoint rtmath.Tuple, hit LocalHit) rtmath.Tuple {
	absX, absY, absZ := math.Abs(localPoint.X), math.Abs(localPoint.Y), math.Abs(localPoint.Z)
	maxc := math.Max(absX, math.Max(absY, absZ))

	switch {
	case maxc == absX:
		return rtmath.NewVector(localPoint.X, 0, 0)
	case maxc == absY:
		return rtmath.NewVector(0, localPoint.Y, 0)
	default:
		return rtmath.NewVector(0, 0, localPoint.Z)
	}
}

// LocalBounds implements Primitive.
func (c *Cube) LocalBounds() core.AABB {
	return core.NewAABB(rtmath.NewPoint(-1, -1, -1), rtmath.NewPoint(1, 1, 1))
}
