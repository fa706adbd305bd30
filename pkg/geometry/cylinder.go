package geometry

import (
	"math"

	"github.com/elowenkirk/rayforge/pkg/core"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// Cylinder is a radius-1 cylinder along the local y axis, truncated to
// [Min, Max] and optionally capped.
type Cylinder struct {
	Base
	Min, Max float64
	Closed   bool
}

// NewCylinder builds a cylinder spanning [min, max]. It returns an
// error if min >= max while closed, matching spec.md §7's
// construction-time validation for a degenerate capped cylinder.
func NewCylinder(min, max float64, closed bool) (*Cylinder, error) {
	if closed && min >= max {
		return nil, errDegenerateCappedExtent("cylinder", min, max)
	}
	return &Cylinder{Base: newBase(), Min: min, Max: max, Closed: closed}, nil
}

// LocalIntersect implements Primitive: side-surface quadratic plus
// optional cap intersections validated against the unit radius.
func (cy *Cylinder) LocalIntersect(localRay rtmath.Ray) []LocalHit {
	var hits []LocalHit

	a := localRay.Direction.X*localRay.Direction.X + localRay.Direction.Z*localRay.Direction.Z
	if a > rtmath.Epsilon {
		b := 2*localRay.Origin.X*localRay.Direction.X + 2*localRay.Origin.Z*localRay.Direction.Z
		c := localRay.Origin.X*localRay.Origin.X + localRay.Origin.Z*localRay.Origin.Z - 1

		disc := b*b - 4*a*c
		if disc >= 0 {
			sqrtDisc := math.Sqrt(disc)
			t0 := (-b - sqrtDisc) / (2 * a)
			t1 := (-b + sqrtDisc) / (2 * a)
			if t0 > t1 {
				t0, t1 = t1, t0
			}
			y0 := localRay.Origin.Y + t0*localRay.Direction.Y
			if cy.Min < y0 && y0 < cy.Max {
				hits = append(hits, LocalHit{T: t0})
			}
			y1 := localRay.Origin.Y + t1*localRay.Direction.Y
			if cy.Min < y1 && y1 < cy.Max {
				hits = append(hits, LocalHit{T: t1})
			}
		}
	}

	hits = append(hits, cy.intersectCaps(localRay)...)
	return hits
}

func (cy *Cylinder) intersectCaps(localRay rtmath.Ray) []LocalHit {
	if !cy.Closed || math.Abs(localRay.Direction.Y) < rtmath.Epsilon {
		return nil
	}

	var hits []LocalHit
	for _, planeY := range []float64{cy.Min, cy.Max} {
		t := (planeY - localRay.Origin.Y) / localRay.Direction.Y
		x := localRay.Origin.X + t*localRay.Direction.X
		z := localRay.Origin.Z + t*localRay.Direction.Z
		if x*x+z*z <= 1 {
			hits = append(hits, LocalHit{T: t})
		}
	}
	return hits
}

// LocalNormalAt implements Primitive: caps return (0, ±1, 0), the side
// surface returns (x, 0, z).
func (cy *Cylinder) LocalNormalAt(localPoint rtmath.Tuple, hit LocalHit) rtmath.Tuple {
	dist := localPoint.X*localPoint.X + localPoint.Z*localPoint.Z
	if dist < 1 && localPoint.Y >= cy.Max-rtmath.Epsilon {
		return rtmath.NewVector(0, 1, 0)
	}
	if dist < 1 && localPoint.Y <= cy.Min+rtmath.Epsilon {
		return rtmath.NewVector(0, -1, 0)
	}
	return rtmath.NewVector(localPoint.X, 0, localPoint.Z)
}

// LocalBounds implements Primitive.
func (cy *Cylinder) LocalBounds() core.AABB {
	return core.NewAABB(rtmath.NewPoint(-1, cy.Min, -1), rtmath.NewPoint(1, cy.Max, 1))
}
