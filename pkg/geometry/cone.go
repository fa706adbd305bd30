package geometry

import (
	"math"

	"github.com/elowenkirk/rayforge/pkg/core"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// Cone is a double-napped cone along the local y axis, with radius
// |y|, truncated to [Min, Max] and optionally capped.
type Cone struct {
	Base
	Min, Max float64
	Closed   bool
}

// NewCone builds a cone spanning [min, max]. It returns an error if
// min >= max while closed.
func NewCone(min, max float64, closed bool) (*Cone, error) {
	if closed && min >= max {
		return nil, errDegenerateCappedExtent("cone", min, max)
	}
	return &Cone{Base: newBase(), Min: min, Max: max, Closed: closed}, nil
}

// LocalIntersect implements Primitive.
func (co *Cone) LocalIntersect(localRay rtmath.Ray) []LocalHit {
	var hits []LocalHit

	dx, dy, dz := localRay.Direction.X, localRay.Direction.Y, localRay.Direction.Z
	ox, oy, oz := localRay.Origin.X, localRay.Origin.Y, localRay.Origin.Z

	a := dx*dx - dy*dy + dz*dz
	b := 2*ox*dx - 2*oy*dy + 2*oz*dz
	c := ox*ox - oy*oy + oz*oz

	switch {
	case math.Abs(a) < rtmath.Epsilon:
		if math.Abs(b) >= rtmath.Epsilon {
			t := -c / (2 * b)
			y := oy + t*dy
			if co.Min < y && y < co.Max {
				hits = append(hits, LocalHit{T: t})
			}
		}
	default:
		disc := b*b - 4*a*c
		if disc >= 0 {
			sqrtDisc := math.Sqrt(disc)
			t0 := (-b - sqrtDisc) / (2 * a)
			t1 := (-b + sqrtDisc) / (2 * a)
			if t0 > t1 {
				t0, t1 = t1, t0
			}
			y0 := oy + t0*dy
			if co.Min < y0 && y0 < co.Max {
				hits = append(hits, LocalHit{T: t0})
			}
			y1 := oy + t1*dy
			if co.Min < y1 && y1 < co.Max {
				hits = append(hits, LocalHit{T: t1})
			}
		}
	}

	hits = append(hits, co.intersectCaps(localRay)...)
	return hits
}

func (co *Cone) intersectCaps(localRay rtmath.Ray) []LocalHit {
	if !co.Closed || math.Abs(localRay.Direction.Y) < rtmath.Epsilon {
		return nil
	}

	var hits []LocalHit
	for _, planeY := range []float64{co.Min, co.Max} {
		t := (planeY - localRay.Origin.Y) / localRay.Direction.Y
		x := localRay.Origin.X + t*localRay.Direction.X
		z := localRay.Origin.Z + t*localRay.Direction.Z
		if x*x+z*z <= planeY*planeY {
			hits = append(hits, LocalHit{T: t})
		}
	}
	return hits
}

// LocalNormalAt implements Primitive: side normal is
// (x, ±sqrt(x²+z²), z), negative where y > 0 and positive otherwise;
// caps return (0, ±1, 0).
func (co *Cone) LocalNormalAt(localPoint rtmath.Tuple, hit LocalHit) rtmath.Tuple {
	dist := localPoint.X*localPoint.X + localPoint.Z*localPoint.Z
	if dist < localPoint.Y*localPoint.Y && localPoint.Y >= co.Max-rtmath.Epsilon {
		return rtmath.NewVector(0, 1, 0)
	}
	if dist < localPoint.Y*localPoint.Y && localPoint.Y <= co.Min+rtmath.Epsilon {
		return rtmath.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if localPoint.Y > 0 {
		y = -y
	}
	return rtmath.NewVector(localPoint.X, y, localPoint.Z)
}

// LocalBounds implements Primitive: brackets the y-extent and the
// widest radius (max(|Min|, |Max|)) in x/z.
func (co *Cone) LocalBounds() core.AABB {
	r := math.Max(math.Abs(co.Min), math.Abs(co.Max))
	return core.NewAABB(rtmath.NewPoint(-r, co.Min, -r), rtmath.NewPoint(r, co.Max, r))
}
