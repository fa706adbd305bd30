package geometry

import (
	"math"

	"github.com/elowenkirk/rayforge/pkg/core"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// Sphere is the unit sphere centered at the local-space origin.
type Sphere struct {
	Base
}

// NewSphere builds a unit sphere with an identity transform and the
// default material.
func NewSphere() *Sphere {
	return &Sphere{Base: newBase()}
}

// LocalIntersect implements Primitive, solving the sphere quadratic
// a*t^2 + b*t + c = 0 with a = d.d, b = 2*o.d, c = o.o - 1.
func (s *Sphere) LocalIntersect(localRay rtmath.Ray) []LocalHit {
	sphereToRay := localRay.Origin.Sub(rtmath.NewPoint(0, 0, 0))

	a := localRay.Direction.Dot(localRay.Direction)
	b := 2 * localRay.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)
	return []LocalHit{{T: t1}, {T: t2}}
}

// LocalNormalAt implements Primitive: for a unit sphere at the origin
// the normal is simply the hit point treated as a vector.
func (s *Sphere) LocalNormalAt(localPoint rtmath.Tuple, hit LocalHit) rtmath.Tuple {
	return localPoint.Sub(rtmath.NewPoint(0, 0, 0))
}

// LocalBounds implements Primitive.
func (s *Sphere) LocalBounds() core.AABB {
	return core.NewAABB(rtmath.NewPoint(-1, -1, -1), rtmath.NewPoint(1, 1, 1))
}
