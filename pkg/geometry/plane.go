package geometry

import (
	"math"

	"github.com/elowenkirk/rayforge/pkg/core"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// Plane is the xz-plane (y = 0), infinite in x and z.
type Plane struct {
	Base
}

// NewPlane builds an xz-plane with an identity transform and the
// default material.
func NewPlane() *Plane {
	return &Plane{Base: newBase()}
}

// LocalIntersect implements Primitive. A ray nearly parallel to the
// plane (|dy| < epsilon) never hits it.
func (p *Plane) LocalIntersect(localRay rtmath.Ray) []LocalHit {
	if math.Abs(localRay.Direction.Y) < rtmath.Epsilon {
		return nil
	}
	t := -localRay.Origin.Y / localRay.Direction.Y
	return []LocalHit{{T: t}}
}

// LocalNormalAt implements Primitive: the plane's normal is constant.
func (p *Plane) LocalNormalAt(localPoint rtmath.Tuple, hit LocalHit) rtmath.Tuple {
	return rtmath.NewVector(0, 1, 0)
}

// LocalBounds implements Primitive: infinite in x/z, zero-thickness in y.
func (p *Plane) LocalBounds() core.AABB {
	inf := math.Inf(1)
	return core.NewAABB(rtmath.NewPoint(-inf, 0, -inf), rtmath.NewPoint(inf, 0, inf))
}
