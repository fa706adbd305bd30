package geometry

import (
	"math"

	"github.com/elowenkirk/rayforge/pkg/core"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// Triangle is a flat or smooth triangle defined by three local-space
// points. Smooth triangles additionally carry a normal per vertex and
// interpolate them by the hit's barycentric (u, v).
type Triangle struct {
	Base

	P1, P2, P3 rtmath.Tuple
	Smooth     bool
	N1, N2, N3 rtmath.Normal

	e1, e2     rtmath.Tuple
	faceNormal rtmath.Tuple
}

// NewTriangle builds a flat triangle with a precomputed face normal.
func NewTriangle(p1, p2, p3 rtmath.Tuple) *Triangle {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)
	return &Triangle{
		Base: newBase(),
		P1:   p1, P2: p2, P3: p3,
		e1: e1, e2: e2,
		faceNormal: rtmath.NormalFromVector(e2.Cross(e1)).Vector(),
	}
}

// NewSmoothTriangle builds a triangle that interpolates per-vertex
// normals across the hit's barycentric coordinates.
func NewSmoothTriangle(p1, p2, p3 rtmath.Tuple, n1, n2, n3 rtmath.Normal) *Triangle {
	t := NewTriangle(p1, p2, p3)
	t.Smooth = true
	t.N1, t.N2, t.N3 = n1, n2, n3
	return t
}

// LocalIntersect implements Primitive using the Möller–Trumbore
// algorithm, computing barycentric (u, v) at the hit.
func (tr *Triangle) LocalIntersect(localRay rtmath.Ray) []LocalHit {
	dirCrossE2 := localRay.Direction.Cross(tr.e2)
	det := tr.e1.Dot(dirCrossE2)
	if math.Abs(det) < rtmath.Epsilon {
		return nil // ray parallel to the triangle's plane
	}

	f := 1.0 / det
	p1ToOrigin := localRay.Origin.Sub(tr.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(tr.e1)
	v := f * localRay.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * tr.e2.Dot(originCrossE1)
	return []LocalHit{{T: t, HasUV: true, U: u, V: v}}
}

// LocalNormalAt implements Primitive: flat triangles return the
// precomputed face normal; smooth triangles interpolate vertex normals
// by the hit's barycentric coordinates.
func (tr *Triangle) LocalNormalAt(localPoint rtmath.Tuple, hit LocalHit) rtmath.Tuple {
	if !tr.Smooth {
		return tr.faceNormal
	}
	n := tr.N2.Vector().Scale(hit.U).
		Add(tr.N3.Vector().Scale(hit.V)).
		Add(tr.N1.Vector().Scale(1 - hit.U - hit.V))
	return n
}

// LocalBounds implements Primitive.
func (tr *Triangle) LocalBounds() core.AABB {
	return core.EmptyAABB().
		Combine(core.NewAABB(tr.P1, tr.P1)).
		Combine(core.NewAABB(tr.P2, tr.P2)).
		Combine(core.NewAABB(tr.P3, tr.P3))
}
