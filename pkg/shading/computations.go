// Package shading implements the Phong illumination model, shadow
// testing, and the recursive reflect/refract ray-tracing core that
// turns a ray/scene pair into a final pixel color.
package shading

import (
	"math"

	"github.com/elowenkirk/rayforge/pkg/geometry"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// overEpsilon offsets a hit point along the normal to avoid shadow
// acne (over_point) and self-refraction (under_point).
const overEpsilon = 1e-5

// Computations bundles everything the illumination and ray-recursion
// stages need about a single ray/shape hit, computed once so Lighting,
// reflection and refraction don't each redo the same geometry.
type Computations struct {
	T     float64
	Shape geometry.Shape
	Hit   geometry.Intersection

	Point      rtmath.Tuple
	OverPoint  rtmath.Tuple
	UnderPoint rtmath.Tuple
	Eye        rtmath.Tuple
	Normal     rtmath.Tuple
	ReflectV   rtmath.Tuple
	Inside     bool

	N1, N2 float64
}

// PrepareComputations builds a Computations for hit, given the ray
// that produced it and the full sorted intersection list it came from
// (needed to derive n1/n2 by walking which refractive shapes the ray
// is currently inside of).
func PrepareComputations(hit geometry.Intersection, ray rtmath.Ray, xs geometry.Intersections) Computations {
	c := Computations{T: hit.T, Shape: hit.Shape, Hit: hit}

	c.Point = ray.At(hit.T)
	c.Eye = ray.Direction.Negate().Normalize()
	c.Normal = hit.NormalAt(c.Point)

	if c.Normal.Dot(c.Eye) < 0 {
		c.Inside = true
		c.Normal = c.Normal.Negate()
	}

	c.ReflectV = ray.Direction.Reflect(c.Normal)
	c.OverPoint = c.Point.Add(c.Normal.Scale(overEpsilon))
	c.UnderPoint = c.Point.Sub(c.Normal.Scale(overEpsilon))

	c.N1, c.N2 = refractiveIndices(hit, xs)
	return c
}

// refractiveIndices implements the containing-shapes walk from
// spec.md §4.G: append a shape to the container stack on entry, remove
// it on exit; n1 is the refractive index of the top of the stack just
// before hit, n2 the top just after.
func refractiveIndices(hit geometry.Intersection, xs geometry.Intersections) (n1, n2 float64) {
	var containers []geometry.Shape
	n1, n2 = 1, 1

	for _, x := range xs {
		isHit := x.T == hit.T && x.Shape.ID() == hit.Shape.ID()
		if isHit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].EffectiveMaterial().RefractiveIndex
			} else {
				n1 = 1
			}
		}

		if idx := indexOfShape(containers, x.Shape); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Shape)
		}

		if isHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].EffectiveMaterial().RefractiveIndex
			} else {
				n2 = 1
			}
			break
		}
	}
	return n1, n2
}

func indexOfShape(shapes []geometry.Shape, s geometry.Shape) int {
	for i, c := range shapes {
		if c.ID() == s.ID() {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at this hit.
func (c Computations) Schlick() float64 {
	cos := c.Eye.Dot(c.Normal)
	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2t)
	}
	r0 := math.Pow((c.N1-c.N2)/(c.N1+c.N2), 2)
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
