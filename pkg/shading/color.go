package shading

import (
	"math"

	"github.com/elowenkirk/rayforge/pkg/core"
	"github.com/elowenkirk/rayforge/pkg/geometry"
	"github.com/elowenkirk/rayforge/pkg/light"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// DefaultMaxDepth is the default starting remaining_depth for ColorAt,
// per spec.md §4.G.
const DefaultMaxDepth = 5

// World is the read-only scene ColorAt shades against: a shape tree
// root and the lights illuminating it.
type World struct {
	Root   geometry.Shape
	Lights []light.Light
}

// ColorAt traces ray into world and returns its shaded color, recursing
// into reflection and refraction up to remainingDepth times. rowSeed
// selects the RNG substream area lights draw their jitter from.
func ColorAt(world World, ray rtmath.Ray, remainingDepth int, rowSeed uint64) core.Color {
	xs := geometry.Intersect(world.Root, ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}

	comps := PrepareComputations(hit, ray, xs)
	surface := core.Black
	for _, l := range world.Lights {
		surface = surface.Add(Lighting(comps, l, world.Root, rowSeed))
	}

	reflected := reflectedColor(world, comps, remainingDepth, rowSeed)
	refracted := refractedColor(world, comps, remainingDepth, rowSeed)

	effective := comps.Shape.EffectiveMaterial()
	if effective.Reflective > 0 && effective.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

func reflectedColor(world World, comps Computations, remainingDepth int, rowSeed uint64) core.Color {
	effective := comps.Shape.EffectiveMaterial()
	if remainingDepth <= 0 || effective.Reflective <= 0 {
		return core.Black
	}
	reflectRay := rtmath.NewRay(comps.OverPoint, comps.ReflectV)
	color := ColorAt(world, reflectRay, remainingDepth-1, rowSeed)
	return color.Scale(effective.Reflective)
}

func refractedColor(world World, comps Computations, remainingDepth int, rowSeed uint64) core.Color {
	effective := comps.Shape.EffectiveMaterial()
	if remainingDepth <= 0 || effective.Transparency <= 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		return core.Black // total internal reflection
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := comps.Normal.Scale(nRatio*cosI - cosT).Sub(comps.Eye.Scale(nRatio))
	refractRay := rtmath.NewRay(comps.UnderPoint, direction)

	color := ColorAt(world, refractRay, remainingDepth-1, rowSeed)
	return color.Scale(effective.Transparency)
}
