package shading

import (
	"math"

	"github.com/elowenkirk/rayforge/pkg/core"
	"github.com/elowenkirk/rayforge/pkg/geometry"
	"github.com/elowenkirk/rayforge/pkg/light"
)

// Lighting implements the Phong model from spec.md §4.F: ambient is
// always added, diffuse and specular are scaled by the light's
// visible fraction so a point partially shadowed by an area light
// falls off smoothly rather than snapping to black.
func Lighting(comps Computations, l light.Light, root geometry.Shape, rowSeed uint64) core.Color {
	effective := comps.Shape.EffectiveMaterial()
	objectPoint := comps.Hit.ObjectPoint(comps.Point)
	surfaceColor := effective.ColorAt(objectPoint)

	ambient := surfaceColor.Scale(effective.Ambient)

	visible := Visibility(root, comps.OverPoint, l, rowSeed)
	if visible <= 0 {
		return ambient
	}

	lightV := l.Position().Sub(comps.Point).Normalize()
	diffuse := core.Black
	specular := core.Black

	lightDotNormal := lightV.Dot(comps.Normal)
	if lightDotNormal >= 0 {
		diffuse = surfaceColor.Scale(effective.Diffuse * lightDotNormal)

		reflectV := lightV.Negate().Reflect(comps.Normal)
		reflectDotEye := reflectV.Dot(comps.Eye)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, effective.Shininess)
			specular = l.Intensity().Scale(effective.Specular * factor)
		}
	}

	return ambient.Add(diffuse.Scale(visible)).Add(specular.Scale(visible))
}
