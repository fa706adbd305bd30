// Package material defines surface materials, procedural patterns and
// UV-mapped textures evaluated during shading.
package material

import (
	"github.com/elowenkirk/rayforge/pkg/core"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// Pattern is anything that can compute a color for an object-space
// point. Concrete patterns own their own object→pattern transform.
type Pattern interface {
	ColorAt(objectPoint rtmath.Tuple) core.Color
}

// Material describes how a surface scatters light under the Phong
// model, plus the reflective/refractive properties the ray-recursion
// core needs.
type Material struct {
	Color   core.Color
	Pattern Pattern // nil means use Color directly

	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64

	Reflective      float64
	Transparency    float64
	RefractiveIndex float64

	CastsShadow bool
}

// Default returns the book-standard default material: white, mostly
// diffuse, no reflection or transmission, shadow-casting.
func Default() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
		CastsShadow:     true,
	}
}

// ColorAt returns the material's base color at an object-space point,
// deferring to the Pattern when one is set.
func (m Material) ColorAt(objectPoint rtmath.Tuple) core.Color {
	if m.Pattern != nil {
		return m.Pattern.ColorAt(objectPoint)
	}
	return m.Color
}
