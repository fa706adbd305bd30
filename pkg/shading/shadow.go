package shading

import (
	"github.com/elowenkirk/rayforge/pkg/geometry"
	"github.com/elowenkirk/rayforge/pkg/light"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// Visibility returns the fraction of l that's visible from point,
// per spec.md §4.F: a point light is an all-or-nothing occlusion test,
// an area light averages the test over every one of its jittered
// sample points. rowSeed is the renderer's per-row RNG substream,
// combined with the light's own immutable seed so the result is
// reproducible independent of scheduling.
func Visibility(root geometry.Shape, point rtmath.Tuple, l light.Light, rowSeed uint64) float64 {
	samples := l.SamplePoints(rowSeed)
	if len(samples) == 0 {
		return 0
	}

	visible := 0
	for _, sample := range samples {
		if !occluded(root, point, sample) {
			visible++
		}
	}
	return float64(visible) / float64(len(samples))
}

// occluded casts a ray from point toward sample and reports whether
// any shadow-casting shape blocks it before reaching the light.
func occluded(root geometry.Shape, point, sample rtmath.Tuple) bool {
	pointToSample := sample.Sub(point)
	distance := pointToSample.Magnitude()
	direction := pointToSample.Normalize()

	xs := geometry.Intersect(root, rtmath.NewRay(point, direction))
	for _, x := range xs {
		if !x.Shape.EffectiveCastsShadow() {
			continue
		}
		if x.T > overEpsilon && x.T < distance {
			return true
		}
	}
	return false
}
