// Package light defines the two light kinds the shading core supports:
// point lights and area lights with jittered soft-shadow sampling.
package light

import (
	"errors"

	"github.com/elowenkirk/rayforge/pkg/core"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// Light is a source of illumination. SamplePoints returns the set of
// world-space points the shading core should cast shadow rays toward;
// a point light always returns exactly one, an area light returns
// usteps*vsteps jittered cell centers. Position returns a single
// representative point used for the Phong L vector itself — the
// light's actual position for a point light, its rectangle's centroid
// for an area light (matching the book's area-light shading shortcut:
// one L direction, but a per-sample shadow average).
type Light interface {
	Position() rtmath.Tuple
	Intensity() core.Color
	SamplePoints(rowStreamSeed uint64) []rtmath.Tuple
}

// PointLight is a zero-size light at a single position.
type PointLight struct {
	position  rtmath.Tuple
	intensity core.Color
}

// NewPointLight builds a point light.
func NewPointLight(position rtmath.Tuple, intensity core.Color) *PointLight {
	return &PointLight{position: position, intensity: intensity}
}

// Position implements Light.
func (l *PointLight) Position() rtmath.Tuple { return l.position }

// Intensity implements Light.
func (l *PointLight) Intensity() core.Color { return l.intensity }

// SamplePoints implements Light: a point light has exactly one sample,
// itself, regardless of the stream seed.
func (l *PointLight) SamplePoints(rowStreamSeed uint64) []rtmath.Tuple {
	return []rtmath.Tuple{l.position}
}

// AreaLight is a rectangular light spanning corner+uvec and
// corner+vvec, subdivided into usteps*vsteps cells each sampled once
// per shadow query with jitter drawn from a seed combining the
// light's own immutable seed and the caller's row-local stream seed.
type AreaLight struct {
	Corner         rtmath.Tuple
	UVec, VVec     rtmath.Tuple
	USteps, VSteps int
	LightIntensity core.Color
	Seed           uint64
}

// NewAreaLight builds an area light. It returns an error if either
// step count is zero, per the construction-time validation spec.md §7
// requires.
func NewAreaLight(corner, uvec, vvec rtmath.Tuple, usteps, vsteps int, intensity core.Color, seed uint64) (*AreaLight, error) {
	if usteps <= 0 || vsteps <= 0 {
		return nil, errors.New("light: area light usteps and vsteps must both be positive")
	}
	return &AreaLight{
		Corner:         corner,
		UVec:           uvec,
		VVec:           vvec,
		USteps:         usteps,
		VSteps:         vsteps,
		LightIntensity: intensity,
		Seed:           seed,
	}, nil
}

// Position implements Light, returning the rectangle's centroid.
func (l *AreaLight) Position() rtmath.Tuple {
	return l.Corner.Add(l.UVec.Scale(0.5)).Add(l.VVec.Scale(0.5))
}

// Intensity implements Light.
func (l *AreaLight) Intensity() core.Color { return l.LightIntensity }

// SampleCount returns the total number of cells (usteps*vsteps).
func (l *AreaLight) SampleCount() int { return l.USteps * l.VSteps }

// SamplePoints implements Light: returns one jittered point per cell,
// cell (i, j) centered at corner + (i+ju)*(uvec/usteps) + (j+jv)*(vvec/vsteps).
func (l *AreaLight) SamplePoints(rowStreamSeed uint64) []rtmath.Tuple {
	rng := core.NewRNGFromSeeds(l.Seed, rowStreamSeed)
	uStep := l.UVec.Scale(1.0 / float64(l.USteps))
	vStep := l.VVec.Scale(1.0 / float64(l.VSteps))

	points := make([]rtmath.Tuple, 0, l.USteps*l.VSteps)
	for i := 0; i < l.USteps; i++ {
		for j := 0; j < l.VSteps; j++ {
			ju, jv := rng.Get2D()
			p := l.Corner.
				Add(uStep.Scale(float64(i) + ju)).
				Add(vStep.Scale(float64(j) + jv))
			points = append(points, p)
		}
	}
	return points
}
