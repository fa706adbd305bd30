package material

import (
	"math"

	"github.com/elowenkirk/rayforge/pkg/core"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// UVPattern evaluates a color from (u, v) coordinates in [0,1]^2.
type UVPattern interface {
	UVColorAt(u, v float64) core.Color
}

// UVCheckers is a checkerboard defined directly in UV space.
type UVCheckers struct {
	Width, Height float64
	A, B          core.Color
}

// UVColorAt implements UVPattern.
func (p UVCheckers) UVColorAt(u, v float64) core.Color {
	uu := math.Floor(u * p.Width)
	vv := math.Floor(v * p.Height)
	if math.Mod(math.Abs(uu+vv), 2) == 0 {
		return p.A
	}
	return p.B
}

// UVImage samples a decoded bitmap with nearest-neighbor lookup.
type UVImage struct {
	Image Image
}

// UVColorAt implements UVPattern, sampling at
// (u*(W-1), (1-v)*(H-1)) per spec.md §4.E.
func (p UVImage) UVColorAt(u, v float64) core.Color {
	w, h := p.Image.Width(), p.Image.Height()
	x := int(math.Round(u * float64(w-1)))
	y := int(math.Round((1 - v) * float64(h-1)))
	return p.Image.At(x, y)
}

// Projection selects how an object-space point is flattened to (u, v).
type Projection int

const (
	ProjectionPlanar Projection = iota
	ProjectionSpherical
	ProjectionCylindrical
	ProjectionCube
)

// CubeFace identifies one face of a cube projection.
type CubeFace int

const (
	FacePosX CubeFace = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// MapPattern combines a projection with one or more UV patterns. Cube
// projection keys a distinct UV pattern per face; cylindrical
// projection may supply separate top/bottom overrides used near the
// caps.
type MapPattern struct {
	patternSpace
	Projection Projection
	UV         UVPattern
	CubeFaces  map[CubeFace]UVPattern
	TopUV      UVPattern
	BottomUV   UVPattern
}

// NewMapPattern builds a planar/spherical/cylindrical map over a
// single UV pattern, with an identity transform.
func NewMapPattern(projection Projection, uv UVPattern) *MapPattern {
	return &MapPattern{patternSpace: newPatternSpace(), Projection: projection, UV: uv}
}

// NewCubeMapPattern builds a cube projection keyed by face.
func NewCubeMapPattern(faces map[CubeFace]UVPattern) *MapPattern {
	return &MapPattern{patternSpace: newPatternSpace(), Projection: ProjectionCube, CubeFaces: faces}
}

// ColorAt implements Pattern: project the pattern-space point to (u, v)
// and evaluate the appropriate UV pattern.
func (p *MapPattern) ColorAt(objectPoint rtmath.Tuple) core.Color {
	pp := p.toPatternSpace(objectPoint)

	switch p.Projection {
	case ProjectionCube:
		face := cubeFaceFor(pp)
		u, v := cubeUV(face, pp)
		if uv, ok := p.CubeFaces[face]; ok {
			return uv.UVColorAt(u, v)
		}
		return core.Black
	case ProjectionCylindrical:
		if math.Abs(pp.Y) >= 1-1e-4 && (p.TopUV != nil || p.BottomUV != nil) {
			u, v := planarUV(pp)
			if pp.Y >= 0 && p.TopUV != nil {
				return p.TopUV.UVColorAt(u, v)
			}
			if pp.Y < 0 && p.BottomUV != nil {
				return p.BottomUV.UVColorAt(u, v)
			}
		}
		u, v := cylindricalUV(pp)
		return p.UV.UVColorAt(u, v)
	case ProjectionSpherical:
		u, v := sphericalUV(pp)
		return p.UV.UVColorAt(u, v)
	default: // ProjectionPlanar
		u, v := planarUV(pp)
		return p.UV.UVColorAt(u, v)
	}
}

func fracMod1(v float64) float64 {
	f := v - math.Floor(v)
	return f
}

func planarUV(p rtmath.Tuple) (u, v float64) {
	return fracMod1(p.X), fracMod1(p.Z)
}

func sphericalUV(p rtmath.Tuple) (u, v float64) {
	theta := math.Atan2(p.X, p.Z)
	radius := p.Sub(rtmath.NewPoint(0, 0, 0)).Magnitude()
	var phi float64
	if radius == 0 {
		phi = 0
	} else {
		phi = math.Acos(p.Y / radius)
	}
	rawU := theta/(2*math.Pi) + 0.5
	u = 1 - rawU
	v = 1 - phi/math.Pi
	return u, v
}

func cylindricalUV(p rtmath.Tuple) (u, v float64) {
	theta := math.Atan2(p.X, p.Z)
	rawU := theta/(2*math.Pi) + 0.5
	u = 1 - rawU
	v = fracMod1(p.Y)
	return u, v
}

func cubeFaceFor(p rtmath.Tuple) CubeFace {
	ax, ay, az := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	coord := math.Max(ax, math.Max(ay, az))

	switch {
	case coord == ax && p.X > 0:
		return FacePosX
	case coord == ax:
		return FaceNegX
	case coord == ay && p.Y > 0:
		return FacePosY
	case coord == ay:
		return FaceNegY
	case p.Z > 0:
		return FacePosZ
	default:
		return FaceNegZ
	}
}

func cubeUV(face CubeFace, p rtmath.Tuple) (u, v float64) {
	remap := func(a, b float64) (float64, float64) {
		return fracMod1((a + 1) / 2), fracMod1((b + 1) / 2)
	}
	switch face {
	case FacePosX:
		return remap(-p.Z, p.Y)
	case FaceNegX:
		return remap(p.Z, p.Y)
	case FacePosY:
		return remap(p.X, -p.Z)
	case FaceNegY:
		return remap(p.X, p.Z)
	case FacePosZ:
		return remap(p.X, p.Y)
	default: // FaceNegZ
		return remap(-p.X, p.Y)
	}
}
