package material

import (
	"math"

	"github.com/elowenkirk/rayforge/pkg/core"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// patternSpace holds the object→pattern transform shared by every
// procedural pattern. Patterns embed it and call toPatternSpace before
// evaluating their own function.
type patternSpace struct {
	transform rtmath.Transform
}

func newPatternSpace() patternSpace {
	return patternSpace{transform: rtmath.IdentityTransform()}
}

func (p *patternSpace) SetTransform(t rtmath.Transform) { p.transform = t }

func (p patternSpace) toPatternSpace(objectPoint rtmath.Tuple) rtmath.Tuple {
	return p.transform.InverseTransformPoint(objectPoint)
}

// StripePattern alternates between two colors along the pattern-space x
// axis.
type StripePattern struct {
	patternSpace
	A, B core.Color
}

// NewStripePattern builds a stripe pattern with an identity transform.
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{patternSpace: newPatternSpace(), A: a, B: b}
}

// ColorAt implements Pattern.
func (p *StripePattern) ColorAt(objectPoint rtmath.Tuple) core.Color {
	pp := p.toPatternSpace(objectPoint)
	if evenFloor(pp.X) {
		return p.A
	}
	return p.B
}

// CheckersPattern alternates in a 3D checkerboard based on the parity
// of floor(x)+floor(y)+floor(z).
type CheckersPattern struct {
	patternSpace
	A, B core.Color
}

// NewCheckersPattern builds a checkers pattern with an identity transform.
func NewCheckersPattern(a, b core.Color) *CheckersPattern {
	return &CheckersPattern{patternSpace: newPatternSpace(), A: a, B: b}
}

// ColorAt implements Pattern.
func (p *CheckersPattern) ColorAt(objectPoint rtmath.Tuple) core.Color {
	pp := p.toPatternSpace(objectPoint)
	sum := math.Floor(pp.X) + math.Floor(pp.Y) + math.Floor(pp.Z)
	if math.Mod(math.Abs(sum), 2) == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern linearly interpolates from A to B across the
// fractional part of the pattern-space x coordinate.
type GradientPattern struct {
	patternSpace
	A, B core.Color
}

// NewGradientPattern builds a gradient pattern with an identity transform.
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{patternSpace: newPatternSpace(), A: a, B: b}
}

// ColorAt implements Pattern.
func (p *GradientPattern) ColorAt(objectPoint rtmath.Tuple) core.Color {
	pp := p.toPatternSpace(objectPoint)
	frac := pp.X - math.Floor(pp.X)
	delta := core.NewColor(p.B.R-p.A.R, p.B.G-p.A.G, p.B.B-p.A.B)
	return p.A.Add(delta.Scale(frac))
}

// RingPattern alternates between two colors based on the parity of
// floor(sqrt(x^2+z^2)).
type RingPattern struct {
	patternSpace
	A, B core.Color
}

// NewRingPattern builds a ring pattern with an identity transform.
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{patternSpace: newPatternSpace(), A: a, B: b}
}

// ColorAt implements Pattern.
func (p *RingPattern) ColorAt(objectPoint rtmath.Tuple) core.Color {
	pp := p.toPatternSpace(objectPoint)
	d := math.Sqrt(pp.X*pp.X + pp.Z*pp.Z)
	if evenFloor(d) {
		return p.A
	}
	return p.B
}

// evenFloor reports whether floor(v) is an even integer, handling
// negative v the way the book's stripe test does (floor(-0.5) == -1,
// which is odd).
func evenFloor(v float64) bool {
	f := math.Floor(v)
	return math.Mod(math.Abs(f), 2) == 0
}
