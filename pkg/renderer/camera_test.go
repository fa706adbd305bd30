package renderer

import (
	"math"
	"testing"

	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

func TestCamera_PixelSizeHorizontalCanvas(t *testing.T) {
	c := NewCamera(200, 125, math.Pi/2, rtmath.IdentityTransform())
	if math.Abs(c.pixelSize-0.01) > 1e-4 {
		t.Errorf("pixelSize = %v, want 0.01", c.pixelSize)
	}
}

func TestCamera_PixelSizeVerticalCanvas(t *testing.T) {
	c := NewCamera(125, 200, math.Pi/2, rtmath.IdentityTransform())
	if math.Abs(c.pixelSize-0.01) > 1e-4 {
		t.Errorf("pixelSize = %v, want 0.01", c.pixelSize)
	}
}

func TestCamera_RayThroughCenter(t *testing.T) {
	c := NewCamera(201, 101, math.Pi/2, rtmath.IdentityTransform())
	r := c.RayForPixel(100, 50, 0.5, 0.5)

	if !r.Origin.Equals(rtmath.NewPoint(0, 0, 0)) {
		t.Errorf("origin = %v, want (0,0,0)", r.Origin)
	}
	if !r.Direction.Equals(rtmath.NewVector(0, 0, -1)) {
		t.Errorf("direction = %v, want (0,0,-1)", r.Direction)
	}
}

func TestCamera_RayThroughCorner(t *testing.T) {
	c := NewCamera(201, 101, math.Pi/2, rtmath.IdentityTransform())
	r := c.RayForPixel(0, 0, 0.5, 0.5)

	if !r.Origin.Equals(rtmath.NewPoint(0, 0, 0)) {
		t.Errorf("origin = %v, want (0,0,0)", r.Origin)
	}
	want := rtmath.NewVector(0.66519, 0.33259, -0.66851)
	if !r.Direction.Equals(want) {
		t.Errorf("direction = %v, want %v", r.Direction, want)
	}
}

func TestCamera_RayWithTransformedCamera(t *testing.T) {
	tr, err := rtmath.NewBuilder().Translate(0, -2, 5).RotateY(math.Pi / 4).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := NewCamera(201, 101, math.Pi/2, tr)
	r := c.RayForPixel(100, 50, 0.5, 0.5)

	if !r.Origin.Equals(rtmath.NewPoint(0, 2, -5)) {
		t.Errorf("origin = %v, want (0,2,-5)", r.Origin)
	}
	half := math.Sqrt2 / 2
	want := rtmath.NewVector(half, 0, -half)
	if !r.Direction.Equals(want) {
		t.Errorf("direction = %v, want %v", r.Direction, want)
	}
}

func TestCamera_FOVClampedToOpenInterval(t *testing.T) {
	c := NewCamera(100, 100, 10, rtmath.IdentityTransform())
	if c.FOV >= math.Pi {
		t.Errorf("FOV = %v, want clamped below pi", c.FOV)
	}

	c2 := NewCamera(100, 100, -1, rtmath.IdentityTransform())
	if c2.FOV <= 0 {
		t.Errorf("FOV = %v, want clamped above 0", c2.FOV)
	}
}
