package shading

import (
	"testing"

	"github.com/elowenkirk/rayforge/pkg/core"
	"github.com/elowenkirk/rayforge/pkg/geometry"
	"github.com/elowenkirk/rayforge/pkg/light"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

func TestVisibility_PointLightUnoccluded(t *testing.T) {
	root := geometry.NewGroup()
	geometry.Build(root)

	l := light.NewPointLight(rtmath.NewPoint(-10, 10, -10), core.White)
	point := rtmath.NewPoint(0, 0, 0)

	if got := Visibility(root, point, l, 1); got != 1 {
		t.Errorf("Visibility() = %v, want 1 with nothing in the scene", got)
	}
}

func TestVisibility_PointLightFullyOccluded(t *testing.T) {
	root := geometry.NewGroup()
	blocker := geometry.NewSphere()
	tr, _ := rtmath.NewBuilder().Translate(0, 0, -5).Build()
	blocker.SetTransform(tr)
	root.AddChild(blocker)
	geometry.Build(root)

	l := light.NewPointLight(rtmath.NewPoint(0, 0, -10), core.White)
	point := rtmath.NewPoint(0, 0, 0)

	if got := Visibility(root, point, l, 1); got != 0 {
		t.Errorf("Visibility() = %v, want 0 with a sphere directly between point and light", got)
	}
}

func TestVisibility_ShapeBehindLightDoesNotOccludePoint(t *testing.T) {
	root := geometry.NewGroup()
	behind := geometry.NewSphere()
	tr, _ := rtmath.NewBuilder().Translate(0, 0, -15).Build()
	behind.SetTransform(tr)
	root.AddChild(behind)
	geometry.Build(root)

	l := light.NewPointLight(rtmath.NewPoint(0, 0, -10), core.White)
	point := rtmath.NewPoint(0, 0, 0)

	if got := Visibility(root, point, l, 1); got != 1 {
		t.Errorf("Visibility() = %v, want 1 for an occluder behind the light", got)
	}
}

func TestVisibility_NonShadowCastingShapeIgnored(t *testing.T) {
	root := geometry.NewGroup()
	blocker := geometry.NewSphere()
	tr, _ := rtmath.NewBuilder().Translate(0, 0, -5).Build()
	blocker.SetTransform(tr)
	blocker.SetCastsShadow(false)
	root.AddChild(blocker)
	geometry.Build(root)

	l := light.NewPointLight(rtmath.NewPoint(0, 0, -10), core.White)
	point := rtmath.NewPoint(0, 0, 0)

	if got := Visibility(root, point, l, 1); got != 1 {
		t.Errorf("Visibility() = %v, want 1 when the occluder has shadow-casting disabled", got)
	}
}

func TestVisibility_AreaLightFullyUnoccludedIsOne(t *testing.T) {
	root := geometry.NewGroup()
	geometry.Build(root)

	l, err := light.NewAreaLight(
		rtmath.NewPoint(-0.5, -0.5, -5),
		rtmath.NewVector(1, 0, 0), rtmath.NewVector(0, 1, 0),
		2, 2, core.White, 42,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := Visibility(root, rtmath.NewPoint(0, 0, 2), l, 7); got != 1 {
		t.Errorf("Visibility() = %v, want 1.0 for a fully unoccluded area light", got)
	}
}

func TestVisibility_AreaLightPartiallyOccludedIsBetweenZeroAndOne(t *testing.T) {
	root := geometry.NewGroup()
	occluder := geometry.NewPlane()
	tr, _ := rtmath.NewBuilder().RotateX(1.5708).Translate(0, 0, 0).Build()
	occluder.SetTransform(tr)
	root.AddChild(occluder)
	geometry.Build(root)

	l, err := light.NewAreaLight(
		rtmath.NewPoint(-0.5, -0.5, -5),
		rtmath.NewVector(1, 0, 0), rtmath.NewVector(0, 1, 0),
		4, 4, core.White, 42,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := Visibility(root, rtmath.NewPoint(0, 0, 2), l, 7)
	if got < 0 || got > 1 {
		t.Errorf("Visibility() = %v, want a fraction in [0, 1]", got)
	}

	// Same light and point, same seed: must reproduce exactly.
	again := Visibility(root, rtmath.NewPoint(0, 0, 2), l, 7)
	if got != again {
		t.Errorf("Visibility() is not deterministic for the same seeds: %v vs %v", got, again)
	}
}
