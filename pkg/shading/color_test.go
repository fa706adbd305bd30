package shading

import (
	"testing"

	"github.com/elowenkirk/rayforge/pkg/core"
	"github.com/elowenkirk/rayforge/pkg/geometry"
	"github.com/elowenkirk/rayforge/pkg/light"
	"github.com/elowenkirk/rayforge/pkg/material"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

func defaultTestWorld() World {
	outer := geometry.NewSphere()
	m := material.Default()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := geometry.NewSphere()
	tr, _ := rtmath.NewBuilder().Scale(0.5, 0.5, 0.5).Build()
	inner.SetTransform(tr)

	root := geometry.NewGroup()
	root.AddChild(outer)
	root.AddChild(inner)
	geometry.Build(root)

	l := light.NewPointLight(rtmath.NewPoint(-10, 10, -10), core.White)
	return World{Root: root, Lights: []light.Light{l}}
}

func TestColorAt_HitsTheOuterSphere(t *testing.T) {
	world := defaultTestWorld()
	ray := rtmath.NewRay(rtmath.NewPoint(0, 0, -5), rtmath.NewVector(0, 0, 1))

	got := ColorAt(world, ray, DefaultMaxDepth, 1)
	want := core.NewColor(0.38066, 0.47583, 0.2855)
	if !got.Equals(want) {
		t.Errorf("ColorAt = %v, want %v", got, want)
	}
}

func TestColorAt_MissReturnsBlack(t *testing.T) {
	world := defaultTestWorld()
	ray := rtmath.NewRay(rtmath.NewPoint(0, 0, -5), rtmath.NewVector(0, 1, 0))

	got := ColorAt(world, ray, DefaultMaxDepth, 1)
	if !got.Equals(core.Black) {
		t.Errorf("expected a miss to be black, got %v", got)
	}
}

func TestColorAt_ZeroDepthHasNoReflectedOrRefracted(t *testing.T) {
	s := geometry.NewSphere()
	m := material.Default()
	m.Reflective = 1
	m.Transparency = 1
	m.RefractiveIndex = 1.5
	s.SetMaterial(m)
	geometry.Build(s)

	world := World{Root: s, Lights: []light.Light{light.NewPointLight(rtmath.NewPoint(-10, 10, -10), core.White)}}
	ray := rtmath.NewRay(rtmath.NewPoint(0, 0, -5), rtmath.NewVector(0, 0, 1))

	withDepth := ColorAt(world, ray, 0, 1)
	xs := geometry.Intersect(s, ray)
	hit, _ := xs.Hit()
	comps := PrepareComputations(hit, ray, xs)

	surfaceOnly := core.Black
	for _, l := range world.Lights {
		surfaceOnly = surfaceOnly.Add(Lighting(comps, l, world.Root, 1))
	}
	if !withDepth.Equals(surfaceOnly) {
		t.Errorf("remaining_depth=0 should contribute no reflection/refraction: got %v, want surface-only %v", withDepth, surfaceOnly)
	}
}

func TestSchlick_SmallAngleWithN2GreaterThanN1(t *testing.T) {
	s := geometry.NewSphere()
	m := material.Default()
	m.Transparency = 1
	m.RefractiveIndex = 1.5
	s.SetMaterial(m)
	geometry.Build(s)

	ray := rtmath.NewRay(rtmath.NewPoint(0, 0.99, -2), rtmath.NewVector(0, 0, 1))
	xs := geometry.Intersect(s, ray)
	hit, ok := xs.Hit()
	if !ok {
		t.Fatalf("expected a hit")
	}
	comps := PrepareComputations(hit, ray, xs)

	got := comps.Schlick()
	want := 0.48873
	if got < want-1e-4 || got > want+1e-4 {
		t.Errorf("Schlick() = %v, want %v", got, want)
	}
}

func TestSchlick_TotalInternalReflection(t *testing.T) {
	s := geometry.NewSphere()
	m := material.Default()
	m.Transparency = 1
	m.RefractiveIndex = 1.5
	s.SetMaterial(m)
	geometry.Build(s)

	ray := rtmath.NewRay(rtmath.NewPoint(0, 0, 0.70710678), rtmath.NewVector(0, 1, 0))
	xs := geometry.Intersect(s, ray)
	// The second intersection (t = +sqrt(2)/2) is where the ray exits
	// into a denser-to-rarer transition that totally internally
	// reflects.
	hit := xs[1]
	comps := PrepareComputations(hit, ray, xs)

	if got := comps.Schlick(); got != 1.0 {
		t.Errorf("Schlick() under total internal reflection = %v, want 1.0", got)
	}
}

func TestRefractiveIndices_GlassSphereStack(t *testing.T) {
	glass := func(index float64) *geometry.Sphere {
		s := geometry.NewSphere()
		m := material.Default()
		m.Transparency = 1
		m.RefractiveIndex = index
		s.SetMaterial(m)
		return s
	}

	a := glass(1.5)
	atr, _ := rtmath.NewBuilder().Scale(2, 2, 2).Build()
	a.SetTransform(atr)

	b := glass(2.0)
	btr, _ := rtmath.NewBuilder().Translate(0, 0, -0.25).Build()
	b.SetTransform(btr)

	c := glass(2.5)
	ctr, _ := rtmath.NewBuilder().Translate(0, 0, 0.25).Build()
	c.SetTransform(ctr)

	root := geometry.NewGroup()
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)
	geometry.Build(root)

	ray := rtmath.NewRay(rtmath.NewPoint(0, 0, -4), rtmath.NewVector(0, 0, 1))
	xs := geometry.Intersect(root, ray)
	if len(xs) != 6 {
		t.Fatalf("expected 6 intersections across the three nested glass spheres, got %d", len(xs))
	}

	wantN1 := []float64{1.0, 1.5, 2.0, 2.5, 2.5, 1.5}
	wantN2 := []float64{1.5, 2.0, 2.5, 2.5, 1.5, 1.0}
	for i, x := range xs {
		comps := PrepareComputations(x, ray, xs)
		if comps.N1 != wantN1[i] || comps.N2 != wantN2[i] {
			t.Errorf("hit %d: n1=%v n2=%v, want n1=%v n2=%v", i, comps.N1, comps.N2, wantN1[i], wantN2[i])
		}
	}
}
