package light

import (
	"testing"

	"github.com/elowenkirk/rayforge/pkg/core"
	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

func TestAreaLight_RejectsZeroSteps(t *testing.T) {
	_, err := NewAreaLight(rtmath.NewPoint(0, 0, 0), rtmath.NewVector(1, 0, 0), rtmath.NewVector(0, 1, 0), 0, 2, core.White, 1)
	if err == nil {
		t.Error("expected an error for usteps=0")
	}
}

func TestAreaLight_SampleCountAndPosition(t *testing.T) {
	l, err := NewAreaLight(rtmath.NewPoint(0, 0, 0), rtmath.NewVector(2, 0, 0), rtmath.NewVector(0, 2, 0), 4, 2, core.White, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.SampleCount() != 8 {
		t.Errorf("got %d samples, want 8", l.SampleCount())
	}
	want := rtmath.NewPoint(1, 1, 0)
	if !l.Position().Equals(want) {
		t.Errorf("got centroid %v, want %v", l.Position(), want)
	}
}

func TestAreaLight_SamplePointsDeterministicForSameSeeds(t *testing.T) {
	l, _ := NewAreaLight(rtmath.NewPoint(-0.5, -0.5, -5), rtmath.NewVector(1, 0, 0), rtmath.NewVector(0, 1, 0), 2, 2, core.White, 7)

	a := l.SamplePoints(100)
	b := l.SamplePoints(100)
	if len(a) != 4 || len(b) != 4 {
		t.Fatalf("expected 4 samples, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			t.Errorf("sample %d differs between calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestAreaLight_SamplePointsVaryByRowSeed(t *testing.T) {
	l, _ := NewAreaLight(rtmath.NewPoint(-0.5, -0.5, -5), rtmath.NewVector(1, 0, 0), rtmath.NewVector(0, 1, 0), 2, 2, core.White, 7)

	a := l.SamplePoints(1)
	b := l.SamplePoints(2)

	identical := true
	for i := range a {
		if !a[i].Equals(b[i]) {
			identical = false
		}
	}
	if identical {
		t.Error("expected different row seeds to produce different jitter")
	}
}

func TestPointLight_SingleSampleAtItsPosition(t *testing.T) {
	pos := rtmath.NewPoint(-10, 10, -10)
	l := NewPointLight(pos, core.White)
	samples := l.SamplePoints(999)
	if len(samples) != 1 || !samples[0].Equals(pos) {
		t.Errorf("got %v, want single sample at %v", samples, pos)
	}
}
