package core

import (
	"testing"

	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

func TestAABB_CombineWithEmptyIsIdentity(t *testing.T) {
	box := NewAABB(rtmath.NewPoint(-1, -1, -1), rtmath.NewPoint(1, 1, 1))
	combined := EmptyAABB().Combine(box)
	if !combined.Equals(box) {
		t.Errorf("got %v, want %v", combined, box)
	}
}

func TestAABB_Intersects(t *testing.T) {
	box := NewAABB(rtmath.NewPoint(-1, -1, -1), rtmath.NewPoint(1, 1, 1))

	tests := []struct {
		name   string
		origin rtmath.Tuple
		dir    rtmath.Tuple
		want   bool
	}{
		{"straight through +x", rtmath.NewPoint(-5, 0, 0), rtmath.NewVector(1, 0, 0), true},
		{"straight through +y", rtmath.NewPoint(0, -5, 0), rtmath.NewVector(0, 1, 0), true},
		{"misses entirely", rtmath.NewPoint(-5, 2, 2), rtmath.NewVector(1, 0, 0), false},
		{"origin inside", rtmath.NewPoint(0, 0.5, 0), rtmath.NewVector(0, 0, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := rtmath.NewRay(tt.origin, tt.dir)
			if got := box.Intersects(ray); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAABB_EmptyNeverIntersects(t *testing.T) {
	ray := rtmath.NewRay(rtmath.NewPoint(0, 0, -5), rtmath.NewVector(0, 0, 1))
	if EmptyAABB().Intersects(ray) {
		t.Error("an empty AABB should never report a hit")
	}
}

func TestAABB_EmptyNeverIntersectsObliqueRay(t *testing.T) {
	// A fully oblique direction (no zero components) never trips the
	// axis-parallel branch, so this exercises the explicit empty check.
	ray := rtmath.NewRay(rtmath.NewPoint(0, 0, 0), rtmath.NewVector(1, 1, 1))
	if EmptyAABB().Intersects(ray) {
		t.Error("an empty AABB should never report a hit, even for an oblique ray")
	}
}

func TestAABB_Transform(t *testing.T) {
	box := NewAABB(rtmath.NewPoint(-1, -1, -1), rtmath.NewPoint(1, 1, 1))
	m := rtmath.NewBuilder().RotateY(0.5).Scale(2, 2, 2).Translate(3, 0, 0).Matrix()
	transformed := box.Transform(m)

	original := NewAABB(rtmath.NewPoint(-1, -1, -1), rtmath.NewPoint(1, 1, 1))
	bloated := original.Transform(m)
	if !transformed.Contains(bloated) || !bloated.Contains(transformed) {
		t.Error("transform should be deterministic for the same matrix")
	}
}
