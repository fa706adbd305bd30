package math

import (
	"math"
	"testing"
)

func TestBuilder_ChainedOperationsApplyInDeclarationOrder(t *testing.T) {
	// rotate then scale then translate: translate(scale(rotate(p)))
	tr, err := NewBuilder().
		RotateX(math.Pi / 2).
		Scale(5, 5, 5).
		Translate(10, 5, 7).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := NewPoint(1, 0, 1)
	got := tr.Forward().MultiplyTuple(p)
	want := NewPoint(15, 0, 7)
	if !got.Equals(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTransform_ApplyThenInverseRecoversOriginal(t *testing.T) {
	tr, err := NewBuilder().RotateY(0.7).Scale(2, 3, 4).Translate(1, -2, 3).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := NewPoint(3.5, -1.2, 9.9)
	transformed := tr.TransformPoint(p)
	back := tr.InverseTransformPoint(transformed)

	if back.Sub(p).Magnitude() > 1e-4 {
		t.Errorf("round trip drifted: got %v, want %v", back, p)
	}
}

func TestNewTransform_RejectsSingularMatrix(t *testing.T) {
	singular := Matrix4{}
	if _, err := NewTransform(singular); err == nil {
		t.Error("expected an error building a transform from a singular matrix")
	}
}
