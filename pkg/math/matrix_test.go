package math

import "testing"

func TestMatrix4_InverseRoundTrip(t *testing.T) {
	m := Matrix4{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	}

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	product := m.Multiply(inv)
	if !product.Equals(Identity4()) {
		t.Errorf("m * m.Inverse() should be identity, got %v", product)
	}
}

func TestMatrix4_InverseRejectsSingular(t *testing.T) {
	m := Matrix4{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if _, err := m.Inverse(); err == nil {
		t.Error("expected an error for a singular matrix, got nil")
	}
}

func TestMatrix4_MultiplyTupleRoundTripsThroughInverse(t *testing.T) {
	m := Matrix4{
		{1, 0, 0, 5},
		{0, 1, 0, -3},
		{0, 0, 1, 2},
		{0, 0, 0, 1},
	}
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := NewPoint(4, -4, 3)
	transformed := m.MultiplyTuple(p)
	back := inv.MultiplyTuple(transformed)

	if !back.Equals(p) {
		t.Errorf("round trip failed: got %v, want %v", back, p)
	}
}
