// Package math provides the linear algebra primitives the rest of the
// renderer is built on: w-tagged tuples, 4x4 matrices, affine transforms
// and rays.
package math

import "math"

// Epsilon is the default absolute tolerance used when comparing floating
// point components across this package.
const Epsilon = 1e-5

// Tuple is a 4-component (x, y, z, w) value. Points carry w=1, vectors
// carry w=0; arithmetic on tuples preserves that tag the way the book
// algebra expects: point-point is a vector, point+vector is a point, and
// vector+vector is a vector.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint returns a tuple tagged as a point (w=1).
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector returns a tuple tagged as a vector (w=0).
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether this tuple is tagged as a point.
func (t Tuple) IsPoint() bool { return t.W == 1 }

// IsVector reports whether this tuple is tagged as a vector.
func (t Tuple) IsVector() bool { return t.W == 0 }

// Add returns t+other, preserving the w-tagging rules.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Sub returns t-other, preserving the w-tagging rules.
func (t Tuple) Sub(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Scale returns the tuple scaled by a scalar.
func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Magnitude returns the Euclidean length of the tuple's xyz components.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z)
}

// Normalize returns a unit-length copy of the tuple. The w component is
// left untouched, matching the book's vector normalization.
func (t Tuple) Normalize() Tuple {
	m := t.Magnitude()
	if m == 0 {
		return t
	}
	return Tuple{t.X / m, t.Y / m, t.Z / m, t.W}
}

// Dot returns the dot product of the xyz components of two tuples.
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z
}

// Cross returns the cross product of two vectors. The result is tagged
// as a vector regardless of the operands' tags.
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns t reflected about the given normal vector.
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Sub(normal.Scale(2 * t.Dot(normal)))
}

// Equals compares two tuples component-wise within an absolute tolerance.
func (t Tuple) Equals(other Tuple) bool {
	return floatEqual(t.X, other.X) && floatEqual(t.Y, other.Y) &&
		floatEqual(t.Z, other.Z) && floatEqual(t.W, other.W)
}

func floatEqual(a, b float64) bool {
	return a == b || math.Abs(a-b) < Epsilon
}

// Normal wraps a unit-length vector. Constructing one always normalizes
// the input so callers never carry a denormalized surface normal.
type Normal struct {
	v Tuple
}

// NewNormal builds a Normal from raw components, normalizing them.
func NewNormal(x, y, z float64) Normal {
	return NormalFromVector(NewVector(x, y, z))
}

// NormalFromVector normalizes an existing vector into a Normal. A
// zero-length vector (degenerate triangle, etc.) is returned as-is so
// callers see zero diffuse/specular contribution rather than NaNs.
func NormalFromVector(v Tuple) Normal {
	if v.Magnitude() == 0 {
		return Normal{v: NewVector(0, 0, 0)}
	}
	return Normal{v: v.Normalize()}
}

// Vector returns the underlying unit vector.
func (n Normal) Vector() Tuple { return n.v }

// Negate returns the opposite-facing normal.
func (n Normal) Negate() Normal { return Normal{v: n.v.Negate()} }

// Dot returns the dot product with another tuple's xyz components.
func (n Normal) Dot(other Tuple) float64 { return n.v.Dot(other) }
