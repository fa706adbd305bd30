package math

import (
	"fmt"
	stdmath "math"
)

// Transform is an affine transform. Only the inverse is stored — the
// forward matrix is cheap to recompute on the rare occasions it's
// actually needed (camera ray origins, AABB corner transforms), and
// every hot-path consumer (ray/point/normal transforms) wants the
// inverse anyway.
type Transform struct {
	inv Matrix4
}

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform {
	return Transform{inv: Identity4()}
}

// NewTransform builds a Transform from its forward matrix, inverting it
// once at construction time. It returns an error if the matrix is
// singular, matching the construction-time fail-fast policy for
// degenerate transforms.
func NewTransform(forward Matrix4) (Transform, error) {
	inv, err := forward.Inverse()
	if err != nil {
		return Transform{}, fmt.Errorf("math: cannot build transform: %w", err)
	}
	return Transform{inv: inv}, nil
}

// Inverse returns the stored inverse matrix.
func (t Transform) Inverse() Matrix4 { return t.inv }

// Forward recovers the forward matrix by re-inverting the stored
// inverse. Safe because the inverse of a non-singular matrix is itself
// non-singular.
func (t Transform) Forward() Matrix4 {
	f, err := t.inv.Inverse()
	if err != nil {
		// Can only happen if t.inv itself was built from a singular
		// matrix, which NewTransform already rejects.
		return Identity4()
	}
	return f
}

// TransformPoint applies the forward transform to a point.
func (t Transform) TransformPoint(p Tuple) Tuple {
	return t.Forward().MultiplyTuple(p)
}

// TransformVector applies the forward transform to a vector.
func (t Transform) TransformVector(v Tuple) Tuple {
	return t.Forward().MultiplyTuple(v)
}

// InverseTransformPoint applies the inverse transform to a point —
// the hot-path direction used to bring a world-space ray/point into a
// shape's object space.
func (t Transform) InverseTransformPoint(p Tuple) Tuple {
	return t.inv.MultiplyTuple(p)
}

// InverseTransformVector applies the inverse transform to a vector.
func (t Transform) InverseTransformVector(v Tuple) Tuple {
	return t.inv.MultiplyTuple(v)
}

// Builder composes a sequence of translate/scale/rotate operations into
// a single Transform. Operations are applied in the order they're
// declared — the first call runs first against a point, and each
// later call premultiplies the accumulated matrix.
type Builder struct {
	m Matrix4
}

// NewBuilder starts a transform chain at the identity.
func NewBuilder() *Builder {
	return &Builder{m: Identity4()}
}

func (b *Builder) apply(op Matrix4) *Builder {
	b.m = op.Multiply(b.m)
	return b
}

// Translate appends a translation by (x, y, z).
func (b *Builder) Translate(x, y, z float64) *Builder {
	op := Identity4()
	op[0][3], op[1][3], op[2][3] = x, y, z
	return b.apply(op)
}

// Scale appends a non-uniform scale by (x, y, z).
func (b *Builder) Scale(x, y, z float64) *Builder {
	op := Identity4()
	op[0][0], op[1][1], op[2][2] = x, y, z
	return b.apply(op)
}

// RotateX appends a rotation of r radians about the x axis.
func (b *Builder) RotateX(r float64) *Builder {
	op := Identity4()
	c, s := stdmath.Cos(r), stdmath.Sin(r)
	op[1][1], op[1][2] = c, -s
	op[2][1], op[2][2] = s, c
	return b.apply(op)
}

// RotateY appends a rotation of r radians about the y axis.
func (b *Builder) RotateY(r float64) *Builder {
	op := Identity4()
	c, s := stdmath.Cos(r), stdmath.Sin(r)
	op[0][0], op[0][2] = c, s
	op[2][0], op[2][2] = -s, c
	return b.apply(op)
}

// RotateZ appends a rotation of r radians about the z axis.
func (b *Builder) RotateZ(r float64) *Builder {
	op := Identity4()
	c, s := stdmath.Cos(r), stdmath.Sin(r)
	op[0][0], op[0][1] = c, -s
	op[1][0], op[1][1] = s, c
	return b.apply(op)
}

// Build finalizes the chain into a Transform, inverting the accumulated
// forward matrix once.
func (b *Builder) Build() (Transform, error) {
	return NewTransform(b.m)
}

// Matrix returns the accumulated forward matrix without inverting it,
// useful when composing builders (e.g. a shape transform relative to
// its parent group).
func (b *Builder) Matrix() Matrix4 { return b.m }
