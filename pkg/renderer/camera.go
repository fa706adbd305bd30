package renderer

import (
	stdmath "math"

	rtmath "github.com/elowenkirk/rayforge/pkg/math"
)

// Camera generates world-space rays through a virtual image plane one
// unit in front of its transform, per spec.md §4.H.
type Camera struct {
	HSize, VSize int
	FOV          float64
	Transform    rtmath.Transform

	halfWidth, halfHeight float64
	pixelSize             float64
}

// NewCamera builds a camera for an hsize x vsize image with the given
// field of view in radians. fov is clamped to the open interval (0, π)
// — the 360°-equals-2.0 interpretation some renderers use is rejected
// in favor of the straightforward radians reading.
func NewCamera(hsize, vsize int, fov float64, transform rtmath.Transform) *Camera {
	const minFOV, maxFOV = 1e-4, stdmath.Pi - 1e-4
	if fov < minFOV {
		fov = minFOV
	}
	if fov > maxFOV {
		fov = maxFOV
	}

	c := &Camera{HSize: hsize, VSize: vsize, FOV: fov, Transform: transform}

	halfView := stdmath.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)

	return c
}

// ViewTransform builds the transform for a camera positioned at from,
// looking toward to, with up as the world's rough up direction. It
// orients the camera's local axes (left/true-up/forward) from those
// three points, then composes in the translation to from.
func ViewTransform(from, to, up rtmath.Tuple) (rtmath.Transform, error) {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	var trueUp rtmath.Tuple
	if left.Magnitude() == 0 {
		left = rtmath.NewVector(1, 0, 0)
		trueUp = rtmath.NewVector(0, 0, 1)
	} else {
		left = left.Normalize()
		trueUp = left.Cross(forward)
	}

	orientation := rtmath.Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	translation := rtmath.NewBuilder().Translate(-from.X, -from.Y, -from.Z).Matrix()

	return rtmath.NewTransform(orientation.Multiply(translation))
}

// RayForPixel returns the world-space ray through pixel (px, py),
// offset within the pixel by the subpixel fraction (subx, suby) in
// [0, 1). (0.5, 0.5) is pixel center.
func (c *Camera) RayForPixel(px, py int, subx, suby float64) rtmath.Ray {
	worldX := c.halfWidth - (float64(px)+subx)*c.pixelSize
	worldY := c.halfHeight - (float64(py)+suby)*c.pixelSize

	inv := c.Transform.Inverse()
	pixel := inv.MultiplyTuple(rtmath.NewPoint(worldX, worldY, -1))
	origin := inv.MultiplyTuple(rtmath.NewPoint(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return rtmath.NewRay(origin, direction)
}
