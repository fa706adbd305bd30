package material

import (
	"errors"

	"github.com/elowenkirk/rayforge/pkg/core"
)

// Image is an opaque handle to an out-of-core decoded bitmap, supplied
// by an image loader external to this core (see SPEC_FULL.md's AMBIENT
// STACK and spec.md §6). The core only ever reads through this
// interface — it never decodes image files itself.
type Image interface {
	Width() int
	Height() int
	At(x, y int) core.Color
}

// Bitmap is a simple in-memory Image backed by a flat color slice, row
// major. Loaders external to the core (see pkg/loaders) populate one
// of these from a decoded PNG/JPEG; tests and demo scenes build them
// directly.
type Bitmap struct {
	width, height int
	pixels        []core.Color
}

// NewBitmap builds a Bitmap from row-major pixel data. It returns an
// error for a zero-dimension image, per the construction-time
// validation spec.md §7 requires.
func NewBitmap(width, height int, pixels []core.Color) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("material: image texture must have non-zero dimensions")
	}
	if len(pixels) != width*height {
		return nil, errors.New("material: image pixel data does not match width*height")
	}
	return &Bitmap{width: width, height: height, pixels: pixels}, nil
}

// Width implements Image.
func (b *Bitmap) Width() int { return b.width }

// Height implements Image.
func (b *Bitmap) Height() int { return b.height }

// At implements Image, clamping out-of-range coordinates to the edge.
func (b *Bitmap) At(x, y int) core.Color {
	if x < 0 {
		x = 0
	}
	if x >= b.width {
		x = b.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= b.height {
		y = b.height - 1
	}
	return b.pixels[y*b.width+x]
}
