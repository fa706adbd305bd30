// Package loaders decodes image files into the material.Image handles
// the shading core reads textures through. Per spec.md §6 this is an
// external collaborator — the core never imports this package, only
// the other direction: a scene builder calls LoadImage and hands the
// result to material.UVImage/MapPattern.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/elowenkirk/rayforge/pkg/core"
	"github.com/elowenkirk/rayforge/pkg/material"
)

// LoadImage decodes a PNG or JPEG file at path into a material.Bitmap.
func LoadImage(path string) (*material.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: opening %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loaders: decoding %s: %w", path, err)
	}
	return bitmapFromImage(img)
}

func bitmapFromImage(img image.Image) (*material.Bitmap, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	pixels := make([]core.Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = core.NewColor(
				float64(r)/0xffff,
				float64(g)/0xffff,
				float64(b)/0xffff,
			)
		}
	}
	return material.NewBitmap(w, h, pixels)
}
