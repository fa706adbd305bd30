package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(1, 0, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	img.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating test png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
}

func TestLoadImage_DecodesPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swatch.png")
	writeTestPNG(t, path)

	bmp, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	if bmp.Width() != 2 || bmp.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", bmp.Width(), bmp.Height())
	}

	red := bmp.At(0, 0)
	if red.R < 0.99 || red.G > 0.01 || red.B > 0.01 {
		t.Errorf("top-left = %v, want pure red", red)
	}
}

func TestLoadImage_MissingFileErrors(t *testing.T) {
	if _, err := LoadImage("/nonexistent/path/to/texture.png"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
