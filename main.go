package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	stdmath "math"
	"os"
	"path/filepath"
	"strings"
	"time"

	rtmath "github.com/elowenkirk/rayforge/pkg/math"
	"github.com/elowenkirk/rayforge/pkg/renderer"
	"github.com/elowenkirk/rayforge/pkg/scene"
	"github.com/elowenkirk/rayforge/pkg/shading"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene to render: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 400, "Output width in pixels")
	height := flag.Int("height", 225, "Output height in pixels")
	fov := flag.Float64("fov", stdmath.Pi/3, "Camera field of view in radians")
	samples := flag.Int("samples", 16, "Max samples per pixel for the adaptive grid")
	depth := flag.Int("depth", shading.DefaultMaxDepth, "Maximum ray recursion depth")
	seed := flag.Uint64("seed", 42, "RNG seed for area-light jitter and pixel sampling")
	out := flag.String("out", "", "Output PNG path (default: output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("rayforge — a CPU recursive ray tracer")
		fmt.Println("Usage: rayforge [options]")
		fmt.Println()
		flag.PrintDefaults()
		fmt.Println()
		fmt.Printf("Available scenes: %s\n", strings.Join(scene.Names(), ", "))
		return
	}

	fmt.Println("Starting rayforge...")

	built, err := scene.Builtin(*sceneType)
	if err != nil {
		fmt.Printf("Unknown scene %q, falling back to default: %v\n", *sceneType, err)
		*sceneType = "default"
		built, err = scene.Builtin(*sceneType)
		if err != nil {
			fmt.Printf("Error building default scene: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("Using %q scene...\n", *sceneType)

	camTransform, camErr := cameraTransformFor(*sceneType)
	if camErr != nil {
		fmt.Printf("Error building camera transform: %v\n", camErr)
		os.Exit(1)
	}
	cam := renderer.NewCamera(*width, *height, *fov, camTransform)

	world := shading.World{Root: built.Root, Lights: built.Lights}
	config := renderer.SamplingConfig{MaxSamples: *samples, MaxDepth: *depth}
	rnd := renderer.NewRenderer(world, cam, config, *seed)

	canvas := renderer.NewCanvas(*width, *height)

	startTime := time.Now()
	stats := rnd.Render(canvas)
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Samples per pixel: %.1f (range %d - %d), %d rows early-exited\n",
		stats.AverageSamples, stats.MinSamplesUsed, stats.MaxSamplesUsed, stats.EarlyExitedRows)

	outputPath := *out
	if outputPath == "" {
		outputDir := filepath.Join("output", *sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := writePNG(outputPath, canvas); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", outputPath)
}

// cameraTransformFor returns the demo camera placement for a named
// builtin scene, matching the vantage point each scene was composed
// around.
func cameraTransformFor(name string) (rtmath.Transform, error) {
	up := rtmath.NewVector(0, 1, 0)
	switch name {
	case "cornell":
		return renderer.ViewTransform(rtmath.NewPoint(0, 0, -14), rtmath.NewPoint(0, 0, 0), up)
	default:
		return renderer.ViewTransform(rtmath.NewPoint(0, 1.5, -5), rtmath.NewPoint(0, 1, 0), up)
	}
}

func writePNG(path string, canvas *renderer.Canvas) error {
	img := image.NewRGBA(image.Rect(0, 0, canvas.Width, canvas.Height))
	for y := 0; y < canvas.Height; y++ {
		for x := 0; x < canvas.Width; x++ {
			r, g, b := canvas.Get(x, y).RGBA8()
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
