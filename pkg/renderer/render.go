package renderer

import (
	stdmath "math"

	"github.com/elowenkirk/rayforge/pkg/core"
	"github.com/elowenkirk/rayforge/pkg/shading"
)

// SamplingConfig controls adaptive anti-aliasing and ray recursion
// depth, per spec.md §4.G and §4.I.
type SamplingConfig struct {
	// MaxSamples is the largest per-pixel sample count the N x N
	// jittered grid may reach. N = floor(sqrt(MaxSamples)), so 16 gives
	// a 4x4 grid. Values below 4 give a single pixel-centre sample, and
	// 4 through 8 give the four-corner 2x2 grid.
	MaxSamples int
	MaxDepth   int
}

// DefaultSamplingConfig returns the book's usual starting point: a 4x4
// jittered grid and a recursion depth of shading.DefaultMaxDepth.
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{MaxSamples: 16, MaxDepth: shading.DefaultMaxDepth}
}

// RenderStats summarizes a completed render.
type RenderStats struct {
	TotalPixels     int
	TotalSamples    int
	AverageSamples  float64
	MinSamplesUsed  int
	MaxSamplesUsed  int
	EarlyExitedRows int
}

// Renderer ties a world, a camera and a sampling configuration
// together and fills a Canvas via Canvas.ParForEach.
type Renderer struct {
	World  shading.World
	Camera *Camera
	Config SamplingConfig
	Seed   uint64
}

// NewRenderer builds a renderer with the given world, camera and
// sampling config, seeded for reproducible area-light jitter and
// pixel-grid sampling.
func NewRenderer(world shading.World, camera *Camera, config SamplingConfig, seed uint64) *Renderer {
	return &Renderer{World: world, Camera: camera, Config: config, Seed: seed}
}

// Render fills canvas and returns aggregate sampling statistics,
// dispatching work through Canvas.ParForEach (spec.md §4.I/§4.J) so
// the partitioning-by-row guarantee lives in one place. Each pixel's
// RNG substream is derived solely from the renderer's seed and the
// pixel's own (row, column), never from scheduling order, so the
// final canvas is bit-identical no matter how ParForEach distributes
// rows across workers.
func (r *Renderer) Render(canvas *Canvas) RenderStats {
	samplesUsed := make([]int, canvas.Width*canvas.Height)
	earlyExited := make([]bool, canvas.Width*canvas.Height)

	canvas.ParForEach(func(x, y int) core.Color {
		col, samples, earlyExit := r.samplePixel(x, y)
		idx := y*canvas.Width + x
		samplesUsed[idx] = samples
		earlyExited[idx] = earlyExit
		return col
	})

	return collectStats(canvas.Width, canvas.Height, samplesUsed, earlyExited)
}

func collectStats(width, height int, samplesUsed []int, earlyExited []bool) RenderStats {
	stats := RenderStats{TotalPixels: width * height, MinSamplesUsed: -1}
	for y := 0; y < height; y++ {
		rowEarlyExited := false
		for x := 0; x < width; x++ {
			idx := y*width + x
			s := samplesUsed[idx]
			stats.TotalSamples += s
			if stats.MinSamplesUsed < 0 || s < stats.MinSamplesUsed {
				stats.MinSamplesUsed = s
			}
			if s > stats.MaxSamplesUsed {
				stats.MaxSamplesUsed = s
			}
			if earlyExited[idx] {
				rowEarlyExited = true
			}
		}
		if rowEarlyExited {
			stats.EarlyExitedRows++
		}
	}
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}

// gridCell is one cell of the N x N jittered sampling grid, identified
// by its (column, row) index within the grid.
type gridCell struct{ i, j int }

// gridSize returns N for an N x N sampling grid, per spec.md §4.I's
// N = sqrt(samples). MaxSamples <= 1 degenerates to a single
// center-of-pixel sample.
func gridSize(maxSamples int) int {
	if maxSamples <= 1 {
		return 1
	}
	n := int(stdmath.Sqrt(float64(maxSamples)))
	if n < 1 {
		n = 1
	}
	return n
}

// cornerCellOrder returns every cell of the N x N grid with the four
// extreme corner cells first — grounded on
// _examples/original_source/src/renderer/render.rs's Samples::grid,
// whose corner offsets are the extreme cells of the very same grid
// samplePixel escalates into, rather than a separate fixed probe.
// For n <= 2 every cell is a corner, so the whole grid is returned.
func cornerCellOrder(n int) []gridCell {
	corners := []gridCell{{0, 0}, {n - 1, 0}, {0, n - 1}, {n - 1, n - 1}}
	if n <= 2 {
		return corners
	}

	isCorner := make(map[gridCell]bool, 4)
	for _, c := range corners {
		isCorner[c] = true
	}

	cells := append([]gridCell{}, corners...)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := gridCell{i, j}
			if !isCorner[c] {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// samplePixel implements spec.md §4.I's adaptive anti-aliasing: sample
// the four corner cells of the N x N grid first; if the configured cap
// collapses the grid to those four cells, or they're all perceptibly
// equal, their mean is the answer. Otherwise the remaining cells of
// that same grid are sampled and folded into the average — the corner
// rays already cast are never discarded.
func (r *Renderer) samplePixel(px, py int) (core.Color, int, bool) {
	n := gridSize(r.Config.MaxSamples)
	if n == 1 {
		ray := r.Camera.RayForPixel(px, py, 0.5, 0.5)
		return shading.ColorAt(r.World, ray, r.Config.MaxDepth, r.rowSeed(py)), 1, true
	}

	cells := cornerCellOrder(n)
	rng := core.NewRNG(r.pixelSeed(px, py))
	rowSeed := r.rowSeed(py)

	samples := make([]core.Color, 0, len(cells))
	for i := 0; i < 4; i++ {
		samples = append(samples, r.sampleCell(px, py, cells[i], n, rng, rowSeed))
	}
	corners := samples[:4]

	if len(cells) == 4 || cornersAgree(corners) {
		return meanColor(corners), len(corners), true
	}

	for _, cell := range cells[4:] {
		samples = append(samples, r.sampleCell(px, py, cell, n, rng, rowSeed))
	}
	return meanColor(samples), len(samples), false
}

func (r *Renderer) sampleCell(px, py int, cell gridCell, n int, rng *core.RNG, rowSeed uint64) core.Color {
	ju, jv := rng.Get2D()
	subx := (float64(cell.i) + ju) / float64(n)
	suby := (float64(cell.j) + jv) / float64(n)
	ray := r.Camera.RayForPixel(px, py, subx, suby)
	return shading.ColorAt(r.World, ray, r.Config.MaxDepth, rowSeed)
}

// rowSeed derives the per-row RNG substream seed straight from the
// renderer's global seed — it depends only on (Seed, y), never on
// scheduling order, so it's safe to recompute independently for every
// pixel call ParForEach makes.
func (r *Renderer) rowSeed(y int) uint64 {
	return core.NewRNG(r.Seed).SubSeed(uint64(y))
}

// pixelSeed derives a pixel's own substream from its row's substream.
func (r *Renderer) pixelSeed(x, y int) uint64 {
	return core.NewRNG(r.rowSeed(y)).SubSeed(uint64(x))
}

func cornersAgree(corners []core.Color) bool {
	for i := 1; i < len(corners); i++ {
		if !corners[0].PerceptiblyEqual(corners[i]) {
			return false
		}
	}
	return true
}

func meanColor(colors []core.Color) core.Color {
	sum := core.Black
	for _, c := range colors {
		sum = sum.Add(c)
	}
	return sum.Scale(1 / float64(len(colors)))
}
