package renderer

import (
	"runtime"
	"sync"

	"github.com/elowenkirk/rayforge/pkg/core"
)

// Canvas is a fixed-size grid of colors. Rows never overlap in memory,
// so concurrent writers touching distinct rows need no locking —
// ParForEach's one-task-per-row dispatch relies on this.
type Canvas struct {
	Width, Height int
	pixels        []core.Color
}

// NewCanvas allocates a black width x height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height, pixels: make([]core.Color, width*height)}
}

func (c *Canvas) index(x, y int) int { return y*c.Width + x }

// Set writes the color at (x, y).
func (c *Canvas) Set(x, y int, col core.Color) {
	c.pixels[c.index(x, y)] = col
}

// Get returns the color at (x, y).
func (c *Canvas) Get(x, y int) core.Color {
	return c.pixels[c.index(x, y)]
}

// Row returns the slice of colors backing row y, for writers that want
// to fill a whole row at once without repeated index math.
func (c *Canvas) Row(y int) []core.Color {
	return c.pixels[c.index(0, y) : c.index(0, y)+c.Width]
}

// ParForEach calls fn for every pixel and stores its result, per
// spec.md §4.I/§4.J: work is partitioned by row across a pool of
// roughly runtime.NumCPU() tasks, so no two tasks ever write the same
// cell and callers need no locking of their own. Task order does not
// affect output.
func (c *Canvas) ParForEach(fn func(x, y int) core.Color) {
	numWorkers := runtime.NumCPU()
	if numWorkers > c.Height {
		numWorkers = c.Height
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	rows := make(chan int, c.Height)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				row := c.Row(y)
				for x := 0; x < c.Width; x++ {
					row[x] = fn(x, y)
				}
			}
		}()
	}

	for y := 0; y < c.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
}
