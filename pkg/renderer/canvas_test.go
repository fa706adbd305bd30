package renderer

import (
	"testing"

	"github.com/elowenkirk/rayforge/pkg/core"
)

func TestCanvas_NewIsBlack(t *testing.T) {
	c := NewCanvas(10, 20)
	if c.Width != 10 || c.Height != 20 {
		t.Fatalf("dimensions = %dx%d, want 10x20", c.Width, c.Height)
	}
	if got := c.Get(3, 7); !got.Equals(core.Black) {
		t.Errorf("Get() = %v, want black", got)
	}
}

func TestCanvas_SetAndGet(t *testing.T) {
	c := NewCanvas(10, 20)
	red := core.NewColor(1, 0, 0)
	c.Set(2, 3, red)
	if got := c.Get(2, 3); !got.Equals(red) {
		t.Errorf("Get() = %v, want %v", got, red)
	}
}

func TestCanvas_RowIsIndependentPerRow(t *testing.T) {
	c := NewCanvas(4, 3)
	row := c.Row(1)
	if len(row) != 4 {
		t.Fatalf("Row() length = %d, want 4", len(row))
	}
	row[2] = core.White
	if got := c.Get(2, 1); !got.Equals(core.White) {
		t.Errorf("writing through Row() didn't reach Get(): got %v", got)
	}
	if got := c.Get(2, 0); !got.Equals(core.Black) {
		t.Errorf("writing row 1 leaked into row 0: got %v", got)
	}
}
