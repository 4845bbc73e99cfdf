package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/mandelzoom/internal/fractal"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 set, got %x", c.Grid[0][0])
	}

	c.Set(1, 3)
	if c.Grid[0][0] != 0x2801|0x80 {
		t.Errorf("expected dots 1 and 8, got %x", c.Grid[0][0])
	}

	// out of range is ignored
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)
	if c.Grid[0][1] != 0x2800 {
		t.Errorf("expected untouched cell, got %x", c.Grid[0][1])
	}
}

func TestPreviewMembership(t *testing.T) {
	// 2x2 grid: only the top-left pixel is a member
	div := fractal.IterationGrid{
		{50, 3},
		{2, 1},
	}

	c := Preview(div, 50, 2)
	out := c.String()
	if !strings.ContainsRune(out, '⠁') && c.Grid[0][0] == 0x2800 {
		t.Error("expected member pixel to set dots")
	}

	// an all-exterior grid renders an empty canvas
	empty := Preview(fractal.IterationGrid{{1, 2}, {3, 4}}, 50, 2)
	for _, row := range empty.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Errorf("expected empty canvas, got %x", r)
			}
		}
	}
}

func TestPreviewDegenerate(t *testing.T) {
	if c := Preview(nil, 10, 40); c.Width != 0 {
		t.Error("expected empty canvas for nil grid")
	}
	if c := Preview(fractal.IterationGrid{{1}}, 10, 0); c.Width != 0 {
		t.Error("expected empty canvas for zero columns")
	}
}

func TestBlocks(t *testing.T) {
	div := fractal.IterationGrid{
		{0, 50},
		{25, 10},
	}
	out := Blocks(div, 50)
	if !strings.Contains(out, "▀") {
		t.Error("expected half-block cells in output")
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected one row for a 2-row grid, got %d", got)
	}
}
