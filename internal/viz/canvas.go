// Package viz renders iteration grids for the terminal: a Braille dot
// canvas for monochrome previews and colored half-block cells for the
// interactive session.
package viz

import (
	"strings"

	"github.com/san-kum/mandelzoom/internal/fractal"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set sets a dot at (x, y) in sub-pixel coordinates. The canvas size in
// sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for _, row := range c.Grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Preview downsamples an iteration grid onto a Braille canvas of cols
// character columns, one dot per Mandelbrot member (pixels that reached
// the iteration bound). Row count follows the grid's aspect ratio.
func Preview(div fractal.IterationGrid, maxIter, cols int) *Canvas {
	gridH := len(div)
	gridW := 0
	if gridH > 0 {
		gridW = len(div[0])
	}
	if gridW == 0 || cols <= 0 {
		return NewCanvas(0, 0)
	}

	subW := cols * 2
	subH := subW * gridH / gridW
	// braille cells are twice as tall as wide; halve rows to keep aspect
	subH /= 2
	rows := (subH + 3) / 4
	if rows < 1 {
		rows = 1
	}

	c := NewCanvas(cols, rows)
	for y := 0; y < rows*4; y++ {
		srcY := y * gridH / (rows * 4)
		for x := 0; x < subW; x++ {
			srcX := x * gridW / subW
			if div[srcY][srcX] >= maxIter {
				c.Set(x, y)
			}
		}
	}
	return c
}
