package fractal

// Grid holds the complex-plane coordinate of every pixel of a viewport.
// It depends only on the viewport geometry, never on the iteration bound,
// and is read-only after construction.
type Grid struct {
	X0 [][]float64
	Y0 [][]float64
}

// NewGrid builds the coordinate grid for a viewport. The mapping is linear
// over the full pixel span; single-pixel dimensions collapse to the minimum
// edge of the region.
func NewGrid(v Viewport) *Grid {
	xMin := v.XCenter - v.Scale
	yScale := v.YScale()
	yMin := v.YCenter - yScale

	xSpan := 2 * v.Scale
	ySpan := 2 * yScale
	xDiv := float64(max(1, v.Width-1))
	yDiv := float64(max(1, v.Height-1))

	g := &Grid{
		X0: make([][]float64, v.Height),
		Y0: make([][]float64, v.Height),
	}
	for j := 0; j < v.Height; j++ {
		g.X0[j] = make([]float64, v.Width)
		g.Y0[j] = make([]float64, v.Width)
		y0 := yMin + ySpan*float64(j)/yDiv
		for i := 0; i < v.Width; i++ {
			g.X0[j][i] = xMin + xSpan*float64(i)/xDiv
			g.Y0[j][i] = y0
		}
	}
	return g
}
