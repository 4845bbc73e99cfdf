package fractal

// escapeRadius2 is the squared bailout radius. Testing against the square
// avoids a sqrt in the inner loop.
const escapeRadius2 = 4.0

// iterate runs the escape-time loop z <- z^2 + c for a single point,
// returning the iteration at which |z| first exceeded 2, or maxIter if the
// orbit stayed bounded.
func iterate(cx, cy float64, maxIter int) int {
	var x, y float64
	it := 0
	for x*x+y*y <= escapeRadius2 && it < maxIter {
		x, y = x*x-y*y+cx, 2*x*y+cy
		it++
	}
	return it
}

// EscapeTime computes the iteration grid for a viewport in a single pass.
// Every call recomputes from scratch; use a Cache to amortize iteration
// bound increases over the same geometry.
func EscapeTime(v Viewport) (IterationGrid, error) {
	if err := v.Validate(); err != nil {
		return nil, &RenderError{View: v, Wrapped: err}
	}

	grid := NewGrid(v)
	div := newIterationGrid(v.Height, v.Width)

	forEachRow(v.Height, func(start, end int) {
		for j := start; j < end; j++ {
			x0 := grid.X0[j]
			y0 := grid.Y0[j]
			for i := 0; i < v.Width; i++ {
				div[j][i] = iterate(x0[i], y0[i], v.MaxIter)
			}
		}
	})

	return div, nil
}
