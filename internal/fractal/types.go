package fractal

import "fmt"

// Zoom behavior for click navigation. Each zoom step shrinks the viewport
// to a quarter of its half-width and grows the iteration bound by 25% to
// keep boundary detail resolvable at the smaller scale.
const (
	ZoomFactor = 0.25
	IterGrowth = 1.25
)

// Viewport describes a rectangular region of the complex plane at a given
// pixel resolution and iteration bound. Scale is the half-width of the
// plotted region along the x axis; the y half-extent is derived from the
// aspect ratio. Viewports are value types and never mutated.
type Viewport struct {
	Width   int
	Height  int
	MaxIter int
	XCenter float64
	YCenter float64
	Scale   float64
}

func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidViewport, v.Width, v.Height)
	}
	if v.Scale <= 0 {
		return fmt.Errorf("%w: scale %g", ErrInvalidViewport, v.Scale)
	}
	if v.MaxIter <= 0 {
		return fmt.Errorf("%w: max iterations %d", ErrInvalidViewport, v.MaxIter)
	}
	return nil
}

// YScale is the half-extent of the plotted region along the y axis.
func (v Viewport) YScale() float64 {
	return v.Scale * float64(v.Height) / float64(v.Width)
}

// PixelToComplex maps a pixel coordinate to its complex-plane coordinate
// using the same linear transform as the coordinate grid.
func (v Viewport) PixelToComplex(px, py int) (float64, float64) {
	xMin := v.XCenter - v.Scale
	yMin := v.YCenter - v.YScale()
	x := xMin + 2*v.Scale*float64(px)/float64(max(1, v.Width-1))
	y := yMin + 2*v.YScale()*float64(py)/float64(max(1, v.Height-1))
	return x, y
}

// ZoomAt re-centers the viewport on the complex point under pixel (px, py)
// and applies one zoom step.
func (v Viewport) ZoomAt(px, py int) Viewport {
	x, y := v.PixelToComplex(px, py)
	v.XCenter = x
	v.YCenter = y
	v.Scale *= ZoomFactor
	v.MaxIter = int(float64(v.MaxIter) * IterGrowth)
	return v
}

// SameGeometry reports whether two viewports plot the same pixel-to-plane
// mapping. The iteration bound is not part of the geometry.
func (v Viewport) SameGeometry(o Viewport) bool {
	return v.Width == o.Width && v.Height == o.Height &&
		v.XCenter == o.XCenter && v.YCenter == o.YCenter && v.Scale == o.Scale
}

// IterationGrid holds, for each pixel, the iteration at which the orbit
// magnitude first exceeded 2, or the iteration bound if it never did.
type IterationGrid [][]int

func newIterationGrid(height, width int) IterationGrid {
	g := make(IterationGrid, height)
	for j := range g {
		g[j] = make([]int, width)
	}
	return g
}
