package fractal

import "fmt"

// Cache holds resumable escape-time state for one viewport geometry. It is
// created empty and advanced in place by Extend; raising the iteration
// bound only costs the additional steps for pixels that have not yet
// escaped. A geometry change (pan or zoom) invalidates the cache entirely;
// build a new one instead.
//
// Escaped pixels are tracked with an explicit flag rather than a zero
// sentinel in the iteration grid, so a pixel that merely ran out of budget
// in an earlier Extend is distinguishable from one that truly escaped and
// resumes correctly on the next call.
type Cache struct {
	view Viewport
	grid *Grid

	zx, zy  [][]float64
	iters   [][]int
	escaped [][]bool
	divTime IterationGrid

	currentIter int
}

// NewCache builds an empty cache for the viewport's geometry. The
// viewport's MaxIter field is ignored; the bound is chosen per Extend call.
func NewCache(v Viewport) (*Cache, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	c := &Cache{
		view:    v,
		grid:    NewGrid(v),
		zx:      make([][]float64, v.Height),
		zy:      make([][]float64, v.Height),
		iters:   make([][]int, v.Height),
		escaped: make([][]bool, v.Height),
		divTime: newIterationGrid(v.Height, v.Width),
	}
	for j := 0; j < v.Height; j++ {
		c.zx[j] = make([]float64, v.Width)
		c.zy[j] = make([]float64, v.Width)
		c.iters[j] = make([]int, v.Width)
		c.escaped[j] = make([]bool, v.Width)
	}
	return c, nil
}

// View returns the viewport the cache was built for.
func (c *Cache) View() Viewport { return c.view }

// CurrentIter returns the iteration high-water mark reached so far.
func (c *Cache) CurrentIter() int { return c.currentIter }

// DivTime returns the live iteration grid. The caller must not retain it
// across Extend calls if it needs a stable snapshot.
func (c *Cache) DivTime() IterationGrid { return c.divTime }

// Extend advances the computation to target iterations and returns the
// iteration grid. Targets at or below the current high-water mark are a
// no-op, as are negative targets. The grid after extending to target is
// identical, pixel for pixel, to a fresh EscapeTime run with
// MaxIter=target.
//
// The outer step loop is sequential (each step consumes the previous
// step's orbit values); the per-step pixel sweep runs across workers.
func (c *Cache) Extend(target int) IterationGrid {
	if target <= c.currentIter {
		return c.divTime
	}

	width := c.view.Width
	for step := c.currentIter; step < target; step++ {
		forEachRow(c.view.Height, func(start, end int) {
			for j := start; j < end; j++ {
				zx, zy := c.zx[j], c.zy[j]
				x0, y0 := c.grid.X0[j], c.grid.Y0[j]
				for i := 0; i < width; i++ {
					if c.escaped[j][i] {
						continue
					}
					x, y := zx[i], zy[i]
					x, y = x*x-y*y+x0[i], 2*x*y+y0[i]
					zx[i], zy[i] = x, y
					c.iters[j][i]++
					if x*x+y*y > escapeRadius2 {
						c.escaped[j][i] = true
						c.divTime[j][i] = c.iters[j][i]
					}
				}
			}
		})
	}

	// Survivors report the full extended range.
	forEachRow(c.view.Height, func(start, end int) {
		for j := start; j < end; j++ {
			for i := 0; i < width; i++ {
				if !c.escaped[j][i] {
					c.divTime[j][i] = c.iters[j][i]
				}
			}
		}
	})

	c.currentIter = target
	return c.divTime
}

// ExtendFor extends the cache on behalf of a viewport, rejecting viewports
// whose geometry differs from the one the cache was built for.
func (c *Cache) ExtendFor(v Viewport, target int) (IterationGrid, error) {
	if !c.view.SameGeometry(v) {
		return nil, fmt.Errorf("%w: cache %dx%d @ (%g, %g) scale %g, viewport %dx%d @ (%g, %g) scale %g",
			ErrGeometryMismatch,
			c.view.Width, c.view.Height, c.view.XCenter, c.view.YCenter, c.view.Scale,
			v.Width, v.Height, v.XCenter, v.YCenter, v.Scale)
	}
	return c.Extend(target), nil
}
