package keyframe

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/palette"
)

// ErrShortPath indicates a path with fewer than two keyframes.
var ErrShortPath = errors.New("keyframe: path needs at least two keyframes")

// Lerp linearly interpolates the scalar viewport fields at parameter t in
// [0,1]. The pixel dimensions come from a; interpolation never resizes.
// The iteration bound is rounded to the nearest integer.
func Lerp(a, b fractal.Viewport, t float64) fractal.Viewport {
	return fractal.Viewport{
		Width:   a.Width,
		Height:  a.Height,
		MaxIter: int(math.Round((1-t)*float64(a.MaxIter) + t*float64(b.MaxIter))),
		XCenter: (1-t)*a.XCenter + t*b.XCenter,
		YCenter: (1-t)*a.YCenter + t*b.YCenter,
		Scale:   (1-t)*a.Scale + t*b.Scale,
	}
}

// Between returns the steps intermediate viewports strictly between a and
// b, at t = s/(steps+1) for s = 1..steps. Zero steps returns an empty
// slice.
func Between(a, b fractal.Viewport, steps int) []fractal.Viewport {
	out := make([]fractal.Viewport, 0, steps)
	for s := 1; s <= steps; s++ {
		t := float64(s) / float64(steps+1)
		out = append(out, Lerp(a, b, t))
	}
	return out
}

// Sequence expands a path into the full ordered list of viewports to
// render: each keyframe's own viewport, with steps interpolated viewports
// between consecutive pairs. For N keyframes the result holds
// 1 + (N-1)*(steps+1) viewports.
func Sequence(path Path, steps int) ([]fractal.Viewport, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrShortPath, len(path))
	}

	out := make([]fractal.Viewport, 0, 1+(len(path)-1)*(steps+1))
	for k := 0; k < len(path)-1; k++ {
		out = append(out, path[k].Viewport)
		out = append(out, Between(path[k].Viewport, path[k+1].Viewport, steps)...)
	}
	out = append(out, path[len(path)-1].Viewport)
	return out, nil
}

// Renderer turns one viewport into a finished frame. The default renderer
// runs the escape-time engine and the color map; callers that want an
// overlay (scale bracket, labels) wrap their own around it.
type Renderer func(v fractal.Viewport) (*image.RGBA, error)

// DefaultRenderer renders a viewport with no overlay.
func DefaultRenderer(v fractal.Viewport) (*image.RGBA, error) {
	div, err := fractal.EscapeTime(v)
	if err != nil {
		return nil, err
	}
	return palette.Map(div, v.MaxIter)
}

// Interpolator renders a path into an ordered frame sequence.
type Interpolator struct {
	Steps  int
	Render Renderer
}

func NewInterpolator(steps int) *Interpolator {
	return &Interpolator{Steps: steps, Render: DefaultRenderer}
}

// Frames renders every viewport of the path's expanded sequence. Each
// interpolated viewport is rendered independently; geometry changes every
// step, so there is no cache to reuse. The context is checked between
// frames, not inside one.
func (in *Interpolator) Frames(ctx context.Context, path Path) ([]*image.RGBA, error) {
	seq, err := Sequence(path, in.Steps)
	if err != nil {
		return nil, err
	}

	render := in.Render
	if render == nil {
		render = DefaultRenderer
	}

	frames := make([]*image.RGBA, 0, len(seq))
	for i, v := range seq {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		default:
		}

		img, err := render(v)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, img)
	}
	return frames, nil
}
