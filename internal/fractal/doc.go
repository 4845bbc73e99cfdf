// Package fractal provides the core Mandelbrot escape-time engine.
//
// The package defines the fundamental types and computations for rendering
// the Mandelbrot set over an arbitrary region of the complex plane:
//
//   - [Viewport]: immutable description of what to render
//   - [Grid]: per-pixel complex-plane coordinates for a Viewport
//   - [IterationGrid]: per-pixel escape iteration counts
//   - [Cache]: resumable computation state for iteration-bound increases
//
// # Example
//
//	v := fractal.Viewport{Width: 800, Height: 600, MaxIter: 300, XCenter: -0.5, Scale: 1.5}
//	div, _ := fractal.EscapeTime(v)
//	img, _ := palette.Map(div, v.MaxIter)
//
// # Thread Safety
//
// EscapeTime is safe for concurrent use. A Cache is owned by a single
// session: concurrent Extend calls on the same Cache are undefined and
// must be serialized by the caller.
package fractal
