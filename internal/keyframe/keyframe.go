// Package keyframe links recorded viewports into animated zoom paths.
//
// A [Keyframe] is a viewport recorded at a navigation event, together with
// the pixel click that produced it. An ordered sequence of keyframes forms
// a [Path]; the [Interpolator] turns a path into a smooth frame sequence
// by rendering synthesized viewports between each consecutive pair.
package keyframe

import "github.com/san-kum/mandelzoom/internal/fractal"

// Keyframe records a viewport at a navigation event. ClickPX and ClickPY
// are the originating pixel in the previous viewport; they are carried for
// lineage but only the viewport scalars participate in interpolation.
type Keyframe struct {
	Viewport fractal.Viewport
	ClickPX  int
	ClickPY  int
}

// Path is an ordered sequence of keyframes forming a zoom animation.
type Path []Keyframe
