package fractal

import (
	"errors"
	"fmt"
)

// Domain errors for fractal computations.
var (
	// ErrInvalidViewport indicates non-positive width, height, scale or
	// iteration bound.
	ErrInvalidViewport = errors.New("fractal: invalid viewport")

	// ErrGeometryMismatch indicates an attempt to extend a cache built
	// for a different viewport geometry.
	ErrGeometryMismatch = errors.New("fractal: cache geometry mismatch")
)

// RenderError wraps an error with the viewport being rendered.
type RenderError struct {
	View    Viewport
	Wrapped error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %dx%d @ (%g, %g) scale %g: %s",
		e.View.Width, e.View.Height, e.View.XCenter, e.View.YCenter, e.View.Scale,
		e.Wrapped.Error())
}

func (e *RenderError) Unwrap() error {
	return e.Wrapped
}
