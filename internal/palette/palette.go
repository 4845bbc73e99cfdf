// Package palette maps iteration grids to RGB images. The mapping is a
// pure function of the grid and the iteration bound it was computed
// against.
package palette

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/san-kum/mandelzoom/internal/fractal"
)

// ErrInvalidIterationBound indicates a non-positive iteration bound at
// color-mapping time.
var ErrInvalidIterationBound = errors.New("palette: iteration bound must be positive")

// Pixel maps a single iteration count to a color. The normalized value is
// square-rooted to spread contrast toward low counts, then split into
// three clamped channel ramps: red fades out, blue fades in, green
// saturates at both ends and bottoms out in the middle.
//
// Counts produced against a larger bound than maxIter normalize above 1;
// the channel clamp keeps the output well formed (it saturates toward
// blue). Keeping grid and bound paired is the caller's job.
func Pixel(divTime, maxIter int) color.RGBA {
	norm := math.Sqrt(float64(divTime) / float64(maxIter))
	return color.RGBA{
		R: channel(3 * (1 - norm)),
		G: channel(3 * math.Abs(norm-0.5)),
		B: channel(3 * norm),
		A: 255,
	}
}

func channel(v float64) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(255 * v)
}

// Map converts an iteration grid into an RGBA image.
func Map(div fractal.IterationGrid, maxIter int) (*image.RGBA, error) {
	if maxIter <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterationBound, maxIter)
	}

	height := len(div)
	width := 0
	if height > 0 {
		width = len(div[0])
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			img.SetRGBA(i, j, Pixel(div[j][i], maxIter))
		}
	}
	return img, nil
}
