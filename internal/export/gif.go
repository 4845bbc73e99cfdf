package export

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// ErrNoFrames indicates a movie with nothing to encode.
var ErrNoFrames = errors.New("export: no frames to encode")

// WriteGIF quantizes the frames to a shared palette and writes an animated
// GIF looping forever at the given frame rate.
func WriteGIF(path string, frames []*image.RGBA, fps int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if fps <= 0 {
		fps = 10
	}
	delay := 100 / fps // GIF delays are centiseconds
	if delay < 1 {
		delay = 1
	}

	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, len(frames)),
		Delay: make([]int, 0, len(frames)),
	}
	for _, frame := range frames {
		p := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, frame.Bounds(), frame, image.Point{})
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, anim)
}
