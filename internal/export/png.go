// Package export encodes rendered frames to image containers and draws
// the cosmetic scale overlay. Nothing here touches the computation core;
// it only consumes finished RGBA frames.
package export

import (
	"image"
	"image/png"
	"os"
)

// WritePNG encodes a frame to a PNG file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
