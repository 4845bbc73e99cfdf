package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var overlayWhite = color.RGBA{255, 255, 255, 255}

// DrawScaleBracket draws the zoom-scale indicator along the right edge of
// a frame: a ']' bracket spanning the image height with the scale printed
// beside it in scientific notation. The overlay is cosmetic; on frames too
// small to fit the label, only the bracket is drawn.
func DrawScaleBracket(img *image.RGBA, scale float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	barW := max(12, w*45/1000)
	padding := max(8, w*2/100)
	left := w - barW - padding
	right := w - padding
	top := padding
	bottom := h - padding
	thickness := max(2, barW/4)

	fillRect(img, left, top, right, top+thickness)
	fillRect(img, right-thickness, top, right, bottom)
	fillRect(img, left, bottom-thickness, right, bottom)

	label := fmt.Sprintf("%.2e", scale)
	face := basicfont.Face7x13
	labelW := font.MeasureString(face, label).Ceil()

	textX := left - barW - labelW - 8
	textY := top + face.Ascent + 6
	if textX < 0 || textY+face.Descent > h {
		return // label does not fit; keep the bracket alone
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(overlayWhite),
		Face: face,
		Dot:  fixed.P(textX, textY),
	}
	d.DrawString(label)
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int) {
	r := image.Rect(x0, y0, x1, y1).Intersect(img.Bounds())
	draw.Draw(img, r, image.NewUniform(overlayWhite), image.Point{}, draw.Src)
}
