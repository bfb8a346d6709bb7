package chartrender

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// stampCaption draws the caption centered along the bottom edge of a
// rendered chart. Charts have a white background, so plain dark text
// needs no backing box.
func stampCaption(src image.Image, text string) image.Image {
	b := src.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, src, b.Min, draw.Src)

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.RGBA{R: 60, G: 60, B: 60, A: 255}),
		Face: basicfont.Face7x13,
	}
	tw := d.MeasureString(text).Ceil()
	x := b.Min.X + (b.Dx()-tw)/2
	if x < b.Min.X+4 {
		x = b.Min.X + 4
	}
	d.Dot = fixed.P(x, b.Max.Y-6)
	d.DrawString(text)
	return out
}
