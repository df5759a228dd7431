package bmp

import (
	"image"
	"image/color"
)

// Bitmap implements image.Image and draw.Image so it composes with the
// standard image packages (filters, golang.org/x/image codecs, draw
// compositing). Image coordinates run top-down as usual; they are
// mapped onto the bottom-up buffer here.

// ColorModel returns the non-premultiplied RGBA model.
func (b *Bitmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds returns the bitmap dimensions.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.layout.Width, b.layout.Height)
}

// At returns the color at (x, y) in image coordinates (y == 0 is the
// visual top). Out of bounds yields the zero color.
func (b *Bitmap) At(x, y int) color.Color {
	if !b.inBounds(x, y) {
		return color.NRGBA{}
	}
	c, _ := b.Pixel(x, b.layout.Height-1-y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Set sets the color at (x, y) in image coordinates. Out of bounds is a
// no-op, per the stdlib image convention.
func (b *Bitmap) Set(x, y int, c color.Color) {
	if !b.inBounds(x, y) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	b.SetPixel(x, b.layout.Height-1-y, Color{R: n.R, G: n.G, B: n.B, A: n.A})
}
