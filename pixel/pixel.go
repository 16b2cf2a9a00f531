/*
Package pixel implements the in-memory image container shared by every codec.

A Buffer is a row-major grid of 8-bit RGBA pixels addressed top to bottom. A
Buffer with either dimension equal to zero is the empty buffer and is used by
the codecs to signal that no image could be produced.
*/
package pixel

import (
	"image"
	"image/color"
)

// Color is a single non-premultiplied pixel.
type Color struct {
	R, G, B, A uint8
}

// Opaque returns a fully opaque color.
func Opaque(r, g, b uint8) Color {
	return Color{r, g, b, 0xff}
}

// Common colors
var (
	Black = Opaque(0x00, 0x00, 0x00)
	White = Opaque(0xff, 0xff, 0xff)
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{c.R, c.G, c.B, c.A}.RGBA()
}

// Buffer is a two-dimensional grid of pixels. The zero value is the empty
// buffer.
type Buffer struct {
	width, height int
	pix           []Color
}

// New returns a buffer of the given dimensions with every pixel set to fill.
// A non-positive dimension yields the empty buffer.
func New(width, height int, fill Color) *Buffer {
	if width <= 0 || height <= 0 {
		return new(Buffer)
	}
	b := &Buffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
	for i := range b.pix {
		b.pix[i] = fill
	}
	return b
}

// Width returns the number of pixels in each row
func (b *Buffer) Width() int {
	if b == nil {
		return 0
	}
	return b.width
}

// Height returns the number of rows
func (b *Buffer) Height() int {
	if b == nil {
		return 0
	}
	return b.height
}

// Valid reports whether b holds an actual image as opposed to the empty
// buffer.
func (b *Buffer) Valid() bool {
	return b != nil && b.width > 0 && b.height > 0 && len(b.pix) == b.width*b.height
}

// Row returns scanline y. The returned slice aliases the buffer so writes
// through it modify the image. y must be in [0, Height()).
func (b *Buffer) Row(y int) []Color {
	i := y * b.width
	return b.pix[i : i+b.width : i+b.width]
}

// Set sets the pixel at (x, y). Coordinates outside the buffer are ignored.
func (b *Buffer) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = c
}

// Equal reports whether both buffers have the same dimensions and pixels.
// Any two empty buffers are equal.
func (b *Buffer) Equal(o *Buffer) bool {
	if !b.Valid() || !o.Valid() {
		return b.Valid() == o.Valid()
	}
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	if !b.Valid() {
		return new(Buffer)
	}
	dup := &Buffer{
		width:  b.width,
		height: b.height,
		pix:    make([]Color, len(b.pix)),
	}
	copy(dup.pix, b.pix)
	return dup
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width(), b.Height())
}

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.Width() || y >= b.Height() {
		return color.NRGBA{}
	}
	c := b.pix[y*b.width+x]
	return color.NRGBA{c.R, c.G, c.B, c.A}
}
