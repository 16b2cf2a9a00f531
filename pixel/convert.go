package pixel

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

// Range of color counts accepted by Reduce
const (
	MinColors = 2
	MaxColors = 256
)

// FromImage copies m into a new buffer. Pixels are converted through the
// non-premultiplied RGBA model so alpha passes through unchanged.
func FromImage(m image.Image) *Buffer {
	if b, ok := m.(*Buffer); ok {
		return b.Clone()
	}

	r := m.Bounds()
	b := New(r.Dx(), r.Dy(), Color{})
	if !b.Valid() {
		return b
	}

	for y := 0; y < b.height; y++ {
		row := b.Row(y)
		for x := range row {
			c := color.NRGBAModel.Convert(m.At(r.Min.X+x, r.Min.Y+y)).(color.NRGBA)
			row[x] = Color{c.R, c.G, c.B, c.A}
		}
	}
	return b
}

// RGBA returns an opaque copy of b suitable for encoders that only persist
// RGB. Alpha is dropped rather than premultiplied.
func (b *Buffer) RGBA() *image.RGBA {
	m := image.NewRGBA(b.Bounds())
	for y := 0; y < b.Height(); y++ {
		for x, c := range b.Row(y) {
			i := m.PixOffset(x, y)
			m.Pix[i+0] = c.R
			m.Pix[i+1] = c.G
			m.Pix[i+2] = c.B
			m.Pix[i+3] = 0xff
		}
	}
	return m
}

// Reduce returns a copy of b using at most colors distinct colors, chosen by
// median cut. With dither set, the error is diffused using Floyd-Steinberg.
// A color count outside [2, 256] returns an unmodified copy.
func (b *Buffer) Reduce(colors int, dither bool) *Buffer {
	if !b.Valid() || colors < MinColors || colors > MaxColors {
		return b.Clone()
	}

	src := b.RGBA()
	r := src.Bounds()

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, colors), src)
	if len(p) == 0 {
		return b.Clone()
	}
	pm := image.NewPaletted(r, p)

	if dither {
		draw.FloydSteinberg.Draw(pm, r, src, r.Min)
	} else {
		draw.Draw(pm, r, src, r.Min, draw.Src)
	}

	return FromImage(pm)
}
