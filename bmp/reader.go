package bmp

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/bodgit/imgconv/pixel"
)

var (
	// ErrInvalidFormat is returned when the input is not a bitmap written
	// in the supported layout.
	ErrInvalidFormat = errors.New("bmp: invalid format")
	// ErrNotEnough is returned when the input ends before all of the pixel
	// data has been read.
	ErrNotEnough = errors.New("bmp: not enough image data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	fh fileHeader
	ih infoHeader

	width, height, stride int

	image *pixel.Buffer

	tmp [headerLen]byte
}

func (d *decoder) readHeaders() error {
	if err := readFull(d.r, d.tmp[:]); err != nil {
		return err
	}

	if err := d.fh.UnmarshalBinary(d.tmp[:fileHeaderLen]); err != nil {
		return err
	}
	if d.fh.reserved != 0 || d.fh.offset != headerLen {
		return ErrInvalidFormat
	}

	if err := d.ih.UnmarshalBinary(d.tmp[fileHeaderLen:]); err != nil {
		return err
	}
	if d.ih.width <= 0 || d.ih.height <= 0 {
		return ErrInvalidFormat
	}

	d.width, d.height = int(d.ih.width), int(d.ih.height)
	d.stride = Stride(d.width)

	// The pixel data must fit in the file size the header claims
	if uint64(d.fh.size) < headerLen || uint64(d.stride)*uint64(d.height) > uint64(d.fh.size)-headerLen {
		return ErrInvalidFormat
	}

	return nil
}

func (d *decoder) readPixels() error {
	// The claimed file size can't be trusted, so pull in the pixel data
	// first and only allocate the image once it has all arrived
	size := int64(d.stride) * int64(d.height)
	b, err := io.ReadAll(io.LimitReader(d.r, size))
	if err != nil {
		return err
	}
	if int64(len(b)) != size {
		return io.ErrUnexpectedEOF
	}

	m := pixel.New(d.width, d.height, pixel.Black)

	// First row in the file is the bottom row of the image
	for y := d.height - 1; y >= 0; y-- {
		buf := b[:d.stride]
		b = b[d.stride:]
		row := m.Row(y)
		for x := range row {
			i := x * bytesPerPixel
			row[x] = pixel.Opaque(buf[i+2], buf[i+1], buf[i+0])
		}
	}

	d.image = m
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readHeaders(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return ErrNotEnough
	}

	if configOnly {
		return nil
	}

	if err := d.readPixels(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return ErrNotEnough
	}

	return nil
}

// Decode reads a bitmap from r and returns it as a pixel buffer. Every pixel
// is fully opaque.
func Decode(r io.Reader) (*pixel.Buffer, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a bitmap without
// decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      d.width,
		Height:     d.height,
	}, nil
}
