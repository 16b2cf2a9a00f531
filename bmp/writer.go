package bmp

import (
	"bufio"
	"encoding"
	"errors"
	"io"

	"github.com/bodgit/imgconv/pixel"
)

// ErrInvalidImage is returned when asked to encode the empty buffer.
var ErrInvalidImage = errors.New("bmp: invalid image")

type encoder struct {
	w *bufio.Writer
	m *pixel.Buffer

	stride int
}

func (e *encoder) writeHeaders() error {
	size := e.stride * e.m.Height()

	fh := fileHeader{
		size:   uint32(headerLen + size),
		offset: headerLen,
	}
	ih := infoHeader{
		size:              infoHeaderLen,
		width:             int32(e.m.Width()),
		height:            int32(e.m.Height()),
		planes:            planes,
		bitsPerPixel:      bitsPerPixel,
		imageSize:         uint32(size),
		xResolution:       resolution,
		yResolution:       resolution,
		significantColors: significantColors,
	}

	for _, h := range []encoding.BinaryMarshaler{&fh, &ih} {
		b, err := h.MarshalBinary()
		if err != nil {
			return err
		}
		if _, err := e.w.Write(b); err != nil {
			return err
		}
	}

	return nil
}

func (e *encoder) writePixels() error {
	// Padding bytes stay zero as only the first 3*width bytes are touched
	buf := make([]byte, e.stride)

	for y := e.m.Height() - 1; y >= 0; y-- {
		for x, c := range e.m.Row(y) {
			i := x * bytesPerPixel
			buf[i+0] = c.B
			buf[i+1] = c.G
			buf[i+2] = c.R
		}
		if _, err := e.w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

func (e *encoder) encode() error {
	if err := e.writeHeaders(); err != nil {
		return err
	}
	if err := e.writePixels(); err != nil {
		return err
	}
	return e.w.Flush()
}

// Encode writes m to w as a 24-bit uncompressed bitmap. Alpha is not
// persisted.
func Encode(w io.Writer, m *pixel.Buffer) error {
	if !m.Valid() {
		return ErrInvalidImage
	}

	e := encoder{
		w:      bufio.NewWriter(w),
		m:      m,
		stride: Stride(m.Width()),
	}

	return e.encode()
}
