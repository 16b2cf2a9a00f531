/*
Package ppm implements a decoder and encoder for portable pixmaps.

Images are written as binary (P6) pixmaps with a maximum value of 255. Any
image the underlying netpbm library can decode is accepted and converted to
RGB.
*/
package ppm

import (
	"bufio"
	"errors"
	"io"

	"github.com/bodgit/imgconv/pixel"
	pnm "github.com/jbuchbinder/gopnm"
)

// ErrInvalidImage is returned when asked to encode the empty buffer.
var ErrInvalidImage = errors.New("ppm: invalid image")

// Decode reads a pixmap from r and returns it as a pixel buffer.
func Decode(r io.Reader) (*pixel.Buffer, error) {
	m, err := pnm.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}

	b := pixel.FromImage(m)
	if !b.Valid() {
		return nil, errors.New("ppm: empty image")
	}
	return b, nil
}

// Encode writes m to w as a binary pixmap. Alpha is not persisted.
func Encode(w io.Writer, m *pixel.Buffer) error {
	if !m.Valid() {
		return ErrInvalidImage
	}

	bw := bufio.NewWriter(w)
	if err := pnm.Encode(bw, m.RGBA(), pnm.PPM); err != nil {
		return err
	}
	return bw.Flush()
}
