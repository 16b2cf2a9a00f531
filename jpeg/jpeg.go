/*
Package jpeg adapts the standard library JPEG codec to pixel buffers.

Decoded images are converted to RGB and are always opaque. Alpha is dropped
when encoding.
*/
package jpeg

import (
	"bufio"
	"errors"
	"image/jpeg"
	"io"

	"github.com/bodgit/imgconv/pixel"
)

// DefaultQuality is the quality used when none is given
const DefaultQuality = 90

// ErrInvalidImage is returned when asked to encode the empty buffer.
var ErrInvalidImage = errors.New("jpeg: invalid image")

// Decode reads a JPEG image from r and returns it as a pixel buffer.
func Decode(r io.Reader) (*pixel.Buffer, error) {
	m, err := jpeg.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}

	b := pixel.FromImage(m)
	if !b.Valid() {
		return nil, errors.New("jpeg: empty image")
	}
	return b, nil
}

// Encode writes m to w as a baseline JPEG image with the given quality,
// ranging from 1 to 100 inclusive. Out of range values are clamped.
func Encode(w io.Writer, m *pixel.Buffer, quality int) error {
	if !m.Valid() {
		return ErrInvalidImage
	}

	bw := bufio.NewWriter(w)
	if err := jpeg.Encode(bw, m.RGBA(), &jpeg.Options{Quality: quality}); err != nil {
		return err
	}
	return bw.Flush()
}
