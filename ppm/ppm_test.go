package ppm

import (
	"bytes"
	"testing"

	"github.com/bodgit/imgconv/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	m := pixel.New(3, 2, pixel.White)
	m.Set(0, 0, pixel.Opaque(0x12, 0x34, 0x56))
	m.Set(2, 1, pixel.Color{R: 0xab, G: 0xcd, B: 0xef, A: 0x10})

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	out, err := Decode(b)
	require.NoError(t, err)
	require.Equal(t, 3, out.Width())
	require.Equal(t, 2, out.Height())

	for y := 0; y < m.Height(); y++ {
		for x, c := range m.Row(y) {
			assert.Equal(t, pixel.Opaque(c.R, c.G, c.B), out.Row(y)[x])
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(bytes.NewBufferString("BM not a pixmap"))
	assert.Error(t, err)
}

func TestEncodeInvalid(t *testing.T) {
	b := new(bytes.Buffer)
	assert.Equal(t, ErrInvalidImage, Encode(b, new(pixel.Buffer)))
	assert.Zero(t, b.Len())
}
