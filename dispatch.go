package imgconv

import (
	"io"
	"log"
	"path/filepath"

	"github.com/bodgit/imgconv/bmp"
	"github.com/bodgit/imgconv/jpeg"
	"github.com/bodgit/imgconv/pixel"
	"github.com/bodgit/imgconv/ppm"
)

// Format identifies a supported image file format.
type Format int

// Supported formats
const (
	FormatUnknown Format = iota
	FormatBMP
	FormatPPM
	FormatJPEG
)

func (f Format) String() string {
	switch f {
	case FormatBMP:
		return "BMP"
	case FormatPPM:
		return "PPM"
	case FormatJPEG:
		return "JPEG"
	default:
		return "unknown"
	}
}

// FormatOf returns the format implied by the extension of file. The match is
// case-sensitive.
func FormatOf(file string) Format {
	switch filepath.Ext(file) {
	case ".bmp":
		return FormatBMP
	case ".ppm":
		return FormatPPM
	case ".jpg", ".jpeg":
		return FormatJPEG
	default:
		return FormatUnknown
	}
}

// Registry maps each supported format to its codec. It is not modified after
// creation so is safe for concurrent use.
type Registry struct {
	codecs map[Format]Codec
}

// NewRegistry returns a Registry using the given codecs.
func NewRegistry(bmpCodec, ppmCodec, jpegCodec Codec) *Registry {
	return &Registry{
		codecs: map[Format]Codec{
			FormatBMP:  bmpCodec,
			FormatPPM:  ppmCodec,
			FormatJPEG: jpegCodec,
		},
	}
}

// DefaultRegistry returns a Registry using the codecs from the bmp, ppm and
// jpeg packages. JPEG images are saved with the given quality.
func DefaultRegistry(logger *log.Logger, quality int) *Registry {
	return NewRegistry(
		NewCodec(FormatBMP.String(), bmp.Decode, bmp.Encode, logger),
		NewCodec(FormatPPM.String(), ppm.Decode, ppm.Encode, logger),
		NewCodec(FormatJPEG.String(), jpeg.Decode, func(w io.Writer, m *pixel.Buffer) error {
			return jpeg.Encode(w, m, quality)
		}, logger),
	)
}

// Codec returns the codec for the format of file, or nil if the format is
// not supported.
func (r *Registry) Codec(file string) Codec {
	c, ok := r.codecs[FormatOf(file)]
	if !ok {
		return nil
	}
	return c
}
