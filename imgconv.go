/*
Package imgconv is a library for converting raster images between file
formats.

The format of each file is chosen by its extension. The source file is
loaded into a pixel buffer by the codec for its format and the buffer is then
saved by the codec for the destination format.
*/
package imgconv

import (
	"errors"
	"fmt"
	"log"

	"github.com/bodgit/imgconv/pixel"
)

var (
	// ErrUnknownInputFormat is returned when no codec handles the
	// extension of the source file.
	ErrUnknownInputFormat = errors.New("unknown format of the input file")
	// ErrUnknownOutputFormat is returned when no codec handles the
	// extension of the destination file.
	ErrUnknownOutputFormat = errors.New("unknown format of the output file")
	// ErrLoad is returned when the source file could not be loaded.
	ErrLoad = errors.New("loading failed")
	// ErrSave is returned when the destination file could not be saved.
	ErrSave = errors.New("saving failed")
)

// Converter converts image files using the codecs from a registry.
type Converter struct {
	registry *Registry
	journal  *Journal
	logger   *log.Logger

	colors int
	dither bool
}

// New returns a Converter. The journal is optional and may be nil.
func New(registry *Registry, journal *Journal, logger *log.Logger) *Converter {
	return &Converter{
		registry: registry,
		journal:  journal,
		logger:   logger,
	}
}

// ReduceColors limits every converted image to at most n colors. A value of
// zero disables the reduction.
func (c *Converter) ReduceColors(n int, dither bool) {
	c.colors, c.dither = n, dither
}

// Convert loads the image in file in and saves it to file out.
func (c *Converter) Convert(in, out string) error {
	src := c.registry.Codec(in)
	if src == nil {
		return fmt.Errorf("%w: %s", ErrUnknownInputFormat, in)
	}

	dst := c.registry.Codec(out)
	if dst == nil {
		return fmt.Errorf("%w: %s", ErrUnknownOutputFormat, out)
	}

	m := src.Load(in)
	if !m.Valid() {
		return fmt.Errorf("%w: %s", ErrLoad, in)
	}
	c.logger.Printf("Loaded \"%s\" as %s, %dx%d\n", in, FormatOf(in), m.Width(), m.Height())

	if c.colors > 0 {
		if c.colors < pixel.MinColors || c.colors > pixel.MaxColors {
			c.logger.Printf("Ignoring color count %d, must be between %d and %d\n", c.colors, pixel.MinColors, pixel.MaxColors)
		} else {
			m = m.Reduce(c.colors, c.dither)
		}
	}

	if !dst.Save(out, m) {
		return fmt.Errorf("%w: %s", ErrSave, out)
	}
	c.logger.Printf("Saved \"%s\" as %s\n", out, FormatOf(out))

	if c.journal != nil {
		if err := c.record(in, out, m.Width(), m.Height()); err != nil {
			c.logger.Printf("Unable to record conversion of \"%s\": %v\n", in, err)
		}
	}

	return nil
}

func (c *Converter) record(in, out string, width, height int) error {
	sha, err := hashFile(in)
	if err != nil {
		return err
	}

	prev, err := c.journal.Lookup(sha)
	if err != nil {
		return err
	}
	if prev != nil {
		c.logger.Printf("\"%s\" was previously converted to \"%s\"\n", in, prev.Target)
	}

	return c.journal.Record(Entry{
		Source:       in,
		SHA1:         sha,
		Target:       out,
		SourceFormat: FormatOf(in),
		TargetFormat: FormatOf(out),
		Width:        width,
		Height:       height,
	})
}
