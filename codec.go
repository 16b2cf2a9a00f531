package imgconv

import (
	"io"
	"log"
	"os"

	"github.com/bodgit/imgconv/pixel"
)

// Codec loads and saves images for a single file format.
type Codec interface {
	// Load reads file and returns its image. On any failure the empty
	// buffer is returned, never nil.
	Load(file string) *pixel.Buffer
	// Save writes m to file and reports whether it succeeded. Nothing is
	// written if m is not valid.
	Save(file string, m *pixel.Buffer) bool
}

// DecodeFunc decodes an image from a stream.
type DecodeFunc func(io.Reader) (*pixel.Buffer, error)

// EncodeFunc encodes an image to a stream.
type EncodeFunc func(io.Writer, *pixel.Buffer) error

type fileCodec struct {
	name   string
	decode DecodeFunc
	encode EncodeFunc
	logger *log.Logger
}

// NewCodec returns a Codec that opens the named files and hands them to
// decode and encode. Errors are reported to logger and otherwise collapsed
// into the Codec result.
func NewCodec(name string, decode DecodeFunc, encode EncodeFunc, logger *log.Logger) Codec {
	return &fileCodec{
		name:   name,
		decode: decode,
		encode: encode,
		logger: logger,
	}
}

func (c *fileCodec) Load(file string) *pixel.Buffer {
	f, err := os.Open(file)
	if err != nil {
		c.logger.Printf("%s: %v\n", c.name, err)
		return new(pixel.Buffer)
	}
	defer f.Close()

	m, err := c.decode(f)
	if err != nil {
		c.logger.Printf("%s: unable to load \"%s\": %v\n", c.name, file, err)
		return new(pixel.Buffer)
	}
	if !m.Valid() {
		return new(pixel.Buffer)
	}

	return m
}

func (c *fileCodec) Save(file string, m *pixel.Buffer) bool {
	if !m.Valid() {
		c.logger.Printf("%s: refusing to save empty image to \"%s\"\n", c.name, file)
		return false
	}

	f, err := os.Create(file)
	if err != nil {
		c.logger.Printf("%s: %v\n", c.name, err)
		return false
	}

	if err := c.encode(f, m); err != nil {
		c.logger.Printf("%s: unable to save \"%s\": %v\n", c.name, file, err)
		f.Close()
		os.Remove(file)
		return false
	}

	if err := f.Close(); err != nil {
		c.logger.Printf("%s: %v\n", c.name, err)
		os.Remove(file)
		return false
	}

	return true
}
