/*
Package bmp implements a decoder and encoder for 24-bit uncompressed Windows
bitmaps.

The file is written as a 14 byte file header followed by a 40 byte info
header, both little-endian with no padding between fields, so the pixel data
always starts at byte 54. There is no color table. Each row of pixels is
stored as blue, green, red byte triples padded with zeroes to a multiple of 4
bytes, and rows are stored bottom-up so the first row in the file is the last
row of the image.

Only the variant written by Encode is accepted by Decode.
*/
package bmp

import (
	"encoding/binary"
	"errors"
)

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
	headerLen     = fileHeaderLen + infoHeaderLen
	bytesPerPixel = 3
	bitsPerPixel  = bytesPerPixel * 8
	planes        = 1

	// Roughly 300 DPI, expressed in pixels per meter
	resolution = 11811

	// Written verbatim for byte-compatibility with existing files
	significantColors = 0x1000000
)

var errShortHeader = errors.New("bmp: short header")

// Stride returns the number of bytes used by a row of width pixels,
// including the padding up to the next 4 byte boundary.
func Stride(width int) int {
	return 4 * ((width*bytesPerPixel + 3) / 4)
}

type fileHeader struct {
	size     uint32
	reserved uint32
	offset   uint32
}

// MarshalBinary implements encoding.BinaryMarshaler
func (h *fileHeader) MarshalBinary() ([]byte, error) {
	b := make([]byte, fileHeaderLen)
	b[0], b[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(b[2:6], h.size)
	binary.LittleEndian.PutUint32(b[6:10], h.reserved)
	binary.LittleEndian.PutUint32(b[10:14], h.offset)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The magic bytes are
// checked here, the remaining fields are left for the caller to validate.
func (h *fileHeader) UnmarshalBinary(b []byte) error {
	if len(b) < fileHeaderLen {
		return errShortHeader
	}
	if b[0] != 'B' || b[1] != 'M' {
		return ErrInvalidFormat
	}
	h.size = binary.LittleEndian.Uint32(b[2:6])
	h.reserved = binary.LittleEndian.Uint32(b[6:10])
	h.offset = binary.LittleEndian.Uint32(b[10:14])
	return nil
}

type infoHeader struct {
	size              uint32
	width             int32
	height            int32
	planes            uint16
	bitsPerPixel      uint16
	compression       uint32
	imageSize         uint32
	xResolution       int32
	yResolution       int32
	colorsUsed        uint32
	significantColors uint32
}

// MarshalBinary implements encoding.BinaryMarshaler
func (h *infoHeader) MarshalBinary() ([]byte, error) {
	b := make([]byte, infoHeaderLen)
	binary.LittleEndian.PutUint32(b[0:4], h.size)
	binary.LittleEndian.PutUint32(b[4:8], uint32(h.width))
	binary.LittleEndian.PutUint32(b[8:12], uint32(h.height))
	binary.LittleEndian.PutUint16(b[12:14], h.planes)
	binary.LittleEndian.PutUint16(b[14:16], h.bitsPerPixel)
	binary.LittleEndian.PutUint32(b[16:20], h.compression)
	binary.LittleEndian.PutUint32(b[20:24], h.imageSize)
	binary.LittleEndian.PutUint32(b[24:28], uint32(h.xResolution))
	binary.LittleEndian.PutUint32(b[28:32], uint32(h.yResolution))
	binary.LittleEndian.PutUint32(b[32:36], h.colorsUsed)
	binary.LittleEndian.PutUint32(b[36:40], h.significantColors)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler
func (h *infoHeader) UnmarshalBinary(b []byte) error {
	if len(b) < infoHeaderLen {
		return errShortHeader
	}
	h.size = binary.LittleEndian.Uint32(b[0:4])
	h.width = int32(binary.LittleEndian.Uint32(b[4:8]))
	h.height = int32(binary.LittleEndian.Uint32(b[8:12]))
	h.planes = binary.LittleEndian.Uint16(b[12:14])
	h.bitsPerPixel = binary.LittleEndian.Uint16(b[14:16])
	h.compression = binary.LittleEndian.Uint32(b[16:20])
	h.imageSize = binary.LittleEndian.Uint32(b[20:24])
	h.xResolution = int32(binary.LittleEndian.Uint32(b[24:28]))
	h.yResolution = int32(binary.LittleEndian.Uint32(b[28:32]))
	h.colorsUsed = binary.LittleEndian.Uint32(b[32:36])
	h.significantColors = binary.LittleEndian.Uint32(b[36:40])
	return nil
}
