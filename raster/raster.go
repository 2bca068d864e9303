/*
Package raster decodes packed pixel streams of arbitrary layout into RGBA
images.

A stream is described by a bit width per pixel (1 to 64), the bit order used
to read individual bits, the byte order of multi-byte pixel values, and a row
width in pixels. A Descriptor then splits each decoded pixel value into color
channel fields, most significant first. Nothing about the buffer itself is
inspected or validated; bits past the end of the buffer read as zero so a
viewport can always be rendered, whatever the offset.
*/
package raster

import (
	"fmt"
	"strings"
)

// BitOrder selects how bits are numbered within each byte of the stream.
type BitOrder int

const (
	// MSBFirst numbers bit 0 as the most significant bit of a byte.
	MSBFirst BitOrder = iota
	// LSBFirst numbers bit 0 as the least significant bit of a byte.
	LSBFirst
)

func (o BitOrder) String() string {
	if o == LSBFirst {
		return "LSB"
	}
	return "MSB"
}

// ByteOrder selects how the bytes of a multi-byte pixel value are ordered in
// the stream. It has no effect on pixels of eight bits or fewer.
type ByteOrder int

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "LE"
	}
	return "BE"
}

// Channel identifies the color channel a Field maps to. Gray writes the same
// value to the red, green and blue channels, leaving alpha alone.
type Channel int

const (
	Red Channel = iota + 1
	Green
	Blue
	Alpha
	Gray
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Alpha:
		return "A"
	case Gray:
		return "Y"
	}
	return "?"
}

// Field maps a run of pixel value bits to one channel.
type Field struct {
	Channel Channel
	Bits    int
}

// Descriptor is an ordered list of fields, most significant first. The field
// widths need not sum to the pixel width; each field is clamped to the bits
// still remaining in the pixel value, so an over- or under-claiming
// descriptor is fine. Channels no field writes stay at 255.
type Descriptor []Field

// Width returns the sum of the field widths in bits.
func (d Descriptor) Width() (n int) {
	for _, f := range d {
		n += f.Bits
	}
	return
}

// String renders the descriptor in compact form, such as "R5G6B5".
func (d Descriptor) String() string {
	var b strings.Builder
	for _, f := range d {
		fmt.Fprintf(&b, "%s%d", f.Channel, f.Bits)
	}
	return b.String()
}

// Config describes how to interpret a byte buffer as a pixel stream.
//
// Callers must ensure BPP is in 1..64, Width is at least 1, BitAlign is in
// 0..7 and Offset is non-negative before rendering; the decoder assumes these
// hold and does not re-check them. The start position may lie at or past the
// end of the buffer, which renders an empty viewport.
type Config struct {
	// Offset is the whole-byte offset of the first pixel.
	Offset int
	// BitAlign is a 0..7 bit offset into the byte at Offset.
	BitAlign int
	// BPP is the number of bits per encoded pixel, 1..64.
	BPP int
	// BitOrder is the bit numbering used when reading pixel values.
	BitOrder BitOrder
	// ByteOrder is the byte order of multi-byte pixel values.
	ByteOrder ByteOrder
	// Width is the row width in pixels.
	Width int
}

// StartBit returns the absolute bit position of the first pixel.
func (c Config) StartBit() int64 {
	return int64(c.Offset)*8 + int64(c.BitAlign)
}
