package raster

import (
	"image/color"
	"math/bits"
)

func mask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<n - 1
}

// normalizePixel fixes up the byte order of a pixel value as assembled by
// ReadBits. The bit reader produces bytes in stream order, which is a
// big-endian byte sequence; a little-endian source needs that sequence
// reversed before field extraction. Pixels of eight bits or fewer have no
// byte order. The result is masked to bpp bits either way.
func normalizePixel(v uint64, bpp int, order ByteOrder) uint64 {
	if order == BigEndian || bpp <= 8 {
		return v & mask(bpp)
	}
	nbytes := (bpp + 7) / 8
	v = bits.ReverseBytes64(v << (8 * (8 - nbytes)))
	return v & mask(bpp)
}

// scaleToByte rescales a raw field value of the given bit width to 0..255.
// Eight bits pass through, wider fields keep their top eight bits, and
// narrower fields expand linearly with half-up rounding so that zero maps to
// zero and the all-ones value maps to exactly 255.
func scaleToByte(raw uint64, width int) uint8 {
	switch {
	case width <= 0:
		return 0
	case width == 8:
		return uint8(raw)
	case width > 8:
		return uint8(raw >> (width - 8))
	}
	max := mask(width)
	return uint8((raw*255 + max/2) / max)
}

// apply splits a normalized pixel value of bpp bits into the descriptor's
// fields and returns the resulting color. Channels no field writes are left
// at opaque white; a field wider than the bits remaining is clamped, and a
// field left with no bits at all keeps the channel at its prior value.
func (d Descriptor) apply(v uint64, bpp int) color.NRGBA {
	c := color.NRGBA{0xff, 0xff, 0xff, 0xff}
	remaining := bpp
	for _, f := range d {
		used := f.Bits
		if used > remaining {
			used = remaining
		}
		if used == 0 {
			continue
		}
		raw := v >> (remaining - used) & mask(used)
		remaining -= used
		val := scaleToByte(raw, used)
		switch f.Channel {
		case Red:
			c.R = val
		case Green:
			c.G = val
		case Blue:
			c.B = val
		case Alpha:
			c.A = val
		case Gray:
			c.R, c.G, c.B = val, val, val
		}
	}
	return c
}
