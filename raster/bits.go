package raster

import "encoding/binary"

// ReadBits reads nbits (1..64) from data starting at absolute bit position
// bitpos and returns them as a uint64.
//
// For MSBFirst, bits are consumed most significant first within each byte and
// assembled most significant first; for LSBFirst, least significant first on
// both counts. Bits at or past the end of the buffer read as zero, so a read
// straddling the end of the data yields a zero-padded value rather than an
// error.
func ReadBits(data []byte, bitpos int64, nbits int, order BitOrder) uint64 {
	total := int64(len(data)) * 8

	// Fast path for byte-aligned whole-byte reads entirely in bounds.
	if bitpos >= 0 && bitpos&7 == 0 && bitpos+int64(nbits) <= total {
		off := bitpos >> 3
		switch nbits {
		case 8:
			return uint64(data[off])
		case 16:
			if order == LSBFirst {
				return uint64(binary.LittleEndian.Uint16(data[off:]))
			}
			return uint64(binary.BigEndian.Uint16(data[off:]))
		case 32:
			if order == LSBFirst {
				return uint64(binary.LittleEndian.Uint32(data[off:]))
			}
			return uint64(binary.BigEndian.Uint32(data[off:]))
		case 64:
			if order == LSBFirst {
				return binary.LittleEndian.Uint64(data[off:])
			}
			return binary.BigEndian.Uint64(data[off:])
		}
	}

	var v uint64
	if order == LSBFirst {
		for i := 0; i < nbits; i++ {
			p := bitpos + int64(i)
			if p < 0 || p >= total {
				continue
			}
			bit := data[p>>3] >> (p & 7) & 1
			v |= uint64(bit) << i
		}
		return v
	}
	for i := 0; i < nbits; i++ {
		p := bitpos + int64(i)
		var bit byte
		if p >= 0 && p < total {
			bit = data[p>>3] >> (7 - p&7) & 1
		}
		v = v<<1 | uint64(bit)
	}
	return v
}
