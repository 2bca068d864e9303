/*
Package preset holds a catalog of named pixel format descriptors covering the
common raw bitmap layouts, from 1-bit monochrome up to 32-bit BGRA, plus a
parser for writing descriptors directly.
*/
package preset

import (
	"fmt"
	"strings"

	"github.com/bodgit/rawview/raster"
)

// Preset is a named format descriptor. Name is a compact key for lookup,
// Label the human-readable catalog entry.
type Preset struct {
	Name   string
	Label  string
	BPP    int
	Fields raster.Descriptor
}

var catalog = []Preset{
	{"mono1", "1-bit: Monochrome (MSB)", 1, raster.Descriptor{{Channel: raster.Gray, Bits: 1}}},
	{"gray4", "4-bit: Grayscale", 4, raster.Descriptor{{Channel: raster.Gray, Bits: 4}}},
	{"r2g1b1", "4-bit: 2R-1G-1B", 4, raster.Descriptor{{Channel: raster.Red, Bits: 2}, {Channel: raster.Green, Bits: 1}, {Channel: raster.Blue, Bits: 1}}},
	{"gray8", "8-bit: Grayscale", 8, raster.Descriptor{{Channel: raster.Gray, Bits: 8}}},
	{"r3g3b2", "8-bit: R3-G3-B2", 8, raster.Descriptor{{Channel: raster.Red, Bits: 3}, {Channel: raster.Green, Bits: 3}, {Channel: raster.Blue, Bits: 2}}},
	{"b3g3r2", "8-bit: B3-G3-R2", 8, raster.Descriptor{{Channel: raster.Blue, Bits: 3}, {Channel: raster.Green, Bits: 3}, {Channel: raster.Red, Bits: 2}}},
	{"r2g3b3", "8-bit: R2-G3-B3", 8, raster.Descriptor{{Channel: raster.Red, Bits: 2}, {Channel: raster.Green, Bits: 3}, {Channel: raster.Blue, Bits: 3}}},
	{"a2r2g2b2", "8-bit: A2-R2-G2-B2", 8, raster.Descriptor{{Channel: raster.Alpha, Bits: 2}, {Channel: raster.Red, Bits: 2}, {Channel: raster.Green, Bits: 2}, {Channel: raster.Blue, Bits: 2}}},
	{"a1r2g3b2", "8-bit: A1-R2-G3-B2", 8, raster.Descriptor{{Channel: raster.Alpha, Bits: 1}, {Channel: raster.Red, Bits: 2}, {Channel: raster.Green, Bits: 3}, {Channel: raster.Blue, Bits: 2}}},
	{"rgb565", "16-bit: R5-G6-B5", 16, raster.Descriptor{{Channel: raster.Red, Bits: 5}, {Channel: raster.Green, Bits: 6}, {Channel: raster.Blue, Bits: 5}}},
	{"a1r5g5b5", "16-bit: A1-R5-G5-B5", 16, raster.Descriptor{{Channel: raster.Alpha, Bits: 1}, {Channel: raster.Red, Bits: 5}, {Channel: raster.Green, Bits: 5}, {Channel: raster.Blue, Bits: 5}}},
	{"rgba4444", "16-bit: R4-G4-B4-A4", 16, raster.Descriptor{{Channel: raster.Red, Bits: 4}, {Channel: raster.Green, Bits: 4}, {Channel: raster.Blue, Bits: 4}, {Channel: raster.Alpha, Bits: 4}}},
	{"r3g4b3", "16-bit: R3-G4-B3", 16, raster.Descriptor{{Channel: raster.Red, Bits: 3}, {Channel: raster.Green, Bits: 4}, {Channel: raster.Blue, Bits: 3}}},
	{"b3g4r3", "16-bit: B3-G4-R3", 16, raster.Descriptor{{Channel: raster.Blue, Bits: 3}, {Channel: raster.Green, Bits: 4}, {Channel: raster.Red, Bits: 3}}},
	{"a1r3g3b3", "16-bit: A1-R3-G3-B3", 16, raster.Descriptor{{Channel: raster.Alpha, Bits: 1}, {Channel: raster.Red, Bits: 3}, {Channel: raster.Green, Bits: 3}, {Channel: raster.Blue, Bits: 3}}},
	{"rgb888", "24-bit: R-G-B", 24, raster.Descriptor{{Channel: raster.Red, Bits: 8}, {Channel: raster.Green, Bits: 8}, {Channel: raster.Blue, Bits: 8}}},
	{"bgr888", "24-bit: B-G-R", 24, raster.Descriptor{{Channel: raster.Blue, Bits: 8}, {Channel: raster.Green, Bits: 8}, {Channel: raster.Red, Bits: 8}}},
	{"rgba8888", "32-bit: R-G-B-A", 32, raster.Descriptor{{Channel: raster.Red, Bits: 8}, {Channel: raster.Green, Bits: 8}, {Channel: raster.Blue, Bits: 8}, {Channel: raster.Alpha, Bits: 8}}},
	{"argb8888", "32-bit: A-R-G-B", 32, raster.Descriptor{{Channel: raster.Alpha, Bits: 8}, {Channel: raster.Red, Bits: 8}, {Channel: raster.Green, Bits: 8}, {Channel: raster.Blue, Bits: 8}}},
	{"abgr8888", "32-bit: A-B-G-R", 32, raster.Descriptor{{Channel: raster.Alpha, Bits: 8}, {Channel: raster.Blue, Bits: 8}, {Channel: raster.Green, Bits: 8}, {Channel: raster.Red, Bits: 8}}},
	{"bgra8888", "32-bit: B-G-R-A", 32, raster.Descriptor{{Channel: raster.Blue, Bits: 8}, {Channel: raster.Green, Bits: 8}, {Channel: raster.Red, Bits: 8}, {Channel: raster.Alpha, Bits: 8}}},
}

// Catalog returns the presets in display order. The returned slice is shared;
// treat it as read-only.
func Catalog() []Preset {
	return catalog
}

// Lookup finds a preset by name or, failing that, by label. Matching is
// case-insensitive.
func Lookup(name string) (Preset, error) {
	for _, p := range catalog {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	for _, p := range catalog {
		if strings.EqualFold(p.Label, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("preset: unknown preset %q", name)
}

// ByBPP returns the presets matching the given pixel width, in catalog
// order.
func ByBPP(bpp int) (out []Preset) {
	for _, p := range catalog {
		if p.BPP == bpp {
			out = append(out, p)
		}
	}
	return
}

var channels = map[byte]raster.Channel{
	'r': raster.Red,
	'g': raster.Green,
	'b': raster.Blue,
	'a': raster.Alpha,
	'y': raster.Gray,
}

// ParseDescriptor parses a compact field spec such as "r5g6b5", "a1r5g5b5"
// or "y4" into a descriptor. Each field is a channel letter (r, g, b, a, or
// y for gray) followed by a width in bits from 1 to 64, listed most
// significant first.
func ParseDescriptor(s string) (raster.Descriptor, error) {
	var d raster.Descriptor
	t := strings.ToLower(s)
	for i := 0; i < len(t); {
		ch, ok := channels[t[i]]
		if !ok {
			return nil, fmt.Errorf("preset: bad channel %q in descriptor %q", t[i], s)
		}
		i++
		w := 0
		j := i
		for ; j < len(t) && t[j] >= '0' && t[j] <= '9'; j++ {
			w = w*10 + int(t[j]-'0')
			if w > 64 {
				return nil, fmt.Errorf("preset: field width out of range in descriptor %q", s)
			}
		}
		if j == i || w == 0 {
			return nil, fmt.Errorf("preset: missing field width in descriptor %q", s)
		}
		i = j
		d = append(d, raster.Field{Channel: ch, Bits: w})
	}
	if len(d) == 0 {
		return nil, fmt.Errorf("preset: empty descriptor")
	}
	return d, nil
}
