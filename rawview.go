/*
Package rawview is a library for exploring raw bitmap data of unknown format.

A Viewer holds a loaded byte buffer together with the current decode
configuration and renders rectangular viewports of it through the raster
package. Front ends mutate the configuration through the setters and
navigation helpers and redraw by calling Render; the viewer itself has no
notion of windows, keys or files beyond loading one into memory.
*/
package rawview

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/bodgit/rawview/preset"
	"github.com/bodgit/rawview/raster"
	"github.com/rs/zerolog"
)

const (
	defaultWidth  = 256
	defaultBPP    = 8
	defaultPreset = "gray8"
)

// Viewer is a viewing session over one loaded buffer.
type Viewer struct {
	mu sync.Mutex

	data     []byte
	filename string

	config raster.Config
	fields raster.Descriptor
	preset string

	logger zerolog.Logger
}

// New returns a viewer with an empty buffer and the default configuration:
// 256 pixels wide, 8 bits per pixel, MSB-first, big-endian, 8-bit grayscale.
func New(logger zerolog.Logger) *Viewer {
	p, _ := preset.Lookup(defaultPreset)
	return &Viewer{
		config: raster.Config{
			BPP:   defaultBPP,
			Width: defaultWidth,
		},
		fields: p.Fields,
		preset: p.Name,
		logger: logger,
	}
}

// Load replaces the buffer with data, keeping name for status reporting. The
// start position resets to the beginning of the new buffer. The viewer does
// not copy data; the caller must not mutate it until the next Load.
func (v *Viewer) Load(data []byte, name string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.data = data
	v.filename = name
	v.config.Offset = 0
	v.config.BitAlign = 0

	v.logger.Info().Str("file", name).Int("bytes", len(data)).Msg("loaded")
}

// LoadFile reads the named file into memory and makes it the current buffer.
func (v *Viewer) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("rawview: %w", err)
	}
	v.Load(b, filepath.Base(path))
	return nil
}

// Size returns the length of the current buffer in bytes.
func (v *Viewer) Size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.data)
}

// Config returns a snapshot of the current decode configuration.
func (v *Viewer) Config() raster.Config {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.config
}

// Descriptor returns the current field layout.
func (v *Viewer) Descriptor() raster.Descriptor {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fields
}

// Render decodes a viewport of at most rows rows at the current
// configuration.
func (v *Viewer) Render(rows int) *image.NRGBA {
	v.mu.Lock()
	data, cfg, desc := v.data, v.config, v.fields
	v.mu.Unlock()

	m := raster.Render(data, cfg, desc, rows)

	v.logger.Debug().
		Int("offset", cfg.Offset).
		Int("bpp", cfg.BPP).
		Int("width", cfg.Width).
		Int("rows", m.Bounds().Dy()).
		Msg("rendered")

	return m
}

// SetWidth sets the row width in pixels, clamped to at least 1.
func (v *Viewer) SetWidth(w int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if w < 1 {
		w = 1
	}
	v.config.Width = w
}

// SetBPP sets the bits per pixel, clamped to 1..64.
func (v *Viewer) SetBPP(bpp int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.config.BPP = clamp(bpp, 1, 64)
}

// SetOffset sets the whole-byte start offset, clamped to be non-negative.
func (v *Viewer) SetOffset(off int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if off < 0 {
		off = 0
	}
	v.config.Offset = off
}

// SetBitAlign sets the sub-byte bit alignment, clamped to 0..7.
func (v *Viewer) SetBitAlign(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.config.BitAlign = clamp(n, 0, 7)
}

// SetBitOrder sets the bit order used to read pixel values.
func (v *Viewer) SetBitOrder(o raster.BitOrder) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.config.BitOrder = o
}

// SetByteOrder sets the byte order of multi-byte pixel values.
func (v *Viewer) SetByteOrder(o raster.ByteOrder) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.config.ByteOrder = o
}

// SetDescriptor replaces the field layout with an ad-hoc descriptor,
// clearing any preset selection. The pixel width is left alone.
func (v *Viewer) SetDescriptor(d raster.Descriptor) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fields = d
	v.preset = ""
}

// SelectPreset applies a preset's field layout and syncs the pixel width to
// the sum of its field widths.
func (v *Viewer) SelectPreset(p preset.Preset) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fields = p.Fields
	v.preset = p.Name
	v.config.BPP = clamp(p.Fields.Width(), 1, 64)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
