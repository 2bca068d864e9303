/*
Package export writes rendered viewports to image files.

PNG and BMP keep the full RGBA data; GIF reduces it to a 256 color palette
first. Viewports are written top to bottom exactly as rendered.
*/
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/bmp"
)

// Format is an output image file format.
type Format int

const (
	PNG Format = iota
	GIF
	BMP
)

func (f Format) String() string {
	switch f {
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	}
	return "png"
}

// Ext returns the file extension for the format, with the leading dot.
func (f Format) Ext() string {
	return "." + f.String()
}

var errEmpty = errors.New("export: empty viewport")

// FormatFromPath picks the output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".gif":
		return GIF, nil
	case ".bmp":
		return BMP, nil
	}
	return PNG, fmt.Errorf("export: cannot determine format of %q", path)
}

// Encode writes m to w in the given format. A viewport with no rows is
// rejected; there is nothing to write.
func Encode(w io.Writer, m image.Image, f Format) error {
	b := m.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return errEmpty
	}

	switch f {
	case GIF:
		q := quantize.MedianCutQuantizer{AddTransparent: true}
		p := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, 256), m))
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				p.Set(x, y, m.At(x, y))
			}
		}
		return gif.Encode(w, p, nil)
	case BMP:
		return bmp.Encode(w, m)
	}
	return png.Encode(w, m)
}

// WriteFile writes m to path, inferring the format from the extension.
func WriteFile(path string, m image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := Encode(out, m, f); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}

	return out.Close()
}

// NumberedPath returns the first path of the form rawviewNNN.<ext> in dir
// that does not already exist, with NNN running from 000 to 999.
func NumberedPath(dir string, f Format) (string, error) {
	for i := 0; i <= 999; i++ {
		path := filepath.Join(dir, fmt.Sprintf("rawview%03d%s", i, f.Ext()))
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
	}
	return "", errors.New("export: no free filename")
}
