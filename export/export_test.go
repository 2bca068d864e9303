package export

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func testImage() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			m.SetNRGBA(x, y, color.NRGBA{byte(x * 60), byte(y * 100), 0x80, 0xff})
		}
	}
	// One transparent padding pixel.
	m.SetNRGBA(3, 1, color.NRGBA{})
	return m
}

// TestFormatFromPath covers extension mapping, case-insensitively.
func TestFormatFromPath(t *testing.T) {
	tables := []struct {
		path string
		want Format
		ok   bool
	}{
		{"out.png", PNG, true},
		{"dir/OUT.PNG", PNG, true},
		{"anim.gif", GIF, true},
		{"shot.bmp", BMP, true},
		{"raw.dat", PNG, false},
		{"noext", PNG, false},
	}

	for _, table := range tables {
		f, err := FormatFromPath(table.path)
		if table.ok {
			require.NoError(t, err, table.path)
			assert.Equal(t, table.want, f, table.path)
		} else {
			assert.Error(t, err, table.path)
		}
	}
}

// TestEncodePNGRoundTrip verifies the PNG path preserves the RGBA data
// exactly, including transparent padding.
func TestEncodePNGRoundTrip(t *testing.T) {
	src := testImage()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, PNG))

	got, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), got.Bounds())

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := src.NRGBAAt(x, y)
			r, g, b, a := got.At(x, y).RGBA()
			wr, wg, wb, wa := want.RGBA()
			assert.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{r, g, b, a}, "(%d,%d)", x, y)
		}
	}
}

// TestEncodeBMPRoundTrip verifies the BMP path writes a decodable file of
// the right shape.
func TestEncodeBMPRoundTrip(t *testing.T) {
	src := testImage()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, BMP))

	got, err := bmp.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), got.Bounds())
}

// TestEncodeGIF verifies the GIF path quantizes and produces a decodable
// image.
func TestEncodeGIF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testImage(), GIF))

	got, err := gif.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), got.Bounds())
}

// TestEncodeEmpty verifies a zero-row viewport is rejected rather than
// written as a degenerate file.
func TestEncodeEmpty(t *testing.T) {
	empty := image.NewNRGBA(image.Rect(0, 0, 256, 0))

	for _, f := range []Format{PNG, GIF, BMP} {
		var buf bytes.Buffer
		assert.ErrorIs(t, Encode(&buf, empty, f), errEmpty, f)
		assert.Zero(t, buf.Len(), f)
	}
}

// TestWriteFile verifies format inference plus cleanup of files that fail
// to encode.
func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "shot.png")
	require.NoError(t, WriteFile(path, testImage()))
	_, err := os.Stat(path)
	assert.NoError(t, err)

	assert.Error(t, WriteFile(filepath.Join(dir, "shot.xyz"), testImage()))

	bad := filepath.Join(dir, "empty.png")
	assert.Error(t, WriteFile(bad, image.NewNRGBA(image.Rect(0, 0, 1, 0))))
	_, err = os.Stat(bad)
	assert.True(t, os.IsNotExist(err))
}

// TestNumberedPath verifies numbering starts at 000 and skips existing
// files.
func TestNumberedPath(t *testing.T) {
	dir := t.TempDir()

	path, err := NumberedPath(dir, PNG)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rawview000.png"), path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "rawview000.png"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rawview001.png"), nil, 0o644))

	path, err = NumberedPath(dir, PNG)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rawview002.png"), path)

	// Extension tracks the format.
	path, err = NumberedPath(dir, GIF)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rawview000.gif"), path)
}
