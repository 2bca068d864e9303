package raster

import (
	"image"
	"runtime"
	"sync"
)

// Pixel grids smaller than this decode on the calling goroutine.
const parallelThreshold = 1 << 16

// Render decodes a viewport of rows * cfg.Width pixels from data into an
// NRGBA image.
//
// The image is always rectangular with cfg.Width columns. Its height is the
// number of rows the buffer can fill, at most rows; when the buffer runs out
// partway through the final row, the remaining pixel slots are transparent
// black so out-of-data padding is distinct from decoded pixels with unset
// channels. A start position at or past the end of the buffer, a buffer too
// short for even one pixel, or a non-positive row count all yield a
// zero-height image.
//
// Render is a pure function of its arguments. It never mutates or retains
// data, so it is safe to call concurrently as long as the buffer is not
// replaced mid-call.
func Render(data []byte, cfg Config, desc Descriptor, rows int) *image.NRGBA {
	startBit := cfg.StartBit()
	totalBits := int64(len(data)) * 8

	if rows <= 0 || startBit >= totalBits {
		return image.NewNRGBA(image.Rect(0, 0, cfg.Width, 0))
	}

	available := (totalBits - startBit) / int64(cfg.BPP)
	if available == 0 {
		return image.NewNRGBA(image.Rect(0, 0, cfg.Width, 0))
	}

	decode := int64(rows) * int64(cfg.Width)
	if decode > available {
		decode = available
	}
	rendered := int((decode + int64(cfg.Width) - 1) / int64(cfg.Width))

	m := image.NewNRGBA(image.Rect(0, 0, cfg.Width, rendered))

	band := rendered
	if rendered*cfg.Width >= parallelThreshold {
		if n := runtime.GOMAXPROCS(0); n > 1 {
			band = (rendered + n - 1) / n
		}
	}

	if band == rendered {
		renderRows(m, data, cfg, desc, startBit, available, 0, rendered)
		return m
	}

	var wg sync.WaitGroup
	for y := 0; y < rendered; y += band {
		end := y + band
		if end > rendered {
			end = rendered
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			renderRows(m, data, cfg, desc, startBit, available, y0, y1)
		}(y, end)
	}
	wg.Wait()

	return m
}

// renderRows decodes rows y0..y1 into their slice of m.Pix. Each call writes
// a disjoint region, so concurrent calls need no locking.
func renderRows(m *image.NRGBA, data []byte, cfg Config, desc Descriptor, startBit, available int64, y0, y1 int) {
	p := int64(y0) * int64(cfg.Width)
	for y := y0; y < y1; y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+cfg.Width*4]
		for x := 0; x < cfg.Width; x, p = x+1, p+1 {
			dst := row[x*4 : x*4+4 : x*4+4]
			if p >= available {
				dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
				continue
			}
			v := ReadBits(data, startBit+p*int64(cfg.BPP), cfg.BPP, cfg.BitOrder)
			v = normalizePixel(v, cfg.BPP, cfg.ByteOrder)
			c := desc.apply(v, cfg.BPP)
			dst[0], dst[1], dst[2], dst[3] = c.R, c.G, c.B, c.A
		}
	}
}
