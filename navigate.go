package rawview

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// bppCycle is the set of widths the cycle hotkey steps through.
var bppCycle = []int{1, 4, 8, 16, 24, 32}

// seek moves the start position to the given absolute bit, clamped so that
// at least one whole pixel remains before the end of the buffer, and splits
// it back into a byte offset and bit alignment. Callers hold v.mu.
func (v *Viewer) seek(bit int64) {
	limit := int64(len(v.data))*8 - int64(v.config.BPP)
	if limit < 0 {
		limit = 0
	}
	if bit > limit {
		bit = limit
	}
	if bit < 0 {
		bit = 0
	}
	v.config.Offset = int(bit / 8)
	v.config.BitAlign = int(bit % 8)
}

// ScrollRows moves the viewport by n whole rows, negative for up.
func (v *Viewer) ScrollRows(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.data) == 0 {
		return
	}
	step := int64(n) * int64(v.config.Width) * int64(v.config.BPP)
	v.seek(v.config.StartBit() + step)
}

// Page moves the viewport by two thirds of the visible area. dir is -1 for
// up, +1 for down; visibleRows is the height of the display in pixel rows.
func (v *Viewer) Page(dir, visibleRows int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.data) == 0 || visibleRows < 1 {
		return
	}
	visibleBits := int64(v.config.Width) * int64(visibleRows) * int64(v.config.BPP)
	pageBits := visibleBits * 2 / 3
	if pageBits <= 0 {
		return
	}
	v.seek(v.config.StartBit() + int64(dir)*pageBits)
}

// Home moves the viewport back to the start of the buffer.
func (v *Viewer) Home() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.config.Offset = 0
	v.config.BitAlign = 0
}

// CycleBPP steps the pixel width through 1, 4, 8, 16, 24 and 32 bits. dir is
// +1 for the next width, -1 for the previous. A width outside the cycle
// restarts it at 1.
func (v *Viewer) CycleBPP(dir int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	i := 0
	for j, b := range bppCycle {
		if b == v.config.BPP {
			i = j + dir
			break
		}
	}
	n := len(bppCycle)
	v.config.BPP = bppCycle[(i%n+n)%n]
}

// ParseOffset parses a byte offset entered as decimal, or as hexadecimal
// with a "0x" prefix.
func ParseOffset(s string) (int, error) {
	t := strings.TrimSpace(s)
	base := 10
	if len(t) > 2 && (strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X")) {
		t, base = t[2:], 16
	}
	n, err := strconv.ParseInt(t, base, 64)
	if err != nil || n < 0 || n > math.MaxInt32 {
		return 0, fmt.Errorf("rawview: bad offset %q", s)
	}
	return int(n), nil
}

// Status returns a one-line summary of the session: file, size, position,
// geometry, orders and how many pixels the buffer still holds.
func (v *Viewer) Status() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	name := v.filename
	if name == "" {
		name = "(no file)"
	}

	var available int64
	if start, total := v.config.StartBit(), int64(len(v.data))*8; start < total {
		available = (total - start) / int64(v.config.BPP)
	}

	sel := v.preset
	if sel == "" {
		sel = v.fields.String()
	}

	return fmt.Sprintf("File: %s size=%d bytes | offset=%d bit-align=%d | width=%dpx bpp=%d preset=%q | bit-order=%s byte-order=%s | pixels=%d",
		name, len(v.data), v.config.Offset, v.config.BitAlign,
		v.config.Width, v.config.BPP, sel,
		v.config.BitOrder, v.config.ByteOrder, available)
}
