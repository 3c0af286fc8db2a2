// Package fb provides an in-memory monochrome display implementing
// drivers.Displayer, used on host builds and in tests in place of the SSD1306.
package fb

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/pixel"
)

var _ drivers.Displayer = (*Mono)(nil)

// Mono is a 1-bit frame buffer. Display snapshots the working buffer into the
// visible one, the way a panel only shows what was last flushed.
type Mono struct {
	w, h    int16
	work    pixel.Image[pixel.Monochrome]
	visible pixel.Image[pixel.Monochrome]
	frames  int
	err     error
}

// NewMono allocates a w×h buffer with every pixel off.
func NewMono(w, h int16) *Mono {
	return &Mono{
		w:       w,
		h:       h,
		work:    pixel.NewImage[pixel.Monochrome](int(w), int(h)),
		visible: pixel.NewImage[pixel.Monochrome](int(w), int(h)),
	}
}

func (m *Mono) Size() (int16, int16) { return m.w, m.h }

// SetPixel lights the pixel for any non-black colour; out-of-range writes are dropped.
func (m *Mono) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.work.Set(int(x), int(y), pixel.Monochrome(c.R|c.G|c.B != 0))
}

// ClearBuffer turns every pixel of the working buffer off.
func (m *Mono) ClearBuffer() {
	for y := 0; y < int(m.h); y++ {
		for x := 0; x < int(m.w); x++ {
			m.work.Set(x, y, false)
		}
	}
}

// Display publishes the working buffer unless a failure was injected.
func (m *Mono) Display() error {
	if m.err != nil {
		return m.err
	}
	for y := 0; y < int(m.h); y++ {
		for x := 0; x < int(m.w); x++ {
			m.visible.Set(x, y, m.work.Get(x, y))
		}
	}
	m.frames++
	return nil
}

// Fail makes subsequent Display calls return err (nil restores success).
func (m *Mono) Fail(err error) { m.err = err }

// Frames reports how many successful Display calls happened.
func (m *Mono) Frames() int { return m.frames }

// Pixel reports whether the visible pixel at (x, y) is on.
func (m *Mono) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= int(m.w) || y >= int(m.h) {
		return false
	}
	return bool(m.visible.Get(x, y))
}

// Lit counts the visible pixels that are on.
func (m *Mono) Lit() int {
	n := 0
	for y := 0; y < int(m.h); y++ {
		for x := 0; x < int(m.w); x++ {
			if m.visible.Get(x, y) {
				n++
			}
		}
	}
	return n
}
