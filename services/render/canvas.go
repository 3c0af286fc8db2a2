package render

import (
	"image/color"

	"tinygo.org/x/drivers"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// Frame is the drawing contract the renderer needs from a display.
type Frame interface {
	Fill(on bool)
	Rect(x, y, w, h int16, filled, on bool)
	Flush() error
}

type bufferClearer interface {
	ClearBuffer()
}

// Canvas adapts a drivers.Displayer (SSD1306, or fb.Mono on host) to Frame.
// Drawing is clipped to the displayer's size.
type Canvas struct {
	d    drivers.Displayer
	w, h int16
}

var _ Frame = (*Canvas)(nil)

func NewCanvas(d drivers.Displayer) *Canvas {
	w, h := d.Size()
	return &Canvas{d: d, w: w, h: h}
}

// Size returns the displayer's dimensions.
func (c *Canvas) Size() (int16, int16) { return c.w, c.h }

func (c *Canvas) Fill(on bool) {
	if cl, ok := c.d.(bufferClearer); ok && !on {
		cl.ClearBuffer()
		return
	}
	c.fillRect(0, 0, c.w, c.h, on)
}

// Rect draws a w×h rectangle with its top-left corner at (x, y), either
// filled or as a 1-pixel outline.
func (c *Canvas) Rect(x, y, w, h int16, filled, on bool) {
	if w <= 0 || h <= 0 {
		return
	}
	if filled {
		c.fillRect(x, y, w, h, on)
		return
	}
	c.fillRect(x, y, w, 1, on)
	c.fillRect(x, y+h-1, w, 1, on)
	c.fillRect(x, y, 1, h, on)
	c.fillRect(x+w-1, y, 1, h, on)
}

func (c *Canvas) Flush() error { return c.d.Display() }

func (c *Canvas) fillRect(x, y, w, h int16, on bool) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.w), min(y+h, c.h)
	col := black
	if on {
		col = white
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.d.SetPixel(px, py, col)
		}
	}
}
