// Package render draws the cursor square and the selected border into a
// Frame and flushes it, once per control-loop iteration.
package render

import "joycursor-go/types"

// CursorSize is the edge length of the cursor square in pixels.
const CursorSize = 8

// doubleInset is the gap between the outer and inner DOUBLE frames.
const doubleInset = 2

// Renderer owns the per-iteration draw sequence for one panel.
type Renderer struct {
	f    Frame
	w, h int16
}

// New returns a renderer for a w×h panel.
func New(f Frame, w, h int16) *Renderer {
	return &Renderer{f: f, w: w, h: h}
}

// Update clears the frame, draws the cursor with its top-left corner at row
// c.X and column c.Y, draws the border for style and flushes.
func (r *Renderer) Update(c types.Cursor, style types.BorderStyle) error {
	r.f.Fill(false)
	r.f.Rect(int16(c.Y), int16(c.X), CursorSize, CursorSize, true, true)
	r.drawBorder(style)
	return r.f.Flush()
}

func (r *Renderer) drawBorder(style types.BorderStyle) {
	switch style {
	case types.BorderSolid:
		r.frame(0)
	case types.BorderDotted:
		r.dotted()
	case types.BorderDouble:
		r.frame(0)
		r.frame(doubleInset)
	}
}

// frame draws four 1-pixel full-length edges inset by n pixels.
func (r *Renderer) frame(n int16) {
	w, h := r.w-2*n, r.h-2*n
	r.f.Rect(n, n, w, 1, true, true)       // top
	r.f.Rect(n, r.h-1-n, w, 1, true, true) // bottom
	r.f.Rect(n, n, 1, h, true, true)       // left
	r.f.Rect(r.w-1-n, n, 1, h, true, true) // right
}

// dotted lights every other pixel along all four edges.
func (r *Renderer) dotted() {
	for x := int16(0); x < r.w; x += 2 {
		r.f.Rect(x, 0, 1, 1, true, true)
		r.f.Rect(x, r.h-1, 1, 1, true, true)
	}
	for y := int16(0); y < r.h; y += 2 {
		r.f.Rect(0, y, 1, 1, true, true)
		r.f.Rect(r.w-1, y, 1, 1, true, true)
	}
}
