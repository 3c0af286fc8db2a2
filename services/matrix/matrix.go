// Package matrix mirrors the toggle state on the 5x5 WS2812 matrix.
package matrix

import "joycursor-go/types"

const (
	// Side is the matrix edge length; the strip is wired row by row.
	Side = 5
	// Pixels is the number of LEDs on the strip.
	Pixels = Side * Side

	// Brightness scales every channel; the LEDs are painfully bright at full drive.
	Brightness = 0.03
)

// Strip accepts raw GRB words (G<<24 | R<<16 | B<<8), one per LED.
type Strip interface {
	WriteRaw(grb []uint32) error
}

// RGB packs components in [0,1] into a raw GRB word at Brightness.
func RGB(r, g, b float64) uint32 {
	rr := uint8(r * 255 * Brightness)
	gg := uint8(g * 255 * Brightness)
	bb := uint8(b * 255 * Brightness)
	return uint32(gg)<<24 | uint32(rr)<<16 | uint32(bb)<<8
}

var (
	colBorder = RGB(1, 1, 1)
	colGreen  = RGB(0, 1, 0)
	colPWMOn  = RGB(0, 0, 1)
	colPWMOff = RGB(1, 0, 0)
)

// Indicator renders toggles onto a Strip, writing only when they change.
type Indicator struct {
	strip  Strip
	buf    [Pixels]uint32
	last   types.Toggles
	primed bool
}

func NewIndicator(s Strip) *Indicator {
	return &Indicator{strip: s}
}

// Show draws t and pushes it to the strip unless it matches the last
// successful write. A failed write is retried on the next call.
func (ind *Indicator) Show(t types.Toggles) error {
	if ind.primed && t == ind.last {
		return nil
	}
	Compose(&ind.buf, t)
	if err := ind.strip.WriteRaw(ind.buf[:]); err != nil {
		ind.primed = false
		return err
	}
	ind.last, ind.primed = t, true
	return nil
}

// Compose fills buf with the pattern for t: the outer ring follows the border
// style, the inner ring lights green with the green LED (and forms the inner
// frame for DOUBLE), the centre shows the PWM gate.
func Compose(buf *[Pixels]uint32, t types.Toggles) {
	for i := range buf {
		buf[i] = 0
	}
	for i, p := range outerRing {
		switch t.Border {
		case types.BorderSolid, types.BorderDouble:
			buf[p] = colBorder
		case types.BorderDotted:
			if i%2 == 0 {
				buf[p] = colBorder
			}
		}
	}
	for _, p := range innerRing {
		switch {
		case t.Border == types.BorderDouble:
			buf[p] = colBorder
		case t.GreenOn:
			buf[p] = colGreen
		}
	}
	if t.PWMEnabled {
		buf[centre] = colPWMOn
	} else {
		buf[centre] = colPWMOff
	}
}

func at(x, y int) int { return y*Side + x }

var centre = at(2, 2)

// Rings walk clockwise from the top-left corner.
var outerRing = [...]int{
	at(0, 0), at(1, 0), at(2, 0), at(3, 0), at(4, 0),
	at(4, 1), at(4, 2), at(4, 3), at(4, 4),
	at(3, 4), at(2, 4), at(1, 4), at(0, 4),
	at(0, 3), at(0, 2), at(0, 1),
}

var innerRing = [...]int{
	at(1, 1), at(2, 1), at(3, 1),
	at(3, 2), at(3, 3),
	at(2, 3), at(1, 3),
	at(1, 2),
}
