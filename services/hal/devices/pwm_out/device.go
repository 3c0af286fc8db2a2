// Package pwm_out drives a dimmable output on one PWM channel, mapping a
// logical level in [0, Top] to the physical duty (inverted when active-low).
package pwm_out

import (
	"sync/atomic"
	"time"

	"joycursor-go/errcode"
	"joycursor-go/services/hal/internal/halcore"
	"joycursor-go/x/ramp"
)

type Params struct {
	FreqHz    uint64
	Top       uint16
	ActiveLow bool
	Initial   uint16 // initial *logical* level
}

type Device struct {
	pwm       halcore.PWMChannel
	freq      uint64
	top       uint16
	activeLow bool
	initial   uint16
	level     atomic.Uint32 // current logical level
}

func New(pwm halcore.PWMChannel, p Params) *Device {
	return &Device{
		pwm:       pwm,
		freq:      p.FreqHz,
		top:       p.Top,
		activeLow: p.ActiveLow,
		initial:   p.Initial,
	}
}

// --- helpers: clamp + logical->physical mapping (invert if ActiveLow) ---

func (d *Device) clamp(lvl uint16) uint16 {
	if d.top == 0 {
		return 0
	}
	return min(lvl, d.top)
}

func (d *Device) toPhys(logical uint16) uint16 {
	l := d.clamp(logical)
	if !d.activeLow {
		return l
	}
	return d.top - l
}

// Init configures the channel and applies the initial level.
func (d *Device) Init() error {
	if d.pwm == nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "pwm_out", Msg: "no channel"}
	}
	if d.top == 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "pwm_out", Msg: "top is zero"}
	}
	if err := d.pwm.Configure(d.freq, d.top); err != nil {
		if errcode.Of(err) != errcode.Error {
			return err
		}
		return errcode.Wrap(errcode.Error, "pwm_out", err)
	}
	d.Set(d.initial)
	return nil
}

// Set applies a logical level, clamped to Top.
func (d *Device) Set(level uint16) {
	l := d.clamp(level)
	d.pwm.Set(d.toPhys(l))
	d.level.Store(uint32(l))
}

// Ramp walks linearly from the current level to 'to' on the caller's
// goroutine. tick paces the steps and may cancel.
func (d *Device) Ramp(to uint16, total time.Duration, steps uint16, tick ramp.Tick) {
	ramp.Linear(d.Level(), d.clamp(to), d.top, total, steps, tick, d.Set)
}

// Level returns the current logical level.
func (d *Device) Level() uint16 { return uint16(d.level.Load()) }

func (d *Device) Pin() int { return d.pwm.Pin() }
