// Package input turns raw joystick ADC samples into PWM levels and cursor
// coordinates.
package input

import (
	"joycursor-go/types"
	"joycursor-go/x/mathx"
)

const (
	AdcMax    = 4095  // 12-bit converter full scale
	AdcCenter = 2048  // joystick rest position
	MaxDuty   = 65535 // PWM counter wrap
	Gain      = 32    // AdcCenter*Gain saturates MaxDuty
)

// DeflectionToDuty returns |sample-center|*gain clamped to [0, maxDuty].
func DeflectionToDuty(sample, center uint16, maxDuty uint16, gain uint32) uint16 {
	d := uint32(mathx.Abs(int32(sample) - int32(center)))
	return uint16(mathx.Clamp(d*gain, 0, uint32(maxDuty)))
}

// Mapper holds the calibration for one joystick and display pairing.
type Mapper struct {
	Center  uint16
	Max     uint16
	Gain    uint32
	MaxDuty uint16
	Rows    int // largest cursor row (display height minus cursor size)
	Cols    int // largest cursor column (display width minus cursor size)
}

// DefaultMapper matches a 12-bit ADC, 16-bit PWM and a 128x64 panel with an
// 8-pixel cursor.
func DefaultMapper() Mapper {
	return Mapper{
		Center:  AdcCenter,
		Max:     AdcMax,
		Gain:    Gain,
		MaxDuty: MaxDuty,
		Rows:    64 - 8,
		Cols:    128 - 8,
	}
}

// Duty converts one axis sample to a PWM level. A sample pinned to either
// rail is full deflection and saturates.
func (m Mapper) Duty(sample uint16) uint16 {
	if sample == 0 || sample >= m.Max {
		return m.MaxDuty
	}
	return DeflectionToDuty(sample, m.Center, m.MaxDuty, m.Gain)
}

// Duties maps the X sample to the red channel and Y to blue.
func (m Mapper) Duties(x, y uint16) types.DutyPair {
	return types.DutyPair{Red: m.Duty(x), Blue: m.Duty(y)}
}

// Cursor places the square: the X sample drives the row, descending as X
// rises, and the Y sample drives the column, ascending as Y rises.
func (m Mapper) Cursor(x, y uint16) types.Cursor {
	return types.Cursor{
		X: mathx.Map(int(x), int(m.Max), 0, 0, m.Rows),
		Y: mathx.Map(int(y), int(m.Max), 0, m.Cols, 0),
	}
}
