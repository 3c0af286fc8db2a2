// services/hal/internal/halcore/types.go
package halcore

import "tinygo.org/x/drivers"

// ---- GPIO abstractions ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

type GPIOPin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Toggle()
	Number() int
}

// Edge selection for IRQ.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

// IRQPin extends GPIOPin with interrupts. Handlers run in interrupt context
// on hardware and must not block or allocate.
type IRQPin interface {
	GPIOPin
	SetIRQ(edge Edge, handler func()) error
	ClearIRQ() error
}

// Util
func EdgeToString(e Edge) string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	default:
		return "none"
	}
}

// ---- Analog / PWM ----

// ADCChannel yields 12-bit samples in [0, 4095].
type ADCChannel interface {
	Read() uint16
	Pin() int
}

// PWMChannel is one PWM output. Set takes a logical level in [0, top] as
// passed to Configure; the platform scales it to the hardware counter.
type PWMChannel interface {
	Configure(freqHz uint64, top uint16) error
	Set(level uint16)
	Pin() int
}

// ---- Addressable LEDs ----

// PixelStrip accepts one packed GRB word per pixel (G<<24 | R<<16 | B<<8).
type PixelStrip interface {
	WriteRaw(words []uint32) error
}

// ---- Board ----

// Board is the set of configured peripherals the firmware runs against.
// Every field is ready to use; devices only claim pin modes on top.
type Board struct {
	Name string

	XAxis ADCChannel
	YAxis ADCChannel

	Red   PWMChannel
	Blue  PWMChannel
	Green GPIOPin

	ButtonA   IRQPin
	JoyButton IRQPin

	Display drivers.Displayer
	Matrix  PixelStrip // nil when the plan has no matrix
}
