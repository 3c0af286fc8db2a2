package gpio_dout

import (
	"joycursor-go/errcode"
	"joycursor-go/services/hal/internal/halcore"
)

type Params struct {
	ActiveLow bool
	Initial   bool
}

// Device is a logical on/off output such as an LED.
type Device struct {
	pin       halcore.GPIOPin
	activeLow bool
	initial   bool
}

func New(pin halcore.GPIOPin, p Params) *Device {
	return &Device{pin: pin, activeLow: p.ActiveLow, initial: p.Initial}
}

func (d *Device) toPhys(on bool) bool { return on != d.activeLow }

func (d *Device) Init() error {
	if d.pin == nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "gpio_dout", Msg: "no pin"}
	}
	return errcode.Wrap(errcode.Error, "gpio_dout", d.pin.ConfigureOutput(d.toPhys(d.initial)))
}

// Set drives the logical state. Safe from interrupt context.
func (d *Device) Set(on bool) { d.pin.Set(d.toPhys(on)) }

// On reports the logical state read back from the pin.
func (d *Device) On() bool { return d.pin.Get() != d.activeLow }

func (d *Device) Toggle() { d.pin.Toggle() }

func (d *Device) Pin() int { return d.pin.Number() }
