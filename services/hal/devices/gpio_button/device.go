// Package gpio_button attaches an interrupt handler to a push button.
// The handler runs in interrupt context and must only touch atomics.
package gpio_button

import (
	"joycursor-go/errcode"
	"joycursor-go/services/hal/internal/halcore"
)

type Params struct {
	Pull halcore.Pull
	Edge halcore.Edge
	// Invert: pressed reads high. Buttons to ground with a pull-up leave it false.
	Invert bool
}

// Pressed-to-ground buttons: pull-up, interrupt on the falling edge.
var DefaultParams = Params{Pull: halcore.PullUp, Edge: halcore.EdgeFalling}

type Device struct {
	pin    halcore.IRQPin
	pull   halcore.Pull
	edge   halcore.Edge
	invert bool
	armed  bool
}

func New(pin halcore.IRQPin, p Params) *Device {
	if p.Edge == halcore.EdgeNone {
		p.Edge = halcore.EdgeFalling
	}
	return &Device{pin: pin, pull: p.Pull, edge: p.Edge, invert: p.Invert}
}

// Init configures the input and registers onPress for the selected edge.
func (d *Device) Init(onPress func()) error {
	if d.pin == nil || onPress == nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "gpio_button"}
	}
	if err := d.pin.ConfigureInput(d.pull); err != nil {
		return errcode.Wrap(errcode.Error, "gpio_button input", err)
	}
	if err := d.pin.SetIRQ(d.edge, onPress); err != nil {
		return &errcode.E{C: errcode.Unsupported, Op: "gpio_button irq", Msg: halcore.EdgeToString(d.edge), Err: err}
	}
	d.armed = true
	return nil
}

func (d *Device) Close() error {
	if !d.armed {
		return nil
	}
	d.armed = false
	return d.pin.ClearIRQ()
}

// Pressed samples the pin now.
func (d *Device) Pressed() bool { return d.pin.Get() == d.invert }

func (d *Device) Pin() int { return d.pin.Number() }
