// Package buttons implements the debounced push-button toggles. Handlers run
// in interrupt context and only flip atomic flags plus one GPIO write.
package buttons

import "time"

// Button names a logical push-button.
type Button uint8

const (
	ButtonA Button = iota
	ButtonJoystick
)

// LED is the digital output mirrored by the joystick button.
type LED interface {
	Set(on bool)
}

// Clock returns a wrapping microsecond timestamp.
type Clock func() uint32

// Controller routes button edges through per-button debouncers into State.
type Controller struct {
	state *State
	led   LED
	clock Clock
	a     *Debouncer
	js    *Debouncer
}

// NewController wires both buttons to state with the same debounce window.
// led may be nil when no digital LED is fitted.
func NewController(state *State, led LED, window time.Duration, clock Clock) *Controller {
	return &Controller{
		state: state,
		led:   led,
		clock: clock,
		a:     NewDebouncer(window),
		js:    NewDebouncer(window),
	}
}

// State returns the state the controller mutates.
func (c *Controller) State() *State { return c.state }

// Press applies the effect of b at nowUs and reports whether it was accepted.
// Unknown buttons are ignored.
func (c *Controller) Press(b Button, nowUs uint32) bool {
	switch b {
	case ButtonA:
		if !c.a.Accept(nowUs) {
			return false
		}
		c.state.togglePWM()
		return true
	case ButtonJoystick:
		if !c.js.Accept(nowUs) {
			return false
		}
		on := c.state.toggleGreen()
		if c.led != nil {
			c.led.Set(on)
		}
		c.state.advanceBorder()
		return true
	default:
		return false
	}
}

// OnButtonA is the falling-edge handler for button A.
func (c *Controller) OnButtonA() { c.Press(ButtonA, c.clock()) }

// OnJoystickButton is the falling-edge handler for the joystick push.
func (c *Controller) OnJoystickButton() { c.Press(ButtonJoystick, c.clock()) }
