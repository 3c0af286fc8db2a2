// services/hal/internal/platform/factories_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"machine"
	"sync"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"
	"tinygo.org/x/drivers/ssd1306"

	"joycursor-go/errcode"
	"joycursor-go/services/hal/internal/halcore"
	"joycursor-go/services/hal/internal/platform/setups"
	"joycursor-go/x/mathx"
	"joycursor-go/x/timex"
)

// Open configures every peripheral named by plan. Any failure is returned
// with the failing operation; the board is unusable in that case.
func Open(plan setups.ResourcePlan) (*halcore.Board, error) {
	b := &halcore.Board{Name: plan.Name}

	bus, err := openI2C(plan.I2C)
	if err != nil {
		return nil, err
	}
	// Bare control byte: the panel ACKs its address or the bus returns an error.
	if err := bus.Tx(plan.Display.Addr, []byte{0x00}, nil); err != nil {
		return nil, errcode.Wrap(errcode.BusNotResponding, "ssd1306 probe", err)
	}
	disp := ssd1306.NewI2C(bus)
	disp.Configure(ssd1306.Config{
		Address: plan.Display.Addr,
		Width:   plan.Display.Width,
		Height:  plan.Display.Height,
	})
	disp.ClearDisplay()
	b.Display = disp

	machine.InitADC()
	if b.XAxis, err = openADC(plan.ADC.X); err != nil {
		return nil, err
	}
	if b.YAxis, err = openADC(plan.ADC.Y); err != nil {
		return nil, err
	}

	if b.Red, err = newPWM(plan.PWM.Red); err != nil {
		return nil, err
	}
	if b.Blue, err = newPWM(plan.PWM.Blue); err != nil {
		return nil, err
	}

	pins := rp2PinFactory{}
	var ok bool
	if b.Green, ok = pins.ByNumber(plan.GPIO.Green); !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "green led"}
	}
	if b.ButtonA, ok = pins.irq(plan.GPIO.ButtonA); !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "button a"}
	}
	if b.JoyButton, ok = pins.irq(plan.GPIO.JoyButton); !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "joystick button"}
	}

	if plan.WS2812.Pixels > 0 {
		strip, err := openWS2812(plan.WS2812.Pin)
		if err != nil {
			return nil, err
		}
		b.Matrix = strip
	}
	return b, nil
}

// ---- I²C ----

func openI2C(p setups.I2CPlan) (*machine.I2C, error) {
	var bus *machine.I2C
	switch p.ID {
	case "i2c0":
		bus = machine.I2C0
	case "i2c1":
		bus = machine.I2C1
	default:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "i2c", Msg: p.ID}
	}
	err := bus.Configure(machine.I2CConfig{
		Frequency: p.Hz,
		SDA:       machine.Pin(p.SDA),
		SCL:       machine.Pin(p.SCL),
	})
	if err != nil {
		return nil, errcode.Wrap(errcode.BusNotResponding, p.ID, err)
	}
	return bus, nil
}

// ---- ADC ----

type rp2ADC struct {
	a machine.ADC
	n int
}

func openADC(n int) (*rp2ADC, error) {
	if n < 26 || n > 29 {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "adc"}
	}
	a := machine.ADC{Pin: machine.Pin(n)}
	if err := a.Configure(machine.ADCConfig{}); err != nil {
		return nil, errcode.Wrap(errcode.Error, "adc", err)
	}
	return &rp2ADC{a: a, n: n}, nil
}

// Read returns 12 bits; machine.ADC.Get left-justifies to 16.
func (r *rp2ADC) Read() uint16 { return r.a.Get() >> 4 }
func (r *rp2ADC) Pin() int      { return r.n }

// ---- PWM ----

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Top() uint32
	Set(channel uint8, value uint32)
}

func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// Slice frequency is shared by both channels; the first Configure wins.
var slices struct {
	mu     sync.Mutex
	freqHz [12]uint64 // RP2350 has 12 slices
}

type rp2PWM struct {
	pin    int
	ctrl   pwmCtrl
	chIdx  uint8 // 0 => A, 1 => B
	slice  uint8
	reqTop uint16
	hwTop  uint32
}

func newPWM(n int) (*rp2PWM, error) {
	slice, err := machine.PWMPeripheral(machine.Pin(n))
	if err != nil {
		return nil, errcode.Wrap(errcode.UnknownPin, "pwm", err)
	}
	return &rp2PWM{
		pin:   n,
		ctrl:  pwmGroupBySlice(slice),
		chIdx: uint8(n & 1),
		slice: slice,
	}, nil
}

func (p *rp2PWM) Configure(freqHz uint64, top uint16) error {
	top = max(top, 1)
	freqHz = max(freqHz, 1)

	slices.mu.Lock()
	defer slices.mu.Unlock()
	switch cur := slices.freqHz[p.slice]; {
	case cur == 0:
		err := p.ctrl.Configure(machine.PWMConfig{Period: timex.PeriodFromHz(freqHz)})
		if err != nil {
			return errcode.Wrap(errcode.Error, "pwm configure", err)
		}
		slices.freqHz[p.slice] = freqHz
	case cur != freqHz:
		return &errcode.E{C: errcode.Conflict, Op: "pwm configure", Msg: "slice frequency in use"}
	}

	machine.Pin(p.pin).Configure(machine.PinConfig{Mode: machine.PinPWM})
	p.reqTop = top
	p.hwTop = p.ctrl.Top()
	return nil
}

// Set scales the logical level [0..reqTop] to the hardware counter.
func (p *rp2PWM) Set(level uint16) {
	if p.hwTop == 0 || p.reqTop == 0 {
		return
	}
	level = mathx.Clamp(level, 0, p.reqTop)
	p.ctrl.Set(p.chIdx, uint32(uint64(level)*uint64(p.hwTop)/uint64(p.reqTop)))
}

func (p *rp2PWM) Pin() int { return p.pin }

// ---- GPIO implementation (includes IRQ support) ----

type rp2PinFactory struct{}

func (rp2PinFactory) ByNumber(n int) (halcore.GPIOPin, bool) {
	return rp2PinFactory{}.irq(n)
}

func (rp2PinFactory) irq(n int) (halcore.IRQPin, bool) {
	// Constrain to RP2's user GPIOs (GP0..GP28).
	if n < 0 || n > 28 {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull halcore.Pull) error {
	var mode machine.PinMode
	switch pull {
	case halcore.PullUp:
		mode = machine.PinInputPullup
	case halcore.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }
func (r *rp2Pin) Toggle()        { r.p.Set(!r.p.Get()) }
func (r *rp2Pin) Number() int    { return r.n }

func (r *rp2Pin) SetIRQ(edge halcore.Edge, handler func()) error {
	return r.p.SetInterrupt(toPinChange(edge), func(machine.Pin) { handler() })
}

func (r *rp2Pin) ClearIRQ() error {
	var zero machine.PinChange
	return r.p.SetInterrupt(zero, nil)
}

func toPinChange(e halcore.Edge) machine.PinChange {
	switch e {
	case halcore.EdgeRising:
		return machine.PinRising
	case halcore.EdgeFalling:
		return machine.PinFalling
	case halcore.EdgeBoth:
		return machine.PinToggle
	default:
		var zero machine.PinChange
		return zero
	}
}

// ---- WS2812 ----

type rp2Strip struct {
	ws *piolib.WS2812B
}

func openWS2812(n int) (*rp2Strip, error) {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, errcode.Wrap(errcode.Conflict, "ws2812 state machine", err)
	}
	ws, err := piolib.NewWS2812B(sm, machine.Pin(n))
	if err != nil {
		return nil, errcode.Wrap(errcode.Error, "ws2812", err)
	}
	return &rp2Strip{ws: ws}, nil
}

func (s *rp2Strip) WriteRaw(words []uint32) error { return s.ws.WriteRaw(words) }
