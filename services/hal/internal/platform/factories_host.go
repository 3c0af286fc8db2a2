// services/hal/internal/platform/factories_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"joycursor-go/errcode"
	"joycursor-go/services/hal/internal/halcore"
	"joycursor-go/services/hal/internal/platform/setups"
	"joycursor-go/x/fb"
)

// Open builds a board of in-memory fakes wired per plan. Tests drive the
// fakes through their exported methods.
func Open(plan setups.ResourcePlan) (*halcore.Board, error) {
	if plan.Display.Width <= 0 || plan.Display.Height <= 0 {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "display", Msg: "zero size"}
	}
	slices := &hostSlices{}
	b := &halcore.Board{
		Name:      plan.Name,
		XAxis:     NewFakeADC(plan.ADC.X, 2048),
		YAxis:     NewFakeADC(plan.ADC.Y, 2048),
		Red:       &FakePWM{pin: plan.PWM.Red, slices: slices},
		Blue:      &FakePWM{pin: plan.PWM.Blue, slices: slices},
		Green:     &FakePin{number: plan.GPIO.Green},
		ButtonA:   &FakePin{number: plan.GPIO.ButtonA, level: true},
		JoyButton: &FakePin{number: plan.GPIO.JoyButton, level: true},
		Display:   fb.NewMono(plan.Display.Width, plan.Display.Height),
	}
	if plan.WS2812.Pixels > 0 {
		b.Matrix = &FakeStrip{}
	}
	return b, nil
}

// OpenConsole logs to stdout on host builds.
func OpenConsole(setups.UARTPlan) (io.Writer, error) { return os.Stdout, nil }

// ----------------------------- ADC (host) ------------------------------------

// FakeADC returns whatever level was last stored.
type FakeADC struct {
	pin   int
	level atomic.Uint32
}

func NewFakeADC(pin int, level uint16) *FakeADC {
	a := &FakeADC{pin: pin}
	a.SetLevel(level)
	return a
}

func (a *FakeADC) SetLevel(v uint16) { a.level.Store(uint32(v)) }
func (a *FakeADC) Read() uint16      { return uint16(a.level.Load()) }
func (a *FakeADC) Pin() int          { return a.pin }

// ----------------------------- PWM (host) ------------------------------------

// hostSlices mirrors the RP2 rule that both channels of a slice share one
// frequency. Pins 2n and 2n+1 form slice n mod 8.
type hostSlices struct {
	mu     sync.Mutex
	freqHz [8]uint64
}

// FakePWM records the configured frequency, top and last level.
type FakePWM struct {
	mu     sync.Mutex
	pin    int
	slices *hostSlices
	freqHz uint64
	top    uint16
	level  uint16
	sets   int
}

func (p *FakePWM) Configure(freqHz uint64, top uint16) error {
	top = max(top, 1)
	freqHz = max(freqHz, 1)
	if p.slices != nil {
		s := (p.pin >> 1) & 7
		p.slices.mu.Lock()
		cur := p.slices.freqHz[s]
		if cur != 0 && cur != freqHz {
			p.slices.mu.Unlock()
			return &errcode.E{C: errcode.Conflict, Op: "pwm configure", Msg: "slice frequency in use"}
		}
		p.slices.freqHz[s] = freqHz
		p.slices.mu.Unlock()
	}
	p.mu.Lock()
	p.freqHz, p.top = freqHz, top
	p.mu.Unlock()
	return nil
}

func (p *FakePWM) Set(level uint16) {
	p.mu.Lock()
	p.level = min(level, p.top)
	p.sets++
	p.mu.Unlock()
}

func (p *FakePWM) Pin() int { return p.pin }

// Level returns the last level applied.
func (p *FakePWM) Level() uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// Config returns the frequency and top from the last successful Configure.
func (p *FakePWM) Config() (uint64, uint16) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.freqHz, p.top
}

// ----------------------------- WS2812 (host) ---------------------------------

// FakeStrip keeps the last frame written and an optional error to return.
type FakeStrip struct {
	mu     sync.Mutex
	last   []uint32
	writes int
	err    error
}

func (s *FakeStrip) WriteRaw(words []uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.last = append(s.last[:0], words...)
	s.writes++
	return nil
}

// Fail makes subsequent writes return err (nil restores).
func (s *FakeStrip) Fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Last returns a copy of the last frame and the number of successful writes.
func (s *FakeStrip) Last() ([]uint32, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint32(nil), s.last...), s.writes
}

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements GPIOPin and IRQPin. Set fires the registered handler
// synchronously on a matching edge, like an ISR.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
	pull    halcore.Pull
	irqEdge halcore.Edge
	irqFunc func()
}

func NewFakePin(n int, level bool) *FakePin { return &FakePin{number: n, level: level} }

func (p *FakePin) ConfigureInput(pull halcore.Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.pull = pull
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	edge := edgeFrom(p.level, level)
	p.level = level
	irq := p.irqFunc
	want := irqWanted(p.irqEdge, edge)
	p.mu.Unlock()
	if want && irq != nil {
		irq()
	}
}

// Press drives a pulled-up button low then releases it.
func (p *FakePin) Press() {
	p.Set(false)
	p.Set(true)
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

func (p *FakePin) Toggle() { p.Set(!p.Get()) }

func (p *FakePin) Number() int { return p.number }

// Mode reports whether the pin is an output and the last input pull.
func (p *FakePin) Mode() (out bool, pull halcore.Pull) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut, p.pull
}

func (p *FakePin) SetIRQ(edge halcore.Edge, handler func()) error {
	p.mu.Lock()
	p.irqEdge = edge
	p.irqFunc = handler
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ClearIRQ() error {
	p.mu.Lock()
	p.irqEdge = halcore.EdgeNone
	p.irqFunc = nil
	p.mu.Unlock()
	return nil
}

func edgeFrom(old, new bool) halcore.Edge {
	switch {
	case !old && new:
		return halcore.EdgeRising
	case old && !new:
		return halcore.EdgeFalling
	default:
		return halcore.EdgeNone
	}
}

func irqWanted(cfg, seen halcore.Edge) bool {
	if seen == halcore.EdgeNone {
		return false
	}
	if cfg == halcore.EdgeBoth {
		return true
	}
	return cfg == seen
}
