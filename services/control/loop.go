// Package control runs the foreground sample → PWM → render loop.
package control

import (
	"context"
	"log/slog"
	"time"

	"joycursor-go/services/input"
	"joycursor-go/types"
	"joycursor-go/x/logx"
)

// Sampler reads one raw 12-bit ADC value.
type Sampler interface {
	Read() uint16
}

// Level drives one PWM channel with a 16-bit level.
type Level interface {
	Set(level uint16)
}

// Toggles exposes the button-driven state.
type Toggles interface {
	Snapshot() types.Toggles
}

// Renderer draws one frame.
type Renderer interface {
	Update(c types.Cursor, style types.BorderStyle) error
}

// Indicator mirrors the toggles somewhere else (the LED matrix).
type Indicator interface {
	Show(t types.Toggles) error
}

// Config holds loop timing and mapping calibration.
type Config struct {
	Interval time.Duration
	Mapper   input.Mapper
}

func DefaultConfig() Config {
	return Config{
		Interval: 40 * time.Millisecond,
		Mapper:   input.DefaultMapper(),
	}
}

// Deps are the collaborators of one loop. Indicator and Logger are optional.
type Deps struct {
	X, Y      Sampler
	Red, Blue Level
	State     Toggles
	Render    Renderer
	Indicator Indicator
	Logger    *slog.Logger
}

// Iteration reports what one Step computed and applied.
type Iteration struct {
	X, Y    uint16
	Duty    types.DutyPair
	Cursor  types.Cursor
	Toggles types.Toggles
}

type Loop struct {
	cfg Config
	d   Deps
	log *slog.Logger

	prev      types.Toggles
	primed    bool
	renderErr bool
}

func New(cfg Config, d Deps) *Loop {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	return &Loop{cfg: cfg, d: d, log: logx.Or(d.Logger)}
}

// Step runs one iteration: sample, drive PWM, render.
func (l *Loop) Step() Iteration {
	var it Iteration
	it.X = l.d.X.Read()
	it.Y = l.d.Y.Read()
	it.Toggles = l.d.State.Snapshot()

	if it.Toggles.PWMEnabled {
		it.Duty = l.cfg.Mapper.Duties(it.X, it.Y)
	}
	l.d.Red.Set(it.Duty.Red)
	l.d.Blue.Set(it.Duty.Blue)

	it.Cursor = l.cfg.Mapper.Cursor(it.X, it.Y)
	l.render(it)
	l.observe(it.Toggles)
	return it
}

// Run steps forever, blocking Interval after each iteration. It returns when
// ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	timer := time.NewTimer(l.cfg.Interval)
	defer timer.Stop()
	for {
		l.Step()
		timer.Reset(l.cfg.Interval)
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}
}

func (l *Loop) render(it Iteration) {
	err := l.d.Render.Update(it.Cursor, it.Toggles.Border)
	switch {
	case err != nil && !l.renderErr:
		l.log.Warn("display flush failed", slog.String("err", err.Error()))
		l.renderErr = true
	case err == nil && l.renderErr:
		l.log.Info("display flush recovered")
		l.renderErr = false
	}
}

// observe logs toggle transitions and refreshes the indicator. The button
// handlers cannot log from interrupt context, so it happens here.
func (l *Loop) observe(t types.Toggles) {
	if l.primed && t != l.prev {
		if t.PWMEnabled != l.prev.PWMEnabled {
			l.log.Info("button A", slog.Bool("pwm", t.PWMEnabled))
		}
		if t.GreenOn != l.prev.GreenOn || t.Border != l.prev.Border {
			l.log.Info("joystick button",
				slog.Bool("green_led", t.GreenOn),
				slog.String("border", t.Border.String()),
			)
		}
	}
	l.prev, l.primed = t, true

	if l.d.Indicator == nil {
		return
	}
	if err := l.d.Indicator.Show(t); err != nil {
		l.log.Warn("matrix write failed", slog.String("err", err.Error()))
	}
}
