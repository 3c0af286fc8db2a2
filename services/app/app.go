// Package app assembles the firmware from an opened board.
package app

import (
	"context"
	"log/slog"
	"time"

	"joycursor-go/services/buttons"
	"joycursor-go/services/control"
	"joycursor-go/services/hal"
	"joycursor-go/services/hal/devices/gpio_button"
	"joycursor-go/services/hal/devices/gpio_dout"
	"joycursor-go/services/hal/devices/pwm_out"
	"joycursor-go/services/input"
	"joycursor-go/services/matrix"
	"joycursor-go/services/render"
	"joycursor-go/x/logx"
	"joycursor-go/x/timex"
)

type Options struct {
	Config   control.Config
	Debounce time.Duration
	Clock    buttons.Clock
	Logger   *slog.Logger
}

// DefaultOptions uses the loop defaults, the 200 ms debounce and the
// microsecond boot clock.
func DefaultOptions() Options {
	return Options{
		Config:   control.DefaultConfig(),
		Debounce: buttons.DefaultDebounce,
		Clock:    timex.NowUs,
	}
}

// App is the assembled firmware.
type App struct {
	Loop       *control.Loop
	Controller *buttons.Controller
	Red, Blue  *pwm_out.Device
	Green      *gpio_dout.Device

	buttons []*gpio_button.Device
	log     *slog.Logger
}

// Build configures every device on b and wires the loop. Zero-valued
// options fall back to DefaultOptions.
func Build(b *hal.Board, opt Options) (*App, error) {
	def := DefaultOptions()
	if opt.Config.Interval <= 0 {
		opt.Config.Interval = def.Config.Interval
	}
	if opt.Config.Mapper == (input.Mapper{}) {
		opt.Config.Mapper = def.Config.Mapper
	}
	if opt.Debounce <= 0 {
		opt.Debounce = def.Debounce
	}
	if opt.Clock == nil {
		opt.Clock = def.Clock
	}
	log := logx.Or(opt.Logger)

	a := &App{log: log}
	freq, top := hal.PWMSettings()
	a.Red = pwm_out.New(b.Red, pwm_out.Params{FreqHz: freq, Top: top})
	if err := a.Red.Init(); err != nil {
		return nil, err
	}
	a.Blue = pwm_out.New(b.Blue, pwm_out.Params{FreqHz: freq, Top: top})
	if err := a.Blue.Init(); err != nil {
		return nil, err
	}
	a.Green = gpio_dout.New(b.Green, gpio_dout.Params{})
	if err := a.Green.Init(); err != nil {
		return nil, err
	}

	state := buttons.NewState()
	a.Controller = buttons.NewController(state, a.Green, opt.Debounce, opt.Clock)
	for _, bt := range []struct {
		pin hal.IRQPin
		fn  func()
	}{
		{b.ButtonA, a.Controller.OnButtonA},
		{b.JoyButton, a.Controller.OnJoystickButton},
	} {
		d := gpio_button.New(bt.pin, gpio_button.DefaultParams)
		if err := d.Init(bt.fn); err != nil {
			a.Close()
			return nil, err
		}
		a.buttons = append(a.buttons, d)
	}

	// The cursor travels the panel minus its own size.
	w, h := b.Display.Size()
	cfg := opt.Config
	cfg.Mapper.Rows = int(h) - render.CursorSize
	cfg.Mapper.Cols = int(w) - render.CursorSize

	deps := control.Deps{
		X:      b.XAxis,
		Y:      b.YAxis,
		Red:    a.Red,
		Blue:   a.Blue,
		State:  state,
		Render: render.New(render.NewCanvas(b.Display), w, h),
		Logger: log,
	}
	if b.Matrix != nil {
		deps.Indicator = matrix.NewIndicator(b.Matrix)
	}
	a.Loop = control.New(cfg, deps)

	log.Info("board ready",
		slog.String("board", b.Name),
		slog.Int("width", int(w)),
		slog.Int("height", int(h)),
		slog.Bool("matrix", b.Matrix != nil),
	)
	return a, nil
}

// Run drives the loop until ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Loop.Run(ctx)
}

// Close detaches the button interrupts.
func (a *App) Close() {
	for _, d := range a.buttons {
		if err := d.Close(); err != nil {
			a.log.Warn("button close", slog.Int("pin", d.Pin()), slog.String("err", err.Error()))
		}
	}
	a.buttons = nil
}

// Run builds and runs the firmware on b.
func Run(ctx context.Context, b *hal.Board, opt Options) error {
	a, err := Build(b, opt)
	if err != nil {
		return err
	}
	a.Run(ctx)
	return nil
}
