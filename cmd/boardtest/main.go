// cmd/boardtest/main.go
package main

import (
	"log/slog"
	"time"

	"joycursor-go/services/hal"
	"joycursor-go/services/hal/devices/gpio_button"
	"joycursor-go/services/hal/devices/gpio_dout"
	"joycursor-go/services/hal/devices/pwm_out"
	"joycursor-go/services/matrix"
	"joycursor-go/services/render"
	"joycursor-go/types"
	"joycursor-go/x/logx"
	"joycursor-go/x/ramp"
)

// ---------- Configuration ----------

const (
	// Sequencing timing
	styleDwell = 500 * time.Millisecond
	sweepSteps = 16
	sweepDelay = 30 * time.Millisecond
	blinkDelay = 150 * time.Millisecond

	// Cycles: 0 = loop forever
	cyclesToRun = 0
)

var styles = []types.BorderStyle{
	types.BorderNone,
	types.BorderSolid,
	types.BorderDotted,
	types.BorderDouble,
}

type rig struct {
	log         *slog.Logger
	board       *hal.Board
	red, blue   *pwm_out.Device
	green       *gpio_dout.Device
	btnA, btnJ  *gpio_button.Device
	renderer    *render.Renderer
	w, h        int16
	matrixStrip matrix.Strip
}

// ---------- Steps ----------

// displayStep draws every border style with the cursor centred.
func (r *rig) displayStep() bool {
	c := types.Cursor{
		X: int(r.h-render.CursorSize) / 2,
		Y: int(r.w-render.CursorSize) / 2,
	}
	ok := true
	for _, s := range styles {
		if err := r.renderer.Update(c, s); err != nil {
			r.log.Error("display", slog.String("style", s.String()), slog.String("err", err.Error()))
			ok = false
			continue
		}
		r.log.Info("display", slog.String("style", s.String()))
		time.Sleep(styleDwell)
	}
	return ok
}

// sweep ramps one PWM output up and back down.
func (r *rig) sweep(name string, d *pwm_out.Device) bool {
	const top = 65535
	d.Ramp(top, sweepSteps*sweepDelay, sweepSteps, ramp.Sleep)
	peak := d.Level()
	d.Ramp(0, sweepSteps*sweepDelay, sweepSteps, ramp.Sleep)
	ok := peak == top && d.Level() == 0
	r.log.Info("pwm sweep", slog.String("led", name), slog.Int("pin", d.Pin()), slog.Bool("ok", ok))
	return ok
}

func (r *rig) adcStep() bool {
	x, y := r.board.XAxis.Read(), r.board.YAxis.Read()
	ok := x <= 4095 && y <= 4095
	r.log.Info("joystick", slog.Int("x", int(x)), slog.Int("y", int(y)), slog.Bool("ok", ok))
	return ok
}

func (r *rig) buttonStep() {
	r.log.Info("buttons",
		slog.Bool("a_pressed", r.btnA.Pressed()),
		slog.Bool("joy_pressed", r.btnJ.Pressed()),
	)
}

// matrixStep shows each border style and both PWM states on the matrix.
func (r *rig) matrixStep() bool {
	if r.matrixStrip == nil {
		r.log.Info("matrix", slog.String("state", "absent"))
		return true
	}
	ind := matrix.NewIndicator(r.matrixStrip)
	for _, s := range styles {
		for _, pwm := range []bool{true, false} {
			t := types.Toggles{PWMEnabled: pwm, Border: s, GreenOn: s != types.BorderNone}
			if err := ind.Show(t); err != nil {
				r.log.Error("matrix", slog.String("err", err.Error()))
				return false
			}
			time.Sleep(styleDwell / 2)
		}
	}
	r.log.Info("matrix", slog.String("state", "ok"))
	return true
}

func (r *rig) ledFlashPassFail(pass bool) {
	if pass {
		// Double short
		for i := 0; i < 2; i++ {
			r.green.Set(true)
			time.Sleep(blinkDelay)
			r.green.Set(false)
			time.Sleep(blinkDelay)
		}
		return
	}
	// Single long
	r.green.Set(true)
	time.Sleep(3 * blinkDelay)
	r.green.Set(false)
	time.Sleep(blinkDelay)
}

// ---------- Main ----------

func main() {
	time.Sleep(2 * time.Second)

	console, err := hal.OpenConsole()
	if err != nil {
		println("[boardtest] console:", err.Error())
		console = nil
	}
	log := logx.New(console, slog.LevelDebug)

	board, err := hal.Open()
	if err != nil {
		for {
			log.Error("[FAIL] board open", slog.String("err", err.Error()))
			time.Sleep(time.Second)
		}
	}

	freq, top := hal.PWMSettings()
	r := &rig{
		log:         log,
		board:       board,
		red:         pwm_out.New(board.Red, pwm_out.Params{FreqHz: freq, Top: top}),
		blue:        pwm_out.New(board.Blue, pwm_out.Params{FreqHz: freq, Top: top}),
		green:       gpio_dout.New(board.Green, gpio_dout.Params{}),
		btnA:        gpio_button.New(board.ButtonA, gpio_button.DefaultParams),
		btnJ:        gpio_button.New(board.JoyButton, gpio_button.DefaultParams),
		matrixStrip: board.Matrix,
	}
	r.w, r.h = board.Display.Size()
	r.renderer = render.New(render.NewCanvas(board.Display), r.w, r.h)

	for _, step := range []struct {
		name string
		init func() error
	}{
		{"red", r.red.Init},
		{"blue", r.blue.Init},
		{"green", r.green.Init},
	} {
		if err := step.init(); err != nil {
			log.Error("[FAIL] init", slog.String("dev", step.name), slog.String("err", err.Error()))
		}
	}
	// Init applies the pull-ups; presses are sampled, not handled.
	_ = r.btnA.Init(func() {})
	_ = r.btnJ.Init(func() {})

	cycle := 0
	for {
		cycle++
		log.Info("=== boardtest ===", slog.Int("cycle", cycle))

		pass := r.displayStep()
		pass = r.sweep("red", r.red) && pass
		pass = r.sweep("blue", r.blue) && pass
		pass = r.adcStep() && pass
		r.buttonStep()
		pass = r.matrixStep() && pass

		if pass {
			log.Info("[PASS] display, pwm, adc and matrix responded")
		} else {
			log.Warn("[FAIL] see errors above")
		}
		r.ledFlashPassFail(pass)

		if cyclesToRun > 0 && cycle >= cyclesToRun {
			log.Info("halting", slog.Int("cycles", cycle))
			return
		}
	}
}
