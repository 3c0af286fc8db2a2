package control

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"joycursor-go/services/buttons"
	"joycursor-go/services/render"
	"joycursor-go/types"
	"joycursor-go/x/fb"
	"joycursor-go/x/logx"
)

type fakeADC struct{ v atomic.Uint32 }

func (a *fakeADC) Read() uint16 { return uint16(a.v.Load()) }
func (a *fakeADC) set(v uint16) { a.v.Store(uint32(v)) }

type fakePWM struct {
	sets  int
	level uint16
}

func (p *fakePWM) Set(level uint16) { p.sets++; p.level = level }

type fakeLED struct{ on bool }

func (l *fakeLED) Set(on bool) { l.on = on }

type fakeIndicator struct {
	shown []types.Toggles
	err   error
}

func (f *fakeIndicator) Show(t types.Toggles) error {
	f.shown = append(f.shown, t)
	return f.err
}

type rig struct {
	x, y      *fakeADC
	red, blue *fakePWM
	ctl       *buttons.Controller
	panel     *fb.Mono
	ind       *fakeIndicator
	logs      *bytes.Buffer
	loop      *Loop
}

func newRig() *rig {
	r := &rig{
		x: &fakeADC{}, y: &fakeADC{},
		red: &fakePWM{}, blue: &fakePWM{},
		panel: fb.NewMono(128, 64),
		ind:   &fakeIndicator{},
		logs:  &bytes.Buffer{},
	}
	r.x.set(2048)
	r.y.set(2048)
	r.ctl = buttons.NewController(buttons.NewState(), &fakeLED{}, buttons.DefaultDebounce, func() uint32 { return 0 })
	r.loop = New(DefaultConfig(), Deps{
		X: r.x, Y: r.y,
		Red: r.red, Blue: r.blue,
		State:     r.ctl.State(),
		Render:    render.New(render.NewCanvas(r.panel), 128, 64),
		Indicator: r.ind,
		Logger:    logx.New(r.logs, slog.LevelInfo),
	})
	return r
}

func TestStepCentered(t *testing.T) {
	r := newRig()
	it := r.loop.Step()
	if it.Duty != (types.DutyPair{}) || r.red.level != 0 || r.blue.level != 0 {
		t.Fatalf("centered duty = %+v, red=%d blue=%d", it.Duty, r.red.level, r.blue.level)
	}
	if it.Cursor != (types.Cursor{X: 27, Y: 61}) {
		t.Fatalf("centered cursor = %+v", it.Cursor)
	}
	if r.panel.Frames() != 1 || r.panel.Lit() != 64 {
		t.Fatalf("frames=%d lit=%d", r.panel.Frames(), r.panel.Lit())
	}
	if !r.panel.Pixel(61, 27) {
		t.Fatal("cursor not drawn at row 27, column 61")
	}
}

func TestStepFullDeflection(t *testing.T) {
	r := newRig()
	r.x.set(0)
	it := r.loop.Step()
	if r.red.level != 65535 {
		t.Fatalf("red = %d, want 65535", r.red.level)
	}
	if r.blue.level != 0 {
		t.Fatalf("blue = %d, want 0", r.blue.level)
	}
	if it.Cursor.X != 56 {
		t.Fatalf("cursor.X = %d, want 56", it.Cursor.X)
	}
}

func TestStepPWMDisabledForcesZero(t *testing.T) {
	r := newRig()
	r.x.set(0)
	r.y.set(4095)
	if !r.ctl.Press(buttons.ButtonA, 1_000_000) {
		t.Fatal("press rejected")
	}
	it := r.loop.Step()
	if r.red.sets != 1 || r.blue.sets != 1 {
		t.Fatal("duty must still be written while disabled")
	}
	if r.red.level != 0 || r.blue.level != 0 || it.Duty != (types.DutyPair{}) {
		t.Fatalf("disabled duty red=%d blue=%d", r.red.level, r.blue.level)
	}
	// The cursor still tracks the stick.
	if it.Cursor != (types.Cursor{X: 56, Y: 120}) {
		t.Fatalf("cursor = %+v", it.Cursor)
	}

	r.ctl.Press(buttons.ButtonA, 2_000_000)
	r.loop.Step()
	if r.red.level != 65535 || r.blue.level != 65535 {
		t.Fatalf("re-enabled duty red=%d blue=%d", r.red.level, r.blue.level)
	}
}

func TestStepDrawsCurrentBorder(t *testing.T) {
	r := newRig()
	r.loop.Step()
	lit := r.panel.Lit()
	r.ctl.Press(buttons.ButtonJoystick, 1_000_000)
	it := r.loop.Step()
	if it.Toggles.Border != types.BorderSolid {
		t.Fatalf("border = %v", it.Toggles.Border)
	}
	if got, want := r.panel.Lit(), lit+2*128+2*64-4; got != want {
		t.Fatalf("lit = %d, want %d", got, want)
	}
}

func TestStepLogsTransitionsAndRefreshesIndicator(t *testing.T) {
	r := newRig()
	r.loop.Step()
	if r.logs.Len() != 0 {
		t.Fatalf("unexpected log on first step: %q", r.logs.String())
	}
	r.ctl.Press(buttons.ButtonJoystick, 1_000_000)
	r.ctl.Press(buttons.ButtonA, 1_000_000)
	r.loop.Step()
	r.loop.Step()

	out := r.logs.String()
	if !strings.Contains(out, "pwm=false") {
		t.Fatalf("missing pwm transition: %q", out)
	}
	if !strings.Contains(out, "green_led=true") || !strings.Contains(out, "border=solid") {
		t.Fatalf("missing joystick transition: %q", out)
	}
	if strings.Count(out, "joystick button") != 1 {
		t.Fatalf("transition logged more than once: %q", out)
	}
	if len(r.ind.shown) != 3 || r.ind.shown[2] != (types.Toggles{Border: types.BorderSolid, GreenOn: true}) {
		t.Fatalf("indicator saw %+v", r.ind.shown)
	}
}

func TestStepRenderFailureLoggedOnce(t *testing.T) {
	r := newRig()
	r.panel.Fail(errors.New("nack"))
	r.loop.Step()
	r.loop.Step()
	if n := strings.Count(r.logs.String(), "display flush failed"); n != 1 {
		t.Fatalf("flush failure logged %d times", n)
	}
	r.panel.Fail(nil)
	r.loop.Step()
	if !strings.Contains(r.logs.String(), "display flush recovered") {
		t.Fatal("recovery not logged")
	}
	if r.red.sets != 3 {
		t.Fatal("loop stopped driving PWM after a flush failure")
	}
}

func TestRunStepsUntilCancelled(t *testing.T) {
	r := newRig()
	cfg := DefaultConfig()
	cfg.Interval = time.Millisecond
	r.loop.cfg = cfg

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.loop.Run(ctx)
		close(done)
	}()
	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if r.panel.Frames() < 2 {
		t.Fatalf("frames = %d, want several iterations", r.panel.Frames())
	}
}

func TestNewDefaultsInterval(t *testing.T) {
	l := New(Config{Mapper: DefaultConfig().Mapper}, Deps{})
	if l.cfg.Interval != 40*time.Millisecond {
		t.Fatalf("interval = %v", l.cfg.Interval)
	}
}
