//go:build !rp2040 && !rp2350

package app

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"joycursor-go/services/hal"
	"joycursor-go/services/input"
	"joycursor-go/services/matrix"
	"joycursor-go/types"
	"joycursor-go/x/fb"
	"joycursor-go/x/logx"
)

type levelSetter interface{ SetLevel(uint16) }
type presser interface{ Press() }
type lastFrame interface{ Last() ([]uint32, int) }

type rig struct {
	board *hal.Board
	app   *App
	now   uint32
	logs  *bytes.Buffer
}

func newRig(t *testing.T) *rig {
	t.Helper()
	b, err := hal.Open()
	if err != nil {
		t.Fatal(err)
	}
	r := &rig{board: b, now: 1_000_000, logs: &bytes.Buffer{}}
	opt := DefaultOptions()
	opt.Clock = func() uint32 { return r.now }
	opt.Logger = logx.New(r.logs, slog.LevelInfo)
	r.app, err = Build(b, opt)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return r
}

func (r *rig) stick(x, y uint16) {
	r.board.XAxis.(levelSetter).SetLevel(x)
	r.board.YAxis.(levelSetter).SetLevel(y)
}

// press advances the clock past the debounce window and presses the button.
func (r *rig) press(p hal.IRQPin) {
	r.now += 250_000
	p.(presser).Press()
}

func TestCenteredStickDrivesNothing(t *testing.T) {
	r := newRig(t)
	it := r.app.Loop.Step()

	if it.Duty != (types.DutyPair{}) {
		t.Fatalf("duty = %+v", it.Duty)
	}
	if r.app.Red.Level() != 0 || r.app.Blue.Level() != 0 {
		t.Fatal("leds should be dark at rest")
	}
	want := input.DefaultMapper().Cursor(2048, 2048)
	if it.Cursor != want {
		t.Fatalf("cursor = %+v, want %+v", it.Cursor, want)
	}
	mono := r.board.Display.(*fb.Mono)
	if mono.Frames() != 1 || mono.Lit() != 64 {
		t.Fatalf("frames=%d lit=%d", mono.Frames(), mono.Lit())
	}
}

func TestFullDeflectionAndButtonA(t *testing.T) {
	r := newRig(t)
	r.stick(4095, 0)
	it := r.app.Loop.Step()
	if it.Duty.Red != 65535 || it.Duty.Blue != 65535 {
		t.Fatalf("duty = %+v", it.Duty)
	}
	if it.Cursor != (types.Cursor{X: 0, Y: 0}) {
		t.Fatalf("cursor = %+v", it.Cursor)
	}

	r.press(r.board.ButtonA)
	it = r.app.Loop.Step()
	if it.Toggles.PWMEnabled || r.app.Red.Level() != 0 || r.app.Blue.Level() != 0 {
		t.Fatalf("pwm should be off: %+v", it)
	}
	if !strings.Contains(r.logs.String(), "pwm=false") {
		t.Fatalf("missing transition log:\n%s", r.logs)
	}
}

func TestJoystickButtonCyclesBorderAndLED(t *testing.T) {
	r := newRig(t)
	mono := r.board.Display.(*fb.Mono)

	r.press(r.board.JoyButton)
	it := r.app.Loop.Step()
	if it.Toggles.Border != types.BorderSolid || !r.app.Green.On() {
		t.Fatalf("after first press: %+v green=%v", it.Toggles, r.app.Green.On())
	}
	if !mono.Pixel(0, 0) || !mono.Pixel(127, 63) {
		t.Fatal("solid border not drawn")
	}

	// Bounce inside the window is ignored.
	r.board.JoyButton.(presser).Press()
	if r.app.Controller.State().Border() != types.BorderSolid {
		t.Fatal("bounce advanced the border")
	}

	r.press(r.board.JoyButton)
	r.press(r.board.JoyButton)
	r.press(r.board.JoyButton)
	if r.app.Controller.State().Border() != types.BorderNone || r.app.Green.On() {
		t.Fatal("four presses should return to none with the LED off")
	}
}

func TestMatrixMirrorsToggles(t *testing.T) {
	r := newRig(t)
	strip := r.board.Matrix.(lastFrame)

	r.app.Loop.Step()
	r.app.Loop.Step()
	frame, writes := strip.Last()
	if writes != 1 || len(frame) != matrix.Pixels {
		t.Fatalf("writes=%d len=%d", writes, len(frame))
	}
	var want [matrix.Pixels]uint32
	matrix.Compose(&want, r.app.Controller.State().Snapshot())
	for i := range want {
		if frame[i] != want[i] {
			t.Fatalf("pixel %d = %#x, want %#x", i, frame[i], want[i])
		}
	}

	r.press(r.board.ButtonA)
	r.app.Loop.Step()
	if _, writes = strip.Last(); writes != 2 {
		t.Fatalf("writes after toggle = %d", writes)
	}
}

func TestBuildSizesMapperFromDisplay(t *testing.T) {
	r := newRig(t)
	r.stick(0, 4095)
	it := r.app.Loop.Step()
	if it.Cursor != (types.Cursor{X: 56, Y: 120}) {
		t.Fatalf("cursor = %+v", it.Cursor)
	}
}

func TestRunStopsAndDetachesButtons(t *testing.T) {
	b, err := hal.Open()
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, b, Options{Config: DefaultOptions().Config}) }()
	time.Sleep(60 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	if b.Display.(*fb.Mono).Frames() == 0 {
		t.Fatal("no frames rendered")
	}
}
