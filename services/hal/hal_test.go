//go:build !rp2040 && !rp2350

package hal

import (
	"os"
	"testing"
)

func TestOpenHostBoard(t *testing.T) {
	b, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if b.Name != "bitdoglab" {
		t.Fatalf("board = %q", b.Name)
	}
	if b.Display == nil || b.XAxis == nil || b.ButtonA == nil || b.Matrix == nil {
		t.Fatal("board has unset peripherals")
	}
}

func TestOpenConsoleHost(t *testing.T) {
	w, err := OpenConsole()
	if err != nil {
		t.Fatal(err)
	}
	if w != os.Stdout {
		t.Fatalf("console = %T, want stdout", w)
	}
}

func TestPWMSettings(t *testing.T) {
	f, top := PWMSettings()
	if f != 1907 || top != 65535 {
		t.Fatalf("pwm = %d Hz / %d", f, top)
	}
}
