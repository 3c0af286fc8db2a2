package fb

import (
	"errors"
	"image/color"
	"testing"
)

var white = color.RGBA{255, 255, 255, 255}

func TestMonoOnlyShowsFlushedPixels(t *testing.T) {
	m := NewMono(16, 8)
	m.SetPixel(3, 2, white)
	if m.Pixel(3, 2) {
		t.Fatal("pixel visible before Display")
	}
	if err := m.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if !m.Pixel(3, 2) || m.Lit() != 1 || m.Frames() != 1 {
		t.Fatalf("after Display: pixel=%v lit=%d frames=%d", m.Pixel(3, 2), m.Lit(), m.Frames())
	}
}

func TestMonoClipsAndClears(t *testing.T) {
	m := NewMono(16, 8)
	m.SetPixel(-1, 0, white)
	m.SetPixel(16, 0, white)
	m.SetPixel(0, 8, white)
	m.SetPixel(15, 7, white)
	m.SetPixel(0, 0, color.RGBA{})
	_ = m.Display()
	if m.Lit() != 1 {
		t.Fatalf("lit = %d, want 1", m.Lit())
	}
	m.ClearBuffer()
	_ = m.Display()
	if m.Lit() != 0 {
		t.Fatalf("lit after clear = %d", m.Lit())
	}
}

func TestMonoInjectedFailure(t *testing.T) {
	m := NewMono(4, 4)
	boom := errors.New("nack")
	m.Fail(boom)
	m.SetPixel(1, 1, white)
	if err := m.Display(); !errors.Is(err, boom) {
		t.Fatalf("Display err = %v", err)
	}
	if m.Pixel(1, 1) || m.Frames() != 0 {
		t.Fatal("failed flush must not publish")
	}
}
