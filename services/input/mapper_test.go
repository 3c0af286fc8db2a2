package input

import (
	"testing"

	"joycursor-go/types"
)

func TestDeflectionToDuty(t *testing.T) {
	cases := []struct {
		sample uint16
		want   uint16
	}{
		{2048, 0},
		{2049, 32},
		{2047, 32},
		{0, 65535}, // 2048*32 = 65536, clamped
		{4095, 65504},
		{1024, 32768},
	}
	for _, c := range cases {
		if got := DeflectionToDuty(c.sample, AdcCenter, MaxDuty, Gain); got != c.want {
			t.Errorf("DeflectionToDuty(%d) = %d, want %d", c.sample, got, c.want)
		}
	}
}

func TestMapperDutyCenterAndRails(t *testing.T) {
	m := DefaultMapper()
	if got := m.Duty(AdcCenter); got != 0 {
		t.Fatalf("Duty(center) = %d, want 0", got)
	}
	if got := m.Duty(0); got != MaxDuty {
		t.Fatalf("Duty(0) = %d, want saturated", got)
	}
	if got := m.Duty(AdcMax); got != MaxDuty {
		t.Fatalf("Duty(4095) = %d, want saturated", got)
	}
}

func TestMapperDutyMonotonicAwayFromCenter(t *testing.T) {
	m := DefaultMapper()
	prev := m.Duty(AdcCenter)
	for s := AdcCenter + 1; s <= AdcMax; s++ {
		d := m.Duty(uint16(s))
		if d < prev {
			t.Fatalf("duty decreased at %d: %d < %d", s, d, prev)
		}
		prev = d
	}
	prev = m.Duty(AdcCenter)
	for s := AdcCenter - 1; s >= 0; s-- {
		d := m.Duty(uint16(s))
		if d < prev {
			t.Fatalf("duty decreased at %d: %d < %d", s, d, prev)
		}
		prev = d
	}
}

func TestMapperDuties(t *testing.T) {
	m := DefaultMapper()
	got := m.Duties(0, AdcCenter)
	if got != (types.DutyPair{Red: 65535, Blue: 0}) {
		t.Fatalf("Duties = %+v", got)
	}
}

func TestMapperCursor(t *testing.T) {
	m := DefaultMapper()
	cases := []struct {
		x, y uint16
		want types.Cursor
	}{
		{AdcCenter, AdcCenter, types.Cursor{X: 27, Y: 61}},
		{0, 0, types.Cursor{X: 56, Y: 0}},
		{AdcMax, AdcMax, types.Cursor{X: 0, Y: 120}},
		{0, AdcMax, types.Cursor{X: 56, Y: 120}},
	}
	for _, c := range cases {
		if got := m.Cursor(c.x, c.y); got != c.want {
			t.Errorf("Cursor(%d,%d) = %+v, want %+v", c.x, c.y, got, c.want)
		}
	}
}

func TestMapperCursorStaysOnPanel(t *testing.T) {
	m := DefaultMapper()
	for s := 0; s <= AdcMax; s += 7 {
		c := m.Cursor(uint16(s), uint16(s))
		if c.X < 0 || c.X > m.Rows || c.Y < 0 || c.Y > m.Cols {
			t.Fatalf("Cursor(%d) = %+v off panel", s, c)
		}
	}
}
