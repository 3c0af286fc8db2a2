package ramp

import "time"

// Step applies a new level in [0..top].
type Step func(level uint16)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Sleep is a Tick that never cancels.
func Sleep(d time.Duration) bool {
	time.Sleep(d)
	return true
}

// Linear walks from cur to to in steps equal increments over total, calling
// set after each tick. The caller's goroutine runs the ramp. steps==0 or
// total<=0 snaps to 'to'. The final level is always min(to, top) unless
// tick cancels first.
func Linear(cur, to, top uint16, total time.Duration, steps uint16, tick Tick, set Step) {
	if steps == 0 || total <= 0 {
		set(min(to, top))
		return
	}
	d := int32(to) - int32(cur)
	st := int32(steps)
	acc := int32(0)
	lvl := int32(cur)
	stepDur := max(total/time.Duration(steps), time.Millisecond)

	for i := uint16(1); i < steps; i++ {
		if !tick(stepDur) {
			return
		}
		acc += d
		if inc := acc / st; inc != 0 {
			acc -= inc * st
			lvl = min(max(lvl+inc, 0), int32(top))
			set(uint16(lvl))
		}
	}
	if tick(stepDur) {
		set(min(to, top))
	}
}
