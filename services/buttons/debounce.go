package buttons

import (
	"sync/atomic"
	"time"

	"joycursor-go/x/timex"
)

// DefaultDebounce is the minimum spacing between accepted presses.
const DefaultDebounce = 200 * time.Millisecond

// Debouncer guards one logical button. It is safe to call from interrupt
// context: no allocation, no locks.
type Debouncer struct {
	windowUs uint32
	lastUs   atomic.Uint32
}

// NewDebouncer returns a debouncer whose last trigger is time zero.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{windowUs: timex.Us(window)}
}

// Accept reports whether a trigger at nowUs falls outside the window.
// On acceptance the timestamp is committed before returning, so a second
// caller racing on the same edge loses the compare-and-swap and is rejected.
// Wrapping subtraction keeps the comparison valid across counter rollover.
func (d *Debouncer) Accept(nowUs uint32) bool {
	last := d.lastUs.Load()
	if nowUs-last <= d.windowUs {
		return false
	}
	return d.lastUs.CompareAndSwap(last, nowUs)
}

// Last returns the timestamp of the last accepted trigger.
func (d *Debouncer) Last() uint32 { return d.lastUs.Load() }
