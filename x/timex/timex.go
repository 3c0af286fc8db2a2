package timex

import "time"

var boot = time.Now()

// NowUs returns microseconds since boot as a wrapping 32-bit counter, the
// width of the RP2 timer's low word. Compare values with wrapping subtraction.
func NowUs() uint32 { return uint32(time.Since(boot) / time.Microsecond) }

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint64) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(time.Second) / freqHz
}

// Us converts a duration to whole microseconds, saturating at the uint32 range.
func Us(d time.Duration) uint32 {
	us := d / time.Microsecond
	if us < 0 {
		return 0
	}
	if us > 1<<32-1 {
		return 1<<32 - 1
	}
	return uint32(us)
}
